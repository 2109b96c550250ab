package validation

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeshsurya/React-Flow-MCP-Server/internal/errors"
)

func TestValidator_RequiredParams(t *testing.T) {
	ctx := context.Background()
	v := NewValidator(nil)

	tests := []struct {
		name      string
		operation string
		params    map[string]interface{}
		wantErr   bool
		errField  string
	}{
		{
			name:      "valid component lookup",
			operation: OpGetComponent,
			params:    map[string]interface{}{"componentName": "Handle"},
		},
		{
			name:      "missing required param",
			operation: OpGetComponent,
			params:    map[string]interface{}{},
			wantErr:   true,
			errField:  "componentName",
		},
		{
			name:      "empty required param",
			operation: OpGetComponent,
			params:    map[string]interface{}{"componentName": ""},
			wantErr:   true,
			errField:  "componentName",
		},
		{
			name:      "nil required param",
			operation: OpGetDocs,
			params:    map[string]interface{}{"topic": nil},
			wantErr:   true,
			errField:  "topic",
		},
		{
			name:      "wrong primitive type",
			operation: OpGetHook,
			params:    map[string]interface{}{"hookName": 42},
			wantErr:   true,
			errField:  "hookName",
		},
		{
			name:      "over max length",
			operation: OpSearchExamples,
			params:    map[string]interface{}{"query": strings.Repeat("x", MaxParamLength+1)},
			wantErr:   true,
			errField:  "query",
		},
		{
			name:      "exactly max length is accepted",
			operation: OpSearchExamples,
			params:    map[string]interface{}{"query": strings.Repeat("x", MaxParamLength)},
		},
		{
			name:      "no params needed",
			operation: OpListUtilities,
			params:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := v.Validate(ctx, tt.operation, tt.params)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsValidationError(err), "expected a validation error, got %v", err)
				assert.Contains(t, err.Error(), tt.errField)
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, params)
		})
	}
}

func TestValidator_OptionalDefaults(t *testing.T) {
	ctx := context.Background()
	v := NewValidator(nil)

	t.Run("absent optional category defaults to no filter", func(t *testing.T) {
		params, err := v.Validate(ctx, OpListHooks, map[string]interface{}{})
		require.NoError(t, err)
		assert.Equal(t, "", params.Get("category"))
	})

	t.Run("present optional category is carried through", func(t *testing.T) {
		params, err := v.Validate(ctx, OpListHooks, map[string]interface{}{"category": "viewport"})
		require.NoError(t, err)
		assert.Equal(t, "viewport", params.Get("category"))
	})

	t.Run("empty optional category is allowed", func(t *testing.T) {
		params, err := v.Validate(ctx, OpListComponents, map[string]interface{}{"category": ""})
		require.NoError(t, err)
		assert.Equal(t, "", params.Get("category"))
	})

	t.Run("undeclared params are dropped", func(t *testing.T) {
		params, err := v.Validate(ctx, OpGetComponent, map[string]interface{}{
			"componentName": "Handle",
			"extra":         "ignored",
		})
		require.NoError(t, err)
		assert.Equal(t, "", params.Get("extra"))
	})
}

func TestValidator_UnknownOperationPassthrough(t *testing.T) {
	ctx := context.Background()
	v := NewValidator(nil)

	params, err := v.Validate(ctx, "future_operation", map[string]interface{}{
		"someParam": "value",
		"notAStr":   123,
	})

	require.NoError(t, err, "unknown operations pass through permissively")
	assert.Equal(t, "value", params.Get("someParam"))
	assert.Equal(t, "", params.Get("notAStr"))
}

func TestRules_CoverAllOperations(t *testing.T) {
	ops := []string{
		OpGetComponent, OpListComponents,
		OpGetHook, OpListHooks,
		OpGetType, OpListTypes,
		OpGetUtility, OpListUtilities,
		OpGetExample, OpSearchExamples,
		OpGetDocs,
	}

	assert.Len(t, Rules(), len(ops))
	for _, op := range ops {
		rule, ok := RuleFor(op)
		require.True(t, ok, "rule missing for %s", op)
		assert.Equal(t, op, rule.Operation)
		assert.NotEmpty(t, rule.Description)
	}
}
