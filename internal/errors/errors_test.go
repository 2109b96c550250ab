package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlowError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *FlowError
		want string
	}{
		{
			name: "code and message",
			err:  NewValidationError(ErrCodeValidationFailed, "bad input"),
			want: "[ERR_VALIDATION_FAILED] bad input",
		},
		{
			name: "with operation",
			err:  NewValidationError(ErrCodeValidationFailed, "bad input").WithOperation("get_component"),
			want: "[ERR_VALIDATION_FAILED] operation:get_component bad input",
		},
		{
			name: "with cause",
			err:  NewHandlerError(ErrCodeHandlerFailed, "lookup failed", stderrors.New("root cause")),
			want: "[ERR_HANDLER_FAILED] lookup failed: root cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestFlowError_TypePredicates(t *testing.T) {
	assert.True(t, IsValidationError(NewValidationError("C", "m")))
	assert.False(t, IsValidationError(NewHandlerError("C", "m", nil)))

	assert.True(t, IsCircuitOpen(NewCircuitOpenError("m")))
	assert.False(t, IsCircuitOpen(NewValidationError("C", "m")))

	assert.True(t, IsRecoverable(NewValidationError("C", "m")))
	assert.True(t, IsRecoverable(NewCircuitOpenError("m")))
	assert.False(t, IsRecoverable(NewInternalError("C", "m", nil)))

	assert.False(t, IsValidationError(stderrors.New("plain")))
}

func TestFlowError_WrappingSurvivesFmt(t *testing.T) {
	inner := NewCircuitOpenError("shed")
	wrapped := fmt.Errorf("dispatch failed: %w", inner)

	assert.True(t, IsCircuitOpen(wrapped))

	var fe *FlowError
	require.True(t, stderrors.As(wrapped, &fe))
	assert.Equal(t, ErrorTypeCircuitOpen, fe.Type)
}

func TestFlowError_Unwrap(t *testing.T) {
	cause := stderrors.New("root")
	err := NewHandlerError(ErrCodeHandlerFailed, "failed", cause)

	assert.ErrorIs(t, err, cause)
}

func TestFieldValidationError(t *testing.T) {
	fve := NewFieldValidationError("componentName", "", "must not be empty", "try ReactFlow")

	assert.Equal(t, "componentName", fve.Field())
	assert.Contains(t, fve.Error(), "componentName")
	assert.Equal(t, []string{"try ReactFlow"}, fve.Suggestions())

	fe := fve.ToFlowError()
	assert.Equal(t, ErrorTypeValidation, fe.Type)
	assert.Equal(t, "componentName", fe.Context["field"])
	assert.True(t, fe.Recoverable)
}
