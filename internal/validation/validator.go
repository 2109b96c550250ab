package validation

import (
	"context"
	"fmt"

	"github.com/yeshsurya/React-Flow-MCP-Server/internal/errors"
	"github.com/yeshsurya/React-Flow-MCP-Server/internal/logging"
)

// Params holds normalized, defaulted parameters ready for handler use.
type Params map[string]string

// Get returns the named parameter, or "" if absent.
func (p Params) Get(name string) string {
	return p[name]
}

// Validator checks raw request parameters against the operation rule table.
type Validator struct {
	logger logging.Logger
}

// NewValidator creates a validator. A nil logger disables the
// unknown-operation warning.
func NewValidator(logger logging.Logger) *Validator {
	if logger == nil {
		logger = logging.NopLogger{}
	}
	return &Validator{logger: logger.WithComponent("validation")}
}

// Validate checks rawParams against the rule for operation and returns the
// normalized parameters.
//
// An operation with no known rule is a permissive pass-through: string
// parameters are carried over unchanged and a warning is logged, so that new
// operations added upstream keep working against older rule tables. All
// other failures return a validation error with a field-qualified message.
func (v *Validator) Validate(ctx context.Context, operation string, rawParams map[string]interface{}) (Params, error) {
	rule, known := RuleFor(operation)
	if !known {
		v.logger.Warn(ctx, nil, "No validation rule for operation; passing parameters through",
			"operation", operation)
		return passthrough(rawParams), nil
	}

	normalized := make(Params, len(rule.Params))

	for _, pr := range rule.Params {
		raw, present := rawParams[pr.Name]

		if !present || raw == nil {
			if pr.Required {
				return nil, errors.NewFieldValidationError(
					pr.Name, nil,
					fmt.Sprintf("required parameter %q is missing", pr.Name),
					pr.Description,
				).ToFlowError().WithOperation(operation)
			}
			normalized[pr.Name] = pr.Default
			continue
		}

		s, ok := raw.(string)
		if !ok {
			return nil, errors.NewFieldValidationError(
				pr.Name, raw,
				fmt.Sprintf("parameter %q must be a string, got %T", pr.Name, raw),
			).ToFlowError().WithOperation(operation)
		}

		if pr.Required && s == "" {
			return nil, errors.NewFieldValidationError(
				pr.Name, s,
				fmt.Sprintf("required parameter %q must not be empty", pr.Name),
				pr.Description,
			).ToFlowError().WithOperation(operation)
		}

		if len(s) > MaxParamLength {
			return nil, errors.NewFieldValidationError(
				pr.Name, s,
				fmt.Sprintf("parameter %q exceeds maximum length of %d characters", pr.Name, MaxParamLength),
			).ToFlowError().WithOperation(operation)
		}

		normalized[pr.Name] = s
	}

	return normalized, nil
}

// passthrough copies string-typed raw parameters for an unknown operation.
func passthrough(rawParams map[string]interface{}) Params {
	p := make(Params, len(rawParams))
	for k, v := range rawParams {
		if s, ok := v.(string); ok {
			p[k] = s
		}
	}
	return p
}
