// Package errors defines the structured error types shared by the request
// pipeline: validation failures, circuit breaker rejections, and handler
// faults each carry a distinct type so callers can branch via errors.Is/As.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeValidation  ErrorType = "validation"
	ErrorTypeCircuitOpen ErrorType = "circuit_open"
	ErrorTypeHandler     ErrorType = "handler"
	ErrorTypeConfig      ErrorType = "config"
	ErrorTypeInternal    ErrorType = "internal"
)

// FlowError is a structured error type with context.
type FlowError struct {
	Type        ErrorType
	Code        string
	Message     string
	Cause       error
	Context     map[string]interface{}
	Operation   string
	Recoverable bool
}

// Error implements the error interface.
func (e *FlowError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	if e.Operation != "" {
		parts = append(parts, "operation:"+e.Operation)
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *FlowError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison.
func (e *FlowError) Is(target error) bool {
	var t *FlowError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithContext adds context information to the error.
func (e *FlowError) WithContext(key string, value interface{}) *FlowError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value

	return e
}

// WithOperation adds operation context.
func (e *FlowError) WithOperation(operation string) *FlowError {
	e.Operation = operation

	return e
}

// Error creation functions

// NewValidationError creates a validation error.
func NewValidationError(code, message string) *FlowError {
	return &FlowError{
		Type:        ErrorTypeValidation,
		Code:        code,
		Message:     message,
		Recoverable: true,
	}
}

// NewCircuitOpenError creates a circuit-open rejection error.
func NewCircuitOpenError(message string) *FlowError {
	return &FlowError{
		Type:        ErrorTypeCircuitOpen,
		Code:        ErrCodeCircuitOpen,
		Message:     message,
		Recoverable: true,
	}
}

// NewHandlerError creates a handler failure error.
func NewHandlerError(code, message string, cause error) *FlowError {
	return &FlowError{
		Type:        ErrorTypeHandler,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: false,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string) *FlowError {
	return &FlowError{
		Type:        ErrorTypeConfig,
		Code:        code,
		Message:     message,
		Recoverable: false,
	}
}

// NewInternalError creates an internal error.
func NewInternalError(code, message string, cause error) *FlowError {
	return &FlowError{
		Type:        ErrorTypeInternal,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: false,
	}
}

// IsRecoverable checks if an error is recoverable.
func IsRecoverable(err error) bool {
	var fe *FlowError
	if errors.As(err, &fe) {
		return fe.Recoverable
	}

	return false
}

// IsValidationError checks if an error is a validation failure.
func IsValidationError(err error) bool {
	var fe *FlowError
	if errors.As(err, &fe) {
		return fe.Type == ErrorTypeValidation
	}

	return false
}

// IsCircuitOpen checks if an error is a circuit breaker rejection.
func IsCircuitOpen(err error) bool {
	var fe *FlowError
	if errors.As(err, &fe) {
		return fe.Type == ErrorTypeCircuitOpen
	}

	return false
}

// Common error codes.
const (
	ErrCodeCircuitOpen      = "ERR_CIRCUIT_OPEN"
	ErrCodeUnknownOperation = "ERR_UNKNOWN_OPERATION"
	ErrCodeHandlerFailed    = "ERR_HANDLER_FAILED"
	ErrCodeConfigInvalid    = "ERR_CONFIG_INVALID"
	ErrCodeValidationFailed = "ERR_VALIDATION_FAILED"
	ErrCodeInternalError    = "ERR_INTERNAL"
)

// FieldValidationError is a validation failure tied to a single parameter.
type FieldValidationError struct {
	FieldName    string
	FieldValue   interface{}
	ErrorMessage string
	HelpText     []string
}

// Error implements the error interface.
func (fve *FieldValidationError) Error() string {
	return fmt.Sprintf("validation error in field '%s': %s", fve.FieldName, fve.ErrorMessage)
}

// Field returns the field name that failed validation.
func (fve *FieldValidationError) Field() string {
	return fve.FieldName
}

// Suggestions returns helpful suggestions for fixing the error.
func (fve *FieldValidationError) Suggestions() []string {
	return fve.HelpText
}

// ToFlowError converts the field validation error to a FlowError.
func (fve *FieldValidationError) ToFlowError() *FlowError {
	return NewValidationError(
		ErrCodeValidationFailed,
		fve.Error(),
	).WithContext("field", fve.FieldName).WithContext("value", fve.FieldValue)
}

// NewFieldValidationError creates a new field validation error.
func NewFieldValidationError(
	field string,
	value interface{},
	message string,
	suggestions ...string,
) *FieldValidationError {
	return &FieldValidationError{
		FieldName:    field,
		FieldValue:   value,
		ErrorMessage: message,
		HelpText:     suggestions,
	}
}
