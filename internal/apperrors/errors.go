// Package apperrors defines the error taxonomy shared by every ledger
// service. Handlers translate these into HTTP statuses; anything that is not
// one of these types is treated as a storage error.
package apperrors

import (
	"fmt"
	"strings"
)

// FieldError describes a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports one or more invalid input fields. It is returned
// before any mutation is attempted, so a failed validation never leaves a
// partial write behind.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "data tidak valid"
	}
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, "; ")
}

// NewValidation builds a ValidationError for a single field.
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// NotFoundError reports that a referenced record does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// NewNotFound builds a NotFoundError with a user-facing message.
func NewNotFound(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

// BusinessRuleError reports an operation that would violate an invariant,
// such as deleting an asset that still has active loans.
type BusinessRuleError struct {
	Message string
}

func (e *BusinessRuleError) Error() string {
	return e.Message
}

// NewBusinessRule builds a BusinessRuleError with a formatted message.
func NewBusinessRule(format string, args ...interface{}) *BusinessRuleError {
	return &BusinessRuleError{Message: fmt.Sprintf(format, args...)}
}
