// Package validation provides structured, multi-field validation errors.
// Validators accumulate every failing field before returning so clients can
// render all problems at once instead of fixing them one round-trip at a time.
package validation

import (
	"fmt"
	"strings"
)

// Prefix is the leading text of every validation error message. The API
// layer relies on it to distinguish validation failures from other errors.
const Prefix = "validation failed: "

// FieldError describes a single invalid field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error returns the field error as "field message".
func (e FieldError) Error() string {
	return e.Field + " " + e.Message
}

// Errors collects the field errors of one payload.
type Errors struct {
	Fields []FieldError `json:"fields"`
}

// Add records a failing field.
func (e *Errors) Add(field, format string, args ...any) {
	e.Fields = append(e.Fields, FieldError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	})
}

// HasErrors reports whether any field failed.
func (e *Errors) HasErrors() bool {
	return len(e.Fields) > 0
}

// Err returns the collected errors as an error value, or nil if none.
func (e *Errors) Err() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

// Error joins every field error into one message:
// "validation failed: title is required; goal_id must be a positive integer".
func (e *Errors) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Error())
	}
	return Prefix + strings.Join(parts, "; ")
}

// ParseFields recovers the individual field messages from an error string
// produced by Error. It returns nil if the string is not a validation error.
// Used at the API boundary, where errors cross the service container as text.
func ParseFields(msg string) []string {
	if !strings.HasPrefix(msg, Prefix) {
		return nil
	}
	return strings.Split(strings.TrimPrefix(msg, Prefix), "; ")
}

// IsValidationError reports whether the error text denotes a validation failure.
func IsValidationError(msg string) bool {
	return strings.Contains(msg, Prefix)
}
