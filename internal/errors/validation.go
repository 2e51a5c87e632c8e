package errors

import (
	"fmt"
	"strings"
)

// ValidationBuilder accumulates field-level validation errors and builds a
// single InvalidArgument error, or nil when no errors were recorded. Used by
// orchestrator Config.Validate methods.
type ValidationBuilder struct {
	fields map[string][]string
	order  []string
}

// NewValidationBuilder creates a new validation builder.
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{fields: make(map[string][]string)}
}

// Field adds a validation error for a field.
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	if _, ok := vb.fields[field]; !ok {
		vb.order = append(vb.order, field)
	}
	vb.fields[field] = append(vb.fields[field], message)
	return vb
}

// Fieldf adds a formatted validation error for a field.
func (vb *ValidationBuilder) Fieldf(field, format string, args ...any) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

// RequiredField adds a required field error.
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// Build returns the accumulated error, or nil when everything validated.
func (vb *ValidationBuilder) Build() error {
	if len(vb.fields) == 0 {
		return nil
	}

	parts := make([]string, 0, len(vb.fields))
	for _, field := range vb.order {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(vb.fields[field], ", ")))
	}

	err := InvalidArgumentf("validation failed: %s", strings.Join(parts, "; "))
	return err.WithMeta("validation_errors", vb.fields)
}
