package service

import (
	"fmt"
	"net/mail"
	"strings"
)

// ValidationError carries field-level messages for a 422 response.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// fieldValidator accumulates field errors in the order rules are applied.
// The first failing rule per field wins.
type fieldValidator struct {
	fields map[string]string
}

func newFieldValidator() *fieldValidator {
	return &fieldValidator{fields: make(map[string]string)}
}

func (v *fieldValidator) required(field, value string) {
	if _, seen := v.fields[field]; seen {
		return
	}
	if strings.TrimSpace(value) == "" {
		v.fields[field] = fmt.Sprintf("%s is required", field)
	}
}

func (v *fieldValidator) email(field, value string) {
	if _, seen := v.fields[field]; seen {
		return
	}
	if _, err := mail.ParseAddress(value); err != nil {
		v.fields[field] = fmt.Sprintf("%s must be a valid email", field)
	}
}

func (v *fieldValidator) minLength(field, value string, min int) {
	if _, seen := v.fields[field]; seen {
		return
	}
	if len(value) < min {
		v.fields[field] = fmt.Sprintf("%s must be at least %d characters", field, min)
	}
}

func (v *fieldValidator) oneOf(field, value string, allowed ...string) {
	if _, seen := v.fields[field]; seen {
		return
	}
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v.fields[field] = fmt.Sprintf("%s must be one of: %s", field, strings.Join(allowed, ", "))
}

// err returns a *ValidationError when any rule failed, nil otherwise.
func (v *fieldValidator) err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: v.fields}
}
