// Package validation checks structs against their `validate` tags.
package validation

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Struct validates v against its `validate` tags
func Struct(v any) error {
	return validate.Struct(v)
}

// HasTag reports whether err is a validation error with a failed check named tag
func HasTag(err error, tag string) bool {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return false
	}
	for _, fe := range fieldErrs {
		if fe.Tag() == tag {
			return true
		}
	}
	return false
}
