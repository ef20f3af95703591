// Package model contains the validated value types of the assistant: the fields of a contact, the
// contact record itself and the note. Every value is checked when it is constructed, so an instance
// that exists is always valid. None of the types perform I/O.
package model

import (
	"unicode"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance. It is safe for concurrent use and caches the parsed
// tags.
var validate = newValidator()

// newValidator creates the validator and registers the custom rules used by the field types.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("personname", isPersonName); err != nil {
		panic(err)
	}
	return v
}

// isPersonName reports whether the field consists of letters, spaces, hyphens and apostrophes only.
func isPersonName(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return false
	}
	for _, r := range value {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) && r != '-' && r != '\'' {
			return false
		}
	}
	return true
}

// check runs the validator tag against value and converts a failure into a ValidationError with
// the given reason.
func check(field string, value string, tag string, reason string) error {
	if err := validate.Var(value, tag); err != nil {
		return &ValidationError{Field: field, Reason: reason}
	}
	return nil
}
