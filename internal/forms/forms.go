// Package forms gathers dialog field input, applies the synchronous
// validation rules, and assembles the outbound payloads. Forms never talk to
// the network themselves; a validated payload is handed to a caller-supplied
// save callback.
package forms

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FieldError is a validation failure tied to a specific form field. It
// blocks submission before any network call is made.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
