package forms

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"kopiadmin/internal/repositories"
)

// UserForm is the add/edit dialog form for a user.
type UserForm struct {
	Username    string `validate:"required"`
	Email       string `validate:"required,email"`
	Password    string
	Address     string
	PhoneNumber string
	IsAdmin     bool

	submitting bool
}

// Validate checks that username and email are present and that the email has
// a standard address shape.
func (f *UserForm) Validate() error {
	f.Username = strings.TrimSpace(f.Username)
	f.Email = strings.TrimSpace(f.Email)

	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return userFieldError(verrs[0])
	}
	return err
}

func userFieldError(fe validator.FieldError) *FieldError {
	field := strings.ToLower(fe.Field())
	if fe.Tag() == "email" {
		return &FieldError{Field: field, Message: "Please enter a valid email address"}
	}
	return &FieldError{Field: field, Message: "Username and email are required"}
}

// Submit validates the form and hands the assembled payload to the save
// callback.
func (f *UserForm) Submit(save func(repositories.UserPayload) error) error {
	if err := f.Validate(); err != nil {
		return err
	}
	f.submitting = true
	defer func() { f.submitting = false }()
	return save(repositories.UserPayload{
		Username:    f.Username,
		Email:       f.Email,
		Password:    f.Password,
		Address:     strings.TrimSpace(f.Address),
		PhoneNumber: strings.TrimSpace(f.PhoneNumber),
		IsAdmin:     f.IsAdmin,
	})
}

// Submitting reports whether a save callback is in flight.
func (f *UserForm) Submitting() bool { return f.submitting }
