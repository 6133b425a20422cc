package validators

import (
	"github.com/go-playground/validator/v10"

	"github.com/blogify-app/backend/pkg/apperrors"
)

// Validator adapts go-playground/validator to echo's Validator interface.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a request validator.
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate checks struct-level validate tags and maps failures to the
// invalid-request error kind.
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return apperrors.InvalidRequest(err.Error())
	}
	return nil
}
