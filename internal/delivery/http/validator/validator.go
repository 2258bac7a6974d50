// Package validator wires struct tag validation into Echo.
package validator

import (
	"github.com/go-playground/validator/v10"

	domainerrors "latch/internal/domain/errors"
)

// CustomValidator adapts go-playground/validator to echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator instance shared by all requests.
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate checks the struct tags and converts failures into the domain
// validation error so the central error handler renders them uniformly.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
