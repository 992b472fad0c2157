// Package validator wires go-playground/validator into echo's binding flow.
package validator

import (
	"strings"

	domainerrors "quill/internal/domain/errors"
	"quill/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps a validator instance so echo can call Validate on bound payloads.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the validator used by the HTTP server.
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate checks the struct and translates failures into the application error taxonomy.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return domainerrors.ErrValidationFailed.WithDetails(describe(fieldErrs))
		}

		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

// describe renders field errors into a single human-readable detail string.
func describe(fieldErrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fe.Field()+" is required")
		case "email":
			parts = append(parts, fe.Field()+" must be a valid email address")
		case "min":
			parts = append(parts, fe.Field()+" must be at least "+fe.Param()+" characters")
		default:
			parts = append(parts, fe.Field()+" failed on the '"+fe.Tag()+"' rule")
		}
	}

	return strings.Join(parts, "; ")
}
