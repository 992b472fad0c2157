package validator

import (
	"testing"

	domainerrors "quill/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registrationPayload struct {
	Email    string `validate:"required,email"`
	Name     string `validate:"required"`
	Password string `validate:"required,min=6"`
}

func TestCustomValidator_Valid(t *testing.T) {
	v := New()

	err := v.Validate(&registrationPayload{
		Email:    "test@example.com",
		Name:     "Test User",
		Password: "password123",
	})

	assert.NoError(t, err)
}

func TestCustomValidator_FailuresMapToValidationError(t *testing.T) {
	v := New()

	testCases := []struct {
		name    string
		payload registrationPayload
		detail  string
	}{
		{
			name:    "missing name",
			payload: registrationPayload{Email: "test@example.com", Password: "password123"},
			detail:  "Name is required",
		},
		{
			name:    "bad email",
			payload: registrationPayload{Email: "not-an-email", Name: "Test", Password: "password123"},
			detail:  "Email must be a valid email address",
		},
		{
			name:    "short password",
			payload: registrationPayload{Email: "test@example.com", Name: "Test", Password: "12345"},
			detail:  "Password must be at least 6 characters",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(&tc.payload)

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Contains(t, appErr.Details(), tc.detail)
		})
	}
}
