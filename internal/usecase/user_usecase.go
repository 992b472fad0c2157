// Package usecase defines the application's business operations and their
// input/output DTOs. Handlers depend on these interfaces, never on the
// concrete services in impl.
package usecase

import (
	"context"
	"time"

	"quill/internal/domain/entity"
)

// RegisterInput carries the fields for account creation.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginInput carries the credentials for a login attempt.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateAccountInput is a partial update; only non-nil fields are applied.
type UpdateAccountInput struct {
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Name     *string `json:"name,omitempty"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"`
}

// AccountView is the public representation of an account.
// The password hash never appears here.
type AccountView struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LoginOutput bundles the issued token with the authenticated account's view.
type LoginOutput struct {
	Token string       `json:"token"`
	User  *AccountView `json:"user"`
}

// NewAccountView maps a domain User onto its public view.
func NewAccountView(user *entity.User) *AccountView {
	if user == nil {
		return nil
	}

	return &AccountView{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// UserUsecase is the service-layer contract for account operations.
type UserUsecase interface {
	// Register creates an account with a hashed password and returns its public view.
	Register(ctx context.Context, input *RegisterInput) (*AccountView, error)

	// Login verifies credentials and issues an access token. An unknown email
	// and a wrong password are indistinguishable to the caller.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// GetByID returns the full account entity, password hash included.
	// Internal use only; delivery maps to a view before responding.
	GetByID(ctx context.Context, id int64) (*entity.User, error)

	// GetByEmail returns the full account entity by its login key.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// List returns public views of every account in store order.
	List(ctx context.Context) ([]*AccountView, error)

	// Update applies a partial update, re-hashing the password when supplied.
	Update(ctx context.Context, id int64, input *UpdateAccountInput) (*AccountView, error)

	// Delete removes the account and returns the deleted entity.
	Delete(ctx context.Context, id int64) (*entity.User, error)
}
