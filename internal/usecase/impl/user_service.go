// Package impl contains the concrete implementations of the application's use cases.
package impl

import (
	"context"
	"log/slog"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/domain/service"
	"quill/internal/usecase"

	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Register creates a new account with a hashed password.
// The uniqueness check and the insert run in one transaction so two
// concurrent registrations for the same email cannot both pass the check.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AccountView, error) {
	srv.logger.Info("Starting account registration", "email", input.Email)

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", "error", err)

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("registration failed")
	}

	var registered *entity.User

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 1. Check whether the email is already taken.
		_, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			// A record was found, so the email is in use.
			return domainerrors.ErrEmailAlreadyExists.WrapMessage("registration failed")
		}
		// We expect a 'not found' error. Anything else is a real failure
		// (including a missing table, which surfaces as StoreUnavailable).
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email availability")
		}

		// 2. Create the account. The unique index backs up the check above.
		newUser := &entity.User{
			Email:        input.Email,
			Name:         input.Name,
			PasswordHash: hashedPassword,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.WithStack(err)
		}
		registered = newUser

		return nil
	})

	if err != nil {
		srv.logger.Warn("Account registration failed", "email", input.Email, "error", err.Error())

		return nil, err
	}
	srv.logger.Debug("Account registered", "userID", registered.ID)

	return usecase.NewAccountView(registered), nil
}

// Login verifies credentials and issues an access token.
// A missing account and a failed password check collapse into the same
// InvalidCredentials outcome so callers cannot probe which one was wrong.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Starting login", "email", input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.logger.Warn("Login rejected", "email", input.Email)

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	token, err := srv.tokenService.Issue(user.ID, user.Email)
	if err != nil {
		srv.logger.Error("Failed to issue token", "error", err)

		return nil, domainerrors.ErrTokenIssueFailed.WrapMessage("login failed")
	}
	srv.logger.Debug("Login succeeded", "userID", user.ID)

	return &usecase.LoginOutput{
		Token: token,
		User:  usecase.NewAccountView(user),
	}, nil
}

// GetByID returns the full account entity.
func (srv *userService) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("get account failed")
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return user, nil
}

// GetByEmail returns the full account entity by its login key.
func (srv *userService) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("get account failed")
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return user, nil
}

// List returns public views of every account, in store order.
func (srv *userService) List(ctx context.Context) ([]*usecase.AccountView, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	views := make([]*usecase.AccountView, 0, len(users))
	for _, user := range users {
		views = append(views, usecase.NewAccountView(user))
	}

	return views, nil
}

// Update applies a partial update. A supplied password is re-hashed before
// persisting; omitted fields are left untouched.
func (srv *userService) Update(ctx context.Context, id int64, input *usecase.UpdateAccountInput) (*usecase.AccountView, error) {
	srv.logger.Info("Updating account", "userID", id)

	var updated *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrAccountNotFound.WrapMessage("update failed")
			}

			return errors.Wrap(err, "failed to find account for update")
		}

		if input.Email != nil {
			user.Email = *input.Email
		}
		if input.Name != nil {
			user.Name = *input.Name
		}
		if input.Password != nil {
			hashed, err := srv.hasher.Hash(*input.Password)
			if err != nil {
				return domainerrors.ErrPasswordHashFailed.WrapMessage("update failed")
			}
			user.PasswordHash = hashed
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.WithStack(err)
		}
		updated = user

		return nil
	})

	if err != nil {
		srv.logger.Warn("Account update failed", "userID", id, "error", err.Error())

		return nil, err
	}
	srv.logger.Debug("Account updated", "userID", id)

	return usecase.NewAccountView(updated), nil
}

// Delete removes the account and returns the deleted entity for internal use.
// The store rejects the delete while posts still reference the account.
func (srv *userService) Delete(ctx context.Context, id int64) (*entity.User, error) {
	srv.logger.Info("Deleting account", "userID", id)

	var deleted *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrAccountNotFound.WrapMessage("delete failed")
			}

			return errors.Wrap(err, "failed to find account for delete")
		}

		if err := userRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrAccountNotFound.WrapMessage("delete failed")
			}

			return errors.WithStack(err)
		}
		deleted = user

		return nil
	})

	if err != nil {
		srv.logger.Warn("Account delete failed", "userID", id, "error", err.Error())

		return nil, err
	}
	srv.logger.Debug("Account deleted", "userID", id)

	return deleted, nil
}
