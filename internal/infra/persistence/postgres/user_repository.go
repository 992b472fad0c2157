// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).First(&userM, id).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}
		if isUndefinedTable(err) {
			return nil, domainerrors.ErrStoreUnavailable.WrapMessage("users table missing")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).Where("email = ?", email).First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}
		if isUndefinedTable(err) {
			return nil, domainerrors.ErrStoreUnavailable.WrapMessage("users table missing")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// FindAll retrieves every user in store order.
func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	var userMs []model.UserModel
	if err := repo.db.WithContext(ctx).Find(&userMs).Error; err != nil {
		if isUndefinedTable(err) {
			return nil, domainerrors.ErrStoreUnavailable.WrapMessage("users table missing")
		}

		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userMs))
	for i := range userMs {
		users = append(users, toUserDomain(&userMs[i]))
	}

	return users, nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyExists.WrapMessage("email already exists")
		}
		if isUndefinedTable(err) {
			return domainerrors.ErrStoreUnavailable.WrapMessage("users table missing")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies an existing user entity in the database.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Save(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Delete removes the user with the given ID.
// The posts table keeps a plain FK to users, so the store rejects the delete
// while posts still reference the account.
func (repo *userRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.UserModel{}, id)
	if err := result.Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAccountHasPosts.WrapMessage("account still owns posts")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		// Preserved on Save, which writes every column. Zero on inserts,
		// where gorm fills it in.
		CreatedAt: data.CreatedAt,
	}
}
