// Package mocks provides testify mocks for the repository contracts.
package mocks

import (
	"context"

	"quill/internal/domain/entity"
	"quill/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// UserRepository is a mock of repository.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *UserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if users, ok := args.Get(0).([]*entity.User); ok {
		return users, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *UserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// PostRepository is a mock of repository.PostRepository.
type PostRepository struct {
	mock.Mock
}

func (m *PostRepository) FindByID(ctx context.Context, id int64) (*entity.Post, error) {
	args := m.Called(ctx, id)
	if post, ok := args.Get(0).(*entity.Post); ok {
		return post, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *PostRepository) FindAll(ctx context.Context) ([]*entity.Post, error) {
	args := m.Called(ctx)
	if posts, ok := args.Get(0).([]*entity.Post); ok {
		return posts, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *PostRepository) Create(ctx context.Context, post *entity.Post) error {
	return m.Called(ctx, post).Error(0)
}

func (m *PostRepository) Update(ctx context.Context, post *entity.Post) error {
	return m.Called(ctx, post).Error(0)
}

func (m *PostRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// RepositoryFactory is a mock of repository.RepositoryFactory.
type RepositoryFactory struct {
	mock.Mock
}

func (m *RepositoryFactory) UserRepo() repository.UserRepository {
	args := m.Called()
	if repo, ok := args.Get(0).(repository.UserRepository); ok {
		return repo
	}

	return nil
}

func (m *RepositoryFactory) PostRepo() repository.PostRepository {
	args := m.Called()
	if repo, ok := args.Get(0).(repository.PostRepository); ok {
		return repo
	}

	return nil
}

// TransactionManager is a fake repository.TransactionManager that runs the
// callback against the configured factory without a real transaction, which
// is what service tests want. Set Err to force the whole Execute to fail.
type TransactionManager struct {
	Factory repository.RepositoryFactory
	Err     error
}

func (m *TransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if m.Err != nil {
		return m.Err
	}

	return fn(m.Factory)
}
