// Package mocks provides testify mocks for the usecase contracts.
package mocks

import (
	"context"

	"quill/internal/domain/entity"
	"quill/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// UserUsecase is a mock of usecase.UserUsecase.
type UserUsecase struct {
	mock.Mock
}

func (m *UserUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AccountView, error) {
	args := m.Called(ctx, input)
	if view, ok := args.Get(0).(*usecase.AccountView); ok {
		return view, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *UserUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.LoginOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *UserUsecase) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *UserUsecase) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *UserUsecase) List(ctx context.Context) ([]*usecase.AccountView, error) {
	args := m.Called(ctx)
	if views, ok := args.Get(0).([]*usecase.AccountView); ok {
		return views, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *UserUsecase) Update(ctx context.Context, id int64, input *usecase.UpdateAccountInput) (*usecase.AccountView, error) {
	args := m.Called(ctx, id, input)
	if view, ok := args.Get(0).(*usecase.AccountView); ok {
		return view, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *UserUsecase) Delete(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

// PostUsecase is a mock of usecase.PostUsecase.
type PostUsecase struct {
	mock.Mock
}

func (m *PostUsecase) Create(ctx context.Context, input *usecase.CreatePostInput) (*usecase.PostView, error) {
	args := m.Called(ctx, input)
	if view, ok := args.Get(0).(*usecase.PostView); ok {
		return view, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *PostUsecase) GetByID(ctx context.Context, id int64) (*usecase.PostView, error) {
	args := m.Called(ctx, id)
	if view, ok := args.Get(0).(*usecase.PostView); ok {
		return view, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *PostUsecase) List(ctx context.Context) ([]*usecase.PostView, error) {
	args := m.Called(ctx)
	if views, ok := args.Get(0).([]*usecase.PostView); ok {
		return views, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *PostUsecase) Update(ctx context.Context, id int64, input *usecase.UpdatePostInput) (*usecase.PostView, error) {
	args := m.Called(ctx, id, input)
	if view, ok := args.Get(0).(*usecase.PostView); ok {
		return view, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *PostUsecase) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
