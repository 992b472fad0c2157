// Package mocks provides testify mocks for the domain service contracts.
package mocks

import (
	"quill/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// PasswordHasher is a mock of service.PasswordHasher.
type PasswordHasher struct {
	mock.Mock
}

func (m *PasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *PasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

// TokenService is a mock of service.TokenService.
type TokenService struct {
	mock.Mock
}

func (m *TokenService) Issue(userID int64, email string) (string, error) {
	args := m.Called(userID, email)

	return args.String(0), args.Error(1)
}

func (m *TokenService) Verify(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if claims, ok := args.Get(0).(*service.Claims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}
