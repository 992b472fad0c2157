package middleware

import (
	"strings"

	"quill/internal/delivery/http/response"
	"quill/internal/domain/service"
	"quill/internal/errors"

	"github.com/labstack/echo/v4"
)

// Context keys populated by Authenticate for downstream handlers.
const (
	ContextKeyAccountID = "accountID"
	ContextKeyEmail     = "accountEmail"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
// A missing or malformed Authorization header yields 401; a token that fails
// verification yields 403.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "AUTH_REQUIRED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.Unauthorized(c, "AUTH_REQUIRED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				return response.Forbidden(c, "TOKEN_EXPIRED", "Token has expired")
			}

			return response.Forbidden(c, "INVALID_TOKEN", "Invalid token")
		}

		// Set account info on the context for handlers to use
		c.Set(ContextKeyAccountID, claims.UserID)
		c.Set(ContextKeyEmail, claims.Email)

		return next(c)
	}
}
