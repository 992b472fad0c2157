// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"quill/config"
	"quill/internal/domain/service"
)

// accessTokenTTL is the fixed validity window for access tokens.
const accessTokenTTL = 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string        // HMAC signing secret, injected at construction.
	ttl    time.Duration // Time-to-live for issued tokens.
}

// NewJWTService is the constructor for jwtService.
// A missing signing secret is a startup-class configuration error, not a
// per-request condition; the process must not come up without it.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.JWT == "" {
		return nil, errors.New("jwt signing secret must be provided")
	}

	return &jwtService{
		secret: cfg.SecretKey.JWT,
		ttl:    accessTokenTTL,
	}, nil
}

// Issue creates a signed access token carrying the account identity claim.
func (s *jwtService) Issue(userID int64, email string) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// Verify validates signature and expiry and returns the decoded claims.
// Failure reasons are mapped onto the service-level sentinels so callers can
// distinguish an expired token from a forged or garbled one.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, service.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, service.ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, service.ErrTokenSignatureInvalid
		default:
			return nil, err
		}
	}
	if !token.Valid {
		return nil, service.ErrTokenSignatureInvalid
	}

	return claims, nil
}
