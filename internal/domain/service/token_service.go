package service

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Distinct verification failure reasons. The auth middleware collapses them
// into one HTTP outcome, but the contract keeps them separate for callers
// and tests.
var (
	// ErrTokenExpired is returned when a token's validity window has elapsed.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenMalformed is returned when a token is not a structurally valid JWT.
	ErrTokenMalformed = errors.New("token malformed")

	// ErrTokenSignatureInvalid is returned when a token's signature does not verify.
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
)

// Claims defines the identity payload carried by an access token.
type Claims struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying access tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed, time-limited access token for the given account.
	Issue(userID int64, email string) (string, error)

	// Verify validates a token string cryptographically and temporally and
	// returns the decoded claims. Failures map onto the sentinel errors above.
	Verify(tokenString string) (*Claims, error)
}
