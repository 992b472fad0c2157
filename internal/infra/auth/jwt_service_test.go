package auth

import (
	"testing"
	"time"

	"quill/config"
	"quill/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.JWT = secret

	return cfg
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig("test_secret_key_very_long_for_testing"))
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	token, err := jwtService.Issue(42, "test@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.Verify(token)
	require.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "test@example.com", claims.Email)

	// Issued tokens carry a 24 hour validity window.
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	assert.WithinDuration(t, claims.IssuedAt.Add(24*time.Hour), claims.ExpiresAt.Time, time.Second)
}

func TestJWTService_MissingSecret(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig(""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
}

func TestJWTService_MalformedToken(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig("test_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	claims, err := jwtService.Verify("clearly-not-a-jwt-token-format")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenMalformed)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testJWTConfig("secret_one_very_long_for_testing"))
	require.NoError(t, err)
	verifier, err := NewJWTService(testJWTConfig("secret_two_very_long_for_testing"))
	require.NoError(t, err)

	token, err := issuer.Issue(42, "test@example.com")
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenSignatureInvalid)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	secret := "test_secret_key_very_long_for_testing"
	jwtService, err := NewJWTService(testJWTConfig(secret))
	require.NoError(t, err)

	// Sign a token whose window already elapsed with the same secret.
	now := time.Now()
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &service.Claims{
		UserID: 42,
		Email:  "test@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	})
	tokenString, err := expired.SignedString([]byte(secret))
	require.NoError(t, err)

	claims, err := jwtService.Verify(tokenString)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestJWTService_RejectsNonHMACAlgorithm(t *testing.T) {
	secret := "test_secret_key_very_long_for_testing"
	jwtService, err := NewJWTService(testJWTConfig(secret))
	require.NoError(t, err)

	// alg=none tokens must never verify.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &service.Claims{
		UserID: 42,
		Email:  "test@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := jwtService.Verify(tokenString)
	assert.Nil(t, claims)
	assert.Error(t, err)
}
