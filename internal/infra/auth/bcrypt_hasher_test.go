package auth

import (
	"testing"

	"quill/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testHasherConfig(cost int) *config.Config {
	cfg := &config.Config{}
	cfg.Bcrypt.Cost = cost

	return cfg
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	// Low cost keeps the test fast.
	hasher := NewBcryptHasher(testHasherConfig(bcrypt.MinCost))

	password := "password123"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("wrong-password", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_CheckWithInvalidHash(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig(bcrypt.MinCost))

	assert.False(t, hasher.Check("password123", "invalid_hash"))
	assert.False(t, hasher.Check("password123", ""))
}

func TestBcryptHasher_ConfiguredCost(t *testing.T) {
	customCost := 6
	hasher := NewBcryptHasher(testHasherConfig(customCost))

	hash, err := hasher.Hash("password123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestBcryptHasher_OutOfRangeCostFallsBack(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig(99))

	hash, err := hasher.Hash("password123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestBcryptHasher_SaltedHashesDiffer(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig(bcrypt.MinCost))

	first, err := hasher.Hash("password123")
	require.NoError(t, err)
	second, err := hasher.Hash("password123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("password123", first))
	assert.True(t, hasher.Check("password123", second))
}
