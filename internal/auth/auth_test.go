package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, CheckPassword(hash, "s3cret-password"))
	assert.False(t, CheckPassword(hash, "wrong"))
}

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret-test-secret")
	uid := uuid.New()

	token, err := IssueToken(secret, uid)
	require.NoError(t, err)

	parsed, err := ParseToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, uid, parsed)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := IssueToken([]byte("secret-one-secret-one"), uuid.New())
	require.NoError(t, err)

	_, err = ParseToken([]byte("secret-two-secret-two"), token)
	assert.Error(t, err)
}

func TestTokenGarbage(t *testing.T) {
	_, err := ParseToken([]byte("test-secret-test-secret"), "not-a-jwt")
	assert.Error(t, err)
}
