package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndExtractIdentity(t *testing.T) {
	token, err := GenerateToken("user-123", "doctor", time.Hour)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	id, role, err := ExtractIdentityFromToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", id)
	assert.Equal(t, "doctor", role)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-123", "patient", -time.Minute)
	assert.NoError(t, err)

	_, _, err = ExtractIdentityFromToken(token)
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	_, _, err := ExtractIdentityFromToken("not-a-token")
	assert.Error(t, err)
}

func TestHashTokenDeterministic(t *testing.T) {
	a := HashToken("token-a")
	assert.Equal(t, a, HashToken("token-a"))
	assert.NotEqual(t, a, HashToken("token-b"))
	assert.Len(t, a, 64)
}
