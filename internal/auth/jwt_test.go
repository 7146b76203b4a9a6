package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "shop@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, org, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, "shop@example.com", org)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, _, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	token, err := GenerateToken(1, "shop@example.com")
	require.NoError(t, err)

	old := jwtSecretKey
	defer func() { jwtSecretKey = old }()
	SetSecret("a completely different key")

	_, _, err = ValidateToken(token)
	assert.Error(t, err)
}
