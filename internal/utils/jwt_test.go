// internal/utils/jwt_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateJWT(42, "alice", "0x5FbDB2315678afecb367f032d93F642f64180aa3", 1)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)

	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "0x5FbDB2315678afecb367f032d93F642f64180aa3", claims.WalletAddress)
	assert.Equal(t, "truvalue-registry", claims.Issuer)
	assert.Equal(t, "42", claims.Subject)
}

func TestJWTExpired(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateJWT(42, "alice", "", -1)
	require.NoError(t, err)

	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestJWTWrongSecret(t *testing.T) {
	SetJWTSecret("test-secret")
	token, err := GenerateJWT(42, "alice", "", 1)
	require.NoError(t, err)

	SetJWTSecret("another-secret")
	defer SetJWTSecret("test-secret")

	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateRefreshToken(7, 1)
	require.NoError(t, err)

	userID, err := ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), userID)
}

func TestValidateJWTGarbage(t *testing.T) {
	_, err := ValidateJWT("not.a.token")
	assert.Error(t, err)

	_, err = ValidateRefreshToken("")
	assert.Error(t, err)
}
