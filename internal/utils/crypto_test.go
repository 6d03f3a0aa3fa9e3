// internal/utils/crypto_test.go
package utils

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprintKnownVector(t *testing.T) {
	// sha256("hello")
	assert.Equal(t,
		"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		Fingerprint([]byte("hello")))
}

func TestFingerprintBytes32MatchesHex(t *testing.T) {
	data := []byte("truvalue")
	raw := FingerprintBytes32(data)
	assert.Equal(t, Fingerprint(data), hex.EncodeToString(raw[:]))
}

func TestVerifyFingerprint(t *testing.T) {
	data := []byte("document body")
	hash := Fingerprint(data)

	assert.True(t, VerifyFingerprint(data, hash))
	assert.False(t, VerifyFingerprint([]byte("tampered body"), hash))
}

func TestGenerateRandomString(t *testing.T) {
	a, err := GenerateRandomString(32)
	require.NoError(t, err)
	b, err := GenerateRandomString(32)
	require.NoError(t, err)

	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}
