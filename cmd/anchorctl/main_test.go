// cmd/anchorctl/main_test.go
package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackendAddressUnset(t *testing.T) {
	t.Setenv("BACKEND_ANCHOR_ADDRESS", "")

	_, err := backendAddress()
	assert.ErrorContains(t, err, "not set")
}

func TestBackendAddressInvalid(t *testing.T) {
	t.Setenv("BACKEND_ANCHOR_ADDRESS", "0xnope")

	_, err := backendAddress()
	assert.ErrorContains(t, err, "not a valid address")
}

func TestBackendAddressValid(t *testing.T) {
	t.Setenv("BACKEND_ANCHOR_ADDRESS", "0x5FbDB2315678afecb367f032d93F642f64180aa3")

	addr, err := backendAddress()
	require.NoError(t, err)
	assert.Equal(t, "0x5FbDB2315678afecb367f032d93F642f64180aa3", addr.Hex())
}

func TestParseFingerprint(t *testing.T) {
	fingerprint, err := parseFingerprint("0x2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824")
	require.NoError(t, err)
	assert.Equal(t, byte(0x2c), fingerprint[0])
	assert.Equal(t, byte(0x24), fingerprint[31])
}

func TestParseFingerprintRejectsNonHex(t *testing.T) {
	_, err := parseFingerprint("0xzz")
	assert.ErrorContains(t, err, "not valid hex")
}

func TestParseFingerprintRejectsWrongLength(t *testing.T) {
	_, err := parseFingerprint("0x2cf24dba")
	assert.ErrorContains(t, err, "want 32")
}
