// internal/utils/crypto.go
package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"math/big"
)

func GenerateRandomString(length int) (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, length)

	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		b[i] = charset[n.Int64()]
	}

	return string(b), nil
}

func GenerateVerificationCode() (string, error) {
	return GenerateRandomString(32)
}

// Fingerprint returns the hex-encoded SHA-256 digest of data. Used as the
// tamper-evidence hash for documents and anchored asset records.
func Fingerprint(data []byte) string {
	digest := sha256.Sum256(data)
	return hex.EncodeToString(digest[:])
}

// FingerprintBytes32 returns the digest as a fixed array, the form the
// anchor contract expects.
func FingerprintBytes32(data []byte) [32]byte {
	return sha256.Sum256(data)
}

func VerifyFingerprint(data []byte, expectedHash string) bool {
	return Fingerprint(data) == expectedHash
}
