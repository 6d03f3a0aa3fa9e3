// internal/models/document_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortHashTruncates(t *testing.T) {
	d := &AssetDocument{Hash: "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"}
	assert.Equal(t, "2cf24dba5fb0", d.ShortHash())
}

func TestShortHashKeepsShortValues(t *testing.T) {
	d := &AssetDocument{Hash: "abc123"}
	assert.Equal(t, "abc123", d.ShortHash())
}
