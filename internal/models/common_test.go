// internal/models/common_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssetStatusTransitions(t *testing.T) {
	tests := []struct {
		from    AssetStatus
		to      AssetStatus
		allowed bool
	}{
		{AssetStatusDraft, AssetStatusVerified, true},
		{AssetStatusVerified, AssetStatusMinted, true},
		{AssetStatusDraft, AssetStatusMinted, false},    // no skipping
		{AssetStatusVerified, AssetStatusDraft, false},  // no going back
		{AssetStatusMinted, AssetStatusVerified, false}, // minted is terminal
		{AssetStatusMinted, AssetStatusMinted, false},
		{AssetStatusDraft, AssetStatusDraft, false},
		{AssetStatus("unknown"), AssetStatusVerified, false},
		{AssetStatusDraft, AssetStatus("unknown"), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestAssetTypeValid(t *testing.T) {
	for _, known := range AssetTypes() {
		assert.True(t, known.Valid())
	}
	assert.False(t, AssetType("boat").Valid())
	assert.False(t, AssetType("").Valid())
}

func TestAssetMetadataAccessors(t *testing.T) {
	asset := Asset{
		Metadata: JSONB{
			MetaName:         "Porsche 911",
			MetaSerialNumber: "WP0ZZZ99ZTS392124",
		},
	}

	assert.Equal(t, "Porsche 911", asset.Name())
	assert.Equal(t, "WP0ZZZ99ZTS392124", asset.SerialNumber())

	empty := Asset{}
	assert.Equal(t, "", empty.Name())
	assert.Equal(t, "", empty.SerialNumber())
}
