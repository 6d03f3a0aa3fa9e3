// internal/services/anchor_service_test.go
package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/truvalue/truvalue-backend/internal/config"
	"github.com/truvalue/truvalue-backend/internal/models"
)

func localAnchorService() *AnchorService {
	return &AnchorService{cfg: &config.Config{}}
}

func sampleAsset() *models.Asset {
	asset := &models.Asset{
		OwnerAddress: "0x5FbDB2315678afecb367f032d93F642f64180aa3",
		Type:         models.AssetTypeWatch,
		Metadata: models.JSONB{
			models.MetaName:         "Omega Speedmaster",
			models.MetaSerialNumber: "145.022",
		},
	}
	asset.ID = 17
	asset.CreatedAt = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return asset
}

func TestAnchorAssetLocalMode(t *testing.T) {
	s := localAnchorService()
	assert.False(t, s.Enabled())

	hash, txHash, err := s.AnchorAsset(context.Background(), sampleAsset())
	require.NoError(t, err)

	assert.Len(t, hash, 64)
	assert.Empty(t, txHash, "local mode must not produce a transaction")
}

func TestAnchorAssetDeterministic(t *testing.T) {
	s := localAnchorService()

	first, _, err := s.AnchorAsset(context.Background(), sampleAsset())
	require.NoError(t, err)
	second, _, err := s.AnchorAsset(context.Background(), sampleAsset())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAnchorAssetSensitiveToRecordChanges(t *testing.T) {
	s := localAnchorService()

	base, _, err := s.AnchorAsset(context.Background(), sampleAsset())
	require.NoError(t, err)

	renamed := sampleAsset()
	renamed.Metadata[models.MetaName] = "Omega Seamaster"
	changed, _, err := s.AnchorAsset(context.Background(), renamed)
	require.NoError(t, err)

	assert.NotEqual(t, base, changed)
}
