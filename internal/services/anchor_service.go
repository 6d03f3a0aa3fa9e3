// internal/services/anchor_service.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/truvalue/truvalue-backend/internal/anchor"
	"github.com/truvalue/truvalue-backend/internal/config"
	"github.com/truvalue/truvalue-backend/internal/models"
	"github.com/truvalue/truvalue-backend/internal/utils"
)

// AnchorService computes tamper-evidence fingerprints of asset records
// and, when a chain client is configured, writes them to the
// TruvalueAnchor contract. Without a client the fingerprint is still
// computed and stored so records can be anchored retroactively.
type AnchorService struct {
	cfg    *config.Config
	client *anchor.Client
}

// assetRecord is the canonical anchored representation of an asset.
// Field order matters: the JSON encoding is the hashed payload.
type assetRecord struct {
	AssetID      uint   `json:"asset_id"`
	OwnerAddress string `json:"owner_address"`
	Type         string `json:"type"`
	Name         string `json:"name,omitempty"`
	SerialNumber string `json:"serial_number,omitempty"`
	CreatedAt    int64  `json:"created_at"`
}

func NewAnchorService(cfg *config.Config) *AnchorService {
	s := &AnchorService{cfg: cfg}

	if cfg.Blockchain.RPCURL == "" {
		logrus.Info("No blockchain RPC configured, anchoring runs in local mode")
		return s
	}

	record, path, err := anchor.LatestDeployment(cfg.Blockchain.DeploymentsDir, cfg.Blockchain.Network)
	if err != nil {
		logrus.WithError(err).Warn("No usable deployment record, anchoring runs in local mode")
		return s
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := anchor.DialWithKey(ctx, cfg.Blockchain.RPCURL, record.ContractAddress, cfg.Blockchain.PrivateKey, cfg.Blockchain.ChainID)
	if err != nil {
		logrus.WithError(err).Warn("Failed to connect anchor client, anchoring runs in local mode")
		return s
	}

	logrus.WithFields(logrus.Fields{
		"contract":   record.ContractAddress,
		"network":    cfg.Blockchain.Network,
		"deployment": path,
	}).Info("Anchor client connected")

	s.client = client
	return s
}

// Enabled reports whether on-chain anchoring is active.
func (s *AnchorService) Enabled() bool {
	return s.client != nil
}

// AnchorAsset fingerprints the asset record and anchors it on chain
// when a client is available. It returns the hex fingerprint and, if a
// transaction was sent, its hash.
func (s *AnchorService) AnchorAsset(ctx context.Context, asset *models.Asset) (string, string, error) {
	payload, err := json.Marshal(assetRecord{
		AssetID:      asset.ID,
		OwnerAddress: asset.OwnerAddress,
		Type:         string(asset.Type),
		Name:         asset.Name(),
		SerialNumber: asset.SerialNumber(),
		CreatedAt:    asset.CreatedAt.Unix(),
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to encode asset record: %w", err)
	}

	hashHex := utils.Fingerprint(payload)

	if s.client == nil {
		logrus.WithFields(logrus.Fields{
			"asset_id": asset.ID,
			"hash":     hashHex,
		}).Info("Anchor recorded locally (no chain client)")
		return hashHex, "", nil
	}

	receipt, err := s.client.Anchor(ctx, utils.FingerprintBytes32(payload))
	if err != nil {
		return "", "", fmt.Errorf("failed to anchor asset %d: %w", asset.ID, err)
	}

	txHash := receipt.TxHash.Hex()
	logrus.WithFields(logrus.Fields{
		"asset_id": asset.ID,
		"hash":     hashHex,
		"tx":       txHash,
	}).Info("Asset anchored on chain")

	return hashHex, txHash, nil
}

func (s *AnchorService) Close() {
	if s.client != nil {
		s.client.Close()
	}
}
