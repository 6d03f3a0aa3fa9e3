// internal/services/asset_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/truvalue/truvalue-backend/internal/database"
	"github.com/truvalue/truvalue-backend/internal/models"
	"github.com/truvalue/truvalue-backend/internal/utils"
)

type AssetService struct {
	db            *gorm.DB
	anchorService *AnchorService
}

type CreateAssetRequest struct {
	Type         string                 `json:"type" validate:"required,asset_type"`
	OwnerAddress string                 `json:"owner_address" validate:"omitempty,eth_address"`
	Metadata     map[string]interface{} `json:"metadata" validate:"required"`
	ImageURLs    []string               `json:"image_urls,omitempty"`
}

type UpdateAssetRequest struct {
	Type      string                 `json:"type,omitempty" validate:"omitempty,asset_type"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	ImageURLs []string               `json:"image_urls,omitempty"`
}

type AssetSearchParams struct {
	utils.PaginationParams
	OwnerID  *uint               `json:"owner_id,omitempty"`
	Type     *models.AssetType   `json:"type,omitempty"`
	Status   *models.AssetStatus `json:"status,omitempty"`
	Favorite *bool               `json:"favorite,omitempty"`
}

// BatchMintResult reports the per-asset outcome of a batch mint.
type BatchMintResult struct {
	AssetID uint    `json:"asset_id"`
	TokenID *uint64 `json:"token_id,omitempty"`
	Error   string  `json:"error,omitempty"`
}

// DashboardSummary aggregates registry counts for the overview screen.
type DashboardSummary struct {
	TotalAssets   int64            `json:"total_assets"`
	StatusCounts  map[string]int64 `json:"status_counts"`
	TypeCounts    map[string]int64 `json:"type_counts"`
	FavoriteCount int64            `json:"favorite_count"`
	RecentAssets  []models.Asset   `json:"recent_assets"`
}

func NewAssetService(db *gorm.DB, anchorService *AnchorService) *AssetService {
	return &AssetService{
		db:            db,
		anchorService: anchorService,
	}
}

func (s *AssetService) CreateAsset(ownerID uint, req *CreateAssetRequest) (*models.Asset, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// The handler defaults this from the authenticated wallet
	if req.OwnerAddress == "" {
		return nil, errors.New("owner address is required")
	}

	metadata, err := models.NormalizeMetadata(req.Metadata)
	if err != nil {
		return nil, err
	}

	if name, _ := metadata[models.MetaName].(string); name == "" {
		return nil, errors.New("metadata name is required")
	}

	// Verify owner exists and is active
	var owner models.User
	if err := s.db.First(&owner, ownerID).Error; err != nil {
		return nil, fmt.Errorf("owner not found: %w", err)
	}

	if owner.Status != models.UserStatusActive {
		return nil, errors.New("owner account is not active")
	}

	asset := &models.Asset{
		OwnerID:      ownerID,
		OwnerAddress: req.OwnerAddress,
		Type:         models.AssetType(req.Type),
		Status:       models.AssetStatusDraft,
		Metadata:     metadata,
		ImageURLs:    req.ImageURLs,
	}

	if err := s.db.Create(asset).Error; err != nil {
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}

	s.db.Preload("Owner").First(asset, asset.ID)

	return asset, nil
}

func (s *AssetService) GetAsset(id uint, userID uint) (*models.Asset, error) {
	var asset models.Asset
	if err := s.db.Preload("Owner").Preload("Documents").First(&asset, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("asset not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if asset.OwnerID != userID {
		return nil, errors.New("asset not found")
	}

	return &asset, nil
}

func (s *AssetService) UpdateAsset(id uint, userID uint, req *UpdateAssetRequest) (*models.Asset, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	asset, err := s.findOwnedAsset(id, userID)
	if err != nil {
		return nil, err
	}

	if asset.Status == models.AssetStatusMinted {
		return nil, errors.New("minted assets cannot be modified")
	}

	updates := make(map[string]interface{})
	if req.Type != "" {
		updates["type"] = models.AssetType(req.Type)
	}
	if req.Metadata != nil {
		metadata, err := models.NormalizeMetadata(req.Metadata)
		if err != nil {
			return nil, err
		}
		updates["metadata"] = metadata
	}
	if req.ImageURLs != nil {
		updates["image_urls"] = req.ImageURLs
	}

	if len(updates) == 0 {
		return asset, nil
	}

	if err := s.db.Model(asset).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update asset: %w", err)
	}

	s.db.Preload("Owner").Preload("Documents").First(asset, id)

	return asset, nil
}

func (s *AssetService) DeleteAsset(id uint, userID uint) error {
	asset, err := s.findOwnedAsset(id, userID)
	if err != nil {
		return err
	}

	if asset.Status == models.AssetStatusMinted {
		return errors.New("minted assets cannot be deleted")
	}

	// Soft delete; document rows stay reachable through Unscoped for audits
	if err := s.db.Delete(asset).Error; err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}

	return nil
}

func (s *AssetService) SearchAssets(userID uint, params AssetSearchParams) ([]models.Asset, int64, error) {
	query := s.db.Model(&models.Asset{}).Where("owner_id = ?", userID)

	if params.Type != nil {
		query = query.Where("type = ?", *params.Type)
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.Favorite != nil {
		query = query.Where("is_favorite = ?", *params.Favorite)
	}

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where(
			"LOWER(metadata->>'name') LIKE ? OR LOWER(metadata->>'serial_number') LIKE ? OR LOWER(type::text) LIKE ?",
			searchTerm, searchTerm, searchTerm,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count assets: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "type", "status"}
	query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, params.PaginationParams)

	var assets []models.Asset
	if err := query.Find(&assets).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch assets: %w", err)
	}

	return assets, total, nil
}

// VerifyAsset moves a draft asset to verified and anchors its fingerprint.
func (s *AssetService) VerifyAsset(ctx context.Context, id uint, userID uint) (*models.Asset, error) {
	asset, err := s.findOwnedAsset(id, userID)
	if err != nil {
		return nil, err
	}

	if !asset.Status.CanTransitionTo(models.AssetStatusVerified) {
		return nil, fmt.Errorf("invalid status transition: cannot verify a %s asset", asset.Status)
	}

	hashHex, txHash, err := s.anchorService.AnchorAsset(ctx, asset)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"status":      models.AssetStatusVerified,
		"anchor_hash": "0x" + hashHex,
	}
	if txHash != "" {
		updates["anchor_tx_hash"] = txHash
	}

	if err := s.db.Model(asset).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update asset status: %w", err)
	}

	s.db.Preload("Owner").First(asset, id)

	return asset, nil
}

// MintAsset moves a verified asset to minted and allocates its token id.
func (s *AssetService) MintAsset(ctx context.Context, id uint, userID uint) (*models.Asset, error) {
	asset, err := s.findOwnedAsset(id, userID)
	if err != nil {
		return nil, err
	}

	if !asset.Status.CanTransitionTo(models.AssetStatusMinted) {
		return nil, fmt.Errorf("invalid status transition: cannot mint a %s asset", asset.Status)
	}

	hashHex, txHash, err := s.anchorService.AnchorAsset(ctx, asset)
	if err != nil {
		return nil, err
	}

	err = database.WithTransaction(s.db, func(tx *gorm.DB) error {
		tokenID, err := nextTokenID(tx)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{
			"status":      models.AssetStatusMinted,
			"token_id":    tokenID,
			"anchor_hash": "0x" + hashHex,
		}
		if txHash != "" {
			updates["anchor_tx_hash"] = txHash
		}

		return tx.Model(asset).Updates(updates).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to mint asset: %w", err)
	}

	s.db.Preload("Owner").First(asset, id)

	return asset, nil
}

// BatchMintAssets mints each verified asset in ids, reporting per-asset
// outcomes. Assets that are not in the verified state are skipped with
// an error entry and never change status.
func (s *AssetService) BatchMintAssets(ctx context.Context, ids []uint, userID uint) []BatchMintResult {
	results := make([]BatchMintResult, 0, len(ids))

	for _, id := range ids {
		result := BatchMintResult{AssetID: id}

		asset, err := s.MintAsset(ctx, id, userID)
		if err != nil {
			result.Error = err.Error()
		} else {
			result.TokenID = asset.TokenID
		}

		results = append(results, result)
	}

	return results
}

func (s *AssetService) SetFavorite(id uint, userID uint, favorite bool) (*models.Asset, error) {
	asset, err := s.findOwnedAsset(id, userID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(asset).Update("is_favorite", favorite).Error; err != nil {
		return nil, fmt.Errorf("failed to update favorite flag: %w", err)
	}

	asset.IsFavorite = favorite
	return asset, nil
}

func (s *AssetService) GetDashboardSummary(userID uint) (*DashboardSummary, error) {
	summary := &DashboardSummary{
		StatusCounts: make(map[string]int64),
		TypeCounts:   make(map[string]int64),
	}

	base := func() *gorm.DB {
		return s.db.Model(&models.Asset{}).Where("owner_id = ?", userID)
	}

	if err := base().Count(&summary.TotalAssets).Error; err != nil {
		return nil, fmt.Errorf("failed to count assets: %w", err)
	}

	type groupCount struct {
		Key   string
		Count int64
	}

	var statusCounts []groupCount
	if err := base().Select("status as key, count(*) as count").Group("status").Scan(&statusCounts).Error; err != nil {
		return nil, fmt.Errorf("failed to count by status: %w", err)
	}
	for _, row := range statusCounts {
		summary.StatusCounts[row.Key] = row.Count
	}

	var typeCounts []groupCount
	if err := base().Select("type as key, count(*) as count").Group("type").Scan(&typeCounts).Error; err != nil {
		return nil, fmt.Errorf("failed to count by type: %w", err)
	}
	for _, row := range typeCounts {
		summary.TypeCounts[row.Key] = row.Count
	}

	if err := base().Where("is_favorite = ?", true).Count(&summary.FavoriteCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count favorites: %w", err)
	}

	if err := base().Order("created_at DESC").Limit(5).Find(&summary.RecentAssets).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch recent assets: %w", err)
	}

	return summary, nil
}

func (s *AssetService) findOwnedAsset(id uint, userID uint) (*models.Asset, error) {
	var asset models.Asset
	if err := s.db.First(&asset, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("asset not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if asset.OwnerID != userID {
		return nil, errors.New("unauthorized to access this asset")
	}

	return &asset, nil
}

// nextTokenID allocates token ids sequentially from the current maximum.
func nextTokenID(tx *gorm.DB) (uint64, error) {
	var max *uint64
	err := tx.Model(&models.Asset{}).Unscoped().Select("MAX(token_id)").Scan(&max).Error
	if err != nil {
		return 0, fmt.Errorf("failed to allocate token id: %w", err)
	}

	if max == nil {
		return 1, nil
	}
	return *max + 1, nil
}
