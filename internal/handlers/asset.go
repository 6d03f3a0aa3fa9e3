// internal/handlers/asset.go
package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/truvalue/truvalue-backend/internal/i18n"
	"github.com/truvalue/truvalue-backend/internal/models"
	"github.com/truvalue/truvalue-backend/internal/services"
	"github.com/truvalue/truvalue-backend/internal/utils"
)

type AssetHandler struct {
	assetService *services.AssetService
}

func NewAssetHandler(assetService *services.AssetService) *AssetHandler {
	return &AssetHandler{assetService: assetService}
}

// GET /assets
func (h *AssetHandler) GetAssets(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	params := utils.GetPaginationParams(c)
	searchParams := services.AssetSearchParams{
		PaginationParams: params,
	}

	if typeStr := c.Query("type"); typeStr != "" {
		assetType := models.AssetType(typeStr)
		if !assetType.Valid() {
			utils.BadRequestResponse(c, "Invalid asset type", nil)
			return
		}
		searchParams.Type = &assetType
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status := models.AssetStatus(statusStr)
		if !status.Valid() {
			utils.BadRequestResponse(c, "Invalid asset status", nil)
			return
		}
		searchParams.Status = &status
	}

	if favoriteStr := c.Query("favorite"); favoriteStr != "" {
		favorite := favoriteStr == "true"
		searchParams.Favorite = &favorite
	}

	assets, total, err := h.assetService.SearchAssets(userID, searchParams)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(assets, total, params)
	utils.PaginatedResponse(c, result)
}

// POST /assets
func (h *AssetHandler) CreateAsset(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	// Default the owner address to the authenticated wallet
	if req.OwnerAddress == "" {
		if wallet, ok := utils.GetWalletFromContext(c); ok {
			req.OwnerAddress = wallet
		}
	}
	if req.OwnerAddress == "" {
		utils.BadRequestResponse(c, "owner_address is required when no wallet is linked", nil)
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	asset, err := h.assetService.CreateAsset(userID, &req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyAssetCreated),
		"asset":   asset,
	})
}

// GET /assets/:id
func (h *AssetHandler) GetAsset(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	asset, err := h.assetService.GetAsset(id, userID)
	if err != nil {
		utils.NotFoundResponse(c, i18n.KeyAssetNotFound)
		return
	}

	utils.SuccessResponse(c, gin.H{"asset": asset})
}

// PUT /assets/:id
func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	asset, err := h.assetService.UpdateAsset(id, userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyAssetUpdated),
		"asset":   asset,
	})
}

// DELETE /assets/:id
func (h *AssetHandler) DeleteAsset(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.assetService.DeleteAsset(id, userID); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyAssetDeleted),
	})
}

// PATCH /assets/:id/verify
func (h *AssetHandler) VerifyAsset(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	asset, err := h.assetService.VerifyAsset(c.Request.Context(), id, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyAssetVerified),
		"asset":   asset,
	})
}

// POST /assets/:id/mint
func (h *AssetHandler) MintAsset(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	asset, err := h.assetService.MintAsset(c.Request.Context(), id, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyAssetMinted),
		"asset":   asset,
	})
}

// POST /assets/batch-mint
func (h *AssetHandler) BatchMintAssets(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req struct {
		AssetIDs []uint `json:"asset_ids" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	results := h.assetService.BatchMintAssets(c.Request.Context(), req.AssetIDs, userID)

	utils.SuccessResponse(c, gin.H{"results": results})
}

// PUT /assets/:id/favorite
func (h *AssetHandler) SetFavorite(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Favorite bool `json:"favorite"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	asset, err := h.assetService.SetFavorite(id, userID, req.Favorite)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyAssetFavoriteSet),
		"asset":   asset,
	})
}

// GET /dashboard
func (h *AssetHandler) GetDashboard(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	summary, err := h.assetService.GetDashboardSummary(userID)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"dashboard": summary})
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		utils.BadRequestResponse(c, "Invalid "+name+" parameter", nil)
		return 0, false
	}
	return uint(id), true
}

// respondServiceError maps the service error vocabulary to HTTP codes.
func respondServiceError(c *gin.Context, err error) {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "not found"):
		utils.NotFoundResponse(c, msg)
	case strings.Contains(msg, "unauthorized"):
		utils.ForbiddenResponse(c, msg)
	case strings.Contains(msg, "invalid status transition"),
		strings.Contains(msg, "cannot be modified"),
		strings.Contains(msg, "cannot be deleted"):
		lang := utils.GetLangFromContext(c)
		utils.ErrorResponse(c, http.StatusConflict, "CONFLICT",
			i18n.T(lang, i18n.KeyAssetInvalidStatus), msg)
	default:
		utils.BadRequestResponse(c, msg, nil)
	}
}
