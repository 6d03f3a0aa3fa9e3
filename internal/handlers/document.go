// internal/handlers/document.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/truvalue/truvalue-backend/internal/i18n"
	"github.com/truvalue/truvalue-backend/internal/services"
	"github.com/truvalue/truvalue-backend/internal/utils"
)

type DocumentHandler struct {
	documentService *services.DocumentService
}

func NewDocumentHandler(documentService *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// POST /assets/:id/documents
func (h *DocumentHandler) UploadDocument(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	assetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	// Exactly one file per request
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed), "missing file field")
		return
	}
	defer file.Close()

	document, err := h.documentService.UploadDocument(assetID, userID, file, header)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":  i18n.T(lang, i18n.KeyDocumentUploaded),
		"document": document,
	})
}

// GET /assets/:id/documents
func (h *DocumentHandler) GetDocuments(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	assetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	documents, err := h.documentService.ListDocuments(assetID, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"documents": documents})
}

// GET /assets/:id/documents/:docID/download
func (h *DocumentHandler) DownloadDocument(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	assetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	docID, ok := parseIDParam(c, "docID")
	if !ok {
		return
	}

	url, err := h.documentService.DocumentDownloadURL(assetID, docID, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"download_url": url})
}

// DELETE /assets/:id/documents/:docID
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	assetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	docID, ok := parseIDParam(c, "docID")
	if !ok {
		return
	}

	if err := h.documentService.DeleteDocument(assetID, docID, userID); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyDocumentDeleted),
	})
}
