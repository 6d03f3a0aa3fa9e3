// internal/services/document_service.go
package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/truvalue/truvalue-backend/internal/models"
	"github.com/truvalue/truvalue-backend/internal/utils"
)

// DocumentService manages the immutable document sub-resource of an
// asset. Documents carry a SHA-256 fingerprint of the stored bytes and
// have no update operation.
type DocumentService struct {
	db             *gorm.DB
	storageService *StorageService
}

func NewDocumentService(db *gorm.DB, storageService *StorageService) *DocumentService {
	return &DocumentService{
		db:             db,
		storageService: storageService,
	}
}

func (s *DocumentService) UploadDocument(assetID uint, userID uint, file multipart.File, header *multipart.FileHeader) (*models.AssetDocument, error) {
	asset, err := s.findOwnedAsset(assetID, userID)
	if err != nil {
		return nil, err
	}

	// Read once: the same bytes are fingerprinted and stored
	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if len(fileBytes) == 0 {
		return nil, errors.New("uploaded file is empty")
	}

	hash := utils.Fingerprint(fileBytes)

	options := s.storageService.GetDefaultUploadOptions("documents")
	result, err := s.storageService.UploadBytes(fileBytes, header.Filename, header.Header.Get("Content-Type"), options)
	if err != nil {
		return nil, fmt.Errorf("failed to store document: %w", err)
	}

	document := &models.AssetDocument{
		AssetID:     asset.ID,
		FileName:    header.Filename,
		ContentType: result.MimeType,
		Size:        result.Size,
		Hash:        hash,
		StorageKey:  result.Key,
	}

	if err := s.db.Create(document).Error; err != nil {
		// Roll back the stored object so no orphan survives
		if delErr := s.storageService.DeleteFile(result.Key); delErr != nil {
			return nil, fmt.Errorf("failed to create document record: %w (cleanup also failed: %v)", err, delErr)
		}
		return nil, fmt.Errorf("failed to create document record: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"asset_id": asset.ID,
		"document": document.ID,
		"hash":     document.ShortHash(),
		"size":     document.Size,
	}).Info("Document stored")

	return document, nil
}

func (s *DocumentService) ListDocuments(assetID uint, userID uint) ([]models.AssetDocument, error) {
	if _, err := s.findOwnedAsset(assetID, userID); err != nil {
		return nil, err
	}

	documents := make([]models.AssetDocument, 0)
	if err := s.db.Where("asset_id = ?", assetID).Order("created_at DESC").Find(&documents).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch documents: %w", err)
	}

	return documents, nil
}

// DocumentDownloadURL resolves a short-lived URL for the stored object.
func (s *DocumentService) DocumentDownloadURL(assetID, documentID uint, userID uint) (string, error) {
	document, err := s.findDocument(assetID, documentID, userID)
	if err != nil {
		return "", err
	}

	url, err := s.storageService.DownloadURL(document.StorageKey, 15*time.Minute)
	if err != nil {
		return "", fmt.Errorf("failed to resolve download URL: %w", err)
	}

	return url, nil
}

func (s *DocumentService) DeleteDocument(assetID, documentID uint, userID uint) error {
	document, err := s.findDocument(assetID, documentID, userID)
	if err != nil {
		return err
	}

	// Stored object first, then the record, so a failure leaves the row
	if err := s.storageService.DeleteFile(document.StorageKey); err != nil {
		return fmt.Errorf("failed to delete stored document: %w", err)
	}

	if err := s.db.Delete(document).Error; err != nil {
		return fmt.Errorf("failed to delete document record: %w", err)
	}

	return nil
}

func (s *DocumentService) findDocument(assetID, documentID uint, userID uint) (*models.AssetDocument, error) {
	if _, err := s.findOwnedAsset(assetID, userID); err != nil {
		return nil, err
	}

	var document models.AssetDocument
	if err := s.db.Where("id = ? AND asset_id = ?", documentID, assetID).First(&document).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("document not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &document, nil
}

func (s *DocumentService) findOwnedAsset(assetID uint, userID uint) (*models.Asset, error) {
	var asset models.Asset
	if err := s.db.First(&asset, assetID).Error; err != nil {
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
