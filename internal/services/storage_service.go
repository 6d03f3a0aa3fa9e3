// internal/services/storage_service.go
package services

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"

	"github.com/truvalue/truvalue-backend/internal/config"
)

type StorageService struct {
	s3Client *s3.S3
	config   *config.Config
}

type UploadResult struct {
	URL      string `json:"url"`
	Key      string `json:"key"`
	Size     int64  `json:"size"`
	MimeType string `json:"mime_type"`
}

type UploadOptions struct {
	Folder       string
	MaxSize      int64 // in bytes
	AllowedTypes []string
	IsPublic     bool
}

func NewStorageService(config *config.Config) (*StorageService, error) {
	if config.AWS.AccessKeyID == "" {
		// Return service without S3 for local development
		return &StorageService{config: config}, nil
	}

	// Create AWS session
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(config.AWS.Region),
		Credentials: credentials.NewStaticCredentials(
			config.AWS.AccessKeyID,
			config.AWS.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &StorageService{
		s3Client: s3.New(sess),
		config:   config,
	}, nil
}

// UploadBytes stores already-read content. Callers that fingerprint the
// payload read it once and hand the bytes through here.
func (s *StorageService) UploadBytes(fileBytes []byte, originalName, contentType string, options UploadOptions) (*UploadResult, error) {
	// Validate file size
	if options.MaxSize > 0 && int64(len(fileBytes)) > options.MaxSize {
		return nil, fmt.Errorf("file size %d bytes exceeds maximum allowed size %d bytes", len(fileBytes), options.MaxSize)
	}

	// Validate file type
	if len(options.AllowedTypes) > 0 {
		fileExt := strings.ToLower(filepath.Ext(originalName))
		allowed := false
		for _, allowedType := range options.AllowedTypes {
			if fileExt == allowedType {
				allowed = true
				break
			}
		}
		if !allowed {
			return nil, fmt.Errorf("file type %s is not allowed", fileExt)
		}
	}

	// Generate unique filename
	filename := s.generateFileName(originalName, options.Folder)

	// Upload to S3 or local storage
	if s.s3Client != nil {
		return s.uploadToS3(fileBytes, filename, contentType, options.IsPublic)
	}

	return s.uploadToLocal(fileBytes, filename, contentType)
}

func (s *StorageService) uploadToS3(fileBytes []byte, key, contentType string, isPublic bool) (*UploadResult, error) {
	// Prepare S3 upload parameters
	params := &s3.PutObjectInput{
		Bucket:        aws.String(s.config.AWS.S3Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(fileBytes),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(fileBytes))),
	}

	if isPublic {
		params.ACL = aws.String("public-read")
	}

	// Upload to S3
	_, err := s.s3Client.PutObject(params)
	if err != nil {
		return nil, fmt.Errorf("failed to upload to S3: %w", err)
	}

	// Generate URL
	url := s.getS3URL(key)

	return &UploadResult{
		URL:      url,
		Key:      key,
		Size:     int64(len(fileBytes)),
		MimeType: contentType,
	}, nil
}

// uploadToLocal writes the object under the configured uploads
// directory so the development static route can serve it back.
func (s *StorageService) uploadToLocal(fileBytes []byte, filename, contentType string) (*UploadResult, error) {
	path := s.localPath(filename)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create local upload directory: %w", err)
	}
	if err := os.WriteFile(path, fileBytes, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write local upload: %w", err)
	}

	url := fmt.Sprintf("http://%s:%s/uploads/%s", s.config.Server.Host, s.config.Server.Port, filename)

	return &UploadResult{
		URL:      url,
		Key:      filename,
		Size:     int64(len(fileBytes)),
		MimeType: contentType,
	}, nil
}

func (s *StorageService) localPath(key string) string {
	return filepath.Join(s.config.Server.UploadsDir, filepath.FromSlash(key))
}

func (s *StorageService) DeleteFile(key string) error {
	if s.s3Client == nil {
		if err := os.Remove(s.localPath(key)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to delete local upload: %w", err)
		}
		return nil
	}

	_, err := s.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(s.config.AWS.S3Bucket),
		Key:    aws.String(key),
	})

	if err != nil {
		return fmt.Errorf("failed to delete file from S3: %w", err)
	}

	return nil
}

// DownloadURL resolves a stored object to a fetchable URL. With S3
// configured this is a short-lived presigned URL; in local mode it is
// the plain upload URL.
func (s *StorageService) DownloadURL(key string, expiration time.Duration) (string, error) {
	if s.s3Client == nil {
		return fmt.Sprintf("http://%s:%s/uploads/%s", s.config.Server.Host, s.config.Server.Port, key), nil
	}

	req, _ := s.s3Client.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(s.config.AWS.S3Bucket),
		Key:    aws.String(key),
	})

	url, err := req.Presign(expiration)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return url, nil
}

func (s *StorageService) GetDefaultUploadOptions(category string) UploadOptions {
	switch category {
	case "documents":
		return UploadOptions{
			Folder:       "documents",
			MaxSize:      25 * 1024 * 1024, // 25MB
			AllowedTypes: []string{".jpg", ".jpeg", ".png", ".pdf", ".heic", ".webp"},
			IsPublic:     false,
		}
	case "images":
		return UploadOptions{
			Folder:       "images",
			MaxSize:      10 * 1024 * 1024, // 10MB
			AllowedTypes: []string{".jpg", ".jpeg", ".png", ".gif", ".webp"},
			IsPublic:     true,
		}
	case "avatars":
		return UploadOptions{
			Folder:       "avatars",
			MaxSize:      2 * 1024 * 1024, // 2MB
			AllowedTypes: []string{".jpg", ".jpeg", ".png"},
			IsPublic:     true,
		}
	default:
		return UploadOptions{
			Folder:       "general",
			MaxSize:      5 * 1024 * 1024, // 5MB
			AllowedTypes: []string{".jpg", ".jpeg", ".png", ".pdf"},
			IsPublic:     false,
		}
	}
}

func (s *StorageService) generateFileName(originalName, folder string) string {
	// Generate UUID for uniqueness
	id := uuid.New()

	// Get file extension
	ext := filepath.Ext(originalName)

	// Create filename with timestamp and UUID
	timestamp := time.Now().Format("20060102")
	filename := fmt.Sprintf("%s_%s%s", timestamp, id.String()[:8], ext)

	if folder != "" {
		return fmt.Sprintf("%s/%s", folder, filename)
	}

	return filename
}

func (s *StorageService) getS3URL(key string) string {
	if s.config.AWS.CloudFrontURL != "" {
		return fmt.Sprintf("%s/%s", s.config.AWS.CloudFrontURL, key)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s",
		s.config.AWS.S3Bucket, s.config.AWS.Region, key)
}
