// internal/services/storage_service_test.go
package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/truvalue/truvalue-backend/internal/config"
)

func localStorageService(t *testing.T) *StorageService {
	t.Helper()
	cfg := &config.Config{}
	cfg.Server.Host = "localhost"
	cfg.Server.Port = "8080"
	cfg.Server.UploadsDir = t.TempDir()

	s, err := NewStorageService(cfg)
	require.NoError(t, err)
	return s
}

func TestUploadBytesLocalMode(t *testing.T) {
	s := localStorageService(t)

	result, err := s.UploadBytes([]byte("pdf bytes"), "invoice.pdf", "application/pdf",
		s.GetDefaultUploadOptions("documents"))
	require.NoError(t, err)

	assert.Contains(t, result.URL, "/uploads/")
	assert.Contains(t, result.Key, "documents/")
	assert.Equal(t, int64(9), result.Size)
	assert.Equal(t, "application/pdf", result.MimeType)
}

func TestUploadBytesLocalModeWritesFile(t *testing.T) {
	s := localStorageService(t)
	content := []byte("pdf bytes")

	result, err := s.UploadBytes(content, "invoice.pdf", "application/pdf",
		s.GetDefaultUploadOptions("documents"))
	require.NoError(t, err)

	stored, err := os.ReadFile(filepath.Join(s.config.Server.UploadsDir, filepath.FromSlash(result.Key)))
	require.NoError(t, err)
	assert.Equal(t, content, stored)
}

func TestDeleteFileLocalMode(t *testing.T) {
	s := localStorageService(t)

	result, err := s.UploadBytes([]byte("pdf bytes"), "invoice.pdf", "application/pdf",
		s.GetDefaultUploadOptions("documents"))
	require.NoError(t, err)

	require.NoError(t, s.DeleteFile(result.Key))

	_, err = os.Stat(filepath.Join(s.config.Server.UploadsDir, filepath.FromSlash(result.Key)))
	assert.True(t, os.IsNotExist(err))

	// Deleting an already-gone key is not an error
	assert.NoError(t, s.DeleteFile(result.Key))
}

func TestUploadBytesRejectsDisallowedType(t *testing.T) {
	s := localStorageService(t)

	_, err := s.UploadBytes([]byte("#!/bin/sh"), "script.sh", "text/x-sh",
		s.GetDefaultUploadOptions("documents"))
	assert.ErrorContains(t, err, "not allowed")
}

func TestUploadBytesRejectsOversize(t *testing.T) {
	s := localStorageService(t)

	options := s.GetDefaultUploadOptions("documents")
	options.MaxSize = 4

	_, err := s.UploadBytes([]byte("too large"), "doc.pdf", "application/pdf", options)
	assert.ErrorContains(t, err, "exceeds maximum")
}

func TestUploadKeysAreUnique(t *testing.T) {
	s := localStorageService(t)
	options := s.GetDefaultUploadOptions("documents")

	first, err := s.UploadBytes([]byte("a"), "doc.pdf", "application/pdf", options)
	require.NoError(t, err)
	second, err := s.UploadBytes([]byte("a"), "doc.pdf", "application/pdf", options)
	require.NoError(t, err)

	assert.NotEqual(t, first.Key, second.Key)
}

func TestDownloadURLLocalMode(t *testing.T) {
	s := localStorageService(t)

	url, err := s.DownloadURL("documents/abc.pdf", 15*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/documents/abc.pdf", url)
}
