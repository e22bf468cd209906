package services

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ecoride/support-backend/internal/config"
	"github.com/ecoride/support-backend/internal/dto"
	"github.com/google/uuid"
)

const MaxAttachmentSize = 10 * 1024 * 1024 // 10MB

var (
	ErrFileTooLarge    = errors.New("file size must be less than 10MB")
	ErrInvalidFileType = errors.New("only images and videos are supported")
)

// StorageService stores conversation attachments on local disk under
// owner-namespaced paths and hands back publicly servable URLs.
type StorageService struct {
	dir     string
	baseURL string
}

func NewStorageService(cfg *config.Config) *StorageService {
	return &StorageService{
		dir:     cfg.UploadDir,
		baseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}
}

// Validate applies the upload rules without touching the payload: MIME must
// be image/* or video/* as reported by the client, size at most 10MB.
func (s *StorageService) Validate(contentType string, size int64) error {
	if size > MaxAttachmentSize {
		return ErrFileTooLarge
	}
	if !strings.HasPrefix(contentType, "image/") && !strings.HasPrefix(contentType, "video/") {
		return ErrInvalidFileType
	}
	return nil
}

// Store validates and writes the payload to <dir>/<user_id>/<unix ms>.<ext>,
// returning the attachment metadata to embed in a message. Orphaned files
// (uploaded but never referenced by a message) are not cleaned up.
func (s *StorageService) Store(userID uuid.UUID, fileName, contentType string, size int64, r io.Reader) (*dto.UploadResponse, error) {
	if err := s.Validate(contentType, size); err != nil {
		return nil, err
	}

	ext := filepath.Ext(fileName)
	storedName := fmt.Sprintf("%d%s", time.Now().UnixMilli(), ext)
	ownerDir := filepath.Join(s.dir, userID.String())

	if err := os.MkdirAll(ownerDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	dst, err := os.Create(filepath.Join(ownerDir, storedName))
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, io.LimitReader(r, MaxAttachmentSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to write file: %w", err)
	}
	if written > MaxAttachmentSize {
		os.Remove(dst.Name())
		return nil, ErrFileTooLarge
	}

	return &dto.UploadResponse{
		FileURL:  fmt.Sprintf("%s/uploads/%s/%s", s.baseURL, userID.String(), storedName),
		FileName: fileName,
		FileType: contentType,
		FileSize: written,
	}, nil
}
