package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"mime"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"
	"time"

	"visualvibe_backend/internal/config"
	"visualvibe_backend/internal/content"
	"visualvibe_backend/internal/services/dto"
	"visualvibe_backend/internal/storage"
	"visualvibe_backend/pkg/apperrors"
)

// UploadService relays files to the storage backend. Two distinct policies
// apply: admin media uploads are gated on MIME type, public enquiry
// attachments on file extension and size.
type UploadService interface {
	// SaveMedia stores an admin media upload under the category directory
	// and returns the public reference.
	SaveMedia(ctx context.Context, file *multipart.FileHeader, category string) (*dto.UploadResponse, error)

	// SaveEnquiryAttachment stores a reference file from the public enquiry
	// form and returns the stored path.
	SaveEnquiryAttachment(ctx context.Context, file *multipart.FileHeader) (string, error)
}

type uploadService struct {
	store                storage.Storage
	maxMediaSize         int64
	allowedMediaTypes    []string
	maxAttachmentSize    int64
	attachmentExtensions []string
}

func NewUploadService(store storage.Storage, cfg *config.Config) UploadService {
	return &uploadService{
		store:                store,
		maxMediaSize:         cfg.Upload.MaxSize,
		allowedMediaTypes:    cfg.Upload.AllowedTypes,
		maxAttachmentSize:    cfg.Upload.AttachmentMaxSize,
		attachmentExtensions: cfg.Upload.AttachmentExtensions,
	}
}

func (s *uploadService) SaveMedia(ctx context.Context, file *multipart.FileHeader, category string) (*dto.UploadResponse, error) {
	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = mime.TypeByExtension(filepath.Ext(file.Filename))
	}
	if !contains(s.allowedMediaTypes, mimeType) {
		return nil, apperrors.NewBadRequestError("File type not allowed")
	}
	if file.Size > s.maxMediaSize {
		return nil, apperrors.NewBadRequestError("File too large")
	}

	dir, ok := content.UploadCategories[category]
	if !ok {
		dir = "general"
	}

	fileName := uniqueFilename(file.Filename)
	objectPath := path.Join(dir, fileName)

	if err := s.save(ctx, file, objectPath, mimeType); err != nil {
		return nil, apperrors.InternalError(err)
	}

	url, err := s.store.GetURL(ctx, objectPath)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.UploadResponse{
		Message:  "File uploaded successfully",
		Path:     url,
		URL:      url,
		Filename: fileName,
	}, nil
}

func (s *uploadService) SaveEnquiryAttachment(ctx context.Context, file *multipart.FileHeader) (string, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(file.Filename)), ".")
	if !contains(s.attachmentExtensions, ext) {
		return "", apperrors.NewBadRequestError("Invalid file type")
	}
	if file.Size > s.maxAttachmentSize {
		return "", apperrors.NewBadRequestError("File size must be under 10MB")
	}

	objectPath := path.Join("enquiries", uniqueFilename(file.Filename))

	mimeType := mime.TypeByExtension(filepath.Ext(file.Filename))
	if err := s.save(ctx, file, objectPath, mimeType); err != nil {
		return "", apperrors.InternalError(err)
	}

	return s.store.GetURL(ctx, objectPath)
}

func (s *uploadService) save(ctx context.Context, file *multipart.FileHeader, objectPath, mimeType string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	return s.store.Save(ctx, objectPath, src, mimeType)
}

// uniqueFilename keeps the original extension and replaces the name with a
// timestamped random token so concurrent uploads never collide.
func uniqueFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return fmt.Sprintf("%d_%s%s", time.Now().Unix(), generateSecureRandomString(13), ext)
}

func generateSecureRandomString(length int) string {
	bytes := make([]byte, (length+1)/2)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(bytes)[:length]
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
