package services

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"visualvibe_backend/internal/config"
	"visualvibe_backend/internal/storage"
	"visualvibe_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUploadService(t *testing.T) (UploadService, string) {
	t.Helper()

	dir := t.TempDir()
	store, err := storage.NewLocalStorage(storage.Config{BasePath: dir, BaseURL: "uploads"})
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Upload.MaxSize = 50 * 1024 * 1024
	cfg.Upload.AllowedTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp", "video/mp4", "video/webm"}
	cfg.Upload.AttachmentMaxSize = 10 * 1024 * 1024
	cfg.Upload.AttachmentExtensions = []string{"jpg", "jpeg", "png", "pdf", "doc", "docx", "psd", "ai", "zip"}

	return NewUploadService(store, cfg), dir
}

// multipartFile builds a real *multipart.FileHeader the way gin receives it.
func multipartFile(t *testing.T, field, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, "/", &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	files := req.MultipartForm.File[field]
	require.Len(t, files, 1)
	return files[0]
}

func TestUploadService_SaveMedia(t *testing.T) {
	svc, dir := newTestUploadService(t)

	file := multipartFile(t, "file", "hero.png", "image/png", []byte("fake png bytes"))

	resp, err := svc.SaveMedia(context.Background(), file, "slides")
	require.NoError(t, err)

	assert.Equal(t, "File uploaded successfully", resp.Message)
	assert.Equal(t, resp.Path, resp.URL)
	assert.Regexp(t, regexp.MustCompile(`^uploads/carousel/\d+_[0-9a-f]+\.png$`), resp.URL)

	// The bytes actually landed under the category directory.
	stored, err := os.ReadFile(filepath.Join(dir, "carousel", resp.Filename))
	require.NoError(t, err)
	assert.Equal(t, "fake png bytes", string(stored))
}

func TestUploadService_SaveMediaUnknownCategoryLandsInGeneral(t *testing.T) {
	svc, _ := newTestUploadService(t)

	file := multipartFile(t, "file", "pic.jpg", "image/jpeg", []byte("x"))

	resp, err := svc.SaveMedia(context.Background(), file, "something-else")
	require.NoError(t, err)
	assert.Contains(t, resp.URL, "/general/")
}

func TestUploadService_SaveMediaRejectsDisallowedType(t *testing.T) {
	svc, _ := newTestUploadService(t)

	file := multipartFile(t, "file", "payload.exe", "application/octet-stream", []byte("x"))

	_, err := svc.SaveMedia(context.Background(), file, "slides")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
	assert.Equal(t, "File type not allowed", appErr.Message)
}

func TestUploadService_SaveEnquiryAttachment(t *testing.T) {
	svc, dir := newTestUploadService(t)

	file := multipartFile(t, "reference_file", "brief.pdf", "application/pdf", []byte("pdf bytes"))

	path, err := svc.SaveEnquiryAttachment(context.Background(), file)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^uploads/enquiries/\d+_[0-9a-f]+\.pdf$`), path)

	entries, err := os.ReadDir(filepath.Join(dir, "enquiries"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestUploadService_SaveEnquiryAttachmentRejectsExtension(t *testing.T) {
	svc, _ := newTestUploadService(t)

	file := multipartFile(t, "reference_file", "malware.exe", "application/octet-stream", []byte("x"))

	_, err := svc.SaveEnquiryAttachment(context.Background(), file)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "Invalid file type", appErr.Message)
}

func TestUploadService_SaveEnquiryAttachmentRejectsOversize(t *testing.T) {
	store, err := storage.NewLocalStorage(storage.Config{BasePath: t.TempDir()})
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Upload.AttachmentMaxSize = 4
	cfg.Upload.AttachmentExtensions = []string{"pdf"}
	svc := NewUploadService(store, cfg)

	file := multipartFile(t, "reference_file", "brief.pdf", "application/pdf", []byte("way too big"))

	_, err = svc.SaveEnquiryAttachment(context.Background(), file)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "File size must be under 10MB", appErr.Message)
}
