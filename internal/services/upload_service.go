package services

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jobhunt/backend/internal/storage"
	"github.com/jobhunt/backend/internal/utils"
)

// UploadKind doubles as the object-name prefix in the bucket.
type UploadKind string

const (
	UploadResume       UploadKind = "resume"
	UploadProfileImage UploadKind = "profile"
	UploadVerification UploadKind = "verification"
)

const maxUploadSize = 10 << 20

var allowedExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".pdf":  "application/pdf",
}

type UploadService interface {
	// Upload stores the file and returns its public retrieval URL.
	Upload(ctx context.Context, kind UploadKind, filename string, size int64, r io.Reader) (string, error)
}

type uploadService struct {
	uploader storage.Uploader
}

func NewUploadService(uploader storage.Uploader) UploadService {
	return &uploadService{uploader: uploader}
}

func (s *uploadService) Upload(ctx context.Context, kind UploadKind, filename string, size int64, r io.Reader) (string, error) {
	const op = "UploadService.Upload"

	if s.uploader == nil {
		return "", utils.E(utils.CodeUnavailable, op, "file storage is not configured", nil)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	contentType, ok := allowedExtensions[ext]
	if !ok {
		return "", utils.E(utils.CodeInvalidArgument, op, "Error: File is not supported", nil)
	}
	if size <= 0 || size > maxUploadSize {
		return "", utils.E(utils.CodeInvalidArgument, op, "file too large (max 10MB)", nil)
	}

	objectName := string(kind) + "/" + uuid.NewString() + ext
	url, err := s.uploader.Upload(ctx, objectName, contentType, r)
	if err != nil {
		return "", utils.E(utils.CodeUnavailable, op, "Error in uploading", err)
	}
	return url, nil
}
