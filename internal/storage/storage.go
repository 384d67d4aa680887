package storage

import (
	"context"
	"io"
)

// Uploader is the file storage collaborator boundary: store a binary,
// get back a public retrieval URL.
type Uploader interface {
	Upload(ctx context.Context, objectName string, contentType string, r io.Reader) (url string, err error)
}
