package services

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/jobhunt/backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	objectName  string
	contentType string
}

func (f *fakeUploader) Upload(_ context.Context, objectName, contentType string, r io.Reader) (string, error) {
	f.objectName = objectName
	f.contentType = contentType
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}
	return "https://storage.googleapis.com/test-bucket/" + objectName, nil
}

func TestUploadRejectsUnknownExtension(t *testing.T) {
	svc := NewUploadService(&fakeUploader{})

	_, err := svc.Upload(context.Background(), UploadResume, "malware.exe", 100, strings.NewReader("x"))
	assert.Equal(t, "Error: File is not supported", appMsg(t, err))
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	svc := NewUploadService(&fakeUploader{})

	_, err := svc.Upload(context.Background(), UploadResume, "resume.pdf", maxUploadSize+1, strings.NewReader("x"))
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestUploadPrefixesObjectByKind(t *testing.T) {
	up := &fakeUploader{}
	svc := NewUploadService(up)

	url, err := svc.Upload(context.Background(), UploadVerification, "doc.PDF", 100, strings.NewReader("x"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(up.objectName, "verification/"))
	assert.True(t, strings.HasSuffix(up.objectName, ".pdf"), "extension is lowercased: %s", up.objectName)
	assert.Equal(t, "application/pdf", up.contentType)
	assert.Contains(t, url, up.objectName)
}

func TestUploadWithoutStorageConfigured(t *testing.T) {
	svc := NewUploadService(nil)

	_, err := svc.Upload(context.Background(), UploadResume, "resume.pdf", 100, strings.NewReader("x"))
	assert.True(t, utils.IsCode(err, utils.CodeUnavailable))
}
