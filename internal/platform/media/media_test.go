package media

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payroll/internal/platform/config"
	"payroll/internal/transport/http/shared"
)

type countingUploader struct {
	calls   int
	folders []string
	url     string
	err     error
}

func (c *countingUploader) Upload(_ context.Context, _ File, folder string) (string, error) {
	c.calls++
	c.folders = append(c.folders, folder)
	return c.url, c.err
}

type recordingNotifier struct {
	messages []string
}

func (r *recordingNotifier) Error(message string) {
	r.messages = append(r.messages, message)
}

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestPlainTextIsRejectedWithoutUpload(t *testing.T) {
	uploader := &countingUploader{url: "https://cdn/x"}
	notifier := &recordingNotifier{}
	svc := NewService(uploader, DefaultRules, notifier, nil)

	f := NewFile("notes.txt", "text/plain", bytes.Repeat([]byte("a"), 1024))
	_, err := svc.UploadDocument(context.Background(), f, "")

	var verr *shared.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("file"))
	assert.Zero(t, uploader.calls)
	require.Len(t, notifier.messages, 1)
	assert.Contains(t, notifier.messages[0], "text/plain is not allowed")
}

func TestOversizedFileIsRejected(t *testing.T) {
	uploader := &countingUploader{}
	svc := NewService(uploader, DefaultRules, nil, nil)

	f := NewFile("big.pdf", "application/pdf", make([]byte, 5*1024*1024+1))
	_, err := svc.UploadDocument(context.Background(), f, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds 5MB limit")
	assert.Zero(t, uploader.calls)
}

func TestProfilePictureRules(t *testing.T) {
	uploader := &countingUploader{url: "https://cdn/p.png"}
	svc := NewService(uploader, DefaultRules, nil, nil)

	_, err := svc.UploadProfilePicture(context.Background(), NewFile("cv.pdf", "application/pdf", []byte("%PDF-1.4")))
	require.Error(t, err)

	url, err := svc.UploadProfilePicture(context.Background(), NewFile("me.png", "", pngHeader))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/p.png", url)
	assert.Equal(t, []string{FolderProfiles}, uploader.folders)
}

func TestUploadFailureIsNotified(t *testing.T) {
	uploader := &countingUploader{err: ErrUploadFailed}
	notifier := &recordingNotifier{}
	svc := NewService(uploader, DefaultRules, notifier, nil)

	_, err := svc.UploadDocument(context.Background(), NewFile("a.pdf", "application/pdf", []byte("%PDF-1.4")), FolderEmployeeProofs)
	require.ErrorIs(t, err, ErrUploadFailed)
	assert.Equal(t, 1, uploader.calls)
	assert.Equal(t, []string{"Failed to upload document. Please try again."}, notifier.messages)
}

func TestNewFileSniffsType(t *testing.T) {
	f := NewFile("scan", "", []byte("%PDF-1.7\n..."))
	assert.Equal(t, "application/pdf", f.ContentType)
	assert.Equal(t, ".pdf", f.Extension())

	f = NewFile("x.json", "application/json; charset=utf-8", []byte("{}"))
	assert.Equal(t, "application/json", f.ContentType)
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "avatar.png")
	require.NoError(t, os.WriteFile(path, pngHeader, 0o600))

	f, err := OpenFile(path)
	require.NoError(t, err)
	assert.Equal(t, "avatar.png", f.Name)
	assert.Equal(t, "image/png", f.ContentType)
}

func TestCloudinaryUpload(t *testing.T) {
	var fields map[string]string
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, _, err := r.FormFile("file")
		require.NoError(t, err)
		data, _ := io.ReadAll(file)
		fields = map[string]string{
			"upload_preset": r.FormValue("upload_preset"),
			"folder":        r.FormValue("folder"),
			"file":          string(data),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"secure_url":"https://res.cloudinary.com/demo/a.pdf"}`)
	}))
	defer srv.Close()

	uploader, err := NewUploader(config.MediaOptions{
		Provider:         config.MediaProviderCloudinary,
		CloudinaryURL:    srv.URL,
		CloudinaryPreset: "Payroll_Cloud",
	}, srv.Client())
	require.NoError(t, err)

	url, err := uploader.Upload(context.Background(), NewFile("a.pdf", "application/pdf", []byte("%PDF")), FolderEmployeeProofs)
	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/demo/a.pdf", url)
	assert.Equal(t, map[string]string{"upload_preset": "Payroll_Cloud", "folder": "employee_documents", "file": "%PDF"}, fields)
	assert.Empty(t, auth)
}

func TestCloudinaryErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":{"message":"Upload preset not found"}}`)
	}))
	defer srv.Close()

	_, err := NewCloudinary(srv.URL, "nope", srv.Client()).Upload(context.Background(), NewFile("a.png", "image/png", pngHeader), FolderProfiles)
	require.ErrorIs(t, err, ErrUploadFailed)
	assert.Contains(t, err.Error(), "Upload preset not found")
}

func TestMinIOObjectKey(t *testing.T) {
	key := objectKey("/payroll/profiles/", NewFile("me.PNG", "image/png", pngHeader))
	assert.True(t, strings.HasPrefix(key, "payroll/profiles/"))
	assert.True(t, strings.HasSuffix(key, ".png"))

	m := &MinIO{endpoint: "files.local:9000", bucket: "payroll", secure: false}
	assert.Equal(t, "http://files.local:9000/payroll/a/b.pdf", m.objectURL("a/b.pdf"))
}

func TestUnknownProvider(t *testing.T) {
	_, err := NewUploader(config.MediaOptions{Provider: "s3"}, nil)
	assert.ErrorIs(t, err, ErrUnknownProvider)
}
