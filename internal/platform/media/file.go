package media

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
)

// File is an in-memory upload candidate.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

func (f File) Size() int64 {
	return int64(len(f.Data))
}

// NewFile builds a File, sniffing the content type from data when none is
// declared.
func NewFile(name, contentType string, data []byte) File {
	contentType = baseType(contentType)
	if contentType == "" {
		contentType = baseType(mimetype.Detect(data).String())
	}
	return File{Name: filepath.Base(name), ContentType: contentType, Data: data}
}

// OpenFile reads path from disk and sniffs its type.
func OpenFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, errors.Wrapf(err, "read %s", path)
	}
	return NewFile(path, "", data), nil
}

// Extension is the file name extension, or the one mimetype associates
// with the content type.
func (f File) Extension() string {
	if ext := filepath.Ext(f.Name); ext != "" {
		return strings.ToLower(ext)
	}
	if mt := mimetype.Lookup(f.ContentType); mt != nil {
		return mt.Extension()
	}
	return ""
}

func baseType(contentType string) string {
	if idx := strings.Index(contentType, ";"); idx >= 0 {
		contentType = contentType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}
