// Package storage abstracts resume file persistence behind a small
// collaborator interface so the application lifecycle logic stays decoupled
// from any particular storage mechanism.
package storage

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
)

var (
	ErrTooLarge = errors.New("file exceeds size limit")
	ErrBadType  = errors.New("unsupported file type")
)

// Upload describes an inbound file. Size is the declared length in bytes;
// the store enforces the ceiling against the actual bytes read as well.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// FileStore persists an upload and returns a public-relative locator that is
// stored verbatim on the application record.
type FileStore interface {
	Store(ctx context.Context, up Upload) (string, error)
}

var acceptedContentTypes = map[string]string{
	"application/pdf":    ".pdf",
	"application/msword": ".doc",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": ".docx",
}

var acceptedExtensions = map[string]struct{}{
	".pdf":  {},
	".doc":  {},
	".docx": {},
}

// resumeExtension resolves the stored extension from the declared content
// type, falling back to the original filename's extension. Empty means the
// upload is not an accepted resume format.
func resumeExtension(contentType, filename string) string {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	if ext, ok := acceptedContentTypes[ct]; ok {
		return ext
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := acceptedExtensions[ext]; ok {
		return ext
	}
	return ""
}
