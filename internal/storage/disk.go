package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// PublicPrefix is the URL path prefix under which stored files are served.
const PublicPrefix = "/uploads"

type DiskStore struct {
	dir      string
	maxBytes int64
}

func NewDiskStore(dir string, maxBytes int64) (*DiskStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("empty upload dir")
	}
	if maxBytes <= 0 {
		return nil, fmt.Errorf("non-positive upload size limit")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{dir: dir, maxBytes: maxBytes}, nil
}

func (s *DiskStore) Dir() string {
	return s.dir
}

func (s *DiskStore) Store(ctx context.Context, up Upload) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ext := resumeExtension(up.ContentType, up.Filename)
	if ext == "" {
		return "", ErrBadType
	}
	if up.Size > s.maxBytes {
		return "", ErrTooLarge
	}
	if up.Reader == nil {
		return "", ErrBadType
	}

	name := uuid.NewString() + ext
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", err
	}

	// Cap the copy one byte past the ceiling so an understated Size header
	// cannot smuggle an oversized body through.
	n, err := io.Copy(f, io.LimitReader(up.Reader, s.maxBytes+1))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return "", err
	}
	if n > s.maxBytes {
		_ = os.Remove(path)
		return "", ErrTooLarge
	}

	return PublicPrefix + "/" + name, nil
}
