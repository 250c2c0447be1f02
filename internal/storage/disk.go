package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MrBrad8989/gta-events-bot/internal/domain"
	"github.com/google/uuid"
)

var allowedExt = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
}

var ErrInvalidPath = errors.New("invalid upload path")

// DiskStore keeps uploaded images in a flat directory. Stored names are
// generated, so callers never control where a file lands.
type DiskStore struct {
	dir     string
	maxSize int64
}

func NewDiskStore(dir string, maxSize int64) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir, maxSize: maxSize}, nil
}

// Save writes the upload as <uuid><ext> and returns the stored name.
func (s *DiskStore) Save(ctx context.Context, upload domain.Upload) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(upload.Name))
	if _, ok := allowedExt[ext]; !ok {
		return "", fmt.Errorf("%w: unsupported image type %q", domain.ErrValidation, ext)
	}
	if upload.Reader == nil {
		return "", fmt.Errorf("%w: empty upload", domain.ErrValidation)
	}

	name := uuid.New().String() + ext
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("create upload: %w", err)
	}

	n, err := io.Copy(f, io.LimitReader(upload.Reader, s.maxSize+1))
	closeErr := f.Close()
	switch {
	case err != nil:
		_ = os.Remove(path)
		return "", fmt.Errorf("write upload: %w", err)
	case closeErr != nil:
		_ = os.Remove(path)
		return "", fmt.Errorf("close upload: %w", closeErr)
	case n > s.maxSize:
		_ = os.Remove(path)
		return "", fmt.Errorf("%w: %s is larger than %d bytes", domain.ErrValidation, upload.Name, s.maxSize)
	}

	return name, nil
}

// Open returns a reader for a stored file. The caller closes it.
func (s *DiskStore) Open(name string) (io.ReadCloser, error) {
	path, err := s.resolve(name)
	if err != nil {
		return nil, err
	}
	return os.Open(path)
}

func ContentType(name string) string {
	if ct, ok := allowedExt[strings.ToLower(filepath.Ext(name))]; ok {
		return ct
	}
	return "application/octet-stream"
}

// PurgeOlderThan removes stored files last modified before now-age and
// returns how many were deleted.
func (s *DiskStore) PurgeOlderThan(ctx context.Context, age time.Duration) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("read upload dir: %w", err)
	}

	cutoff := time.Now().Add(-age)
	removed := 0
	for _, entry := range entries {
		if ctx.Err() != nil {
			return removed, ctx.Err()
		}
		if entry.IsDir() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}

		if err = os.Remove(filepath.Join(s.dir, entry.Name())); err != nil && !os.IsNotExist(err) {
			return removed, fmt.Errorf("remove %s: %w", entry.Name(), err)
		}
		removed++
	}

	return removed, nil
}

func (s *DiskStore) resolve(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return "", ErrInvalidPath
	}
	return filepath.Join(s.dir, name), nil
}
