package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FileStore persists attachment blobs. Stored names are opaque and safe to
// use as filesystem paths.
type FileStore interface {
	Store(r io.Reader, originalName string) (storedName string, size int64, err error)
	Open(storedName string) (io.ReadSeekCloser, error)
	Remove(storedName string) error
}

// LocalFileStore keeps blobs in a flat directory. Each blob gets a random
// name so uploads never collide or traverse outside the directory.
type LocalFileStore struct {
	dir string
}

func NewLocalFileStore(dir string) (*LocalFileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalFileStore{dir: dir}, nil
}

func (s *LocalFileStore) Store(r io.Reader, originalName string) (string, int64, error) {
	ext := sanitizeExt(filepath.Ext(originalName))
	storedName := uuid.NewString() + ext

	f, err := os.Create(filepath.Join(s.dir, storedName))
	if err != nil {
		return "", 0, fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	size, err := io.Copy(f, r)
	if err != nil {
		os.Remove(f.Name())
		return "", 0, fmt.Errorf("failed to write file: %w", err)
	}

	return storedName, size, nil
}

func (s *LocalFileStore) Open(storedName string) (io.ReadSeekCloser, error) {
	if storedName != filepath.Base(storedName) {
		return nil, fmt.Errorf("invalid stored name")
	}

	f, err := os.Open(filepath.Join(s.dir, storedName))
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return f, nil
}

func (s *LocalFileStore) Remove(storedName string) error {
	if storedName != filepath.Base(storedName) {
		return fmt.Errorf("invalid stored name")
	}

	if err := os.Remove(filepath.Join(s.dir, storedName)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}

func sanitizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if len(ext) > 10 || strings.ContainsAny(ext, "/\\") {
		return ""
	}
	return ext
}
