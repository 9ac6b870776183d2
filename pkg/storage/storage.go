// Package storage saves uploaded files under a configured directory and
// serves them back by relative path.
package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrTooLarge is returned when an upload exceeds the configured limit
var ErrTooLarge = errors.New("storage: file exceeds maximum size")

// ErrUnsupportedType is returned for file extensions outside the allow list
var ErrUnsupportedType = errors.New("storage: unsupported file type")

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// FileStore writes uploads to the local filesystem
type FileStore struct {
	basePath string
	maxSize  int64
}

// NewFileStore creates a file store rooted at basePath
func NewFileStore(basePath string, maxSize int64) (*FileStore, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("storage: creating base directory: %w", err)
	}
	return &FileStore{basePath: basePath, maxSize: maxSize}, nil
}

// SaveImage stores an uploaded image under the given subdirectory and
// returns its relative path. Filenames are random so uploads never collide.
func (s *FileStore) SaveImage(file *multipart.FileHeader, subdir string) (string, error) {
	if s.maxSize > 0 && file.Size > s.maxSize {
		return "", ErrTooLarge
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !imageExtensions[ext] {
		return "", ErrUnsupportedType
	}

	dir := filepath.Join(s.basePath, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: creating directory: %w", err)
	}

	name := uuid.New().String() + ext
	dst := filepath.Join(dir, name)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("storage: opening upload: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("storage: creating file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return "", fmt.Errorf("storage: writing file: %w", err)
	}

	return filepath.ToSlash(filepath.Join(subdir, name)), nil
}

// Delete removes a previously stored file by its relative path
func (s *FileStore) Delete(relPath string) error {
	full := filepath.Join(s.basePath, filepath.Clean(relPath))
	if !strings.HasPrefix(full, filepath.Clean(s.basePath)) {
		return errors.New("storage: path escapes base directory")
	}
	err := os.Remove(full)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// BasePath returns the root directory served for static files
func (s *FileStore) BasePath() string {
	return s.basePath
}
