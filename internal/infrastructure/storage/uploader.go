package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Uploader stores an uploaded document under a category and returns its
// public URL. Implementations may fail with any error; callers surface the
// failure as an upload error to the client.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, filename, category string) (string, error)
}

// LocalUploader writes uploads to a directory on disk and serves them under
// a base URL. Stands in for the object-storage bucket in development and
// tests.
type LocalUploader struct {
	baseDir string
	baseURL string
}

// NewLocalUploader creates a disk-backed uploader
func NewLocalUploader(baseDir, baseURL string) *LocalUploader {
	return &LocalUploader{
		baseDir: baseDir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Upload copies the file into baseDir/category with a unique name
func (u *LocalUploader) Upload(ctx context.Context, file io.Reader, filename, category string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dir := filepath.Join(u.baseDir, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to prepare upload directory: %w", err)
	}

	name := uuid.New().String() + "-" + filepath.Base(filename)
	path := filepath.Join(dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return u.baseURL + "/" + category + "/" + name, nil
}
