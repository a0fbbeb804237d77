package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"
)

// StoredFile is the on-disk result of a saved upload.
type StoredFile struct {
	Name string // stored (timestamp-prefixed) file name
	Path string // path persisted to the database
	Size int64
}

// SaveUpload writes the multipart file into dir under a timestamp-prefixed
// name, so two uploads never collide on disk even when their database rows
// target the same student.
func SaveUpload(dir string, fh *multipart.FileHeader) (*StoredFile, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(fh.Filename))
	path := filepath.Join(dir, name)

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("write file: %w", err)
	}

	return &StoredFile{Name: name, Path: path, Size: size}, nil
}
