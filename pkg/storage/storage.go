// Package storage is the blob store for uploaded game images: files land in
// a local upload directory that the router serves back over /uploads.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"gamestore-api/pkg/global"
)

// DefaultImageURL is substituted when a game is created without an image.
const DefaultImageURL = "https://placehold.co/600x400?text=Game+Store"

// URLPrefix is the route prefix the upload directory is served under.
const URLPrefix = "/uploads"

// SaveImage writes the uploaded file into the upload directory under a
// timestamped name and returns the retrieval URL.
func SaveImage(file *multipart.FileHeader) (string, error) {
	return SaveImageTo(global.GetUploadDir(), file)
}

// SaveImageTo is SaveImage with an explicit directory.
func SaveImageTo(dir string, file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	name := fmt.Sprintf("%d_%s", time.Now().Unix(), filepath.Base(file.Filename))

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	return URLPrefix + "/" + name, nil
}
