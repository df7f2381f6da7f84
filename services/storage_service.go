package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxImageSize caps gallery uploads at 5 MiB.
const MaxImageSize = 5 << 20

// StorageService writes uploaded gallery images under the local uploads
// directory, which the router serves at /uploads.
type StorageService struct {
	BaseDir   string // e.g. "uploads"
	PublicURL string // e.g. "http://localhost:8080"
}

func NewStorageService(baseDir, publicURL string) *StorageService {
	return &StorageService{
		BaseDir:   baseDir,
		PublicURL: strings.TrimRight(publicURL, "/"),
	}
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// SaveGalleryImage stores one image and returns its public URL. Only image
// content types are accepted and size is capped at MaxImageSize.
func (s *StorageService) SaveGalleryImage(src io.Reader, filename, contentType string, size int64) (string, error) {
	if size > MaxImageSize {
		return "", validationError("image exceeds the 5MB limit")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !strings.HasPrefix(contentType, "image/") || !imageExtensions[ext] {
		return "", validationError("only image files are allowed")
	}

	dir := filepath.Join(s.BaseDir, "gallery")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("mkdir uploads dir: %w", err)
	}

	name := uuid.NewString() + ext
	fullpath := filepath.Join(dir, name)

	dst, err := os.Create(fullpath)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	// size from the multipart header is advisory; enforce the cap on the
	// actual bytes as well
	written, err := io.Copy(dst, io.LimitReader(src, MaxImageSize+1))
	if err != nil {
		os.Remove(fullpath)
		return "", fmt.Errorf("write file: %w", err)
	}
	if written > MaxImageSize {
		os.Remove(fullpath)
		return "", validationError("image exceeds the 5MB limit")
	}

	// The router mounts BaseDir at /uploads, so the URL path is fixed
	// regardless of where BaseDir lives on disk.
	return s.PublicURL + "/uploads/gallery/" + name, nil
}
