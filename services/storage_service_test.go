package services

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveGalleryImage(t *testing.T) {
	dir := t.TempDir()
	svc := NewStorageService(filepath.Join(dir, "uploads"), "http://localhost:8080/")

	data := []byte("fake image bytes")
	url, err := svc.SaveGalleryImage(bytes.NewReader(data), "picnic.jpg", "image/jpeg", int64(len(data)))
	if err != nil {
		t.Fatalf("SaveGalleryImage: %v", err)
	}
	// BaseDir is an absolute temp path here, but the URL must follow the
	// router's /uploads mount, never the filesystem layout.
	if !strings.HasPrefix(url, "http://localhost:8080/uploads/gallery/") || !strings.HasSuffix(url, ".jpg") {
		t.Errorf("unexpected public url %q", url)
	}
	if strings.Contains(url, dir) {
		t.Errorf("public url leaks filesystem path: %q", url)
	}

	entries, err := os.ReadDir(filepath.Join(dir, "uploads", "gallery"))
	if err != nil {
		t.Fatalf("read uploads dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("files written = %d, want 1", len(entries))
	}
	written, err := os.ReadFile(filepath.Join(dir, "uploads", "gallery", entries[0].Name()))
	if err != nil {
		t.Fatalf("read written file: %v", err)
	}
	if !bytes.Equal(written, data) {
		t.Error("written bytes differ from upload")
	}
}

func TestSaveGalleryImageRejectsNonImages(t *testing.T) {
	svc := NewStorageService(t.TempDir(), "http://localhost:8080")

	if _, err := svc.SaveGalleryImage(strings.NewReader("x"), "notes.pdf", "application/pdf", 1); !IsValidation(err) {
		t.Errorf("pdf: got %v, want validation error", err)
	}
	// content type must match, not just the extension
	if _, err := svc.SaveGalleryImage(strings.NewReader("x"), "payload.jpg", "application/octet-stream", 1); !IsValidation(err) {
		t.Errorf("fake jpg: got %v, want validation error", err)
	}
}

func TestSaveGalleryImageRejectsOversize(t *testing.T) {
	svc := NewStorageService(t.TempDir(), "http://localhost:8080")

	if _, err := svc.SaveGalleryImage(strings.NewReader("x"), "big.jpg", "image/jpeg", MaxImageSize+1); !IsValidation(err) {
		t.Errorf("declared oversize: got %v, want validation error", err)
	}
}
