package repository

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxUploadSize caps profile image uploads at 1 MiB
const MaxUploadSize = 1 << 20

// Upload validation failures, rejected before any state changes
var (
	ErrUploadTooLarge = errors.New("file exceeds the 1 MiB upload limit")
	ErrNotAnImage     = errors.New("file is not an image")
)

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ObjectStore keeps uploaded profile images on local disk and serves
// them under a base URL
type ObjectStore struct {
	dir     string
	baseURL string
}

// NewObjectStore creates the upload directory if needed
func NewObjectStore(dir, baseURL string) (*ObjectStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &ObjectStore{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// SaveProfileImage stores an uploaded image and returns its URL. The
// blob must be an image content type and at most MaxUploadSize bytes;
// violations are rejected with nothing written.
func (s *ObjectStore) SaveProfileImage(userID, contentType string, size int64, r io.Reader) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrNotAnImage
	}
	if size > MaxUploadSize {
		return "", ErrUploadTooLarge
	}

	ext, ok := imageExtensions[contentType]
	if !ok {
		ext = ".img"
	}
	name := userID + "-" + uuid.NewString() + ext
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}

	// Guard against a lying Content-Length
	written, err := io.Copy(f, io.LimitReader(r, MaxUploadSize+1))
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err == nil && written > MaxUploadSize {
		err = ErrUploadTooLarge
	}
	if err != nil {
		os.Remove(path)
		return "", err
	}

	return s.baseURL + "/" + name, nil
}

// Dir returns the directory uploads are written to
func (s *ObjectStore) Dir() string {
	return s.dir
}
