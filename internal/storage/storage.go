package storage

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"inventory-api/internal/model"
)

// PublicPrefix is the URL prefix stored image paths carry; the router serves
// everything under it from the store root.
const PublicPrefix = "/storage/"

// Store keeps uploaded images on local disk under <root>/images/<category>/
// and hands out /storage/... paths for the API to persist.
type Store struct {
	root string
}

func New(root string) (*Store, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve storage root: %w", err)
	}

	for _, dir := range []string{"images/products", "images/types", "thumbnails"} {
		if err := os.MkdirAll(filepath.Join(abs, dir), 0o755); err != nil {
			return nil, fmt.Errorf("create storage directory %s: %w", dir, err)
		}
	}

	return &Store{root: abs}, nil
}

// Save writes the upload under the category directory with a server-generated
// name and returns its public path.
func (s *Store) Save(upload *model.ImageUpload, category string) (string, error) {
	ext := strings.ToLower(filepath.Ext(upload.Header.Filename))
	name := uuid.NewString() + ext
	rel := path.Join("images", category, name)

	dst, err := os.OpenFile(filepath.Join(s.root, filepath.FromSlash(rel)), os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}

	_, copyErr := io.Copy(dst, upload.File)
	closeErr := dst.Close()
	if copyErr != nil {
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("write image file: %w", copyErr)
	}
	if closeErr != nil {
		return "", fmt.Errorf("close image file: %w", closeErr)
	}

	return PublicPrefix + rel, nil
}

// Remove deletes a stored image and any cached thumbnails. Best effort: a
// missing file is not an error worth failing a delete request over.
func (s *Store) Remove(publicPath string) {
	resolved, err := s.Resolve(publicPath)
	if err != nil {
		slog.Warn("refusing to remove image outside storage root", "path", publicPath)
		return
	}

	if err := os.Remove(resolved); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to remove image", "path", publicPath, "error", err)
	}

	s.removeThumbnails(publicPath)
}

// Resolve maps a public /storage/... path to an absolute file path, rejecting
// anything that escapes the store root.
func (s *Store) Resolve(publicPath string) (string, error) {
	rel, ok := strings.CutPrefix(publicPath, PublicPrefix)
	if !ok {
		return "", fmt.Errorf("path %q is not under %s", publicPath, PublicPrefix)
	}

	resolved := filepath.Join(s.root, filepath.FromSlash(path.Clean("/"+rel)))
	if resolved != s.root && !strings.HasPrefix(resolved, s.root+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes storage root", publicPath)
	}

	return resolved, nil
}
