package storage

import (
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

const thumbnailQuality = 90

// Thumbnail returns the path of a cached JPEG thumbnail for a stored image,
// generating it on first request. size caps the longer dimension; images
// smaller than size are never upscaled.
func (s *Store) Thumbnail(publicPath string, size int) (string, error) {
	if size <= 0 || size > 1024 {
		return "", fmt.Errorf("invalid thumbnail size %d", size)
	}

	resolved, err := s.Resolve(publicPath)
	if err != nil {
		return "", err
	}

	thumbPath := s.thumbnailPath(publicPath, size)
	if _, err := os.Stat(thumbPath); err == nil {
		return thumbPath, nil
	}

	file, err := os.Open(resolved)
	if err != nil {
		return "", err
	}
	defer file.Close()

	src, _, err := image.Decode(file)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return "", fmt.Errorf("invalid image dimensions for %s", publicPath)
	}

	maxDim := width
	if height > maxDim {
		maxDim = height
	}

	scale := float64(size) / float64(maxDim)
	if scale > 1 {
		scale = 1
	}

	targetWidth := int(math.Round(float64(width) * scale))
	targetHeight := int(math.Round(float64(height) * scale))
	if targetWidth < 1 {
		targetWidth = 1
	}
	if targetHeight < 1 {
		targetHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, targetWidth, targetHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	writer, err := os.OpenFile(thumbPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", err
	}

	encodeErr := jpeg.Encode(writer, dst, &jpeg.Options{Quality: thumbnailQuality})
	closeErr := writer.Close()
	if encodeErr != nil {
		_ = os.Remove(thumbPath)
		return "", encodeErr
	}
	if closeErr != nil {
		return "", closeErr
	}

	return thumbPath, nil
}

func (s *Store) thumbnailPath(publicPath string, size int) string {
	base := strings.TrimPrefix(publicPath, PublicPrefix)
	flat := strings.ReplaceAll(base, "/", "_")
	return filepath.Join(s.root, "thumbnails", fmt.Sprintf("%s_%d.jpg", flat, size))
}

func (s *Store) removeThumbnails(publicPath string) {
	base := strings.TrimPrefix(publicPath, PublicPrefix)
	flat := strings.ReplaceAll(base, "/", "_")

	matches, err := filepath.Glob(filepath.Join(s.root, "thumbnails", flat+"_*.jpg"))
	if err != nil {
		return
	}
	for _, match := range matches {
		_ = os.Remove(match)
	}
}
