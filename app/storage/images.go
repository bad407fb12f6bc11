// Package storage associates uploaded image files with product ids on the
// local filesystem. A product owns at most one image, stored under a name
// derived from its id, never from the uploaded filename.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// allowedExtensions is matched case-insensitively against the substring
// after the last dot of the uploaded filename.
var allowedExtensions = []string{"png", "jpg", "jpeg", "gif", "webp"}

type Images struct {
	dir       string
	urlPrefix string
	logger    zerolog.Logger
}

func NewImages(dir, urlPrefix string, logger zerolog.Logger) (*Images, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Images{
		dir:       dir,
		urlPrefix: strings.TrimSuffix(urlPrefix, "/"),
		logger:    logger,
	}, nil
}

// Save writes the uploaded file as product_<id>.<ext> and returns its
// public URL path. A filename without a dot or with an extension outside
// the allow-list is silently skipped: Save returns ("", nil) and writes
// nothing, and the caller leaves the product's image unset.
func (s *Images) Save(src io.Reader, originalName string, productID uint) (string, error) {
	ext := extensionOf(originalName)
	if ext == "" {
		return "", nil
	}

	name := fileName(productID, ext)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write image file: %w", err)
	}

	return s.urlPrefix + "/" + name, nil
}

// Remove deletes any stored image for the product. The stored extension is
// not tracked, so every allow-listed extension is swept. Failures are
// logged and never returned; image removal must not fail the caller.
func (s *Images) Remove(productID uint) {
	for _, ext := range allowedExtensions {
		path := filepath.Join(s.dir, fileName(productID, ext))
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := os.Remove(path); err != nil {
			s.logger.Warn().Err(err).Str("path", path).Msg("failed to remove product image")
		}
	}
}

// extensionOf returns the lower-cased allow-listed extension of the
// filename, or "" when the name has no dot or the extension is disallowed.
func extensionOf(filename string) string {
	i := strings.LastIndex(filename, ".")
	if i < 0 {
		return ""
	}
	ext := strings.ToLower(filename[i+1:])
	for _, allowed := range allowedExtensions {
		if ext == allowed {
			return ext
		}
	}
	return ""
}

func fileName(productID uint, ext string) string {
	return fmt.Sprintf("product_%d.%s", productID, ext)
}
