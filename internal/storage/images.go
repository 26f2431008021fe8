package storage

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	// webp images are decodable but re-encoded as PNG thumbnails.
	_ "golang.org/x/image/webp"

	"github.com/avdeev21/retro-market/internal/logger"
)

var (
	// ErrEmptyFilename is returned when the upload carries no filename.
	ErrEmptyFilename = errors.New("filename is required")
	// ErrUnsupportedType is returned for extensions outside the allow list.
	ErrUnsupportedType = errors.New("unsupported image type")
	// ErrNotAnImage is returned when the payload does not decode as an image.
	ErrNotAnImage = errors.New("payload is not a decodable image")
)

// allowedExtensions is the upload allow list. Matching is done on the
// lowercased extension.
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

const (
	thumbWidth  = 300
	thumbHeight = 300
)

// ImageStore keeps uploaded listing images on disk: originals under
// originals/ and 300x300 bounded thumbnails under thumbnails/, both named
// with a random 16 hex character stem so uploads never collide.
type ImageStore struct {
	baseDir string
}

// NewImageStore creates the originals and thumbnails directories under
// baseDir if they do not exist.
func NewImageStore(baseDir string) (*ImageStore, error) {
	for _, dir := range []string{
		filepath.Join(baseDir, "originals"),
		filepath.Join(baseDir, "thumbnails"),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
		}
	}
	return &ImageStore{baseDir: baseDir}, nil
}

// Save validates the upload by extension, stores the original bytes
// verbatim, decodes them, and renders the thumbnail. It returns the
// generated filename. A payload that does not decode is removed and
// rejected; the original is kept only when the thumbnail write itself fails
// after a successful decode.
func (s *ImageStore) Save(originalName string, r io.Reader) (string, error) {
	if originalName == "" {
		return "", ErrEmptyFilename
	}
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, originalName)
	}

	stem, err := randomStem()
	if err != nil {
		return "", err
	}
	filename := stem + ext

	originalPath := filepath.Join(s.baseDir, "originals", filename)
	f, err := os.Create(originalPath)
	if err != nil {
		return "", fmt.Errorf("store original: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(originalPath)
		return "", fmt.Errorf("store original: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(originalPath)
		return "", fmt.Errorf("store original: %w", err)
	}

	img, err := imaging.Open(originalPath)
	if err != nil {
		os.Remove(originalPath)
		return "", fmt.Errorf("%w: %s: %v", ErrNotAnImage, originalName, err)
	}

	if err := s.writeThumbnail(img, filename, ext); err != nil {
		logger.Log.Warnw("thumbnail write failed, keeping original only", "filename", filename, "error", err)
	}

	return filename, nil
}

// OriginalPath returns the on-disk path of a stored original.
func (s *ImageStore) OriginalPath(filename string) string {
	return filepath.Join(s.baseDir, "originals", filename)
}

// ThumbnailPath returns the on-disk path of a stored thumbnail.
func (s *ImageStore) ThumbnailPath(filename string) string {
	return filepath.Join(s.baseDir, "thumbnails", filename)
}

// Remove deletes the original and thumbnail for filename. Missing files are
// not an error.
func (s *ImageStore) Remove(filename string) error {
	var errs []error
	for _, path := range []string{s.OriginalPath(filename), s.ThumbnailPath(filename)} {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// writeThumbnail writes a thumbnail bounded to 300x300 under the same
// filename. webp thumbnails are encoded as PNG because no webp encoder is
// available; the filename keeps its extension so the listing's image list
// stays consistent.
func (s *ImageStore) writeThumbnail(img image.Image, filename, ext string) error {
	thumb := imaging.Fit(img, thumbWidth, thumbHeight, imaging.Lanczos)
	thumbPath := filepath.Join(s.baseDir, "thumbnails", filename)

	if ext == ".webp" {
		f, err := os.Create(thumbPath)
		if err != nil {
			return fmt.Errorf("store thumbnail: %w", err)
		}
		defer f.Close()
		return imaging.Encode(f, thumb, imaging.PNG)
	}

	if err := imaging.Save(thumb, thumbPath); err != nil {
		return fmt.Errorf("store thumbnail: %w", err)
	}
	return nil
}

// randomStem returns 16 hex characters from 8 random bytes.
func randomStem() (string, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate filename: %w", err)
	}
	return hex.EncodeToString(b), nil
}
