package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"trickhub/apperror"

	"github.com/rs/xid"
)

// MediaStorage keeps uploaded article images. Paths it returns are relative
// to the media root and use forward slashes so they can be joined to the
// media URL prefix.
type MediaStorage interface {
	Save(file *multipart.FileHeader) (string, error)
	Remove(relPath string) error
}

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

const articleImageDir = "articles"

type localMediaStorage struct {
	root string
}

func NewLocalMediaStorage(root string) MediaStorage {
	return &localMediaStorage{root: root}
}

func (s *localMediaStorage) Save(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExtensions[ext] {
		return "", apperror.ValidationFailed("image", "Upload a valid image. The file you uploaded was either not an image or a corrupted image.")
	}

	dir := filepath.Join(s.root, articleImageDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating media directory: %w", err)
	}

	name := xid.New().String() + ext

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("opening upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("creating media file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("writing media file: %w", err)
	}

	return path.Join(articleImageDir, name), nil
}

func (s *localMediaStorage) Remove(relPath string) error {
	if relPath == "" {
		return nil
	}
	// refuse anything that would escape the media root
	clean := filepath.Clean(filepath.FromSlash(relPath))
	if filepath.IsAbs(clean) || strings.HasPrefix(clean, "..") {
		return fmt.Errorf("invalid media path %q", relPath)
	}

	err := os.Remove(filepath.Join(s.root, clean))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
