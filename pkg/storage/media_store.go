// Package storage keeps uploaded images on local disk.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

const (
	KindArticles  = "articles"
	KindEvents    = "events"
	KindCustomers = "customers"

	MaxImageSize = 2048 * 1024
)

var (
	ErrFileTooLarge     = errors.New("image may not be greater than 2048 kilobytes")
	ErrUnsupportedImage = errors.New("image must be a file of type: jpg, jpeg, png, gif, svg")
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".svg":  true,
}

type MediaStore interface {
	// Save stores the upload under kind and returns its relative path, e.g. image/articles/1700000000.png.
	Save(ctx context.Context, kind string, file *multipart.FileHeader) (string, error)
	Delete(storedPath string) error
}

type LocalMediaStore struct {
	root string
	now  func() time.Time
}

func NewLocalMediaStore(root string) *LocalMediaStore {
	return &LocalMediaStore{root: root, now: time.Now}
}

// CheckImage validates size, extension and sniffed content of an upload.
func CheckImage(file *multipart.FileHeader) error {
	if file.Size > MaxImageSize {
		return ErrFileTooLarge
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return ErrUnsupportedImage
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		return err
	}
	if !mtype.Is("image/jpeg") && !mtype.Is("image/png") && !mtype.Is("image/gif") && !mtype.Is("image/svg+xml") {
		return ErrUnsupportedImage
	}
	return nil
}

func (s *LocalMediaStore) Save(ctx context.Context, kind string, file *multipart.FileHeader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := CheckImage(file); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dir := filepath.Join(s.root, "image", kind)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	// Two uploads of the same kind within one second share a name; the later one wins.
	filename := fmt.Sprintf("%d%s", s.now().Unix(), strings.ToLower(filepath.Ext(file.Filename)))
	if err := writeFile(filepath.Join(dir, filename), src); err != nil {
		return "", err
	}

	return path.Join("image", kind, filename), nil
}

// writeFile copies src to name. A partially written file is removed.
func writeFile(name string, src io.Reader) error {
	dst, err := os.Create(name)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(name)
		return err
	}
	return dst.Close()
}

// Delete removes a stored file. A missing file is not an error.
func (s *LocalMediaStore) Delete(storedPath string) error {
	if storedPath == "" {
		return nil
	}
	clean := filepath.Clean(filepath.FromSlash(storedPath))
	if filepath.IsAbs(clean) || strings.HasPrefix(clean, "..") {
		return fmt.Errorf("refusing to delete %q outside storage root", storedPath)
	}
	if err := os.Remove(filepath.Join(s.root, clean)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
