package store

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MountPoint is the URL prefix under which blob references are served.
const MountPoint = "/uploads"

// BlobStore keeps uploaded files on the local filesystem and hands out
// root-relative references ("/uploads/<name>"). Records store only the
// reference, never file bytes.
type BlobStore struct {
	dir string
}

func NewBlobStore(dir string) (*BlobStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error creating upload directory: %w", err)
	}
	return &BlobStore{dir: dir}, nil
}

// Dir returns the backing directory, for static file serving.
func (b *BlobStore) Dir() string {
	return b.dir
}

// Save streams src into a new blob named after the form field with a
// uniqueness suffix and the original extension, and returns its reference.
func (b *BlobStore) Save(field, originalName string, src io.Reader) (string, error) {
	suffix := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
	name := field + "-" + suffix + filepath.Ext(originalName)

	dst, err := os.Create(filepath.Join(b.dir, name))
	if err != nil {
		return "", fmt.Errorf("error creating blob file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("error writing blob file: %w", err)
	}

	return MountPoint + "/" + name, nil
}

// SaveUpload stores a multipart file header under the given field name.
func (b *BlobStore) SaveUpload(field string, header *multipart.FileHeader) (string, error) {
	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("error opening upload: %w", err)
	}
	defer file.Close()

	return b.Save(field, header.Filename, file)
}

// Remove deletes the blob behind ref. References outside the mount point
// (e.g. the portfolio placeholder sentinel) and already-missing files are
// ignored.
func (b *BlobStore) Remove(ref string) error {
	path, ok := b.resolve(ref)
	if !ok {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error removing blob %s: %w", ref, err)
	}
	return nil
}

// Path resolves ref to an absolute file path, reporting whether the file
// exists on disk.
func (b *BlobStore) Path(ref string) (string, bool) {
	path, ok := b.resolve(ref)
	if !ok {
		return "", false
	}
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}

func (b *BlobStore) resolve(ref string) (string, bool) {
	name, ok := strings.CutPrefix(ref, MountPoint+"/")
	if !ok || name == "" {
		return "", false
	}
	// Reject traversal out of the upload directory.
	if name != filepath.Base(name) {
		return "", false
	}
	return filepath.Join(b.dir, name), true
}
