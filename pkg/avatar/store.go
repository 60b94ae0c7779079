package avatar

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ContentStore persists opaque content blobs and returns the public
// reference under which they are served. Injecting it keeps business logic
// independent of the storage medium.
type ContentStore interface {
	// Put writes data under name and returns its public reference
	Put(name string, data []byte) (string, error)
	// Remove deletes previously written content by its public reference.
	// Removing a reference that does not exist is not an error.
	Remove(ref string) error
}

// FSContentStore is a ContentStore backed by a local directory. References
// take the form "<publicPrefix>/<name>" and are served as static files.
type FSContentStore struct {
	dir          string
	publicPrefix string
}

// NewFSContentStore creates the backing directory if needed and returns a
// filesystem content store
func NewFSContentStore(dir, publicPrefix string) (*FSContentStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create content dir %s: %w", dir, err)
	}
	return &FSContentStore{dir: dir, publicPrefix: strings.TrimSuffix(publicPrefix, "/")}, nil
}

// Dir returns the filesystem directory that backs this store
func (s *FSContentStore) Dir() string {
	return s.dir
}

// Put writes data under name and returns its public reference
func (s *FSContentStore) Put(name string, data []byte) (string, error) {
	// Reject path traversal in generated names
	base := filepath.Base(name)
	if base != name || name == "." || name == ".." {
		return "", fmt.Errorf("invalid content name: %q", name)
	}

	if err := os.WriteFile(filepath.Join(s.dir, base), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write content %s: %w", base, err)
	}
	return s.publicPrefix + "/" + base, nil
}

// Remove deletes content by its public reference
func (s *FSContentStore) Remove(ref string) error {
	base := path.Base(ref)
	if base == "." || base == ".." || base == "/" {
		return fmt.Errorf("invalid content reference: %q", ref)
	}

	if err := os.Remove(filepath.Join(s.dir, base)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove content %s: %w", base, err)
	}
	return nil
}
