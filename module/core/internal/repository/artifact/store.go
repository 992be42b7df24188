// Package artifact stores trained model artifacts by name.
package artifact

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store reads and writes named model artifacts. Read failures degrade the
// owning scorer to its documented default; write failures are fatal to the
// training call only.
type Store interface {
	Read(name string) ([]byte, error)
	Write(name string, data []byte) error
}

var _ Store = (*FileStore)(nil)

// FileStore keeps artifacts as files under a single directory.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("artifact dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Read(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("read artifact %s: %w", name, err)
	}
	return data, nil
}

// Write persists atomically: the artifact lands under its final name only
// once fully written.
func (s *FileStore) Write(name string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("write artifact %s: %w", name, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write artifact %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write artifact %s: %w", name, err)
	}
	if err := os.Rename(tmpName, filepath.Join(s.dir, name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write artifact %s: %w", name, err)
	}
	return nil
}
