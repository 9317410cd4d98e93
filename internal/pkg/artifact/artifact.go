package artifact

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ougirez/coalportal/internal/pkg/constants"
	"github.com/ougirez/coalportal/internal/pkg/logger"
)

// FileStore keeps generated artifacts as flat files in one directory.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) Dir() string {
	return s.dir
}

// Put writes data under name, replacing an existing artifact with the same name.
func (s *FileStore) Put(ctx context.Context, name string, data []byte) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}

	if err = os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create artifact dir: %w", err)
	}

	tmp := path + ".tmp"
	if err = os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write artifact %s: %w", name, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename artifact %s: %w", name, err)
	}

	logger.Debugf(ctx, "artifact %s written, %d bytes", name, len(data))
	return nil
}

// Open returns a reader over a stored artifact. Unknown names and names that
// would escape the directory are reported as constants.ErrNotFound.
func (s *FileStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("artifact %s: %w", name, constants.ErrNotFound)
		}
		logger.Errorf(ctx, "open artifact %s: %s", name, err.Error())
		return nil, fmt.Errorf("open artifact %s: %w", name, err)
	}

	return f, nil
}

func (s *FileStore) path(name string) (string, error) {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return "", fmt.Errorf("artifact %q: %w", name, constants.ErrNotFound)
	}
	return filepath.Join(s.dir, name), nil
}
