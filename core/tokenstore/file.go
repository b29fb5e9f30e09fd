package tokenstore

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

var _ Store = (*FileStore)(nil)

// FileStore keeps the token in a single file, durable across process
// restarts within the same user profile. It is the default store and the
// closest equivalent to a browser's local storage key.
type FileStore struct {
	path string
}

// Config provides environment-based configuration for the file store.
type Config struct {
	// Path overrides the token file location. Empty means the default
	// location under the user's configuration directory.
	Path string `env:"AUTHKIT_TOKEN_FILE" envDefault:""`
}

// DefaultPath returns the default token file location:
// <user config dir>/authkit/session_token.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "authkit", "session_token"), nil
}

// NewFileStore creates a file-backed store at path. An empty path selects
// the default location.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return &FileStore{path: path}, nil
}

// NewFileStoreFromConfig creates a file-backed store from configuration.
func NewFileStoreFromConfig(cfg Config) (*FileStore, error) {
	return NewFileStore(cfg.Path)
}

// Path returns the file the store reads and writes.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Save(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Join(ErrSaveFailed, err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return errors.Join(ErrSaveFailed, err)
	}
	return nil
}

func (s *FileStore) Load(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", err
	}
	if len(b) == 0 {
		return "", ErrNotFound
	}
	return string(b), nil
}

func (s *FileStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Join(ErrClearFailed, err)
	}
	return nil
}
