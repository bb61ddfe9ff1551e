// Package storage persists the countdown's small JSON blobs (assumptions,
// snapshots, settings) in a key-value store and wraps them in a Repository
// that never lets a storage failure reach the caller's numbers.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rgehrsitz/countdown/internal/config"
)

// Store is a string-keyed blob store. Get reports absence through ok rather
// than an error.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Close() error
}

// appDir is the directory name used under the user's config directory
const appDir = "countdown"

// DefaultDir returns the per-user directory used when no storage path is configured
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config directory: %w", err)
	}
	return filepath.Join(base, appDir), nil
}

// Open creates the store selected by cfg
func Open(cfg config.StorageConfig) (Store, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return NewMemoryStore(), nil
	case config.BackendFile, "":
		dir := cfg.Path
		if dir == "" {
			var err error
			if dir, err = DefaultDir(); err != nil {
				return nil, err
			}
		}
		return NewFileStore(dir)
	case config.BackendSQLite:
		path := cfg.Path
		if path == "" {
			dir, err := DefaultDir()
			if err != nil {
				return nil, err
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create %s: %w", dir, err)
			}
			path = filepath.Join(dir, "countdown.db")
		}
		return NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
