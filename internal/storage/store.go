// Package storage persists the single high-score record.
// A missing or unreadable record reads as 0; writes overwrite the record.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNegativeScore is returned when saving a score below zero.
var ErrNegativeScore = errors.New("storage: negative score")

// Store holds one non-negative integer high score.
type Store interface {
	// Load returns the stored high score. A missing record is 0 with no error.
	Load() (int, error)
	// Save overwrites the stored high score.
	Save(score int) error
	// Close releases the underlying resources.
	Close() error
}

// Open creates the store for the given backend ("file" or "sqlite") at path.
func Open(backend, path string) (Store, error) {
	switch backend {
	case "", "file":
		return OpenFile(path)
	case "sqlite":
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", backend)
	}
}

// expandPath expands a leading ~ to the home directory and creates the parent directory.
func expandPath(path string) (string, error) {
	if path == "" {
		return "", errors.New("storage: empty path")
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return path, nil
}
