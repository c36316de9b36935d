package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// FileStore keeps the high score as decimal text in a single file.
type FileStore struct {
	path string
}

// OpenFile returns a store backed by the file at path. The file itself is created on first Save.
func OpenFile(path string) (*FileStore, error) {
	resolved, err := expandPath(path)
	if err != nil {
		return nil, err
	}
	return &FileStore{path: resolved}, nil
}

// Path returns the resolved file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the stored score. A missing file is 0 with no error;
// unparsable or negative content is an error.
func (s *FileStore) Load() (int, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read %s: %w", s.path, err)
	}

	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("storage: cannot parse %s: %w", s.path, err)
	}
	if score < 0 {
		return 0, fmt.Errorf("storage: %s: %w", s.path, ErrNegativeScore)
	}
	return score, nil
}

// Save overwrites the file with the decimal score. The write goes through a
// temporary file and a rename so a crash never leaves a half-written record.
func (s *FileStore) Save(score int) error {
	if score < 0 {
		return ErrNegativeScore
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".highscore-*")
	if err != nil {
		return fmt.Errorf("storage: cannot save score: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(strconv.Itoa(score)); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("storage: cannot save score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: cannot save score: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: cannot save score: %w", err)
	}
	return nil
}

// Close implements Store. There is nothing to release.
func (s *FileStore) Close() error {
	return nil
}
