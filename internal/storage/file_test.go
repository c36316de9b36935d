package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreMissingIsZero(t *testing.T) {
	store, err := OpenFile(filepath.Join(t.TempDir(), "nested", "high_score.txt"))
	if err != nil {
		t.Fatalf("OpenFile() failed: %v", err)
	}

	score, err := store.Load()
	if err != nil {
		t.Fatalf("Load() on missing file failed: %v", err)
	}
	if score != 0 {
		t.Errorf("Load() = %d, expected 0", score)
	}

	// Parent directory is created eagerly
	if _, err := os.Stat(filepath.Dir(store.Path())); err != nil {
		t.Errorf("parent directory was not created: %v", err)
	}
}

func TestFileStoreSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "high_score.txt")
	if err := os.WriteFile(path, []byte("7"), 0o644); err != nil {
		t.Fatal(err)
	}

	store, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() failed: %v", err)
	}

	score, err := store.Load()
	if err != nil || score != 7 {
		t.Fatalf("Load() = %d, %v; expected 7", score, err)
	}

	// A lower session score is never written by callers; a higher one overwrites.
	if err := store.Save(9); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "9" {
		t.Errorf("file content = %q, expected %q", data, "9")
	}

	score, err = store.Load()
	if err != nil || score != 9 {
		t.Errorf("Load() after Save = %d, %v; expected 9", score, err)
	}
}

func TestFileStoreTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "high_score.txt")
	if err := os.WriteFile(path, []byte("  42\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	store, _ := OpenFile(path)
	score, err := store.Load()
	if err != nil || score != 42 {
		t.Errorf("Load() = %d, %v; expected 42", score, err)
	}
}

func TestFileStoreBadContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not a number", "abc"},
		{"empty", ""},
		{"fraction", "3.5"},
		{"negative", "-4"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "high_score.txt")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			store, _ := OpenFile(path)
			if _, err := store.Load(); err == nil {
				t.Errorf("Load() with %q should fail", tc.content)
			}
		})
	}
}

func TestFileStoreRejectsNegative(t *testing.T) {
	store, _ := OpenFile(filepath.Join(t.TempDir(), "high_score.txt"))
	if err := store.Save(-1); !errors.Is(err, ErrNegativeScore) {
		t.Errorf("Save(-1) = %v, expected ErrNegativeScore", err)
	}
}

func TestOpenBackends(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		backend string
		wantErr bool
	}{
		{"", false},
		{"file", false},
		{"sqlite", false},
		{"redis", true},
	}

	for _, tc := range tests {
		t.Run(tc.backend, func(t *testing.T) {
			store, err := Open(tc.backend, filepath.Join(dir, "score-"+tc.backend))
			if tc.wantErr {
				if err == nil {
					t.Error("expected error for unknown backend")
				}
				return
			}
			if err != nil {
				t.Fatalf("Open() failed: %v", err)
			}
			defer store.Close()

			if err := store.Save(3); err != nil {
				t.Fatalf("Save() failed: %v", err)
			}
			if score, err := store.Load(); err != nil || score != 3 {
				t.Errorf("Load() = %d, %v; expected 3", score, err)
			}
		})
	}
}
