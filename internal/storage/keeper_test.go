package storage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestKeeperSwallowsErrors(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	store := &MemoryStore{Score: 4, SaveErr: errors.New("disk full")}
	k := NewKeeper(store, logger)

	if got := k.Load(); got != 4 {
		t.Errorf("Load() = %d, expected 4", got)
	}

	k.Save(10) // must not panic or propagate
	if store.Saves != 1 {
		t.Errorf("store saw %d saves, expected 1", store.Saves)
	}
	if !strings.Contains(buf.String(), "disk full") {
		t.Errorf("save failure was not logged: %q", buf.String())
	}
}

func TestKeeperUnreadableIsZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "high_score.txt")
	if err := os.WriteFile(path, []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}
	store, err := OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	k := NewKeeper(store, log.New(&buf))
	if got := k.Load(); got != 0 {
		t.Errorf("Load() = %d, expected 0", got)
	}
	if buf.Len() == 0 {
		t.Error("expected a warning for an unreadable record")
	}

	// Saving replaces the garbage
	k.Save(3)
	if got := k.Load(); got != 3 {
		t.Errorf("Load() after Save = %d, expected 3", got)
	}
}

func TestKeeperNilStore(t *testing.T) {
	k := NewKeeper(nil, nil)
	if got := k.Load(); got != 0 {
		t.Errorf("Load() = %d, expected 0", got)
	}
	k.Save(5)

	var nilKeeper *Keeper
	if got := nilKeeper.Load(); got != 0 {
		t.Errorf("nil Keeper Load() = %d, expected 0", got)
	}
	nilKeeper.Save(1)
}
