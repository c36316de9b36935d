package storage

import (
	"github.com/charmbracelet/log"
)

// Keeper is the boundary between the game and its Store. Persistence is a
// convenience: read failures count as "no record" and write failures are
// logged and dropped, so callers never see a storage error.
type Keeper struct {
	store  Store
	logger *log.Logger
}

// NewKeeper wraps store. A nil store behaves as an empty record that ignores writes.
func NewKeeper(store Store, logger *log.Logger) *Keeper {
	if logger == nil {
		logger = log.Default()
	}
	return &Keeper{store: store, logger: logger}
}

// Load returns the stored high score, or 0 if it cannot be read.
func (k *Keeper) Load() int {
	if k == nil || k.store == nil {
		return 0
	}
	score, err := k.store.Load()
	if err != nil {
		k.logger.Warn("high score unreadable, starting from 0", "error", err)
		return 0
	}
	return score
}

// Save writes score through to the store. Failures are logged and swallowed.
func (k *Keeper) Save(score int) {
	if k == nil || k.store == nil {
		return
	}
	if err := k.store.Save(score); err != nil {
		k.logger.Warn("high score not saved", "score", score, "error", err)
		return
	}
	k.logger.Debug("high score saved", "score", score)
}
