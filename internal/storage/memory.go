package storage

// MemoryStore keeps the high score in memory only. Used by simulations and tests.
type MemoryStore struct {
	Score   int
	SaveErr error // returned by Save when set; the score is left unchanged
	Saves   int   // number of Save calls with a valid score
}

// Load implements Store.
func (m *MemoryStore) Load() (int, error) {
	return m.Score, nil
}

// Save implements Store.
func (m *MemoryStore) Save(score int) error {
	if score < 0 {
		return ErrNegativeScore
	}
	m.Saves++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Score = score
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	return nil
}
