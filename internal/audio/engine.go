// Package audio plays the game's sound cues through the beep speaker.
// Audio is a convenience: when the device cannot be opened the engine stays silent.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Engine implements core.CuePlayer on top of a beep mixer.
// Cues are fire-and-forget and overlap freely.
type Engine struct {
	mu          sync.Mutex
	bank        *Bank
	mixer       *beep.Mixer
	volume      float64
	logger      *log.Logger
	initialized bool
}

// NewEngine creates an engine for bank. It is silent until Start succeeds.
func NewEngine(bank *Bank, volume float64, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{
		bank:   bank,
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logger,
	}
}

// Open builds the engine described by cfg and starts the speaker.
// Sounds come from cfg.Assets when set, otherwise they are synthesized.
// Only asset errors are returned; a missing audio device leaves the engine silent.
func Open(cfg config.AudioConfig, logger *log.Logger) (*Engine, error) {
	if !cfg.Enabled {
		return NewEngine(nil, 0, logger), nil
	}

	format := NewFormat(cfg.SampleRate)
	bank := NewSynthBank(format)
	if cfg.Assets != "" {
		var err error
		if bank, err = LoadWavBank(cfg.Assets, format); err != nil {
			return nil, err
		}
	}

	e := NewEngine(bank, cfg.Volume, logger)
	if err := e.Start(); err != nil {
		e.logger.Warn("audio unavailable, continuing without sound", "error", err)
	}
	return e, nil
}

// Start initializes the speaker with a 100ms buffer and begins mixing.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized || e.bank == nil {
		return nil
	}

	rate := e.bank.Format().SampleRate
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(e.mixer)
	e.initialized = true
	e.logger.Debug("audio started", "rate", int(rate))
	return nil
}

// Play implements core.CuePlayer.
func (e *Engine) Play(c core.Cue) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	s := e.bank.Streamer(c)
	if s == nil {
		return
	}

	speaker.Lock()
	e.mixer.Add(newVolume(s, e.volume))
	speaker.Unlock()
}

// Active reports whether cues reach the speaker.
func (e *Engine) Active() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.initialized
}

// Close stops all sounds and closes the audio system.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	e.initialized = false
}
