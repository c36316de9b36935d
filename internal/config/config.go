// Package config provides YAML-based game configuration loading for the
// arcade platform.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// FlappyConfig contains all configuration for the Flappy Bird game.
// Distances are in field units (pixels of the reference 400x600 field),
// speeds in field units per tick.
type FlappyConfig struct {
	Field   FlappyField   `yaml:"field"`
	Physics FlappyPhysics `yaml:"physics"`
	Player  FlappyPlayer  `yaml:"player"`
	Pipes   FlappyPipes   `yaml:"pipes"`
	Loop    LoopConfig    `yaml:"loop"`
	Score   ScoreConfig   `yaml:"score"`
	Audio   AudioConfig   `yaml:"audio"`
	Window  WindowConfig  `yaml:"window"`
}

// FlappyField defines the play field.
type FlappyField struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	FloorHeight float64 `yaml:"floor_height"`
	FloorScroll float64 `yaml:"floor_scroll"` // floor band offset change per frame
}

// FloorY returns the y-coordinate of the floor line.
func (f FlappyField) FloorY() float64 {
	return f.Height - f.FloorHeight
}

// FlappyPhysics defines physics parameters for Flappy Bird.
type FlappyPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	FlapImpulse float64 `yaml:"flap_impulse"`
	ScrollSpeed float64 `yaml:"scroll_speed"`
}

// FlappyPlayer defines player parameters for Flappy Bird.
type FlappyPlayer struct {
	X          float64 `yaml:"x"` // horizontal center, fixed
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Frames     int     `yaml:"frames"`
	FrameTicks int     `yaml:"frame_ticks"`
}

// FlappyPipes defines obstacle parameters for Flappy Bird.
type FlappyPipes struct {
	Width         float64       `yaml:"width"`
	Gap           float64       `yaml:"gap"`
	TopMargin     float64       `yaml:"top_margin"`    // minimum gap distance from the field top
	BottomMargin  float64       `yaml:"bottom_margin"` // minimum gap distance from the floor line
	SpawnInterval time.Duration `yaml:"spawn_interval"`
}

// LoopConfig defines the fixed-rate loop.
type LoopConfig struct {
	TickRate int `yaml:"tick_rate"`
}

// ScoreConfig selects where the high score lives.
type ScoreConfig struct {
	Backend string `yaml:"backend"` // "file" or "sqlite"
	Path    string `yaml:"path"`
}

// AudioConfig defines cue playback.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // 0.0 - 1.0
	SampleRate int     `yaml:"sample_rate"`
	Assets     string  `yaml:"assets"` // directory with flap/point/hit/die.wav; empty = synthesized
}

// WindowConfig defines the graphical frontend.
type WindowConfig struct {
	Assets string  `yaml:"assets"` // directory with the png sprites (and wav cues)
	Scale  float64 `yaml:"scale"`
}

// GapRange returns the inclusive range for a pipe's gap top.
func (c FlappyConfig) GapRange() (lo, hi float64) {
	lo = c.Pipes.TopMargin
	hi = c.Field.FloorY() - c.Pipes.BottomMargin - c.Pipes.Gap
	return lo, hi
}

// Validate checks that the configuration describes a playable field.
func (c FlappyConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("%w: field size %vx%v", ErrInvalid, c.Field.Width, c.Field.Height)
	case c.Field.FloorHeight < 0 || c.Field.FloorHeight >= c.Field.Height:
		return fmt.Errorf("%w: floor height %v", ErrInvalid, c.Field.FloorHeight)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size %vx%v", ErrInvalid, c.Player.Width, c.Player.Height)
	case c.Player.Frames <= 0 || c.Player.FrameTicks <= 0:
		return fmt.Errorf("%w: player animation %d frames every %d ticks", ErrInvalid, c.Player.Frames, c.Player.FrameTicks)
	case c.Pipes.Width <= 0 || c.Pipes.Gap <= 0:
		return fmt.Errorf("%w: pipe width %v gap %v", ErrInvalid, c.Pipes.Width, c.Pipes.Gap)
	case c.Pipes.TopMargin < 0 || c.Pipes.BottomMargin < 0:
		return fmt.Errorf("%w: negative pipe margin", ErrInvalid)
	case c.Pipes.SpawnInterval <= 0:
		return fmt.Errorf("%w: spawn interval %v", ErrInvalid, c.Pipes.SpawnInterval)
	case c.Loop.TickRate <= 0:
		return fmt.Errorf("%w: tick rate %d", ErrInvalid, c.Loop.TickRate)
	case c.Score.Backend != "file" && c.Score.Backend != "sqlite":
		return fmt.Errorf("%w: score backend %q", ErrInvalid, c.Score.Backend)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio volume %v", ErrInvalid, c.Audio.Volume)
	}

	if lo, hi := c.GapRange(); hi < lo {
		return fmt.Errorf("%w: gap range [%v, %v] is empty", ErrInvalid, lo, hi)
	}
	return nil
}
