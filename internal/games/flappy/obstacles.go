package flappy

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Pipe represents a vertical obstacle with a gap for the player to pass through.
type Pipe struct {
	X      float64 // Horizontal position (left edge)
	GapTop float64 // Y position where gap starts (top of gap)
	Passed bool    // Whether the player has passed this pipe (for scoring)
}

// Tick scrolls the pipe left by speed.
func (p *Pipe) Tick(speed float64) {
	p.X -= speed
}

// OffScreen reports whether the pipe's right edge is fully left of the field origin.
func (p Pipe) OffScreen(width float64) bool {
	return p.X+width < 0
}

// TopRegion returns the collision rectangle above the gap.
func TopRegion(p Pipe, cfg config.FlappyConfig) core.RectF {
	return core.NewRectF(p.X, 0, cfg.Pipes.Width, p.GapTop)
}

// BottomRegion returns the collision rectangle below the gap, down to the bottom of the field.
func BottomRegion(p Pipe, cfg config.FlappyConfig) core.RectF {
	bottomY := p.GapTop + cfg.Pipes.Gap
	return core.NewRectF(p.X, bottomY, cfg.Pipes.Width, cfg.Field.Height-bottomY)
}

// Spawner creates pipes at a fixed interval with a uniformly random gap position.
type Spawner struct {
	rng      *rand.Rand
	interval time.Duration
	spawnX   float64
	lo, hi   float64 // inclusive gap top range
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(cfg config.FlappyConfig, seed int64) *Spawner {
	lo, hi := cfg.GapRange()
	return &Spawner{
		rng:      rand.New(rand.NewSource(seed)),
		interval: cfg.Pipes.SpawnInterval,
		spawnX:   cfg.Field.Width,
		lo:       lo,
		hi:       hi,
	}
}

// Interval returns the time between spawns.
func (s *Spawner) Interval() time.Duration {
	return s.interval
}

// MaybeSpawn returns a new pipe at the right edge of the field once elapsedSinceLast
// reaches the spawn interval. The caller resets its timer when a pipe is returned.
func (s *Spawner) MaybeSpawn(elapsedSinceLast time.Duration) (Pipe, bool) {
	if elapsedSinceLast < s.interval {
		return Pipe{}, false
	}
	return Pipe{X: s.spawnX, GapTop: s.gapTop()}, true
}

// gapTop picks a whole-unit gap position inside [lo, hi].
func (s *Spawner) gapTop() float64 {
	minY := math.Ceil(s.lo)
	maxY := math.Floor(s.hi)
	if maxY < minY {
		// Range narrower than one unit
		return s.lo
	}
	return minY + float64(s.rng.Intn(int(maxY-minY)+1))
}
