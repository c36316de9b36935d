package flappy

import (
	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Player is the bird. Y is the vertical center of its hitbox; X never changes.
type Player struct {
	X, Y      float64
	Vel       float64
	W, H      float64
	Frame     int // current animation frame, cycles through [0, frames)
	AnimTicks int // ticks since creation, drives Frame

	gravity    float64
	impulse    float64
	frames     int
	frameTicks int
}

// NewPlayer creates a player at rest, vertically centered in the field.
func NewPlayer(cfg config.FlappyConfig) Player {
	return Player{
		X:          cfg.Player.X,
		Y:          cfg.Field.Height / 2,
		W:          cfg.Player.Width,
		H:          cfg.Player.Height,
		gravity:    cfg.Physics.Gravity,
		impulse:    cfg.Physics.FlapImpulse,
		frames:     cfg.Player.Frames,
		frameTicks: cfg.Player.FrameTicks,
	}
}

// ApplyImpulse replaces the current velocity with the upward flap velocity.
func (p *Player) ApplyImpulse() {
	p.Vel = p.impulse
}

// Tick applies gravity, moves the player and advances the wing animation.
func (p *Player) Tick() {
	p.Vel += p.gravity
	p.Y += p.Vel

	p.AnimTicks++
	if p.frameTicks > 0 && p.AnimTicks%p.frameTicks == 0 {
		p.Frame = (p.Frame + 1) % p.frames
	}
}

// Rect returns the player's collision rectangle.
func (p Player) Rect() core.RectF {
	return core.NewRectF(p.X-p.W/2, p.Y-p.H/2, p.W, p.H)
}
