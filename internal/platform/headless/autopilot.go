package headless

import (
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

// Autopilot plays flappy by flapping whenever the bird sinks below its target:
// a little above the bottom of the next gap, or mid-field when no pipe is ahead.
type Autopilot struct {
	game *flappy.Game
	// Restart starts a new round after a crash; otherwise the autopilot quits.
	Restart bool
	// Margin is how far above the gap bottom the bird aims, in field units.
	Margin float64
}

// NewAutopilot creates an autopilot for game.
func NewAutopilot(game *flappy.Game, restart bool) *Autopilot {
	return &Autopilot{game: game, Restart: restart, Margin: 45}
}

// Next implements Source.
func (a *Autopilot) Next(_ uint64, state core.GameState) core.InputFrame {
	in := core.NewInputFrame()

	switch state.Phase {
	case core.PhaseIdle:
		in.Set(core.ActionImpulse)
	case core.PhaseOver:
		if a.Restart {
			in.Set(core.ActionRestart)
		} else {
			in.Set(core.ActionQuit)
		}
	case core.PhaseActive:
		snap := a.game.Snapshot()
		bird := snap.Player
		if bird.Bottom() > a.target(snap) && snap.PlayerVel >= 0 {
			in.Set(core.ActionImpulse)
		}
	}
	return in
}

// target returns the y the bird's bottom edge should stay above.
func (a *Autopilot) target(snap flappy.Snapshot) float64 {
	bird := snap.Player
	for _, p := range snap.Pipes {
		if p.Bottom.Right() >= bird.X {
			return p.Bottom.Y - a.Margin
		}
	}
	return snap.Field.FloorY() - snap.Field.Height/3
}
