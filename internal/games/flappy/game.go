// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes.
package flappy

import (
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Game implements the Flappy Bird game logic on top of a Session.
// It owns what outlives a single round: the scrolling floor band and restarts.
type Game struct {
	opts    Options
	config  core.RuntimeConfig
	session *Session
	floorX  float64 // floor band offset, in (-field width, 0]
	round   int     // restarts since Reset, mixed into the pipe seed
}

// New creates a new Flappy Bird game instance.
func New(opts Options) *Game {
	g := &Game{opts: opts}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset starts over from an idle session, reloading the high score from the store.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.floorX = 0
	g.round = 0
	g.session = NewSession(g.opts, g.opts.Keeper.Load(), cfg.Seed)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.scrollFloor()

	if g.session.Phase() == core.PhaseOver {
		// The restarting press does not also flap
		if in.Has(core.ActionImpulse) || in.Has(core.ActionRestart) {
			g.restart()
		}
		return core.StepResult{State: g.State()}
	}

	cues := g.session.Step(in.Has(core.ActionImpulse))
	return core.StepResult{State: g.State(), Cues: cues}
}

// restart replaces the finished session with a fresh idle one.
// The high score carried over is the better of memory and the store.
func (g *Game) restart() {
	high := core.Max(g.session.HighScore(), g.opts.Keeper.Load())
	g.round++
	g.session = NewSession(g.opts, high, g.config.Seed+int64(g.round))
	g.opts.logger().Debug("session restarted", "round", g.round, "high", high)
}

// scrollFloor moves the floor band one step left, wrapping after a full field width.
func (g *Game) scrollFloor() {
	g.floorX -= g.opts.Config.Field.FloorScroll
	if g.floorX <= -g.opts.Config.Field.Width {
		g.floorX = 0
	}
}

// Session returns the current round.
func (g *Game) Session() *Session {
	return g.session
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.session.Score(),
		HighScore: g.session.HighScore(),
		Phase:     g.session.Phase(),
		GameOver:  g.session.Phase() == core.PhaseOver,
	}
}
