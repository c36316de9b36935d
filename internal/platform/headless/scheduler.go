// Package headless runs a game without a screen, for simulations and tests.
package headless

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Source supplies the input for each tick.
type Source interface {
	Next(tick uint64, state core.GameState) core.InputFrame
}

// SourceFunc adapts a function to Source.
type SourceFunc func(tick uint64, state core.GameState) core.InputFrame

// Next implements Source.
func (f SourceFunc) Next(tick uint64, state core.GameState) core.InputFrame {
	return f(tick, state)
}

// Result summarizes a run.
type Result struct {
	Ticks     uint64        // ticks stepped
	Rounds    int           // rounds that ended in a crash
	BestScore int           // best single-round score
	HighScore int           // high score at the end of the run
	Elapsed   time.Duration // simulated time
	Quit      bool          // the source asked to stop
}

// Scheduler drives a game at a fixed tick rate: input, step, cues, wait.
type Scheduler struct {
	clock    *core.Clock
	cues     core.CuePlayer
	logger   *log.Logger
	realtime bool
}

// NewScheduler creates a scheduler at rate ticks per second. When realtime is
// false ticks run back to back; simulated time still advances by one interval per tick.
func NewScheduler(rate int, realtime bool, cues core.CuePlayer, logger *log.Logger) *Scheduler {
	if cues == nil {
		cues = core.NopCuePlayer{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Scheduler{
		clock:    core.NewClock(rate),
		cues:     cues,
		logger:   logger,
		realtime: realtime,
	}
}

// Run steps game until maxTicks ticks have run, the source quits or ctx is done.
// The game must already be Reset. A cancelled context returns the partial result and ctx.Err().
func (s *Scheduler) Run(ctx context.Context, game core.Game, src Source, maxTicks uint64) (Result, error) {
	var res Result
	start := s.clock.Ticks()

	var pace <-chan time.Time
	if s.realtime {
		ticker := time.NewTicker(s.clock.Interval())
		defer ticker.Stop()
		pace = ticker.C
	}

	state := game.State()
	for res.Ticks < maxTicks {
		select {
		case <-ctx.Done():
			return s.finish(res, start, game), ctx.Err()
		default:
		}

		in := src.Next(res.Ticks, state)
		if in.Has(core.ActionQuit) {
			res.Quit = true
			break
		}

		prev := state.Phase
		result := game.Step(in)
		state = result.State
		for _, c := range result.Cues {
			s.cues.Play(c)
		}
		s.clock.Advance()
		res.Ticks++

		if state.Phase == core.PhaseOver && prev != core.PhaseOver {
			res.Rounds++
			res.BestScore = core.Max(res.BestScore, state.Score)
			s.logger.Debug("round over", "round", res.Rounds, "score", state.Score, "tick", res.Ticks)
		}

		if pace != nil {
			select {
			case <-ctx.Done():
				return s.finish(res, start, game), ctx.Err()
			case <-pace:
			}
		}
	}

	return s.finish(res, start, game), nil
}

func (s *Scheduler) finish(res Result, start uint64, game core.Game) Result {
	state := game.State()
	res.BestScore = core.Max(res.BestScore, state.Score)
	res.HighScore = state.HighScore
	res.Elapsed = s.clock.Elapsed(start)
	return res
}
