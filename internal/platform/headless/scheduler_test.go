package headless

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

func newGame(seed int64) *flappy.Game {
	g := flappy.New(flappy.Options{Config: config.DefaultFlappyConfig()})
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	g.Reset(cfg)
	return g
}

// flapOnce presses impulse on the first tick only; the bird then falls to the floor.
func flapOnce() Source {
	return SourceFunc(func(tick uint64, _ core.GameState) core.InputFrame {
		in := core.NewInputFrame()
		if tick == 0 {
			in.Set(core.ActionImpulse)
		}
		return in
	})
}

func TestRunIdleNeverStarts(t *testing.T) {
	g := newGame(1)
	s := NewScheduler(60, false, nil, nil)

	idle := SourceFunc(func(uint64, core.GameState) core.InputFrame { return core.NewInputFrame() })
	res, err := s.Run(context.Background(), g, idle, 100)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if res.Ticks != 100 {
		t.Errorf("Ticks = %d, expected 100", res.Ticks)
	}
	if res.Rounds != 0 {
		t.Errorf("Rounds = %d, expected 0", res.Rounds)
	}
	if g.State().Phase != core.PhaseIdle {
		t.Errorf("Phase = %v, expected idle", g.State().Phase)
	}
	if len(g.Session().Pipes()) != 0 {
		t.Error("no pipes should spawn before the first flap")
	}
}

func TestRunFallToFloor(t *testing.T) {
	g := newGame(1)
	rec := &core.CueRecorder{}
	s := NewScheduler(60, false, rec, nil)

	res, err := s.Run(context.Background(), g, flapOnce(), 120)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if res.Rounds != 1 {
		t.Errorf("Rounds = %d, expected 1", res.Rounds)
	}
	if res.BestScore != 0 {
		t.Errorf("BestScore = %d, expected 0", res.BestScore)
	}
	if res.Elapsed != 2*time.Second {
		t.Errorf("Elapsed = %v, expected 2s of simulated time", res.Elapsed)
	}

	expected := []core.Cue{core.CueFlap, core.CueHit, core.CueDie}
	if len(rec.Played) != len(expected) {
		t.Fatalf("cues = %v, expected %v", rec.Played, expected)
	}
	for i, c := range expected {
		if rec.Played[i] != c {
			t.Errorf("cue %d = %v, expected %v", i, rec.Played[i], c)
		}
	}
}

func TestRunStopsOnQuit(t *testing.T) {
	g := newGame(1)
	s := NewScheduler(60, false, nil, nil)

	quitAt := SourceFunc(func(tick uint64, _ core.GameState) core.InputFrame {
		in := core.NewInputFrame()
		if tick == 10 {
			in.Set(core.ActionQuit)
		}
		return in
	})

	res, err := s.Run(context.Background(), g, quitAt, 1000)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if !res.Quit {
		t.Error("Quit should be set")
	}
	if res.Ticks != 10 {
		t.Errorf("Ticks = %d, expected 10", res.Ticks)
	}
}

func TestRunCancelled(t *testing.T) {
	g := newGame(1)
	s := NewScheduler(60, true, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := s.Run(ctx, g, flapOnce(), 1000)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, expected context.Canceled", err)
	}
	if res.Ticks != 0 {
		t.Errorf("Ticks = %d, expected 0", res.Ticks)
	}
}

func TestRunRealtimePacing(t *testing.T) {
	g := newGame(1)
	s := NewScheduler(200, true, nil, nil)

	start := time.Now()
	res, err := s.Run(context.Background(), g, flapOnce(), 5)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if res.Ticks != 5 {
		t.Errorf("Ticks = %d, expected 5", res.Ticks)
	}
	// Five ticks at 5ms each; allow for the first tick arriving early.
	if wall := time.Since(start); wall < 20*time.Millisecond {
		t.Errorf("realtime run took %v, expected at least 20ms", wall)
	}
}
