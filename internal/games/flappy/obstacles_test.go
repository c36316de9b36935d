package flappy

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/flappy-arcade/internal/config"
)

func TestPipeScrollAndEviction(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	p := Pipe{X: cfg.Field.Width, GapTop: 200}

	for n := 1; n <= 200; n++ {
		p.Tick(cfg.Physics.ScrollSpeed)

		want := cfg.Field.Width - 3*float64(n)
		if p.X != want {
			t.Fatalf("after %d ticks X = %v, expected %v", n, p.X, want)
		}

		// Evicted once W - 3N + 80 < 0, i.e. from tick 161 on
		if got, want := p.OffScreen(cfg.Pipes.Width), n >= 161; got != want {
			t.Fatalf("after %d ticks OffScreen = %v, expected %v", n, got, want)
		}
	}
}

func TestPipeRegions(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	p := Pipe{X: 120, GapTop: 200}

	top := TopRegion(p, cfg)
	if top.X != 120 || top.Y != 0 || top.W != 80 || top.H != 200 {
		t.Errorf("TopRegion() = %+v", top)
	}

	bottom := BottomRegion(p, cfg)
	if bottom.X != 120 || bottom.Y != 350 || bottom.W != 80 || bottom.H != 250 {
		t.Errorf("BottomRegion() = %+v", bottom)
	}

	// Regions follow the pipe
	p.Tick(3)
	if TopRegion(p, cfg).X != 117 || BottomRegion(p, cfg).X != 117 {
		t.Error("regions should be derived from the current pipe position")
	}
}

func TestSpawnerInterval(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	s := NewSpawner(cfg, 1)

	if _, ok := s.MaybeSpawn(1499 * time.Millisecond); ok {
		t.Error("should not spawn before the interval")
	}

	p, ok := s.MaybeSpawn(1500 * time.Millisecond)
	if !ok {
		t.Fatal("should spawn once the interval is reached")
	}
	if p.X != cfg.Field.Width {
		t.Errorf("spawned at X = %v, expected right edge %v", p.X, cfg.Field.Width)
	}
	if p.Passed {
		t.Error("new pipe should not be passed")
	}
}

func TestSpawnerGapBounds(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	floorY := cfg.Field.FloorY()

	for seed := int64(0); seed < 20; seed++ {
		s := NewSpawner(cfg, seed)
		for i := 0; i < 200; i++ {
			p, _ := s.MaybeSpawn(s.Interval())

			if p.GapTop < cfg.Pipes.TopMargin {
				t.Fatalf("seed %d: GapTop %v above top margin %v", seed, p.GapTop, cfg.Pipes.TopMargin)
			}
			if p.GapTop+cfg.Pipes.Gap > floorY-cfg.Pipes.BottomMargin {
				t.Fatalf("seed %d: gap bottom %v below limit %v", seed, p.GapTop+cfg.Pipes.Gap, floorY-cfg.Pipes.BottomMargin)
			}
			if p.GapTop != math.Trunc(p.GapTop) {
				t.Fatalf("seed %d: GapTop %v is not a whole unit", seed, p.GapTop)
			}
		}
	}
}

func TestSpawnerNarrowRange(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Pipes.TopMargin = 150.25
	cfg.Pipes.BottomMargin = 199.5 // hi = 500 - 199.5 - 150 = 150.5

	s := NewSpawner(cfg, 3)
	p, _ := s.MaybeSpawn(s.Interval())
	if p.GapTop != 150.25 {
		t.Errorf("GapTop = %v, expected the lower bound 150.25", p.GapTop)
	}
}

func TestSpawnerDeterminism(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	a := NewSpawner(cfg, 99)
	b := NewSpawner(cfg, 99)

	for i := 0; i < 50; i++ {
		pa, _ := a.MaybeSpawn(a.Interval())
		pb, _ := b.MaybeSpawn(b.Interval())
		if pa != pb {
			t.Fatalf("spawn %d differs: %+v vs %+v", i, pa, pb)
		}
	}
}
