package flappy

import (
	"github.com/vovakirdan/flappy-arcade/internal/config"
)

// tickOutcome is what one collision and scoring pass found.
type tickOutcome struct {
	Points   int  // pipes passed this tick
	PipeHit  bool // player overlaps a pipe region
	FloorHit bool // player reached the floor line
	HitIndex int  // index of the first colliding pipe, -1 if none
}

// Fatal reports whether the tick ends the session.
func (o tickOutcome) Fatal() bool {
	return o.PipeHit || o.FloorHit
}

// resolveTick checks the player against every pipe in creation order and then
// against the floor. Passed pipes are marked in place. Scanning stops at the
// first colliding pipe, so points from later pipes are not awarded that tick.
func resolveTick(p Player, pipes []Pipe, cfg config.FlappyConfig) tickOutcome {
	out := tickOutcome{HitIndex: -1}
	rect := p.Rect()

	for i := range pipes {
		if rect.Intersects(TopRegion(pipes[i], cfg)) || rect.Intersects(BottomRegion(pipes[i], cfg)) {
			out.PipeHit = true
			out.HitIndex = i
			break
		}

		if !pipes[i].Passed && pipes[i].X+cfg.Pipes.Width < p.X {
			pipes[i].Passed = true
			out.Points++
		}
	}

	if !out.PipeHit && rect.Bottom() >= cfg.Field.FloorY() {
		out.FloorHit = true
	}
	return out
}

// evict removes off-screen pipes, keeping the survivors in order.
func evict(pipes []Pipe, width float64) []Pipe {
	kept := pipes[:0]
	for _, p := range pipes {
		if !p.OffScreen(width) {
			kept = append(kept, p)
		}
	}
	return kept
}
