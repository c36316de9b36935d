package flappy

import (
	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// PipeRegions are the two collision rectangles of one pipe.
type PipeRegions struct {
	Top    core.RectF
	Bottom core.RectF
}

// Snapshot is everything a frontend needs to draw one frame, in field units.
type Snapshot struct {
	Field     config.FlappyField
	Phase     core.Phase
	Score     int
	HighScore int
	Player    core.RectF
	PlayerVel float64
	Frame     int // player animation frame
	Pipes     []PipeRegions
	FloorX    float64 // floor band offset; tiles are drawn at FloorX and FloorX + field width
}

// Snapshot captures the current frame.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	player := s.Player()

	snap := Snapshot{
		Field:     g.opts.Config.Field,
		Phase:     s.Phase(),
		Score:     s.Score(),
		HighScore: s.HighScore(),
		Player:    player.Rect(),
		PlayerVel: player.Vel,
		Frame:     player.Frame,
		Pipes:     make([]PipeRegions, 0, len(s.Pipes())),
		FloorX:    g.floorX,
	}
	for _, p := range s.Pipes() {
		snap.Pipes = append(snap.Pipes, PipeRegions{
			Top:    TopRegion(p, g.opts.Config),
			Bottom: BottomRegion(p, g.opts.Config),
		})
	}
	return snap
}
