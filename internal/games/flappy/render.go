package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Visual characters for rendering
const (
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GrassChar     = '▀'
	GroundChar    = '░'
	GroundStripe  = '▒'
	BodyChar      = '●'
	BeakChar      = '▶'
	RestartGlyph  = '↻'
)

// wingChars are the wing glyphs for each animation frame.
var wingChars = []rune{'▴', '-', '▾'}

// cellAspect is how much taller a terminal cell is than it is wide.
const cellAspect = 2.0

// viewport maps field units onto a block of terminal cells, keeping the
// field's proportions and centering it on the screen.
type viewport struct {
	x0, y0     int     // top-left cell
	cols, rows int     // size in cells
	sx, sy     float64 // field units per column / per row
}

// fitViewport returns the largest viewport for a field of fieldW x fieldH
// units that fits in a w x h cell screen.
func fitViewport(fieldW, fieldH float64, w, h int) viewport {
	rows := h
	cols := int(math.Round(float64(rows) * cellAspect * fieldW / fieldH))
	if cols > w {
		cols = w
		rows = int(math.Round(float64(cols) * fieldH / (fieldW * cellAspect)))
	}
	cols = core.Max(cols, 1)
	rows = core.Max(rows, 1)

	return viewport{
		x0:   (w - cols) / 2,
		y0:   (h - rows) / 2,
		cols: cols,
		rows: rows,
		sx:   fieldW / float64(cols),
		sy:   fieldH / float64(rows),
	}
}

func (v viewport) col(x float64) int {
	return v.x0 + int(math.Floor(x/v.sx))
}

func (v viewport) row(y float64) int {
	return v.y0 + int(math.Floor(y/v.sy))
}

// rect returns the cells covered by a field rectangle, clipped to the viewport.
// A non-empty rectangle always covers at least one cell.
func (v viewport) rect(r core.RectF) core.Rect {
	x1 := core.Clamp(v.col(r.X), v.x0, v.x0+v.cols)
	y1 := core.Clamp(v.row(r.Y), v.y0, v.y0+v.rows)
	x2 := core.Clamp(v.x0+int(math.Ceil(r.Right()/v.sx)), v.x0, v.x0+v.cols)
	y2 := core.Clamp(v.y0+int(math.Ceil(r.Bottom()/v.sy)), v.y0, v.y0+v.rows)
	if !r.Empty() {
		if x2 == x1 && x1 < v.x0+v.cols {
			x2 = x1 + 1
		}
		if y2 == y1 && y1 < v.y0+v.rows {
			y2 = y1 + 1
		}
	}
	return core.NewRect(x1, y1, x2-x1, y2-y1)
}

// centered draws text centered on the viewport at field height y.
func (v viewport) centered(dst *core.Screen, y float64, text string, c core.Color) {
	x := v.x0 + (v.cols-len([]rune(text)))/2
	dst.DrawTextColored(x, v.row(y), text, c)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	snap := g.Snapshot()
	field := snap.Field
	v := fitViewport(field.Width, field.Height, dst.Width(), dst.Height())

	for _, p := range snap.Pipes {
		drawPipe(dst, v, p)
	}
	drawFloor(dst, v, field.FloorY(), snap.FloorX)
	drawPlayer(dst, v, snap.Player, snap.Frame)

	// HUD
	v.centered(dst, 50, fmt.Sprintf("Score: %d", snap.Score), core.ColorBrightWhite)
	v.centered(dst, 90, fmt.Sprintf("High Score: %d", snap.HighScore), core.ColorCyan)

	switch snap.Phase {
	case core.PhaseIdle:
		v.centered(dst, field.Height/2+60, "Press SPACE to flap", core.ColorGray)
	case core.PhaseOver:
		drawGameOver(dst, v, field.Width, field.Height)
	}
}

// drawPipe renders a single pipe to the screen.
func drawPipe(dst *core.Screen, v viewport, p PipeRegions) {
	top := v.rect(p.Top)
	dst.DrawRectColored(top, PipeChar, core.ColorGreen)
	// Cap on top section (at bottom of top section)
	if top.H > 0 {
		dst.DrawHLine(top.X, top.Bottom()-1, top.W, PipeCapTop, core.ColorBrightGreen)
	}

	bottom := v.rect(p.Bottom)
	dst.DrawRectColored(bottom, PipeChar, core.ColorGreen)
	// Cap on bottom section (at top of bottom section)
	if bottom.H > 0 {
		dst.DrawHLine(bottom.X, bottom.Y, bottom.W, PipeCapBottom, core.ColorBrightGreen)
	}
}

// drawFloor draws the ground band below floorY. The stripe row scrolls with offset.
func drawFloor(dst *core.Screen, v viewport, floorY, offset float64) {
	top := v.row(floorY)
	bottom := v.y0 + v.rows
	if top >= bottom {
		return
	}

	dst.DrawHLine(v.x0, top, v.cols, GrassChar, core.ColorBrightGreen)
	for y := top + 1; y < bottom; y++ {
		dst.DrawHLine(v.x0, y, v.cols, GroundChar, core.ColorOrange)
	}

	// Stripes every 20 field units, shifted by the band offset
	if top+1 < bottom {
		for c := 0; c < v.cols; c++ {
			fx := float64(c)*v.sx - offset
			if int(math.Floor(fx/20))%2 == 0 {
				dst.SetColored(v.x0+c, top+1, GroundStripe, core.ColorYellow)
			}
		}
	}
}

// drawPlayer draws the bird: body, a wing for the current frame and a beak.
func drawPlayer(dst *core.Screen, v viewport, r core.RectF, frame int) {
	cells := v.rect(r)
	dst.DrawRectColored(cells, BodyChar, core.ColorBrightYellow)
	if cells.W == 0 || cells.H == 0 {
		return
	}

	wing := wingChars[frame%len(wingChars)]
	dst.SetColored(cells.X, cells.Y+cells.H/2, wing, core.ColorYellow)
	dst.SetColored(cells.Right()-1, cells.Y, BeakChar, core.ColorOrange)
}

// drawGameOver draws the game-over line and the restart glyph below it.
func drawGameOver(dst *core.Screen, v viewport, fieldW, fieldH float64) {
	msg := " Game Over! Press SPACE to restart "
	row := v.row(fieldH / 2)
	x := v.x0 + (v.cols-len([]rune(msg)))/2
	dst.DrawRect(core.NewRect(x, row, len([]rune(msg)), 1), ' ')
	dst.DrawTextColored(x, row, msg, core.ColorBrightWhite)

	// Restart glyph in a small box centered at (W/2, H/2 + 50)
	cx := v.col(fieldW / 2)
	cy := v.row(fieldH/2 + 50)
	box := core.NewRect(cx-2, cy-1, 5, 3)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.SetColored(cx, cy, RestartGlyph, core.ColorRed)
}
