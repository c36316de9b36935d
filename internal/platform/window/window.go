// Package window provides the graphical frontend, drawn with ebiten.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

// Options configures the window frontend.
type Options struct {
	Assets string         // directory holding the png sprites
	Scale  float64        // window size multiplier
	Cues   core.CuePlayer // nil plays nothing
	Logger *log.Logger    // nil discards logs
}

// Window implements ebiten.Game on top of a flappy.Game.
// One Update is one simulation tick; ebiten runs Update at the configured TPS.
type Window struct {
	game    *flappy.Game
	assets  *Assets
	faces   *Faces
	cues    core.CuePlayer
	logger  *log.Logger
	overlay overlay
	dt      float32
	snap    flappy.Snapshot
	touches []ebiten.TouchID
}

// New loads the sprites and font and resets game. Missing assets are an error.
func New(game *flappy.Game, cfg core.RuntimeConfig, opts Options) (*Window, error) {
	if opts.Cues == nil {
		opts.Cues = core.NopCuePlayer{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	assets, err := LoadAssets(opts.Assets)
	if err != nil {
		return nil, err
	}
	faces, err := loadFaces()
	if err != nil {
		return nil, err
	}

	clock := core.NewClock(cfg.TickRate)
	game.Reset(cfg)

	return &Window{
		game:   game,
		assets: assets,
		faces:  faces,
		cues:   opts.Cues,
		logger: opts.Logger,
		dt:     float32(clock.Interval().Seconds()),
		snap:   game.Snapshot(),
	}, nil
}

// Update runs one tick: input, simulation, cues.
func (w *Window) Update() error {
	var in core.InputFrame
	in, w.touches = pollInput(w.touches)
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	result := w.game.Step(in)
	for _, c := range result.Cues {
		w.cues.Play(c)
	}

	if result.State.GameOver {
		w.overlay.show()
	} else {
		w.overlay.hide()
	}
	w.overlay.update(w.dt)

	w.snap = w.game.Snapshot()
	return nil
}

// Draw renders the last snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	snap := w.snap
	field := snap.Field

	drawSprite(screen, w.assets.Background, core.NewRectF(0, 0, field.Width, field.Height), false, 1)

	for _, p := range snap.Pipes {
		top, bottom := pipeSprites(p, field.Height)
		drawSprite(screen, w.assets.Pipe, top, true, 1)
		drawSprite(screen, w.assets.Pipe, bottom, false, 1)
	}

	for _, tile := range floorTiles(snap) {
		drawSprite(screen, w.assets.Ground, tile, false, 1)
	}

	bird := w.assets.Bird[snap.Frame%len(w.assets.Bird)]
	drawSprite(screen, bird, snap.Player, false, 1)

	drawCentered(screen, fmt.Sprintf("Score: %d", snap.Score), w.faces.Large, field.Width/2, 50, color.White)
	drawCentered(screen, fmt.Sprintf("High Score: %d", snap.HighScore), w.faces.Small, field.Width/2, 90, color.White)

	if w.overlay.visible() {
		a := w.overlay.alpha
		b := w.assets.Restart.Bounds()
		glyph := core.NewRectF(
			field.Width/2-float64(b.Dx())/2,
			field.Height/2+50-float64(b.Dy())/2,
			float64(b.Dx()), float64(b.Dy()),
		)
		drawSprite(screen, w.assets.Restart, glyph, false, a)
		drawCentered(screen, "Game Over! Press SPACE to restart", w.faces.Small,
			field.Width/2, field.Height/2, color.NRGBA{R: 255, G: 255, B: 255, A: uint8(a * 255)})
	}
}

// Layout keeps the logical screen at field size; ebiten scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return int(w.snap.Field.Width), int(w.snap.Field.Height)
}

// Run opens the window and blocks until it is closed or Escape is pressed.
func Run(game *flappy.Game, cfg core.RuntimeConfig, opts Options) error {
	w, err := New(game, cfg, opts)
	if err != nil {
		return err
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	field := w.snap.Field
	ebiten.SetWindowSize(int(field.Width*scale), int(field.Height*scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(core.NewClock(cfg.TickRate).Rate())

	w.logger.Debug("window open", "width", field.Width, "height", field.Height, "scale", scale)
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// pipeSprites returns where the flipped top and upright bottom pipe images go.
// Both images are field-height tall and extend past the visible field.
func pipeSprites(p flappy.PipeRegions, fieldH float64) (top, bottom core.RectF) {
	top = core.NewRectF(p.Top.X, p.Top.Bottom()-fieldH, p.Top.W, fieldH)
	bottom = core.NewRectF(p.Bottom.X, p.Bottom.Y, p.Bottom.W, fieldH)
	return top, bottom
}

// floorTiles returns the two ground tiles at the band's current offset.
func floorTiles(snap flappy.Snapshot) [2]core.RectF {
	f := snap.Field
	return [2]core.RectF{
		core.NewRectF(snap.FloorX, f.FloorY(), f.Width, f.FloorHeight),
		core.NewRectF(snap.FloorX+f.Width, f.FloorY(), f.Width, f.FloorHeight),
	}
}

// drawSprite stretches img over r, optionally flipped vertically.
func drawSprite(dst, img *ebiten.Image, r core.RectF, flipY bool, alpha float32) {
	b := img.Bounds()
	sx := r.W / float64(b.Dx())
	sy := r.H / float64(b.Dy())

	op := &ebiten.DrawImageOptions{}
	if flipY {
		op.GeoM.Scale(sx, -sy)
		op.GeoM.Translate(r.X, r.Bottom())
	} else {
		op.GeoM.Scale(sx, sy)
		op.GeoM.Translate(r.X, r.Y)
	}
	op.ColorScale.ScaleAlpha(alpha)
	dst.DrawImage(img, op)
}

// drawCentered draws s with its bounding box centered on (cx, cy).
func drawCentered(dst *ebiten.Image, s string, face font.Face, cx, cy float64, clr color.Color) {
	b := text.BoundString(face, s)
	x := int(cx) - b.Dx()/2 - b.Min.X
	y := int(cy) - b.Dy()/2 - b.Min.Y
	text.Draw(dst, s, face, x, y, clr)
}
