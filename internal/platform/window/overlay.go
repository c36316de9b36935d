package window

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// overlayFade is how long the game-over overlay takes to appear, in seconds.
const overlayFade = 0.4

// overlay fades the game-over layer in when a round ends.
type overlay struct {
	tween *gween.Tween
	alpha float32
}

// show starts the fade from transparent. Calling it while fading restarts nothing.
func (o *overlay) show() {
	if o.tween != nil || o.alpha > 0 {
		return
	}
	o.tween = gween.New(0, 1, overlayFade, ease.OutQuad)
}

// hide removes the overlay immediately.
func (o *overlay) hide() {
	o.tween = nil
	o.alpha = 0
}

// update advances the fade by dt seconds.
func (o *overlay) update(dt float32) {
	if o.tween == nil {
		return
	}
	cur, finished := o.tween.Update(dt)
	o.alpha = cur
	if finished {
		o.alpha = 1
		o.tween = nil
	}
}

// visible reports whether anything of the overlay should be drawn.
func (o *overlay) visible() bool {
	return o.alpha > 0
}
