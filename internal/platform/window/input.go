package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

var (
	impulseKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}
	restartKeys = []ebiten.Key{ebiten.KeyR}
	quitKeys    = []ebiten.Key{ebiten.KeyEscape}
)

// pollInput collects the actions pressed since the previous Update.
// Holding a key does not repeat it.
func pollInput(touches []ebiten.TouchID) (core.InputFrame, []ebiten.TouchID) {
	in := core.NewInputFrame()

	if anyJustPressed(impulseKeys) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.Set(core.ActionImpulse)
	}
	touches = inpututil.AppendJustPressedTouchIDs(touches[:0])
	if len(touches) > 0 {
		in.Set(core.ActionImpulse)
	}
	if anyJustPressed(restartKeys) {
		in.Set(core.ActionRestart)
	}
	if anyJustPressed(quitKeys) {
		in.Set(core.ActionQuit)
	}
	return in, touches
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
