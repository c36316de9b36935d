package window

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

// writeSprites writes a tiny png for every asset except skip.
func writeSprites(t *testing.T, dir, skip string) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.NRGBA{R: 255, A: 255})

	for _, name := range AssetFiles() {
		if name == skip {
			continue
		}
		f, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		if err := png.Encode(f, img); err != nil {
			t.Fatal(err)
		}
		f.Close()
	}
}

func TestDecodeAssets(t *testing.T) {
	dir := t.TempDir()
	writeSprites(t, dir, "")

	images, err := decodeAssets(dir)
	if err != nil {
		t.Fatalf("decodeAssets() failed: %v", err)
	}
	if len(images) != len(AssetFiles()) {
		t.Errorf("decoded %d images, expected %d", len(images), len(AssetFiles()))
	}
	if b := images[PipeFile].Bounds(); b.Dx() != 4 || b.Dy() != 4 {
		t.Errorf("pipe bounds = %v, expected 4x4", b)
	}
}

func TestDecodeAssetsErrors(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(dir string)
		wantIn  string
	}{
		{
			name:    "missing bird frame",
			prepare: func(dir string) { writeSprites(t, dir, "bird2.png") },
			wantIn:  "bird2.png",
		},
		{
			name: "corrupt background",
			prepare: func(dir string) {
				writeSprites(t, dir, BackgroundFile)
				os.WriteFile(filepath.Join(dir, BackgroundFile), []byte("nope"), 0o644)
			},
			wantIn: BackgroundFile,
		},
		{
			name:    "empty directory",
			prepare: func(string) {},
			wantIn:  BackgroundFile,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			tc.prepare(dir)

			_, err := decodeAssets(dir)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantIn) {
				t.Errorf("error %q should name %s", err, tc.wantIn)
			}
		})
	}
}

func TestLoadFaces(t *testing.T) {
	faces, err := loadFaces()
	if err != nil {
		t.Fatalf("loadFaces() failed: %v", err)
	}
	if faces.Large.Metrics().Height <= faces.Small.Metrics().Height {
		t.Error("score face should be larger than the small face")
	}
}

func TestOverlayFade(t *testing.T) {
	var o overlay
	if o.visible() {
		t.Fatal("overlay should start hidden")
	}

	o.show()
	o.update(0.1)
	if o.alpha <= 0 || o.alpha >= 1 {
		t.Errorf("alpha mid-fade = %v, expected between 0 and 1", o.alpha)
	}

	// show while fading does not restart the fade
	before := o.alpha
	o.show()
	o.update(0.05)
	if o.alpha <= before {
		t.Errorf("alpha went %v -> %v, expected it to keep rising", before, o.alpha)
	}

	o.update(1)
	if o.alpha != 1 || o.tween != nil {
		t.Errorf("alpha = %v after the fade, expected 1", o.alpha)
	}

	o.hide()
	if o.visible() {
		t.Error("hide should remove the overlay")
	}
}

func TestPipeSprites(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	p := flappy.Pipe{X: 100, GapTop: 200}
	regions := flappy.PipeRegions{Top: flappy.TopRegion(p, cfg), Bottom: flappy.BottomRegion(p, cfg)}

	top, bottom := pipeSprites(regions, cfg.Field.Height)
	if top.Bottom() != 200 || top.H != 600 || top.X != 100 {
		t.Errorf("top sprite = %+v, expected to end at the gap top", top)
	}
	if bottom.Y != 350 || bottom.H != 600 {
		t.Errorf("bottom sprite = %+v, expected to start at the gap bottom", bottom)
	}
}

func TestFloorTiles(t *testing.T) {
	snap := flappy.Snapshot{Field: config.DefaultFlappyConfig().Field, FloorX: -120}

	tiles := floorTiles(snap)
	want := [2]core.RectF{
		core.NewRectF(-120, 500, 400, 100),
		core.NewRectF(280, 500, 400, 100),
	}
	if tiles != want {
		t.Errorf("floorTiles() = %+v, expected %+v", tiles, want)
	}
}
