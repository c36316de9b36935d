package window

import (
	"fmt"
	"image"
	_ "image/png" // Sprite decoder
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite file names, relative to the asset directory.
const (
	BackgroundFile = "bg.png"
	GroundFile     = "ground.png"
	PipeFile       = "pipe.png"
	RestartFile    = "restart.png"
)

// BirdFiles are the player animation frames in order.
var BirdFiles = []string{"bird1.png", "bird2.png", "bird3.png"}

// AssetFiles lists every sprite the window needs.
func AssetFiles() []string {
	files := []string{BackgroundFile, GroundFile, PipeFile, RestartFile}
	return append(files, BirdFiles...)
}

// Assets holds the GPU images for one window.
type Assets struct {
	Background *ebiten.Image
	Ground     *ebiten.Image
	Pipe       *ebiten.Image
	Restart    *ebiten.Image
	Bird       []*ebiten.Image
}

// decodeAssets reads and decodes every sprite in dir.
// A missing or corrupt file is an error naming the file.
func decodeAssets(dir string) (map[string]image.Image, error) {
	images := make(map[string]image.Image, len(AssetFiles()))
	for _, name := range AssetFiles() {
		path := filepath.Join(dir, name)
		img, err := decodeFile(path)
		if err != nil {
			return nil, err
		}
		images[name] = img
	}
	return images, nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("window: cannot load asset: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("window: cannot decode asset %s: %w", path, err)
	}
	return img, nil
}

// LoadAssets decodes the sprites in dir and uploads them.
func LoadAssets(dir string) (*Assets, error) {
	images, err := decodeAssets(dir)
	if err != nil {
		return nil, err
	}

	a := &Assets{
		Background: ebiten.NewImageFromImage(images[BackgroundFile]),
		Ground:     ebiten.NewImageFromImage(images[GroundFile]),
		Pipe:       ebiten.NewImageFromImage(images[PipeFile]),
		Restart:    ebiten.NewImageFromImage(images[RestartFile]),
	}
	for _, name := range BirdFiles {
		a.Bird = append(a.Bird, ebiten.NewImageFromImage(images[name]))
	}
	return a, nil
}
