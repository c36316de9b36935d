package window

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const dpi = 72

// Faces are the text faces used by the window.
type Faces struct {
	Large font.Face // score
	Small font.Face // high score and game-over line
}

// loadFaces parses the embedded Go Regular font at the HUD sizes.
func loadFaces() (*Faces, error) {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("window: cannot parse font: %w", err)
	}

	newFace := func(size float64) font.Face {
		return truetype.NewFace(tt, &truetype.Options{
			Size:    size,
			DPI:     dpi,
			Hinting: font.HintingFull,
		})
	}

	return &Faces{
		Large: newFace(40),
		Small: newFace(24),
	}, nil
}
