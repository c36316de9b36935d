package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the terminal renderer.
type Color uint8

// Palette used by the flappy scene.
const (
	ColorDefault      Color = iota
	ColorRed                // game-over banner
	ColorGreen              // pipe body
	ColorBrightGreen        // pipe caps
	ColorYellow             // bird body
	ColorBrightYellow       // bird beak and wing frames
	ColorCyan               // sky accents
	ColorBrightWhite        // HUD text
	ColorOrange             // floor band
	ColorGray               // floor texture
)
