package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default Flappy Bird configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Field: FlappyField{
			Width:       400,
			Height:      600,
			FloorHeight: 100,
			FloorScroll: 1,
		},
		Physics: FlappyPhysics{
			Gravity:     0.5,
			FlapImpulse: -8,
			ScrollSpeed: 3,
		},
		Player: FlappyPlayer{
			X:          50,
			Width:      34,
			Height:     24,
			Frames:     3,
			FrameTicks: 5,
		},
		Pipes: FlappyPipes{
			Width:         80,
			Gap:           150,
			TopMargin:     150,
			BottomMargin:  50,
			SpawnInterval: 1500 * time.Millisecond,
		},
		Loop: LoopConfig{
			TickRate: 60,
		},
		Score: ScoreConfig{
			Backend: "file",
			Path:    "~/.arcade/flappy_high_score.txt",
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.5,
			SampleRate: 44100,
		},
		Window: WindowConfig{
			Assets: "assets",
			Scale:  1,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
