package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-arcade/internal/audio"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/platform/tui"
	"github.com/vovakirdan/flappy-arcade/internal/platform/window"
)

var (
	flagFrontend string
	flagSeed     int64
	flagMute     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a round of Flappy Bird.

Controls:
  Space/Up/W/Click  - Flap (also starts and restarts)
  R                 - Restart (after game over)
  Ctrl+S            - Screenshot (terminal only)
  Q/Esc/Ctrl+C      - Quit

Frontends:
  tui     - Render in the terminal (default)
  window  - Open a desktop window with sprites from the assets directory

Examples:
  flappy play
  flappy play --frontend window
  flappy play --seed 42 --mute`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagFrontend, "frontend", "tui", "Frontend: tui or window")
	cmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if flagFrontend != "tui" && flagFrontend != "window" {
		return fmt.Errorf("unknown frontend %q (expected tui or window)", flagFrontend)
	}

	a, err := setup(flagFrontend == "tui")
	if err != nil {
		return err
	}
	defer a.Close()

	cfg := a.cfg
	if flagMute {
		cfg.Audio.Enabled = false
	}
	// The window frontend picks up recorded cues next to its sprites
	if flagFrontend == "window" && cfg.Audio.Assets == "" {
		if _, statErr := os.Stat(filepath.Join(cfg.Window.Assets, core.CueFlap.String()+".wav")); statErr == nil {
			cfg.Audio.Assets = cfg.Window.Assets
		}
	}

	// A configured sound directory must be complete; only a missing device plays muted
	engine, err := audio.Open(cfg.Audio, a.logger)
	if err != nil {
		return fmt.Errorf("loading sounds from %s: %w", cfg.Audio.Assets, err)
	}
	defer engine.Close()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Get terminal size; the window frontend ignores it
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Loop.TickRate,
		Seed:     seed,
	}

	game := flappy.New(flappy.Options{
		Config: cfg,
		Keeper: a.keeper,
		Logger: a.logger,
	})

	a.logger.Info("starting", "frontend", flagFrontend, "seed", seed, "high_score", a.keeper.Load())

	if flagFrontend == "window" {
		return window.Run(game, rc, window.Options{
			Assets: cfg.Window.Assets,
			Scale:  cfg.Window.Scale,
			Cues:   engine,
			Logger: a.logger,
		})
	}
	return tui.Run(game, rc, tui.Options{
		Cues:   engine,
		Logger: a.logger,
	})
}
