// flappy is a side-scrolling arcade game for the terminal or a desktop window.
//
// Usage:
//
//	flappy                  - Play in the terminal
//	flappy play             - Play (--frontend tui|window)
//	flappy score            - Show the stored high score
//	flappy score reset      - Reset the stored high score to 0
//	flappy sim              - Run a headless autopilot simulation
//
// Global flags:
//
//	--config <path>      - Custom game config YAML
//	--score-file <path>  - Override the high score location
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn, error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

var (
	// Global flags
	flagConfig    string
	flagScoreFile string
	flagLogFile   string
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird - flap through the pipes",
	Long: `Flappy Bird is a side-scrolling arcade game: flap to stay in the air,
fly through the gaps between pipes and score a point for each pipe passed.

Available commands:
  play     - Play the game (default)
  score    - View or reset the high score
  sim      - Run a headless simulation

Examples:
  flappy
  flappy play --frontend window
  flappy score
  flappy sim --ticks 36000`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagScoreFile, "score-file", "", "High score location (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// The root command plays, so it takes the play flags too
	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(simCmd)
}

// app holds what every command builds from the global flags.
type app struct {
	cfg     config.FlappyConfig
	logger  *log.Logger
	store   storage.Store
	keeper  *storage.Keeper
	logFile *os.File
}

// setup loads config, opens the log and the score store.
// quiet discards logs unless a log file was requested; the terminal
// frontend owns stdout and stderr while it runs.
func setup(quiet bool) (*app, error) {
	a := &app{}

	var out io.Writer = os.Stderr
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		a.logFile = f
		out = f
	} else if quiet {
		out = io.Discard
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	a.logger = log.NewWithOptions(out, log.Options{
		Level:           level,
		Prefix:          "flappy",
		ReportTimestamp: true,
	})

	a.cfg, err = config.LoadFlappy(flagConfig, a.logger)
	if err != nil {
		a.Close()
		return nil, err
	}
	if flagScoreFile != "" {
		a.cfg.Score.Path = flagScoreFile
	}

	a.store, err = storage.Open(a.cfg.Score.Backend, a.cfg.Score.Path)
	if err != nil {
		// The game still runs, the high score just is not remembered
		a.logger.Warn("could not open high score store", "backend", a.cfg.Score.Backend, "path", a.cfg.Score.Path, "error", err)
		a.store = nil
	}
	a.keeper = storage.NewKeeper(a.store, a.logger)

	a.logger.Debug("config loaded", "tick_rate", a.cfg.Loop.TickRate, "score_backend", a.cfg.Score.Backend)
	return a, nil
}

// Close releases the store and the log file.
func (a *app) Close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Warn("closing high score store", "error", err)
		}
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}
