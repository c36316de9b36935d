package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/platform/headless"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

var (
	flagSimTicks    uint64
	flagSimRealtime bool
	flagSimSeed     int64
	flagSimPersist  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless autopilot simulation",
	Long: `Let the autopilot play without a screen and report the results.
The stored high score is left alone unless --persist is given.

Examples:
  flappy sim
  flappy sim --ticks 36000 --seed 7
  flappy sim --realtime --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().Uint64Var(&flagSimTicks, "ticks", 3600, "Number of ticks to simulate")
	simCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Pace ticks at the configured tick rate")
	simCmd.Flags().Int64Var(&flagSimSeed, "seed", 1, "RNG seed")
	simCmd.Flags().BoolVar(&flagSimPersist, "persist", false, "Write new high scores to the store")
}

func runSim(cmd *cobra.Command, args []string) error {
	a, err := setup(false)
	if err != nil {
		return err
	}
	defer a.Close()

	keeper := storage.NewKeeper(&storage.MemoryStore{}, a.logger)
	if flagSimPersist {
		keeper = a.keeper
	}

	game := flappy.New(flappy.Options{
		Config: a.cfg,
		Keeper: keeper,
		Logger: a.logger,
	})
	game.Reset(core.RuntimeConfig{
		TickRate: a.cfg.Loop.TickRate,
		Seed:     flagSimSeed,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cues := &core.CueRecorder{}
	sched := headless.NewScheduler(a.cfg.Loop.TickRate, flagSimRealtime, cues, a.logger)

	start := time.Now()
	res, err := sched.Run(ctx, game, headless.NewAutopilot(game, true), flagSimTicks)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	fmt.Printf("Simulated %d ticks (%s game time) in %s\n", res.Ticks, res.Elapsed, time.Since(start).Round(time.Millisecond))
	fmt.Printf("  %-10s  %d\n", "Rounds", res.Rounds)
	fmt.Printf("  %-10s  %d\n", "Best", res.BestScore)
	fmt.Printf("  %-10s  %d\n", "High", res.HighScore)
	fmt.Printf("  %-10s  %d\n", "Flaps", cues.Count(core.CueFlap))
	fmt.Printf("  %-10s  %d\n", "Points", cues.Count(core.CuePoint))
	return nil
}
