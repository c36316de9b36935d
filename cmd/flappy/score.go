package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Show the high score",
	Long: `Display the stored high score.

Examples:
  flappy score
  flappy score --score-file ./high.txt
  flappy score reset`,
	Args: cobra.NoArgs,
	RunE: runScore,
}

var scoreResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the high score to 0",
	Args:  cobra.NoArgs,
	RunE:  runScoreReset,
}

func init() {
	scoreCmd.AddCommand(scoreResetCmd)
}

// openStore is like setup but fails when the store cannot be opened.
func openStore() (*app, error) {
	a, err := setup(false)
	if err != nil {
		return nil, err
	}
	if a.store == nil {
		a.Close()
		return nil, fmt.Errorf("cannot open high score store at %s", a.cfg.Score.Path)
	}
	return a, nil
}

func runScore(cmd *cobra.Command, args []string) error {
	a, err := openStore()
	if err != nil {
		return err
	}
	defer a.Close()

	high, err := a.store.Load()
	if err != nil {
		return fmt.Errorf("reading high score: %w", err)
	}

	fmt.Println("High Score - Flappy Bird")
	fmt.Println()
	fmt.Printf("  %-8s  %d\n", "Best", high)
	fmt.Printf("  %-8s  %s (%s)\n", "Stored", a.cfg.Score.Path, a.cfg.Score.Backend)

	if s, ok := a.store.(*storage.SQLiteStore); ok {
		if at, err := s.UpdatedAt(); err == nil && !at.IsZero() {
			fmt.Printf("  %-8s  %s\n", "Updated", at.Local().Format("2006-01-02 15:04"))
		}
	}

	if high == 0 {
		fmt.Println()
		fmt.Println("Play 'flappy' to set the first high score!")
	}
	return nil
}

func runScoreReset(cmd *cobra.Command, args []string) error {
	a, err := openStore()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.store.Save(0); err != nil {
		return fmt.Errorf("resetting high score: %w", err)
	}
	fmt.Println("High score reset to 0.")
	return nil
}
