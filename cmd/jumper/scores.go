package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
	"github.com/vovakirdan/tui-jumper/internal/registry"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show best runs for a mode",
	Long: `Display the best runs and overall stats for the given mode
(default: jumper).

Examples:
  jumper scores
  jumper scores jumper_sprint --limit 20
  jumper scores --recent
  jumper scores jumper_sprint --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the latest runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the run history for the mode")
	scoresCmd.MarkFlagsMutuallyExclusive("recent", "clear")
}

func unknownModeError(gameID string) error {
	return fmt.Errorf("unknown mode %q (run 'jumper list' to see available modes)", gameID)
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := jumper.IDClassic
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return unknownModeError(gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(gameID); err != nil {
			return err
		}
		fmt.Printf("Run history cleared for %s.\n", title)
		return nil
	}

	heading := "Best Runs"
	fetch := store.TopRuns
	if flagScoresRecent {
		heading = "Recent Runs"
		fetch = store.RecentRuns
	}

	runs, err := fetch(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Printf("%s - %s\n", heading, title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'jumper play %s' to record the first one!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-8s  %s\n", "#", "Steps", "Result", "Date")
	fmt.Printf("  %-4s  %-6s  %-8s  %s\n", "----", "-----", "------", "----")

	for i, r := range runs {
		result := "fell"
		if r.Success {
			result = "cleared"
		}
		dateStr := r.CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-8s  %s\n", i+1, r.Steps, result, dateStr)
	}

	fmt.Println()
	if stats, err := store.Stats(gameID); err == nil {
		fmt.Printf("Runs: %d  Cleared: %d (%.0f%%)  Best: %d  Avg: %.1f\n",
			stats.Runs, stats.Wins, stats.WinRate()*100, stats.BestSteps, stats.AvgSteps)
	}
	return nil
}
