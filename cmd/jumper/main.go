// jumper is a terminal step-jumping game: hop one or two tiles at a time
// along a generated road and never land in a gap.
//
// Usage:
//
//	jumper list              - List available modes
//	jumper play [mode]       - Play a mode (no mode opens the menu)
//	jumper scores [mode]     - Show best runs
//	jumper serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible roads
//	--db <path>     - Set database path (default: ~/.jumper/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-jumper/internal/games/jumper"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jumper",
	Short: "Step Jumper - cross the road one or two tiles at a time",
	Long: `Step Jumper is a terminal game: the road ahead has gaps, and each
jump covers one or two tiles. Land on a gap and the run is over; reach the
end of the road to win.

Available commands:
  list     - Show all available modes
  play     - Play a mode, or pick one from the menu
  scores   - View best runs
  serve    - Start SSH server for remote play

Examples:
  jumper list
  jumper play
  jumper play jumper_sprint
  jumper serve --ssh :2222 --metrics :9090
  jumper scores jumper`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.jumper/runs.db", "Path to run history database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
