// palmrun is an endless island runner played in the terminal.
//
// Usage:
//
//	palmrun play             - Start a run
//	palmrun scores           - Show the best runs
//	palmrun serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.palmrun/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "palmrun",
	Short: "Palm Run - An endless island runner in your terminal",
	Long: `Palm Run is a terminal runner: jump over gaps between islands,
cross rickety bridges, and survive as long as the terrain lets you.

Available commands:
  play     - Start a run
  scores   - View the best runs
  serve    - Start SSH server for remote play

Examples:
  palmrun play
  palmrun play --difficulty hard
  palmrun serve --ssh :2222
  palmrun scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.palmrun/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
