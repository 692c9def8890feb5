// gosnake is a terminal snake game in the classic handheld style.
//
// Usage:
//
//	gosnake play             - Play in the current terminal
//	gosnake serve            - Start SSH server for remote play
//	gosnake scores           - Show the high score table
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible item spawns
//	--db <path>     - Set database path (default: ~/.gosnake/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
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
	Use:   "gosnake",
	Short: "Classic snake in your terminal",
	Long: `gosnake is a terminal rendition of the classic handheld snake game:
eat apples, chase the decaying bonus, avoid the walls and yourself.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  gosnake play
  gosnake play --level 3
  gosnake serve --ssh :2222
  gosnake scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gosnake/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
