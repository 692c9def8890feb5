package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mpetrov/gosnake/internal/config"
	"github.com/mpetrov/gosnake/internal/core"
	"github.com/mpetrov/gosnake/internal/game"
	"github.com/mpetrov/gosnake/internal/platform/tui"
	"github.com/mpetrov/gosnake/internal/storage"
)

var (
	flagConfig string
	flagLevel  int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in the current terminal",
	Long: `Start the game. You begin in the menu; pick a level and press Enter.

Controls:
  Arrows/WASD - Steer
  1-3         - Select level (menu)
  Enter       - Start (menu)
  P           - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Levels control both the snake's speed and the per-apple score multiplier.

Examples:
  gosnake play
  gosnake play --level 3
  gosnake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Preselect difficulty level (1-3)")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size for the screen buffer
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rt := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    seed,
	}

	engine := game.New(cfg, rt.Seed)
	if flagLevel != 0 {
		lvl := game.Level(flagLevel)
		if !lvl.Valid() {
			fmt.Fprintf(os.Stderr, "Error: level must be 1, 2 or 3, got %d\n", flagLevel)
			os.Exit(1)
		}
		engine.SelectLevel(lvl)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(engine, store, rt)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
