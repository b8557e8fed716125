package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of 2048 right away.

Controls:
  Arrows/HJKL/WASD  - Slide the board
  N                 - New game (any time)
  E                 - End the current game
  P                 - Pause
  Ctrl+S            - Save a text screenshot
  Q/Ctrl+C          - Quit

Board presets:
  small   - 3x3
  classic - 4x4 (default)
  large   - 5x5
  huge    - 6x6

Examples:
  t2048 play
  t2048 play --board large
  t2048 play --size 8
  t2048 play --seed 42 --spawn-on-noop
  t2048 play --config ./my-2048.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addRuleFlags(playCmd.Flags())
}

func runPlay(cmd *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	rc := runtimeConfig(gameCfg.Display.TickRate)
	_, runErr := tui.Run(t2048.New(gameCfg, logger), store, rc, logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig(tickRate int) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickRate = tickRate
	rc.Seed = flagSeed
	return rc
}

// openStore opens the score database. Games still work without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "db", flagDBPath, "err", err)
		return nil
	}
	return store
}
