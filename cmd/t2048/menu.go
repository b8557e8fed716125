package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a board size and play",
	Long: `Start in interactive menu mode.

Pick a board size with the arrow keys or j/k and press Enter to play.
After a game ends, press B to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play
  Tab          - High scores
  Q            - Quit

Examples:
  t2048 menu
  t2048 menu --fps 30
  t2048 menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	addRuleFlags(menuCmd.Flags())
}

func runMenu(cmd *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	rc := runtimeConfig(gameCfg.Display.TickRate)
	seeded := rc.Seed != 0
	best := t2048.NewBestScores()

	for {
		menuResult, err := tui.RunMenu(store, rc, gameCfg.Board.Size)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		rc = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, rc.ScreenW, rc.ScreenH, gameCfg.Board.Size)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		if err := config.ApplyPreset(&gameCfg, menuResult.Preset); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		// A fixed --seed only applies to the first game.
		if !seeded {
			rc.Seed = time.Now().UnixNano()
		}
		seeded = false

		back, err := tui.Run(t2048.New(gameCfg, logger).WithBestScores(best), store, rc, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if !back {
			break
		}
	}

	if store != nil {
		store.Close()
	}
}
