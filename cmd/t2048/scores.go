package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagLimit    int
	flagAll      bool
	flagRecent   bool
	flagClearAll bool
	flagYes      bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [size]",
	Short: "Show the best games for a board size",
	Long: `Display the best recorded games for a board size.

The size is a side length or a preset name and defaults to the board
size from the config.

Examples:
  t2048 scores
  t2048 scores 5
  t2048 scores large --limit 20
  t2048 scores --all
  t2048 scores --recent`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

var scoresClearCmd = &cobra.Command{
	Use:   "clear [size]",
	Short: "Delete recorded games",
	Long: `Delete the recorded games of a board size, or of every size with --all.

Examples:
  t2048 scores clear 4 --yes
  t2048 scores clear --all --yes`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScoresClear,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of games to show")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "Show statistics for every board size")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the most recent games of every size")
	scoresClearCmd.Flags().BoolVar(&flagClearAll, "all", false, "Delete games of every board size")
	scoresClearCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Do not ask for confirmation")
	scoresCmd.AddCommand(scoresClearCmd)
}

// boardSizeArg returns the size named by args, or the configured size.
func boardSizeArg(cmd *cobra.Command, args []string) int {
	if len(args) == 1 {
		size, err := parseSize(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return size
	}
	cfg, err := loadGameConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg.Board.Size
}

func mustOpenStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runScores(cmd *cobra.Command, args []string) {
	store := mustOpenStore()
	defer store.Close()

	switch {
	case flagAll:
		printAllStats(store)
	case flagRecent:
		printRecent(store)
	default:
		printTop(store, boardSizeArg(cmd, args))
	}
}

func printTop(store *storage.Store, size int) {
	games, err := store.TopGames(size, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %dx%d\n", size, size)
	fmt.Println()

	if len(games) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Printf("Play 't2048 play --size %d' to set the first high score!\n", size)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-7s  %-6s  %-8s  %s\n", "Rank", "Score", "Max", "Moves", "End", "Date")
	fmt.Printf("  %-4s  %-8s  %-7s  %-6s  %-8s  %s\n", "----", "-----", "---", "-----", "---", "----")
	for i, g := range games {
		fmt.Printf("  %-4d  %-8d  %-7d  %-6d  %-8s  %s\n",
			i+1, g.Score, g.MaxTile, g.Moves, g.EndReason, g.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(size)
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Games played: %d  Average score: %.0f  Best tile: %d\n",
			stats.GamesCount, stats.AvgScore, stats.BestTile)
	}
}

func printRecent(store *storage.Store) {
	games, err := store.RecentGames(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving games: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent Games")
	fmt.Println()
	if len(games) == 0 {
		fmt.Println("No games recorded yet.")
		return
	}

	fmt.Printf("  %-5s  %-8s  %-7s  %-6s  %-8s  %s\n", "Board", "Score", "Max", "Moves", "End", "Date")
	fmt.Printf("  %-5s  %-8s  %-7s  %-6s  %-8s  %s\n", "-----", "-----", "---", "-----", "---", "----")
	for _, g := range games {
		board := fmt.Sprintf("%dx%d", g.BoardSize, g.BoardSize)
		fmt.Printf("  %-5s  %-8d  %-7d  %-6d  %-8s  %s\n",
			board, g.Score, g.MaxTile, g.Moves, g.EndReason, g.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func printAllStats(store *storage.Store) {
	all, err := store.AllStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving statistics: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Statistics")
	fmt.Println()
	if len(all) == 0 {
		fmt.Println("No games recorded yet.")
		return
	}

	sizes := make([]int, 0, len(all))
	for size := range all {
		sizes = append(sizes, size)
	}
	slices.Sort(sizes)

	fmt.Printf("  %-5s  %-6s  %-8s  %-8s  %-7s  %s\n", "Board", "Games", "Best", "Average", "Tile", "Last played")
	fmt.Printf("  %-5s  %-6s  %-8s  %-8s  %-7s  %s\n", "-----", "-----", "----", "-------", "----", "-----------")
	for _, size := range sizes {
		st := all[size]
		board := fmt.Sprintf("%dx%d", size, size)
		fmt.Printf("  %-5s  %-6d  %-8d  %-8.0f  %-7d  %s\n",
			board, st.GamesCount, st.HighScore, st.AvgScore, st.BestTile, st.LastPlayed.Format("2006-01-02 15:04"))
	}
}

func runScoresClear(cmd *cobra.Command, args []string) {
	size := 0
	what := "every board size"
	if !flagClearAll {
		size = boardSizeArg(cmd, args)
		what = fmt.Sprintf("%dx%d", size, size)
	}

	if !flagYes {
		fmt.Fprintf(os.Stderr, "Refusing to delete the games of %s without --yes\n", what)
		os.Exit(1)
	}

	store := mustOpenStore()
	defer store.Close()

	n, err := store.ClearGames(size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing games: %v\n", err)
		os.Exit(1)
	}
	logger.Info("games cleared", "size", size, "count", n)
	fmt.Printf("Deleted %d games of %s\n", n, what)
}
