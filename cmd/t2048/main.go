// t2048 plays 2048 in the terminal.
//
// Usage:
//
//	t2048 play               - Play a game
//	t2048 menu               - Pick a board size interactively
//	t2048 serve              - Start SSH server for remote play
//	t2048 scores [size]      - Show the best games for a board size
//	t2048 scores clear       - Delete recorded games
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default from config: 60)
//	--seed <value>      - Set RNG seed for reproducible games
//	--db <path>         - Set database path (default: ~/.t2048/scores.db)
//	--config <path>     - Use a custom config YAML
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
//
// Flags that are not given fall back to T2048_DB, T2048_CONFIG, T2048_SEED
// and T2048_LOG_LEVEL, which may also be set in a .env file.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string

	// Rule overrides
	flagSize        int
	flagBoard       string
	flagSpawnOnNoop bool
)

var (
	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 in your terminal",
	Long: `t2048 is the sliding tile puzzle 2048 for the terminal.

Slide the board in one of four directions; equal tiles that meet merge
into their sum. A new tile appears after every move that changed the
board. The game ends when the board is full and no two neighbours match.

Available commands:
  play     - Play a game directly
  menu     - Pick a board size, play, repeat
  serve    - Start SSH server for remote play
  scores   - View recorded games

Examples:
  t2048 play
  t2048 play --board large
  t2048 play --seed 42
  t2048 serve --ssh :2222
  t2048 scores 4`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if logFile != nil {
			logFile.Close()
		}
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.t2048/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// addRuleFlags registers the flags that override the rules from the config.
func addRuleFlags(flags *pflag.FlagSet) {
	flags.IntVar(&flagSize, "size", 0, "Board side length (overrides config)")
	flags.StringVar(&flagBoard, "board", "", "Board preset: small, classic, large, huge")
	flags.BoolVar(&flagSpawnOnNoop, "spawn-on-noop", false, "Spawn a tile even when a move changes nothing")
}

// setup loads .env, applies environment defaults and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot load .env: %w", err)
	}
	if err := applyEnv(cmd.Flags()); err != nil {
		return err
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	// Interactive commands own the terminal; log there only to a file.
	var out io.Writer = os.Stderr
	if cmd.Name() == "play" || cmd.Name() == "menu" {
		out = io.Discard
	}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		out = f
	}

	logger = log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return nil
}

// applyEnv fills flags the user did not pass from T2048_* variables.
func applyEnv(flags *pflag.FlagSet) error {
	for name, env := range map[string]string{
		"db":        "T2048_DB",
		"config":    "T2048_CONFIG",
		"seed":      "T2048_SEED",
		"log-level": "T2048_LOG_LEVEL",
	} {
		v, ok := os.LookupEnv(env)
		if !ok || flags.Changed(name) || flags.Lookup(name) == nil {
			continue
		}
		if err := flags.Set(name, v); err != nil {
			return fmt.Errorf("invalid %s=%q: %w", env, v, err)
		}
	}
	return nil
}

// loadGameConfig loads the config file and applies the rule flags.
func loadGameConfig(cmd *cobra.Command) (config.T2048Config, error) {
	cfg, err := config.LoadT2048(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Lookup("board") != nil && flags.Changed("board") {
		preset, err := config.ParsePreset(flagBoard)
		if err != nil {
			return cfg, err
		}
		if err := config.ApplyPreset(&cfg, preset); err != nil {
			return cfg, err
		}
	}
	if flags.Lookup("size") != nil && flags.Changed("size") {
		cfg.Board.Size = flagSize
	}
	if flags.Lookup("spawn-on-noop") != nil && flags.Changed("spawn-on-noop") {
		cfg.Rules.SpawnOnNoop = flagSpawnOnNoop
	}
	if flagFPS > 0 {
		cfg.Display.TickRate = flagFPS
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "size", cfg.Board.Size, "spawn_on_noop", cfg.Rules.SpawnOnNoop, "tick_rate", cfg.Display.TickRate)
	return cfg, nil
}

// parseSize parses a board size argument.
func parseSize(arg string) (int, error) {
	if p, err := config.ParsePreset(arg); err == nil {
		return p.Size(), nil
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 2 {
		return 0, fmt.Errorf("invalid board size %q", arg)
	}
	return n, nil
}
