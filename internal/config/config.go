// Package config provides YAML-based configuration loading for the game:
// board rules, spawn policy and display settings.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
)

// T2048Config contains all configuration for a 2048 game.
type T2048Config struct {
	Board   BoardConfig   `yaml:"board"`
	Rules   RulesConfig   `yaml:"rules"`
	Display DisplayConfig `yaml:"display"`
}

// BoardConfig defines the board geometry and the opening position.
type BoardConfig struct {
	Size         int    `yaml:"size"`          // Side length of the square board
	InitialTiles int    `yaml:"initial_tiles"` // Tiles placed by a new game
	SpawnValue   uint32 `yaml:"spawn_value"`   // Value of every spawned tile
}

// RulesConfig holds rule switches that are a matter of taste.
type RulesConfig struct {
	// SpawnOnNoop spawns a tile even when a shift moved nothing.
	SpawnOnNoop bool `yaml:"spawn_on_noop"`
}

// DisplayConfig controls the terminal front end.
type DisplayConfig struct {
	TickRate   int  `yaml:"tick_rate"`   // Frames per second
	Animations bool `yaml:"animations"`  // Slide and pop effects
	SlideTicks int  `yaml:"slide_ticks"` // Duration of the slide phase
	PopTicks   int  `yaml:"pop_ticks"`   // Duration of the merge/spawn pop
}

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid")

// Validate checks the configuration for values the game cannot run with.
func (c T2048Config) Validate() error {
	if err := c.ToEngineOptions(0).Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Display.TickRate < 1 || c.Display.TickRate > 240 {
		return fmt.Errorf("%w: tick_rate %d not in 1..240", ErrInvalidConfig, c.Display.TickRate)
	}
	if c.Display.SlideTicks < 0 || c.Display.PopTicks < 0 {
		return fmt.Errorf("%w: negative animation length", ErrInvalidConfig)
	}
	return nil
}

// ToEngineOptions converts the rule settings to session options.
func (c T2048Config) ToEngineOptions(seed int64) engine.Options {
	return engine.Options{
		Size:         c.Board.Size,
		InitialTiles: c.Board.InitialTiles,
		SpawnValue:   c.Board.SpawnValue,
		SpawnOnNoop:  c.Rules.SpawnOnNoop,
		Seed:         seed,
	}
}
