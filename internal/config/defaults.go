package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
)

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

// DefaultT2048Config returns the built-in configuration: the classic 4x4
// board with two opening tiles.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Board: BoardConfig{
			Size:         engine.DefaultSize,
			InitialTiles: 2,
			SpawnValue:   engine.MinTileValue,
		},
		Rules: RulesConfig{
			SpawnOnNoop: false,
		},
		Display: DisplayConfig{
			TickRate:   60,
			Animations: true,
			SlideTicks: 6,
			PopTicks:   4,
		},
	}
}
