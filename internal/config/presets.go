package config

import (
	"fmt"
	"strings"
)

// BoardPreset names a board size offered in the start menu.
type BoardPreset string

const (
	PresetSmall   BoardPreset = "small"   // 3x3
	PresetClassic BoardPreset = "classic" // 4x4
	PresetLarge   BoardPreset = "large"   // 5x5
	PresetHuge    BoardPreset = "huge"    // 6x6
)

var presetSizes = map[BoardPreset]int{
	PresetSmall:   3,
	PresetClassic: 4,
	PresetLarge:   5,
	PresetHuge:    6,
}

// Presets returns the presets in menu order.
func Presets() []BoardPreset {
	return []BoardPreset{PresetSmall, PresetClassic, PresetLarge, PresetHuge}
}

// Size returns the board side length of the preset, or 0 if unknown.
func (p BoardPreset) Size() int {
	return presetSizes[p]
}

// Label returns the menu label, e.g. "Classic 4x4".
func (p BoardPreset) Label() string {
	name := string(p)
	if name == "" {
		return ""
	}
	n := p.Size()
	return fmt.Sprintf("%s%s %dx%d", strings.ToUpper(name[:1]), name[1:], n, n)
}

// ParsePreset looks up a preset by name.
func ParsePreset(s string) (BoardPreset, error) {
	p := BoardPreset(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := presetSizes[p]; !ok {
		return "", fmt.Errorf("%w: unknown board preset %q", ErrInvalidConfig, s)
	}
	return p, nil
}

// ApplyPreset sets the board size from a preset, keeping the other rules.
func ApplyPreset(cfg *T2048Config, preset BoardPreset) error {
	size := preset.Size()
	if size == 0 {
		return fmt.Errorf("%w: unknown board preset %q", ErrInvalidConfig, preset)
	}
	cfg.Board.Size = size
	return nil
}
