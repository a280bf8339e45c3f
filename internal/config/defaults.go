package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-snake/internal/core"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		TickRate: core.DefaultTickRate,
		Glyphs: Glyphs{
			Head: "#",
			Body: "#",
			Food: "@",
		},
		HUD: true,
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
