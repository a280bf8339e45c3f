// Package config provides YAML-based configuration loading for the snake game.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// SnakeConfig contains all configuration for the game.
type SnakeConfig struct {
	TickRate int    `yaml:"tick_rate"`
	Glyphs   Glyphs `yaml:"glyphs"`
	HUD      bool   `yaml:"hud"`
}

// Glyphs defines the characters drawn for each board element.
type Glyphs struct {
	Head string `yaml:"head"`
	Body string `yaml:"body"`
	Food string `yaml:"food"`
}

// Validate checks that the config can drive a game.
func (c SnakeConfig) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.TickRate)
	}
	for name, g := range map[string]string{"head": c.Glyphs.Head, "body": c.Glyphs.Body, "food": c.Glyphs.Food} {
		if g != "" && utf8.RuneCountInString(g) != 1 {
			return fmt.Errorf("config: glyph %s must be a single character, got %q", name, g)
		}
	}
	return nil
}

// Options converts the config into game options. Empty glyphs fall back to
// the game's defaults.
func (c SnakeConfig) Options() snake.Options {
	opts := snake.DefaultOptions()
	opts.ShowHUD = c.HUD
	if r, ok := firstRune(c.Glyphs.Head); ok {
		opts.HeadGlyph = r
	}
	if r, ok := firstRune(c.Glyphs.Body); ok {
		opts.BodyGlyph = r
	}
	if r, ok := firstRune(c.Glyphs.Food); ok {
		opts.FoodGlyph = r
	}
	return opts
}

func firstRune(s string) (rune, bool) {
	if s == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, r != utf8.RuneError
}

// ErrInvalid wraps validation failures of a loaded file.
var ErrInvalid = errors.New("config: invalid configuration")
