// Package config provides YAML-based configuration loading for the 2048
// terminal game, with environment overrides on top.
package config

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config contains all settings for the game and its platforms.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Display DisplayConfig `yaml:"display"`
	Storage StorageConfig `yaml:"storage"`
	SSH     SSHConfig     `yaml:"ssh"`
}

// GameConfig holds board settings.
type GameConfig struct {
	Seed uint64 `yaml:"seed"` // 0 derives a seed from the clock
}

// DisplayConfig controls how the board is drawn.
type DisplayConfig struct {
	Plain    bool           `yaml:"plain"`    // raw console loop instead of Bubble Tea
	Palette  map[int]string `yaml:"palette"`  // highest tile value -> color name
	Fallback string         `yaml:"fallback"` // color for tiles above every palette entry
}

// StorageConfig controls the game history database.
type StorageConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// SSHConfig configures the SSH server.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// Validate checks the palette and server settings.
func (c Config) Validate() error {
	for value, name := range c.Display.Palette {
		if value < 2 || bits.OnesCount(uint(value)) != 1 {
			return fmt.Errorf("%w: palette key %d is not a tile value", ErrInvalid, value)
		}
		if _, err := core.ParseColor(name); err != nil {
			return fmt.Errorf("%w: palette %d: %v", ErrInvalid, value, err)
		}
	}
	if c.Display.Fallback != "" {
		if _, err := core.ParseColor(c.Display.Fallback); err != nil {
			return fmt.Errorf("%w: fallback: %v", ErrInvalid, err)
		}
	}
	if c.Storage.Enabled && c.Storage.Path == "" {
		return fmt.Errorf("%w: storage enabled without a path", ErrInvalid)
	}
	if c.SSH.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("%w: negative idle timeout", ErrInvalid)
	}
	return nil
}

// Palette builds the tile palette. An empty palette section yields the
// built-in colors.
func (c Config) Palette() (t2048.Palette, error) {
	if len(c.Display.Palette) == 0 {
		p := t2048.DefaultPalette()
		if c.Display.Fallback != "" {
			fb, err := core.ParseColor(c.Display.Fallback)
			if err != nil {
				return p, fmt.Errorf("config: fallback: %w", err)
			}
			p.Fallback = fb
		}
		return p, nil
	}

	colors := make(map[int]core.Color, len(c.Display.Palette))
	for value, name := range c.Display.Palette {
		col, err := core.ParseColor(name)
		if err != nil {
			return t2048.Palette{}, fmt.Errorf("config: palette %d: %w", value, err)
		}
		colors[value] = col
	}

	fallback := core.ColorGray
	if c.Display.Fallback != "" {
		fb, err := core.ParseColor(c.Display.Fallback)
		if err != nil {
			return t2048.Palette{}, fmt.Errorf("config: fallback: %w", err)
		}
		fallback = fb
	}
	return t2048.NewPalette(colors, fallback), nil
}
