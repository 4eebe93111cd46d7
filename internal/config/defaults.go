package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-2048/internal/t2048"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	p := t2048.DefaultPalette()
	palette := make(map[int]string, len(p.Steps))
	for _, step := range p.Steps {
		palette[step.Max] = step.Color.String()
	}

	return Config{
		Game: GameConfig{
			Seed: 0,
		},
		Display: DisplayConfig{
			Plain:    false,
			Palette:  palette,
			Fallback: p.Fallback.String(),
		},
		Storage: StorageConfig{
			Enabled: true,
			Path:    "~/.t2048/history.db",
		},
		SSH: SSHConfig{
			Address:            ":2048",
			HostKey:            ".ssh/t2048_ed25519",
			IdleTimeoutMinutes: 30,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
