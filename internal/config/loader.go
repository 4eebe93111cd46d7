package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvSeed    = "T2048_SEED"
	EnvDB      = "T2048_DB"
	EnvHistory = "T2048_HISTORY"
	EnvSSHAddr = "T2048_SSH_ADDR"
	EnvHostKey = "T2048_HOST_KEY"
)

// Load loads the configuration, applies environment overrides and validates
// the result.
// Search order: customPath -> ~/.t2048/config.yaml -> ./configs/t2048.yaml -> embedded default
func Load(customPath string) (Config, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Default(), fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "t2048.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults. Missing keys keep their default
// values; a palette section replaces the default palette as a whole.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	cfg.Display.Palette = nil

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	if len(cfg.Display.Palette) == 0 {
		cfg.Display.Palette = Default().Display.Palette
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".t2048", filename)
}

// LoadDotEnv loads the first .env file found into the process environment.
// Variables already set are left alone. Returns the file used, or "".
func LoadDotEnv(paths ...string) string {
	if len(paths) == 0 {
		paths = []string{".env"}
		if p := userConfigPath(".env"); p != "" {
			paths = append(paths, p)
		}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err == nil {
			return path
		}
	}
	return ""
}

// ApplyEnv overrides cfg with the T2048_* environment variables.
func ApplyEnv(cfg *Config) error {
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvSeed, v, err)
		}
		cfg.Game.Seed = seed
	}
	if v := os.Getenv(EnvDB); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv(EnvHistory); v != "" {
		enabled, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvHistory, v, err)
		}
		cfg.Storage.Enabled = enabled
	}
	if v := os.Getenv(EnvSSHAddr); v != "" {
		cfg.SSH.Address = v
	}
	if v := os.Getenv(EnvHostKey); v != "" {
		cfg.SSH.HostKey = v
	}
	return nil
}
