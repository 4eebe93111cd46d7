// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048                    - Play (same as t2048 play)
//	t2048 play [--plain]     - Play in the full-screen UI or the plain console
//	t2048 history            - Show recorded games
//	t2048 serve              - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Config file (default search: ~/.t2048/config.yaml, ./configs/t2048.yaml)
//	--seed <value>   - Set RNG seed for a reproducible game
//	--db <path>      - Set history database path (default: ~/.t2048/history.db)
//	--no-history     - Do not record games
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	// Global flags
	flagConfig    string
	flagSeed      uint64
	flagDBPath    string
	flagNoHistory bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "t2048",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `2048 is played on a 4x4 grid. Every move slides all tiles one way;
equal tiles that collide merge into their sum, and a new 2 or 4 appears.
The game ends when no move can change the board.

Available commands:
  play     - Play a game (default)
  history  - Show recorded games
  serve    - Start SSH server for remote play

Examples:
  t2048
  t2048 play --plain
  t2048 --seed 42
  t2048 history --best
  t2048 serve --ssh :2048`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to history database (default from config)")
	rootCmd.PersistentFlags().BoolVar(&flagNoHistory, "no-history", false, "Do not record games")

	rootCmd.Flags().BoolVar(&flagPlain, "plain", false, "Use the plain console instead of the full-screen UI")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig reads the config file and environment, then applies the
// global flags the user set explicitly.
func loadConfig(cmd *cobra.Command) config.Config {
	if path := config.LoadDotEnv(); path != "" {
		logger.Debug("loaded environment", "file", path)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Game.Seed = flagSeed
	}
	if flags.Changed("db") {
		cfg.Storage.Path = flagDBPath
	}
	if flagNoHistory {
		cfg.Storage.Enabled = false
	}

	return cfg
}

// openStore opens the history database, or returns nil when history is off
// or unavailable. Games are still playable without it.
func openStore(cfg config.Config) *storage.Store {
	if !cfg.Storage.Enabled {
		return nil
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Warn("could not open history database", "path", cfg.Storage.Path, "error", err)
		return nil
	}
	return store
}
