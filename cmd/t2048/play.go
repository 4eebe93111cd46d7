package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/platform/console"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

var flagPlain bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of 2048.

Controls:
  W/K/Up     - Slide up
  S/J/Down   - Slide down
  A/H/Left   - Slide left
  D/L/Right  - Slide right
  R          - New game
  Tab        - History (full-screen UI)
  Ctrl+S     - Screenshot to ~/.t2048/screenshots (full-screen UI)
  Q/Ctrl+C   - Quit

Examples:
  t2048 play
  t2048 play --plain
  t2048 play --seed 42 --no-history`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagPlain, "plain", false, "Use the plain console instead of the full-screen UI")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg := loadConfig(cmd)

	palette, err := cfg.Palette()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(cfg)
	player := localPlayer()

	var runErr error
	if flagPlain || cfg.Display.Plain {
		var res console.Result
		res, runErr = console.Run(console.Options{
			Seed:    cfg.Game.Seed,
			Palette: palette,
			Color:   term.IsTerminal(int(os.Stdout.Fd())),
			Store:   store,
			Logger:  logger,
			Player:  player,
		})
		if runErr == nil {
			fmt.Printf("Seed %d: max tile %d in %d turns.\n", res.Seed, res.MaxTile, res.Turns)
		}
	} else {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}

		runErr = tui.Run(core.RuntimeConfig{
			ScreenW: width,
			ScreenH: height,
			Seed:    cfg.Game.Seed,
		}, tuiOptions(store, palette, player))
	}

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// tuiOptions configures the full-screen UI. Record failures go to the CLI
// logger.
func tuiOptions(store *storage.Store, palette t2048.Palette, player string) tui.Options {
	return tui.Options{
		Store:   store,
		Logger:  logger,
		Palette: palette,
		Player:  player,
	}
}

// localPlayer names the player after the OS account.
func localPlayer() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return os.Getenv("USER")
}
