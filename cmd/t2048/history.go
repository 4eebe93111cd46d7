package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagBest  bool
	flagLimit int
	flagTUI   bool
	flagID    string
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded games",
	Long: `Display recorded games, most recent first.

Examples:
  t2048 history
  t2048 history --best --limit 5
  t2048 history --tui
  t2048 history --id 3f0c...
  t2048 history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagBest, "best", false, "Order by highest tile instead of date")
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of games to show")
	historyCmd.Flags().BoolVar(&flagTUI, "tui", false, "Browse history in the full-screen table")
	historyCmd.Flags().StringVar(&flagID, "id", "", "Show a single game")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded games")
}

func runHistory(cmd *cobra.Command, _ []string) {
	cfg := loadConfig(cmd)

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := showHistory(os.Stdout, store); err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func showHistory(w io.Writer, store *storage.Store) error {
	switch {
	case flagClear:
		if err := store.ClearGames(); err != nil {
			return err
		}
		fmt.Fprintln(w, "History cleared.")
		return nil

	case flagID != "":
		rec, err := store.GameByID(flagID)
		if err != nil {
			return err
		}
		printGame(w, rec)
		return nil

	case flagTUI:
		width, height := 80, 24
		if tw, th, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = tw, th
		}
		return tui.RunHistory(store, width, height, flagBest)
	}

	var games []storage.GameRecord
	var err error
	if flagBest {
		games, err = store.BestGames(flagLimit)
	} else {
		games, err = store.RecentGames(flagLimit)
	}
	if err != nil {
		return err
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}

	printGames(w, games, stats, flagBest)
	return nil
}

func printGames(w io.Writer, games []storage.GameRecord, stats *storage.Stats, best bool) {
	title := "Recent Games"
	if best {
		title = "Best Games"
	}
	fmt.Fprintf(w, "2048 - %s\n\n", title)

	if len(games) == 0 {
		fmt.Fprintln(w, "No games recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 't2048' to record your first game!")
		return
	}

	// Print header
	fmt.Fprintf(w, "  %-4s  %-6s  %-6s  %-9s  %-12s  %s\n", "#", "Max", "Turns", "Result", "Player", "Date")
	fmt.Fprintf(w, "  %-4s  %-6s  %-6s  %-9s  %-12s  %s\n", "--", "---", "-----", "------", "------", "----")

	for i, g := range games {
		fmt.Fprintf(w, "  %-4d  %-6d  %-6d  %-9s  %-12s  %s\n",
			i+1, g.MaxTile, g.Turns, g.Outcome, g.Player, g.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	if stats != nil && stats.Games > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Games: %d  Best tile: %d  Average turns: %.1f\n", stats.Games, stats.BestTile, stats.AvgTurns)
	}
}

func printGame(w io.Writer, g *storage.GameRecord) {
	fmt.Fprintf(w, "Game     %s\n", g.ID)
	fmt.Fprintf(w, "Player   %s\n", g.Player)
	fmt.Fprintf(w, "Seed     %d\n", g.Seed)
	fmt.Fprintf(w, "Turns    %d\n", g.Turns)
	fmt.Fprintf(w, "Max tile %d\n", g.MaxTile)
	fmt.Fprintf(w, "Result   %s\n", g.Outcome)
	fmt.Fprintf(w, "Played   %s\n", g.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "\nReplay with: t2048 play --seed %d\n", g.Seed)
}
