// Package console runs 2048 as a plain line-oriented terminal program: the
// screen is cleared and the board reprinted after every key, with stdin in
// raw mode so single key presses are read without Enter.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

const (
	clearScreen = "\x1b[2J\x1b[H"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
)

// Options configures a console game.
type Options struct {
	Seed    uint64         // 0 derives a seed from the clock
	Palette t2048.Palette  // zero value uses the default palette
	Color   bool           // style tiles with ANSI colors
	Store   *storage.Store // nil disables history
	Logger  *log.Logger    // nil drops record errors
	Player  string
}

// Result summarizes a finished console game.
type Result struct {
	Seed     uint64
	Turns    int
	MaxTile  int
	Outcome  storage.Outcome
	RecordID string
}

// Run plays on the process terminal. When stdin is a terminal it is switched
// to raw mode and restored before returning, whatever the outcome.
func Run(opts Options) (Result, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return Play(os.Stdin, os.Stdout, opts)
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return Result{}, fmt.Errorf("console: cannot enter raw mode: %w", err)
	}
	defer term.Restore(fd, oldState) //nolint:errcheck // Nothing left to do on failure

	fmt.Fprint(os.Stdout, hideCursor)
	defer fmt.Fprint(os.Stdout, showCursor)

	return Play(os.Stdin, os.Stdout, opts)
}

// Play runs the render, read key, move loop over the given streams until the
// player quits, the input ends or no move is left. Terminal modes are left to
// the caller.
func Play(in io.Reader, out io.Writer, opts Options) (Result, error) {
	palette := opts.Palette
	if len(palette.Steps) == 0 {
		palette = t2048.DefaultPalette()
	}
	style := tileStyle(palette, opts.Color)

	r := bufio.NewReader(in)
	board := t2048.NewBoard(opts.Seed)
	turns := 0

	for {
		draw(out, board, turns, style)

		if board.IsGameOver() {
			fmt.Fprintf(out, "\r\nGame over! Max tile %d after %d turns.\r\n", board.MaxTile(), turns)
			return finish(opts, board, turns, storage.OutcomeGameOver)
		}

		action, err := ReadAction(r)
		if errors.Is(err, io.EOF) {
			return finish(opts, board, turns, storage.OutcomeQuit)
		}
		if err != nil {
			return Result{}, fmt.Errorf("console: cannot read input: %w", err)
		}

		switch action {
		case core.ActionQuit:
			fmt.Fprint(out, "\r\n")
			return finish(opts, board, turns, storage.OutcomeQuit)
		case core.ActionRestart:
			//nolint:errcheck // Recording is best effort
			finish(opts, board, turns, storage.OutcomeQuit)
			board = t2048.NewBoard(0)
			turns = 0
			continue
		}

		dir, ok := t2048.ActionDirection(action)
		if !ok {
			continue
		}
		if board.Move(dir) {
			turns++
		}
	}
}

// draw clears the terminal and prints the HUD and board. Raw mode needs
// explicit carriage returns.
func draw(out io.Writer, board *t2048.Board, turns int, style t2048.StyleFunc) {
	var sb strings.Builder
	sb.WriteString(clearScreen)
	fmt.Fprintf(&sb, "2048  turn %d  max %d  seed %d\r\n\r\n", turns, board.MaxTile(), board.Seed())
	sb.WriteString(strings.ReplaceAll(board.Format(style), "\n", "\r\n"))
	sb.WriteString("\r\n\r\nw/a/s/d, h/j/k/l or arrows to move, r new game, q quit\r\n")
	io.WriteString(out, sb.String()) //nolint:errcheck // Nothing to do if the terminal is gone
}

func tileStyle(p t2048.Palette, color bool) t2048.StyleFunc {
	if !color {
		return nil
	}
	return func(value int, cell string) string {
		if value == 0 {
			return cell
		}
		return tui.Style(p.Color(value)).Render(cell)
	}
}

// finish records the game once it has at least one turn.
func finish(opts Options, board *t2048.Board, turns int, outcome storage.Outcome) (Result, error) {
	res := Result{
		Seed:    board.Seed(),
		Turns:   turns,
		MaxTile: board.MaxTile(),
		Outcome: outcome,
	}
	if opts.Store == nil || turns == 0 {
		return res, nil
	}

	id, err := opts.Store.SaveGame(storage.GameRecord{
		Player:  opts.Player,
		Seed:    res.Seed,
		Turns:   res.Turns,
		MaxTile: res.MaxTile,
		Outcome: outcome,
	})
	if err != nil {
		if opts.Logger != nil {
			opts.Logger.Warn("could not record game", "error", err)
		}
		return res, nil
	}
	res.RecordID = id
	return res, nil
}
