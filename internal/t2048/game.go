// Package t2048 implements the 2048 sliding-tile puzzle: the board engine
// (slide and merge, random spawns, game-over detection) and a game session that
// the terminal platforms drive with abstract input frames.
package t2048

import (
	"github.com/vovakirdan/tui-2048/internal/core"
)

// Game is one 2048 session as seen by the platform layer.
type Game struct {
	board   *Board
	palette Palette
	turns   int

	// Screen dimensions
	screenW int
	screenH int

	gameOver bool
	quit     bool
	tooSmall bool
}

// New creates a game using the default palette. Call Reset before use.
func New() *Game {
	return NewWithPalette(DefaultPalette())
}

// NewWithPalette creates a game that colors tiles with p.
func NewWithPalette(p Palette) *Game {
	return &Game{palette: p}
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Reset starts a new game on a fresh board seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.board = NewBoard(cfg.Seed)
	g.turns = 0
	g.gameOver = false
	g.quit = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
}

// Board returns the current board.
func (g *Game) Board() *Board {
	return g.board
}

// Turns returns the number of moves that changed the board.
func (g *Game) Turns() int {
	return g.turns
}

// ActionDirection maps a movement action to its direction.
// Reports false for every non-movement action.
func ActionDirection(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return DirUp, false
}

// frameDirection picks the first movement action present in the frame.
func frameDirection(in core.InputFrame) (Direction, bool) {
	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		if in.Has(a) {
			return ActionDirection(a)
		}
	}
	return DirUp, false
}

// Step applies one input frame. At most one move is made per frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionQuit) {
		g.quit = true
		return core.StepResult{State: g.State()}
	}

	if g.gameOver || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	dir, ok := frameDirection(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	moved := g.board.Move(dir)
	if moved {
		g.turns++
		if g.board.IsGameOver() {
			g.gameOver = true
		}
	}

	return core.StepResult{State: g.State(), Moved: moved}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	state := core.GameState{
		Turns:    g.turns,
		GameOver: g.gameOver,
		Quit:     g.quit,
	}
	if g.board != nil {
		state.MaxTile = g.board.MaxTile()
	}
	return state
}
