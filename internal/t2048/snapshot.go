package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateGameOver    GameStateType = "game_over"
	StateQuit        GameStateType = "quit"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Seed    uint64
	Turns   int
	Board   Grid
	MaxTile int
	Empty   int
	State   GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.quit:
		state = StateQuit
	case g.gameOver:
		state = StateGameOver
	case g.tooSmall:
		state = StatePausedSmall
	}

	return Snapshot{
		Seed:    g.board.Seed(),
		Turns:   g.turns,
		Board:   g.board.Grid(),
		MaxTile: g.board.MaxTile(),
		Empty:   g.board.EmptyCount(),
		State:   state,
	}
}
