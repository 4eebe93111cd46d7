package tui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var moveKeys = []tea.KeyMsg{runeKey('w'), runeKey('a'), runeKey('s'), runeKey('d')}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 42}
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

// moveOnce presses movement keys until one changes the board.
func moveOnce(t *testing.T, m Model) Model {
	t.Helper()
	before := m.Game().Turns()
	for _, k := range moveKeys {
		m, _ = send(t, m, k)
		if m.Game().Turns() > before {
			return m
		}
	}
	t.Fatal("no direction moved a fresh board")
	return m
}

func TestModelMoveCountsTurn(t *testing.T) {
	m := NewModel(testConfig(), Options{})
	m = moveOnce(t, m)

	if m.State().Turns != 1 {
		t.Errorf("Turns = %d, want 1", m.State().Turns)
	}
	if !strings.Contains(m.View(), "Turn: 1") {
		t.Error("view should show the turn counter")
	}
}

func TestModelQuitRecordsGame(t *testing.T) {
	store := openTestStore(t)
	m := NewModel(testConfig(), Options{Store: store, Player: "tester"})
	m = moveOnce(t, m)

	m, cmd := send(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit should return tea.Quit")
	}
	if !m.IsQuitting() || m.View() != "" {
		t.Error("model should be quitting with an empty view")
	}

	games, err := store.RecentGames(10)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("Expected 1 recorded game, got %d", len(games))
	}
	g := games[0]
	if g.ID != m.LastRecordID() {
		t.Errorf("recorded ID = %q, LastRecordID = %q", g.ID, m.LastRecordID())
	}
	if g.Player != "tester" || g.Outcome != storage.OutcomeQuit || g.Turns != 1 || g.Seed != 42 {
		t.Errorf("recorded game = %+v", g)
	}
}

func TestModelLogsRecordFailure(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.Close()

	var buf bytes.Buffer
	m := NewModel(testConfig(), Options{Store: store, Logger: log.New(&buf), Player: "tester"})
	m = moveOnce(t, m)
	m, _ = send(t, m, runeKey('q'))

	if m.LastRecordID() != "" {
		t.Error("a failed save should not produce a record ID")
	}
	if !strings.Contains(buf.String(), "could not record game") {
		t.Errorf("log output = %q, want a record failure", buf.String())
	}
}

func TestModelQuitWithoutMovesNotRecorded(t *testing.T) {
	store := openTestStore(t)
	m := NewModel(testConfig(), Options{Store: store})

	send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	games, err := store.RecentGames(10)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}
	if len(games) != 0 {
		t.Errorf("Expected no recorded games, got %d", len(games))
	}
}

func TestModelRestart(t *testing.T) {
	store := openTestStore(t)
	m := NewModel(testConfig(), Options{Store: store})
	m = moveOnce(t, m)

	m, _ = send(t, m, runeKey('r'))
	if m.State().Turns != 0 {
		t.Errorf("Turns after restart = %d, want 0", m.State().Turns)
	}
	if m.Game().Board().Seed() == 42 {
		t.Error("restart should use a fresh seed")
	}

	games, _ := store.RecentGames(10)
	if len(games) != 1 || games[0].Outcome != storage.OutcomeQuit {
		t.Errorf("restart should record the abandoned game, got %+v", games)
	}
}

func TestModelRecordsGameOverOnce(t *testing.T) {
	store := openTestStore(t)
	m := NewModel(testConfig(), Options{Store: store, Player: "bot"})

	for i := 0; i < 100000 && !m.State().GameOver; i++ {
		m, _ = send(t, m, moveKeys[i%len(moveKeys)])
	}
	if !m.State().GameOver {
		t.Fatal("game did not end")
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("view should show the game over overlay")
	}

	// Further input and quitting must not add records.
	m, _ = send(t, m, runeKey('a'))
	send(t, m, runeKey('q'))

	games, err := store.RecentGames(10)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("Expected 1 recorded game, got %d", len(games))
	}
	g := games[0]
	if g.Outcome != storage.OutcomeGameOver {
		t.Errorf("Outcome = %q, want %q", g.Outcome, storage.OutcomeGameOver)
	}
	if g.Turns != m.State().Turns || g.MaxTile != m.State().MaxTile {
		t.Errorf("recorded %d turns / %d max, state has %d / %d", g.Turns, g.MaxTile, m.State().Turns, m.State().MaxTile)
	}
}

func TestModelResizeKeepsBoard(t *testing.T) {
	m := NewModel(testConfig(), Options{})
	m = moveOnce(t, m)
	before := m.Game().Board().Grid()

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 20, Height: 8})
	if !strings.Contains(m.View(), "too small") {
		t.Error("small window should show the too-small message")
	}

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.Game().Board().Grid() != before {
		t.Error("resize should not reset the board")
	}
	if m.State().Turns != 1 {
		t.Errorf("Turns after resize = %d, want 1", m.State().Turns)
	}
}
