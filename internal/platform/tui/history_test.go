package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

func seedHistory(t *testing.T, store *storage.Store) {
	t.Helper()
	records := []storage.GameRecord{
		{Player: "ann", Seed: 1, Turns: 400, MaxTile: 512},
		{Player: "bob", Seed: 2, Turns: 900, MaxTile: 2048, Outcome: storage.OutcomeGameOver},
		{Player: "cy", Seed: 3, Turns: 50, MaxTile: 64, Outcome: storage.OutcomeQuit},
	}
	for _, rec := range records {
		if _, err := store.SaveGame(rec); err != nil {
			t.Fatalf("SaveGame() failed: %v", err)
		}
	}
}

func TestHistoryModelLoads(t *testing.T) {
	store := openTestStore(t)
	seedHistory(t, store)

	m := NewHistoryModel(store, 100, 30, true, false)
	games := m.Games()
	if len(games) != 3 {
		t.Fatalf("Expected 3 games, got %d", len(games))
	}
	if games[0].Player != "bob" {
		t.Errorf("best game player = %q, want bob", games[0].Player)
	}

	view := m.View()
	for _, want := range []string{"2048 HISTORY", "3 games", "best tile 2048", "bob"} {
		if !strings.Contains(view, want) {
			t.Errorf("history view missing %q", want)
		}
	}
}

func TestHistoryModelToggle(t *testing.T) {
	store := openTestStore(t)
	seedHistory(t, store)

	m := NewHistoryModel(store, 100, 30, true, false)
	m, _ = m.update(tea.KeyMsg{Type: tea.KeyRight})

	if m.best {
		t.Error("toggle should switch to recent games")
	}
	if len(m.Games()) != 3 {
		t.Errorf("Expected 3 recent games, got %d", len(m.Games()))
	}
}

func TestHistoryModelBack(t *testing.T) {
	m := NewHistoryModel(nil, 80, 24, false, false)
	if !strings.Contains(m.View(), "disabled") {
		t.Error("nil store should show history as disabled")
	}

	m, cmd := m.update(tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsGoingBack() {
		t.Error("esc should go back")
	}
	if cmd == nil {
		t.Error("standalone history should quit on back")
	}

	embedded := NewHistoryModel(nil, 80, 24, false, true)
	embedded, cmd = embedded.update(runeKey('b'))
	if !embedded.IsGoingBack() || cmd != nil {
		t.Error("embedded history should go back without quitting")
	}
}

func TestSessionSwitchesToHistory(t *testing.T) {
	store := openTestStore(t)
	seedHistory(t, store)

	s := NewSessionModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 42}, Options{Store: store})

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyTab})
	s = next.(SessionModel)
	if !s.InHistory() {
		t.Fatal("tab should open the history view")
	}
	if !strings.Contains(s.View(), "2048 HISTORY") {
		t.Error("session view should show history")
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	if s.InHistory() {
		t.Fatal("esc should return to the game")
	}
	if !strings.Contains(s.View(), "Turn: 0") {
		t.Error("session view should show the game again")
	}
}

func TestSessionQuitFromHistoryRecordsGame(t *testing.T) {
	store := openTestStore(t)
	s := NewSessionModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 42}, Options{Store: store, Player: "p"})

	for _, k := range moveKeys {
		next, _ := s.Update(k)
		s = next.(SessionModel)
		if s.Game().State().Turns > 0 {
			break
		}
	}

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyTab})
	s = next.(SessionModel)
	next, cmd := s.Update(runeKey('q'))
	s = next.(SessionModel)

	if cmd == nil || s.View() != "" {
		t.Error("q in history should quit the session")
	}

	games, err := store.RecentGames(10)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}
	if len(games) != 1 || games[0].Outcome != storage.OutcomeQuit {
		t.Errorf("quitting from history should record the game, got %+v", games)
	}
}
