package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// SessionModel is the top-level model for a player: the game, with Tab
// switching to the history view and back.
type SessionModel struct {
	store     *storage.Store
	config    core.RuntimeConfig
	game      Model
	history   HistoryModel
	inHistory bool
	quitting  bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(cfg core.RuntimeConfig, opts Options) SessionModel {
	return SessionModel{
		store:  opts.Store,
		config: cfg,
		game:   NewModel(cfg, opts),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.game.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
		m.game = m.forwardGame(msg)
		if m.inHistory {
			m.history = m.forwardHistory(msg)
		}
		return m, nil
	}

	if m.inHistory {
		return m.updateHistory(msg)
	}
	return m.updateGame(msg)
}

// updateGame handles updates while playing.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "tab" {
		m.history = NewHistoryModel(m.store, m.config.ScreenW, m.config.ScreenH, false, true)
		m.inHistory = true
		return m, nil
	}

	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
	}
	return m, cmd
}

// updateHistory handles updates while the history view is open.
func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.history, cmd = m.history.update(msg)

	if m.history.IsQuitting() {
		m.game = m.game.Abandon()
		m.quitting = true
		return m, tea.Quit
	}

	if m.history.IsGoingBack() {
		m.inHistory = false
		return m, nil
	}

	return m, cmd
}

func (m SessionModel) forwardGame(msg tea.Msg) Model {
	newModel, _ := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		return gameModel
	}
	return m.game
}

func (m SessionModel) forwardHistory(msg tea.Msg) HistoryModel {
	h, _ := m.history.update(msg)
	return h
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inHistory {
		return m.history.View()
	}
	return m.game.View()
}

// Game returns the game model.
func (m SessionModel) Game() Model {
	return m.game
}

// InHistory reports whether the history view is open.
func (m SessionModel) InHistory() bool {
	return m.inHistory
}
