// Package tui provides the Bubble Tea front end for 2048: the game model,
// the history view and the SSH server that hosts them.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/storage"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

// Options configures a game model.
type Options struct {
	Store   *storage.Store // nil disables history
	Logger  *log.Logger    // nil drops record errors
	Palette t2048.Palette  // zero value uses the default palette
	Player  string
}

// Model is the Bubble Tea model for one player's 2048 games.
// The UI is event driven: every key press is one Step.
type Model struct {
	game      *t2048.Game
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	keyMapper *KeyMapper
	config    core.RuntimeConfig
	player    string
	gameState core.GameState
	recorded  bool // Whether the current game has been saved
	lastID    string
	quitting  bool
}

// NewModel creates a model and starts the first game.
func NewModel(cfg core.RuntimeConfig, opts Options) Model {
	palette := opts.Palette
	if len(palette.Steps) == 0 {
		palette = t2048.DefaultPalette()
	}

	game := t2048.NewWithPalette(palette)
	game.Reset(cfg)

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     opts.Store,
		logger:    opts.Logger,
		keyMapper: NewKeyMapper(),
		config:    cfg,
		player:    opts.Player,
		gameState: game.State(),
	}
}

// Init implements tea.Model. The game is already running.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m = m.Abandon()
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionRestart:
		return m.restart(), nil
	case core.ActionNone, core.ActionBack:
		return m, nil
	}

	result := m.game.Step(core.FrameOf(action))
	m.gameState = result.State

	if m.gameState.GameOver {
		m = m.record(storage.OutcomeGameOver)
	}

	return m, nil
}

// restart abandons the current game and starts a new one with a fresh seed.
func (m Model) restart() Model {
	m = m.Abandon()

	m.config.Seed = 0
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.recorded = false
	return m
}

// Abandon records the current game as quit if it has not ended yet.
func (m Model) Abandon() Model {
	if m.gameState.GameOver {
		return m
	}
	return m.record(storage.OutcomeQuit)
}

// record saves the current game once. Games without a single move are not
// recorded.
func (m Model) record(outcome storage.Outcome) Model {
	if m.recorded || m.game.Turns() == 0 {
		return m
	}
	m.recorded = true

	if m.store == nil {
		return m
	}

	rec := storage.GameRecord{
		Player:  m.player,
		Seed:    m.game.Board().Seed(),
		Turns:   m.game.Turns(),
		MaxTile: m.game.Board().MaxTile(),
		Outcome: outcome,
	}
	id, err := m.store.SaveGame(rec)
	if err != nil {
		if m.logger != nil {
			m.logger.Error("could not record game", "player", m.player, "error", err)
		}
		return m
	}

	m.lastID = id
	if m.logger != nil {
		m.logger.Info("game recorded",
			"player", rec.Player,
			"outcome", rec.Outcome,
			"turns", rec.Turns,
			"max_tile", rec.MaxTile,
		)
	}
	return m
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".t2048", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("2048_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the state of the current game.
func (m Model) State() core.GameState {
	return m.gameState
}

// Game returns the running game.
func (m Model) Game() *t2048.Game {
	return m.game
}

// LastRecordID returns the ID of the last saved game, or "".
func (m Model) LastRecordID() string {
	return m.lastID
}

// IsQuitting returns true if the player asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program on the local terminal.
func Run(cfg core.RuntimeConfig, opts Options) error {
	model := NewSessionModel(cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
