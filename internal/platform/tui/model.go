package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/alan-andrade/snake2/internal/core"
	"github.com/alan-andrade/snake2/internal/registry"
	"github.com/alan-andrade/snake2/internal/storage"
)

// Journal records finished sessions. *storage.Store implements it.
type Journal interface {
	SaveSession(rec storage.SessionRecord) (int64, error)
}

// Model is the Bubble Tea model for one Snake session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	journal    Journal
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	player     string
	sessionID  string
	ticks      uint64
	quitting   bool
	journaled  bool // Whether the current session has been written
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil journal disables the session journal.
func NewModel(game registry.Game, journal Journal, cfg core.RuntimeConfig, player string, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		journal:    journal,
		logger:     logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		player:     player,
		sessionID:  storage.NewSessionID(),
	}
	m.help.Width = cfg.ScreenW
	m.screen = core.NewScreen(cfg.ScreenW, m.gameHeight())
	return m
}

// footerHeight returns the rows taken by the help footer.
func (m Model) footerHeight() int {
	return strings.Count(m.help.View(m.keys), "\n") + 1
}

// gameHeight returns the rows left to the game.
func (m Model) gameHeight() int {
	return max(m.config.ScreenH-m.footerHeight(), 0)
}

func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = m.gameHeight()
	return cfg
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, m.gameHeight())
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		if !m.gameState.GameOver && m.ticks > 0 {
			m.writeJournal("quit")
		}
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, m.gameHeight())

	// Restart with the new dimensions unless the session already ended
	if !m.gameState.GameOver {
		m.game.Reset(m.gameConfig())
		m.gameState = m.game.State()
		m.ticks = 0
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.gameConfig())
		m.gameState = m.game.State()
		m.sessionID = storage.NewSessionID()
		m.ticks = 0
		m.journaled = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.ticks++

	if m.gameState.GameOver {
		m.writeJournal(m.gameState.Reason)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// writeJournal records the current session once.
func (m *Model) writeJournal(reason string) {
	if m.journaled || m.journal == nil {
		return
	}
	m.journaled = true

	rec := storage.SessionRecord{
		SessionID: m.sessionID,
		GameID:    m.game.ID(),
		Player:    m.player,
		Length:    m.gameState.Length,
		Apples:    m.gameState.Apples,
		Ticks:     m.ticks,
		EndReason: reason,
	}
	if _, err := m.journal.SaveSession(rec); err != nil {
		m.logger.Warn("cannot journal session", "session", m.sessionID, "err", err)
		return
	}
	m.logger.Info("session journaled", "session", m.sessionID, "game", rec.GameID,
		"length", rec.Length, "reason", reason)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the last state reported by the game.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, journal Journal, cfg core.RuntimeConfig, player string, logger *log.Logger) error {
	model := NewModel(game, journal, cfg, player, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
