package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// helpRows is the space reserved below the board for the key help line.
const helpRows = 1

// Model is the Bubble Tea model that drives the snake game.
type Model struct {
	game   *snake.Game
	screen *core.Screen
	queue  *EventQueue
	config core.RuntimeConfig
	keys   KeyMap
	help   help.Model
	logger *log.Logger
	err    error
}

// NewModel creates a new Bubble Tea model and starts a game sized to cfg.
func NewModel(cfg core.RuntimeConfig, opts snake.Options, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	boardCfg := cfg
	boardCfg.ScreenH = max(cfg.ScreenH-helpRows, 0)

	return Model{
		game:   snake.New(boardCfg, opts, logger),
		screen: core.NewScreen(boardCfg.ScreenW, boardCfg.ScreenH),
		queue:  &EventQueue{},
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if k := m.keys.MapKey(msg); k != core.KeyNone {
			m.queue.Push(core.KeyEvent(k))
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleResize queues the new board size for the next tick.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	h := max(msg.Height-helpRows, 0)
	m.screen.Resize(msg.Width, h)
	m.help.Width = msg.Width
	m.queue.Push(core.ResizeEvent(msg.Width, h))
	return m, nil
}

// handleTick runs one simulation step and schedules the next one.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if err := m.game.Tick(m.queue); err != nil {
		m.err = err
		m.logger.Error("tick failed", "error", err)
		return m, tea.Quit
	}

	if m.game.Done() {
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	m.game.Render(m.screen)
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen),
		m.help.View(m.keys),
	)
}

// Game returns the underlying game.
func (m Model) Game() *snake.Game {
	return m.game
}

// Err returns the fatal error that stopped the loop, if any.
func (m Model) Err() error {
	return m.err
}

// Result describes how a game ended.
type Result struct {
	Score   int
	Status  snake.Status
	Message string
}

// Run starts the Bubble Tea program and blocks until the game ends.
// The terminal is restored before Run returns, on every path.
func Run(cfg core.RuntimeConfig, opts snake.Options, logger *log.Logger) (Result, error) {
	model := NewModel(cfg, opts, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return Result{}, fmt.Errorf("tui: terminal error: %w", err)
	}

	m, ok := finalModel.(Model)
	if !ok {
		return Result{}, fmt.Errorf("tui: unexpected final model %T", finalModel)
	}
	if m.err != nil {
		return Result{}, m.err
	}

	g := m.Game()
	return Result{
		Score:   g.Score(),
		Status:  g.Status(),
		Message: g.FinalMessage(),
	}, nil
}
