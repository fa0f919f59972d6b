package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Resizer is implemented by games that can adapt to a new terminal size
// without losing their state.
type Resizer interface {
	Resize(w, h int)
}

// Model is the Bubble Tea model that runs a single game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	theme      Theme
	tickID     uint64
	inputFrame core.InputFrame
	gameState  core.GameState
	runID      uuid.UUID
	scoreSaved bool // Whether the current run has been recorded
	backToMenu bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game and starts
// the first run.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     log.Default(),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		theme:      CurrentTheme(),
		tickID:     nextTickID(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		runID:      uuid.New(),
	}
}

// WithLogger sets the logger used for non-fatal failures.
func (m Model) WithLogger(logger *log.Logger) Model {
	if logger != nil {
		m.logger = logger
	}
	return m
}

// WithTheme sets the theme used to render the game.
func (m Model) WithTheme(theme Theme) Model {
	m.theme = theme
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.tickID)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.ID != m.tickID {
			return m, nil // Left over from a previous game
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.IsScreenshot(msg) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Debug("screenshot saved", "path", path)
		}
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.finishRun()
		m.quitting = isQuit
		return m, tea.Quit

	case core.ActionBack:
		m.finishRun()
		m.backToMenu = true
		return m, tea.Quit

	case core.ActionRestart:
		m.restart()
		return m, nil

	case core.ActionNone:
		return m, nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	m.gameState = m.game.State()

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Record the run once it ends
	if m.gameState.GameOver {
		m.finishRun()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate, m.tickID)
}

// restart records the current run and starts a new one.
func (m *Model) restart() {
	m.finishRun()

	// Reset seed for new game
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.runID = uuid.New()
	m.scoreSaved = false
	m.inputFrame.Clear()
}

// finishRun stores the current run's score once. Runs without points are
// not recorded.
func (m *Model) finishRun() {
	if m.scoreSaved || m.gameState.Score <= 0 {
		return
	}
	m.scoreSaved = true
	if m.store == nil {
		return
	}

	rec := storage.ScoreRecord{
		RunID:   m.runID,
		GameID:  m.game.ID(),
		Score:   m.gameState.Score,
		MaxTile: m.gameState.MaxTile,
		Moves:   m.gameState.Moves,
	}
	if _, err := m.store.SaveScore(rec); err != nil {
		m.logger.Warn("could not save score", "game", rec.GameID, "score", rec.Score, "err", err)
	}
}

// saveScreenshot writes the current screen as plain text under
// ~/.t2048/screenshots and returns the file path.
func (m *Model) saveScreenshot() (string, error) {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".t2048", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreenTheme(m.screen, m.theme)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// RunID returns the identifier of the current run.
func (m Model) RunID() uuid.UUID {
	return m.runID
}

// WantsMenu reports whether the player asked to go back to the menu.
func (m Model) WantsMenu() bool {
	return m.backToMenu
}

// GameResult describes how a game session ended.
type GameResult struct {
	State      core.GameState
	BackToMenu bool
}

// RunGame plays a game until the player quits or goes back to the menu.
func RunGame(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (GameResult, error) {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return GameResult{}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return GameResult{}, nil
	}
	return GameResult{State: m.State(), BackToMenu: m.WantsMenu()}, nil
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	_, err := RunGame(game, store, cfg)
	return err
}
