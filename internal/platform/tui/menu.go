package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// MenuItem is a selectable entry of the main menu.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
	HighScore   int
	PickLevel   bool // Opens the level picker instead of starting a game
}

var modeDescriptions = map[string]string{
	t2048.IDClassic:  "One board, no target. Play until it locks up.",
	t2048.IDCampaign: "Reach each level's target tile in turn.",
	t2048.IDEndless:  "Classic rules with rising odds of 4s.",
}

// MenuModel is the Bubble Tea model for the mode picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	levels         LevelSelect
	inLevelSelect  bool
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	theme          Theme
	quitting       bool
	selected       *MenuItem // Set when user selects a mode
	startLevel     int
	openScoreboard bool // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model listing every registered mode.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games)+1)

	for _, g := range games {
		item := MenuItem{
			GameID:      g.ID,
			Title:       g.Title,
			Description: modeDescriptions[g.ID],
		}
		if store != nil {
			if high, err := store.HighScore(g.ID); err == nil {
				item.HighScore = high
			}
		}
		items = append(items, item)
	}

	levels := t2048.Levels()
	if len(levels) > 0 && registry.Exists(t2048.IDCampaign) {
		items = append(items, MenuItem{
			GameID:      t2048.IDCampaign,
			Title:       "Select Level...",
			Description: fmt.Sprintf("Start the campaign at any of its %d levels.", len(levels)),
			PickLevel:   true,
		})
	}

	return MenuModel{
		items:     items,
		levels:    NewLevelSelect(levels),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		theme:     CurrentTheme(),
	}
}

// WithTheme sets the theme used to render the menu.
func (m MenuModel) WithTheme(theme Theme) MenuModel {
	m.theme = theme
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)
	if action == MenuActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inLevelSelect {
		level, back := m.levels.Handle(action)
		switch {
		case back:
			m.inLevelSelect = false
		case level > 0:
			item := m.items[m.cursor]
			m.selected = &item
			m.startLevel = level
			return m, tea.Quit
		}
		return m, nil
	}

	switch action {
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) == 0 {
			return m, nil
		}
		item := m.items[m.cursor]
		if item.PickLevel {
			m.inLevelSelect = true
			return m, nil
		}
		m.selected = &item
		return m, tea.Quit // Exit menu to start game

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inLevelSelect {
		return m.levels.View(m.width, m.theme)
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(m.theme.MenuTitle.Render(centerText("2 0 4 8", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a mode", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		style := m.theme.MenuItemNormal
		if i == m.cursor {
			cursor = "> "
			style = m.theme.MenuItemActive
		}

		line := cursor + item.Title
		if item.HighScore > 0 {
			line = fmt.Sprintf("%-24s best %d", line, item.HighScore)
		}
		b.WriteString(style.Render(centerText(line, m.width)))
		b.WriteString("\n")
	}

	if len(m.items) > 0 {
		b.WriteString("\n")
		b.WriteString(m.theme.MenuDescription.Render(centerText(m.items[m.cursor].Description, m.width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(m.theme.Help.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// StartLevel returns the campaign level picked in the level selector, 0 if none.
func (m MenuModel) StartLevel() int {
	return m.startLevel
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	StartLevel      int // Campaign level to start at (1-indexed), 0 = first
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// Result converts the final menu state into a MenuResult.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{Config: m.Config()}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting() || m.Selected() == nil:
		result.Quit = true
	default:
		result.GameID = m.Selected().GameID
		result.StartLevel = m.StartLevel()
	}
	return result
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
