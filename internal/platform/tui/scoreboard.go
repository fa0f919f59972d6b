package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the mode sidebar
	sidebarWidth       = 22  // Width of the mode sidebar
	maxScores          = 100 // Max scores to load per mode
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.PrevMode, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextMode, k.PrevMode},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		NextMode: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/←", "prev mode"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the best runs of every registered mode.
type ScoreboardModel struct {
	modes       []registry.GameInfo
	modeCursor  int
	store       *storage.Store
	scores      []storage.ScoreEntry
	stats       *storage.GameStats
	loadErr     error
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	theme       Theme
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showSidebar bool
}

// NewScoreboardModel creates a new scoreboard model using the current theme.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	return NewScoreboardModelTheme(store, width, height, CurrentTheme())
}

// NewScoreboardModelTheme creates a new scoreboard model with an explicit theme.
func NewScoreboardModelTheme(store *storage.Store, width, height int, theme Theme) ScoreboardModel {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := ScoreboardModel{
		modes:       registry.List(),
		store:       store,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		theme:       theme,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()

	if len(m.modes) > 0 {
		m.loadScores(m.modes[0].ID)
	}
	return m
}

// createTable creates a table sized for the current window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 8},
		{Title: "Max Tile", Width: 8},
		{Title: "Moves", Width: 6},
		{Title: "Date", Width: 12},
	}

	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}
	// Give spare room to the date column
	if spare := tableWidth - 49; spare > 0 {
		columns[4].Width += min(spare, 8)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Header, stats, help and margins
	)

	s := table.DefaultStyles()
	s.Header = m.theme.TableHeader
	s.Selected = m.theme.TableSelected
	t.SetStyles(s)

	return t
}

// loadScores loads the top scores and stats of a mode.
func (m *ScoreboardModel) loadScores(gameID string) {
	m.scores, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil {
		m.scores, m.loadErr = m.store.TopScores(gameID, maxScores)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.GetGameStats(gameID)
		}
	}
	m.updateTableRows()
}

// updateTableRows refreshes the table from the loaded scores.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			strconv.Itoa(s.Score),
			strconv.Itoa(s.MaxTile),
			strconv.Itoa(s.Moves),
			s.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) shiftMode(delta int) {
	if len(m.modes) == 0 {
		return
	}
	m.modeCursor = (m.modeCursor + delta + len(m.modes)) % len(m.modes)
	m.loadScores(m.modes[m.modeCursor].ID)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextMode):
			m.shiftMode(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevMode):
			m.shiftMode(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Scrolling is handled by the table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "HIGH SCORES"
	if len(m.modes) > 0 {
		title = fmt.Sprintf("HIGH SCORES - %s", m.modes[m.modeCursor].Title)
	}
	b.WriteString("\n")
	b.WriteString(m.theme.MenuTitle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	b.WriteString(m.theme.MenuDescription.Render(m.statsLine()))
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))

	return b.String()
}

// statsLine summarizes the selected mode.
func (m ScoreboardModel) statsLine() string {
	switch {
	case m.store == nil:
		return "Score storage unavailable."
	case m.loadErr != nil:
		return "Could not load scores: " + m.loadErr.Error()
	case m.stats == nil || m.stats.GamesCount == 0:
		return ""
	}
	return fmt.Sprintf("Games: %d  Best: %d  Avg: %.0f  Best tile: %d  Moves: %d",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore, m.stats.BestTile, m.stats.TotalMoves)
}

// renderWideLayout renders the mode sidebar next to the table.
func (m ScoreboardModel) renderWideLayout() string {
	sidebarStyle := m.theme.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Modes\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, g := range m.modes {
		cursor := "  "
		style := m.theme.MenuItemNormal
		if i == m.modeCursor {
			cursor = "> "
			style = m.theme.MenuItemActive
		}
		sidebar.WriteString(style.Render(cursor + truncate(g.Title, sidebarWidth-6)))
		sidebar.WriteString("\n")
	}

	tableStyle := m.theme.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout renders mode tabs above the table.
func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder

	if len(m.modes) > 0 {
		tabs := make([]string, len(m.modes))
		for i, g := range m.modes {
			name := truncate(g.Title, 16)
			if i == m.modeCursor {
				tabs[i] = m.theme.TableSelected.Padding(0, 1).Render(name)
			} else {
				tabs[i] = m.theme.Help.Render(" " + name + " ")
			}
		}

		tabLine := strings.Join(tabs, " ")
		if lipgloss.Width(tabLine) > m.width-4 {
			tabLine = fmt.Sprintf("< %s >", m.modes[m.modeCursor].Title)
		}
		b.WriteString(centerText(tabLine, m.width))
		b.WriteString("\n\n")
	}

	tableStyle := m.theme.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.scores) == 0 {
		return m.theme.Help.Italic(true).Padding(2, 4).
			Render("No scores recorded yet.\nReach a new tile to set one!")
	}
	return m.table.View()
}

// SelectedMode returns the ID of the mode being shown.
func (m ScoreboardModel) SelectedMode() string {
	if len(m.modes) == 0 {
		return ""
	}
	return m.modes[m.modeCursor].ID
}

// Scores returns the loaded entries for the selected mode.
func (m ScoreboardModel) Scores() []storage.ScoreEntry {
	return m.scores
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
