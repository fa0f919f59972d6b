package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// LevelSelect lets the player pick the campaign level to start from.
// It is embedded by the menu models and driven with menu actions.
type LevelSelect struct {
	levels []t2048.Level
	cursor int
}

// NewLevelSelect creates a level picker over the given campaign levels.
func NewLevelSelect(levels []t2048.Level) LevelSelect {
	return LevelSelect{levels: levels}
}

// Handle applies a menu action. It returns the chosen level (1-indexed)
// on select, or back=true when the player leaves the picker.
func (ls *LevelSelect) Handle(action MenuAction) (level int, back bool) {
	switch action {
	case MenuActionUp:
		if ls.cursor > 0 {
			ls.cursor--
		}
	case MenuActionDown:
		if ls.cursor < len(ls.levels)-1 {
			ls.cursor++
		}
	case MenuActionSelect:
		if len(ls.levels) > 0 {
			return ls.cursor + 1, false
		}
	case MenuActionBack:
		return 0, true
	}
	return 0, false
}

// Cursor returns the highlighted level index.
func (ls LevelSelect) Cursor() int {
	return ls.cursor
}

// View renders the level list.
func (ls LevelSelect) View(width int, theme Theme) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.MenuTitle.Render(centerText("SELECT LEVEL", width)))
	b.WriteString("\n\n")

	for i, lvl := range ls.levels {
		cursor := "  "
		style := theme.MenuItemNormal
		if i == ls.cursor {
			cursor = "> "
			style = theme.MenuItemActive
		}
		line := fmt.Sprintf("%s%2d. %-18s Goal: %d", cursor, lvl.ID, lvl.Name, lvl.Target)
		b.WriteString(style.Render(centerText(line, width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Help.Render(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", width)))

	return b.String()
}
