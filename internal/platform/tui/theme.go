package tui

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Theme contains the visual styles of every screen.
type Theme struct {
	Name     string
	renderer *lipgloss.Renderer

	// Screen cell colors, indexed by core.Color
	Palette map[core.Color]lipgloss.Style

	// Menu styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style

	// Scoreboard styles
	TableHeader   lipgloss.Style
	TableSelected lipgloss.Style
	Border        lipgloss.Color
	Help          lipgloss.Style
}

// DefaultTheme returns the default 256-color theme for the local terminal.
func DefaultTheme() Theme {
	return NewTheme(nil)
}

// NewTheme returns the default theme bound to a renderer. SSH sessions pass
// their own renderer so colors follow the client's terminal. A nil renderer
// means the local terminal.
func NewTheme(r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	fg := func(code string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(code))
	}

	palette := map[core.Color]lipgloss.Style{core.ColorDefault: r.NewStyle()}
	for _, c := range core.Colors {
		style := fg(c.ANSI())
		if c.Bright() || c == core.ColorRed || c == core.ColorGreen || c == core.ColorYellow || c == core.ColorCyan {
			style = style.Bold(true)
		}
		palette[c] = style
	}
	palette[core.ColorBrightMagenta] = palette[core.ColorBrightMagenta].Underline(true)
	palette[core.ColorBrightWhite] = fg(core.ColorBrightWhite.ANSI())

	return Theme{
		Name:     "default",
		renderer: r,
		Palette:  palette,

		MenuTitle:       fg("208").Bold(true),
		MenuItemNormal:  fg("252"),
		MenuItemActive:  fg("226").Bold(true),
		MenuDescription: fg("245"),

		TableHeader:   r.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).BorderBottom(true).Bold(true),
		TableSelected: fg("229").Background(lipgloss.Color("57")),
		Border:        lipgloss.Color("240"),
		Help:          fg("241"),
	}
}

// MonochromeTheme returns a grayscale theme for terminals without color.
// Tiles keep distinct weights so large values still stand out.
func MonochromeTheme() Theme {
	return NewMonochromeTheme(nil)
}

// NewMonochromeTheme returns the grayscale theme bound to a renderer.
func NewMonochromeTheme(r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	theme := NewTheme(r)
	theme.Name = "mono"
	theme.Palette = map[core.Color]lipgloss.Style{
		core.ColorDefault: r.NewStyle(),
		core.ColorGray:    r.NewStyle().Faint(true),
	}
	for _, c := range core.Colors {
		switch {
		case c == core.ColorGray:
		case c.Bright() && c != core.ColorOrange && c != core.ColorBrightWhite,
			c == core.ColorRed, c == core.ColorGreen, c == core.ColorCyan:
			theme.Palette[c] = r.NewStyle().Bold(true)
		default:
			theme.Palette[c] = r.NewStyle()
		}
	}
	theme.Palette[core.ColorBrightMagenta] = r.NewStyle().Bold(true).Reverse(true)

	theme.MenuTitle = r.NewStyle().Bold(true)
	theme.MenuItemNormal = r.NewStyle()
	theme.MenuItemActive = r.NewStyle().Bold(true).Reverse(true)
	theme.MenuDescription = r.NewStyle().Faint(true)
	theme.TableSelected = r.NewStyle().Reverse(true)
	theme.Help = r.NewStyle().Faint(true)
	return theme
}

var (
	themeMu     sync.RWMutex
	activeTheme = DefaultTheme()
)

// ThemeNames lists the built-in themes.
var ThemeNames = []string{"default", "mono"}

// ThemeByName returns a built-in theme bound to a renderer (nil for the
// local terminal).
func ThemeByName(name string, r *lipgloss.Renderer) (Theme, error) {
	switch name {
	case "", "default":
		return NewTheme(r), nil
	case "mono":
		return NewMonochromeTheme(r), nil
	default:
		return Theme{}, fmt.Errorf("tui: unknown theme %q (want default or mono)", name)
	}
}

// SetTheme sets the global theme.
func SetTheme(theme Theme) {
	themeMu.Lock()
	defer themeMu.Unlock()
	activeTheme = theme
}

// CurrentTheme returns the current global theme.
func CurrentTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return activeTheme
}

// Style returns the palette style for a screen color.
func (t Theme) Style(c core.Color) lipgloss.Style {
	if s, ok := t.Palette[c]; ok {
		return s
	}
	return t.Palette[core.ColorDefault]
}

// NewStyle creates a style bound to the theme's renderer.
func (t Theme) NewStyle() lipgloss.Style {
	if t.renderer == nil {
		return lipgloss.NewStyle()
	}
	return t.renderer.NewStyle()
}
