package core

// Color is the foreground color of a screen cell. Themes decide how each
// value looks; ANSI gives the code the default theme uses.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Colors lists every color except ColorDefault.
var Colors = []Color{
	ColorRed, ColorGreen, ColorYellow, ColorBlue, ColorMagenta, ColorCyan, ColorWhite,
	ColorBrightRed, ColorBrightGreen, ColorBrightYellow, ColorBrightBlue,
	ColorBrightMagenta, ColorBrightCyan, ColorBrightWhite, ColorOrange, ColorGray,
}

var ansiCodes = map[Color]string{
	ColorRed:           "1",
	ColorGreen:         "2",
	ColorYellow:        "3",
	ColorBlue:          "4",
	ColorMagenta:       "5",
	ColorCyan:          "6",
	ColorWhite:         "7",
	ColorBrightRed:     "9",
	ColorBrightGreen:   "10",
	ColorBrightYellow:  "11",
	ColorBrightBlue:    "12",
	ColorBrightMagenta: "13",
	ColorBrightCyan:    "14",
	ColorBrightWhite:   "15",
	ColorOrange:        "208",
	ColorGray:          "240",
}

// ANSI returns the 256-color code for c, or "" for ColorDefault.
func (c Color) ANSI() string {
	return ansiCodes[c]
}

// Bright reports whether c is one of the bright variants (or orange),
// which the tile palette reserves for high values.
func (c Color) Bright() bool {
	return c >= ColorBrightRed && c <= ColorOrange
}
