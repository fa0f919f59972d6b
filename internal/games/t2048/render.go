package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/board"
	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3

	boardW = board.Size*cellWidth + 1
	boardH = board.Size*cellHeight + 1

	minScreenW = boardW + 2
	minScreenH = hudHeight + 1 + boardH + 2
)

// tileColors gives every tile up to 4096 its own color; larger tiles share one.
var tileColors = map[int]core.Color{
	2:    core.ColorWhite,
	4:    core.ColorBrightWhite,
	8:    core.ColorYellow,
	16:   core.ColorOrange,
	32:   core.ColorBrightRed,
	64:   core.ColorRed,
	128:  core.ColorBrightYellow,
	256:  core.ColorBrightGreen,
	512:  core.ColorGreen,
	1024: core.ColorBrightCyan,
	2048: core.ColorCyan,
	4096: core.ColorBrightBlue,
}

// TileColor returns the display color of a tile value.
func TileColor(value int) core.Color {
	if value > 4096 {
		return core.ColorBrightMagenta
	}
	if c, ok := tileColors[value]; ok {
		return c
	}
	return core.ColorDefault
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX)
	g.renderBoard(dst, boardX, boardY)
	g.renderFooter(dst, boardY+boardH+1)
	g.renderOverlays(dst, boardX, boardY)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

// renderHUD draws the score and mode info.
func (g *Game) renderHUD(dst *core.Screen, boardX int) {
	dst.DrawTextColored(boardX+(boardW-len("2048"))/2, 0, "2048", core.ColorOrange)

	scoreStr := fmt.Sprintf("Score: %d", g.score)
	if g.lastGain > 0 {
		scoreStr += fmt.Sprintf(" (+%d)", g.lastGain)
	}
	dst.DrawText(boardX, 1, scoreStr)

	var infoStr string
	switch g.mode {
	case ModeCampaign:
		infoStr = fmt.Sprintf("Lv %d/%d  Goal %d", g.levelIndex+1, len(g.levels), g.currentTarget)
	default:
		infoStr = fmt.Sprintf("Max: %d", board.MaxTile(g.board))
	}
	dst.DrawText(max(boardX, boardX+boardW-len(infoStr)), 2, infoStr)

	dst.DrawTextColored(boardX, 2, fmt.Sprintf("Moves: %d", g.moves), core.ColorGray)
}

// renderBoard draws the 4x4 grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	for y := range board.Size + 1 {
		for x := range board.Size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			dst.SetColored(px, py, gridCorner(x, y), core.ColorGray)

			if x < board.Size {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGray)
				}
			}
			if y < board.Size {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	for y := range board.Size {
		for x := range board.Size {
			val := g.board[y][x]
			if val == 0 {
				continue
			}

			valStr := strconv.Itoa(val)
			padLeft := max(0, (cellWidth-len(valStr))/2)

			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1
			dst.DrawTextColored(cellX+padLeft, cellY, valStr, TileColor(val))
		}
	}
}

func gridCorner(x, y int) rune {
	last := board.Size
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == last:
		return '┐'
	case y == last && x == 0:
		return '└'
	case y == last && x == last:
		return '┘'
	case y == 0:
		return '┬'
	case y == last:
		return '┴'
	case x == 0:
		return '├'
	case x == last:
		return '┤'
	default:
		return '┼'
	}
}

func (g *Game) renderFooter(dst *core.Screen, y int) {
	dst.DrawTextCentered(y, g.Controls())
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	switch {
	case g.paused:
		drawOverlay(dst, centerX, centerY, "PAUSED", "P to resume")
	case g.levelCleared:
		targetStr := fmt.Sprintf("%d reached!", g.currentTarget)
		if g.levelIndex >= len(g.levels)-1 {
			drawOverlay(dst, centerX, centerY, targetStr, "Final level!")
		} else {
			drawOverlay(dst, centerX, centerY, targetStr, fmt.Sprintf("Next: Level %d", g.levelIndex+2))
		}
	case g.won:
		drawOverlay(dst, centerX, centerY, "CAMPAIGN DONE", "R to restart")
	case g.gameOver:
		drawOverlay(dst, centerX, centerY, "GAME OVER", fmt.Sprintf("Score %d", g.score), "R to restart")
	}
}

// drawOverlay draws a centered text box.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawTextColored(centerX-len(line)/2, box.Y+1+i, line, core.ColorBrightYellow)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move  P: Pause  R: Restart  Q: Quit"
}
