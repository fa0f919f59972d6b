// Package board implements the 2048 board engine: board initialization,
// empty-cell queries, random tile spawning and the four slide/merge moves.
//
// Every operation takes a Board by value and returns a new Board. Go arrays
// are values, so the caller's board is never modified; replace your
// reference with the returned board.
package board

import (
	"strconv"
	"strings"
)

// Size is the board dimension.
const Size = 4

// Board is a 4x4 grid of tile values indexed as b[row][col].
// 0 marks an empty cell, any other value is a power of two.
type Board [Size][Size]int

// Cell addresses a single board position.
type Cell struct {
	Row, Col int
}

// Init returns an empty board.
func Init() Board {
	return Board{}
}

// HasEmptyTile reports whether at least one cell is empty.
func HasEmptyTile(b Board) bool {
	for r := range Size {
		for c := range Size {
			if b[r][c] == 0 {
				return true
			}
		}
	}
	return false
}

// EmptyCells returns the empty cells in row-major order.
func EmptyCells(b Board) []Cell {
	var cells []Cell
	for r := range Size {
		for c := range Size {
			if b[r][c] == 0 {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// Count returns the number of occupied cells.
func Count(b Board) int {
	n := 0
	for r := range Size {
		for c := range Size {
			if b[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// MaxTile returns the highest tile value on the board.
func MaxTile(b Board) int {
	maxVal := 0
	for r := range Size {
		for c := range Size {
			maxVal = max(maxVal, b[r][c])
		}
	}
	return maxVal
}

// Changed reports whether a move turned before into a different board.
// Moves never check this themselves; a null move is a valid move.
func Changed(before, after Board) bool {
	return before != after
}

// Column returns column c read top to bottom.
func (b Board) Column(c int) [Size]int {
	var col [Size]int
	for r := range Size {
		col[r] = b[r][c]
	}
	return col
}

// SetColumn returns a copy of b with column c replaced, top to bottom.
func (b Board) SetColumn(c int, col [Size]int) Board {
	for r := range Size {
		b[r][c] = col[r]
	}
	return b
}

// String renders the board as right-aligned rows, one per line.
// Empty cells print as '.'.
func (b Board) String() string {
	width := len(strconv.Itoa(MaxTile(b)))

	var sb strings.Builder
	for r := range Size {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range Size {
			if c > 0 {
				sb.WriteByte(' ')
			}
			cell := "."
			if b[r][c] != 0 {
				cell = strconv.Itoa(b[r][c])
			}
			sb.WriteString(strings.Repeat(" ", width-len(cell)))
			sb.WriteString(cell)
		}
	}
	return sb.String()
}

// Rows converts the board to a slice form, e.g. for JSON output.
func (b Board) Rows() [][]int {
	rows := make([][]int, Size)
	for r := range Size {
		rows[r] = append([]int(nil), b[r][:]...)
	}
	return rows
}
