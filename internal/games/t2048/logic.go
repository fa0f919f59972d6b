package t2048

import "github.com/vovakirdan/tui-2048/internal/board"

// HasPossibleMerge returns true if any horizontally or vertically adjacent
// tiles hold the same non-zero value.
func HasPossibleMerge(b board.Board) bool {
	for y := range board.Size {
		for x := range board.Size {
			val := b[y][x]
			if val == 0 {
				continue
			}
			// Check right neighbor
			if x < board.Size-1 && b[y][x+1] == val {
				return true
			}
			// Check bottom neighbor
			if y < board.Size-1 && b[y+1][x] == val {
				return true
			}
		}
	}
	return false
}

// CanMove reports whether an empty cell or an adjacent equal pair exists.
// An empty board can move even though no slide changes it.
func CanMove(b board.Board) bool {
	return board.HasEmptyTile(b) || HasPossibleMerge(b)
}

// IsGameOver reports a full board with no adjacent equal pair.
func IsGameOver(b board.Board) bool {
	return !CanMove(b)
}

// ValidMoves returns the directions that would change the board.
func ValidMoves(b board.Board) []board.Direction {
	var dirs []board.Direction
	for _, d := range board.Directions {
		if board.Changed(b, board.Slide(b, d).Board) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}
