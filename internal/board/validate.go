package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidBoardShape is returned for input that is not 4 rows of 4 cells.
	ErrInvalidBoardShape = errors.New("board: invalid board shape")

	// ErrInvalidTile is returned for a cell that is neither 0 nor a power of two.
	ErrInvalidTile = errors.New("board: invalid tile value")

	// ErrInvalidDirection is returned by ParseDirection for unknown names.
	ErrInvalidDirection = errors.New("board: invalid direction")
)

// IsValidTile reports whether v is 0 or a power of two no smaller than 2.
func IsValidTile(v int) bool {
	return v == 0 || (v >= 2 && v&(v-1) == 0)
}

// Validate checks that every cell holds a valid tile.
func Validate(b Board) error {
	for r := range Size {
		for c := range Size {
			if !IsValidTile(b[r][c]) {
				return fmt.Errorf("%w: %d at row %d, col %d", ErrInvalidTile, b[r][c], r, c)
			}
		}
	}
	return nil
}

// FromRows builds a Board from a slice of rows, checking shape and tiles.
func FromRows(rows [][]int) (Board, error) {
	var b Board
	if len(rows) != Size {
		return b, fmt.Errorf("%w: got %d rows, want %d", ErrInvalidBoardShape, len(rows), Size)
	}
	for r, row := range rows {
		if len(row) != Size {
			return Board{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidBoardShape, r, len(row), Size)
		}
		copy(b[r][:], row)
	}
	if err := Validate(b); err != nil {
		return Board{}, err
	}
	return b, nil
}

// Parse reads a board written as rows separated by '/', ';' or newlines,
// with cells separated by commas or spaces. '.' stands for an empty cell.
//
//	Parse("0,0,2,2 / 0,0,0,2 / 0,0,4,4 / 0,0,0,0")
func Parse(s string) (Board, error) {
	lines := strings.FieldsFunc(s, func(r rune) bool {
		return r == '/' || r == ';' || r == '\n'
	})

	rows := make([][]int, 0, len(lines))
	for _, line := range lines {
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		if len(fields) == 0 {
			continue
		}

		row := make([]int, 0, len(fields))
		for _, f := range fields {
			if f == "." {
				row = append(row, 0)
				continue
			}
			v, err := strconv.Atoi(f)
			if err != nil {
				return Board{}, fmt.Errorf("%w: %q", ErrInvalidTile, f)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}

	return FromRows(rows)
}
