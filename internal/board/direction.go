package board

import (
	"fmt"
	"strings"
)

// Direction is a move direction.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists all moves in a stable order.
var Directions = []Direction{Up, Down, Left, Right}

// String returns the lower-case name of the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection accepts a direction name or its first letter,
// case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}
