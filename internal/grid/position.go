// Package grid tracks which cell of a bounded board holds which game object.
// It has no dependencies outside the standard library so the occupancy rules
// stay pure and testable.
package grid

import "fmt"

// Position is a cell coordinate, 1-indexed into the board interior.
// X grows to the right and Y grows downward.
//
//	(1,1) ------ (w,1)
//	  |            |
//	(1,h) ------ (w,h)
type Position struct {
	X, Y uint8
}

// Pos is a convenience constructor for Position.
func Pos(x, y uint8) Position {
	return Position{X: x, Y: y}
}

// Compare orders positions row by row: first by Y, then by X.
// Returns -1, 0 or +1.
func (p Position) Compare(other Position) int {
	switch {
	case p.Y < other.Y:
		return -1
	case p.Y > other.Y:
		return 1
	case p.X < other.X:
		return -1
	case p.X > other.X:
		return 1
	default:
		return 0
	}
}

// Less reports whether p sorts before other.
func (p Position) Less(other Position) bool {
	return p.Compare(other) < 0
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
