package player

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/alan-andrade/snake2/internal/grid"
)

// ErrOffBoard is returned when a step would leave the coordinate range.
var ErrOffBoard = errors.New("player: step leaves the coordinate range")

// Direction is a movement direction on the grid.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns a human-readable name for the direction.
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
		return "unknown"
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// ParseDirection parses "up", "down", "left" or "right".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return Up, fmt.Errorf("player: unknown direction %q", s)
	}
}

// Navigate returns the position one step from p in direction d.
// Up decrements y, Down increments y, Right increments x, Left decrements x.
// Stepping below 0 or above 255 returns ErrOffBoard instead of wrapping.
func Navigate(p grid.Position, d Direction) (grid.Position, error) {
	switch d {
	case Up:
		if p.Y == 0 {
			return grid.Position{}, fmt.Errorf("%w: %s from %s", ErrOffBoard, d, p)
		}
		return grid.Pos(p.X, p.Y-1), nil
	case Down:
		if p.Y == math.MaxUint8 {
			return grid.Position{}, fmt.Errorf("%w: %s from %s", ErrOffBoard, d, p)
		}
		return grid.Pos(p.X, p.Y+1), nil
	case Left:
		if p.X == 0 {
			return grid.Position{}, fmt.Errorf("%w: %s from %s", ErrOffBoard, d, p)
		}
		return grid.Pos(p.X-1, p.Y), nil
	case Right:
		if p.X == math.MaxUint8 {
			return grid.Position{}, fmt.Errorf("%w: %s from %s", ErrOffBoard, d, p)
		}
		return grid.Pos(p.X+1, p.Y), nil
	default:
		return grid.Position{}, fmt.Errorf("player: unknown direction %d", d)
	}
}
