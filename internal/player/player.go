// Package player moves a multi-cell snake body across a grid and maps each
// step through the collision rules.
package player

import (
	"slices"

	"github.com/alan-andrade/snake2/internal/grid"
)

// Player is a snake body on the grid.
// The tail is the first segment and the head is the last.
type Player struct {
	body   []grid.Position
	facing Direction
}

// Head returns the newest segment.
func (p *Player) Head() grid.Position {
	return p.body[len(p.body)-1]
}

// Tail returns the oldest segment.
func (p *Player) Tail() grid.Position {
	return p.body[0]
}

// Body returns a copy of the segments, tail first.
func (p *Player) Body() []grid.Position {
	return slices.Clone(p.body)
}

// Len returns the number of segments.
func (p *Player) Len() int {
	return len(p.body)
}

// Facing returns the direction of the last move.
func (p *Player) Facing() Direction {
	return p.facing
}

// advance appends next as the new head and drops the tail.
// Returns the vacated tail position.
func (p *Player) advance(next grid.Position) grid.Position {
	vacated := p.body[0]
	p.body = append(p.body[1:], next)
	return vacated
}

// retreat undoes advance: it drops the head and restores tail.
func (p *Player) retreat(tail grid.Position) {
	p.body = slices.Insert(p.body[:len(p.body)-1], 0, tail)
}

// regrow puts a previously vacated cell back as the tail.
func (p *Player) regrow(tail grid.Position) {
	p.body = slices.Insert(p.body, 0, tail)
}
