package player

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/alan-andrade/snake2/internal/grid"
	"github.com/alan-andrade/snake2/internal/rules"
)

// ErrSetup is returned when a player cannot be placed on the board.
var ErrSetup = errors.New("player: cannot place player")

// Move describes one step of a player.
type Move struct {
	Next    grid.Position
	Vacated grid.Position
	Event   grid.AllocationEvent
	Outcome rules.Outcome
}

// Controller moves players on a grid it exclusively drives.
type Controller struct {
	grid   *grid.Grid
	logger *log.Logger
}

// NewController creates a controller for g. A nil logger discards output.
func NewController(g *grid.Grid, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Controller{grid: g, logger: logger}
}

// Grid returns the grid the controller drives.
func (c *Controller) Grid() *grid.Grid {
	return c.grid
}

// AddPlayer seeds a snake of the given length. Starting from the grid center
// it allocates a segment and steps up, so the head ends on the topmost cell
// and the player faces Up.
func (c *Controller) AddPlayer(length int) (*Player, error) {
	if length < 1 {
		return nil, fmt.Errorf("%w: length %d", ErrSetup, length)
	}

	p := &Player{
		body:   make([]grid.Position, 0, length),
		facing: Up,
	}
	pos := c.grid.Center()
	for i := range length {
		if ev := c.grid.AllocateAt(pos, grid.Snake); ev.Kind != grid.Allocated {
			if ev.Kind == grid.Collision {
				c.grid.AllocateAt(pos, ev.Existing)
			}
			c.release(p)
			return nil, fmt.Errorf("%w: segment %d at %s: %s", ErrSetup, i, pos, ev)
		}
		p.body = append(p.body, pos)

		if i == length-1 {
			break
		}
		next, err := Navigate(pos, Up)
		if err != nil {
			c.release(p)
			return nil, fmt.Errorf("%w: %w", ErrSetup, err)
		}
		pos = next
	}

	c.logger.Debug("player added", "head", p.Head(), "length", p.Len())
	return p, nil
}

// release frees every cell of a partially placed player.
func (c *Controller) release(p *Player) {
	for _, seg := range p.body {
		c.grid.Free(seg)
	}
}

// MovePlayer advances p one cell in direction d.
// The tail cell is freed before the head is allocated, so moving into the
// cell the tail just left is allowed. A missing collision rule is returned
// as an error wrapping rules.ErrRuleMissing.
// A crash or a missing rule leaves the player and the grid as they were
// before the step.
func (c *Controller) MovePlayer(p *Player, d Direction) (Move, error) {
	next, err := Navigate(p.Head(), d)
	if err != nil {
		return Move{Event: grid.OutOfBoundsEvent(), Outcome: rules.OutcomeCrash}, err
	}

	facing := p.facing
	vacated := p.advance(next)
	p.facing = d
	c.grid.Free(vacated)
	ev := c.grid.AllocateAt(next, grid.Snake)

	move := Move{Next: next, Vacated: vacated, Event: ev}
	move.Outcome, err = rules.Check(grid.Snake, ev)
	if err != nil {
		c.logger.Error("collision rule missing", "head", next, "event", ev, "err", err)
		c.undo(p, move, facing)
		return move, err
	}
	if move.Outcome.Fatal() {
		c.undo(p, move, facing)
	}

	c.logger.Debug("player moved", "dir", d, "head", next, "event", ev, "outcome", move.Outcome)
	return move, nil
}

// undo rolls back a rejected move.
func (c *Controller) undo(p *Player, move Move, facing Direction) {
	if move.Event.Kind == grid.Collision {
		c.grid.AllocateAt(move.Next, move.Event.Existing)
	}
	p.retreat(move.Vacated)
	p.facing = facing
	c.grid.AllocateAt(move.Vacated, grid.Snake)
}

// Grow re-attaches the cell vacated by the last move as the new tail.
func (c *Controller) Grow(p *Player, vacated grid.Position) grid.AllocationEvent {
	ev := c.grid.AllocateAt(vacated, grid.Snake)
	if ev.Kind == grid.Allocated {
		p.regrow(vacated)
	}
	return ev
}
