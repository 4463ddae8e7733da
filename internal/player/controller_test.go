package player

import (
	"errors"
	"slices"
	"testing"

	"github.com/alan-andrade/snake2/internal/grid"
	"github.com/alan-andrade/snake2/internal/rules"
)

func TestAddPlayer(t *testing.T) {
	g := grid.New(10, 10)
	c := NewController(g, nil)

	p, err := c.AddPlayer(3)
	if err != nil {
		t.Fatalf("AddPlayer() failed: %v", err)
	}

	expected := []grid.Position{grid.Pos(5, 5), grid.Pos(5, 4), grid.Pos(5, 3)}
	body := p.Body()
	if len(body) != len(expected) {
		t.Fatalf("Body() = %v, expected %v", body, expected)
	}
	for i := range expected {
		if body[i] != expected[i] {
			t.Errorf("Body()[%d] = %v, expected %v", i, body[i], expected[i])
		}
		if object, _ := g.ObjectAt(expected[i]); object != grid.Snake {
			t.Errorf("ObjectAt(%v) = %v, expected snake", expected[i], object)
		}
	}

	if p.Head() != grid.Pos(5, 3) || p.Tail() != grid.Pos(5, 5) {
		t.Errorf("Head/Tail = %v/%v, expected (5, 3)/(5, 5)", p.Head(), p.Tail())
	}
	if p.Facing() != Up {
		t.Errorf("Facing() = %v, expected up", p.Facing())
	}
}

func TestAddPlayerSetupErrors(t *testing.T) {
	tests := []struct {
		name   string
		grid   func() *grid.Grid
		length int
	}{
		{"zero length", func() *grid.Grid { return grid.New(10, 10) }, 0},
		{"center off the board", func() *grid.Grid { return grid.New(1, 1) }, 1},
		{"board too short", func() *grid.Grid { return grid.New(4, 4) }, 3},
		{"seed point occupied", func() *grid.Grid {
			g := grid.New(10, 10)
			g.AllocateAt(grid.Pos(5, 4), grid.Apple)
			return g
		}, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := tc.grid()
			occupied := g.Occupied()
			before := g.OccupiedCount()

			_, err := NewController(g, nil).AddPlayer(tc.length)
			if !errors.Is(err, ErrSetup) {
				t.Fatalf("AddPlayer() error = %v, expected ErrSetup", err)
			}
			if g.OccupiedCount() != before {
				t.Errorf("OccupiedCount() = %d, expected %d after failed setup", g.OccupiedCount(), before)
			}
			for _, pos := range occupied {
				if object, _ := g.ObjectAt(pos); object == grid.Snake {
					t.Errorf("failed setup left a snake at %v", pos)
				}
			}
		})
	}
}

func TestMovePlayer(t *testing.T) {
	g := grid.New(10, 10)
	c := NewController(g, nil)
	p, err := c.AddPlayer(3)
	if err != nil {
		t.Fatalf("AddPlayer() failed: %v", err)
	}

	move, err := c.MovePlayer(p, Right)
	if err != nil {
		t.Fatalf("MovePlayer() failed: %v", err)
	}

	if move.Next != grid.Pos(6, 3) || move.Vacated != grid.Pos(5, 5) {
		t.Errorf("Move = %+v, expected next (6, 3) vacated (5, 5)", move)
	}
	if move.Event.Kind != grid.Allocated || move.Outcome != rules.OutcomeAllocated {
		t.Errorf("Move event/outcome = %v/%v, expected allocated", move.Event, move.Outcome)
	}
	if g.Contains(move.Vacated) {
		t.Error("vacated tail cell should be freed")
	}
	if p.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", p.Len())
	}
	if g.OccupiedCount() != 3 {
		t.Errorf("OccupiedCount() = %d, expected 3", g.OccupiedCount())
	}
	if p.Facing() != Right {
		t.Errorf("Facing() = %v, expected right", p.Facing())
	}
}

func TestMovePlayerKeepsBodyConnected(t *testing.T) {
	g := grid.New(20, 20)
	c := NewController(g, nil)
	p, _ := c.AddPlayer(4)

	path := []Direction{Right, Right, Down, Down, Down, Left, Down, Right, Right}
	for _, d := range path {
		move, err := c.MovePlayer(p, d)
		if err != nil || move.Outcome != rules.OutcomeAllocated {
			t.Fatalf("MovePlayer(%v) = %+v, %v", d, move, err)
		}

		body := p.Body()
		for i := 1; i < len(body); i++ {
			dx := int(body[i].X) - int(body[i-1].X)
			dy := int(body[i].Y) - int(body[i-1].Y)
			if dx*dx+dy*dy != 1 {
				t.Fatalf("segments %v and %v are not adjacent", body[i-1], body[i])
			}
		}
		for _, seg := range body {
			if object, _ := g.ObjectAt(seg); object != grid.Snake {
				t.Fatalf("segment %v not on the grid", seg)
			}
		}
		if g.OccupiedCount() != p.Len() {
			t.Fatalf("OccupiedCount() = %d, expected %d", g.OccupiedCount(), p.Len())
		}
	}
}

func TestMovePlayerIntoVacatedTail(t *testing.T) {
	// A 4-long snake curled into a 2x2 square can chase its own tail.
	g := grid.New(10, 10)
	c := NewController(g, nil)
	p, _ := c.AddPlayer(3)

	if _, err := c.MovePlayer(p, Right); err != nil {
		t.Fatalf("MovePlayer() failed: %v", err)
	}
	move, err := c.MovePlayer(p, Down)
	if err != nil {
		t.Fatalf("MovePlayer() failed: %v", err)
	}
	c.Grow(p, move.Vacated)

	if p.Head() != grid.Pos(6, 4) || p.Tail() != grid.Pos(5, 4) {
		t.Fatalf("Head/Tail = %v/%v, expected (6, 4)/(5, 4)", p.Head(), p.Tail())
	}

	move, err = c.MovePlayer(p, Left)
	if err != nil {
		t.Fatalf("MovePlayer() failed: %v", err)
	}
	if move.Outcome != rules.OutcomeAllocated {
		t.Errorf("moving into the vacated tail = %v, expected allocated", move.Outcome)
	}
	if object, _ := g.ObjectAt(grid.Pos(5, 4)); object != grid.Snake {
		t.Errorf("ObjectAt((5, 4)) = %v, expected snake", object)
	}
}

func TestMovePlayerSelfCrash(t *testing.T) {
	g := grid.New(10, 10)
	c := NewController(g, nil)
	p, _ := c.AddPlayer(5)

	// Head at (5,1); turning back down runs into the neck.
	body := p.Body()
	move, err := c.MovePlayer(p, Down)
	if err != nil {
		t.Fatalf("MovePlayer() failed: %v", err)
	}
	if move.Event != grid.CollisionWith(grid.Snake) {
		t.Errorf("Event = %v, expected collision(snake)", move.Event)
	}
	if move.Outcome != rules.OutcomeCrash {
		t.Errorf("Outcome = %v, expected crash", move.Outcome)
	}
	assertUnmoved(t, g, p, body, Up)
}

// assertUnmoved checks that a rejected move left p and g untouched.
func assertUnmoved(t *testing.T, g *grid.Grid, p *Player, body []grid.Position, facing Direction) {
	t.Helper()

	if got := p.Body(); !slices.Equal(got, body) {
		t.Errorf("Body = %v, expected %v", got, body)
	}
	if p.Facing() != facing {
		t.Errorf("Facing = %s, expected %s", p.Facing(), facing)
	}
	for _, seg := range body {
		if object, _ := g.ObjectAt(seg); object != grid.Snake {
			t.Errorf("ObjectAt(%s) = %v, expected snake", seg, object)
		}
	}
	if g.OccupiedCount() != len(body) {
		t.Errorf("OccupiedCount() = %d, expected %d", g.OccupiedCount(), len(body))
	}
}

func TestMovePlayerRuleMissing(t *testing.T) {
	g := grid.New(10, 10)
	c := NewController(g, nil)
	p, _ := c.AddPlayer(3)
	unknown := grid.Object(99)
	g.AllocateAt(grid.Pos(5, 2), unknown)

	body := p.Body()
	move, err := c.MovePlayer(p, Up)
	if !errors.Is(err, rules.ErrRuleMissing) {
		t.Fatalf("MovePlayer() error = %v, expected ErrRuleMissing", err)
	}
	if move.Outcome != rules.OutcomeRuleMissing {
		t.Errorf("Outcome = %v, expected rule_missing", move.Outcome)
	}
	if object, _ := g.ObjectAt(grid.Pos(5, 2)); object != unknown {
		t.Errorf("ObjectAt(5, 2) = %v, expected the obstacle back", object)
	}
	g.Free(grid.Pos(5, 2))
	assertUnmoved(t, g, p, body, Up)
}

func TestMovePlayerEatsApple(t *testing.T) {
	g := grid.New(10, 10)
	c := NewController(g, nil)
	p, _ := c.AddPlayer(3)
	g.AllocateAt(grid.Pos(5, 2), grid.Apple)

	move, err := c.MovePlayer(p, Up)
	if err != nil {
		t.Fatalf("MovePlayer() failed: %v", err)
	}
	if move.Outcome != rules.OutcomeYum {
		t.Fatalf("Outcome = %v, expected yum", move.Outcome)
	}

	if ev := c.Grow(p, move.Vacated); ev.Kind != grid.Allocated {
		t.Fatalf("Grow() = %v, expected allocated", ev)
	}
	if p.Len() != 4 || p.Tail() != move.Vacated {
		t.Errorf("after Grow: len %d tail %v, expected 4 and %v", p.Len(), p.Tail(), move.Vacated)
	}
	if g.OccupiedCount() != 4 {
		t.Errorf("OccupiedCount() = %d, expected 4", g.OccupiedCount())
	}
}

func TestMovePlayerOffBoard(t *testing.T) {
	g := grid.New(10, 10)
	c := NewController(g, nil)
	p, _ := c.AddPlayer(5)

	// Head at (5,1): one more step up leaves the board.
	body := p.Body()
	move, err := c.MovePlayer(p, Up)
	if err != nil {
		t.Fatalf("MovePlayer() failed: %v", err)
	}
	if move.Event.Kind != grid.OutOfBounds || move.Outcome != rules.OutcomeCrash {
		t.Errorf("Move = %+v, expected out_of_bounds crash", move)
	}
	if p.Head() != grid.Pos(5, 1) {
		t.Errorf("Head = %v, expected to stay on (5, 1)", p.Head())
	}
	assertUnmoved(t, g, p, body, Up)

	// The rejected step can be retried with the same result.
	if move, _ = c.MovePlayer(p, Up); move.Event.Kind != grid.OutOfBounds {
		t.Errorf("retry event = %v, expected out_of_bounds", move.Event)
	}
	assertUnmoved(t, g, p, body, Up)
}

func TestWalledArenaScenario(t *testing.T) {
	// 4-wide, 10-tall field inside walls.
	g := grid.NewWalled(4, 10, false)
	c := NewController(g, nil)

	p, err := c.AddPlayer(3)
	if err != nil {
		t.Fatalf("AddPlayer() failed: %v", err)
	}

	for i := range 2 {
		move, err := c.MovePlayer(p, Right)
		if err != nil {
			t.Fatalf("move %d failed: %v", i+1, err)
		}
		if move.Event.Kind != grid.Allocated || move.Outcome != rules.OutcomeAllocated {
			t.Fatalf("move %d = %v/%v, expected allocated", i+1, move.Event, move.Outcome)
		}
	}

	move, err := c.MovePlayer(p, Right)
	if err != nil {
		t.Fatalf("third move failed: %v", err)
	}
	if move.Event != grid.CollisionWith(grid.Wall) {
		t.Errorf("third move event = %v, expected collision(wall)", move.Event)
	}
	if move.Outcome != rules.OutcomeCrash {
		t.Errorf("third move outcome = %v, expected crash", move.Outcome)
	}
	if object, _ := g.ObjectAt(move.Next); object != grid.Wall {
		t.Errorf("ObjectAt(%s) = %v, expected the wall to stay", move.Next, object)
	}
	if p.Head() == move.Next {
		t.Error("Head should not enter the wall")
	}
}

func TestSeededArenaScenario(t *testing.T) {
	g := grid.NewWalled(4, 10, true)
	c := NewController(g, nil)
	p, err := c.AddPlayer(3)
	if err != nil {
		t.Fatalf("AddPlayer() failed: %v", err)
	}

	var last Move
	for range 3 {
		last, _ = c.MovePlayer(p, Right)
	}
	if last.Outcome != rules.OutcomeCrash {
		t.Errorf("outcome = %v, expected crash", last.Outcome)
	}
}
