package grid

import (
	"fmt"
	"math"
	"math/rand"
	"slices"
)

// Grid is a bounded sparse map from Position to Object.
// At most one object occupies a cell at a time.
type Grid struct {
	cells  map[Position]Object
	width  uint8
	height uint8
	seeded bool // every in-bounds cell holds at least Empty
}

// New creates an empty grid of the given size.
// Panics if either dimension is zero.
func New(width, height uint8) *Grid {
	if width == 0 || height == 0 {
		panic(fmt.Sprintf("grid: invalid size %dx%d", width, height))
	}
	return &Grid{
		cells:  make(map[Position]Object),
		width:  width,
		height: height,
	}
}

// NewSeeded creates a grid whose cells all start holding the Empty sentinel.
func NewSeeded(width, height uint8) *Grid {
	g := New(width, height)
	g.seeded = true
	for y := 1; y <= int(height); y++ {
		for x := 1; x <= int(width); x++ {
			g.cells[Pos(uint8(x), uint8(y))] = Empty
		}
	}
	return g
}

// NewWalled creates a playing field of innerW x innerH cells surrounded by a
// ring of walls. The resulting grid is (innerW+2) x (innerH+2).
func NewWalled(innerW, innerH uint8, seeded bool) *Grid {
	if innerW == 0 || innerH == 0 || innerW > math.MaxUint8-2 || innerH > math.MaxUint8-2 {
		panic(fmt.Sprintf("grid: invalid field size %dx%d", innerW, innerH))
	}
	w, h := innerW+2, innerH+2
	var g *Grid
	if seeded {
		g = NewSeeded(w, h)
	} else {
		g = New(w, h)
	}
	for x := 1; x <= int(w); x++ {
		g.cells[Pos(uint8(x), 1)] = Wall
		g.cells[Pos(uint8(x), h)] = Wall
	}
	for y := 2; y < int(h); y++ {
		g.cells[Pos(1, uint8(y))] = Wall
		g.cells[Pos(w, uint8(y))] = Wall
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() uint8 {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() uint8 {
	return g.height
}

// Seeded reports whether the grid stores Empty explicitly.
func (g *Grid) Seeded() bool {
	return g.seeded
}

// InBounds returns true if 1 <= x <= width and 1 <= y <= height.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 1 && p.X <= g.width && p.Y >= 1 && p.Y <= g.height
}

// Center returns (width/2, height/2) using floor division.
func (g *Grid) Center() Position {
	return Pos(g.width/2, g.height/2)
}

// AllocateAt stores object at p.
// Out-of-bounds positions are rejected with no mutation. An occupied cell is
// overwritten and the displaced object is reported as a Collision; deciding
// whether that was allowed is the caller's job.
func (g *Grid) AllocateAt(p Position, object Object) AllocationEvent {
	if !g.InBounds(p) {
		return OutOfBoundsEvent()
	}

	existing, occupied := g.cells[p]
	g.cells[p] = object
	if occupied && existing != Empty {
		return CollisionWith(existing)
	}
	return AllocatedEvent()
}

// MoveObject removes whatever occupies from and allocates it at to.
// Returns EmptySpace, without touching to, if from holds nothing.
func (g *Grid) MoveObject(from, to Position) AllocationEvent {
	object, ok := g.ObjectAt(from)
	if !ok {
		return EmptySpaceEvent()
	}
	g.Free(from)
	return g.AllocateAt(to, object)
}

// Free clears the cell at p. Out-of-bounds positions are ignored.
func (g *Grid) Free(p Position) {
	if !g.InBounds(p) {
		return
	}
	if g.seeded {
		g.cells[p] = Empty
		return
	}
	delete(g.cells, p)
}

// ObjectAt returns the object at p.
// Returns false for out-of-bounds, unoccupied and Empty cells.
func (g *Grid) ObjectAt(p Position) (Object, bool) {
	if !g.InBounds(p) {
		return Empty, false
	}
	object, ok := g.cells[p]
	if !ok || object == Empty {
		return Empty, false
	}
	return object, true
}

// Contains reports whether a non-Empty object occupies p.
func (g *Grid) Contains(p Position) bool {
	_, ok := g.ObjectAt(p)
	return ok
}

// OccupiedCount returns the number of cells holding a non-Empty object.
func (g *Grid) OccupiedCount() int {
	count := 0
	for _, object := range g.cells {
		if object != Empty {
			count++
		}
	}
	return count
}

// Occupied returns all occupied positions in row-major order.
func (g *Grid) Occupied() []Position {
	positions := make([]Position, 0, len(g.cells))
	for p, object := range g.cells {
		if object != Empty {
			positions = append(positions, p)
		}
	}
	slices.SortFunc(positions, Position.Compare)
	return positions
}

// RandomFree picks a uniformly random unoccupied in-bounds cell.
// Returns false if the board is full.
func (g *Grid) RandomFree(rng *rand.Rand) (Position, bool) {
	free := make([]Position, 0, int(g.width)*int(g.height)-g.OccupiedCount())
	for y := 1; y <= int(g.height); y++ {
		for x := 1; x <= int(g.width); x++ {
			p := Pos(uint8(x), uint8(y))
			if !g.Contains(p) {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		return Position{}, false
	}
	return free[rng.Intn(len(free))], true
}
