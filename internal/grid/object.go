package grid

// Object is the content of a cell.
type Object uint8

const (
	// Empty marks a cell with nothing in it. Seeded grids store it explicitly.
	Empty Object = iota
	Snake
	Apple
	Wall
)

// String returns a human-readable name for the object.
func (o Object) String() string {
	switch o {
	case Empty:
		return "empty"
	case Snake:
		return "snake"
	case Apple:
		return "apple"
	case Wall:
		return "wall"
	default:
		return "unknown"
	}
}
