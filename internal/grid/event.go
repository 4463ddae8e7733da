package grid

// EventKind classifies the result of a grid mutation.
type EventKind uint8

const (
	// Allocated means the object was stored in a free cell.
	Allocated EventKind = iota
	// Collision means the object was stored but displaced a previous occupant.
	Collision
	// OutOfBounds means the position is outside the board. Nothing changed.
	OutOfBounds
	// EmptySpace means a move was requested from a cell holding nothing.
	EmptySpace
)

// String returns a human-readable name for the kind.
func (k EventKind) String() string {
	switch k {
	case Allocated:
		return "allocated"
	case Collision:
		return "collision"
	case OutOfBounds:
		return "out_of_bounds"
	case EmptySpace:
		return "empty_space"
	default:
		return "unknown"
	}
}

// AllocationEvent is returned by every grid mutation.
// Existing is only meaningful when Kind is Collision.
type AllocationEvent struct {
	Kind     EventKind
	Existing Object
}

// AllocatedEvent returns an Allocated event.
func AllocatedEvent() AllocationEvent {
	return AllocationEvent{Kind: Allocated}
}

// CollisionWith returns a Collision event carrying the displaced object.
func CollisionWith(existing Object) AllocationEvent {
	return AllocationEvent{Kind: Collision, Existing: existing}
}

// OutOfBoundsEvent returns an OutOfBounds event.
func OutOfBoundsEvent() AllocationEvent {
	return AllocationEvent{Kind: OutOfBounds}
}

// EmptySpaceEvent returns an EmptySpace event.
func EmptySpaceEvent() AllocationEvent {
	return AllocationEvent{Kind: EmptySpace}
}

// String renders the event, e.g. "collision(wall)".
func (e AllocationEvent) String() string {
	if e.Kind == Collision {
		return "collision(" + e.Existing.String() + ")"
	}
	return e.Kind.String()
}
