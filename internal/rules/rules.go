// Package rules decides what a collision between two grid objects means for
// the game. The table is a closed match over mover and obstacle kinds: any
// pair it does not name resolves to OutcomeRuleMissing, never to success.
package rules

import (
	"errors"
	"fmt"

	"github.com/alan-andrade/snake2/internal/grid"
)

// ErrRuleMissing is returned when two objects collide and no rule covers the pair.
var ErrRuleMissing = errors.New("rules: no collision rule")

// Outcome is the game-level meaning of an allocation.
type Outcome uint8

const (
	// OutcomeAllocated means the move landed on a free cell.
	OutcomeAllocated Outcome = iota
	// OutcomeYum means the mover ate what was there.
	OutcomeYum
	// OutcomeCrash ends the session.
	OutcomeCrash
	// OutcomeRuleMissing means the pair has no defined resolution.
	OutcomeRuleMissing
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeAllocated:
		return "allocated"
	case OutcomeYum:
		return "yum"
	case OutcomeCrash:
		return "crash"
	case OutcomeRuleMissing:
		return "rule_missing"
	default:
		return "unknown"
	}
}

// Fatal reports whether the outcome ends the session.
func (o Outcome) Fatal() bool {
	return o == OutcomeCrash
}

// HandleCollision resolves mover landing on a cell held by obstacle.
func HandleCollision(mover, obstacle grid.Object) Outcome {
	switch mover {
	case grid.Snake:
		switch obstacle {
		case grid.Snake, grid.Wall:
			return OutcomeCrash
		case grid.Apple:
			return OutcomeYum
		}
	}
	return OutcomeRuleMissing
}

// Resolve maps an allocation event produced by placing mover into an outcome.
// Allocated passes through, Collision goes through HandleCollision, and the
// remaining kinds mean the mover left the board, which is a crash.
func Resolve(mover grid.Object, ev grid.AllocationEvent) Outcome {
	switch ev.Kind {
	case grid.Allocated:
		return OutcomeAllocated
	case grid.Collision:
		return HandleCollision(mover, ev.Existing)
	case grid.OutOfBounds, grid.EmptySpace:
		return OutcomeCrash
	default:
		return OutcomeRuleMissing
	}
}

// Check is Resolve that also returns ErrRuleMissing, wrapped with the
// offending pair, when the outcome is OutcomeRuleMissing.
func Check(mover grid.Object, ev grid.AllocationEvent) (Outcome, error) {
	outcome := Resolve(mover, ev)
	if outcome == OutcomeRuleMissing {
		return outcome, fmt.Errorf("%w: %s onto %s", ErrRuleMissing, mover, ev)
	}
	return outcome, nil
}
