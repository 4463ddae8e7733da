package grid

import (
	"slices"
	"testing"
)

func TestPositionIsOrdinal(t *testing.T) {
	leftUp := Pos(1, 1)
	rightDown := Pos(2, 2)

	if !leftUp.Less(rightDown) {
		t.Errorf("%v should sort before %v", leftUp, rightDown)
	}
	if leftUp.Compare(leftUp) != 0 {
		t.Errorf("%v should compare equal to itself", leftUp)
	}
	if rightDown.Compare(leftUp) != 1 {
		t.Errorf("%v should sort after %v", rightDown, leftUp)
	}
}

func TestPositionCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Position
		expected int
	}{
		{"equal", Pos(3, 4), Pos(3, 4), 0},
		{"same row, left of", Pos(2, 4), Pos(3, 4), -1},
		{"same row, right of", Pos(5, 4), Pos(3, 4), 1},
		{"row above wins over column", Pos(9, 1), Pos(1, 2), -1},
		{"row below wins over column", Pos(1, 3), Pos(9, 2), 1},
		// Greater on one axis only: the old quasi-order called both directions Less.
		{"mixed axes", Pos(1, 2), Pos(2, 1), 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Compare(tc.b); got != tc.expected {
				t.Errorf("Compare(%v, %v) = %d, expected %d", tc.a, tc.b, got, tc.expected)
			}
			// Antisymmetry
			if got := tc.b.Compare(tc.a); got != -tc.expected {
				t.Errorf("Compare(%v, %v) = %d, expected %d", tc.b, tc.a, got, -tc.expected)
			}
		})
	}
}

func TestPositionCompareIsTotal(t *testing.T) {
	var all []Position
	for y := uint8(1); y <= 4; y++ {
		for x := uint8(1); x <= 4; x++ {
			all = append(all, Pos(x, y))
		}
	}

	shuffled := slices.Clone(all)
	slices.Reverse(shuffled)
	slices.SortFunc(shuffled, Position.Compare)

	if !slices.Equal(shuffled, all) {
		t.Errorf("sorted positions = %v, expected row-major %v", shuffled, all)
	}

	// Transitivity over every triple
	for _, a := range all {
		for _, b := range all {
			for _, c := range all {
				if a.Less(b) && b.Less(c) && !a.Less(c) {
					t.Fatalf("ordering not transitive: %v < %v < %v", a, b, c)
				}
			}
		}
	}
}

func TestPositionString(t *testing.T) {
	if got := Pos(3, 12).String(); got != "(3, 12)" {
		t.Errorf("String() = %q, expected %q", got, "(3, 12)")
	}
}
