package player

import (
	"errors"
	"testing"

	"github.com/alan-andrade/snake2/internal/grid"
)

func TestNavigate(t *testing.T) {
	from := grid.Pos(5, 5)
	tests := []struct {
		dir      Direction
		expected grid.Position
	}{
		{Up, grid.Pos(5, 4)},
		{Down, grid.Pos(5, 6)},
		{Left, grid.Pos(4, 5)},
		{Right, grid.Pos(6, 5)},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			got, err := Navigate(from, tc.dir)
			if err != nil {
				t.Fatalf("Navigate() error: %v", err)
			}
			if got != tc.expected {
				t.Errorf("Navigate(%v, %v) = %v, expected %v", from, tc.dir, got, tc.expected)
			}
		})
	}
}

func TestNavigateOffBoard(t *testing.T) {
	tests := []struct {
		name string
		from grid.Position
		dir  Direction
	}{
		{"up from row 0", grid.Pos(3, 0), Up},
		{"left from column 0", grid.Pos(0, 3), Left},
		{"down from row 255", grid.Pos(3, 255), Down},
		{"right from column 255", grid.Pos(255, 3), Right},
		{"unknown direction", grid.Pos(3, 3), Direction(9)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Navigate(tc.from, tc.dir)
			if err == nil {
				t.Fatalf("Navigate(%v, %v) = %v, expected an error", tc.from, tc.dir, got)
			}
			if tc.dir <= Right && !errors.Is(err, ErrOffBoard) {
				t.Errorf("Navigate() error = %v, expected ErrOffBoard", err)
			}
		})
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := [][2]Direction{{Up, Down}, {Down, Up}, {Left, Right}, {Right, Left}}
	for _, pair := range pairs {
		if got := pair[0].Opposite(); got != pair[1] {
			t.Errorf("%v.Opposite() = %v, expected %v", pair[0], got, pair[1])
		}
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		got, err := ParseDirection(" " + d.String() + " ")
		if err != nil || got != d {
			t.Errorf("ParseDirection(%q) = %v, %v", d.String(), got, err)
		}
	}
	if _, err := ParseDirection("north"); err == nil {
		t.Error("ParseDirection(\"north\") should fail")
	}
}
