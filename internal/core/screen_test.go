package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	s.SetColored(2, 3, '@', ColorBrightGreen)
	if cell := s.GetCell(2, 3); cell.Rune != '@' || cell.Color != ColorBrightGreen {
		t.Errorf("GetCell(2, 3) = %+v, expected bright green '@'", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	for y := range 10 {
		for x := range 10 {
			s.SetColored(x, y, 'X', ColorRed)
		}
	}

	s.Clear()

	for y := range 10 {
		for x := range 10 {
			if cell := s.GetCell(x, y); cell != blank {
				t.Fatalf("After Clear, expected blank at (%d, %d), got %+v", x, y, cell)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(7, 1, "hello")

	if got := s.Row(1); got != "       hel" {
		t.Errorf("Row(1) = %q, expected clipped text", got)
	}

	s.DrawTextCentered(0, "ab")
	if got := s.Row(0); got != "    ab    " {
		t.Errorf("Row(0) = %q, expected centered text", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.Fill('x')
	s.DrawBox(0, 0, 6, 4)

	expected := strings.Join([]string{
		"+----+",
		"|    |",
		"|    |",
		"+----+",
	}, "\n")
	if got := s.String(); got != expected {
		t.Errorf("String() =\n%s\nexpected\n%s", got, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.Set(1, 1, 'A')
	s.Set(4, 4, 'B')

	s.Resize(3, 3)
	if s.Width() != 3 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 3x3", s.Width(), s.Height())
	}
	if s.Get(1, 1) != 'A' {
		t.Error("Resize should preserve content inside the new bounds")
	}

	s.Resize(6, 6)
	if s.Get(1, 1) != 'A' || s.Get(4, 4) != ' ' {
		t.Error("growing should keep old content and blank the rest")
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 1, "abcd")

	if got := s.Row(1); got != "abcd" {
		t.Errorf("Row(1) = %q, expected %q", got, "abcd")
	}
	if got := s.Row(5); got != "    " {
		t.Errorf("Row(5) = %q, expected blanks", got)
	}
}

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionUp)
	f.Set(ActionPause)
	if !f.Has(ActionUp) || !f.Has(ActionPause) || f.Has(ActionDown) {
		t.Errorf("Has() mismatch: %v", f.Actions)
	}

	f.Clear()
	if f.Has(ActionUp) {
		t.Error("Clear() should remove all actions")
	}
}
