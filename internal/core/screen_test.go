package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(36, 24)

	if s.Width() != 36 || s.Height() != 24 {
		t.Fatalf("dimensions = %dx%d, expected 36x24", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetColor(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColor(3, 4, '▼', ColorOrange)
	c := s.GetCell(3, 4)
	if c.Rune != '▼' || c.Color != ColorOrange {
		t.Errorf("GetCell(3, 4) = %+v, expected orange ▼", c)
	}

	// Plain Set resets the colour
	s.Set(3, 4, 'x')
	if c := s.GetCell(3, 4); c.Color != ColorDefault {
		t.Errorf("Set should store default colour, got %v", c.Color)
	}

	// Out of bounds is silent
	s.SetColor(-1, 0, 'A', ColorRed)
	s.SetColor(0, 100, 'A', ColorRed)
	if s.Get(-1, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenDrawTextColor(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextColor(18, 1, "Carrots: 3", ColorBrightMagenta)

	if s.Get(18, 1) != 'C' || s.Get(19, 1) != 'a' {
		t.Errorf("text should be clipped at the right edge, row = %q", s.Row(1))
	}
	if s.GetCell(19, 1).Color != ColorBrightMagenta {
		t.Error("text colour not applied")
	}
}

func TestScreenDrawTextCenteredMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "▲▲", ColorYellow)

	if s.Get(4, 0) != '▲' || s.Get(5, 0) != '▲' {
		t.Errorf("centered text misplaced: %q", s.Row(0))
	}
	if s.GetCell(4, 0).Color != ColorYellow {
		t.Error("centered text colour not applied")
	}
}

func TestScreenDrawVLine(t *testing.T) {
	s := NewScreen(4, 6)
	s.DrawVLine(2, 1, 10, '│', ColorGray)

	if s.Get(2, 0) != ' ' {
		t.Error("line should start at y=1")
	}
	for y := 1; y < 6; y++ {
		if c := s.GetCell(2, y); c.Rune != '│' || c.Color != ColorGray {
			t.Errorf("cell (2, %d) = %+v, expected gray │", y, c)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColor(0, 0, "Hello", ColorGreen)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("after resize dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved, row 0 = %q", s.Row(0))
	}
	if s.GetCell(0, 0).Color != ColorGreen {
		t.Error("colour should be preserved across resize")
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved after enlarging, row 0 = %q", s.Row(0))
	}
	if s.Row(-1) != strings.Repeat(" ", 15) {
		t.Error("out of bounds row should be spaces")
	}
}
