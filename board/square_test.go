package board

import "testing"

func TestSquareCoordinates(t *testing.T) {
	tests := []struct {
		str      string
		row, col int
	}{
		{"a1", 0, 0},
		{"h1", 0, 7},
		{"e4", 3, 4},
		{"a8", 7, 0},
		{"h8", 7, 7},
	}
	for _, tc := range tests {
		sq, err := ParseSquare(tc.str, false)
		if err != nil {
			t.Fatalf("ParseSquare(%q): %v", tc.str, err)
		}
		if sq.Row() != tc.row || sq.Col() != tc.col {
			t.Errorf("%q: got (%d, %d), want (%d, %d)", tc.str, sq.Row(), sq.Col(), tc.row, tc.col)
		}
		if sq.String() != tc.str {
			t.Errorf("round trip of %q: got %q", tc.str, sq.String())
		}
	}
}

func TestSquareMirror(t *testing.T) {
	for sq := Square(0); sq < 64; sq++ {
		m := sq.Mirror()
		if m.Col() != sq.Col() || m.Row() != 7-sq.Row() {
			t.Errorf("mirror of %v: got %v", sq, m)
		}
		if m.Mirror() != sq {
			t.Errorf("double mirror of %v: got %v", sq, m.Mirror())
		}
	}
}

func TestParseSquareBlackPerspective(t *testing.T) {
	sq, err := ParseSquare("e7", true)
	if err != nil {
		t.Fatalf("ParseSquare: %v", err)
	}
	if sq.String() != "e2" {
		t.Errorf("e7 from black's eyes: got %v, want e2", sq)
	}
}

func TestParseSquareRejectsGarbage(t *testing.T) {
	for _, str := range []string{"", "e", "e42", "i4", "e9", "4e", "a0"} {
		if _, err := ParseSquare(str, false); err == nil {
			t.Errorf("ParseSquare(%q): expected error", str)
		}
	}
}
