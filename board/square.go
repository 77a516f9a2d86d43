package board

import "errors"

// Square identifies one of the 64 board cells as a single number:
// bottom to top, left to right. a1 is 0, h1 is 7, a8 is 56, h8 is 63.
// Only the low six bits are ever meaningful.
type Square int

// Board geometry constants. Ranks and files are 0-based.
const (
	rank1 = 0
	rank3 = 2
	rank4 = 3
	rank5 = 4
	rank6 = 5
	rank8 = 7

	fileA = 0
	fileE = 4
	fileH = 7
)

// Squares on the castling rank referenced by name.
const (
	squareA1 Square = 0
	squareC1 Square = 2
	squareD1 Square = 3
	squareE1 Square = 4
	squareF1 Square = 5
	squareG1 Square = 6
	squareH1 Square = 7
)

// SquareFromCoords builds a Square from a 0-based row (bottom to top) and
// column (left to right).
func SquareFromCoords(row, col int) Square {
	return Square(row*8 + col)
}

// Row returns the 0-based rank of the square, bottom to top.
func (s Square) Row() int { return int(s) / 8 }

// Col returns the 0-based file of the square, left to right.
func (s Square) Col() int { return int(s) % 8 }

// Mirror flips the square vertically: row becomes 7-row, column is unchanged.
func (s Square) Mirror() Square { return s ^ 0b111000 }

// String returns the square in algebraic notation, e.g. "e4".
func (s Square) String() string {
	return string([]byte{'a' + byte(s.Col()), '1' + byte(s.Row())})
}

var errBadSquare = errors.New("invalid square notation")

// ParseSquare converts algebraic notation ("e4") to a Square. With black set,
// the notation is interpreted from black's perspective, so the row is flipped.
func ParseSquare(str string, black bool) (Square, error) {
	if len(str) != 2 {
		return 0, errBadSquare
	}
	file, rank := str[0], str[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return 0, errBadSquare
	}
	row := int(rank - '1')
	if black {
		row = int('8' - rank)
	}
	return SquareFromCoords(row, int(file-'a')), nil
}

// validCoord reports whether a single row or column index is on the board.
func validCoord(x int) bool { return x >= 0 && x < 8 }

// validCoords reports whether (row, col) is on the board.
func validCoords(row, col int) bool {
	return row >= 0 && col >= 0 && row < 8 && col < 8
}
