package board

import "math/bits"

// Bitboard is a 64-bit set of squares. Bit enumeration goes bottom to top,
// left to right: a1 is bit 0, h1 is bit 7, a8 is bit 56.
// A Bitboard has no identity beyond its bit pattern and is copied by value.
type Bitboard uint64

// BitOf returns a bitboard with only the given square set.
func BitOf(sq Square) Bitboard { return 1 << uint(sq) }

// Get reports whether the square is in the set.
func (b Bitboard) Get(sq Square) bool { return b&BitOf(sq) != 0 }

// GetCoords reports whether the square at (row, col) is in the set.
func (b Bitboard) GetCoords(row, col int) bool { return b.Get(SquareFromCoords(row, col)) }

// Set adds the square to the set.
func (b *Bitboard) Set(sq Square) { *b |= BitOf(sq) }

// SetIf adds the square to the set if cond is true. It never resets.
func (b *Bitboard) SetIf(sq Square, cond bool) {
	if cond {
		b.Set(sq)
	}
}

// Clear removes the square from the set.
func (b *Bitboard) Clear(sq Square) { *b &^= BitOf(sq) }

// Empty reports whether no square is set.
func (b Bitboard) Empty() bool { return b == 0 }

// Intersects reports whether the two sets have any square in common.
func (b Bitboard) Intersects(other Bitboard) bool { return b&other != 0 }

// Count returns the exact number of set squares.
func (b Bitboard) Count() int { return bits.OnesCount64(uint64(b)) }

// CountFew returns the same value as Count using a loop proportional to the
// number of set bits. Useful on sparse sets such as per-role piece boards.
func (b Bitboard) CountFew() int {
	count := 0
	for x := uint64(b); x != 0; x &= x - 1 {
		count++
	}
	return count
}

// Mirror flips the white and black halves of the board: every rank is moved
// to the opposite side while files stay put. Mirror is its own inverse.
func (b Bitboard) Mirror() Bitboard {
	return Bitboard(bits.ReverseBytes64(uint64(b)))
}

// PopLSB removes the lowest set square from the set and returns it.
// Repeated calls on a copy visit every set square exactly once, in
// ascending order. Must not be called on an empty set.
func (b *Bitboard) PopLSB() Square {
	sq := Square(bits.TrailingZeros64(uint64(*b)))
	*b &= *b - 1
	return sq
}

// String renders the set as an 8x8 grid, rank 8 first, for debugging.
func (b Bitboard) String() string {
	buf := make([]byte, 0, 72)
	for row := 7; row >= 0; row-- {
		for col := 0; col < 8; col++ {
			if b.GetCoords(row, col) {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
