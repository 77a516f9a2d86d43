package board

import "errors"

// Promotion identifies the piece a pawn turns into on the last rank.
type Promotion uint8

const (
	PromotionNone Promotion = iota
	PromotionQueen
	PromotionRook
	PromotionBishop
	PromotionKnight
)

// Move is a packed (origin, destination, promotion) value:
//
//	bits 0..5   destination square
//	bits 6..11  origin square
//	bits 12..14 promotion
//
// A castling move is encoded with the destination equal to the castling
// rook's square ("king captures own rook"), which keeps the encoding exact
// for any starting rook file. GetLegacyMove converts to the conventional
// two-square king jump for external callers.
type Move uint16

const (
	moveToMask    Move = 0b0000000000111111
	moveFromMask  Move = 0b0000111111000000
	movePromoMask Move = 0b0111000000000000
)

// NewMove builds a move from origin and destination squares.
func NewMove(from, to Square) Move {
	return Move(to) | Move(from)<<6
}

// NewPromotionMove builds a pawn promotion move.
func NewPromotionMove(from, to Square, promotion Promotion) Move {
	return NewMove(from, to) | Move(promotion)<<12
}

// To returns the destination square.
func (m Move) To() Square { return Square(m & moveToMask) }

// From returns the origin square.
func (m Move) From() Square { return Square((m & moveFromMask) >> 6) }

// Promotion returns the promotion component, PromotionNone for most moves.
func (m Move) Promotion() Promotion { return Promotion((m & movePromoMask) >> 12) }

// Mirror flips both squares of the move vertically, re-expressing it from
// the opposite side's perspective. The promotion component is unchanged.
func (m Move) Mirror() Move { return m ^ 0b111000111000 }

// String returns the move in coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	res := m.From().String() + m.To().String()
	switch m.Promotion() {
	case PromotionQueen:
		return res + "q"
	case PromotionRook:
		return res + "r"
	case PromotionBishop:
		return res + "b"
	case PromotionKnight:
		return res + "n"
	}
	return res
}

var errBadMove = errors.New("invalid move notation")

// ParseMove converts coordinate notation ("e2e4", "e7e8q") to a Move. With
// black set, the squares are interpreted from black's perspective.
func ParseMove(str string, black bool) (Move, error) {
	if len(str) < 4 || len(str) > 5 {
		return 0, errBadMove
	}
	from, err := ParseSquare(str[0:2], black)
	if err != nil {
		return 0, err
	}
	to, err := ParseSquare(str[2:4], black)
	if err != nil {
		return 0, err
	}
	promotion := PromotionNone
	if len(str) == 5 {
		switch str[4] {
		case 'q':
			promotion = PromotionQueen
		case 'r':
			promotion = PromotionRook
		case 'b':
			promotion = PromotionBishop
		case 'n':
			promotion = PromotionKnight
		default:
			return 0, errBadMove
		}
	}
	return NewPromotionMove(from, to, promotion), nil
}
