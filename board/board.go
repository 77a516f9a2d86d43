package board

import "strings"

// pawnMask covers the squares a real pawn can stand on. The first and last
// rank bits of the pawn set are phantom markers meaning "en-passant capture
// of this file is currently available", not actual pawns.
const pawnMask Bitboard = 0x00FFFFFFFFFFFF00

// Board holds a chess position, always stored from the perspective of the
// side to move: "ours" is the mover. A queen is represented as membership in
// both the rook and bishop sets; knights are the occupied squares belonging
// to no explicit category. Boards are plain values: copy before ApplyMove to
// branch, compare with == for bit-for-bit equality.
type Board struct {
	ours   Bitboard
	theirs Bitboard

	rooks   Bitboard // rooks and queens
	bishops Bitboard // bishops and queens
	pawns   Bitboard // pawns, plus phantom en-passant markers on ranks 1/8

	ourKing   Square
	theirKing Square

	castling Castling

	// flipped records that the stored orientation is black's: the board
	// has been mirrored so that the side to move is "ours". External
	// consumers needing absolute color must consult this flag rather than
	// assume storage matches input color.
	flipped bool
}

// Mirror re-expresses the board from the opposite side's perspective:
// every piece set is flipped vertically and ours/theirs swap roles.
func (b *Board) Mirror() {
	b.ours, b.theirs = b.theirs.Mirror(), b.ours.Mirror()
	b.rooks = b.rooks.Mirror()
	b.bishops = b.bishops.Mirror()
	b.pawns = b.pawns.Mirror()
	b.ourKing, b.theirKing = b.theirKing.Mirror(), b.ourKing.Mirror()
	b.castling.Mirror()
	b.flipped = !b.flipped
}

// Ours returns the side to move's piece set.
func (b *Board) Ours() Bitboard { return b.ours }

// Theirs returns the opponent's piece set.
func (b *Board) Theirs() Bitboard { return b.theirs }

// Pawns returns all real pawns, phantom markers excluded.
func (b *Board) Pawns() Bitboard { return b.pawns & pawnMask }

// EnPassant returns the phantom en-passant markers on ranks 1 and 8.
func (b *Board) EnPassant() Bitboard { return b.pawns &^ pawnMask }

// Rooks returns the rooks of both sides, queens excluded.
func (b *Board) Rooks() Bitboard { return b.rooks &^ b.bishops }

// Bishops returns the bishops of both sides, queens excluded.
func (b *Board) Bishops() Bitboard { return b.bishops &^ b.rooks }

// Queens returns the queens of both sides.
func (b *Board) Queens() Bitboard { return b.rooks & b.bishops }

// Knights returns the knights of both sides: occupied squares that belong
// to no other category.
func (b *Board) Knights() Bitboard {
	return (b.ours | b.theirs) &^
		(b.rooks | b.bishops | (b.pawns & pawnMask) | BitOf(b.ourKing) | BitOf(b.theirKing))
}

// Kings returns both king squares as a set.
func (b *Board) Kings() Bitboard { return BitOf(b.ourKing) | BitOf(b.theirKing) }

// OurKing returns the side to move's king square.
func (b *Board) OurKing() Square { return b.ourKing }

// TheirKing returns the opponent's king square.
func (b *Board) TheirKing() Square { return b.theirKing }

// CastlingRights returns the castling record.
func (b *Board) CastlingRights() Castling { return b.castling }

// Flipped reports whether the stored orientation is black's.
func (b *Board) Flipped() bool { return b.flipped }

// theirKnights returns the opponent pieces that move like knights.
func (b *Board) theirKnights() Bitboard {
	return b.theirs &^ (BitOf(b.theirKing) | b.rooks | b.bishops | (b.pawns & pawnMask))
}

// IsUnderAttack reports whether the opponent attacks the given square.
func (b *Board) IsUnderAttack(sq Square) bool {
	row, col := sq.Row(), sq.Col()
	// King.
	krow, kcol := b.theirKing.Row(), b.theirKing.Col()
	if abs(krow-row) <= 1 && abs(kcol-col) <= 1 {
		return true
	}
	occupancy := b.ours | b.theirs
	// Rooks and queens.
	if rookAttacksFor(sq, occupancy).Intersects(b.theirs & b.rooks) {
		return true
	}
	// Bishops and queens.
	if bishopAttacksFor(sq, occupancy).Intersects(b.theirs & b.bishops) {
		return true
	}
	// Pawns.
	if pawnAttacks[sq].Intersects(b.theirs & b.pawns) {
		return true
	}
	// Knights.
	return knightAttacks[sq].Intersects(b.theirKnights())
}

// IsUnderCheck reports whether the side to move's king is attacked.
func (b *Board) IsUnderCheck() bool { return b.IsUnderAttack(b.ourKing) }

var promotions = [4]Promotion{
	PromotionQueen, PromotionRook, PromotionBishop, PromotionKnight,
}

// GeneratePseudolegalMoves enumerates every move obeying piece-movement
// rules for the side to move, before king-safety filtering. King step moves
// into attacked squares are already excluded here (cheaper than deferring),
// and castling candidates have their path emptiness and transit-attack
// conditions verified; the king's landing square is left to the legality
// phase.
func (b *Board) GeneratePseudolegalMoves() []Move {
	result := make([]Move, 0, 60)
	occupancy := b.ours | b.theirs
	for rest := b.ours; rest != 0; {
		source := rest.PopLSB()
		// King.
		if source == b.ourKing {
			for targets := kingAttacks[source] &^ b.ours; targets != 0; {
				destination := targets.PopLSB()
				if b.IsUnderAttack(destination) {
					continue
				}
				result = append(result, NewMove(source, destination))
			}
			result = b.appendCastlings(result)
			continue
		}
		processed := false
		// Rooks and queens.
		if b.rooks.Get(source) {
			processed = true
			for targets := rookAttacksFor(source, occupancy) &^ b.ours; targets != 0; {
				result = append(result, NewMove(source, targets.PopLSB()))
			}
		}
		// Bishops and queens.
		if b.bishops.Get(source) {
			processed = true
			for targets := bishopAttacksFor(source, occupancy) &^ b.ours; targets != 0; {
				result = append(result, NewMove(source, targets.PopLSB()))
			}
		}
		if processed {
			continue
		}
		// Pawns.
		if (b.pawns & pawnMask).Get(source) {
			row, col := source.Row(), source.Col()
			// Forward moves.
			destination := SquareFromCoords(row+1, col)
			if !occupancy.Get(destination) {
				if row+1 != rank8 {
					result = append(result, NewMove(source, destination))
					if row+1 == rank3 {
						// Maybe it is possible to move two squares.
						double := SquareFromCoords(rank4, col)
						if !occupancy.Get(double) {
							result = append(result, NewMove(source, double))
						}
					}
				} else {
					for _, promotion := range promotions {
						result = append(result, NewPromotionMove(source, destination, promotion))
					}
				}
			}
			// Captures.
			for _, direction := range [2]int{-1, 1} {
				dstCol := col + direction
				if !validCoord(dstCol) {
					continue
				}
				destination := SquareFromCoords(row+1, dstCol)
				if b.theirs.Get(destination) {
					if row+1 == rank8 {
						for _, promotion := range promotions {
							result = append(result, NewPromotionMove(source, destination, promotion))
						}
					} else {
						result = append(result, NewMove(source, destination))
					}
				} else if row+1 == rank6 && b.pawns.GetCoords(rank8, dstCol) {
					// En passant. A "pawn" on the opponent's last rank
					// means the capture is available on that file; the
					// phantom is reset in ApplyMove.
					result = append(result, NewMove(source, destination))
				}
			}
			continue
		}
		// Knights.
		for targets := knightAttacks[source] &^ b.ours; targets != 0; {
			result = append(result, NewMove(source, targets.PopLSB()))
		}
	}
	return result
}

// appendCastlings emits the available castling candidates, encoded as the
// king capturing its own rook.
func (b *Board) appendCastlings(result []Move) []Move {
	if b.ourKing.Row() != rank1 {
		return result
	}
	king := b.ourKing.Col()
	// The king's destination square is not checked for attacks here; the
	// legality phase simulates the full castling.
	if b.castling.WeCanCastleQueenside() {
		qrook := b.castling.QueensideRook()
		if b.walkFree(min(int(squareC1), qrook), max(int(squareD1), king), qrook, king) &&
			!b.rangeAttacked(king, int(squareC1)) {
			result = append(result, NewMove(b.ourKing, SquareFromCoords(rank1, qrook)))
		}
	}
	if b.castling.WeCanCastleKingside() {
		krook := b.castling.KingsideRook()
		if b.walkFree(min(int(squareF1), king), max(int(squareG1), krook), krook, king) &&
			!b.rangeAttacked(king, int(squareG1)) {
			result = append(result, NewMove(b.ourKing, SquareFromCoords(rank1, krook)))
		}
	}
	return result
}

// walkFree reports whether every first-rank square in [from, to] is empty,
// ignoring the squares the castling rook and king currently occupy.
func (b *Board) walkFree(from, to, rook, king int) bool {
	for i := from; i <= to; i++ {
		if i == rook || i == king {
			continue
		}
		if (b.ours | b.theirs).Get(Square(i)) {
			return false
		}
	}
	return true
}

// rangeAttacked reports whether any first-rank square the king passes
// through is attacked. from is included; to is excluded unless equal to
// from.
func (b *Board) rangeAttacked(from, to int) bool {
	if from == to {
		return b.IsUnderAttack(Square(from))
	}
	increment := 1
	if from > to {
		increment = -1
	}
	for ; from != to; from += increment {
		if b.IsUnderAttack(Square(from)) {
			return true
		}
	}
	return false
}

// ApplyMove mutates the board in place. The move must come from this
// position's own legal move generation; there is no undo, callers branching
// a search keep explicit copies. The board stays in the mover's perspective;
// advance to the next side with Mirror. Returns whether the halfmove
// ("no progress") counter should reset, i.e. the move was a pawn move or a
// capture.
func (b *Board) ApplyMove(move Move) bool {
	from, to := move.From(), move.To()
	fromRow, fromCol := from.Row(), from.Col()
	toRow, toCol := to.Row(), to.Col()

	// Castlings.
	if from == b.ourKing {
		b.castling.resetWeCanCastleKingside()
		b.castling.resetWeCanCastleQueenside()
		if fromRow == rank1 && toRow == rank1 {
			if (b.rooks & b.ours).Get(to) {
				// Castling, encoded as king takes own rook.
				if toCol > fromCol {
					b.doCastling(squareG1, to, squareF1)
				} else {
					b.doCastling(squareC1, to, squareD1)
				}
				return false
			} else if fromCol == fileE && toCol == int(squareG1)%8 {
				// Conventional e1g1 notation (as opposed to e1h1).
				b.doCastling(squareG1, squareH1, squareF1)
				return false
			} else if fromCol == fileE && toCol == int(squareC1)%8 {
				// Conventional e1c1 notation (as opposed to e1a1).
				b.doCastling(squareC1, squareA1, squareD1)
				return false
			}
		}
	}

	// Move in our pieces.
	b.ours.Clear(from)
	b.ours.Set(to)

	// Remove captured piece.
	reset50Moves := b.theirs.Get(to)
	b.theirs.Clear(to)
	b.rooks.Clear(to)
	b.bishops.Clear(to)
	b.pawns.Clear(to)
	if int(to) == 56+b.castling.KingsideRook() {
		b.castling.resetTheyCanCastleKingside()
	}
	if int(to) == 56+b.castling.QueensideRook() {
		b.castling.resetTheyCanCastleQueenside()
	}

	// En passant capture: the captured pawn is beside the origin, not on
	// the destination.
	if fromRow == rank5 && b.pawns.Get(from) && fromCol != toCol &&
		b.pawns.GetCoords(rank8, toCol) {
		captured := SquareFromCoords(rank5, toCol)
		b.pawns.Clear(captured)
		b.theirs.Clear(captured)
	}

	// Remove en passant flags.
	b.pawns &= pawnMask

	// If a pawn was moved, reset the no-progress counter.
	reset50Moves = reset50Moves || b.pawns.Get(from)

	// King, non-castling move.
	if from == b.ourKing {
		b.ourKing = to
		return reset50Moves
	}

	// Promotion.
	if toRow == rank8 && b.pawns.Get(from) {
		switch move.Promotion() {
		case PromotionRook:
			b.rooks.Set(to)
		case PromotionBishop:
			b.bishops.Set(to)
		case PromotionQueen:
			b.rooks.Set(to)
			b.bishops.Set(to)
		case PromotionKnight:
			// Knights are implicit: not a member of any category.
		}
		b.pawns.Clear(from)
		return true
	}

	// Reset castling rights when a rook leaves its starting square.
	if fromRow == rank1 && b.rooks.Get(from) {
		if fromCol == b.castling.QueensideRook() {
			b.castling.resetWeCanCastleQueenside()
		}
		if fromCol == b.castling.KingsideRook() {
			b.castling.resetWeCanCastleKingside()
		}
	}

	// Ordinary move.
	b.rooks.SetIf(to, b.rooks.Get(from))
	b.bishops.SetIf(to, b.bishops.Get(from))
	b.pawns.SetIf(to, b.pawns.Get(from))
	b.rooks.Clear(from)
	b.bishops.Clear(from)
	b.pawns.Clear(from)

	// Set the en passant flag after a double push, but only when an
	// opponent pawn is placed to use it.
	if toRow-fromRow == 2 && b.pawns.Get(to) {
		epSquare := SquareFromCoords(toRow-1, toCol)
		if pawnAttacks[epSquare].Intersects(b.theirs & b.pawns) {
			b.pawns.Set(SquareFromCoords(0, toCol))
		}
	}
	return reset50Moves
}

// doCastling relocates the king and rook to their canonical landing squares
// as a unit and clears the phantom en-passant markers.
func (b *Board) doCastling(kingDst, rookSrc, rookDst Square) {
	b.pawns &= pawnMask
	b.ours.Clear(b.ourKing)
	b.ours.Clear(rookSrc)
	b.rooks.Clear(rookSrc)
	b.ours.Set(kingDst)
	b.ours.Set(rookDst)
	b.rooks.Set(rookDst)
	b.ourKing = kingDst
}

// IsSameMove reports whether the two moves denote the same action, treating
// the rook-destination castling encoding and the conventional two-square
// king jump as equal.
func (b *Board) IsSameMove(move1, move2 Move) bool {
	if move1 == move2 {
		return true
	}
	// Only castling moves of the king on e1 can differ in encoding.
	if move1.From() != move2.From() || move1.From() != squareE1 ||
		b.ourKing != move1.From() {
		return false
	}
	if move1.To() == squareA1 && move2.To() == squareC1 {
		return true
	}
	if move1.To() == squareC1 && move2.To() == squareA1 {
		return true
	}
	if move1.To() == squareG1 && move2.To() == squareH1 {
		return true
	}
	if move1.To() == squareH1 && move2.To() == squareG1 {
		return true
	}
	return false
}

// GetLegacyMove converts a castling move from the internal rook-destination
// encoding to the conventional two-square king jump.
func (b *Board) GetLegacyMove(move Move) Move {
	if b.ourKing != move.From() || !b.ours.Get(move.To()) {
		return move
	}
	if move == NewMove(squareE1, squareH1) {
		return NewMove(squareE1, squareG1)
	}
	if move == NewMove(squareE1, squareA1) {
		return NewMove(squareE1, squareC1)
	}
	return move
}

// GetModernMove converts a conventional castling move to the internal
// rook-destination encoding.
func (b *Board) GetModernMove(move Move) Move {
	if b.ourKing != squareE1 || move.From() != squareE1 {
		return move
	}
	if move == NewMove(squareE1, squareG1) && !b.ours.Get(squareG1) {
		return NewMove(squareE1, squareH1)
	}
	if move == NewMove(squareE1, squareC1) && !b.ours.Get(squareC1) {
		return NewMove(squareE1, squareA1)
	}
	return move
}

const (
	lightSquares Bitboard = 0x55AA55AA55AA55AA
	darkSquares  Bitboard = 0xAA55AA55AA55AA55
)

// HasMatingMaterial reports whether either side could still deliver mate.
func (b *Board) HasMatingMaterial() bool {
	if !b.rooks.Empty() || !(b.pawns & pawnMask).Empty() {
		return true
	}
	if (b.ours | b.theirs).Count() < 4 {
		// K vs K, K+B vs K, K+N vs K.
		return false
	}
	if !b.Knights().Empty() {
		return true
	}
	// Only kings and bishops remain.
	return b.bishops.Intersects(lightSquares) && b.bishops.Intersects(darkSquares)
}

// String renders the board from the stored perspective, phantom en-passant
// markers shown as '*'.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 7; row >= 0; row-- {
		for col := 0; col < 8; col++ {
			sq := SquareFromCoords(row, col)
			if !b.ours.Get(sq) && !b.theirs.Get(sq) {
				if (row == rank3 && b.pawns.GetCoords(0, col)) ||
					(row == rank6 && b.pawns.GetCoords(rank8, col)) {
					sb.WriteByte('*')
				} else {
					sb.WriteByte('.')
				}
				continue
			}
			var c byte
			switch {
			case sq == b.ourKing || sq == b.theirKing:
				c = 'k'
			case (b.pawns & pawnMask).Get(sq):
				c = 'p'
			case b.bishops.Get(sq) && b.rooks.Get(sq):
				c = 'q'
			case b.bishops.Get(sq):
				c = 'b'
			case b.rooks.Get(sq):
				c = 'r'
			default:
				c = 'n'
			}
			if b.ours.Get(sq) {
				c -= 'a' - 'A'
			}
			sb.WriteByte(c)
		}
		if row == 0 {
			sb.WriteString(" " + b.castling.String())
			if b.flipped {
				sb.WriteString(" (from black's eyes)")
			} else {
				sb.WriteString(" (from white's eyes)")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
