package board

import (
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the standard starting position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// SetFromFEN replaces the board with the position described by the FEN
// string and returns its halfmove and fullmove counters, which are not part
// of the board state itself. The halfmove and fullmove fields may be
// omitted and default to 0 and 1. Castling availability accepts both the
// conventional KQkq letters and Shredder file letters. On error the board
// is left untouched.
func (b *Board) SetFromFEN(fen string) (rule50, moveCount int, err error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 || len(fields) > 6 {
		return 0, 0, fmt.Errorf("invalid FEN %q: expected 4 to 6 fields, got %d", fen, len(fields))
	}

	var board Board
	board.castling = NewCastling()
	var whiteKing, blackKing Square
	whiteKings, blackKings := 0, 0

	// Piece placement, always given from white's perspective.
	rows := strings.Split(fields[0], "/")
	if len(rows) != 8 {
		return 0, 0, fmt.Errorf("invalid FEN %q: expected 8 ranks, got %d", fen, len(rows))
	}
	for i, rowStr := range rows {
		row := 7 - i
		col := 0
		for j := 0; j < len(rowStr); j++ {
			c := rowStr[j]
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			if col >= 8 {
				return 0, 0, fmt.Errorf("invalid FEN %q: rank %d overflows", fen, row+1)
			}
			sq := SquareFromCoords(row, col)
			white := c >= 'A' && c <= 'Z'
			if white {
				board.ours.Set(sq)
			} else {
				board.theirs.Set(sq)
			}
			switch c | 0x20 {
			case 'p':
				if row == 0 || row == 7 {
					return 0, 0, fmt.Errorf("invalid FEN %q: pawn on rank %d", fen, row+1)
				}
				board.pawns.Set(sq)
			case 'r':
				board.rooks.Set(sq)
			case 'b':
				board.bishops.Set(sq)
			case 'q':
				board.rooks.Set(sq)
				board.bishops.Set(sq)
			case 'n':
				// Knights are implicit: not a member of any category.
			case 'k':
				if white {
					whiteKing = sq
					whiteKings++
				} else {
					blackKing = sq
					blackKings++
				}
			default:
				return 0, 0, fmt.Errorf("invalid FEN %q: unknown piece %q", fen, string(c))
			}
			col++
		}
		if col != 8 {
			return 0, 0, fmt.Errorf("invalid FEN %q: rank %d has %d squares", fen, row+1, col)
		}
	}
	if whiteKings != 1 || blackKings != 1 {
		return 0, 0, fmt.Errorf("invalid FEN %q: each side needs exactly one king", fen)
	}
	board.ourKing, board.theirKing = whiteKing, blackKing

	// Side to move.
	var blackToMove bool
	switch fields[1] {
	case "w":
	case "b":
		blackToMove = true
	default:
		return 0, 0, fmt.Errorf("invalid FEN %q: bad side to move %q", fen, fields[1])
	}

	// Castling availability. The board is still white-oriented here, so
	// uppercase letters belong to "we".
	if fields[2] != "-" {
		leftRook, rightRook := fileA, fileH
		for i := 0; i < len(fields[2]); i++ {
			c := fields[2][i]
			black := c >= 'a' && c <= 'z'
			king := whiteKing
			rooks := board.ours & board.rooks &^ board.bishops
			rookRank := 0
			if black {
				king = blackKing
				rooks = board.theirs & board.rooks &^ board.bishops
				rookRank = rank8
			}
			switch c | 0x20 {
			case 'k':
				// Rightmost rook beyond the king.
				col := fileH
				for ; col > king.Col(); col-- {
					if rooks.GetCoords(rookRank, col) {
						break
					}
				}
				if col == king.Col() {
					return 0, 0, fmt.Errorf("invalid FEN %q: no kingside rook", fen)
				}
				rightRook = col
				if black {
					board.castling.setTheyCanCastleKingside()
				} else {
					board.castling.setWeCanCastleKingside()
				}
			case 'q':
				// Leftmost rook up to the king.
				col := fileA
				for ; col < king.Col(); col++ {
					if rooks.GetCoords(rookRank, col) {
						break
					}
				}
				if col == king.Col() {
					return 0, 0, fmt.Errorf("invalid FEN %q: no queenside rook", fen)
				}
				leftRook = col
				if black {
					board.castling.setTheyCanCastleQueenside()
				} else {
					board.castling.setWeCanCastleQueenside()
				}
			default:
				// Shredder notation names the rook file directly.
				if c|0x20 < 'a' || c|0x20 > 'h' {
					return 0, 0, fmt.Errorf("invalid FEN %q: bad castling token %q", fen, string(c))
				}
				col := int(c|0x20) - 'a'
				if !rooks.GetCoords(rookRank, col) {
					return 0, 0, fmt.Errorf("invalid FEN %q: no rook on castling file %q", fen, string(c))
				}
				if col < king.Col() {
					leftRook = col
					if black {
						board.castling.setTheyCanCastleQueenside()
					} else {
						board.castling.setWeCanCastleQueenside()
					}
				} else {
					rightRook = col
					if black {
						board.castling.setTheyCanCastleKingside()
					} else {
						board.castling.setWeCanCastleKingside()
					}
				}
			}
		}
		board.castling.setRookFiles(leftRook, rightRook)
	}

	// En passant target, stored as a phantom marker on the edge rank of the
	// pawn's file.
	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3], false)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid FEN %q: bad en passant square %q", fen, fields[3])
		}
		switch sq.Row() {
		case rank3:
			if !(board.ours & board.pawns).GetCoords(rank4, sq.Col()) {
				return 0, 0, fmt.Errorf("invalid FEN %q: no pawn to take en passant", fen)
			}
			board.pawns.Set(SquareFromCoords(0, sq.Col()))
		case rank6:
			if !(board.theirs & board.pawns).GetCoords(rank5, sq.Col()) {
				return 0, 0, fmt.Errorf("invalid FEN %q: no pawn to take en passant", fen)
			}
			board.pawns.Set(SquareFromCoords(rank8, sq.Col()))
		default:
			return 0, 0, fmt.Errorf("invalid FEN %q: bad en passant rank", fen)
		}
	}

	rule50, moveCount = 0, 1
	if len(fields) >= 5 {
		rule50, err = strconv.Atoi(fields[4])
		if err != nil || rule50 < 0 {
			return 0, 0, fmt.Errorf("invalid FEN %q: bad halfmove clock %q", fen, fields[4])
		}
	}
	if len(fields) >= 6 {
		moveCount, err = strconv.Atoi(fields[5])
		if err != nil || moveCount < 1 {
			return 0, 0, fmt.Errorf("invalid FEN %q: bad move number %q", fen, fields[5])
		}
	}

	if blackToMove {
		board.Mirror()
	}
	*b = board
	return rule50, moveCount, nil
}

// ParseFEN returns a new board from the FEN string, discarding the move
// counters.
func ParseFEN(fen string) (*Board, error) {
	b := &Board{}
	if _, _, err := b.SetFromFEN(fen); err != nil {
		return nil, err
	}
	return b, nil
}

// FEN renders the position as a FEN string. The board does not store the
// halfmove and fullmove counters, so the caller supplies them.
func (b *Board) FEN(rule50, moveCount int) string {
	// Work on a white-oriented copy so ours is always white.
	white := *b
	if white.flipped {
		white.Mirror()
	}

	var sb strings.Builder
	for row := 7; row >= 0; row-- {
		empty := 0
		for col := 0; col < 8; col++ {
			sq := SquareFromCoords(row, col)
			if !white.ours.Get(sq) && !white.theirs.Get(sq) {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			var c byte
			switch {
			case sq == white.ourKing || sq == white.theirKing:
				c = 'k'
			case (white.pawns & pawnMask).Get(sq):
				c = 'p'
			case white.rooks.Get(sq) && white.bishops.Get(sq):
				c = 'q'
			case white.rooks.Get(sq):
				c = 'r'
			case white.bishops.Get(sq):
				c = 'b'
			default:
				c = 'n'
			}
			if white.ours.Get(sq) {
				c -= 'a' - 'A'
			}
			sb.WriteByte(c)
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}

	if b.flipped {
		sb.WriteString(" b ")
	} else {
		sb.WriteString(" w ")
	}
	sb.WriteString(white.castling.String())

	// A phantom marker on the top rank means black can be captured en
	// passant (white to move), one on the bottom rank the reverse.
	ep := "-"
	for rest := white.pawns &^ pawnMask; rest != 0; {
		marker := rest.PopLSB()
		if marker.Row() == rank8 {
			ep = SquareFromCoords(rank6, marker.Col()).String()
		} else {
			ep = SquareFromCoords(rank3, marker.Col()).String()
		}
	}
	sb.WriteString(" " + ep)

	sb.WriteString(" " + strconv.Itoa(rule50))
	sb.WriteString(" " + strconv.Itoa(moveCount))
	return sb.String()
}
