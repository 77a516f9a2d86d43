package board

// KingAttackInfo summarizes how the opponent bears on our king in the
// current position: the squares lying on check-giving lines (attacker
// included), the absolutely pinned pieces, and whether more than one piece
// gives check. It is computed once per position and consulted for every
// candidate move.
type KingAttackInfo struct {
	attackLines Bitboard
	pinned      Bitboard
	doubleCheck bool
}

// InCheck reports whether the king is attacked.
func (k *KingAttackInfo) InCheck() bool { return k.attackLines != 0 || k.doubleCheck }

// InDoubleCheck reports whether two pieces give check at once.
func (k *KingAttackInfo) InDoubleCheck() bool { return k.doubleCheck }

// IsPinned reports whether the piece on sq is absolutely pinned.
func (k *KingAttackInfo) IsPinned(sq Square) bool { return k.pinned.Get(sq) }

// IsOnAttackLine reports whether sq lies on a check-giving line, so that a
// piece moving there blocks the check or captures the checker.
func (k *KingAttackInfo) IsOnAttackLine(sq Square) bool { return k.attackLines.Get(sq) }

// GenerateKingAttackInfo scans outward from our king. Kings can never check,
// so only pawns, knights and the slider rays need examination. Each slider
// ray is walked once: a ray reaching an enemy rook or bishop mover with no
// own piece in between contributes an attack line, with exactly one own
// piece in between it marks that piece pinned.
func (b *Board) GenerateKingAttackInfo() KingAttackInfo {
	var info KingAttackInfo
	attackers := 0

	// Pawns.
	for rest := pawnAttacks[b.ourKing] & b.theirs & b.pawns; rest != 0; {
		info.attackLines.Set(rest.PopLSB())
		attackers++
	}

	// Knights.
	for rest := knightAttacks[b.ourKing] & b.theirKnights(); rest != 0; {
		info.attackLines.Set(rest.PopLSB())
		attackers++
	}

	// Sliders. The empty-board rays give a cheap pre-test: directions with
	// no enemy slider anywhere on the line cannot produce a check or pin.
	row, col := b.ourKing.Row(), b.ourKing.Col()
	for family := 0; family < 2; family++ {
		directions := &rookDirections
		movers := b.theirs & b.rooks
		rays := rookRays[b.ourKing]
		if family == 1 {
			directions = &bishopDirections
			movers = b.theirs & b.bishops
			rays = bishopRays[b.ourKing]
		}
		if !rays.Intersects(movers) {
			continue
		}
		for _, d := range directions {
			var line Bitboard
			var pinCandidate Square
			possiblePin := false
			dstRow, dstCol := row, col
			for {
				dstRow += d[0]
				dstCol += d[1]
				if !validCoords(dstRow, dstCol) {
					break
				}
				destination := SquareFromCoords(dstRow, dstCol)
				if b.ours.Get(destination) {
					if possiblePin {
						break
					}
					possiblePin = true
					pinCandidate = destination
					continue
				}
				if b.theirs.Get(destination) {
					if movers.Get(destination) {
						if possiblePin {
							info.pinned.Set(pinCandidate)
						} else {
							line.Set(destination)
							info.attackLines |= line
							attackers++
						}
					}
					break
				}
				line.Set(destination)
			}
		}
	}

	// With both kings on the board, at most two pieces can check at once.
	info.doubleCheck = attackers > 1
	return info
}

// IsLegalMove reports whether a pseudolegal move leaves our king safe.
// info must be this position's GenerateKingAttackInfo result.
func (b *Board) IsLegalMove(move Move, info *KingAttackInfo) bool {
	from, to := move.From(), move.To()

	// En passant exposes two squares at once and can uncover a rank pin on
	// the king; rare enough to just play it out.
	if from.Row() == rank5 && b.pawns.Get(from) && from.Col() != to.Col() &&
		b.pawns.GetCoords(rank8, to.Col()) {
		after := *b
		after.ApplyMove(move)
		return !after.IsUnderCheck()
	}

	if info.InCheck() {
		// King evasions, including castling attempts, are simulated.
		if from == b.ourKing {
			after := *b
			after.ApplyMove(move)
			return !after.IsUnderCheck()
		}
		// Only the king can move out of double check.
		if info.InDoubleCheck() {
			return false
		}
		// A pinned piece can never resolve a check.
		if info.IsPinned(from) {
			return false
		}
		// Anything else must block the check or capture the checker.
		return info.IsOnAttackLine(to)
	}

	if from == b.ourKing {
		if from.Row() != rank1 || to.Row() != rank1 ||
			(abs(from.Col()-to.Col()) == 1 && !b.ours.Get(to)) {
			// An ordinary king step, verified safe during generation.
			return true
		}
		// Castling. The king's landing square has not been checked yet.
		after := *b
		after.ApplyMove(move)
		return !after.IsUnderCheck()
	}

	if !info.IsPinned(from) {
		return true
	}

	// A pinned piece must stay on the line through the king. Compare the
	// direction vectors by cross multiplication, with the vertical case
	// handled separately to avoid the zero ratio.
	dxFrom := from.Col() - b.ourKing.Col()
	dyFrom := from.Row() - b.ourKing.Row()
	dxTo := to.Col() - b.ourKing.Col()
	dyTo := to.Row() - b.ourKing.Row()
	if dxFrom == 0 || dxTo == 0 {
		return dxFrom == dxTo
	}
	return dxFrom*dyTo == dxTo*dyFrom
}

// GenerateLegalMoves returns every strictly legal move for the side to move.
// An empty result means mate or stalemate, told apart by IsUnderCheck.
func (b *Board) GenerateLegalMoves() []Move {
	info := b.GenerateKingAttackInfo()
	moves := b.GeneratePseudolegalMoves()
	legal := moves[:0]
	for _, move := range moves {
		if b.IsLegalMove(move, &info) {
			legal = append(legal, move)
		}
	}
	return legal
}
