package board

// Perft counts the leaf nodes of the legal move tree to the given depth.
// The board is not modified; every branch works on a copy, applies the move
// and mirrors to hand the position to the other side.
func Perft(b *Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, move := range moves {
		child := *b
		child.ApplyMove(move)
		child.Mirror()
		nodes += Perft(&child, depth-1)
	}
	return nodes
}

// PerftDivide returns the per-move leaf counts of the legal move tree,
// keyed by root move. The sum of the values equals Perft(b, depth).
func PerftDivide(b *Board, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	for _, move := range b.GenerateLegalMoves() {
		child := *b
		child.ApplyMove(move)
		child.Mirror()
		result[move] = Perft(&child, depth-1)
	}
	return result
}
