package board

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"
)

// An independently developed move generator serves as a reference: on every
// examined position the two generators must agree on the exact legal move
// set, castlings compared in the conventional two-square king form.

var crossCheckFens = []string{
	FENStartPos,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
	"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
	"1n5k/P7/8/8/8/8/8/7K w - - 0 1",
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b KQkq - 0 1",
}

func referenceMoveStrings(b *dragontoothmg.Board) []string {
	moves := b.GenerateLegalMoves()
	result := make([]string, 0, len(moves))
	for i := range moves {
		result = append(result, moves[i].String())
	}
	slices.Sort(result)
	return result
}

func referencePerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		undo := b.Apply(m)
		nodes += referencePerft(b, depth-1)
		undo()
	}
	return nodes
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// compareMoveTrees checks that both generators produce identical move sets
// on this position and on every position reachable within depth plies.
func compareMoveTrees(t *testing.T, mine *Board, reference *dragontoothmg.Board, depth int) {
	t.Helper()
	got := legalMoveStrings(mine)
	want := referenceMoveStrings(reference)
	if !equalStrings(got, want) {
		t.Errorf("move set mismatch on %q:\n got %v\nwant %v", mine.FEN(0, 1), got, want)
		return
	}
	if depth <= 1 {
		return
	}
	refMoves := reference.GenerateLegalMoves()
	for _, move := range mine.GenerateLegalMoves() {
		str := mine.GetLegacyMove(move)
		if mine.Flipped() {
			str = str.Mirror()
		}
		var undo func()
		for i := range refMoves {
			if refMoves[i].String() == str.String() {
				undo = reference.Apply(refMoves[i])
				break
			}
		}
		if undo == nil {
			t.Errorf("move %v has no counterpart on %q", str, mine.FEN(0, 1))
			continue
		}
		child := *mine
		child.ApplyMove(move)
		child.Mirror()
		compareMoveTrees(t, &child, reference, depth-1)
		undo()
	}
}

func TestLegalMovesMatchReference(t *testing.T) {
	for _, fen := range crossCheckFens {
		b, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		reference := dragontoothmg.ParseFen(fen)
		depth := 2
		if fen == FENStartPos {
			depth = 3
		}
		compareMoveTrees(t, b, &reference, depth)
	}
}

func TestPerftMatchesReference(t *testing.T) {
	for _, fen := range crossCheckFens {
		b, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		reference := dragontoothmg.ParseFen(fen)
		for depth := 1; depth <= 3; depth++ {
			got := Perft(b, depth)
			want := referencePerft(&reference, depth)
			if got != want {
				t.Errorf("%s depth %d: got %d nodes, reference %d", fen, depth, got, want)
			}
		}
	}
}
