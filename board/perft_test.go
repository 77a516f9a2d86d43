package board

import "testing"

var perftCases = []struct {
	name  string
	fen   string
	nodes []uint64 // nodes[i] is the count at depth i+1
}{
	{
		name:  "starting position",
		fen:   FENStartPos,
		nodes: []uint64{20, 400, 8902, 197281},
	},
	{
		name:  "kiwipete",
		fen:   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		nodes: []uint64{48, 2039, 97862},
	},
	{
		name:  "rook endgame",
		fen:   "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		nodes: []uint64{14, 191, 2812, 43238},
	},
	{
		name:  "promotion heavy",
		fen:   "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		nodes: []uint64{6, 264, 9467},
	},
	{
		name:  "talkchess",
		fen:   "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		nodes: []uint64{44, 1486, 62379},
	},
	{
		name:  "steven edwards",
		fen:   "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
		nodes: []uint64{46, 2079, 89890},
	},
	{
		name:  "en passant pin",
		fen:   "k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
		nodes: []uint64{5, 19},
	},
	{
		name:  "underpromotion",
		fen:   "1n5k/P7/8/8/8/8/8/7K w - - 0 1",
		nodes: []uint64{11},
	},
}

func TestPerft(t *testing.T) {
	for _, tc := range perftCases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := ParseFEN(tc.fen)
			if err != nil {
				t.Fatalf("ParseFEN(%q): %v", tc.fen, err)
			}
			for depth, want := range tc.nodes {
				if got := Perft(b, depth+1); got != want {
					t.Errorf("depth %d: got %d nodes, want %d", depth+1, got, want)
				}
			}
		})
	}
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	for _, tc := range perftCases {
		b, err := ParseFEN(tc.fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", tc.fen, err)
		}
		depth := len(tc.nodes)
		var sum uint64
		for _, nodes := range PerftDivide(b, depth) {
			sum += nodes
		}
		if want := tc.nodes[depth-1]; sum != want {
			t.Errorf("%s: divide sum %d, want %d", tc.name, sum, want)
		}
	}
}

func TestPerftDoesNotModifyBoard(t *testing.T) {
	b, err := ParseFEN(FENStartPos)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	before := *b
	Perft(b, 3)
	if *b != before {
		t.Errorf("perft modified the board")
	}
}

func BenchmarkPerftStartpos(b *testing.B) {
	board, err := ParseFEN(FENStartPos)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Perft(board, 4)
	}
}

func BenchmarkGenerateLegalMoves(b *testing.B) {
	board, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board.GenerateLegalMoves()
	}
}
