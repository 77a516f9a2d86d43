package board

import (
	"math/rand"
	"testing"
)

func TestMagicTablesBuildCleanly(t *testing.T) {
	// Package init already ran the build once; running it again verifies
	// every shipped constant from scratch and must not report a collision.
	if err := buildMagicTables(); err != nil {
		t.Fatalf("magic table build: %v", err)
	}
}

func TestSliderLookupsMatchRayCasts(t *testing.T) {
	rng := rand.New(rand.NewSource(0x5EED))
	for sq := Square(0); sq < 64; sq++ {
		for i := 0; i < 256; i++ {
			occupancy := Bitboard(rng.Uint64() & rng.Uint64())
			if got, want := rookAttacksFor(sq, occupancy), slidingAttacks(sq, occupancy, &rookDirections); got != want {
				t.Fatalf("rook on %v with occupancy %#x: got %#x, want %#x",
					sq, uint64(occupancy), uint64(got), uint64(want))
			}
			if got, want := bishopAttacksFor(sq, occupancy), slidingAttacks(sq, occupancy, &bishopDirections); got != want {
				t.Fatalf("bishop on %v with occupancy %#x: got %#x, want %#x",
					sq, uint64(occupancy), uint64(got), uint64(want))
			}
		}
	}
}

func TestStaticAttackCounts(t *testing.T) {
	corner, _ := ParseSquare("a1", false)
	center, _ := ParseSquare("e4", false)
	if got := knightAttacks[corner].Count(); got != 2 {
		t.Errorf("knight on a1 attacks %d squares, want 2", got)
	}
	if got := knightAttacks[center].Count(); got != 8 {
		t.Errorf("knight on e4 attacks %d squares, want 8", got)
	}
	if got := kingAttacks[corner].Count(); got != 3 {
		t.Errorf("king on a1 attacks %d squares, want 3", got)
	}
	if got := kingAttacks[center].Count(); got != 8 {
		t.Errorf("king on e4 attacks %d squares, want 8", got)
	}
}

func TestPawnAttackOrigins(t *testing.T) {
	// pawnAttacks[sq] holds the squares an enemy pawn would have to stand
	// on to attack sq, i.e. diagonally above it.
	e4, _ := ParseSquare("e4", false)
	d5, _ := ParseSquare("d5", false)
	f5, _ := ParseSquare("f5", false)
	want := BitOf(d5) | BitOf(f5)
	if pawnAttacks[e4] != want {
		t.Errorf("pawn attackers of e4: got\n%v\nwant\n%v", pawnAttacks[e4], want)
	}
	h8, _ := ParseSquare("h8", false)
	if pawnAttacks[h8] != 0 {
		t.Errorf("pawn attackers of h8: got\n%v\nwant empty", pawnAttacks[h8])
	}
}

func TestRelevantOccupancyMaskExcludesEdges(t *testing.T) {
	a1, _ := ParseSquare("a1", false)
	mask := relevantOccupancyMask(a1, &rookDirections)
	if got := mask.Count(); got != 12 {
		t.Errorf("rook mask of a1 has %d bits, want 12", got)
	}
	h1, _ := ParseSquare("h1", false)
	a8, _ := ParseSquare("a8", false)
	if mask.Get(h1) || mask.Get(a8) {
		t.Errorf("rook mask of a1 includes an edge square:\n%v", mask)
	}
}
