package epd

import (
	"path/filepath"
	"testing"

	"chesscore/board"
)

// The bundled suite doubles as an integration test: every record's node
// counts must match the move generator.
func TestBundledSuitePerft(t *testing.T) {
	records, err := Load(filepath.Join("testdata", "standard.epd"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for _, record := range records {
		b, err := board.ParseFEN(record.FEN)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", record.FEN, err)
		}
		for depth, want := range record.Depths {
			if got := board.Perft(b, depth); got != want {
				t.Errorf("%s D%d: got %d nodes, want %d", record.FEN, depth, got, want)
			}
		}
	}
}
