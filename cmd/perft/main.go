package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/exp/slices"

	"chesscore/board"
	"chesscore/epd"
)

func main() {
	fen := flag.String("fen", board.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required unless -suite is given)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	suite := flag.String("suite", "", "Run an EPD perft suite (file path or URL, .epd/.bz2/.zst)")
	maxDepth := flag.Int("maxdepth", 0, "Skip suite entries deeper than this (0 means no limit)")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.Bool("cpuprofile", false, "Write a CPU profile for the run")
	flag.Parse()

	if *cpuProf {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	if *suite != "" {
		os.Exit(runSuite(*suite, *maxDepth))
	}

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	b, err := board.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	if *divide {
		runDivide(b, *depth)
		return
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += board.Perft(b, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)
}

// runDivide prints per-root-move node counts, moves in the conventional
// notation and sorted for stable output.
func runDivide(b *board.Board, depth int) {
	div := board.PerftDivide(b, depth)
	type kv struct {
		move string
		n    uint64
	}
	arr := make([]kv, 0, len(div))
	var sum uint64
	for m, n := range div {
		m = b.GetLegacyMove(m)
		if b.Flipped() {
			m = m.Mirror()
		}
		arr = append(arr, kv{m.String(), n})
		sum += n
	}
	slices.SortFunc(arr, func(a, b kv) bool { return a.move < b.move })
	for _, x := range arr {
		fmt.Printf("%s: %d\n", x.move, x.n)
	}
	fmt.Printf("Total: %d\n", sum)
}

// runSuite verifies every record of an EPD perft suite, keeping a progress
// line up to date while it works, and returns the exit code: 0 when all
// node counts match, 1 otherwise.
func runSuite(path string, maxDepth int) int {
	source, err := epd.NewSource(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading suite: %v\n", err)
		return 2
	}
	if err := source.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "loading suite: %v\n", err)
		return 2
	}
	defer source.Close()

	failed, positions := 0, 0
	start := time.Now()
	for source.Scan() {
		record, err := epd.ParseLine(source.Text())
		if err != nil {
			fmt.Fprintf(os.Stderr, "\n%v\n", err)
			failed++
			continue
		}
		if record == nil {
			continue
		}
		positions++
		b, err := board.ParseFEN(record.FEN)
		if err != nil {
			fmt.Fprintf(os.Stderr, "\n%s: %v\n", record.FEN, err)
			failed++
			continue
		}
		depths := make([]int, 0, len(record.Depths))
		for depth := range record.Depths {
			if maxDepth > 0 && depth > maxDepth {
				continue
			}
			depths = append(depths, depth)
		}
		slices.Sort(depths)
		for _, depth := range depths {
			want := record.Depths[depth]
			if got := board.Perft(b, depth); got != want {
				fmt.Printf("\nFAIL %s D%d: got %d, want %d\n", record.FEN, depth, got, want)
				failed++
			}
		}
		printProgress(source, positions)
	}
	fmt.Printf("\n%d positions in %s, %d failures\n", positions, time.Since(start), failed)
	if failed > 0 {
		return 1
	}
	return 0
}

// printProgress overwrites a single status line in place. For compressed
// suites the total is an estimate from the compression ratio seen so far,
// so the fraction is clamped to one.
func printProgress(source epd.Source, positions int) {
	size := source.Size()
	if size <= 0 {
		return
	}
	progress := math.Min(float64(source.BytesRead())/float64(size), 1)
	barN := int(50 * progress)
	bar := "[" + strings.Repeat("#", barN) + strings.Repeat(".", 50-barN) + "]"
	fmt.Printf("%s %.2f%%, positions: %d, read: %v, total: %v\r",
		bar, 100*progress, positions, source.BytesRead(), size)
}
