package epd

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is one suite line: a position and its expected perft node counts
// by depth.
type Record struct {
	FEN    string
	Depths map[int]uint64
}

// ParseLine parses a single suite line of the form
//
//	<fen> ;D1 20 ;D2 400 ;D3 8902
//
// Blank lines and lines starting with '#' yield a nil record.
func ParseLine(line string) (*Record, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, nil
	}
	parts := strings.Split(line, ";")
	record := &Record{
		FEN:    strings.TrimSpace(parts[0]),
		Depths: make(map[int]uint64),
	}
	if record.FEN == "" {
		return nil, fmt.Errorf("suite line %q has no position", line)
	}
	for _, op := range parts[1:] {
		fields := strings.Fields(op)
		if len(fields) != 2 || len(fields[0]) < 2 || fields[0][0] != 'D' {
			return nil, fmt.Errorf("bad suite operation %q in line %q", op, line)
		}
		depth, err := strconv.Atoi(fields[0][1:])
		if err != nil || depth < 1 {
			return nil, fmt.Errorf("bad depth in suite operation %q", op)
		}
		nodes, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad node count in suite operation %q", op)
		}
		record.Depths[depth] = nodes
	}
	return record, nil
}

// Load reads every record of the suite at path, which may be a local file
// or an HTTP URL, optionally bzip2- or zstd-compressed.
func Load(path string) ([]Record, error) {
	source, err := NewSource(path)
	if err != nil {
		return nil, err
	}
	if err := source.Open(); err != nil {
		return nil, err
	}
	defer source.Close()

	var records []Record
	for source.Scan() {
		record, err := ParseLine(source.Text())
		if err != nil {
			return nil, err
		}
		if record == nil {
			continue
		}
		records = append(records, *record)
	}
	return records, nil
}
