// Package epd reads EPD perft suites: text files with one position per
// line, a FEN followed by ";Dn <nodes>" operations giving the expected
// perft node counts. Suites are often distributed compressed, so plain,
// bzip2 and zstd inputs are supported, from local files or over HTTP.
package epd

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/inhies/go-bytesize"
)

// Source is a line-oriented suite input.
type Source interface {
	Open() error
	Close() error
	Scan() bool
	Text() string
	// The size (estimated for compressed inputs) of the suite data.
	Size() bytesize.ByteSize
	// Amount of suite data read so far.
	BytesRead() bytesize.ByteSize
}

// ByteCountingReader tracks the bytes passing through it. Wrapping both the
// raw input and the decompressed stream lets a source estimate the total
// uncompressed size from the compression ratio observed so far.
type ByteCountingReader struct {
	reader    io.Reader
	bytesRead bytesize.ByteSize
}

func (bcr *ByteCountingReader) Read(p []byte) (n int, err error) {
	c, err := bcr.reader.Read(p)
	bcr.bytesRead += bytesize.ByteSize(uint64(c))
	return c, err
}

type closeFn func() error

// estimatedSize scales the raw input size by the compression ratio observed
// so far. The ratio is computed in floating point: an integer quotient
// would round a ratio like 1.9 down to 1 and badly undershoot the estimate.
func estimatedSize(size, read, decompressed bytesize.ByteSize) bytesize.ByteSize {
	if read == 0 {
		return size
	}
	return bytesize.ByteSize(float64(size) * float64(decompressed) / float64(read))
}

func openSource(path string) (io.Reader, bytesize.ByteSize, closeFn, error) {
	if isURL(path) {
		r, err := http.Get(path)
		if err != nil {
			return nil, 0, nil, err
		}
		return r.Body, bytesize.ByteSize(r.ContentLength), r.Body.Close, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, 0, nil, err
	}
	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, 0, nil, err
	}
	return file, bytesize.ByteSize(stat.Size()), file.Close, nil
}

// NewSource picks the source implementation from the path's extension.
func NewSource(path string) (Source, error) {
	switch filepath.Ext(path) {
	case ".zst":
		return NewZstSource(path), nil
	case ".bz2":
		return NewBzip2Source(path), nil
	case ".epd", ".txt":
		return NewPlainSource(path), nil
	default:
		return nil, fmt.Errorf("unsupported suite format %q", filepath.Ext(path))
	}
}

func isURL(path string) bool {
	u, err := url.Parse(path)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}
