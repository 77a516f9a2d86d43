package epd

import (
	"bufio"

	"github.com/inhies/go-bytesize"
)

// PlainSource reads an uncompressed suite.
type PlainSource struct {
	lines  *bufio.Scanner
	reader *ByteCountingReader
	close  closeFn
	path   string
	size   bytesize.ByteSize
}

func NewPlainSource(path string) *PlainSource {
	return &PlainSource{path: path}
}

func (s *PlainSource) Open() error {
	reader, size, close, err := openSource(s.path)
	if err != nil {
		return err
	}
	s.close = close
	s.reader = &ByteCountingReader{reader: reader}
	s.size = size
	s.lines = bufio.NewScanner(bufio.NewReader(s.reader))
	return nil
}

func (s *PlainSource) Close() error {
	return s.close()
}

func (s *PlainSource) Scan() bool {
	return s.lines.Scan()
}

func (s *PlainSource) Text() string {
	return s.lines.Text()
}

func (s *PlainSource) Size() bytesize.ByteSize {
	return s.size
}

func (s *PlainSource) BytesRead() bytesize.ByteSize {
	return s.reader.bytesRead
}
