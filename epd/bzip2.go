package epd

import (
	"bufio"

	"github.com/dsnet/compress/bzip2"
	"github.com/inhies/go-bytesize"
)

// Bzip2Source reads a bzip2-compressed suite.
type Bzip2Source struct {
	reader *bzip2.Reader
	lines  *bufio.Scanner
	close  closeFn
	path   string
	size   bytesize.ByteSize
}

func NewBzip2Source(path string) *Bzip2Source {
	return &Bzip2Source{path: path}
}

func (s *Bzip2Source) Open() error {
	reader, size, close, err := openSource(s.path)
	if err != nil {
		return err
	}
	s.reader, err = bzip2.NewReader(reader, nil)
	if err != nil {
		_ = close()
		return err
	}
	s.size = size
	s.close = close
	s.lines = bufio.NewScanner(bufio.NewReader(s.reader))
	return nil
}

func (s *Bzip2Source) Close() error {
	return s.close()
}

func (s *Bzip2Source) Scan() bool {
	return s.lines.Scan()
}

func (s *Bzip2Source) Text() string {
	return s.lines.Text()
}

func (s *Bzip2Source) Size() bytesize.ByteSize {
	return estimatedSize(s.size,
		bytesize.ByteSize(s.reader.InputOffset),
		bytesize.ByteSize(s.reader.OutputOffset))
}

func (s *Bzip2Source) BytesRead() bytesize.ByteSize {
	return bytesize.ByteSize(s.reader.OutputOffset)
}
