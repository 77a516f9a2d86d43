package epd

import (
	"bufio"

	"github.com/inhies/go-bytesize"
	"github.com/klauspost/compress/zstd"
)

// ZstSource reads a zstd-compressed suite.
type ZstSource struct {
	lines        *bufio.Scanner
	inputReader  *ByteCountingReader
	outputReader *ByteCountingReader
	close        closeFn
	path         string
	size         bytesize.ByteSize
}

func NewZstSource(path string) *ZstSource {
	return &ZstSource{path: path}
}

func (s *ZstSource) Open() error {
	reader, size, close, err := openSource(s.path)
	if err != nil {
		return err
	}
	// Count both the compressed input and the decompressed output so Size
	// can be estimated from the observed ratio.
	s.inputReader = &ByteCountingReader{reader: reader}
	zstReader, err := zstd.NewReader(s.inputReader)
	if err != nil {
		_ = close()
		return err
	}
	s.outputReader = &ByteCountingReader{reader: zstReader}
	s.close = close
	s.size = size
	s.lines = bufio.NewScanner(bufio.NewReader(s.outputReader))
	return nil
}

func (s *ZstSource) Close() error {
	return s.close()
}

func (s *ZstSource) Scan() bool {
	return s.lines.Scan()
}

func (s *ZstSource) Text() string {
	return s.lines.Text()
}

func (s *ZstSource) Size() bytesize.ByteSize {
	return estimatedSize(s.size, s.inputReader.bytesRead, s.outputReader.bytesRead)
}

func (s *ZstSource) BytesRead() bytesize.ByteSize {
	return s.outputReader.bytesRead
}
