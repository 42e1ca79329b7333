package byteio

import (
	"bufio"
	"io"
)

// Reader is an io.Reader that also supports reading single bytes.
type Reader interface {
	io.Reader
	io.ByteReader
}

// NewReader returns a Reader from r; if r already implements it, r is simply
// returned. Otherwise a bufio.Reader provides byte reading around r.
// A nil r reads as an empty stream.
func NewReader(r io.Reader) Reader {
	if r == nil {
		return emptyReader{}
	}
	if impl, ok := r.(Reader); ok {
		return impl
	}
	return bufio.NewReader(r)
}

type emptyReader struct{}

func (emptyReader) Read(p []byte) (int, error) { return 0, io.EOF }
func (emptyReader) ReadByte() (byte, error)    { return 0, io.EOF }
