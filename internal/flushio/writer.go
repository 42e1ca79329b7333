package flushio

import (
	"bufio"
	"io"
)

// Writer is a flush-able io.Writer that also supports writing single bytes.
type Writer interface {
	io.Writer
	io.ByteWriter
	Flush() error
}

// NewWriter creates a new flushable byte writer around w:
// - a nil writer or io.Discard drop everything, and need no flushing
// - a Writer is returned as-is
// - in memory buffers get a noop Flush
// - anything else is wrapped by a bufio.Writer
func NewWriter(w io.Writer) Writer {
	if w == nil || w == io.Discard {
		return discard{}
	}

	if impl, is := w.(Writer); is {
		return impl
	}

	// in memory buffers, as implemented by types like bytes.Buffer and
	// strings.Builder, do not need to be flushed
	type buffer interface {
		io.Writer
		io.ByteWriter
		Cap() int
		Len() int
		Grow(n int)
		Reset()
	}
	if buf, isBuffer := w.(buffer); isBuffer {
		return nopFlusher{buf}
	}

	return bufio.NewWriter(w)
}

type byteWriter interface {
	io.Writer
	io.ByteWriter
}

type nopFlusher struct{ byteWriter }

func (nf nopFlusher) Flush() error { return nil }

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
func (discard) WriteByte(c byte) error      { return nil }
func (discard) Flush() error                { return nil }
