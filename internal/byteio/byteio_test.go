package byteio_test

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/jcorbin/gobft/internal/byteio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type plainReader struct{ io.Reader }

func Test_NewReader(t *testing.T) {
	br := bytes.NewReader([]byte("x"))
	assert.Same(t, br, byteio.NewReader(br), "expected ByteReader to pass through")

	r := byteio.NewReader(plainReader{strings.NewReader("ab")})
	_, isBufio := r.(*bufio.Reader)
	assert.True(t, isBufio, "expected bufio wrapper")
	b, err := r.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte('a'), b)

	_, err = byteio.NewReader(nil).ReadByte()
	assert.Equal(t, io.EOF, err)
}

func Test_Quote(t *testing.T) {
	for b, want := range map[byte]string{
		0x00: "<NUL>",
		0x0a: "<NL>",
		0x1b: "<ESC>",
		' ':  "<SP>",
		'A':  "'A'",
		'\'': `'\''`,
		0x7f: "<DEL>",
		0xff: "0xff",
	} {
		assert.Equal(t, want, byteio.Quote(b), "Quote(%#x)", b)
	}
}
