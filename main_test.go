package main

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jcorbin/gobft/internal/bft"
	"github.com/jcorbin/gobft/internal/interp"
	"github.com/jcorbin/gobft/internal/logio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type runResult struct {
	out    string
	stderr string
	log    string
	err    error
}

func runProgram(t *testing.T, cfg Config, src, input string) (res runResult) {
	path := writeFile(t, "prog.bf", src)
	var out, stderr, logOut strings.Builder
	var log logio.Logger
	log.SetOutput(&logOut)
	res.err = run(context.Background(), cfg, path, stdio{strings.NewReader(input), &out, &stderr}, &log)
	res.out = out.String()
	res.stderr = stderr.String()
	res.log = logOut.String()
	return res
}

func Test_run(t *testing.T) {
	t.Run("echo", func(t *testing.T) {
		res := runProgram(t, defaultConfig, "read ,\nwrite .", "A")
		require.NoError(t, res.err)
		assert.Equal(t, "A", res.out)
	})

	t.Run("syntax error", func(t *testing.T) {
		res := runProgram(t, defaultConfig, "+\n+[", "")
		require.Error(t, res.err)
		assert.True(t, errors.Is(res.err, bft.UnclosedLoop))
		assert.True(t, strings.HasSuffix(res.err.Error(), ": found unclosed bracket at row 2 column 2"), "got %v", res.err)
	})

	t.Run("runtime error", func(t *testing.T) {
		cfg := defaultConfig
		cfg.Cells = 1
		res := runProgram(t, cfg, "+>", "")
		assert.True(t, errors.Is(res.err, interp.HeadOutOfMemory))
		assert.True(t, strings.HasSuffix(res.err.Error(), ": head out of memory at row 1 column 2"), "got %v", res.err)
		assert.Empty(t, res.stderr, "expected no dump")
	})

	t.Run("extensible", func(t *testing.T) {
		cfg := defaultConfig
		cfg.Cells = 1
		cfg.Extensible = true
		res := runProgram(t, cfg, ">+++.", "")
		require.NoError(t, res.err)
		assert.Equal(t, "\x03", res.out)
	})

	t.Run("dump", func(t *testing.T) {
		cfg := defaultConfig
		cfg.Dump = true
		res := runProgram(t, cfg, "+<", "")
		assert.True(t, errors.Is(res.err, interp.HeadOutOfMemory))
		assert.Contains(t, res.stderr, "# VM Dump\n")
		assert.Contains(t, res.stderr, "  @0 1 <SOH> <-- head\n")
	})

	t.Run("trace", func(t *testing.T) {
		cfg := defaultConfig
		cfg.Trace = true
		res := runProgram(t, cfg, "+.", "")
		require.NoError(t, res.err)
		assert.Contains(t, res.log, "TRACE: @0 1:1 + head=0 cell=0\n")
		assert.Contains(t, res.log, "TRACE: halt after 2 steps\n")
	})

	t.Run("wide cells", func(t *testing.T) {
		// 256 increments only wrap to zero in 8-bit cells
		src := strings.Repeat("+", 256) + "[>+<[-]]>."
		for _, tc := range []struct {
			width int
			want  string
		}{
			{8, "\x00"},
			{16, "\x01"},
			{32, "\x01"},
		} {
			cfg := defaultConfig
			cfg.Width = tc.width
			res := runProgram(t, cfg, src, "")
			require.NoError(t, res.err)
			assert.Equal(t, tc.want, res.out, "width %v", tc.width)
		}
	})

	t.Run("timeout", func(t *testing.T) {
		cfg := defaultConfig
		cfg.Timeout = duration{10 * time.Millisecond}
		res := runProgram(t, cfg, "+[]", "")
		assert.True(t, errors.Is(res.err, context.DeadlineExceeded), "got %v", res.err)
	})

	t.Run("missing program", func(t *testing.T) {
		var log logio.Logger
		err := run(context.Background(), defaultConfig, "no/such/prog.bf", stdio{}, &log)
		assert.Error(t, err)
	})
}
