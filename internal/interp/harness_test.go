package interp

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jcorbin/gobft/internal/bft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolve(t *testing.T, src string) *bft.Program {
	prog := bft.FromSource(src, t.Name())
	require.NoError(t, prog.CheckSyntax(), "unexpected syntax error")
	return prog
}

type vmTestCases []vmTestCase

func (vmts vmTestCases) run(t *testing.T) {
	{
		var exclusive []vmTestCase
		for _, vmt := range vmts {
			if vmt.exclusive {
				exclusive = append(exclusive, vmt)
			}
		}
		if len(exclusive) > 0 {
			vmts = exclusive
		}
	}
	for _, vmt := range vmts {
		if !t.Run(vmt.name, vmt.run) {
			return
		}
	}
}

func vmTest(name, src string) (vmt vmTestCase) {
	vmt.name = name
	vmt.src = src
	return vmt
}

type vmTestCase struct {
	name    string
	src     string
	opts    []Option
	setup   []func(vm *VM[U8])
	input   string
	expect  []func(t *testing.T, vm *VM[U8], out string, err error)
	wantErr bool

	unresolvedProg bool
	exclusive      bool
}

func (vmt vmTestCase) exclusiveTest() vmTestCase {
	vmt.exclusive = true
	return vmt
}

func (vmt vmTestCase) unresolved() vmTestCase {
	vmt.unresolvedProg = true
	return vmt
}

func (vmt vmTestCase) withOptions(opts ...Option) vmTestCase {
	vmt.opts = append(vmt.opts, opts...)
	return vmt
}

func (vmt vmTestCase) withInput(input string) vmTestCase {
	vmt.input = input
	return vmt
}

func (vmt vmTestCase) withTape(values ...U8) vmTestCase {
	vmt.setup = append(vmt.setup, func(vm *VM[U8]) {
		copy(vm.tape, values)
	})
	return vmt
}

func (vmt vmTestCase) withHead(head int) vmTestCase {
	vmt.setup = append(vmt.setup, func(vm *VM[U8]) {
		vm.head = head
	})
	return vmt
}

func (vmt vmTestCase) expectOutput(output string) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM[U8], out string, err error) {
		assert.Equal(t, output, out, "expected output")
	})
	return vmt
}

func (vmt vmTestCase) expectTape(values ...U8) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM[U8], out string, err error) {
		tape := vm.Tape()
		if assert.GreaterOrEqual(t, len(tape), len(values), "tape too short") {
			assert.Equal(t, values, tape[:len(values)], "expected tape values")
		}
	})
	return vmt
}

func (vmt vmTestCase) expectTapeLen(n int) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM[U8], out string, err error) {
		assert.Equal(t, n, len(vm.Tape()), "expected tape length")
	})
	return vmt
}

func (vmt vmTestCase) expectHead(head int) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM[U8], out string, err error) {
		assert.Equal(t, head, vm.Head(), "expected head")
	})
	return vmt
}

func (vmt vmTestCase) expectPC(pc int) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM[U8], out string, err error) {
		assert.Equal(t, pc, vm.PC(), "expected program counter")
	})
	return vmt
}

func (vmt vmTestCase) expectSteps(steps uint64) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM[U8], out string, err error) {
		assert.Equal(t, steps, vm.Steps(), "expected step count")
	})
	return vmt
}

// expectErr expects the run to fail with an error matching target, raised by
// the instruction at row and column.
func (vmt vmTestCase) expectErr(target error, row, column int) vmTestCase {
	vmt.wantErr = true
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM[U8], out string, err error) {
		if !assert.True(t, errors.Is(err, target), "expected %v error, got %v", target, err) {
			return
		}
		var vmErr *Error
		if assert.True(t, errors.As(err, &vmErr), "expected a VM error") {
			assert.Equal(t, row, vmErr.Instruction.Row, "expected error row")
			assert.Equal(t, column, vmErr.Instruction.Column, "expected error column")
			assert.Equal(t, vm.PC(), vmErr.PC, "expected error program counter")
		}
	})
	return vmt
}

func (vmt vmTestCase) run(t *testing.T) {
	prog := bft.FromSource(vmt.src, vmt.name)
	if !vmt.unresolvedProg {
		require.NoError(t, prog.CheckSyntax(), "unexpected syntax error")
	}

	vm := New[U8](prog, vmt.opts...)
	for _, setup := range vmt.setup {
		setup(vm)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var out bytes.Buffer
	err := vm.Run(ctx, strings.NewReader(vmt.input), &out)
	if !vmt.wantErr {
		require.NoError(t, err, "unexpected VM error")
	} else {
		require.Error(t, err, "expected VM error")
	}

	for _, expect := range vmt.expect {
		expect(t, vm, out.String(), err)
	}
}
