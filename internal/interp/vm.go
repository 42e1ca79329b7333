package interp

import (
	"context"
	"fmt"
	"io"

	"github.com/jcorbin/gobft/internal/bft"
	"github.com/jcorbin/gobft/internal/byteio"
	"github.com/jcorbin/gobft/internal/flushio"
	"github.com/jcorbin/gobft/internal/panicerr"
)

// ctxCheckInterval is how many instructions run between context checks.
const ctxCheckInterval = 1 << 10

// VM executes a resolved program against a tape of cells.
//
// The VM only borrows its program: any number of VMs may share one program,
// which must not be modified while they run. A VM itself is not safe for
// concurrent use.
type VM[C Cell[C]] struct {
	prog *bft.Program

	tape    []C
	head    int // cell pointer
	pc      int // program counter
	elastic bool

	steps   uint64
	lastOut int // program counter of the last output instruction

	logfn func(mess string, args ...interface{})
}

// New creates a VM bound to prog, which should have passed CheckSyntax; bracket
// instructions of an unresolved program fail with BrokenLoop.
func New[C Cell[C]](prog *bft.Program, opts ...Option) *VM[C] {
	var cfg config
	defaultOptions.apply(&cfg)
	Options(opts...).apply(&cfg)
	return &VM[C]{
		prog:    prog,
		tape:    make([]C, cfg.tapeSize),
		elastic: cfg.elastic,
		lastOut: -1,
		logfn:   cfg.logfn,
	}
}

// Program returns the program that the VM is bound to.
func (vm *VM[C]) Program() *bft.Program { return vm.prog }

// Head returns the current tape position.
func (vm *VM[C]) Head() int { return vm.head }

// PC returns the program counter, which equals the program length once a run
// has completed.
func (vm *VM[C]) PC() int { return vm.pc }

// Steps returns how many instructions have been executed.
func (vm *VM[C]) Steps() uint64 { return vm.steps }

// Tape returns a copy of the tape.
func (vm *VM[C]) Tape() []C { return append([]C(nil), vm.tape...) }

// Run executes the program from the current program counter until it reaches
// the end of the program, or until the first failure. Input bytes are read
// from in and output bytes are written to out; output is flushed before each
// input read, and whenever Run returns.
//
// Runtime failures are returned as an *Error; context cancellation returns
// the context's error.
func (vm *VM[C]) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	r := byteio.NewReader(in)
	w := flushio.NewWriter(out)
	err := panicerr.Recover("VM", func() error {
		return vm.run(ctx, r, w)
	})
	if ferr := vm.flush(w); err == nil {
		err = ferr
	}
	if err != nil {
		vm.logf("halt error: %v", err)
	} else {
		vm.logf("halt after %v steps", vm.steps)
	}
	return err
}

func (vm *VM[C]) run(ctx context.Context, in io.ByteReader, out flushio.Writer) error {
	for n := vm.prog.Len(); vm.pc < n; vm.steps++ {
		if vm.steps%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		next, err := vm.step(in, out)
		if err != nil {
			return err
		}
		vm.pc = next
	}
	return nil
}

// step executes the instruction at the program counter, returning the next
// program counter.
func (vm *VM[C]) step(in io.ByteReader, out flushio.Writer) (int, error) {
	inst := vm.prog.At(vm.pc)
	if vm.logfn != nil {
		vm.trace(inst)
	}
	switch inst.Op {
	case bft.MoveLeft:
		return vm.moveLeft(inst)
	case bft.MoveRight:
		return vm.moveRight(inst)
	case bft.Increment:
		return vm.increment(inst)
	case bft.Decrement:
		return vm.decrement(inst)
	case bft.Input:
		return vm.input(inst, in, out)
	case bft.Output:
		return vm.output(inst, out)
	case bft.BeginLoop:
		return vm.beginLoop(inst)
	case bft.EndLoop:
		return vm.endLoop(inst)
	}
	panic(fmt.Sprintf("invalid instruction %v", inst))
}

func (vm *VM[C]) moveLeft(inst bft.Instruction) (int, error) {
	if vm.head == 0 {
		return 0, vm.fail(HeadOutOfMemory, inst, nil)
	}
	vm.head--
	return vm.pc + 1, nil
}

func (vm *VM[C]) moveRight(inst bft.Instruction) (int, error) {
	if vm.head >= len(vm.tape)-1 {
		if !vm.elastic {
			return 0, vm.fail(HeadOutOfMemory, inst, nil)
		}
		var zero C
		vm.tape = append(vm.tape, zero)
	}
	vm.head++
	return vm.pc + 1, nil
}

func (vm *VM[C]) increment(inst bft.Instruction) (int, error) {
	if !vm.headOK() {
		return 0, vm.fail(BrokenHead, inst, nil)
	}
	vm.tape[vm.head] = vm.tape[vm.head].Inc()
	return vm.pc + 1, nil
}

func (vm *VM[C]) decrement(inst bft.Instruction) (int, error) {
	if !vm.headOK() {
		return 0, vm.fail(BrokenHead, inst, nil)
	}
	vm.tape[vm.head] = vm.tape[vm.head].Dec()
	return vm.pc + 1, nil
}

func (vm *VM[C]) input(inst bft.Instruction, in io.ByteReader, out flushio.Writer) (int, error) {
	if !vm.headOK() {
		return 0, vm.fail(BrokenHead, inst, nil)
	}
	if err := vm.flush(out); err != nil {
		return 0, err
	}
	b, err := in.ReadByte()
	if err != nil {
		return 0, vm.fail(IOError, inst, err)
	}
	vm.logf("input %v", byteio.Quote(b))
	vm.tape[vm.head] = vm.tape[vm.head].SetByte(b)
	return vm.pc + 1, nil
}

func (vm *VM[C]) output(inst bft.Instruction, out flushio.Writer) (int, error) {
	if !vm.headOK() {
		return 0, vm.fail(BrokenHead, inst, nil)
	}
	b := vm.tape[vm.head].Byte()
	vm.lastOut = vm.pc
	if err := out.WriteByte(b); err != nil {
		return 0, vm.fail(IOError, inst, err)
	}
	vm.logf("output %v", byteio.Quote(b))
	return vm.pc + 1, nil
}

func (vm *VM[C]) beginLoop(inst bft.Instruction) (int, error) {
	end, ok := vm.prog.MatchingBracket(vm.pc)
	if !ok {
		return 0, vm.fail(BrokenLoop, inst, nil)
	}
	if !vm.headOK() {
		return 0, vm.fail(BrokenHead, inst, nil)
	}
	var zero C
	if vm.tape[vm.head] == zero {
		return end + 1, nil
	}
	return vm.pc + 1, nil
}

func (vm *VM[C]) endLoop(inst bft.Instruction) (int, error) {
	begin, ok := vm.prog.MatchingBracket(vm.pc)
	if !ok {
		return 0, vm.fail(BrokenLoop, inst, nil)
	}
	return begin, nil
}

func (vm *VM[C]) headOK() bool { return vm.head >= 0 && vm.head < len(vm.tape) }

// flush flushes output, attributing any error to the last output
// instruction, since that is where the lost bytes came from.
func (vm *VM[C]) flush(out flushio.Writer) error {
	err := out.Flush()
	if err == nil {
		return nil
	}
	e := &Error{Errno: IOError, Err: err, PC: vm.lastOut, Head: vm.head}
	if vm.lastOut >= 0 && vm.lastOut < vm.prog.Len() {
		e.Instruction = vm.prog.At(vm.lastOut)
	}
	return e
}

func (vm *VM[C]) fail(errno Errno, inst bft.Instruction, err error) error {
	return &Error{
		Errno:       errno,
		Err:         err,
		Instruction: inst,
		PC:          vm.pc,
		Head:        vm.head,
	}
}

func (vm *VM[C]) trace(inst bft.Instruction) {
	if vm.headOK() {
		vm.logf("@%v %v:%v %v head=%v cell=%v",
			vm.pc, inst.Row, inst.Column, inst.Op, vm.head, vm.tape[vm.head])
	} else {
		vm.logf("@%v %v:%v %v head=%v", vm.pc, inst.Row, inst.Column, inst.Op, vm.head)
	}
}

func (vm *VM[C]) logf(mess string, args ...interface{}) {
	if vm.logfn != nil {
		vm.logfn(mess, args...)
	}
}
