package interp

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jcorbin/gobft/internal/byteio"
)

// dumpRadius is how many cells either side of the head Dump prints.
const dumpRadius = 8

// Dump writes a human readable description of the VM state to w: the program
// counter, the head, and a window of cells around the head. Zero cells away
// from the head are elided.
func (vm *VM[C]) Dump(w io.Writer) error {
	dump := vmDumper[C]{vm: vm, out: w}
	dump.dump()
	return dump.err
}

type vmDumper[C Cell[C]] struct {
	vm  *VM[C]
	out io.Writer
	err error

	addrWidth int
}

func (dump *vmDumper[C]) printf(format string, args ...interface{}) {
	if dump.err == nil {
		_, dump.err = fmt.Fprintf(dump.out, format, args...)
	}
}

func (dump *vmDumper[C]) dump() {
	vm := dump.vm
	dump.printf("# VM Dump\n")
	if name := vm.prog.Filename(); name != "" {
		dump.printf("  prog: %v (%v instructions)\n", name, vm.prog.Len())
	} else {
		dump.printf("  prog: %v instructions\n", vm.prog.Len())
	}
	if vm.pc < vm.prog.Len() {
		inst := vm.prog.At(vm.pc)
		dump.printf("  pc: %v %v at %v\n", vm.pc, inst.Op, inst.Location())
	} else {
		dump.printf("  pc: %v end\n", vm.pc)
	}
	dump.printf("  steps: %v\n", vm.steps)
	dump.printf("  head: %v\n", vm.head)
	dump.printf("  tape: %v cells", len(vm.tape))
	if vm.elastic {
		dump.printf(" elastic")
	}
	dump.printf("\n")
	dump.dumpTape()
}

func (dump *vmDumper[C]) dumpTape() {
	vm := dump.vm
	lo, hi := vm.head-dumpRadius, vm.head+dumpRadius+1
	if lo < 0 {
		lo = 0
	}
	if hi > len(vm.tape) {
		hi = len(vm.tape)
	}
	if dump.addrWidth == 0 {
		dump.addrWidth = len(strconv.Itoa(hi))
	}
	var zero C
	for addr := lo; addr < hi; addr++ {
		cell := vm.tape[addr]
		if addr != vm.head && cell == zero {
			continue
		}
		dump.printf("  @%*v %v %v", dump.addrWidth, addr, cell, byteio.Quote(cell.Byte()))
		if addr == vm.head {
			dump.printf(" <-- head")
		}
		dump.printf("\n")
	}
}
