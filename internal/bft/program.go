package bft

import (
	"fmt"
	"os"
)

// Program is an ordered sequence of instructions along with the loop jump
// table computed by CheckSyntax.
//
// Once CheckSyntax succeeds a Program is read-only, and may be shared by any
// number of virtual machines.
type Program struct {
	filename     string
	instructions []Instruction

	// jumps maps each bracket index to its partner, and every other index to
	// -1; nil until resolution succeeds.
	jumps []int
}

// FromSource creates an unresolved program from source text; filename is
// only used for diagnostics.
func FromSource(text, filename string) *Program {
	return &Program{
		filename:     filename,
		instructions: ExtractInstructions(text),
	}
}

// Load reads a program from the named file. The returned program has not been
// checked yet.
func Load(filename string) (*Program, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return FromSource(string(b), filename), nil
}

// Filename returns the name given when the program was created.
func (prog *Program) Filename() string { return prog.filename }

// Len returns the number of instructions.
func (prog *Program) Len() int { return len(prog.instructions) }

// At returns the i-th instruction; it panics if i is out of range.
func (prog *Program) At(i int) Instruction { return prog.instructions[i] }

// Instructions returns a copy of the instruction sequence.
func (prog *Program) Instructions() []Instruction {
	return append([]Instruction(nil), prog.instructions...)
}

// Resolved returns true after a successful CheckSyntax.
func (prog *Program) Resolved() bool { return prog.jumps != nil }

// MatchingBracket returns the index of the bracket paired with the one at
// index i, and false if i is not a resolved bracket.
func (prog *Program) MatchingBracket(i int) (int, bool) {
	if i < 0 || i >= len(prog.jumps) {
		return 0, false
	}
	if j := prog.jumps[i]; j >= 0 {
		return j, true
	}
	return 0, false
}

// CheckSyntax pairs up loop brackets, building the jump table used during
// execution. It fails with a *ProgramError on the first unopened EndLoop, or
// on the innermost BeginLoop left open at the end of the program. The jump
// table is only replaced on success; after a failure the program remains
// unresolved.
func (prog *Program) CheckSyntax() error {
	jumps := make([]int, len(prog.instructions))
	var open []int
	for i, inst := range prog.instructions {
		jumps[i] = -1
		switch inst.Op {
		case BeginLoop:
			open = append(open, i)
		case EndLoop:
			j := len(open) - 1
			if j < 0 {
				prog.jumps = nil
				return &ProgramError{UnopenedLoop, inst}
			}
			begin := open[j]
			open = open[:j]
			jumps[begin] = i
			jumps[i] = begin
		}
	}
	if j := len(open) - 1; j >= 0 {
		prog.jumps = nil
		return &ProgramError{UnclosedLoop, prog.instructions[open[j]]}
	}
	prog.jumps = jumps
	return nil
}

// ErrorKind distinguishes program syntax errors.
type ErrorKind int

// Syntax error kinds.
const (
	UnclosedLoop ErrorKind = iota + 1
	UnopenedLoop
)

func (kind ErrorKind) Error() string {
	switch kind {
	case UnclosedLoop:
		return "unclosed loop"
	case UnopenedLoop:
		return "unopened loop"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(kind))
}

// ProgramError is a syntax error found by CheckSyntax.
type ProgramError struct {
	Kind        ErrorKind
	Instruction Instruction
}

func (err *ProgramError) Error() string {
	switch err.Kind {
	case UnclosedLoop:
		return "found unclosed bracket at " + err.Instruction.Location()
	case UnopenedLoop:
		return "found no matching opening bracket for bracket at " + err.Instruction.Location()
	}
	return fmt.Sprintf("%v at %v", err.Kind, err.Instruction.Location())
}

// Is allows errors.Is(err, UnclosedLoop) and the like.
func (err *ProgramError) Is(target error) bool {
	kind, ok := target.(ErrorKind)
	return ok && kind == err.Kind
}
