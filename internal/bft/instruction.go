// Package bft implements loading and bracket resolution of programs written
// in the eight instruction tape language.
package bft

import "fmt"

// RawInstruction is one of the eight instructions of the language.
type RawInstruction uint8

// Instruction symbols, in source alphabet order.
const (
	MoveLeft  RawInstruction = iota // <
	MoveRight                       // >
	Increment                       // +
	Decrement                       // -
	Input                           // ,
	Output                          // .
	BeginLoop                       // [
	EndLoop                         // ]
)

var rawSymbols = [...]rune{
	MoveLeft:  '<',
	MoveRight: '>',
	Increment: '+',
	Decrement: '-',
	Input:     ',',
	Output:    '.',
	BeginLoop: '[',
	EndLoop:   ']',
}

var rawNames = [...]string{
	MoveLeft:  "move left",
	MoveRight: "move right",
	Increment: "increment",
	Decrement: "decrement",
	Input:     "input",
	Output:    "output",
	BeginLoop: "begin loop",
	EndLoop:   "end loop",
}

// ParseRawInstruction returns the instruction denoted by r, and false if r is
// not one of the eight instruction symbols.
func ParseRawInstruction(r rune) (RawInstruction, bool) {
	switch r {
	case '<':
		return MoveLeft, true
	case '>':
		return MoveRight, true
	case '+':
		return Increment, true
	case '-':
		return Decrement, true
	case ',':
		return Input, true
	case '.':
		return Output, true
	case '[':
		return BeginLoop, true
	case ']':
		return EndLoop, true
	}
	return 0, false
}

// Symbol returns the source symbol of the instruction.
func (ri RawInstruction) Symbol() rune {
	if int(ri) < len(rawSymbols) {
		return rawSymbols[ri]
	}
	return '?'
}

// Name returns a human readable name like "begin loop".
func (ri RawInstruction) Name() string {
	if int(ri) < len(rawNames) {
		return rawNames[ri]
	}
	return fmt.Sprintf("RawInstruction(%d)", uint8(ri))
}

func (ri RawInstruction) String() string { return string(ri.Symbol()) }

// Instruction is a RawInstruction along with its 1-based source location.
type Instruction struct {
	Op     RawInstruction
	Row    int
	Column int
}

func (inst Instruction) String() string {
	return fmt.Sprintf("%v@%v:%v", inst.Op, inst.Row, inst.Column)
}

// Location formats the instruction position for diagnostics.
func (inst Instruction) Location() string {
	return fmt.Sprintf("row %v column %v", inst.Row, inst.Column)
}

// ExtractInstructions scans text for instruction symbols, skipping every
// other character. Rows count lines from 1, columns count characters (not
// bytes) within a line from 1.
func ExtractInstructions(text string) []Instruction {
	var insts []Instruction
	row, col := 1, 0
	for _, r := range text {
		if r == '\n' {
			row++
			col = 0
			continue
		}
		col++
		if op, ok := ParseRawInstruction(r); ok {
			insts = append(insts, Instruction{Op: op, Row: row, Column: col})
		}
	}
	return insts
}
