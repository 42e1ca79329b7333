package interp

// Cell is the capability set required of tape cells. The zero value of C is
// the initial value of every cell; Inc and Dec must wrap around the range of
// C rather than overflow. SetByte and Byte transfer a single stream byte into
// and out of a cell.
type Cell[C any] interface {
	comparable
	Inc() C
	Dec() C
	SetByte(b byte) C
	Byte() byte
}

// U8 is the reference 8-bit cell.
type U8 uint8

func (c U8) Inc() U8           { return c + 1 }
func (c U8) Dec() U8           { return c - 1 }
func (c U8) SetByte(b byte) U8 { return U8(b) }
func (c U8) Byte() byte        { return byte(c) }

// U16 is a 16-bit cell; input replaces the whole cell value with the byte
// read, output writes the low byte.
type U16 uint16

func (c U16) Inc() U16           { return c + 1 }
func (c U16) Dec() U16           { return c - 1 }
func (c U16) SetByte(b byte) U16 { return U16(b) }
func (c U16) Byte() byte         { return byte(c) }

// U32 is a 32-bit cell, with the same byte semantics as U16.
type U32 uint32

func (c U32) Inc() U32           { return c + 1 }
func (c U32) Dec() U32           { return c - 1 }
func (c U32) SetByte(b byte) U32 { return U32(b) }
func (c U32) Byte() byte         { return byte(c) }
