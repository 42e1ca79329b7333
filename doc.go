/* Command gobft interprets programs written in the eight instruction tape
language usually known as brainfuck.

A program is a text file; the only meaningful characters are

	<  move the head one cell left
	>  move the head one cell right
	+  increment the cell under the head
	-  decrement the cell under the head
	,  read one byte of input into the cell under the head
	.  write the cell under the head as one byte of output
	[  if the cell under the head is zero, jump past the matching ]
	]  jump back to the matching [

Every other character is a comment. Loop brackets are matched before the
program starts, so unbalanced programs are rejected with the row and column
of the offending bracket.

The tape starts out with 30000 zero cells, and a fixed left edge. By default
moving past the right end is an error; with -extensible the tape grows by one
cell instead. Cells are 8 bits wide and wrap around; -width may select 16 or
32 bit cells.

Usage:

	gobft [flags] PROGRAM

Flags may also be given in a TOML file named by -config, e.g.

	cells = 1000
	extensible = true
	width = 16
	timeout = "10s"

Flags given on the command line override values from the file.
*/
package main
