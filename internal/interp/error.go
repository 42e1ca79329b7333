package interp

import (
	"fmt"

	"github.com/jcorbin/gobft/internal/bft"
)

// VM failure kinds for Error.Errno.
const (
	HeadOutOfMemory = Errno(iota + 1)
	BrokenHead
	BrokenLoop
	IOError
)

var strError = [...]string{
	HeadOutOfMemory: "head out of memory",
	BrokenHead:      "broken head",
	BrokenLoop:      "broken loop",
	IOError:         "I/O error",
}

// Errno describes the reason that a VM run failed.
type Errno int

func (e Errno) Error() string {
	if e > 0 && int(e) < len(strError) {
		return strError[e]
	}
	return fmt.Sprintf("Errno(%d)", int(e))
}

// Error describes the cause and the context of a VM failure.
type Error struct {
	Errno       Errno           // nature of the failure
	Err         error           // stream error when Errno is IOError
	Instruction bft.Instruction // instruction that failed
	PC          int             // program counter of the failed instruction
	Head        int             // tape position at the time of the failure
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %v at %v", e.Errno, e.Err, e.Instruction.Location())
	}
	return fmt.Sprintf("%v at %v", e.Errno, e.Instruction.Location())
}

// Unwrap returns any underlying stream error.
func (e *Error) Unwrap() error { return e.Err }

// Is allows errors.Is(err, HeadOutOfMemory) and the like.
func (e *Error) Is(target error) bool {
	errno, ok := target.(Errno)
	return ok && errno == e.Errno
}
