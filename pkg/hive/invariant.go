package hive

import "fmt"

// invariant panics if cond is false. Used for programming-error conditions
// that indicate a caller bug rather than a recoverable rule violation:
// lifting from an empty cell, cross-linking over an already-assigned
// neighbor, applying a malformed Move, overflowing the move buffer. See
// the error handling design: the core favors total functions and reserves
// panics for these cases.
func invariant(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
