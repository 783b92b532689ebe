package printer

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewArguments means the format held a placeholder after every
	// argument had been used.
	ErrTooFewArguments = errors.New("too few arguments for format string")
	// ErrTooManyArguments means arguments were left over once the whole
	// format had been written.
	ErrTooManyArguments = errors.New("too many arguments for format string")
)

// MismatchError reports a placeholder/argument count mismatch. Err is one of
// ErrTooFewArguments or ErrTooManyArguments.
type MismatchError struct {
	Err error
	// Placeholders is the number of placeholders in the whole format.
	Placeholders int
	// Args is the number of arguments supplied.
	Args int
	// Offset is the byte offset where the scan stopped: the unsatisfied
	// placeholder for ErrTooFewArguments, len(format) otherwise.
	Offset int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%v: %d placeholder(s), %d argument(s)", e.Err, e.Placeholders, e.Args)
}

func (e *MismatchError) Unwrap() error { return e.Err }

// IsMismatch reports whether err is a placeholder/argument count mismatch.
func IsMismatch(err error) bool {
	var me *MismatchError
	return errors.As(err, &me)
}
