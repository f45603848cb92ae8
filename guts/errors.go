package guts

import (
	"fmt"

	"github.com/filecoin-project/go-c10/util"
)

type gutsError string

func (e gutsError) Error() string {
	return string(e)
}

// ErrOutOfRange is matched by every error reporting an index outside [0, N)
const ErrOutOfRange = gutsError("index out of range")

// ErrLengthMismatch is returned when a source does not hold exactly N elements
const ErrLengthMismatch = gutsError("length mismatch")

// OutOfRangeError is returned by the checked accessors.
type OutOfRangeError struct {
	Index int
	Size  int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Size)
}

func (e *OutOfRangeError) Is(err error) bool {
	return err == ErrOutOfRange
}

func checkIndex(idx int, size int) error {
	if !util.InBounds(idx, size) {
		return &OutOfRangeError{Index: idx, Size: size}
	}
	return nil
}
