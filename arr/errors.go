package arr

import (
	"errors"
	"fmt"
)

// ErrArgumentOutOfRange is returned by the bounded search helpers when the
// start index or count describes a window outside the slice.
var ErrArgumentOutOfRange = errors.New("arr: argument out of range")

// ArgumentError describes which argument of a bounded search was rejected.
// It unwraps to [ErrArgumentOutOfRange].
type ArgumentError struct {
	Op     string // helper name, e.g. "IndexOfRange"
	Param  string // "startIndex" or "count"
	Value  int
	Length int // length of the searched slice
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("arr: %s: %s %d out of range for length %d", e.Op, e.Param, e.Value, e.Length)
}

func (e *ArgumentError) Unwrap() error { return ErrArgumentOutOfRange }

func outOfRange(op, param string, value, length int) error {
	return &ArgumentError{Op: op, Param: param, Value: value, Length: length}
}
