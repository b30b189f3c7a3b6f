package random

import "fmt"

var _ error = (*UnsupportedOperationError)(nil)

// UnsupportedOperationError is returned when an operation cannot service the
// given value in the direct execution path.
//
// It is a permanent restriction, not a transient failure: callers must
// convert the value to *ndarray.NDArray or invoke the fallback path.
type UnsupportedOperationError struct {
	// Op is the operation that rejected the value, e.g. "shuffle".
	Op string

	// Type is the Go type of the rejected value.
	Type string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf(
		"random: %s does not support %s in the direct path, convert to *ndarray.NDArray or use %sFallback",
		e.Op,
		e.Type,
		e.Op,
	)
}
