package random

import (
	"fmt"
	"reflect"

	"github.com/tinynum/nprand/ndarray"
)

// Shuffle permutes v in place along its leading axis using the selected
// engine. For multi-dimensional arrays, sub-arrays are moved as whole units
// and their inner element order is preserved.
//
// Only *ndarray.NDArray is supported; any other value fails with
// *UnsupportedOperationError. Plain slices go through ShuffleFallback,
// which draws from a different effective stream.
func (r *Router) Shuffle(v interface{}) error {
	a, ok := v.(*ndarray.NDArray)
	if !ok {
		return &UnsupportedOperationError{
			Op:   "shuffle",
			Type: fmt.Sprintf("%T", v),
		}
	}
	e, b := r.engine()
	countDraw(b, "shuffle")
	e.Shuffle(a.Lead(), a.SwapLead)
	return nil
}

// ShuffleFallback permutes v in place, accepting both *ndarray.NDArray and
// plain Go slices.
//
// It always draws from the reference engine, no matter what the stream flag
// says. This mirrors the compatibility fallback of the system this package
// interoperates with, so shuffling a slice here and shuffling an array via
// Shuffle under the alternate stream consume different streams. Callers that
// need one stream for everything must convert slices to arrays and use
// Shuffle.
func (r *Router) ShuffleFallback(v interface{}) error {
	if a, ok := v.(*ndarray.NDArray); ok {
		countDraw(BackendReference, "shuffle_fallback")
		r.reference.Shuffle(a.Lead(), a.SwapLead)
		return nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return &UnsupportedOperationError{
			Op:   "shuffle",
			Type: fmt.Sprintf("%T", v),
		}
	}
	countDraw(BackendReference, "shuffle_fallback")
	r.reference.Shuffle(rv.Len(), reflect.Swapper(v))
	return nil
}
