// Package ndarray provides the minimal row-major array type the random
// package wraps sized results into.
//
// It deliberately implements only what stream routing needs: construction,
// element access, copying, bitwise comparison, and leading-axis operations.
// It is not a general array math library.
package ndarray

import "fmt"

// NDArray is a dense, row-major, float64-backed array.
//
// A zero-dimensional NDArray holds exactly one element.
type NDArray struct {
	shape []int
	data  []float64
}

// New returns a zero-filled array of the given shape.
//
// New() with no dimensions returns a zero-dimensional array holding a single
// element. New panics if any dimension is negative.
func New(shape ...int) *NDArray {
	size := 1
	for _, dim := range shape {
		if dim < 0 {
			panic(fmt.Sprintf("ndarray: negative dimension %d in shape %v", dim, shape))
		}
		size *= dim
	}
	return &NDArray{
		shape: append([]int(nil), shape...),
		data:  make([]float64, size),
	}
}

// FromSlice copies data into a new array of the given shape.
//
// With no shape it returns a 1-D array of len(data). It panics if the shape
// does not match len(data).
func FromSlice(data []float64, shape ...int) *NDArray {
	if len(shape) == 0 {
		shape = []int{len(data)}
	}
	a := New(shape...)
	if len(a.data) != len(data) {
		panic(fmt.Sprintf("ndarray: shape %v does not hold %d elements", shape, len(data)))
	}
	copy(a.data, data)
	return a
}

// FromInt64s copies integer data into a new array of the given shape.
//
// Values are stored as float64 and remain exact within the 53-bit integer
// range.
func FromInt64s(data []int64, shape ...int) *NDArray {
	converted := make([]float64, len(data))
	for i, v := range data {
		converted[i] = float64(v)
	}
	return FromSlice(converted, shape...)
}

// Arange returns a 1-D array holding 0, 1, ..., n-1.
func Arange(n int) *NDArray {
	a := New(n)
	for i := range a.data {
		a.data[i] = float64(i)
	}
	return a
}

// Shape returns a copy of the array's shape.
func (a *NDArray) Shape() []int {
	return append([]int(nil), a.shape...)
}

// NDim returns the number of dimensions.
func (a *NDArray) NDim() int {
	return len(a.shape)
}

// Size returns the total number of elements.
func (a *NDArray) Size() int {
	return len(a.data)
}

// Data returns the underlying storage in row-major order.
//
// The slice is shared with the array; mutating it mutates the array.
func (a *NDArray) Data() []float64 {
	return a.data
}

// At returns the element at the given index, one coordinate per dimension.
func (a *NDArray) At(index ...int) float64 {
	return a.data[a.offset(index)]
}

// Set assigns the element at the given index.
func (a *NDArray) Set(v float64, index ...int) {
	a.data[a.offset(index)] = v
}

func (a *NDArray) offset(index []int) int {
	if len(index) != len(a.shape) {
		panic(fmt.Sprintf("ndarray: %d indices for %d dimensions", len(index), len(a.shape)))
	}
	off := 0
	for d, i := range index {
		if i < 0 || i >= a.shape[d] {
			panic(fmt.Sprintf("ndarray: index %d out of range for axis %d with size %d", i, d, a.shape[d]))
		}
		off = off*a.shape[d] + i
	}
	return off
}

// Copy returns a deep copy of the array.
func (a *NDArray) Copy() *NDArray {
	c := New(a.shape...)
	copy(c.data, a.data)
	return c
}

// Equal reports whether b has the same shape and bitwise-equal values.
func (a *NDArray) Equal(b *NDArray) bool {
	if len(a.shape) != len(b.shape) {
		return false
	}
	for d := range a.shape {
		if a.shape[d] != b.shape[d] {
			return false
		}
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}

// Lead returns the length of the leading axis.
//
// For a zero-dimensional array it returns 0: there is nothing to permute.
func (a *NDArray) Lead() int {
	if len(a.shape) == 0 {
		return 0
	}
	return a.shape[0]
}

// Row returns the i-th sub-array along the leading axis as a shared slice.
func (a *NDArray) Row(i int) []float64 {
	bs := a.blockSize()
	return a.data[i*bs : (i+1)*bs]
}

// SwapLead exchanges sub-arrays i and j along the leading axis in place,
// preserving the element order inside each sub-array.
func (a *NDArray) SwapLead(i, j int) {
	if i == j {
		return
	}
	bs := a.blockSize()
	x := a.data[i*bs : (i+1)*bs]
	y := a.data[j*bs : (j+1)*bs]
	for k := range x {
		x[k], y[k] = y[k], x[k]
	}
}

func (a *NDArray) blockSize() int {
	if len(a.shape) == 0 || a.shape[0] == 0 {
		panic("ndarray: no leading axis")
	}
	return len(a.data) / a.shape[0]
}

func (a *NDArray) String() string {
	return fmt.Sprintf("ndarray(shape=%v, data=%v)", a.shape, a.data)
}
