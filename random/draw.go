package random

import (
	"github.com/tinynum/nprand/ndarray"
)

func sizeOf(shape []int) int {
	size := 1
	for _, dim := range shape {
		size *= dim
	}
	return size
}

// arrayOf wraps engine output into an array of exactly the requested shape,
// so an empty shape yields a zero-dimensional array rather than FromSlice's
// 1-D default.
func arrayOf(data []float64, shape []int) *ndarray.NDArray {
	a := ndarray.New(shape...)
	copy(a.Data(), data)
	return a
}

func intArrayOf(data []int64, shape []int) *ndarray.NDArray {
	a := ndarray.New(shape...)
	out := a.Data()
	for i, v := range data {
		out[i] = float64(v)
	}
	return a
}

// Uniform returns a single draw uniformly distributed in [low, high).
func (r *Router) Uniform(low, high float64) float64 {
	e, b := r.engine()
	countDraw(b, "uniform")
	return e.Uniform(low, high, 1)[0]
}

// UniformArray returns an array of the given shape with draws uniformly
// distributed in [low, high). An empty shape yields a zero-dimensional
// array holding one element.
func (r *Router) UniformArray(low, high float64, shape ...int) *ndarray.NDArray {
	e, b := r.engine()
	countDraw(b, "uniform")
	return arrayOf(e.Uniform(low, high, sizeOf(shape)), shape)
}

// Normal returns a single gaussian draw with the given mean and standard
// deviation.
func (r *Router) Normal(loc, scale float64) float64 {
	e, b := r.engine()
	countDraw(b, "normal")
	return e.Normal(loc, scale, 1)[0]
}

// NormalArray returns an array of gaussian draws of the given shape.
func (r *Router) NormalArray(loc, scale float64, shape ...int) *ndarray.NDArray {
	e, b := r.engine()
	countDraw(b, "normal")
	return arrayOf(e.Normal(loc, scale, sizeOf(shape)), shape)
}

// Random returns a single draw in [0, 1).
func (r *Router) Random() float64 {
	e, b := r.engine()
	countDraw(b, "random")
	return e.Random(1)[0]
}

// RandomArray returns an array of draws in [0, 1) of the given shape.
func (r *Router) RandomArray(shape ...int) *ndarray.NDArray {
	e, b := r.engine()
	countDraw(b, "random")
	return arrayOf(e.Random(sizeOf(shape)), shape)
}

// RandomSample is an alias for Random.
func (r *Router) RandomSample() float64 {
	return r.Random()
}

// RandomSampleArray is an alias for RandomArray.
func (r *Router) RandomSampleArray(shape ...int) *ndarray.NDArray {
	return r.RandomArray(shape...)
}

// Sample is an alias for Random.
func (r *Router) Sample() float64 {
	return r.Random()
}

// SampleArray is an alias for RandomArray.
func (r *Router) SampleArray(shape ...int) *ndarray.NDArray {
	return r.RandomArray(shape...)
}

// Rand is an alias for Random.
func (r *Router) Rand() float64 {
	return r.Random()
}

// RandArray is an alias for RandomArray.
func (r *Router) RandArray(shape ...int) *ndarray.NDArray {
	return r.RandomArray(shape...)
}

// Randn returns a single standard gaussian draw.
func (r *Router) Randn() float64 {
	return r.Normal(0, 1)
}

// RandnArray returns an array of standard gaussian draws of the given shape.
func (r *Router) RandnArray(shape ...int) *ndarray.NDArray {
	return r.NormalArray(0, 1, shape...)
}

// RandInt returns a single integer uniformly distributed in [low, high).
// The error comes straight from the selected engine when low >= high.
func (r *Router) RandInt(low, high int64) (int64, error) {
	e, b := r.engine()
	v, err := e.RandInt(low, high, 1)
	if err != nil {
		return 0, err
	}
	countDraw(b, "randint")
	return v[0], nil
}

// RandIntArray returns an array of integers uniformly distributed in
// [low, high) of the given shape. Values are stored as float64 and stay
// exact within the 53-bit integer range.
func (r *Router) RandIntArray(low, high int64, shape ...int) (*ndarray.NDArray, error) {
	e, b := r.engine()
	v, err := e.RandInt(low, high, sizeOf(shape))
	if err != nil {
		return nil, err
	}
	countDraw(b, "randint")
	return intArrayOf(v, shape), nil
}
