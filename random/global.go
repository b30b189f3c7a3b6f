package random

import (
	"github.com/tinynum/nprand/mtstream"
	"github.com/tinynum/nprand/ndarray"
	"github.com/tinynum/nprand/xorstream"
)

// Default is the process-wide router the package-level functions delegate
// to, mirroring the module-level functions of the API this package is
// compatible with.
var Default = NewRouter(mtstream.New(), xorstream.New(0))

// Seed reseeds Default's currently selected engine.
func Seed(seed int64) {
	Default.Seed(seed)
}

// Uniform draws a single value in [low, high) from Default.
func Uniform(low, high float64) float64 {
	return Default.Uniform(low, high)
}

// UniformArray draws an array of values in [low, high) from Default.
func UniformArray(low, high float64, shape ...int) *ndarray.NDArray {
	return Default.UniformArray(low, high, shape...)
}

// Normal draws a single gaussian value from Default.
func Normal(loc, scale float64) float64 {
	return Default.Normal(loc, scale)
}

// NormalArray draws an array of gaussian values from Default.
func NormalArray(loc, scale float64, shape ...int) *ndarray.NDArray {
	return Default.NormalArray(loc, scale, shape...)
}

// Random draws a single value in [0, 1) from Default.
func Random() float64 {
	return Default.Random()
}

// RandomArray draws an array of values in [0, 1) from Default.
func RandomArray(shape ...int) *ndarray.NDArray {
	return Default.RandomArray(shape...)
}

// RandomSample is an alias for Random.
func RandomSample() float64 {
	return Default.RandomSample()
}

// RandomSampleArray is an alias for RandomArray.
func RandomSampleArray(shape ...int) *ndarray.NDArray {
	return Default.RandomSampleArray(shape...)
}

// Sample is an alias for Random.
func Sample() float64 {
	return Default.Sample()
}

// SampleArray is an alias for RandomArray.
func SampleArray(shape ...int) *ndarray.NDArray {
	return Default.SampleArray(shape...)
}

// Rand is an alias for Random.
func Rand() float64 {
	return Default.Rand()
}

// RandArray is an alias for RandomArray.
func RandArray(shape ...int) *ndarray.NDArray {
	return Default.RandArray(shape...)
}

// Randn draws a single standard gaussian value from Default.
func Randn() float64 {
	return Default.Randn()
}

// RandnArray draws an array of standard gaussian values from Default.
func RandnArray(shape ...int) *ndarray.NDArray {
	return Default.RandnArray(shape...)
}

// RandInt draws a single integer in [low, high) from Default.
func RandInt(low, high int64) (int64, error) {
	return Default.RandInt(low, high)
}

// RandIntArray draws an array of integers in [low, high) from Default.
func RandIntArray(low, high int64, shape ...int) (*ndarray.NDArray, error) {
	return Default.RandIntArray(low, high, shape...)
}

// Shuffle permutes an array in place via Default.
func Shuffle(v interface{}) error {
	return Default.Shuffle(v)
}

// ShuffleFallback permutes an array or slice in place via Default's
// reference engine.
func ShuffleFallback(v interface{}) error {
	return Default.ShuffleFallback(v)
}

// Choice draws indices from [0, n) via Default.
func Choice(n int64, opts ChoiceOptions) (*ndarray.NDArray, error) {
	return Default.Choice(n, opts)
}

// ChoiceFrom draws values from a 1-D pool via Default.
func ChoiceFrom(pool *ndarray.NDArray, opts ChoiceOptions) (*ndarray.NDArray, error) {
	return Default.ChoiceFrom(pool, opts)
}
