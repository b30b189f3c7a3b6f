package nprand

// Engine is a seedable pseudo-random generator.
//
// Implementations must be reproducible: the same seed followed by the same
// sequence of calls with the same arguments yields the same values. Two
// different implementations are under no obligation to agree with each other
// for any seed.
//
// Engines are not safe for concurrent use.
type Engine interface {
	// Seed resets the generator state from the given seed, discarding any
	// buffered variates.
	Seed(seed int64)

	// Random returns n doubles uniformly distributed in [0, 1).
	Random(n int) []float64

	// Uniform returns n doubles uniformly distributed in [low, high).
	Uniform(low, high float64, n int) []float64

	// Normal returns n gaussian variates with the given mean and standard
	// deviation.
	Normal(loc, scale float64, n int) []float64

	// RandInt returns n integers uniformly distributed in [low, high).
	// It returns an error when low >= high.
	RandInt(low, high int64, n int) ([]int64, error)

	// Shuffle permutes n elements by calling swap(i, j) with 0 <= j <= i < n.
	Shuffle(n int, swap func(i, j int))
}
