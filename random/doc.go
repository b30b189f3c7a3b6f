// Package random exposes a numpy-style random-number surface routed to one
// of two interchangeable backend engines.
//
// Which engine services a call is decided at call time from
// streamcfg.UseNumpyStream: true selects the reference (numpy-compatible
// MT19937) stream, false selects the alternate (xorshift128+) stream. The
// two streams are independent; Seed only touches the engine selected at the
// moment of the call, and flipping the flag afterwards does not reseed the
// newly selected engine.
//
// Every generator comes in two forms. The scalar form (Uniform, Normal,
// Rand, Randn, Random, RandomSample, Sample, RandInt) returns a native Go
// number for a single draw. The array form (UniformArray, NormalArray, ...)
// takes a shape and returns an *ndarray.NDArray of that shape.
//
// Shuffle permutes an *ndarray.NDArray along its leading axis only and
// refuses plain Go slices; ShuffleFallback accepts both but always draws
// from the reference stream regardless of the flag. See the function docs
// for why this asymmetry exists.
package random
