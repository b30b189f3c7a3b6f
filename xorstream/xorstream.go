// Package xorstream implements the alternate random engine: a xorshift128+
// generator with splitmix64 seed expansion.
//
// The stream is reproducible given a seed but is independent of, and
// uncorrelated with, the mtstream reference stream. Use it when stream
// compatibility with the reference generator is not required; it is
// considerably cheaper per draw.
package xorstream

import (
	"fmt"
	"math"

	"github.com/tinynum/nprand"
)

var _ nprand.Engine = (*Engine)(nil)

// Engine is a seedable xorshift128+ generator. Not safe for concurrent use.
type Engine struct {
	s0, s1 uint64

	hasGauss bool
	gauss    float64
}

// New returns an engine seeded with the given seed.
func New(seed int64) *Engine {
	e := &Engine{}
	e.Seed(seed)
	return e
}

// Seed expands the seed into the 128-bit state with splitmix64 and discards
// any cached gaussian variate. splitmix64 guarantees a non-degenerate state
// for every seed, including zero.
func (e *Engine) Seed(seed int64) {
	x := uint64(seed)
	e.s0 = splitmix64(&x)
	e.s1 = splitmix64(&x)
	e.hasGauss = false
	e.gauss = 0
}

func splitmix64(x *uint64) uint64 {
	*x += 0x9e3779b97f4a7c15
	z := *x
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Uint64 returns the next raw 64-bit draw.
func (e *Engine) Uint64() uint64 {
	x, y := e.s0, e.s1
	e.s0 = y
	x ^= x << 23
	e.s1 = x ^ y ^ (x >> 17) ^ (y >> 26)
	return e.s1 + y
}

// nextDouble keeps the top 53 bits of a raw draw.
func (e *Engine) nextDouble() float64 {
	return float64(e.Uint64()>>11) / (1 << 53)
}

func (e *Engine) nextGauss() float64 {
	if e.hasGauss {
		e.hasGauss = false
		g := e.gauss
		e.gauss = 0
		return g
	}
	for {
		x1 := 2*e.nextDouble() - 1
		x2 := 2*e.nextDouble() - 1
		r2 := x1*x1 + x2*x2
		if r2 < 1 && r2 != 0 {
			f := math.Sqrt(-2 * math.Log(r2) / r2)
			e.gauss = f * x1
			e.hasGauss = true
			return f * x2
		}
	}
}

// uintMax returns a draw uniformly distributed in [0, max] inclusive.
func (e *Engine) uintMax(max uint64) uint64 {
	if max == 0 {
		return 0
	}
	mask := max
	mask |= mask >> 1
	mask |= mask >> 2
	mask |= mask >> 4
	mask |= mask >> 8
	mask |= mask >> 16
	mask |= mask >> 32
	for {
		v := e.Uint64() & mask
		if v <= max {
			return v
		}
	}
}

// Random implements nprand.Engine.
func (e *Engine) Random(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = e.nextDouble()
	}
	return out
}

// Uniform implements nprand.Engine.
func (e *Engine) Uniform(low, high float64, n int) []float64 {
	scale := high - low
	out := make([]float64, n)
	for i := range out {
		out[i] = low + scale*e.nextDouble()
	}
	return out
}

// Normal implements nprand.Engine.
func (e *Engine) Normal(loc, scale float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = loc + scale*e.nextGauss()
	}
	return out
}

// RandInt implements nprand.Engine.
func (e *Engine) RandInt(low, high int64, n int) ([]int64, error) {
	if low >= high {
		return nil, fmt.Errorf("xorstream: low %d >= high %d", low, high)
	}
	max := uint64(high) - uint64(low) - 1
	out := make([]int64, n)
	for i := range out {
		out[i] = low + int64(e.uintMax(max))
	}
	return out, nil
}

// Shuffle implements nprand.Engine.
func (e *Engine) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := int(e.uintMax(uint64(i)))
		swap(i, j)
	}
}
