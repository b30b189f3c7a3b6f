// Package mtstream implements the reference random engine: a 32-bit
// Mersenne Twister (MT19937) arranged the way numpy's legacy RandomState
// arranges it.
//
// Seeding uses the Knuth multiplier recurrence on the low 32 bits of the
// seed, doubles are built from two raw draws with 53 bits of precision,
// gaussians use the Marsaglia polar method with a one-variate cache, and
// bounded integers use masked rejection. Given the same seed, the stream of
// variates matches the reference generator draw for draw.
//
// MT19937 is not cryptographically secure. Use crypto/rand when an attacker
// predicting future values is part of the threat model.
package mtstream

import (
	"fmt"
	"math"

	"github.com/tinynum/nprand"
)

const (
	n = 624
	m = 397

	matrixA   uint32 = 0x9908b0df
	upperMask uint32 = 0x80000000
	lowerMask uint32 = 0x7fffffff

	// DefaultSeed is the canonical MT19937 default seed.
	DefaultSeed = 5489
)

var _ nprand.Engine = (*Engine)(nil)

// Engine is a seedable MT19937 generator. Not safe for concurrent use.
type Engine struct {
	state [n]uint32
	pos   int

	hasGauss bool
	gauss    float64
}

// New returns an engine seeded with DefaultSeed.
func New() *Engine {
	e := &Engine{}
	e.Seed(DefaultSeed)
	return e
}

// Seed resets the generator from the low 32 bits of seed and discards any
// cached gaussian variate.
func (e *Engine) Seed(seed int64) {
	e.state[0] = uint32(uint64(seed) & 0xffffffff)
	for i := uint32(1); i < n; i++ {
		e.state[i] = 1812433253*(e.state[i-1]^(e.state[i-1]>>30)) + i
	}
	e.pos = n
	e.hasGauss = false
	e.gauss = 0
}

// Uint32 returns the next raw 32-bit draw.
func (e *Engine) Uint32() uint32 {
	if e.pos >= n {
		e.twist()
	}
	y := e.state[e.pos]
	e.pos++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

func (e *Engine) twist() {
	for i := 0; i < n; i++ {
		y := (e.state[i] & upperMask) | (e.state[(i+1)%n] & lowerMask)
		next := e.state[(i+m)%n] ^ (y >> 1)
		if y&1 != 0 {
			next ^= matrixA
		}
		e.state[i] = next
	}
	e.pos = 0
}

// nextDouble combines two raw draws into a double in [0, 1) with 53 bits of
// precision, matching the reference generator's random_sample construction.
func (e *Engine) nextDouble() float64 {
	a := e.Uint32() >> 5
	b := e.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) / 9007199254740992.0
}

// nextGauss returns a standard normal variate via the polar method.
// Variates are produced in pairs; the second is cached for the next call.
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

// uintMax returns a draw uniformly distributed in [0, max] inclusive, using
// masked rejection so no modulo bias is introduced.
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

	if max <= math.MaxUint32 {
		for {
			v := uint64(e.Uint32()) & mask
			if v <= max {
				return v
			}
		}
	}
	for {
		v := (uint64(e.Uint32())<<32 | uint64(e.Uint32())) & mask
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
		return nil, fmt.Errorf("mtstream: low %d >= high %d", low, high)
	}
	// Unsigned subtraction stays correct even when high-low overflows int64.
	max := uint64(high) - uint64(low) - 1
	out := make([]int64, n)
	for i := range out {
		out[i] = low + int64(e.uintMax(max))
	}
	return out, nil
}

// Shuffle implements nprand.Engine using the Fisher-Yates walk from the top,
// drawing j inclusively in [0, i].
func (e *Engine) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := int(e.uintMax(uint64(i)))
		swap(i, j)
	}
}
