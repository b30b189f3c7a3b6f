package random

import (
	"fmt"
	"math"

	"github.com/tinynum/nprand"
	"github.com/tinynum/nprand/ndarray"
)

// ChoiceOptions controls Choice and ChoiceFrom.
type ChoiceOptions struct {
	// Size is the number of samples to draw. Must be at least 1.
	Size int

	// Replace allows the same candidate to be drawn more than once.
	Replace bool

	// P holds one probability per candidate. Entries must be non-negative
	// and sum to 1; zero-weight candidates are never selected. Nil means
	// uniform.
	P []float64
}

// Choice draws indices from the range [0, n).
//
// Choice(n, opts) is stream-equivalent to ChoiceFrom(ndarray.Arange(n), opts):
// both run the same index-sampling core against the same engine, so given
// the same seed they select the same values in the same order.
func (r *Router) Choice(n int64, opts ChoiceOptions) (*ndarray.NDArray, error) {
	e, b := r.engine()
	idx, err := choiceIndices(e, n, opts)
	if err != nil {
		return nil, err
	}
	countDraw(b, "choice")
	return ndarray.FromInt64s(idx), nil
}

// ChoiceFrom draws values from a 1-D candidate pool.
func (r *Router) ChoiceFrom(pool *ndarray.NDArray, opts ChoiceOptions) (*ndarray.NDArray, error) {
	if pool.NDim() != 1 {
		return nil, fmt.Errorf("random: choice pool must be 1-D, got %d dimensions", pool.NDim())
	}
	e, b := r.engine()
	idx, err := choiceIndices(e, int64(pool.Size()), opts)
	if err != nil {
		return nil, err
	}
	countDraw(b, "choice")
	data := pool.Data()
	out := make([]float64, len(idx))
	for i, j := range idx {
		out[i] = data[j]
	}
	return ndarray.FromSlice(out), nil
}

// choiceIndices is the sampling core shared by the count and pool forms.
// Validation failures surface before any engine draw, so a rejected call
// never mutates stream state.
func choiceIndices(e nprand.Engine, n int64, opts ChoiceOptions) ([]int64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("random: choice population must be positive, got %d", n)
	}
	if opts.Size < 1 {
		return nil, fmt.Errorf("random: choice size must be at least 1, got %d", opts.Size)
	}
	if opts.P != nil {
		return weightedIndices(e, n, opts)
	}
	if opts.Replace {
		return e.RandInt(0, n, opts.Size)
	}
	if int64(opts.Size) > n {
		return nil, fmt.Errorf(
			"random: cannot take %d samples from a population of %d without replacement",
			opts.Size,
			n,
		)
	}
	idx := make([]int64, n)
	for i := range idx {
		idx[i] = int64(i)
	}
	e.Shuffle(len(idx), func(i, j int) {
		idx[i], idx[j] = idx[j], idx[i]
	})
	return idx[:opts.Size], nil
}

// weightedIndices samples by CDF inversion. Without replacement, each drawn
// candidate's weight is zeroed and the remaining mass renormalized before
// the next draw.
func weightedIndices(e nprand.Engine, n int64, opts ChoiceOptions) ([]int64, error) {
	if int64(len(opts.P)) != n {
		return nil, fmt.Errorf("random: p must have %d entries, got %d", n, len(opts.P))
	}
	w := append([]float64(nil), opts.P...)
	total := 0.0
	nonzero := 0
	for i, v := range w {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("random: probabilities must be non-negative and finite, p[%d]=%v", i, v)
		}
		if v > 0 {
			nonzero++
		}
		total += v
	}
	if math.Abs(total-1) > 1e-8 {
		return nil, fmt.Errorf("random: probabilities do not sum to 1, sum=%v", total)
	}
	if !opts.Replace && nonzero < opts.Size {
		return nil, fmt.Errorf(
			"random: only %d candidates have non-zero probability, cannot draw %d without replacement",
			nonzero,
			opts.Size,
		)
	}

	out := make([]int64, 0, opts.Size)
	remaining := total
	for len(out) < opts.Size {
		// target < remaining, and a zero-weight candidate never moves the
		// cumulative sum past target first, so index 0-weight entries are
		// unreachable.
		target := e.Random(1)[0] * remaining
		cum := 0.0
		pick := -1
		for i, v := range w {
			cum += v
			if cum > target {
				pick = i
				break
			}
		}
		if pick < 0 {
			// Round-off pushed target past the final cumulative sum; take
			// the last candidate with mass.
			for i := len(w) - 1; i >= 0; i-- {
				if w[i] > 0 {
					pick = i
					break
				}
			}
		}
		out = append(out, int64(pick))
		if !opts.Replace {
			remaining -= w[pick]
			w[pick] = 0
		}
	}
	return out, nil
}
