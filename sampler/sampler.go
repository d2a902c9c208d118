// Package sampler - masked uniform sequence sampling.
//
// Design principles:
//   - One prior.Stepper per sequence; O(L) work per position.
//   - Strict sentinels; a fully masked position is a configuration
//     problem, not something to paper over.
package sampler

import (
	"math/rand"

	"github.com/katalvlaran/symexpr/prior"
	"github.com/katalvlaran/symexpr/token"
)

// Sample draws one sequence: at each position it picks uniformly among
// the tokens the prior still permits, until the arity balance reaches
// zero or Prior.Rows tokens have been drawn. The returned sequence may
// therefore still be dangling at the row budget; run codec.Complete
// before parsing, as with any raw sequence.
//
// Complexity: O(Rows · L).
func Sample(lib *token.Library, opts Options) ([]int, error) {
	return sampleWith(lib, opts, rngFromSeed(opts.Seed))
}

// SampleN draws n independent sequences. Each sequence gets its own
// derived RNG substream, so samples are reproducible regardless of
// batch size or evaluation order.
func SampleN(lib *token.Library, opts Options, n int) ([][]int, error) {
	if n < 1 {
		return nil, ErrBadCount
	}

	out := make([][]int, n)
	for i := range out {
		rng := rngFromSeed(deriveSeed(opts.Seed, uint64(i)))
		seq, err := sampleWith(lib, opts, rng)
		if err != nil {
			return nil, err
		}
		out[i] = seq
	}

	return out, nil
}

// sampleWith runs the masked draw loop with the supplied RNG.
func sampleWith(lib *token.Library, opts Options, rng *rand.Rand) ([]int, error) {
	if lib == nil {
		return nil, ErrNilLibrary
	}

	st, err := prior.NewStepper(lib, opts.Prior)
	if err != nil {
		return nil, err
	}

	seq := make([]int, 0, opts.Prior.Rows)
	for st.Pos() < opts.Prior.Rows {
		legal := prior.Allowed(st.Mask())
		if len(legal) == 0 {
			return nil, ErrNoLegalToken
		}

		t := legal[rng.Intn(len(legal))]
		if err = st.Push(t); err != nil {
			return nil, err
		}
		seq = append(seq, t)

		if st.Dangling() == 0 {
			break
		}
	}

	return seq, nil
}
