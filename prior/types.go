package prior

import (
	"errors"
	"math"
)

// Sentinel errors for prior-mask generation.
var (
	// ErrNilLibrary is returned when a nil token library is passed.
	ErrNilLibrary = errors.New("prior: library is nil")

	// ErrUnknownIndex is returned when a sequence references a token
	// index outside the library.
	ErrUnknownIndex = errors.New("prior: token index not in library")

	// ErrBadOptions is returned when Options are internally inconsistent
	// (Rows < 1, MinLength < 1, or MaxLength < MinLength).
	ErrBadOptions = errors.New("prior: invalid options")
)

// Forbidden is the mask value of an illegal token; legal tokens are 0.
// The value is -Inf so a sampler can add the row straight onto logits.
var Forbidden = math.Inf(-1)

// Options configures mask generation.
//
//   - Rows        — number of mask rows to emit (the max total sequence
//     length known to the caller). Rows past the completion point are
//     computed speculatively and simply unused once the sequence is
//     known complete.
//   - MinLength / MaxLength — the same token-count bounds enforced by
//     constraint.Options, applied prospectively.
//   - MaxConstants — cap on mutable-constant placeholders; ≤ 0 disables
//     the cap (the default, keeping the prior consistent with the
//     validator).
type Options struct {
	Rows         int
	MinLength    int
	MaxLength    int
	MaxConstants int
}

// DefaultOptions mirrors constraint.DefaultOptions: 4–30 tokens,
// 30 mask rows, no constant cap.
func DefaultOptions() Options {
	return Options{
		Rows:         30,
		MinLength:    4,
		MaxLength:    30,
		MaxConstants: 0,
	}
}

// validate checks internal consistency of Options.
func (o Options) validate() error {
	if o.Rows < 1 || o.MinLength < 1 || o.MaxLength < o.MinLength {
		return ErrBadOptions
	}

	return nil
}

// Allowed returns the indices whose mask entry is legal (== 0), in
// index order. Convenience for uniform samplers.
func Allowed(row []float64) []int {
	out := make([]int, 0, len(row))
	for k, v := range row {
		if v == 0 {
			out = append(out, k)
		}
	}

	return out
}
