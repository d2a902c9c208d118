package sampler

import (
	"errors"

	"github.com/katalvlaran/symexpr/prior"
)

// Sentinel errors for sampling.
var (
	// ErrNilLibrary is returned when a nil token library is passed.
	ErrNilLibrary = errors.New("sampler: library is nil")

	// ErrNoLegalToken is returned when the prior forbids every token at
	// some position; the options over-constrain the library.
	ErrNoLegalToken = errors.New("sampler: no legal token at position")

	// ErrBadCount is returned when a batch size is not positive.
	ErrBadCount = errors.New("sampler: sample count must be >= 1")
)

// Options configures sequence sampling.
//
//   - Prior — mask-generation options; Prior.Rows caps the drawn length
//     (leftover dangling slots are closed later by codec.Complete).
//   - Seed — RNG seed; 0 selects the fixed default seed.
type Options struct {
	Prior prior.Options
	Seed  int64
}

// DefaultOptions samples under prior.DefaultOptions with the default
// deterministic seed.
func DefaultOptions() Options {
	return Options{
		Prior: prior.DefaultOptions(),
		Seed:  0,
	}
}
