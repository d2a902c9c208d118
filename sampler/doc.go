// Package sampler draws random expression sequences that respect the
// prior masks, token by token.
//
// It is the concrete stand-in for the "external sampler" of the search:
// at every position it asks the prior stepper which tokens remain
// legal, picks one uniformly, and stops when the arity balance closes
// or the row budget runs out (the codec completes leftovers). Because
// only permitted tokens are ever emitted, every completed sample passes
// the structural validator, the property the prior/validator pair is
// tested against.
//
// Sampling is fully deterministic under a seed; independent substreams
// for batch sampling are derived with a SplitMix64-style mix.
package sampler
