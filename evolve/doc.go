// Package evolve runs candidates through the per-candidate pipeline of
// a symbolic-regression search:
//
//	Raw Sequence → Completed Sequence → Tree →
//	(optionally) Constant-Optimized Tree → Validated/Scored
//
// Terminal states are Rejected (the validator flagged a structural
// violation; the candidate is simply discarded by the outer loop) and
// Scored (a reward was computed). There are no cycles; each candidate
// passes through once per generation.
//
// 🧵 Concurrency model:
//
//	Candidates are independent, so EvaluateAll fans them out across a
//	bounded errgroup, one in-flight tree per worker, never shared. The
//	token library is read-only and safe for concurrent reads. Within a
//	candidate the stages are strictly sequential. Cancellation flows
//	through the context; there are no internal timeouts.
//
// The package evaluates candidates; it does not breed them. Mutation,
// crossover and selection belong to the external evolutionary loop.
package evolve
