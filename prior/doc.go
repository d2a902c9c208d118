// Package prior restricts which token may legally extend a partial
// expression, one position at a time.
//
// 🚀 What is a prior mask?
//
//	A per-position legality vector over the token library: entry k is 0
//	when token k may be emitted next and -Inf when it may not. A
//	sequential sampler adds the row to its logits (or samples uniformly
//	among zero entries) so that structurally doomed prefixes are never
//	produced in the first place.
//
// ✨ Rules, mirrored prospectively from the constraint package:
//   - position 0 never admits a terminal (an expression is never a lone
//     arity-0 token, by convention of this domain)
//   - while a trig ancestor's subtree is still open, all trig tokens
//     are forbidden
//   - immediately after token t, its structural inverse is forbidden
//   - while the remaining minimum-length budget cannot absorb a close,
//     terminals are forbidden (forces continued expansion)
//   - past the midpoint of MaxLength, binary tokens are forbidden when
//     the remaining budget cannot absorb another open slot, and unary
//     tokens when the budget is exactly consumed by the open slots
//   - optionally, the mutable-constant token is forbidden once
//     MaxConstants placeholders have been emitted (off by default so
//     the prior stays logically consistent with the validator, which
//     has no constant rule)
//
// Any sequence built from permitted tokens end-to-end passes
// constraint.Inspect; the equivalence is property-tested.
//
// ⚙️ Two entry points:
//
//	m, err := prior.Generate(seq, lib, opts)   // full Rows×L matrix
//
//	st, err := prior.NewStepper(lib, opts)     // incremental, O(L) per step
//	row := st.Mask()
//	_ = st.Push(tok)
package prior
