// Package constraint decides whether a realized expression violates the
// structural grammar of the search: length bounds, depth bounds,
// inverse-operator adjacency and nested trigonometric ancestry.
//
// 🚀 Validity is a value, not an error.
//
//	A rejected candidate is a normal, expected outcome: the evolutionary
//	loop discards it and keeps an ancestor instead. Inspect therefore
//	returns a Violation enum (OK, TooShort, TooLong, TooDeep,
//	InverseAdjacent, NestedTrig); errors are reserved for genuine
//	misconfiguration (nil library, unknown token indices, bad options).
//
// ✨ Checks (each one "true" means reject):
//   - length outside [MinLength, MaxLength]
//   - tree height above MaxDepth (computed in the same linear scan,
//     no tree materialization needed)
//   - a token immediately followed in pre-order by its structural
//     inverse (exp log, neg neg, …)
//   - a trig operator anywhere beneath another trig operator, tracked
//     with a running open-arity counter
//
// The prior package enforces the same rules prospectively, one position
// at a time; the two are kept logically consistent and property-tested
// against each other.
//
// ⚙️ Usage:
//
//	v, err := constraint.Inspect(seq, lib, constraint.DefaultOptions())
//	if v != constraint.OK { /* discard candidate */ }
package constraint
