// Package codec converts between the two faces of a symbolic expression:
// a flat pre-order sequence of token indices and a pointer-linked tree.
//
// 🚀 Why a flat encoding?
//
//	An arity-prefix sequence encodes any tree shape in a single []int,
//	with one structural invariant: the running arity balance
//	    dangling = 1 + Σ (arity(t) − 1)
//	over the prefix. A sequence is complete exactly when dangling first
//	reaches 0; it is "dangling" (a valid transient, not an error) while
//	the balance stays positive during incremental construction.
//
// ✨ Operations:
//   - Complete  — close a possibly-dangling sequence by padding unfilled
//     slots with the library's default terminal, within a hard length cap
//   - ToTree    — prefix-parse a complete sequence into a Node tree
//   - ToSequence — pre-order traversal back to indices (exact inverse)
//   - Infix     — human-readable rendering of a tree
//
// Both directions are linear-time; the balance invariant is the only
// structural check needed at parse time.
//
// ⚙️ Usage:
//
//	seq, n, err := codec.Complete(raw, lib, 30)
//	root, err := codec.ToTree(seq[:n], lib)
//	back, err := codec.ToSequence(root)
package codec
