// Package token defines the atomic symbols of a symbolic expression
// (operators, input variables and constants) and the Library that
// registers them for a single search task.
//
// 🚀 What is a token?
//
//	A token is one symbol of an expression in pre-order (prefix) encoding:
//	  • binary operators (add, sub, mul, div)       — arity 2
//	  • unary operators  (sin, exp, log, sqrt, …)   — arity 1
//	  • terminals        (x1…xN, constants)         — arity 0
//	An expression tree is then just a flat []int of library indices.
//
// ✨ Key guarantees:
//   - indices are contiguous from 0, insertion order = index order
//   - names are unique (ErrDuplicateName on collision)
//   - derived sets (terminals/unaries/binaries/trigs) stay consistent
//     with per-token flags at all times
//   - the inverse-pair map is symmetric by construction and re-checked
//     on every pairing (exp↔log, sqrt↔n2, neg↔neg, …)
//
// ⚙️ Usage:
//
//	lib, err := token.NewRegressionLibrary(
//	    []string{"add", "sin", "log", "exp", "const"}, // function set
//	    2,   // input variables x1, x2
//	    nil, // no fixed constants
//	)
//
// The Library is immutable in practice once handed to downstream
// components and is safe for concurrent reads.
package token
