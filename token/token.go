package token

import "errors"

// Sentinel errors for library construction and lookup.
var (
	// ErrDuplicateName is returned when registering a token whose name
	// already exists in the library.
	ErrDuplicateName = errors.New("token: duplicate token name")

	// ErrUnknownToken is returned when a lookup by index or name misses.
	ErrUnknownToken = errors.New("token: unknown token")

	// ErrBadArity is returned when registering a token whose arity is
	// outside {0, 1, 2}.
	ErrBadArity = errors.New("token: arity must be 0, 1 or 2")

	// ErrEmptyName is returned when registering a token with an empty name.
	ErrEmptyName = errors.New("token: empty token name")

	// ErrInverseAsymmetry is returned when an inverse pairing would break
	// the symmetry invariant inverse(inverse(t)) == t.
	ErrInverseAsymmetry = errors.New("token: inverse pair is not symmetric")

	// ErrNoTerminal is returned when a default terminal is requested from
	// a library that registered no input variable.
	ErrNoTerminal = errors.New("token: library has no input-variable terminal")
)

// Token is one atomic expression symbol. Immutable once registered.
//
// Exactly one of the category flags applies to a terminal:
// InputVar (a dataset column reference), Const (a mutable constant
// placeholder, value filled in by constant optimization), or Fixed
// (a user-supplied constant with FixedValue baked in at registration).
// Operators leave all three unset.
type Token struct {
	// Name is the unique symbolic label, e.g. "add", "sin", "x1", "const".
	Name string

	// Arity is the operand count: 0 = terminal, 1 = unary, 2 = binary.
	Arity int

	// Trig marks trigonometric operators subject to the nested-trig
	// structural constraint (sin, cos, tan).
	Trig bool

	// InputVar marks a dataset input variable; Var is its column index.
	InputVar bool

	// Var is the zero-based input column this token reads (InputVar only).
	Var int

	// Const marks a mutable constant placeholder.
	Const bool

	// Fixed marks a fixed (non-optimizable) constant; FixedValue holds it.
	Fixed bool

	// FixedValue is the baked-in value of a Fixed constant.
	FixedValue float64
}

// Terminal reports whether the token consumes no operands.
func (t Token) Terminal() bool { return t.Arity == 0 }

// Unary reports whether the token consumes exactly one operand.
func (t Token) Unary() bool { return t.Arity == 1 }

// Binary reports whether the token consumes exactly two operands.
func (t Token) Binary() bool { return t.Arity == 2 }
