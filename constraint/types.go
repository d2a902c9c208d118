package constraint

import "errors"

// Sentinel errors for validator misconfiguration. Structural invalidity
// is reported through Violation, never through an error.
var (
	// ErrNilLibrary is returned when a nil token library is passed.
	ErrNilLibrary = errors.New("constraint: library is nil")

	// ErrUnknownIndex is returned when the sequence references a token
	// index outside the library.
	ErrUnknownIndex = errors.New("constraint: token index not in library")

	// ErrBadOptions is returned when Options are internally inconsistent
	// (MinLength < 1, MaxLength < MinLength, or MaxDepth < 1).
	ErrBadOptions = errors.New("constraint: invalid options")
)

// Violation identifies which structural rule a candidate breaks.
type Violation int

const (
	// OK means the candidate passes every structural check.
	OK Violation = iota

	// TooShort means the token count is below MinLength.
	TooShort

	// TooLong means the token count is above MaxLength.
	TooLong

	// TooDeep means the tree height exceeds MaxDepth.
	TooDeep

	// InverseAdjacent means some token is immediately followed in
	// pre-order by its registered structural inverse.
	InverseAdjacent

	// NestedTrig means a trig operator sits beneath another trig
	// operator in the same subtree.
	NestedTrig
)

// String returns the human-readable name of the violation.
func (v Violation) String() string {
	switch v {
	case OK:
		return "ok"
	case TooShort:
		return "too short"
	case TooLong:
		return "too long"
	case TooDeep:
		return "too deep"
	case InverseAdjacent:
		return "inverse operators adjacent"
	case NestedTrig:
		return "nested trig operators"
	default:
		return "unknown violation"
	}
}

// Options bounds the structural shape of admissible expressions.
//
//   - MinLength / MaxLength — inclusive token-count bounds.
//   - MaxDepth — maximum tree height in edges (a lone terminal is 0).
type Options struct {
	MinLength int
	MaxLength int
	MaxDepth  int
}

// DefaultOptions returns the conventional bounds for regression search:
// expressions of 4–30 tokens and height at most 17.
func DefaultOptions() Options {
	return Options{
		MinLength: 4,
		MaxLength: 30,
		MaxDepth:  17,
	}
}

// validate checks internal consistency of Options.
func (o Options) validate() error {
	if o.MinLength < 1 || o.MaxLength < o.MinLength || o.MaxDepth < 1 {
		return ErrBadOptions
	}

	return nil
}
