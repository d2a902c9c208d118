package token

// Library is the ordered, append-only registry of tokens for one task.
//
// Invariants:
//   - indices are contiguous from 0, insertion order = index order;
//   - names are unique;
//   - derived sets (terminals/unaries/binaries/trigs) always agree with
//     the per-token flags;
//   - the inverse map is symmetric: Inverse(Inverse(t)) == t.
//
// A Library is built once per task configuration and then shared
// read-only by codec, constraint, prior and eval. Concurrent reads are
// safe as long as no Register/PairInverse call is in flight.
type Library struct {
	tokens    []Token
	byName    map[string]int
	inverse   map[int]int
	terminals []int
	unaries   []int
	binaries  []int
	trigs     []int
	defTerm   int // first registered input variable, -1 when absent
}

// NewLibrary returns an empty Library ready for registration.
func NewLibrary() *Library {
	return &Library{
		byName:  make(map[string]int),
		inverse: make(map[int]int),
		defTerm: -1,
	}
}

// Register appends tok and returns its index.
// Fails with ErrEmptyName, ErrBadArity or ErrDuplicateName; the library
// is left unchanged on failure.
//
// Complexity: O(1) amortized.
func (l *Library) Register(tok Token) (int, error) {
	if tok.Name == "" {
		return 0, ErrEmptyName
	}
	if tok.Arity < 0 || tok.Arity > 2 {
		return 0, ErrBadArity
	}
	if _, exists := l.byName[tok.Name]; exists {
		return 0, ErrDuplicateName
	}

	idx := len(l.tokens)
	l.tokens = append(l.tokens, tok)
	l.byName[tok.Name] = idx

	// Keep derived sets in lockstep with the flags.
	switch tok.Arity {
	case 0:
		l.terminals = append(l.terminals, idx)
	case 1:
		l.unaries = append(l.unaries, idx)
	case 2:
		l.binaries = append(l.binaries, idx)
	}
	if tok.Trig {
		l.trigs = append(l.trigs, idx)
	}
	if tok.InputVar && l.defTerm < 0 {
		l.defTerm = idx
	}

	return idx, nil
}

// PairInverse records that the tokens named a and b are structural
// inverses of each other (adjacent occurrences cancel, e.g. exp/log).
// Self-inverse tokens pass a == b (e.g. neg/neg).
//
// The pairing is written in both directions, so symmetry holds by
// construction; re-pairing an already-paired token to a different
// partner fails with ErrInverseAsymmetry and leaves the map unchanged.
func (l *Library) PairInverse(a, b string) error {
	ia, ok := l.byName[a]
	if !ok {
		return ErrUnknownToken
	}
	ib, ok := l.byName[b]
	if !ok {
		return ErrUnknownToken
	}
	if prev, ok := l.inverse[ia]; ok && prev != ib {
		return ErrInverseAsymmetry
	}
	if prev, ok := l.inverse[ib]; ok && prev != ia {
		return ErrInverseAsymmetry
	}
	l.inverse[ia] = ib
	l.inverse[ib] = ia

	return nil
}

// Len returns the number of registered tokens.
func (l *Library) Len() int { return len(l.tokens) }

// Lookup returns the token at index i, or ErrUnknownToken when i is out
// of range.
func (l *Library) Lookup(i int) (Token, error) {
	if i < 0 || i >= len(l.tokens) {
		return Token{}, ErrUnknownToken
	}

	return l.tokens[i], nil
}

// LookupName returns the index and token registered under name, or
// ErrUnknownToken when the name was never registered.
func (l *Library) LookupName(name string) (int, Token, error) {
	i, ok := l.byName[name]
	if !ok {
		return 0, Token{}, ErrUnknownToken
	}

	return i, l.tokens[i], nil
}

// ArityOf returns the arity of token i, or -1 when i is out of range.
// Hot-path variant of Lookup for the codec/prior inner loops; callers
// treat -1 as ErrUnknownToken.
func (l *Library) ArityOf(i int) int {
	if i < 0 || i >= len(l.tokens) {
		return -1
	}

	return l.tokens[i].Arity
}

// Terminals returns a copy of the arity-0 token indices, in index order.
func (l *Library) Terminals() []int { return append([]int(nil), l.terminals...) }

// Unaries returns a copy of the arity-1 token indices, in index order.
func (l *Library) Unaries() []int { return append([]int(nil), l.unaries...) }

// Binaries returns a copy of the arity-2 token indices, in index order.
func (l *Library) Binaries() []int { return append([]int(nil), l.binaries...) }

// Trigs returns a copy of the trig-flagged token indices, in index order.
func (l *Library) Trigs() []int { return append([]int(nil), l.trigs...) }

// Inverse returns the structural inverse of token i, if one was paired.
func (l *Library) Inverse(i int) (int, bool) {
	inv, ok := l.inverse[i]

	return inv, ok
}

// DefaultTerminal returns the index of the first registered input
// variable, the padding token used by codec.Complete. Fails with
// ErrNoTerminal when the library registered no input variable.
func (l *Library) DefaultTerminal() (int, error) {
	if l.defTerm < 0 {
		return 0, ErrNoTerminal
	}

	return l.defTerm, nil
}
