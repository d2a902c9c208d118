// Package prior - incremental stepper and whole-sequence mask generation.
//
// Design principles:
//   - One source of truth: Generate is built on Stepper, so batch and
//     incremental callers can never disagree.
//   - Deterministic, side-effect free, O(L) per position.
//   - No logging, no panics on user input - sentinels from types.go only.
package prior

import "github.com/katalvlaran/symexpr/token"

// Stepper produces legality masks position by position while the caller
// feeds it the tokens actually chosen. State mirrors the validator's
// checks prospectively: running arity balance, open trig ancestry,
// last token's inverse, and the emitted-constant count.
//
// Not safe for concurrent use; create one Stepper per sequence.
type Stepper struct {
	lib  *token.Library
	opts Options

	pos          int  // tokens pushed so far == next mask row index
	dangling     int  // unfilled operand slots
	beneathTrig  bool // an open trig subtree encloses the next position
	trigDangling int  // local balance of that trig subtree
	lastInverse  int  // inverse of the last pushed token, -1 when none
	constCapped  bool // MaxConstants reached
	constCount   int
}

// NewStepper returns a Stepper at position 0 (empty prefix, balance 1).
func NewStepper(lib *token.Library, opts Options) (*Stepper, error) {
	if lib == nil {
		return nil, ErrNilLibrary
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return &Stepper{
		lib:         lib,
		opts:        opts,
		dangling:    1,
		lastInverse: -1,
	}, nil
}

// Pos returns the number of tokens pushed so far.
func (s *Stepper) Pos() int { return s.pos }

// Dangling returns the current arity balance; 0 means the sequence is
// complete and no further token is admissible.
func (s *Stepper) Dangling() int { return s.dangling }

// Mask returns the legality row for the next position: entry k is 0
// when token k may be emitted, Forbidden when it may not.
//
// Complexity: O(L) with L the library size.
func (s *Stepper) Mask() []float64 {
	row := make([]float64, s.lib.Len())
	s.fill(row)

	return row
}

// maskAll marks every index in idxs as Forbidden in row.
func (s *Stepper) maskAll(row []float64, idxs []int) {
	for _, k := range idxs {
		row[k] = Forbidden
	}
}

// fill writes the next position's mask into row (len == library size).
func (s *Stepper) fill(row []float64) {
	// An expression never starts with a terminal.
	if s.pos == 0 {
		s.maskAll(row, s.lib.Terminals())

		return
	}

	if s.beneathTrig {
		s.maskAll(row, s.lib.Trigs())
	}
	if s.lastInverse >= 0 {
		row[s.lastInverse] = Forbidden
	}

	// Early termination: with (pos+1)+1 tokens still short of MinLength
	// and a single open slot, a terminal would close the expression too
	// soon; force expansion.
	if s.pos+1 < s.opts.MinLength && s.dangling == 1 {
		s.maskAll(row, s.lib.Terminals())
	}

	// Late length: past the midpoint, forbid operators whose extra open
	// slots could no longer be closed within MaxLength.
	if s.pos+1 >= s.opts.MaxLength/2 {
		remaining := s.opts.MaxLength - s.pos
		if s.dangling >= remaining-1 {
			s.maskAll(row, s.lib.Binaries())
		}
		if s.dangling >= remaining {
			s.maskAll(row, s.lib.Unaries())
		}
	}

	if s.constCapped {
		if ci, _, err := s.lib.LookupName(token.ConstName); err == nil {
			row[ci] = Forbidden
		}
	}
}

// Push advances the stepper past token t.
func (s *Stepper) Push(t int) error {
	tok, err := s.lib.Lookup(t)
	if err != nil {
		return ErrUnknownIndex
	}

	// Trig ancestry, tracked exactly like the validator's check.
	if tok.Trig {
		s.beneathTrig = true
		s.trigDangling = 1
	} else if s.beneathTrig {
		switch {
		case tok.Binary():
			s.trigDangling++
		case tok.Terminal():
			s.trigDangling--
		}
		if s.trigDangling == 0 {
			s.beneathTrig = false
		}
	}

	s.dangling += tok.Arity - 1

	if inv, ok := s.lib.Inverse(t); ok {
		s.lastInverse = inv
	} else {
		s.lastInverse = -1
	}

	if tok.Const {
		s.constCount++
		if s.opts.MaxConstants > 0 && s.constCount >= s.opts.MaxConstants {
			s.constCapped = true
		}
	}

	s.pos++

	return nil
}

// Generate computes the full Rows×L mask matrix for seq in one
// left-to-right pass: row i constrains the token at position i given
// the prefix seq[:i]. Rows past len(seq) are speculative (all legal
// except a capped constant token) and unused by callers once the
// sequence is known complete.
//
// Complexity: O(Rows · L).
func Generate(seq []int, lib *token.Library, opts Options) ([][]float64, error) {
	st, err := NewStepper(lib, opts)
	if err != nil {
		return nil, err
	}

	priors := make([][]float64, opts.Rows)
	for i := range priors {
		priors[i] = make([]float64, lib.Len())
	}

	for i := 0; i <= len(seq) && i < opts.Rows; i++ {
		st.fill(priors[i])
		if i < len(seq) {
			if err = st.Push(seq[i]); err != nil {
				return nil, err
			}
		}
	}

	// Propagate the constant cap through the speculative tail.
	if st.constCapped {
		if ci, _, err2 := lib.LookupName(token.ConstName); err2 == nil {
			for r := len(seq) + 1; r < opts.Rows; r++ {
				priors[r][ci] = Forbidden
			}
		}
	}

	return priors, nil
}
