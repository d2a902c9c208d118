// Package constraint - the structural validity checks.
//
// Design principles:
//   - Deterministic, side-effect free, single O(n) pass per check.
//   - No logging, no panics on user input - sentinels from types.go only.
//   - The validator only reports; discarding/resampling is the caller's job.
package constraint

import (
	"github.com/katalvlaran/symexpr/codec"
	"github.com/katalvlaran/symexpr/token"
)

// Inspect runs every structural check against the pre-order sequence and
// returns the first violation found, in fixed order: length bounds,
// depth bound, inverse adjacency, nested trig. OK means the candidate
// is structurally admissible.
//
// Complexity: O(n) time, O(depth) space (the open-arity stack).
func Inspect(seq []int, lib *token.Library, opts Options) (Violation, error) {
	if lib == nil {
		return OK, ErrNilLibrary
	}
	if err := opts.validate(); err != nil {
		return OK, err
	}

	if len(seq) < opts.MinLength {
		return TooShort, nil
	}
	if len(seq) > opts.MaxLength {
		return TooLong, nil
	}

	height, err := sequenceHeight(seq, lib)
	if err != nil {
		return OK, err
	}
	if height > opts.MaxDepth {
		return TooDeep, nil
	}

	if hasAdjacentInverse(seq, lib) {
		return InverseAdjacent, nil
	}
	if hasNestedTrig(seq, lib) {
		return NestedTrig, nil
	}

	return OK, nil
}

// IsValid is the predicate form of Inspect.
func IsValid(seq []int, lib *token.Library, opts Options) (bool, error) {
	v, err := Inspect(seq, lib, opts)
	if err != nil {
		return false, err
	}

	return v == OK, nil
}

// InspectTree is the tree-shaped entry point: it re-encodes the tree and
// delegates to Inspect, so both representations are judged identically.
func InspectTree(root *codec.Node, lib *token.Library, opts Options) (Violation, error) {
	seq, err := codec.ToSequence(root)
	if err != nil {
		return OK, err
	}

	return Inspect(seq, lib, opts)
}

// sequenceHeight computes tree height (in edges) directly from the
// pre-order sequence using a stack of unfilled child counts: the stack
// size when a token is consumed is its depth.
func sequenceHeight(seq []int, lib *token.Library) (int, error) {
	var (
		open   []int // remaining child slots per unfinished ancestor
		height int
	)
	for _, t := range seq {
		a := lib.ArityOf(t)
		if a < 0 {
			return 0, ErrUnknownIndex
		}
		if d := len(open); d > height {
			height = d
		}
		if a > 0 {
			open = append(open, a)
			continue
		}
		// Terminal: resolve completed subtrees upward.
		for len(open) > 0 {
			open[len(open)-1]--
			if open[len(open)-1] > 0 {
				break
			}
			open = open[:len(open)-1]
		}
	}

	return height, nil
}

// hasAdjacentInverse scans consecutive pre-order pairs once and reports
// whether any token is immediately followed by its registered inverse.
func hasAdjacentInverse(seq []int, lib *token.Library) bool {
	for i := 0; i+1 < len(seq); i++ {
		if inv, ok := lib.Inverse(seq[i]); ok && seq[i+1] == inv {
			return true
		}
	}

	return false
}

// hasNestedTrig reports whether any trig token appears while another
// trig ancestor's subtree is still open. The ancestry is tracked with a
// local dangling counter: +1 per binary, -1 per terminal, unchanged per
// unary; the trig scope closes when the counter returns to zero.
func hasNestedTrig(seq []int, lib *token.Library) bool {
	var (
		beneathTrig  bool
		trigDangling int
	)
	for _, t := range seq {
		tok, err := lib.Lookup(t)
		if err != nil {
			return false // unreachable after sequenceHeight validated indices
		}
		if tok.Trig {
			if beneathTrig {
				return true
			}
			beneathTrig = true
			trigDangling = 1
			continue
		}
		if !beneathTrig {
			continue
		}
		switch {
		case tok.Binary():
			trigDangling++
		case tok.Terminal():
			trigDangling--
		}
		if trigDangling == 0 {
			beneathTrig = false
		}
	}

	return false
}
