// Package codec - sequence completion and the sequence⟷tree codec.
//
// Design principles:
//   - Strict sentinels from types.go; structural states are not errors.
//   - Single O(n) pass per direction, no hidden allocations in loops.
//   - The library (and every task constraint) is an explicit parameter,
//     never ambient state.
package codec

import "github.com/katalvlaran/symexpr/token"

// Complete closes a possibly-dangling pre-order sequence.
//
// The sequence is scanned left to right, capped at maxLength tokens,
// tracking the arity balance. Three outcomes:
//
//  1. The balance reaches 0 at position n ≤ maxLength: the scanned
//     prefix is returned as-is with expression length n. Tokens past n
//     are padding, kept so that Complete is idempotent and ignored by
//     evaluation.
//  2. The balance stays positive and the d unfilled slots fit within
//     the cap (len + d ≤ maxLength): d default terminals are appended.
//  3. Padding would overflow the cap: the sequence is shrunk to the
//     longest prefix k whose completion k + dangling(k) fits, then
//     padded. k = 0 (a lone default terminal) always fits, so every
//     call returns a complete sequence of length ≤ maxLength.
//
// The returned length is 1-indexed: the position where the balance
// first reaches zero. The cumulative balance of the returned sequence
// touches zero exactly once, at that length, and never before.
//
// Complexity: O(min(len(seq), maxLength)) time and space.
func Complete(seq []int, lib *token.Library, maxLength int) ([]int, int, error) {
	if lib == nil {
		return nil, 0, ErrNilLibrary
	}
	if maxLength < 1 {
		return nil, 0, ErrBadLength
	}
	def, err := lib.DefaultTerminal()
	if err != nil {
		return nil, 0, err
	}

	scan := len(seq)
	if scan > maxLength {
		scan = maxLength
	}

	// balances[i] = dangling after consuming seq[:i]; balances[0] = 1.
	balances := make([]int, scan+1)
	balances[0] = 1
	for i := 0; i < scan; i++ {
		a := lib.ArityOf(seq[i])
		if a < 0 {
			return nil, 0, ErrUnknownIndex
		}
		balances[i+1] = balances[i] + a - 1
		if balances[i+1] == 0 {
			// Outcome 1: complete within the cap; keep trailing padding.
			out := append([]int(nil), seq[:scan]...)

			return out, i + 1, nil
		}
	}

	// Outcome 2/3: find the longest prefix whose padded completion fits.
	k := scan
	for k+balances[k] > maxLength {
		k--
	}

	out := make([]int, 0, k+balances[k])
	out = append(out, seq[:k]...)
	for d := balances[k]; d > 0; d-- {
		out = append(out, def)
	}

	return out, len(out), nil
}

// ToTree prefix-parses seq into an expression tree: each arity-N token
// consumes the next N already-encoded subtrees. Tokens past the first
// complete expression are ignored (they are Complete's padding).
//
// Fails with ErrMalformedSequence when the sequence ends before every
// operand slot is filled; run Complete first to rule that out.
//
// Mutable-constant placeholders start at value 1.0; fixed constants
// carry their registered value.
//
// Complexity: O(n) time, O(depth) stack.
func ToTree(seq []int, lib *token.Library) (*Node, error) {
	if lib == nil {
		return nil, ErrNilLibrary
	}
	if len(seq) == 0 {
		return nil, ErrMalformedSequence
	}

	pos := 0
	var parse func() (*Node, error)
	parse = func() (*Node, error) {
		if pos >= len(seq) {
			return nil, ErrMalformedSequence
		}
		tok, err := lib.Lookup(seq[pos])
		if err != nil {
			return nil, ErrUnknownIndex
		}
		node := &Node{Index: seq[pos]}
		pos++

		switch {
		case tok.Const:
			node.Value = 1.0
		case tok.Fixed:
			node.Value = tok.FixedValue
		}

		for i := 0; i < tok.Arity; i++ {
			child, err := parse()
			if err != nil {
				return nil, err
			}
			node.Children = append(node.Children, child)
		}

		return node, nil
	}

	return parse()
}

// ToSequence emits the pre-order traversal of root (each node's index
// before its children's), matching exactly the encoding ToTree expects.
// Exact inverse of ToTree on well-formed trees (constant values ride
// separately; see bridge.Values / bridge.Apply).
//
// Complexity: O(n).
func ToSequence(root *Node) ([]int, error) {
	if root == nil {
		return nil, ErrNilNode
	}

	out := make([]int, 0, Len(root))
	var walk func(n *Node)
	walk = func(n *Node) {
		out = append(out, n.Index)
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)

	return out, nil
}
