package codec

import "errors"

// Sentinel errors for codec operations.
var (
	// ErrNilLibrary is returned when a nil token library is passed.
	ErrNilLibrary = errors.New("codec: library is nil")

	// ErrNilNode is returned when a nil tree node is passed.
	ErrNilNode = errors.New("codec: node is nil")

	// ErrBadLength is returned when maxLength is not positive.
	ErrBadLength = errors.New("codec: maxLength must be >= 1")

	// ErrUnknownIndex is returned when a sequence references a token
	// index outside the library.
	ErrUnknownIndex = errors.New("codec: token index not in library")

	// ErrMalformedSequence is returned by ToTree when the sequence ends
	// before every declared operand slot is filled. Callers are expected
	// to run Complete first, which makes this unreachable.
	ErrMalformedSequence = errors.New("codec: sequence ends with unfilled operand slots")
)

// Node is one vertex of an expression tree.
//
// Index references a token in the task Library. Value carries the
// floating-point payload of constant tokens: the registered value for
// fixed constants, and the current (optimizable) value for mutable
// placeholders: 1.0 until the constant-optimization bridge installs
// something better. Children holds exactly arity(Index) subtrees.
type Node struct {
	Index    int
	Value    float64
	Children []*Node
}

// Clone returns a deep copy of the subtree rooted at n.
// Used by bridge.Apply to keep value re-injection pure.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{Index: n.Index, Value: n.Value}
	if len(n.Children) > 0 {
		out.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = c.Clone()
		}
	}

	return out
}

// Len returns the node count of the subtree rooted at n.
func Len(n *Node) int {
	if n == nil {
		return 0
	}
	total := 1
	for _, c := range n.Children {
		total += Len(c)
	}

	return total
}

// Depth returns the height of the subtree rooted at n, in edges:
// a lone terminal has depth 0.
func Depth(n *Node) int {
	if n == nil {
		return 0
	}
	max := 0
	for _, c := range n.Children {
		if d := Depth(c) + 1; d > max {
			max = d
		}
	}

	return max
}
