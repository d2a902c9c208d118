// Package eval - recursive tree evaluation with strict domain checks.
//
// Design principles:
//   - Deterministic, side-effect free; no logging, no panics on user input.
//   - Numeric failures are detected here and reported as ErrDomain; the
//     recovery policy (sentinel error values) lives with the caller.
package eval

import (
	"errors"
	"math"

	"github.com/katalvlaran/symexpr/codec"
	"github.com/katalvlaran/symexpr/token"
)

// Sentinel errors for evaluation.
var (
	// ErrNilLibrary is returned when a nil token library is passed.
	ErrNilLibrary = errors.New("eval: library is nil")

	// ErrNilNode is returned when a nil tree is passed.
	ErrNilNode = errors.New("eval: node is nil")

	// ErrUnknownOperator is returned when a tree node references an
	// operator with no evaluation rule.
	ErrUnknownOperator = errors.New("eval: operator has no evaluation rule")

	// ErrMalformedTree is returned when a node's child count disagrees
	// with its token's arity.
	ErrMalformedTree = errors.New("eval: child count does not match arity")

	// ErrShortRow is returned when an input row has fewer columns than
	// an input-variable token requires.
	ErrShortRow = errors.New("eval: input row shorter than variable index")

	// ErrDomain is returned when evaluation produces NaN or ±Inf
	// (overflow, log of a non-positive operand, division by zero, ...).
	ErrDomain = errors.New("eval: result outside the real domain")
)

// Execute evaluates root once per row of X and returns the predictions.
// Any non-finite output fails the whole call with ErrDomain.
//
// Complexity: O(rows · n) with n the tree size.
func Execute(root *codec.Node, lib *token.Library, X [][]float64) ([]float64, error) {
	if root == nil {
		return nil, ErrNilNode
	}
	if lib == nil {
		return nil, ErrNilLibrary
	}

	out := make([]float64, len(X))
	for i, row := range X {
		v, err := evalNode(root, lib, row)
		if err != nil {
			return nil, err
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrDomain
		}
		out[i] = v
	}

	return out, nil
}

// ExecuteRow evaluates root on a single input row.
func ExecuteRow(root *codec.Node, lib *token.Library, x []float64) (float64, error) {
	if root == nil {
		return 0, ErrNilNode
	}
	if lib == nil {
		return 0, ErrNilLibrary
	}

	v, err := evalNode(root, lib, x)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrDomain
	}

	return v, nil
}

// evalNode computes the subtree value; non-finite intermediates are
// allowed to propagate and are caught once at the top.
func evalNode(n *codec.Node, lib *token.Library, x []float64) (float64, error) {
	tok, err := lib.Lookup(n.Index)
	if err != nil {
		return 0, err
	}
	if len(n.Children) != tok.Arity {
		return 0, ErrMalformedTree
	}

	switch {
	case tok.InputVar:
		if tok.Var >= len(x) {
			return 0, ErrShortRow
		}

		return x[tok.Var], nil
	case tok.Const, tok.Fixed:
		return n.Value, nil
	}

	a, err := evalNode(n.Children[0], lib, x)
	if err != nil {
		return 0, err
	}

	if tok.Binary() {
		var b float64
		if b, err = evalNode(n.Children[1], lib, x); err != nil {
			return 0, err
		}

		switch tok.Name {
		case "add":
			return a + b, nil
		case "sub":
			return a - b, nil
		case "mul":
			return a * b, nil
		case "div":
			return a / b, nil
		default:
			return 0, ErrUnknownOperator
		}
	}

	switch tok.Name {
	case "sin":
		return math.Sin(a), nil
	case "cos":
		return math.Cos(a), nil
	case "tan":
		return math.Tan(a), nil
	case "arcsin":
		return math.Asin(a), nil
	case "arccos":
		return math.Acos(a), nil
	case "arctan":
		return math.Atan(a), nil
	case "exp":
		return math.Exp(a), nil
	case "log":
		return math.Log(a), nil
	case "sqrt":
		return math.Sqrt(a), nil
	case "n2":
		return a * a, nil
	case "neg":
		return -a, nil
	case "inv":
		return 1 / a, nil
	case "abs":
		return math.Abs(a), nil
	case "tanh":
		return math.Tanh(a), nil
	default:
		return 0, ErrUnknownOperator
	}
}
