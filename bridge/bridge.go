// Package bridge - slot extraction, objective construction, value
// re-injection.
//
// Design principles:
//   - Objective never returns an error to the optimizer: numeric
//     failures become the math.MaxFloat64 sentinel (spec'd recovery).
//   - Apply is pure; Objective mutates only the tree it closed over.
package bridge

import (
	"errors"
	"math"

	"github.com/katalvlaran/symexpr/codec"
	"github.com/katalvlaran/symexpr/eval"
	"github.com/katalvlaran/symexpr/token"
)

// Sentinel errors for bridge construction. The objective itself never
// errors; see Objective.
var (
	// ErrNilLibrary is returned when a nil token library is passed.
	ErrNilLibrary = errors.New("bridge: library is nil")

	// ErrNilNode is returned when a nil tree is passed.
	ErrNilNode = errors.New("bridge: node is nil")

	// ErrValueCount is returned by Apply when len(values) differs from
	// the tree's mutable-constant slot count.
	ErrValueCount = errors.New("bridge: value count does not match slot count")

	// ErrShape is returned when len(X) != len(y).
	ErrShape = errors.New("bridge: X and y row counts differ")
)

// MaxError is the sentinel objective value substituted for any
// evaluation failure (domain error, overflow, non-finite result).
const MaxError = math.MaxFloat64

// Slots returns the mutable-constant nodes of root in pre-order
// traversal order. A tree without placeholders yields an empty slice.
func Slots(root *codec.Node, lib *token.Library) ([]*codec.Node, error) {
	if root == nil {
		return nil, ErrNilNode
	}
	if lib == nil {
		return nil, ErrNilLibrary
	}

	var (
		slots []*codec.Node
		walk  func(n *codec.Node) error
	)
	walk = func(n *codec.Node) error {
		tok, err := lib.Lookup(n.Index)
		if err != nil {
			return err
		}
		if tok.Const {
			slots = append(slots, n)
		}
		for _, c := range n.Children {
			if err = walk(c); err != nil {
				return err
			}
		}

		return nil
	}
	if err := walk(root); err != nil {
		return nil, err
	}

	return slots, nil
}

// Values returns the current constant values in slot order.
func Values(root *codec.Node, lib *token.Library) ([]float64, error) {
	slots, err := Slots(root, lib)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(slots))
	for i, s := range slots {
		out[i] = s.Value
	}

	return out, nil
}

// Apply deep-copies root and installs values into its constant slots in
// traversal order. The input tree is left untouched.
func Apply(root *codec.Node, lib *token.Library, values []float64) (*codec.Node, error) {
	clone := root.Clone()
	slots, err := Slots(clone, lib)
	if err != nil {
		return nil, err
	}
	if len(values) != len(slots) {
		return nil, ErrValueCount
	}
	for i, s := range slots {
		s.Value = values[i]
	}

	return clone, nil
}

// Objective builds the optimizer objective for root's constant slots:
// install the candidate values into the live tree, predict over X, and
// return the mean squared error against y. Any failure (wrong value
// count, evaluation domain error, non-finite result) yields MaxError
// rather than an exception, so a single bad candidate cannot abort a
// population-wide pass.
func Objective(root *codec.Node, lib *token.Library, X [][]float64, y []float64) (func([]float64) float64, error) {
	if len(X) != len(y) || len(y) == 0 {
		return nil, ErrShape
	}
	slots, err := Slots(root, lib)
	if err != nil {
		return nil, err
	}

	obj := func(values []float64) float64 {
		if len(values) != len(slots) {
			return MaxError
		}
		for i, s := range slots {
			s.Value = values[i]
		}

		yhat, err := eval.Execute(root, lib, X)
		if err != nil {
			return MaxError
		}

		var mse float64
		for i := range y {
			d := y[i] - yhat[i]
			mse += d * d
		}
		mse /= float64(len(y))
		if math.IsNaN(mse) || math.IsInf(mse, 0) {
			return MaxError
		}

		return mse
	}

	return obj, nil
}

// Ones returns the conventional all-ones starting point for constant
// optimization (one value per slot).
func Ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}

	return out
}
