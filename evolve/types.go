package evolve

import (
	"errors"
	"math"

	"github.com/katalvlaran/symexpr/codec"
	"github.com/katalvlaran/symexpr/constopt"
	"github.com/katalvlaran/symexpr/constraint"
)

// Sentinel errors for evaluator construction.
var (
	// ErrNilTask is returned when a nil task is passed.
	ErrNilTask = errors.New("evolve: task is nil")

	// ErrBadOptions is returned when Options are internally inconsistent.
	ErrBadOptions = errors.New("evolve: invalid options")
)

// WorstReward is assigned to candidates whose reward could not be
// computed (evaluation domain failure on the training rows).
var WorstReward = math.Inf(-1)

// Options configures the per-candidate pipeline.
//
//   - Constraint — structural bounds enforced after optimization.
//   - Optimize — fit mutable constants before validation/scoring.
//   - Optimizer — budget for the constant fit (used when Optimize).
//   - Workers — parallel candidate evaluations; 0 means 1.
type Options struct {
	Constraint constraint.Options
	Optimize   bool
	Optimizer  constopt.Options
	Workers    int
}

// DefaultOptions evaluates sequentially with constant optimization on
// and the conventional structural bounds.
func DefaultOptions() Options {
	return Options{
		Constraint: constraint.DefaultOptions(),
		Optimize:   true,
		Optimizer:  constopt.DefaultOptions(),
		Workers:    1,
	}
}

// validate checks internal consistency of Options.
func (o Options) validate() error {
	if o.Workers < 0 {
		return ErrBadOptions
	}
	if o.Constraint.MinLength < 1 || o.Constraint.MaxLength < o.Constraint.MinLength || o.Constraint.MaxDepth < 1 {
		return ErrBadOptions
	}
	if o.Optimize && (o.Optimizer.MaxIter < 1 || o.Optimizer.Tol < 0) {
		return ErrBadOptions
	}

	return nil
}

// Result is the outcome of one candidate's pass through the pipeline.
type Result struct {
	// Raw is the input sequence as received from the sampler/loop.
	Raw []int

	// Seq is the completed sequence; Length its expression length.
	Seq    []int
	Length int

	// Tree is the (possibly constant-optimized) parsed expression.
	Tree *codec.Node

	// Consts holds the fitted constant values in slot order, nil when
	// the tree has no mutable constants or optimization was off.
	Consts []float64

	// Violation is the validator verdict; Rejected mirrors it.
	Violation constraint.Violation
	Rejected  bool

	// Reward is the task metric on the training rows; WorstReward when
	// evaluation failed numerically. Unset (0) for rejected candidates.
	Reward float64
}
