// Package evolve - the candidate evaluator.
//
// Design principles:
//   - Structural rejection is a Result state, not an error; errors mean
//     misconfiguration and abort the batch.
//   - One exclusively-owned tree per in-flight candidate; the optimizer
//     mutates it freely with no locking.
package evolve

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/symexpr/bridge"
	"github.com/katalvlaran/symexpr/codec"
	"github.com/katalvlaran/symexpr/constopt"
	"github.com/katalvlaran/symexpr/constraint"
	"github.com/katalvlaran/symexpr/task"
)

// Evaluator runs candidates through complete → parse → optimize →
// validate → score for one task. Safe for concurrent use; all mutable
// state is per-candidate.
type Evaluator struct {
	task *task.Task
	opts Options
}

// NewEvaluator binds a task to pipeline options.
func NewEvaluator(t *task.Task, opts Options) (*Evaluator, error) {
	if t == nil {
		return nil, ErrNilTask
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return &Evaluator{task: t, opts: opts}, nil
}

// Evaluate runs one raw sequence through the pipeline.
//
// Stages:
//  1. Complete the sequence within MaxLength.
//  2. Parse the expression prefix into a tree.
//  3. Fit mutable constants against the training rows (optional).
//  4. Validate structure; a violation terminates in Rejected.
//  5. Score with the task metric; numeric failure scores WorstReward.
func (e *Evaluator) Evaluate(ctx context.Context, raw []int) (Result, error) {
	res := Result{Raw: raw}

	if err := ctx.Err(); err != nil {
		return res, err
	}

	lib := e.task.Library

	seq, n, err := codec.Complete(raw, lib, e.opts.Constraint.MaxLength)
	if err != nil {
		return res, err
	}
	res.Seq, res.Length = seq, n

	tree, err := codec.ToTree(seq[:n], lib)
	if err != nil {
		return res, err
	}
	res.Tree = tree

	if e.opts.Optimize {
		if err = e.fitConstants(&res); err != nil {
			return res, err
		}
	}

	// Validate the expression prefix only; trailing padding is not part
	// of the candidate.
	res.Violation, err = constraint.Inspect(seq[:n], lib, e.opts.Constraint)
	if err != nil {
		return res, err
	}
	if res.Violation != constraint.OK {
		res.Rejected = true

		return res, nil
	}

	reward, err := e.task.Reward(res.Tree)
	if err != nil {
		// Numeric failure on the training rows: worst reward, not an
		// aborted pass.
		res.Reward = WorstReward

		return res, nil
	}
	res.Reward = reward

	return res, nil
}

// fitConstants optimizes the tree's mutable constants in place.
func (e *Evaluator) fitConstants(res *Result) error {
	lib := e.task.Library

	slots, err := bridge.Slots(res.Tree, lib)
	if err != nil {
		return err
	}
	if len(slots) == 0 {
		return nil
	}

	obj, err := bridge.Objective(res.Tree, lib, e.task.Data.XTrain, e.task.Data.YTrain)
	if err != nil {
		return err
	}

	best, _, err := constopt.Minimize(obj, bridge.Ones(len(slots)), e.opts.Optimizer)
	if err != nil {
		return err
	}

	// The objective left the tree at its last probe; install the best
	// point found.
	for i, s := range slots {
		s.Value = best[i]
	}
	res.Consts = best

	return nil
}

// EvaluateAll evaluates a batch of raw sequences in parallel, one
// result per input in matching order. Workers bounds concurrency; the
// first configuration error or context cancellation aborts the batch.
func (e *Evaluator) EvaluateAll(ctx context.Context, raws [][]int) ([]Result, error) {
	results := make([]Result, len(raws))

	g, gctx := errgroup.WithContext(ctx)
	workers := e.opts.Workers
	if workers < 1 {
		workers = 1
	}
	g.SetLimit(workers)

	for i, raw := range raws {
		i, raw := i, raw
		g.Go(func() error {
			res, err := e.Evaluate(gctx, raw)
			if err != nil {
				return err
			}
			results[i] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Best returns the index of the highest-reward non-rejected result, or
// -1 when every candidate was rejected.
func Best(results []Result) int {
	best := -1
	for i := range results {
		if results[i].Rejected {
			continue
		}
		if best < 0 || results[i].Reward > results[best].Reward {
			best = i
		}
	}

	return best
}
