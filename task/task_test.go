package task_test

import (
	"testing"

	"github.com/katalvlaran/symexpr/codec"
	"github.com/katalvlaran/symexpr/dataset"
	"github.com/katalvlaran/symexpr/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sumData builds a y = x1 + x2 dataset with a held-out test split.
func sumData() *dataset.Dataset {
	return &dataset.Dataset{
		Name:        "sum",
		XTrain:      [][]float64{{1, 2}, {2, 3}, {3, 5}, {4, 1}},
		YTrain:      []float64{3, 5, 8, 5},
		XTest:       [][]float64{{5, 5}, {6, 2}},
		YTest:       []float64{10, 8},
		NInputVar:   2,
		FunctionSet: []string{"add", "sub", "mul"},
	}
}

// parse builds a tree from token names against the task library.
func parse(t *testing.T, tsk *task.Task, names ...string) *codec.Node {
	t.Helper()
	seq := make([]int, len(names))
	for i, name := range names {
		j, _, err := tsk.Library.LookupName(name)
		require.NoError(t, err)
		seq[i] = j
	}
	tree, err := codec.ToTree(seq, tsk.Library)
	require.NoError(t, err)

	return tree
}

// TestNewRegression_Wiring verifies library construction from the
// dataset's function set.
func TestNewRegression_Wiring(t *testing.T) {
	tsk, err := task.NewRegression(task.Config{Dataset: sumData(), Metric: "inv_nrmse"})
	require.NoError(t, err)

	assert.Equal(t, "sum", tsk.Name)
	// add, sub, mul + x1, x2.
	assert.Equal(t, 5, tsk.Library.Len())
}

// TestNewRegression_Errors verifies construction failure modes.
func TestNewRegression_Errors(t *testing.T) {
	_, err := task.NewRegression(task.Config{Metric: "mse"})
	assert.ErrorIs(t, err, task.ErrNilDataset)

	_, err = task.NewRegression(task.Config{Dataset: sumData(), Metric: "nope"})
	assert.Error(t, err, "unknown metric must fail construction")

	bad := sumData()
	bad.YTrain = bad.YTrain[:2]
	_, err = task.NewRegression(task.Config{Dataset: bad, Metric: "mse"})
	assert.ErrorIs(t, err, dataset.ErrShape)
}

// TestReward verifies training-set scoring on exact and inexact trees.
func TestReward(t *testing.T) {
	tsk, err := task.NewRegression(task.Config{Dataset: sumData(), Metric: "inv_nrmse"})
	require.NoError(t, err)

	exact, err := tsk.Reward(parse(t, tsk, "add", "x1", "x2"))
	require.NoError(t, err)
	assert.Equal(t, 1.0, exact, "the generating expression peaks the metric")

	off, err := tsk.Reward(parse(t, tsk, "mul", "x1", "x2"))
	require.NoError(t, err)
	assert.Less(t, off, exact)
}

// TestEvaluate verifies the test-set report and the success threshold.
func TestEvaluate(t *testing.T) {
	tsk, err := task.NewRegression(task.Config{Dataset: sumData(), Metric: "inv_nrmse"})
	require.NoError(t, err)

	info, err := tsk.Evaluate(parse(t, tsk, "add", "x1", "x2"))
	require.NoError(t, err)
	assert.Equal(t, 0.0, info.NMSETest)
	assert.True(t, info.Success)

	info, err = tsk.Evaluate(parse(t, tsk, "sub", "x1", "x2"))
	require.NoError(t, err)
	assert.Greater(t, info.NMSETest, 0.0)
	assert.False(t, info.Success)
}

// TestEvaluate_NoTestData verifies the missing-split sentinel.
func TestEvaluate_NoTestData(t *testing.T) {
	d := sumData()
	d.XTest, d.YTest = nil, nil
	tsk, err := task.NewRegression(task.Config{Dataset: d, Metric: "mse"})
	require.NoError(t, err)

	_, err = tsk.Evaluate(parse(t, tsk, "add", "x1", "x2"))
	assert.ErrorIs(t, err, task.ErrNoTestData)
}

// TestFixedConsts verifies that Config.FixedConsts lands in the library.
func TestFixedConsts(t *testing.T) {
	tsk, err := task.NewRegression(task.Config{
		Dataset:     sumData(),
		Metric:      "mse",
		FixedConsts: []float64{2.0},
	})
	require.NoError(t, err)

	_, c1, err := tsk.Library.LookupName("c1")
	require.NoError(t, err)
	assert.True(t, c1.Fixed)
	assert.Equal(t, 2.0, c1.FixedValue)

	// mul(c1, x1) predicts 2·x1 = {2,4,6,8} against y = {3,5,8,5}.
	got, rerr := tsk.Reward(parse(t, tsk, "mul", "c1", "x1"))
	require.NoError(t, rerr)
	assert.InDelta(t, 15.0/4.0, got, 1e-12, "the fixed value must flow through evaluation")
}
