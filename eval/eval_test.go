package eval_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/symexpr/codec"
	"github.com/katalvlaran/symexpr/eval"
	"github.com/katalvlaran/symexpr/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// regLib builds the shared evaluation library.
func regLib(t *testing.T) *token.Library {
	t.Helper()
	lib, err := token.NewRegressionLibrary(
		[]string{"add", "sub", "mul", "div", "sin", "exp", "log", "sqrt", "n2", "neg", "inv", "const"},
		2, []float64{0.5})
	require.NoError(t, err)

	return lib
}

// parse builds a tree from token names.
func parse(t *testing.T, lib *token.Library, names ...string) *codec.Node {
	t.Helper()
	seq := make([]int, len(names))
	for i, name := range names {
		j, _, err := lib.LookupName(name)
		require.NoError(t, err)
		seq[i] = j
	}
	tree, err := codec.ToTree(seq, lib)
	require.NoError(t, err)

	return tree
}

// TestExecute_Arithmetic verifies the binary operators over several rows.
func TestExecute_Arithmetic(t *testing.T) {
	lib := regLib(t)
	X := [][]float64{{1, 2}, {3, 4}, {-1, 0.5}}

	// (x1 + x2) * x1
	tree := parse(t, lib, "mul", "add", "x1", "x2", "x1")

	out, err := eval.Execute(tree, lib, X)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{3, 21, 0.5}, out, 1e-12)
}

// TestExecute_UnaryOperators verifies a representative unary per rule.
func TestExecute_UnaryOperators(t *testing.T) {
	lib := regLib(t)
	x := []float64{2, 0}

	cases := []struct {
		names []string
		want  float64
	}{
		{[]string{"sin", "x1"}, math.Sin(2)},
		{[]string{"exp", "x1"}, math.Exp(2)},
		{[]string{"log", "x1"}, math.Log(2)},
		{[]string{"sqrt", "x1"}, math.Sqrt(2)},
		{[]string{"n2", "x1"}, 4},
		{[]string{"neg", "x1"}, -2},
		{[]string{"inv", "x1"}, 0.5},
	}
	for _, tc := range cases {
		got, err := eval.ExecuteRow(parse(t, lib, tc.names...), lib, x)
		require.NoError(t, err, "%v", tc.names)
		assert.InDelta(t, tc.want, got, 1e-12, "%v", tc.names)
	}
}

// TestExecute_Constants verifies mutable and fixed constant payloads.
func TestExecute_Constants(t *testing.T) {
	lib := regLib(t)

	// const starts at 1; c1 carries 0.5.
	got, err := eval.ExecuteRow(parse(t, lib, "add", "const", "c1"), lib, []float64{0, 0})
	require.NoError(t, err)
	assert.InDelta(t, 1.5, got, 1e-12)

	tree := parse(t, lib, "const")
	tree.Value = 7
	got, err = eval.ExecuteRow(tree, lib, []float64{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 7.0, got, "an installed constant value must be used")
}

// TestExecute_DomainFailures verifies that non-finite results surface as
// ErrDomain: log of a negative operand and division by zero.
func TestExecute_DomainFailures(t *testing.T) {
	lib := regLib(t)

	_, err := eval.Execute(parse(t, lib, "log", "x1"), lib, [][]float64{{-1, 0}})
	assert.ErrorIs(t, err, eval.ErrDomain, "log of a negative must fail")

	_, err = eval.Execute(parse(t, lib, "div", "x1", "x2"), lib, [][]float64{{1, 0}})
	assert.ErrorIs(t, err, eval.ErrDomain, "division by zero must fail")

	_, err = eval.Execute(parse(t, lib, "exp", "x1"), lib, [][]float64{{1e9, 0}})
	assert.ErrorIs(t, err, eval.ErrDomain, "overflow to +Inf must fail")
}

// TestExecute_FailsWholeBatch verifies that one bad row fails the call
// even when other rows are fine.
func TestExecute_FailsWholeBatch(t *testing.T) {
	lib := regLib(t)

	_, err := eval.Execute(parse(t, lib, "log", "x1"), lib, [][]float64{{1, 0}, {-1, 0}})
	assert.ErrorIs(t, err, eval.ErrDomain)
}

// TestExecute_Misuse verifies the structural sentinels.
func TestExecute_Misuse(t *testing.T) {
	lib := regLib(t)

	_, err := eval.Execute(nil, lib, [][]float64{{1, 2}})
	assert.ErrorIs(t, err, eval.ErrNilNode)

	_, err = eval.Execute(parse(t, lib, "x1"), nil, [][]float64{{1, 2}})
	assert.ErrorIs(t, err, eval.ErrNilLibrary)

	// x2 reads column 1; a one-column row is too short.
	_, err = eval.ExecuteRow(parse(t, lib, "x2"), lib, []float64{1})
	assert.ErrorIs(t, err, eval.ErrShortRow)

	// A hand-built node whose child count disagrees with its arity.
	bad := parse(t, lib, "add", "x1", "x2")
	bad.Children = bad.Children[:1]
	_, err = eval.ExecuteRow(bad, lib, []float64{1, 2})
	assert.ErrorIs(t, err, eval.ErrMalformedTree)
}
