package metric_test

import (
	"testing"

	"github.com/katalvlaran/symexpr/metric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// eval builds the named metric and scores (y, yhat), failing the test on
// any construction or evaluation error.
func eval(t *testing.T, name string, y, yhat []float64, params ...float64) float64 {
	t.Helper()
	m, err := metric.New(name, params...)
	require.NoError(t, err)
	got, err := m(y, yhat)
	require.NoError(t, err)

	return got
}

// TestNew_ErrorFamilies verifies the squared-error family on a small
// hand-computed case: y = {1,2,3}, yhat = {1,2,5} ⇒ mse = 4/3,
// var(y) = 2/3.
func TestNew_ErrorFamilies(t *testing.T) {
	y := []float64{1, 2, 3}
	yhat := []float64{1, 2, 5}

	assert.InDelta(t, 4.0/3.0, eval(t, "mse", y, yhat), 1e-12)
	assert.InDelta(t, 1.1547005383792515, eval(t, "rmse", y, yhat), 1e-12)
	assert.InDelta(t, 2.0, eval(t, "nmse", y, yhat), 1e-12)
	assert.InDelta(t, 1.4142135623730951, eval(t, "nrmse", y, yhat), 1e-12)

	assert.InDelta(t, -4.0/3.0, eval(t, "neg_mse", y, yhat), 1e-12)
	assert.InDelta(t, -2.0, eval(t, "neg_nmse", y, yhat), 1e-12)

	assert.InDelta(t, 1/(1+4.0/3.0), eval(t, "inv_mse", y, yhat), 1e-12)
	assert.InDelta(t, 1/3.0, eval(t, "inv_nmse", y, yhat), 1e-12)
	assert.InDelta(t, 1/(1+1.4142135623730951), eval(t, "inv_nrmse", y, yhat), 1e-12)
}

// TestNew_PerfectFit verifies that the inverted metrics peak at 1 for a
// perfect prediction.
func TestNew_PerfectFit(t *testing.T) {
	y := []float64{1, 2, 3, 4}

	assert.Equal(t, 0.0, eval(t, "mse", y, y))
	assert.Equal(t, 1.0, eval(t, "inv_mse", y, y))
	assert.Equal(t, 1.0, eval(t, "inv_nrmse", y, y))
}

// TestNew_Fraction verifies the tolerance-band metric and its parameter
// contract.
func TestNew_Fraction(t *testing.T) {
	y := []float64{10, 10, 10, 10}
	yhat := []float64{10.5, 12, 10, 8}

	// Band = 0.1·|y| + 0 = 1: hits at 10.5 and 10.
	assert.InDelta(t, 0.5, eval(t, "fraction", y, yhat, 0.1, 0), 1e-12)

	_, err := metric.New("fraction")
	assert.ErrorIs(t, err, metric.ErrMetricParams, "fraction needs two parameters")
	_, err = metric.New("mse", 1.0)
	assert.ErrorIs(t, err, metric.ErrMetricParams, "mse takes none")
}

// TestNew_Correlations verifies Pearson and Spearman on simple shapes.
func TestNew_Correlations(t *testing.T) {
	y := []float64{1, 2, 3, 4}

	assert.InDelta(t, 1, eval(t, "pearson", y, []float64{2, 4, 6, 8}), 1e-12,
		"a positive affine map correlates perfectly")
	assert.InDelta(t, -1, eval(t, "pearson", y, []float64{8, 6, 4, 2}), 1e-12)

	// Monotone but non-linear: Spearman 1, Pearson below 1.
	curved := []float64{1, 8, 27, 1000}
	assert.InDelta(t, 1, eval(t, "spearman", y, curved), 1e-12)
	assert.Less(t, eval(t, "pearson", y, curved), 1.0)

	// A constant prediction has zero variance: correlation degrades to 0.
	assert.Equal(t, 0.0, eval(t, "pearson", y, []float64{5, 5, 5, 5}))
}

// TestNew_UnknownAndGuards verifies name and length validation.
func TestNew_UnknownAndGuards(t *testing.T) {
	_, err := metric.New("nope")
	assert.ErrorIs(t, err, metric.ErrUnknownMetric)

	m, err := metric.New("mse")
	require.NoError(t, err)

	_, err = m([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, metric.ErrLengthMismatch)
	_, err = m(nil, nil)
	assert.ErrorIs(t, err, metric.ErrLengthMismatch)
}
