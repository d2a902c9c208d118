// Package metric - the named metric factory and implementations.
//
// Design principles:
//   - Deterministic, side-effect free; no logging, no panics.
//   - Unknown names and wrong parameter counts fail at construction
//     time, never at evaluation time.
package metric

import (
	"errors"
	"math"
	"sort"
)

// Sentinel errors for metric construction.
var (
	// ErrUnknownMetric is returned for names outside the supported set.
	ErrUnknownMetric = errors.New("metric: unrecognized metric name")

	// ErrMetricParams is returned when the parameter count does not
	// match what the named metric expects.
	ErrMetricParams = errors.New("metric: wrong parameter count")

	// ErrLengthMismatch is returned by a Func when y and yhat differ in
	// length or are empty.
	ErrLengthMismatch = errors.New("metric: y and yhat lengths differ or are zero")
)

// Func maps true and predicted values to a scalar score.
type Func func(y, yhat []float64) (float64, error)

// paramCount lists how many parameters each metric takes.
var paramCount = map[string]int{
	"mse": 0, "rmse": 0, "nmse": 0, "nrmse": 0,
	"neg_mse": 0, "neg_nmse": 0, "neg_nrmse": 0,
	"inv_mse": 0, "inv_nmse": 0, "inv_nrmse": 0,
	"fraction": 2,
	"pearson":  0, "spearman": 0,
}

// New builds the metric registered under name.
// fraction takes two parameters p0, p1 and scores the fraction of
// predictions within p0·|y| + p1 of the true value.
func New(name string, params ...float64) (Func, error) {
	want, ok := paramCount[name]
	if !ok {
		return nil, ErrUnknownMetric
	}
	if len(params) != want {
		return nil, ErrMetricParams
	}

	switch name {
	case "mse":
		return guarded(func(y, yhat []float64) float64 { return mse(y, yhat) }), nil
	case "rmse":
		return guarded(func(y, yhat []float64) float64 { return math.Sqrt(mse(y, yhat)) }), nil
	case "nmse":
		return guarded(func(y, yhat []float64) float64 { return mse(y, yhat) / variance(y) }), nil
	case "nrmse":
		return guarded(func(y, yhat []float64) float64 { return math.Sqrt(mse(y, yhat) / variance(y)) }), nil
	case "neg_mse":
		return guarded(func(y, yhat []float64) float64 { return -mse(y, yhat) }), nil
	case "neg_nmse":
		return guarded(func(y, yhat []float64) float64 { return -mse(y, yhat) / variance(y) }), nil
	case "neg_nrmse":
		return guarded(func(y, yhat []float64) float64 { return -math.Sqrt(mse(y, yhat) / variance(y)) }), nil
	case "inv_mse":
		return guarded(func(y, yhat []float64) float64 { return 1 / (1 + mse(y, yhat)) }), nil
	case "inv_nmse":
		return guarded(func(y, yhat []float64) float64 { return 1 / (1 + mse(y, yhat)/variance(y)) }), nil
	case "inv_nrmse":
		return guarded(func(y, yhat []float64) float64 {
			return 1 / (1 + math.Sqrt(mse(y, yhat)/variance(y)))
		}), nil
	case "fraction":
		p0, p1 := params[0], params[1]

		return guarded(func(y, yhat []float64) float64 {
			hits := 0
			for i := range y {
				if math.Abs(y[i]-yhat[i]) < p0*math.Abs(y[i])+p1 {
					hits++
				}
			}

			return float64(hits) / float64(len(y))
		}), nil
	case "pearson":
		return guarded(pearson), nil
	case "spearman":
		return guarded(spearman), nil
	default:
		return nil, ErrUnknownMetric
	}
}

// guarded wraps a raw metric with the shared length check.
func guarded(raw func(y, yhat []float64) float64) Func {
	return func(y, yhat []float64) (float64, error) {
		if len(y) == 0 || len(y) != len(yhat) {
			return 0, ErrLengthMismatch
		}

		return raw(y, yhat), nil
	}
}

// mse is the mean squared error.
func mse(y, yhat []float64) float64 {
	var sum float64
	for i := range y {
		d := y[i] - yhat[i]
		sum += d * d
	}

	return sum / float64(len(y))
}

// variance is the population variance of y.
func variance(y []float64) float64 {
	var mean float64
	for _, v := range y {
		mean += v
	}
	mean /= float64(len(y))

	var sum float64
	for _, v := range y {
		d := v - mean
		sum += d * d
	}

	return sum / float64(len(y))
}

// pearson is the Pearson correlation coefficient.
func pearson(y, yhat []float64) float64 {
	n := float64(len(y))
	var my, mh float64
	for i := range y {
		my += y[i]
		mh += yhat[i]
	}
	my /= n
	mh /= n

	var cov, vy, vh float64
	for i := range y {
		dy, dh := y[i]-my, yhat[i]-mh
		cov += dy * dh
		vy += dy * dy
		vh += dh * dh
	}
	if vy == 0 || vh == 0 {
		return 0
	}

	return cov / math.Sqrt(vy*vh)
}

// spearman is the Spearman rank correlation: Pearson over fractional
// ranks (ties get the average rank).
func spearman(y, yhat []float64) float64 {
	return pearson(ranks(y), ranks(yhat))
}

// ranks returns 1-based fractional ranks of v.
func ranks(v []float64) []float64 {
	idx := make([]int, len(v))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return v[idx[a]] < v[idx[b]] })

	out := make([]float64, len(v))
	for i := 0; i < len(idx); {
		j := i
		for j+1 < len(idx) && v[idx[j+1]] == v[idx[i]] {
			j++
		}
		// Average rank across the tie group [i, j].
		avg := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			out[idx[k]] = avg
		}
		i = j + 1
	}

	return out
}
