// Package constopt - Nelder–Mead simplex minimization.
//
// Design principles:
//   - Deterministic: identical inputs yield identical outputs on every
//     platform; simplex seeding uses fixed perturbation constants.
//   - Strict sentinels; no logging; best-effort results, never panics.
//   - O(d) space per vertex, O(MaxIter · d²) time worst case.
package constopt

import (
	"errors"
	"math"
	"sort"
)

// Sentinel errors for optimizer construction.
var (
	// ErrNilObjective is returned when obj is nil.
	ErrNilObjective = errors.New("constopt: objective is nil")

	// ErrNoVariables is returned when x0 is empty.
	ErrNoVariables = errors.New("constopt: no variables to optimize")

	// ErrBadOptions is returned when MaxIter < 1 or Tol < 0.
	ErrBadOptions = errors.New("constopt: invalid options")
)

// Options bounds the simplex search.
//
//   - MaxIter — iteration budget (one reflect/expand/contract/shrink
//     cycle per iteration).
//   - Tol — convergence tolerance on the best-to-worst objective spread.
type Options struct {
	MaxIter int
	Tol     float64
}

// DefaultOptions returns the conventional budget for per-candidate
// constant fitting: 200 iterations, 1e-8 spread tolerance.
func DefaultOptions() Options {
	return Options{
		MaxIter: 200,
		Tol:     1e-8,
	}
}

// Simplex seeding perturbations, the scipy convention: nonzero
// coordinates are scaled by 5%, zero coordinates are nudged by a fixed
// small step.
const (
	seedScale = 0.05
	seedZero  = 0.00025
)

// Nelder–Mead coefficients (standard values).
const (
	reflectCoeff  = 1.0
	expandCoeff   = 2.0
	contractCoeff = 0.5
	shrinkCoeff   = 0.5
)

// vertex pairs a point with its objective value.
type vertex struct {
	x []float64
	f float64
}

// Minimize runs Nelder–Mead from x0 and returns the best point found,
// its objective value, and an error only for misuse (nil objective,
// empty x0, bad options). Sentinel-valued (MaxFloat64) objectives are
// handled like any other bad vertex.
func Minimize(obj func([]float64) float64, x0 []float64, opts Options) ([]float64, float64, error) {
	if obj == nil {
		return nil, 0, ErrNilObjective
	}
	if len(x0) == 0 {
		return nil, 0, ErrNoVariables
	}
	if opts.MaxIter < 1 || opts.Tol < 0 {
		return nil, 0, ErrBadOptions
	}

	d := len(x0)

	// Seed a (d+1)-vertex simplex around x0.
	simplex := make([]vertex, d+1)
	simplex[0] = vertex{x: append([]float64(nil), x0...)}
	simplex[0].f = obj(simplex[0].x)
	for i := 0; i < d; i++ {
		x := append([]float64(nil), x0...)
		if x[i] != 0 {
			x[i] *= 1 + seedScale
		} else {
			x[i] = seedZero
		}
		simplex[i+1] = vertex{x: x, f: obj(x)}
	}

	for iter := 0; iter < opts.MaxIter; iter++ {
		// Order vertices best → worst. sort.SliceStable keeps ties
		// deterministic.
		sort.SliceStable(simplex, func(a, b int) bool { return simplex[a].f < simplex[b].f })

		best, worst := simplex[0], simplex[d]
		if spread := math.Abs(worst.f - best.f); spread <= opts.Tol {
			break
		}

		// Centroid of all vertices but the worst.
		centroid := make([]float64, d)
		for _, v := range simplex[:d] {
			for j := range centroid {
				centroid[j] += v.x[j] / float64(d)
			}
		}

		// Reflection.
		refl := combine(centroid, worst.x, 1+reflectCoeff, -reflectCoeff)
		fRefl := obj(refl)

		switch {
		case fRefl < best.f:
			// Expansion.
			exp := combine(centroid, worst.x, 1+reflectCoeff*expandCoeff, -reflectCoeff*expandCoeff)
			if fExp := obj(exp); fExp < fRefl {
				simplex[d] = vertex{x: exp, f: fExp}
			} else {
				simplex[d] = vertex{x: refl, f: fRefl}
			}
		case fRefl < simplex[d-1].f:
			// Plain acceptance.
			simplex[d] = vertex{x: refl, f: fRefl}
		default:
			// Contraction toward the better of worst/reflected.
			contractBase := worst.x
			fBase := worst.f
			if fRefl < worst.f {
				contractBase = refl
				fBase = fRefl
			}
			contr := combine(centroid, contractBase, 1-contractCoeff, contractCoeff)
			if fContr := obj(contr); fContr < fBase {
				simplex[d] = vertex{x: contr, f: fContr}
			} else {
				// Shrink everything toward the best vertex.
				for i := 1; i <= d; i++ {
					simplex[i].x = combine(best.x, simplex[i].x, 1-shrinkCoeff, shrinkCoeff)
					simplex[i].f = obj(simplex[i].x)
				}
			}
		}
	}

	sort.SliceStable(simplex, func(a, b int) bool { return simplex[a].f < simplex[b].f })

	return simplex[0].x, simplex[0].f, nil
}

// combine returns wa·a + wb·b elementwise.
func combine(a, b []float64, wa, wb float64) []float64 {
	out := make([]float64, len(a))
	for i := range out {
		out[i] = wa*a[i] + wb*b[i]
	}

	return out
}
