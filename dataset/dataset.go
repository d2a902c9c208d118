// Package dataset - dataset container, CSV loading, deterministic split.
//
// Design principles:
//   - Shape errors surface at load/validate time, never downstream.
//   - Splits are seeded and reproducible across platforms.
//   - encoding/csv is deliberate: the corpus carries no CSV dependency
//     and the format here is plain numeric columns.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strconv"
)

// Sentinel errors for dataset handling.
var (
	// ErrShape is returned when matrix/vector shapes disagree or a
	// required part is empty.
	ErrShape = errors.New("dataset: inconsistent or empty shapes")

	// ErrBadFraction is returned when a test fraction is outside [0, 1).
	ErrBadFraction = errors.New("dataset: test fraction must be in [0, 1)")

	// ErrBadCSV is returned when a CSV cell cannot be parsed as a float
	// or rows have differing widths.
	ErrBadCSV = errors.New("dataset: malformed CSV content")
)

// Dataset is the in-memory regression dataset handed to a task.
//
// XTrain/XTest are row-major with NInputVar columns; YTrain/YTest are
// the matching targets. FunctionSet names the operator tokens the task
// registers (see token.NewRegressionLibrary).
type Dataset struct {
	Name        string
	XTrain      [][]float64
	YTrain      []float64
	XTest       [][]float64
	YTest       []float64
	NInputVar   int
	FunctionSet []string
}

// Validate checks shape consistency: non-empty training data, matching
// row counts, and uniform NInputVar-wide rows everywhere.
func (d *Dataset) Validate() error {
	if d.NInputVar < 1 || len(d.XTrain) == 0 || len(d.XTrain) != len(d.YTrain) {
		return ErrShape
	}
	if len(d.XTest) != len(d.YTest) {
		return ErrShape
	}
	for _, row := range d.XTrain {
		if len(row) != d.NInputVar {
			return ErrShape
		}
	}
	for _, row := range d.XTest {
		if len(row) != d.NInputVar {
			return ErrShape
		}
	}

	return nil
}

// LoadCSV reads a headerless numeric CSV whose last column is the
// target, splits it with Split(testFraction, seed), and returns a
// validated Dataset named after the file path.
func LoadCSV(path string, functionSet []string, testFraction float64, seed int64) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open csv: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset: read csv: %w", err)
	}
	if len(records) == 0 || len(records[0]) < 2 {
		return nil, ErrBadCSV
	}

	width := len(records[0])
	X := make([][]float64, len(records))
	y := make([]float64, len(records))
	for i, rec := range records {
		if len(rec) != width {
			return nil, ErrBadCSV
		}
		row := make([]float64, width-1)
		for j, cell := range rec {
			v, perr := strconv.ParseFloat(cell, 64)
			if perr != nil {
				return nil, ErrBadCSV
			}
			if j == width-1 {
				y[i] = v
			} else {
				row[j] = v
			}
		}
		X[i] = row
	}

	XTr, yTr, XTe, yTe, err := Split(X, y, testFraction, seed)
	if err != nil {
		return nil, err
	}

	d := &Dataset{
		Name:        path,
		XTrain:      XTr,
		YTrain:      yTr,
		XTest:       XTe,
		YTest:       yTe,
		NInputVar:   width - 1,
		FunctionSet: functionSet,
	}
	if err = d.Validate(); err != nil {
		return nil, err
	}

	return d, nil
}

// Split shuffles (X, y) with the given seed and carves off
// testFraction of the rows as the test set. testFraction == 0 returns
// an empty test set.
//
// Deterministic: same inputs and seed give the same split everywhere.
func Split(X [][]float64, y []float64, testFraction float64, seed int64) ([][]float64, []float64, [][]float64, []float64, error) {
	if len(X) == 0 || len(X) != len(y) {
		return nil, nil, nil, nil, ErrShape
	}
	if testFraction < 0 || testFraction >= 1 {
		return nil, nil, nil, nil, ErrBadFraction
	}

	perm := rand.New(rand.NewSource(seed)).Perm(len(X))
	nTest := int(float64(len(X)) * testFraction)
	nTrain := len(X) - nTest

	XTr := make([][]float64, 0, nTrain)
	yTr := make([]float64, 0, nTrain)
	XTe := make([][]float64, 0, nTest)
	yTe := make([]float64, 0, nTest)
	for i, p := range perm {
		if i < nTrain {
			XTr = append(XTr, X[p])
			yTr = append(yTr, y[p])
		} else {
			XTe = append(XTe, X[p])
			yTe = append(yTe, y[p])
		}
	}

	return XTr, yTr, XTe, yTe, nil
}

// Mean returns the arithmetic mean of v, 0 for empty input.
func Mean(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	var sum float64
	for _, x := range v {
		sum += x
	}

	return sum / float64(len(v))
}

// Variance returns the population variance of v, 0 for empty input.
func Variance(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	m := Mean(v)
	var sum float64
	for _, x := range v {
		d := x - m
		sum += d * d
	}

	return sum / float64(len(v))
}
