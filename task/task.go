// Package task - the regression task factory.
//
// Design principles:
//   - Everything a candidate evaluation needs hangs off the Task value;
//     construction fails loudly, evaluation never does.
//   - Test variance is computed once at construction.
package task

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/symexpr/codec"
	"github.com/katalvlaran/symexpr/dataset"
	"github.com/katalvlaran/symexpr/eval"
	"github.com/katalvlaran/symexpr/metric"
	"github.com/katalvlaran/symexpr/token"
)

// Sentinel errors for task construction.
var (
	// ErrNilDataset is returned when Config.Dataset is nil.
	ErrNilDataset = errors.New("task: dataset is nil")

	// ErrNoTestData is returned by Evaluate when the task was built
	// without a test split.
	ErrNoTestData = errors.New("task: no test data")
)

// DefaultThreshold is the test-NMSE success threshold when Config
// leaves Threshold at zero.
const DefaultThreshold = 1e-12

// Config assembles a regression task.
type Config struct {
	// Dataset supplies train/test rows, NInputVar and FunctionSet.
	Dataset *dataset.Dataset

	// Metric names the reward metric (see package metric); params go in
	// MetricParams.
	Metric       string
	MetricParams []float64

	// Threshold is the test-NMSE below which Evaluate reports success;
	// 0 means DefaultThreshold.
	Threshold float64

	// FixedConsts registers extra fixed-constant terminals c1, c2, ….
	FixedConsts []float64
}

// Info is the test-set evaluation report for one candidate.
type Info struct {
	// NMSETest is mean squared test error normalized by test variance.
	NMSETest float64

	// Success is true when NMSETest < the task threshold.
	Success bool
}

// Task is a fully wired regression search task.
type Task struct {
	Name    string
	Library *token.Library
	Data    *dataset.Dataset

	reward    metric.Func
	threshold float64
	varYTest  float64
}

// NewRegression builds the task: registers the library from the
// dataset's function set, resolves the metric by name, and precomputes
// test statistics.
func NewRegression(cfg Config) (*Task, error) {
	if cfg.Dataset == nil {
		return nil, ErrNilDataset
	}
	if err := cfg.Dataset.Validate(); err != nil {
		return nil, err
	}

	lib, err := token.NewRegressionLibrary(cfg.Dataset.FunctionSet, cfg.Dataset.NInputVar, cfg.FixedConsts)
	if err != nil {
		return nil, fmt.Errorf("task: build library: %w", err)
	}

	reward, err := metric.New(cfg.Metric, cfg.MetricParams...)
	if err != nil {
		return nil, fmt.Errorf("task: build metric: %w", err)
	}

	threshold := cfg.Threshold
	if threshold == 0 {
		threshold = DefaultThreshold
	}

	return &Task{
		Name:      cfg.Dataset.Name,
		Library:   lib,
		Data:      cfg.Dataset,
		reward:    reward,
		threshold: threshold,
		varYTest:  dataset.Variance(cfg.Dataset.YTest),
	}, nil
}

// Reward scores the candidate on the training rows with the task
// metric. Evaluation failures (domain errors, non-finite predictions)
// return an error; the evolutionary loop maps that to a worst-case
// reward rather than aborting the pass.
func (t *Task) Reward(root *codec.Node) (float64, error) {
	yhat, err := eval.Execute(root, t.Library, t.Data.XTrain)
	if err != nil {
		return 0, err
	}

	return t.reward(t.Data.YTrain, yhat)
}

// Evaluate reports test NMSE and success for a finished candidate.
func (t *Task) Evaluate(root *codec.Node) (Info, error) {
	if len(t.Data.XTest) == 0 {
		return Info{}, ErrNoTestData
	}

	yhat, err := eval.Execute(root, t.Library, t.Data.XTest)
	if err != nil {
		return Info{}, err
	}

	var mse float64
	for i := range yhat {
		d := t.Data.YTest[i] - yhat[i]
		mse += d * d
	}
	mse /= float64(len(yhat))

	nmse := mse
	if t.varYTest > 0 {
		nmse = mse / t.varYTest
	}

	return Info{NMSETest: nmse, Success: nmse < t.threshold}, nil
}
