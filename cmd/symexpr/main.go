// Command symexpr samples, fits and scores symbolic expressions against
// a CSV regression dataset, then prints the best candidate found.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/symexpr/codec"
	"github.com/katalvlaran/symexpr/constopt"
	"github.com/katalvlaran/symexpr/constraint"
	"github.com/katalvlaran/symexpr/dataset"
	"github.com/katalvlaran/symexpr/evolve"
	"github.com/katalvlaran/symexpr/prior"
	"github.com/katalvlaran/symexpr/sampler"
	"github.com/katalvlaran/symexpr/task"
)

var (
	configPath string

	rootCmd = &cobra.Command{
		Use:   "symexpr",
		Short: "Symbolic-expression search over tabular regression data",
		Long: `symexpr draws token sequences under a structural prior, completes
and parses them into expression trees, optionally fits their constants,
and scores them against a dataset. It is the sampling-and-evaluation
half of a symbolic-regression system; plug in your own search loop for
the other half.`,
		SilenceUsage: true,
	}

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run one sampled search against the configured dataset",
		RunE:  runSearch,
	}
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to the YAML run configuration")
	rootCmd.AddCommand(runCmd)
}

func runSearch(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil)).
		With("run_id", uuid.NewString())

	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}

	data, err := dataset.LoadCSV(cfg.Dataset.Path, cfg.Task.FunctionSet, cfg.Dataset.TestFraction, cfg.Dataset.Seed)
	if err != nil {
		return err
	}
	logger.Info("dataset loaded",
		"path", cfg.Dataset.Path,
		"train_rows", len(data.XTrain),
		"test_rows", len(data.XTest),
		"n_input_var", data.NInputVar)

	tsk, err := task.NewRegression(task.Config{
		Dataset:      data,
		Metric:       cfg.Task.Metric,
		MetricParams: cfg.Task.MetricParams,
		Threshold:    cfg.Task.Threshold,
		FixedConsts:  cfg.Task.FixedConsts,
	})
	if err != nil {
		return err
	}
	logger.Info("task built", "metric", cfg.Task.Metric, "library_size", tsk.Library.Len())

	raws, err := sampler.SampleN(tsk.Library, sampler.Options{
		Prior: prior.Options{
			Rows:         cfg.Search.MaxLength,
			MinLength:    cfg.Search.MinLength,
			MaxLength:    cfg.Search.MaxLength,
			MaxConstants: cfg.Search.MaxConstants,
		},
		Seed: cfg.Search.Seed,
	}, cfg.Search.Samples)
	if err != nil {
		return err
	}
	logger.Info("candidates sampled", "count", len(raws))

	ev, err := evolve.NewEvaluator(tsk, evolve.Options{
		Constraint: constraint.Options{
			MinLength: cfg.Search.MinLength,
			MaxLength: cfg.Search.MaxLength,
			MaxDepth:  cfg.Search.MaxDepth,
		},
		Optimize:  cfg.Search.OptimizeConsts,
		Optimizer: constopt.DefaultOptions(),
		Workers:   cfg.Search.Workers,
	})
	if err != nil {
		return err
	}

	results, err := ev.EvaluateAll(ctx, raws)
	if err != nil {
		return err
	}

	rejected := 0
	for i := range results {
		if results[i].Rejected {
			rejected++
		}
	}
	logger.Info("candidates evaluated", "total", len(results), "rejected", rejected)

	best := evolve.Best(results)
	if best < 0 {
		return fmt.Errorf("all %d candidates rejected; widen the structural bounds", len(results))
	}

	winner := results[best]
	expr, err := codec.Infix(winner.Tree, tsk.Library)
	if err != nil {
		return err
	}

	logger.Info("best candidate",
		"reward", winner.Reward,
		"length", winner.Length,
		"expression", expr)

	if len(data.XTest) > 0 {
		info, eerr := tsk.Evaluate(winner.Tree)
		if eerr != nil {
			logger.Warn("test evaluation failed", "error", eerr)
		} else {
			logger.Info("test report", "nmse_test", info.NMSETest, "success", info.Success)
		}
	}

	fmt.Println(expr)

	return nil
}
