package eval_test

import (
	"testing"

	"github.com/katalvlaran/symexpr/codec"
	"github.com/katalvlaran/symexpr/eval"
	"github.com/katalvlaran/symexpr/token"
)

// benchmarkExecute runs Execute over rows synthetic rows with a fixed
// medium-size expression, resetting the timer after setup.
func benchmarkExecute(b *testing.B, rows int) {
	lib, err := token.NewRegressionLibrary([]string{"add", "mul", "sin", "exp"}, 2, nil)
	if err != nil {
		b.Fatalf("library: %v", err)
	}

	names := []string{"add", "mul", "sin", "x1", "x2", "exp", "mul", "x1", "x1"}
	seq := make([]int, len(names))
	for i, name := range names {
		if seq[i], _, err = lib.LookupName(name); err != nil {
			b.Fatalf("lookup %s: %v", name, err)
		}
	}
	tree, err := codec.ToTree(seq, lib)
	if err != nil {
		b.Fatalf("parse: %v", err)
	}

	X := make([][]float64, rows)
	for i := range X {
		X[i] = []float64{float64(i%7) * 0.1, float64(i%5) * 0.2}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = eval.Execute(tree, lib, X); err != nil {
			b.Fatalf("execute: %v", err)
		}
	}
}

func BenchmarkExecute_100Rows(b *testing.B)  { benchmarkExecute(b, 100) }
func BenchmarkExecute_1000Rows(b *testing.B) { benchmarkExecute(b, 1000) }
