// Package symexpr is the sampling-and-evaluation core of a
// symbolic-regression system: token libraries, sequence↔tree codecs,
// structural validation, prospective prior masks, constant fitting and
// dataset-backed scoring.
//
// 🚀 What is symexpr?
//
//	A deterministic, concurrency-friendly toolkit that brings together:
//		• Token libraries: operators, input variables, mutable & fixed constants
//		• Codec: arity-prefix sequences ⇄ expression trees, completion, infix rendering
//		• Constraints: length, depth, inverse-adjacency and nested-trig validation
//		• Priors: per-position legality masks matching the validator exactly
//		• Bridge: constant-slot extraction and MSE objectives for optimizers
//		• Constopt: a deterministic Nelder–Mead simplex for constant fitting
//		• Task: CSV datasets, reward metrics, test-NMSE success reports
//		• Evolve: the per-candidate complete→parse→optimize→validate→score pipeline
//
// ✨ Why choose symexpr?
//
//   - Reproducible – seeded sampling with per-candidate substreams
//   - Rock-solid guarantees – strict sentinels, shapes checked at the boundary
//   - Mask/validator agreement – a sequence sampled under the prior always validates
//   - Extensible – plug the evaluator into any outer search loop
//
// Everything is organized as flat top-level packages:
//
//	token/      — token metadata, libraries, the regression catalog
//	codec/      — Complete, ToTree, ToSequence, Infix
//	constraint/ — Inspect/IsValid and the Violation taxonomy
//	prior/      — Stepper (incremental masks) and Generate (batch masks)
//	sampler/    — masked uniform sequence sampling
//	eval/       — tree evaluation over row-major inputs
//	bridge/     — Slots, Apply, Objective for constant optimizers
//	constopt/   — Nelder–Mead minimization
//	metric/     — reward metrics by name (mse, nrmse, inv_nrmse, pearson, …)
//	dataset/    — CSV loading, deterministic splits
//	task/       — the regression task factory
//	evolve/     — the candidate evaluator
//	cmd/symexpr — the CLI: config, sample, evaluate, report
//
// Quick example:
//
//	lib, _ := token.NewRegressionLibrary([]string{"add", "mul", "sin"}, 2, nil)
//	seq, n, _ := codec.Complete([]int{0, 2, 3}, lib, 30)
//	tree, _ := codec.ToTree(seq[:n], lib)
//	expr, _ := codec.Infix(tree, lib)
//
// Start with token.NewRegressionLibrary, then sampler.Sample or your own
// sequences, and evolve.Evaluator to score them.
package symexpr
