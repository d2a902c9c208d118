// Package bridge connects expression trees to an external numeric
// optimizer for constant fitting.
//
// 🚀 The contract:
//
//	Slots finds the mutable-constant nodes of a tree in pre-order.
//	Objective closes over those slots and returns a plain
//	func([]float64) float64 — install the candidate values, evaluate
//	mean squared error on the training rows, and on ANY evaluation
//	failure return math.MaxFloat64 instead of propagating it, so the
//	optimizer always receives a finite-comparable scalar.
//	Apply is the pure re-injection step: deep-copy the tree and write
//	the optimized values back, no evaluation.
//
// The objective mutates the live tree it was built from; that tree is
// exclusively owned by the single evaluation call in progress, so the
// optimizer's iterative calls need no locking (see the concurrency
// notes in the evolve package).
//
// ⚙️ Usage:
//
//	slots, _ := bridge.Slots(root, lib)
//	obj, _ := bridge.Objective(root, lib, XTrain, yTrain)
//	best, _, _ := constopt.Minimize(obj, bridge.Ones(len(slots)), copts)
//	fitted, _ := bridge.Apply(root, lib, best)
package bridge
