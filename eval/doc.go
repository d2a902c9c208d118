// Package eval executes expression trees over numeric input rows.
//
// Operators are keyed by their catalog names (see the token package)
// and use unprotected math: division by zero, log of a non-positive
// operand and similar produce ±Inf/NaN, which Execute surfaces as
// ErrDomain. The constant-optimization bridge converts that into a
// maximum-error sentinel so one bad candidate never aborts a
// population-wide evaluation pass.
//
// ⚙️ Usage:
//
//	yhat, err := eval.Execute(root, lib, X) // one prediction per row
package eval
