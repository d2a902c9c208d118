// Package metric builds regression reward functions by name.
//
// A metric maps (y_true, y_pred) to a scalar. Error-style metrics
// (mse family) decrease with quality; reward-style metrics (neg_*,
// inv_*, fraction, correlation) increase with quality; callers pick
// the orientation they need. Normalized variants divide by the
// variance of y_true, computed per call.
//
// Supported names: mse, rmse, nmse, nrmse, neg_mse, neg_nmse,
// neg_nrmse, inv_mse, inv_nmse, inv_nrmse, fraction (2 params),
// pearson, spearman.
package metric
