// Package constopt fits the free constants of an expression by
// derivative-free minimization of the bridge objective.
//
// The optimizer is a classic Nelder–Mead simplex search: deterministic
// (no randomness, fixed deterministic simplex seeding), bounded by an
// iteration budget, and tolerant of the objective's MaxError sentinel:
// a vertex that lands in a numeric dead zone is simply the worst vertex
// and gets contracted away. Minimize always returns its best-effort
// point; it never raises on bad objective values.
//
// ⚙️ Usage:
//
//	best, fbest, err := constopt.Minimize(obj, x0, constopt.DefaultOptions())
package constopt
