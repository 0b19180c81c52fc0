// Package assign: functional configuration for Solve.
//
// Two knobs only: objective direction and forced pairs. Options follow
// the usual shape — unexported fields, WithX constructors, defaults
// resolved by gatherOptions, last-writer-wins.
package assign

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	maximize bool
	fixed    [][2]int
}

// WithMaximize flips the objective: Solve returns the permutation
// maximizing Σ cost[i][perm[i]] instead of minimizing it.
//
// Complexity: O(1) to set; Solve negates a working copy, O(n²).
func WithMaximize() Option {
	return func(o *Options) { o.maximize = true }
}

// WithFixed forces row→column assignments: each pair {row, col} pins
// that row to that column in the returned permutation. The solver
// optimizes only the free sub-block and splices forced pairs back in.
//
// The pairs slice is copied; later mutation by the caller is harmless.
// Validation (bounds, injectivity on both sides) happens inside Solve
// and surfaces as ErrInfeasible — constructors never panic on data
// that is only checkable against the matrix order.
func WithFixed(pairs [][2]int) Option {
	cp := make([][2]int, len(pairs))
	copy(cp, pairs)

	return func(o *Options) { o.fixed = cp }
}

// gatherOptions applies user setters on top of defaults
// (minimize, no forced pairs).
func gatherOptions(user ...Option) Options {
	var o Options
	for _, set := range user {
		set(&o)
	}

	return o
}
