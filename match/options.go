// SPDX-License-Identifier: MIT

// Package match: functional configuration for the matching pipeline.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
package match

import (
	"math"
	"time"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRestarts is the number of independent relaxation runs.
	DefaultRestarts = 1

	// DefaultMaxIterations bounds Frank–Wolfe iterations per restart.
	// Tens of iterations suffice in practice because the objective is
	// quadratic and the polytope convex (no global-optimality claim).
	DefaultMaxIterations = 30

	// DefaultTolerance stops a restart once the normalized step
	// ‖Pₜ₊₁ − Pₜ‖_F / √m falls below it.
	DefaultTolerance = 0.03

	// DefaultInit is the initialization policy for restart 0.
	DefaultInit = Barycenter

	// DefaultWorkers is the restart parallelism degree. 1 keeps all
	// work on the calling goroutine.
	DefaultWorkers = 1

	// DefaultTimeLimit of 0 means no wall-clock budget.
	DefaultTimeLimit time.Duration = 0
)

// defaultRNGSeed is the fixed “zero” seed used when callers pass
// seed==0. Arbitrary but stable for reproducible defaults.
const defaultRNGSeed int64 = 1

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicRestartsInvalid  = "match: WithRestarts: n must be >= 1"
	panicMaxIterInvalid   = "match: WithMaxIterations: n must be >= 1"
	panicToleranceInvalid = "match: WithTolerance: tol must be finite, non-negative"
	panicInitInvalid      = "match: WithInit: unknown initialization"
	panicWorkersInvalid   = "match: WithWorkers: n must be >= 1"
	panicTimeLimitInvalid = "match: WithTimeLimit: d must be non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly.
// Constructors panic ONLY on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying setters.
// It is intentionally unexported field-wise; public entry points accept
// ...Option and resolve them via gatherOptions.
type Options struct {
	restarts  int
	maxIter   int
	tol       float64
	init      Init
	seed      int64
	workers   int
	timeLimit time.Duration
}

// WithRestarts sets the number of independent relaxation runs.
// Each restart draws its own RNG stream; the best discrete result wins.
//
// Panics when n < 1.
func WithRestarts(n int) Option {
	if n < 1 {
		panic(panicRestartsInvalid)
	}

	return func(o *Options) { o.restarts = n }
}

// WithMaxIterations bounds Frank–Wolfe iterations per restart.
// Hitting the bound is not an error; the result reports Converged=false.
//
// Panics when n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithTolerance sets the convergence threshold on the normalized
// Frobenius step between successive iterates. Zero disables the early
// stop (the restart always runs its full iteration budget).
//
// Panics when tol is NaN, ±Inf or negative.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithInit selects the initialization policy. Under Barycenter, restart
// 0 starts at the polytope barycenter and later restarts randomize;
// under Randomized every restart randomizes.
//
// Panics on an unknown Init value.
func WithInit(init Init) Option {
	if init != Barycenter && init != Randomized {
		panic(panicInitInvalid)
	}

	return func(o *Options) { o.init = init }
}

// WithSeed fixes the root RNG seed. Policy: seed==0 ⇒ a stable default
// stream; any other value is used verbatim. Restart r derives its own
// independent stream from (seed, r), so results are reproducible and
// independent of scheduling.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithWorkers caps how many restarts run concurrently. Selection is by
// (objective, restart index), never by completion order, so any worker
// count yields the same Result.
//
// Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithTimeLimit sets a wall-clock budget across all restarts. On expiry
// each running restart stops at its current iterate and the pipeline
// completes with the best result obtained so far; never an error.
// Zero means unlimited.
//
// Panics when d is negative.
func WithTimeLimit(d time.Duration) Option {
	if d < 0 {
		panic(panicTimeLimitInvalid)
	}

	return func(o *Options) { o.timeLimit = d }
}

// ---------- Option Resolution ----------

// gatherOptions applies user setters on top of the documented defaults,
// last-writer-wins. The canonical internal entry point; Match and the
// scoring helpers never default fields ad hoc.
func gatherOptions(user ...Option) Options {
	o := Options{
		restarts:  DefaultRestarts,
		maxIter:   DefaultMaxIterations,
		tol:       DefaultTolerance,
		init:      DefaultInit,
		seed:      0,
		workers:   DefaultWorkers,
		timeLimit: DefaultTimeLimit,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
