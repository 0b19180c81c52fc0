// Package assign: sentinel error set.
//
// All public entry points return ONLY these sentinels on user-triggered
// failures; tests match them via errors.Is. No panics on user input.
package assign

import "errors"

var (
	// ErrNilMatrix indicates a nil cost matrix was passed to Solve.
	ErrNilMatrix = errors.New("assign: nil cost matrix")

	// ErrBadShape indicates an empty cost matrix (zero rows or columns).
	ErrBadShape = errors.New("assign: invalid shape")

	// ErrNonSquare indicates the cost matrix is not square.
	ErrNonSquare = errors.New("assign: cost matrix is not square")

	// ErrNaNInf indicates a NaN or ±Inf cost entry. The solver requires
	// finite costs; encode "forbidden" pairings as large finite values.
	ErrNaNInf = errors.New("assign: NaN or Inf cost entry")

	// ErrInfeasible indicates an inconsistent fixed-assignment mask:
	// an out-of-range index, a row forced twice, or two rows forced to
	// the same column.
	ErrInfeasible = errors.New("assign: infeasible fixed assignment")
)
