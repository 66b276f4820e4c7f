// SPDX-License-Identifier: MIT
// Package cg: options, results, and sentinel errors for the solver.

package cg

import (
	"errors"

	"github.com/katalvlaran/lvlinop/ndarray"
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultAtol is the default absolute residual tolerance. Zero
	// means "absolute convergence only at an exactly zero residual".
	DefaultAtol = 0.0

	// DefaultRtol is the default relative residual tolerance, measured
	// against ‖b‖.
	DefaultRtol = 1e-8

	// DefaultMaxIter (0) selects the problem dimension: exact-arithmetic
	// CG terminates in at most dim steps, so it is the natural cap.
	DefaultMaxIter = 0
)

var (
	// ErrNonConvergent signals solver breakdown: the curvature p·A·p
	// was not strictly positive, so the operator is not
	// positive-definite (or the iteration broke down numerically).
	// No division is attempted; the partial estimate is discarded.
	ErrNonConvergent = errors.New("cg: non-convergent: curvature not positive")

	// ErrBadOption indicates a malformed Options value: a negative or
	// non-finite tolerance, or a negative iteration cap.
	ErrBadOption = errors.New("cg: invalid option")

	// ErrNilOperand indicates a nil operator or right-hand side.
	ErrNilOperand = errors.New("cg: nil operand")
)

// Options configures one Solve call.
//
// Fields:
//   - Atol    — stop when ‖r‖ ≤ Atol (absolute; must be ≥ 0, finite).
//   - Rtol    — stop when ‖r‖ ≤ Rtol·‖b‖ (relative; must be ≥ 0, finite).
//   - MaxIter — iteration cap; 0 selects the problem dimension.
//
// Example:
//
//	opts := cg.DefaultOptions()
//	opts.Rtol = 1e-12      // tighter relative stop
//	opts.MaxIter = 50      // explicit cap
//	res, err := cg.Solve(A, b, opts)
type Options struct {
	Atol    float64
	Rtol    float64
	MaxIter int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{Atol: DefaultAtol, Rtol: DefaultRtol, MaxIter: DefaultMaxIter}
}

// Reason identifies which termination criterion triggered.
type Reason int

const (
	// ReasonAtol — the residual norm fell below the absolute tolerance.
	ReasonAtol Reason = iota

	// ReasonRtol — the residual norm fell below Rtol·‖b‖.
	ReasonRtol

	// ReasonIterationLimit — MaxIter iterations completed first.
	ReasonIterationLimit
)

// reasonNames indexes String() by Reason value.
var reasonNames = [...]string{"absolute tolerance", "relative tolerance", "iteration limit"}

// String implements fmt.Stringer.
func (r Reason) String() string {
	if r < 0 || int(r) >= len(reasonNames) {
		return "unknown"
	}

	return reasonNames[r]
}

// Result reports one completed solve.
type Result struct {
	// X is the solution estimate (owned by the caller after return).
	X *ndarray.Array

	// Iterations is the number of completed CG steps.
	Iterations int

	// Residual is ‖r‖ at termination.
	Residual float64

	// Reason is the termination criterion that triggered.
	Reason Reason
}
