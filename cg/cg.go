// SPDX-License-Identifier: MIT
// Package cg: the conjugate-gradient iteration.
//
// Algorithm Outline:
//  1. r ← b − A·x  (x is the initial estimate; zeros in Solve).
//  2. Repeat, at most MaxIter times:
//     a. stop on ‖r‖ ≤ Atol (ReasonAtol) or ‖r‖ ≤ Rtol·‖b‖ (ReasonRtol);
//     b. ρ ← r·r; direction p ← r + (ρ/ρ_prev)·p (p ← r on step one);
//     c. q ← A·p; curvature c ← p·q; fail with ErrNonConvergent if c ≤ 0;
//     d. step γ ← ρ/c; x ← x + γ·p; r ← r − γ·q.
//  3. Hitting the cap reports ReasonIterationLimit (a Result, not an
//     error — only breakdown is an error).
//
// Every vector update is one vec.Combine, so the {−1, 0, 1}
// special-case branches of the kernel carry the whole iteration.
//
// Complexity: one operator apply plus O(n) vector work per step;
// working memory is three n-vectors owned for the duration of the call.

package cg

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlinop/linop"
	"github.com/katalvlaran/lvlinop/ndarray"
	"github.com/katalvlaran/lvlinop/vec"
)

// validateOptions rejects malformed tolerances and caps before any
// allocation.
func validateOptions(opts Options) error {
	if opts.Atol < 0 || math.IsNaN(opts.Atol) || math.IsInf(opts.Atol, 0) {
		return fmt.Errorf("Atol %g: %w", opts.Atol, ErrBadOption)
	}
	if opts.Rtol < 0 || math.IsNaN(opts.Rtol) || math.IsInf(opts.Rtol, 0) {
		return fmt.Errorf("Rtol %g: %w", opts.Rtol, ErrBadOption)
	}
	if opts.MaxIter < 0 {
		return fmt.Errorf("MaxIter %d: %w", opts.MaxIter, ErrBadOption)
	}

	return nil
}

// Solve runs conjugate gradient on A·x = b from the zero estimate and
// returns a fresh solution array.
//
// Inputs:
//   - a: self-adjoint, positive-definite operator (documented
//     precondition; shapes ARE validated against b).
//   - b: right-hand side; a zero b returns the zero solution at once.
//   - opts: tolerances and cap; see DefaultOptions.
//
// Returns: the Result (solution, iteration count, final residual norm,
// and which criterion triggered), or an error.
// Errors: ErrNilOperand, ErrBadOption, ErrNonConvergent,
// linop.ErrShapeMismatch.
func Solve(a linop.Operator, b *ndarray.Array, opts Options) (*Result, error) {
	if a == nil {
		return nil, fmt.Errorf("Solve: operator: %w", ErrNilOperand)
	}
	if err := ndarray.ValidateNotNil(b); err != nil {
		return nil, fmt.Errorf("Solve: rhs: %w", err)
	}
	x, err := ndarray.New(b.Shape())
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	return SolveInto(a, b, x, opts)
}

// SolveInto runs conjugate gradient using x both as the initial
// estimate and as the solution buffer (pass a zero array for a cold
// start). The caller keeps ownership of x; the working vectors are
// owned by this call exclusively and released on return.
// Errors: ErrNilOperand, ErrBadOption, ErrNonConvergent,
// linop.ErrShapeMismatch.
func SolveInto(a linop.Operator, b, x *ndarray.Array, opts Options) (*Result, error) {
	// Stage 1: validate everything before touching any buffer.
	if a == nil {
		return nil, fmt.Errorf("SolveInto: operator: %w", ErrNilOperand)
	}
	if err := validateOptions(opts); err != nil {
		return nil, fmt.Errorf("SolveInto: %w", err)
	}
	if err := ndarray.ValidateNotNil(b); err != nil {
		return nil, fmt.Errorf("SolveInto: rhs: %w", err)
	}
	if err := ndarray.ValidateSameShape(b, x); err != nil {
		return nil, fmt.Errorf("SolveInto: %w", err)
	}
	// The operator must map b's shape onto itself (nil shapes defer).
	if err := ndarray.ValidateHasShape(b, a.InputShape()); err != nil {
		return nil, fmt.Errorf("SolveInto: operator input: %w", err)
	}
	if err := ndarray.ValidateHasShape(b, a.OutputShape()); err != nil {
		return nil, fmt.Errorf("SolveInto: operator output: %w", err)
	}

	maxIter := opts.MaxIter
	if maxIter == 0 {
		maxIter = b.Size() // exact-arithmetic CG terminates within dim steps
	}
	bnorm := vec.Norm2(b.Data())
	threshold := opts.Rtol * bnorm

	// Stage 2: residual r ← b − A·x (one apply covers any initial x).
	r := b.Clone()
	if err := linop.ApplyAdd(-1, a, x, 1, r); err != nil {
		return nil, fmt.Errorf("SolveInto: residual: %w", err)
	}

	// Working vectors, owned for this call only.
	p, err := ndarray.New(b.Shape())
	if err != nil {
		return nil, fmt.Errorf("SolveInto: %w", err)
	}
	q, err := ndarray.New(b.Shape())
	if err != nil {
		return nil, fmt.Errorf("SolveInto: %w", err)
	}

	var rhoPrev float64
	for k := 0; ; k++ {
		// Stage 3: termination checks, tolerance before cap.
		rnorm := vec.Norm2(r.Data())
		if rnorm <= opts.Atol {
			return &Result{X: x, Iterations: k, Residual: rnorm, Reason: ReasonAtol}, nil
		}
		if rnorm <= threshold {
			return &Result{X: x, Iterations: k, Residual: rnorm, Reason: ReasonRtol}, nil
		}
		if k >= maxIter {
			return &Result{X: x, Iterations: k, Residual: rnorm, Reason: ReasonIterationLimit}, nil
		}

		// Stage 4: direction update (Gram–Schmidt against the previous
		// residual norm).
		rho, errDot := vec.Dot(r.Data(), r.Data())
		if errDot != nil {
			return nil, fmt.Errorf("SolveInto: %w", errDot)
		}
		if k == 0 {
			// First direction is the residual itself (β = 0: p is
			// written, never read).
			_ = vec.Combine(1, r.Data(), 0, p.Data())
		} else {
			// p ← r + (ρ/ρ_prev)·p.
			_ = vec.Combine(1, r.Data(), rho/rhoPrev, p.Data())
		}

		// Stage 5: curvature. q ← A·p, c ← p·q.
		if errApply := linop.ApplyAdd(1, a, p, 0, q); errApply != nil {
			return nil, fmt.Errorf("SolveInto: apply: %w", errApply)
		}
		curv, errDot := vec.Dot(p.Data(), q.Data())
		if errDot != nil {
			return nil, fmt.Errorf("SolveInto: %w", errDot)
		}
		if curv <= 0 {
			// Not positive-definite (or breakdown): refuse to divide.
			return nil, fmt.Errorf("SolveInto: iteration %d: p·A·p = %g: %w", k, curv, ErrNonConvergent)
		}

		// Stage 6: take the step.
		step := rho / curv
		_ = vec.Combine(step, p.Data(), 1, x.Data())  // x ← x + γ·p
		_ = vec.Combine(-step, q.Data(), 1, r.Data()) // r ← r − γ·q
		rhoPrev = rho
	}
}
