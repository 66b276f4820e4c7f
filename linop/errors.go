// SPDX-License-Identifier: MIT
// Package linop: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// linop package, plus aliases for the ndarray sentinels that surface
// through operator APIs. All operations MUST return these sentinels and
// tests MUST check them via errors.Is.

package linop

import (
	"errors"

	"github.com/katalvlaran/lvlinop/ndarray"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "linop: ..." for consistency and easy
// grepping. DO NOT %w wrap these sentinels when returning directly; if
// context is essential, wrap with fmt.Errorf("ctx: %w", ErrX) at the
// outer boundary — callers still match via errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> unknown transform -> shape mismatch -> singularity.

var (
	// ErrNilOperator indicates that a nil Operator (or nil operand
	// array) was passed where a concrete value is required.
	ErrNilOperator = errors.New("linop: nil operator")

	// ErrSingularOperator is returned when an inverse transform is
	// requested of an operator that reports itself non-invertible
	// (e.g. uniform scaling by 0 or a rank-one operator). Construction
	// of the decoration fails eagerly; no partial result is returned.
	ErrSingularOperator = errors.New("linop: singular operator")

	// ErrUnknownTransform indicates a Transform tag outside the valid
	// {Direct, Adjoint, Inverse, InverseAdjoint} set.
	ErrUnknownTransform = errors.New("linop: unknown transform tag")

	// ErrNilRule indicates a half-Hessian container constructed without
	// an apply rule.
	ErrNilRule = errors.New("linop: nil half-hessian apply rule")
)

// ALIASES for the ndarray sentinels that operator APIs surface, kept
// here so callers can match every linop failure from one import.

// ErrShapeMismatch reports operand extents incompatible with the
// operator or with each other at apply time.
var ErrShapeMismatch = ndarray.ErrShapeMismatch

// ErrInvalidShape reports malformed construction parameters: a
// non-positive dimension, a mismatched rank, or an out-of-range
// cropping offset.
var ErrInvalidShape = ndarray.ErrInvalidShape
