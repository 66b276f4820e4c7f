// SPDX-License-Identifier: MIT
// Package linop: the identity operator.

package linop

import (
	"github.com/katalvlaran/lvlinop/ndarray"
)

// identity is the do-nothing endomorphism: self-adjoint, its own
// inverse, shape-agnostic.
type identity struct{}

// NewIdentity returns the identity operator. Apply is a single
// vec.Combine — the operand is combined straight into the output,
// never materialized through a transformed copy.
func NewIdentity() Operator { return identity{} }

// InputShape is unspecified: the identity acts on any shape.
func (identity) InputShape() ndarray.Shape { return nil }

// OutputShape is unspecified (always equal to the input shape).
func (identity) OutputShape() ndarray.Shape { return nil }

// SelfAdjoint: trivially true.
func (identity) SelfAdjoint() bool { return true }

// Invertible: the identity is its own inverse.
func (identity) Invertible() bool { return true }

// Apply computes y ← α·x + β·y. All four transforms of the identity
// coincide, so the tag only undergoes validation.
// Errors: ErrUnknownTransform, ErrShapeMismatch, ndarray.ErrNilArray.
// Complexity: O(n).
func (op identity) Apply(t Transform, alpha float64, x *ndarray.Array, beta float64, y *ndarray.Array) error {
	if err := validateApply(op, t, x, y); err != nil {
		return err
	}

	return combineInto(alpha, x, beta, y)
}
