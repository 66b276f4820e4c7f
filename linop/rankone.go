// SPDX-License-Identifier: MIT
// Package linop: rank-one operators.
//
// Purpose:
//   - RankOne(u, v): x ↦ (v·x)·u — the outer product u⊗v applied
//     lazily. Not self-adjoint in general (its adjoint swaps u and v)
//     and not invertible (a rank-one map has no general inverse).
//   - SymmetricRankOne(u): the u = v special case, self-adjoint by
//     construction.
//
// This is the smallest catalog operator that must implement Direct AND
// Adjoint explicitly: the decoration layer cannot derive one from the
// other without the self-adjoint contract.

package linop

import (
	"fmt"

	"github.com/katalvlaran/lvlinop/ndarray"
	"github.com/katalvlaran/lvlinop/vec"
)

// rankOne applies x ↦ (v·x)·u; symmetric marks the u = v case.
type rankOne struct {
	u, v      *ndarray.Array
	symmetric bool
}

// NewRankOne returns the rank-one operator x ↦ (v·x)·u. The input
// shape is v's and the output shape is u's, so the operator may change
// shapes. Both vectors are captured, never mutated.
// Errors: ndarray.ErrNilArray.
func NewRankOne(u, v *ndarray.Array) (Operator, error) {
	if err := ndarray.ValidateNotNil(u); err != nil {
		return nil, fmt.Errorf("NewRankOne: u: %w", err)
	}
	if err := ndarray.ValidateNotNil(v); err != nil {
		return nil, fmt.Errorf("NewRankOne: v: %w", err)
	}

	return rankOne{u: u, v: v, symmetric: false}, nil
}

// NewSymmetricRankOne returns the self-adjoint operator x ↦ (u·x)·u.
// Errors: ndarray.ErrNilArray.
func NewSymmetricRankOne(u *ndarray.Array) (Operator, error) {
	if err := ndarray.ValidateNotNil(u); err != nil {
		return nil, fmt.Errorf("NewSymmetricRankOne: %w", err)
	}

	return rankOne{u: u, v: u, symmetric: true}, nil
}

// InputShape is the shape of v (the vector the operand contracts with).
func (op rankOne) InputShape() ndarray.Shape { return op.v.Shape() }

// OutputShape is the shape of u (the direction of the result).
func (op rankOne) OutputShape() ndarray.Shape { return op.u.Shape() }

// SelfAdjoint: only the symmetric (u = v) construction.
func (op rankOne) SelfAdjoint() bool { return op.symmetric }

// Invertible: a rank-one map has no general inverse.
func (rankOne) Invertible() bool { return false }

// Apply computes y ← α·(v·x)·u + β·y for Direct and the u/v-swapped
// contraction for Adjoint: one dot product, then one Combine with the
// scalar folded into α.
// Errors: ErrUnknownTransform, ErrShapeMismatch, ErrSingularOperator
// (inverse tags: no inverse exists).
// Complexity: O(n) — one reduction plus one combine pass.
func (op rankOne) Apply(t Transform, alpha float64, x *ndarray.Array, beta float64, y *ndarray.Array) error {
	if op.symmetric {
		t = t.selfAdjointCollapse()
	}
	if err := validateApply(op, t, x, y); err != nil {
		return err
	}
	if t.IsInverse() {
		return fmt.Errorf("Apply(%s): rank-one: %w", t, ErrSingularOperator)
	}
	if alpha == 0 {
		scaleOutput(beta, y) // x is never read

		return nil
	}

	// Direct contracts with v and emits along u; Adjoint swaps roles.
	with, along := op.v, op.u
	if t.IsAdjoint() {
		with, along = op.u, op.v
	}
	s, err := vec.Dot(with.Data(), x.Data())
	if err != nil {
		return fmt.Errorf("Apply(%s): %w", t, err)
	}

	return combineInto(alpha*s, along, beta, y)
}
