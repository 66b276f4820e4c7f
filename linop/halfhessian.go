// SPDX-License-Identifier: MIT
// Package linop: the half-Hessian container.
//
// Purpose:
//   - Tag an arbitrary object as representing "twice the curvature" of
//     some objective at a point, and make it usable wherever a
//     self-adjoint Operator is expected by delegating Direct
//     application to a caller-supplied rule. This is an extension
//     point, not a computed operator: the library never inspects the
//     wrapped object.

package linop

import (
	"fmt"

	"github.com/katalvlaran/lvlinop/ndarray"
)

// HessianFunc is the caller-supplied application rule of a HalfHessian:
// it must compute y ← α·H(x) + β·y for the self-adjoint map H and
// honor the same coefficient contract as every operator (α = 0 never
// reads x, β = 0 never reads the prior y).
type HessianFunc func(alpha float64, x *ndarray.Array, beta float64, y *ndarray.Array) error

// HalfHessian wraps an arbitrary object together with its application
// rule. Exported as a concrete type so callers can recover the object.
type HalfHessian struct {
	obj  any
	rule HessianFunc
}

// NewHalfHessian wraps obj with its application rule. The rule is
// mandatory; the object may be anything, including nil.
// Errors: ErrNilRule.
func NewHalfHessian(obj any, rule HessianFunc) (*HalfHessian, error) {
	if rule == nil {
		return nil, fmt.Errorf("NewHalfHessian: %w", ErrNilRule)
	}

	return &HalfHessian{obj: obj, rule: rule}, nil
}

// Object returns the wrapped object.
func (op *HalfHessian) Object() any { return op.obj }

// InputShape is unspecified: the rule decides at apply time.
func (*HalfHessian) InputShape() ndarray.Shape { return nil }

// OutputShape is unspecified.
func (*HalfHessian) OutputShape() ndarray.Shape { return nil }

// SelfAdjoint: true by contract. Curvature containers promise a
// symmetric map, so the adjoint bit collapses on decoration.
func (*HalfHessian) SelfAdjoint() bool { return true }

// Invertible: no inverse rule is supplied.
func (*HalfHessian) Invertible() bool { return false }

// Apply validates the operands (same shape: a curvature map is an
// endomorphism) then delegates to the rule. Inverse tags fail.
// Errors: ErrUnknownTransform, ErrShapeMismatch, ErrSingularOperator,
// plus whatever the rule reports.
func (op *HalfHessian) Apply(t Transform, alpha float64, x *ndarray.Array, beta float64, y *ndarray.Array) error {
	if err := validateApply(op, t, x, y); err != nil {
		return err
	}
	if t.IsInverse() {
		return fmt.Errorf("Apply(%s): half-hessian: %w", t, ErrSingularOperator)
	}

	return op.rule(alpha, x, beta, y)
}
