// SPDX-License-Identifier: MIT
// Package linop: uniform and nonuniform (diagonal) scaling operators.
//
// Purpose:
//   - UniformScaling(c): multiply every element by one scalar; the
//     canonical example of an operator whose invertibility depends on
//     its captured operand (singular iff c is 0 or non-finite).
//   - DiagonalScaling(w): elementwise multiply by a weight array;
//     inverse divides, available iff every weight is finite & nonzero.
//
// Both are self-adjoint, so only two of the four transforms are
// semantically distinct and the adjoint bit collapses away.

package linop

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlinop/ndarray"
)

// ---------- Uniform scaling ----------

// uniformScaling multiplies by a fixed scalar; shape-agnostic.
type uniformScaling struct {
	factor float64
}

// NewUniformScaling returns the operator x ↦ c·x. Any c is a valid
// operator (including 0: the zero map); only the INVERSE transform
// requires c to be finite and nonzero, and that is enforced when the
// inverse decoration is requested, not here.
func NewUniformScaling(c float64) Operator { return uniformScaling{factor: c} }

// InputShape is unspecified: scaling acts on any shape.
func (uniformScaling) InputShape() ndarray.Shape { return nil }

// OutputShape is unspecified (always equal to the input shape).
func (uniformScaling) OutputShape() ndarray.Shape { return nil }

// SelfAdjoint: a real scalar multiple of the identity.
func (uniformScaling) SelfAdjoint() bool { return true }

// Invertible reports whether 1/c is a usable factor: c must be finite
// and nonzero.
func (op uniformScaling) Invertible() bool {
	return op.factor != 0 && !math.IsInf(op.factor, 0) && !math.IsNaN(op.factor)
}

// Apply computes y ← α·c·x + β·y (Direct/Adjoint) or y ← (α/c)·x + β·y
// (Inverse/InverseAdjoint). The scalar is folded into α so the whole
// apply is one Combine pass.
// Errors: ErrUnknownTransform, ErrShapeMismatch, ErrSingularOperator
// (inverse tag on a singular instance reaching apply directly).
// Complexity: O(n).
func (op uniformScaling) Apply(t Transform, alpha float64, x *ndarray.Array, beta float64, y *ndarray.Array) error {
	if err := validateApply(op, t, x, y); err != nil {
		return err
	}
	coeff := op.factor
	if t.IsInverse() {
		// Normally unreachable through Decorate (validated eagerly),
		// but direct Apply calls get the same strict answer.
		if !op.Invertible() {
			return fmt.Errorf("Apply(%s): scaling by %g: %w", t, op.factor, ErrSingularOperator)
		}
		coeff = 1 / op.factor
	}
	if alpha == 0 {
		// Pure scale of y. Folding first would compute 0·c, which is
		// NaN for a non-finite factor and would drag x into the result.
		scaleOutput(beta, y)

		return nil
	}

	return combineInto(alpha*coeff, x, beta, y)
}

// ---------- Nonuniform (diagonal) scaling ----------

// diagonalScaling multiplies elementwise by a captured weight array.
type diagonalScaling struct {
	weights    *ndarray.Array
	invertible bool // every weight finite and nonzero, fixed at construction
}

// NewDiagonalScaling returns the operator x ↦ w ⊙ x for a weight array
// w of the operand shape. The weights are captured, not copied, and
// never mutated. Invertibility (all weights finite and nonzero) is
// decided once, here, so inverse requests resolve in O(1).
// Errors: ndarray.ErrNilArray.
func NewDiagonalScaling(w *ndarray.Array) (Operator, error) {
	if err := ndarray.ValidateNotNil(w); err != nil {
		return nil, fmt.Errorf("NewDiagonalScaling: %w", err)
	}
	invertible := true
	for _, v := range w.Data() { // deterministic 0..n-1 scan
		if v == 0 || math.IsInf(v, 0) || math.IsNaN(v) {
			invertible = false
			break
		}
	}

	return diagonalScaling{weights: w, invertible: invertible}, nil
}

// InputShape equals the weight array's shape.
func (op diagonalScaling) InputShape() ndarray.Shape { return op.weights.Shape() }

// OutputShape equals the weight array's shape.
func (op diagonalScaling) OutputShape() ndarray.Shape { return op.weights.Shape() }

// SelfAdjoint: a real diagonal operator.
func (diagonalScaling) SelfAdjoint() bool { return true }

// Invertible reports the construction-time scan result.
func (op diagonalScaling) Invertible() bool { return op.invertible }

// Apply computes y ← α·(w ⊙ x) + β·y (Direct/Adjoint) or
// y ← α·(x ⊘ w) + β·y (Inverse/InverseAdjoint): scale the output by β
// first, then accumulate the weighted term, so β = 0 never reads the
// prior y and α = 0 never reads x.
// Errors: ErrUnknownTransform, ErrShapeMismatch, ErrSingularOperator.
// Complexity: O(n).
func (op diagonalScaling) Apply(t Transform, alpha float64, x *ndarray.Array, beta float64, y *ndarray.Array) error {
	if err := validateApply(op, t, x, y); err != nil {
		return err
	}
	if t.IsInverse() && !op.invertible {
		return fmt.Errorf("Apply(%s): %w", t, ErrSingularOperator)
	}

	scaleOutput(beta, y)
	if alpha == 0 {
		return nil // degenerate: pure scale of y, x untouched
	}

	wd, xd, yd := op.weights.Data(), x.Data(), y.Data()
	if t.IsInverse() {
		for i := range yd { // fixed 0..n-1 order
			yd[i] += alpha * xd[i] / wd[i]
		}

		return nil
	}
	for i := range yd {
		yd[i] += alpha * wd[i] * xd[i]
	}

	return nil
}
