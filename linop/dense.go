// SPDX-License-Identifier: MIT
// Package linop: the generalized dense operator.
//
// Purpose:
//   - Wrap a multi-dimensional coefficient array A as a lazy operator:
//     the TRAILING inputRank axes of A form the input shape, the
//     leading axes form the output shape, and apply is the textbook
//     contraction y[i] = Σⱼ A[i,j]·x[j] (vector–matrix for Adjoint).
//
// Determinism & Policy:
//   - Row-major storage puts the input axes innermost, so the Direct
//     inner loop walks A contiguously; the Adjoint loop walks rows of
//     A contiguously while scattering into y.
//   - Flattened, A is an (nout × nin) matrix whatever its rank, so the
//     vendor fast path is a single blas64.Gemv whose α/β contract is
//     exactly the apply protocol (β = 0 never reads y). Small operators
//     stay on the pure-Go loops — the mandatory fallback — where call
//     overhead would dominate.

package linop

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/katalvlaran/lvlinop/ndarray"
)

// gemvMinSize is the coefficient count from which apply delegates to
// the vendor Gemv; below it the wrapper overhead outweighs the gain.
const gemvMinSize = 1 << 10

// generalMatrix contracts a coefficient array against the operand.
type generalMatrix struct {
	coefs *ndarray.Array
	in    ndarray.Shape // trailing inputRank axes of coefs
	out   ndarray.Shape // leading axes of coefs
	nin   int           // in.Size()
	nout  int           // out.Size()
}

// NewGeneralMatrix wraps coefficient array a as an operator whose input
// shape is the trailing inputRank axes of a and whose output shape is
// the leading axes. inputRank must satisfy 0 < inputRank < a.Rank(), so
// both shapes are non-empty.
// Errors: ndarray.ErrNilArray, ErrInvalidShape (bad inputRank).
// Complexity: O(rank) — the array is captured, not copied.
func NewGeneralMatrix(a *ndarray.Array, inputRank int) (Operator, error) {
	if err := ndarray.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("NewGeneralMatrix: %w", err)
	}
	if inputRank <= 0 || inputRank >= a.Rank() {
		return nil, fmt.Errorf("NewGeneralMatrix: inputRank %d of rank-%d array: %w",
			inputRank, a.Rank(), ErrInvalidShape)
	}

	split := a.Rank() - inputRank
	in := a.Shape()[split:].Clone()
	out := a.Shape()[:split].Clone()

	return generalMatrix{
		coefs: a,
		in:    in,
		out:   out,
		nin:   in.Size(),
		nout:  out.Size(),
	}, nil
}

// InputShape is the trailing part of the coefficient shape.
func (op generalMatrix) InputShape() ndarray.Shape { return op.in }

// OutputShape is the leading part of the coefficient shape.
func (op generalMatrix) OutputShape() ndarray.Shape { return op.out }

// SelfAdjoint: a general coefficient array makes no symmetry promise.
func (generalMatrix) SelfAdjoint() bool { return false }

// Invertible: no algebraic inverse is supplied.
func (generalMatrix) Invertible() bool { return false }

// Apply computes y ← α·A·x + β·y (Direct) or y ← α·Aᵀ·u + β·y
// (Adjoint). Inverse tags fail: no inverse is supplied.
// Errors: ErrUnknownTransform, ErrShapeMismatch, ErrSingularOperator.
// Complexity: O(nout·nin).
func (op generalMatrix) Apply(t Transform, alpha float64, x *ndarray.Array, beta float64, y *ndarray.Array) error {
	if err := validateApply(op, t, x, y); err != nil {
		return err
	}
	if t.IsInverse() {
		return fmt.Errorf("Apply(%s): general matrix: %w", t, ErrSingularOperator)
	}

	// Vendor fast path: the flat buffers already are a row-major
	// (nout × nin) Gemv problem, and Gemv shares the β = 0 "output is
	// write-only" convention with the apply protocol.
	if op.nout*op.nin >= gemvMinSize {
		trans := blas.NoTrans
		if t.IsAdjoint() {
			trans = blas.Trans
		}
		a := blas64.General{Rows: op.nout, Cols: op.nin, Stride: op.nin, Data: op.coefs.Data()}
		xv := blas64.Vector{N: x.Size(), Inc: 1, Data: x.Data()}
		yv := blas64.Vector{N: y.Size(), Inc: 1, Data: y.Data()}
		blas64.Gemv(trans, alpha, a, xv, beta, yv)

		return nil
	}

	// Pure-Go fallback (mandatory; also the small-problem path).
	scaleOutput(beta, y)
	if alpha == 0 {
		return nil // x is never read
	}
	ad, xd, yd := op.coefs.Data(), x.Data(), y.Data()
	if t.IsAdjoint() {
		// y[j] += α·Σᵢ A[i,j]·u[i]: walk each row of A contiguously,
		// scattering one scaled row into y per input element. Zero
		// coefficients are NOT skipped: 0·A[i,j] must still propagate
		// non-finite coefficients, exactly like the Gemv path.
		var coeff float64
		var row []float64
		for i := 0; i < op.nout; i++ { // fixed i→j order
			coeff = alpha * xd[i]
			row = ad[i*op.nin : (i+1)*op.nin]
			for j := range row {
				yd[j] += coeff * row[j]
			}
		}

		return nil
	}
	// Direct: y[i] += α·(A[i,:]·x), inner loop contiguous over A.
	var acc float64
	var row []float64
	for i := 0; i < op.nout; i++ {
		row = ad[i*op.nin : (i+1)*op.nin]
		acc = 0
		for j := range row {
			acc += row[j] * xd[j]
		}
		yd[i] += alpha * acc
	}

	return nil
}
