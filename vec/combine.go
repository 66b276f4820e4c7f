// SPDX-License-Identifier: MIT
// Package vec: the Combine kernel and its degenerate companions.
//
// Purpose:
//   - Implement y ← α·x + β·y with one dedicated branch per
//     distinguished coefficient pair, so the {−1, 0, 1} cases never
//     pay a multiply and never touch buffers they are allowed to skip.
//
// Determinism & Policy:
//   - Fixed 0..n−1 loop order in every branch.
//   - Branch results for distinguished coefficients are bit-identical
//     to the generic multiply-add path (IEEE: 1·v ≡ v, −1·v ≡ −v,
//     a + (−b) ≡ a − b, and addition is commutative).

package vec

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Float is the element-type constraint for all vec kernels.
type Float interface {
	~float32 | ~float64
}

// ErrLengthMismatch indicates that two buffers that must share an index
// domain have different lengths.
var ErrLengthMismatch = errors.New("vec: slice length mismatch")

// Combine computes y[i] ← α·x[i] + β·y[i] elementwise, in place.
//
// Contract:
//   - α = 0: x is NEVER read (it may be nil, uninitialized or aliasing
//     garbage); the call degenerates to Scale(β, y).
//   - β = 0: the prior contents of y are NEVER read.
//   - α, β ∈ {−1, 0, 1}: the selected branch avoids the multiply and is
//     bit-identical to the generic α·x+β·y path for those values.
//
// Inputs: x and y must have equal length whenever x is read (α ≠ 0).
// Returns: nil, or ErrLengthMismatch before any write.
// Complexity: O(n) single pass, O(1) space.
func Combine[T Float](alpha T, x []T, beta T, y []T) error {
	// α = 0 never touches x, so the length precondition only binds when
	// x participates.
	if alpha != 0 && len(x) != len(y) {
		return fmt.Errorf("Combine: len(x)=%d len(y)=%d: %w", len(x), len(y), ErrLengthMismatch)
	}

	switch alpha {
	case 0:
		// Pure scale of y; x is not read on any path below.
		Scale(beta, y)
	case 1:
		switch beta {
		case 0:
			copy(y, x) // store: y ← x
		case 1:
			for i := range y { // add: y ← x + y
				y[i] += x[i]
			}
		case -1:
			for i := range y { // subtract: y ← x − y
				y[i] = x[i] - y[i]
			}
		default:
			for i := range y { // one multiply: y ← x + β·y
				y[i] = x[i] + beta*y[i]
			}
		}
	case -1:
		switch beta {
		case 0:
			for i := range y { // negate-store: y ← −x
				y[i] = -x[i]
			}
		case 1:
			for i := range y { // subtract: y ← y − x
				y[i] -= x[i]
			}
		case -1:
			for i := range y { // negate-add: y ← −x − y
				y[i] = -x[i] - y[i]
			}
		default:
			for i := range y { // one multiply: y ← β·y − x
				y[i] = beta*y[i] - x[i]
			}
		}
	default:
		switch beta {
		case 0:
			for i := range y { // scaled store: y ← α·x
				y[i] = alpha * x[i]
			}
		case 1:
			for i := range y { // axpy: y ← α·x + y
				y[i] += alpha * x[i]
			}
		case -1:
			for i := range y { // y ← α·x − y
				y[i] = alpha*x[i] - y[i]
			}
		default:
			combineGeneric(alpha, x, beta, y)
		}
	}

	return nil
}

// combineGeneric is the general-coefficient path: y ← α·x + β·y with
// both multiplies. For []float64 it delegates to the gonum vendor
// routines (Scale then AddScaled; addition commutes, so the result is
// bit-identical to the fused loop); every other element type takes the
// pure-Go loop. Lengths are validated by the caller.
func combineGeneric[T Float](alpha T, x []T, beta T, y []T) {
	// Vendor fast path: concrete []float64 buffers only.
	if ys, ok := any(y).([]float64); ok {
		xs := any(x).([]float64)
		floats.Scale(float64(beta), ys)          // y ← β·y
		floats.AddScaled(ys, float64(alpha), xs) // y ← y + α·x

		return
	}
	// Mandatory generic fallback.
	for i := range y { // deterministic 0..n-1
		y[i] = alpha*x[i] + beta*y[i]
	}
}

// Scale computes y ← β·y in place.
//
// Contract: β = 0 never reads the prior contents of y (pure fill);
// β = 1 is a no-op; β = −1 negates without multiplying.
// Complexity: O(n).
func Scale[T Float](beta T, y []T) {
	switch beta {
	case 0:
		Fill(y, 0) // store only; prior y is not read
	case 1:
		// Identity: leave y untouched.
	case -1:
		for i := range y {
			y[i] = -y[i]
		}
	default:
		if ys, ok := any(y).([]float64); ok {
			floats.Scale(float64(beta), ys) // vendor path
			return
		}
		for i := range y {
			y[i] *= beta
		}
	}
}

// Fill sets every element of dst to v.
// Complexity: O(n).
func Fill[T Float](dst []T, v T) {
	for i := range dst {
		dst[i] = v
	}
}

// Copy stores src into dst elementwise.
// Returns ErrLengthMismatch when the lengths differ.
// Complexity: O(n).
func Copy[T Float](dst, src []T) error {
	if len(dst) != len(src) {
		return fmt.Errorf("Copy: len(dst)=%d len(src)=%d: %w", len(dst), len(src), ErrLengthMismatch)
	}
	copy(dst, src)

	return nil
}
