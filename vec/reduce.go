// SPDX-License-Identifier: MIT
// Package vec: reduction kernels (dot product and norms).
//
// Purpose:
//   - Provide the reductions the operator catalog and the CG solver
//     consume, with accumulation at least as wide as the element type.
//
// Determinism & Policy:
//   - Fixed 0..n−1 accumulation order in the generic path.
//   - Empty inputs yield the identity of the reduction (0).
//   - []float64 delegates to gonum floats (numerically equivalent up to
//     floating-point reassociation, as permitted for reductions).

package vec

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Dot returns the inner product Σ x[i]·y[i], accumulated in float64.
// Empty inputs yield 0. Returns ErrLengthMismatch when lengths differ.
// Complexity: O(n).
func Dot[T Float](x, y []T) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("Dot: len(x)=%d len(y)=%d: %w", len(x), len(y), ErrLengthMismatch)
	}
	// Vendor fast path for concrete []float64 buffers.
	if xs, ok := any(x).([]float64); ok {
		return floats.Dot(xs, any(y).([]float64)), nil
	}
	// Generic fallback: widen each term before accumulating.
	var acc float64
	for i := range x { // deterministic 0..n-1
		acc += float64(x[i]) * float64(y[i])
	}

	return acc, nil
}

// Norm1 returns Σ |x[i]|, accumulated in float64. Empty input yields 0.
// Complexity: O(n).
func Norm1[T Float](x []T) float64 {
	if xs, ok := any(x).([]float64); ok {
		return floats.Norm(xs, 1)
	}
	var acc float64
	for i := range x {
		acc += math.Abs(float64(x[i]))
	}

	return acc
}

// Norm2 returns the Euclidean norm √(Σ x[i]²), accumulated in float64.
// Empty input yields 0.
// Complexity: O(n).
func Norm2[T Float](x []T) float64 {
	if xs, ok := any(x).([]float64); ok {
		return floats.Norm(xs, 2)
	}
	var acc float64
	var v float64
	for i := range x {
		v = float64(x[i])
		acc += v * v
	}

	return math.Sqrt(acc)
}

// NormInf returns max |x[i]|. Empty input yields 0.
// Complexity: O(n).
func NormInf[T Float](x []T) float64 {
	if xs, ok := any(x).([]float64); ok {
		return floats.Norm(xs, math.Inf(1))
	}
	var acc float64
	var v float64
	for i := range x {
		v = math.Abs(float64(x[i]))
		if v > acc {
			acc = v
		}
	}

	return acc
}
