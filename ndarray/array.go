// SPDX-License-Identifier: MIT
// Package ndarray: Array — a dense, row-major, N-dimensional float64
// container backed by a single flat slice.
//
// Purpose:
//   - Provide the concrete numeric buffer the kernels and operators
//     compute on, with O(1) flat access and bounds-safe indexers.
//
// Determinism & Policy:
//   - Storage is row-major: the last axis is contiguous. Data() exposes
//     the backing slice for stride-1 kernel fast paths; callers must
//     not resize it.
//   - Constructors validate shape before allocation; indexers return
//     ErrOutOfRange instead of panicking.

package ndarray

import (
	"fmt"
	"strings"
)

// arrayErrorf wraps an underlying error with Array method context.
func arrayErrorf(method string, err error) error {
	return fmt.Errorf("Array.%s: %w", method, err)
}

// Array is a dense N-dimensional float64 array.
// shape holds the per-axis extents; data holds Size() elements in
// row-major order (last axis contiguous).
type Array struct {
	shape Shape     // per-axis extents, validated at construction
	data  []float64 // flat backing storage, length == shape.Size()
}

// New creates a zero-initialized Array with the given shape.
// Stage 1 (Validate): shape must have positive extents.
// Stage 2 (Prepare): allocate the flat backing slice.
// Stage 3 (Finalize): return the new Array or ErrInvalidShape.
// Complexity: O(size) time and memory (zeroing by the runtime).
func New(shape Shape) (*Array, error) {
	// Validate the requested shape before any allocation.
	if err := shape.Validate(); err != nil {
		return nil, arrayErrorf("New", err)
	}
	// Allocate flat storage; the runtime zero-initializes it.
	data := make([]float64, shape.Size())

	// Keep a private copy of the shape so later caller edits cannot
	// desynchronize extents from storage.
	return &Array{shape: shape.Clone(), data: data}, nil
}

// FromSlice wraps an existing flat slice as an Array with the given
// shape. The slice is ADOPTED, not copied: the caller and the Array
// share storage (useful to build operators around caller data).
// Errors: ErrInvalidShape (bad shape), ErrLengthMismatch (len(data)
// differs from shape.Size()).
// Complexity: O(rank).
func FromSlice(shape Shape, data []float64) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, arrayErrorf("FromSlice", err)
	}
	if len(data) != shape.Size() {
		return nil, arrayErrorf("FromSlice",
			fmt.Errorf("have %d elements, shape wants %d: %w", len(data), shape.Size(), ErrLengthMismatch))
	}

	return &Array{shape: shape.Clone(), data: data}, nil
}

// Zeros is an intention-revealing alias of New.
// Complexity: O(size).
func Zeros(shape Shape) (*Array, error) { return New(shape) }

// Shape returns the array's shape. The returned value is the internal
// slice; treat it as read-only (Clone before mutating).
// Complexity: O(1).
func (a *Array) Shape() Shape { return a.shape }

// Size returns the total element count.
// Complexity: O(rank).
func (a *Array) Size() int { return a.shape.Size() }

// Rank returns the number of axes.
// Complexity: O(1).
func (a *Array) Rank() int { return len(a.shape) }

// Data returns the flat row-major backing slice (stride 1 on the last
// axis). This is the kernel fast path: mutating elements is fine,
// resizing is not.
// Complexity: O(1).
func (a *Array) Data() []float64 { return a.data }

// flatIndex computes the row-major flat offset for a multi-index, or
// returns ErrOutOfRange when the index has the wrong number of axes or
// any component is outside [0, extent).
// Complexity: O(rank).
func (a *Array) flatIndex(index []int) (int, error) {
	// The multi-index must name every axis exactly once.
	if len(index) != len(a.shape) {
		return 0, fmt.Errorf("index rank %d, array rank %d: %w", len(index), len(a.shape), ErrOutOfRange)
	}
	// Accumulate the offset axis by axis (row-major: leading axes are
	// the slow ones, trailing axis is contiguous).
	flat := 0
	for d, i := range index {
		if i < 0 || i >= a.shape[d] {
			return 0, fmt.Errorf("axis %d index %d outside [0,%d): %w", d, i, a.shape[d], ErrOutOfRange)
		}
		flat = flat*a.shape[d] + i
	}

	return flat, nil
}

// At retrieves the element at the given multi-index.
// Stage 1 (Validate): bounds check via flatIndex.
// Stage 2 (Execute): read from the flat slice.
// Complexity: O(rank).
func (a *Array) At(index ...int) (float64, error) {
	flat, err := a.flatIndex(index)
	if err != nil {
		return 0, arrayErrorf("At", err)
	}

	return a.data[flat], nil
}

// Set assigns value v at the given multi-index.
// Stage 1 (Validate): bounds check via flatIndex.
// Stage 2 (Execute): write into the flat slice.
// Complexity: O(rank).
func (a *Array) Set(v float64, index ...int) error {
	flat, err := a.flatIndex(index)
	if err != nil {
		return arrayErrorf("Set", err)
	}
	a.data[flat] = v

	return nil
}

// Clone returns a deep copy of the array (fresh shape and storage).
// Complexity: O(size).
func (a *Array) Clone() *Array {
	data := make([]float64, len(a.data))
	copy(data, a.data)

	return &Array{shape: a.shape.Clone(), data: data}
}

// Fill sets every element to v.
// Complexity: O(size).
func (a *Array) Fill(v float64) {
	for i := range a.data { // deterministic 0..n-1
		a.data[i] = v
	}
}

// Zero resets every element to 0.
// Complexity: O(size).
func (a *Array) Zero() {
	for i := range a.data {
		a.data[i] = 0
	}
}

// String implements fmt.Stringer for debugging: shape plus the flat
// contents, e.g. "2×2[1, 0, 0, 1]". Intended for small arrays.
func (a *Array) String() string {
	var b strings.Builder
	b.WriteString(a.shape.String())
	b.WriteString("[")
	for i, v := range a.data {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%g", v)
	}
	b.WriteString("]")

	return b.String()
}
