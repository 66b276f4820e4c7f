// SPDX-License-Identifier: MIT
// Package ndarray: Shape — ordered per-axis extents and derived layout
// facts (size, strides, centering offsets).
//
// Purpose:
//   - Describe the index domain of an Array or a linear operator.
//   - Centralize the row-major layout convention: the LAST axis is the
//     contiguous one (stride 1); leading axes have larger strides.
//
// Determinism & Policy:
//   - All methods are pure; Shape values are never mutated in place by
//     this package (Clone before editing on the caller side).
//   - Validation is strict: every extent must be > 0.

package ndarray

import (
	"fmt"
	"strings"
)

// shapeSeparator joins extents in the human-readable form "3×4×5".
const shapeSeparator = "×"

// Shape is an ordered tuple of positive per-axis extents.
// A nil Shape means "unspecified": shape-agnostic operators report it
// and defer size checks to apply time.
type Shape []int

// Validate checks that the shape has at least one axis and that every
// extent is strictly positive.
// Returns ErrInvalidShape on violation; nil otherwise.
// Complexity: O(rank).
func (s Shape) Validate() error {
	// A shape must describe at least one axis.
	if len(s) == 0 {
		return fmt.Errorf("Shape.Validate: empty: %w", ErrInvalidShape)
	}
	// Every extent must be positive; zero or negative extents are malformed.
	for d, n := range s {
		if n <= 0 {
			return fmt.Errorf("Shape.Validate: axis %d extent %d: %w", d, n, ErrInvalidShape)
		}
	}

	return nil
}

// Rank returns the number of axes.
// Complexity: O(1).
func (s Shape) Rank() int { return len(s) }

// Size returns the total element count (the product of all extents).
// An empty shape yields 0 by convention.
// Complexity: O(rank).
func (s Shape) Size() int {
	if len(s) == 0 {
		return 0
	}
	size := 1
	for _, n := range s { // fixed axis order guarantees reproducibility
		size *= n
	}

	return size
}

// Equal reports whether s and t have identical rank and extents.
// Two nil shapes are equal; nil never equals a non-nil shape.
// Complexity: O(rank).
func (s Shape) Equal(t Shape) bool {
	if len(s) != len(t) {
		return false
	}
	for d := range s {
		if s[d] != t[d] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of s (nil stays nil).
// Complexity: O(rank).
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	copy(out, s)

	return out
}

// Strides returns the row-major strides of s: the LAST axis has stride
// 1 and each preceding axis multiplies by the following extent, so
// flat(i₀,…,i_{r−1}) = Σ i_d·stride[d].
// Complexity: O(rank).
func (s Shape) Strides() []int {
	strides := make([]int, len(s))
	acc := 1
	for d := len(s) - 1; d >= 0; d-- { // trailing axis first
		strides[d] = acc
		acc *= s[d]
	}

	return strides
}

// String implements fmt.Stringer, rendering extents as "3×4×5".
// A nil shape renders as "unspecified".
func (s Shape) String() string {
	if s == nil {
		return "unspecified"
	}
	parts := make([]string, len(s))
	for d, n := range s {
		parts[d] = fmt.Sprintf("%d", n)
	}

	return strings.Join(parts, shapeSeparator)
}

// CenterOffset returns the per-axis placement of an out-shaped region
// centered inside an in-shaped region using the spectral fftshift
// convention: offset[d] = in[d]>>1 − out[d]>>1, computed independently
// per axis for even and odd extents alike.
//
// Inputs: in and out must have equal rank (not validated here; the
// cropping constructor validates ranks and bounds eagerly).
// Complexity: O(rank).
func CenterOffset(in, out Shape) []int {
	offset := make([]int, len(in))
	for d := range in {
		offset[d] = in[d]>>1 - out[d]>>1
	}

	return offset
}
