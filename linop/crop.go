// SPDX-License-Identifier: MIT
// Package linop: the cropping / zero-padding adjoint pair.
//
// Purpose:
//   - Cropping(outShape, inShape, offset): Direct restricts a large
//     array to the sub-region placed at offset; its Adjoint — exposed
//     as zero-padding — scatters a small array back into the large
//     index space, leaving every position outside the region equal to
//     β·(its prior value). A structurally sparse, shape-changing
//     linear map, and the canonical worked example of adjoint
//     correctness: dot(Crop·u, v) == dot(u, ZeroPad·v) exactly.
//
// Determinism & Policy:
//   - All placement validation happens at construction (ErrInvalidShape),
//     never deferred to apply time.
//   - The default offset centers the region per axis with the fftshift
//     convention: offset[d] = in[d]>>1 − out[d]>>1.
//   - The region walk is an odometer over the leading axes with the
//     trailing axis handled as one contiguous Combine per row, so the
//     coefficient special cases of the kernel carry through unchanged.

package linop

import (
	"fmt"

	"github.com/katalvlaran/lvlinop/ndarray"
	"github.com/katalvlaran/lvlinop/vec"
)

// cropping restricts in-shaped arrays to an out-shaped region.
type cropping struct {
	in, out   ndarray.Shape
	offset    []int // per-axis placement of the region, validated eagerly
	inStrides []int // row-major strides of the large shape
}

// NewCropping returns the operator restricting in-shaped arrays to the
// out-shaped region centered per axis (fftshift convention).
// Errors: ErrInvalidShape (malformed shapes, rank mismatch, or an
// output extent exceeding the input's).
func NewCropping(out, in ndarray.Shape) (Operator, error) {
	return newCropping(out, in, nil)
}

// NewCroppingAt is NewCropping with an explicit per-axis offset. The
// region {i : offset ≤ i < offset+out} must lie fully inside the input
// region; violations fail here, at construction, with ErrInvalidShape.
func NewCroppingAt(out, in ndarray.Shape, offset []int) (Operator, error) {
	if offset == nil {
		return nil, fmt.Errorf("NewCroppingAt: nil offset: %w", ErrInvalidShape)
	}

	return newCropping(out, in, offset)
}

// NewZeroPadding returns the operator scattering in-shaped arrays into
// the larger out-shaped index space at the centered offset — exactly
// the adjoint of the matching cropping, and built as such.
// Errors: ErrInvalidShape.
func NewZeroPadding(out, in ndarray.Shape) (Operator, error) {
	crop, err := NewCropping(in, out)
	if err != nil {
		return nil, fmt.Errorf("NewZeroPadding: %w", err)
	}

	return NewAdjoint(crop)
}

// NewZeroPaddingAt is NewZeroPadding with an explicit offset.
func NewZeroPaddingAt(out, in ndarray.Shape, offset []int) (Operator, error) {
	crop, err := NewCroppingAt(in, out, offset)
	if err != nil {
		return nil, fmt.Errorf("NewZeroPaddingAt: %w", err)
	}

	return NewAdjoint(crop)
}

// newCropping validates shapes and placement once; nil offset selects
// the centered default.
func newCropping(out, in ndarray.Shape, offset []int) (Operator, error) {
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("NewCropping: output: %w", err)
	}
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("NewCropping: input: %w", err)
	}
	if out.Rank() != in.Rank() {
		return nil, fmt.Errorf("NewCropping: rank %d vs %d: %w", out.Rank(), in.Rank(), ErrInvalidShape)
	}
	for d := range out {
		if out[d] > in[d] {
			return nil, fmt.Errorf("NewCropping: axis %d: output %d exceeds input %d: %w",
				d, out[d], in[d], ErrInvalidShape)
		}
	}
	if offset == nil {
		offset = ndarray.CenterOffset(in, out)
	} else {
		if len(offset) != in.Rank() {
			return nil, fmt.Errorf("NewCropping: offset rank %d vs %d: %w",
				len(offset), in.Rank(), ErrInvalidShape)
		}
		for d, o := range offset {
			// The whole region must stay inside the input extents.
			if o < 0 || o+out[d] > in[d] {
				return nil, fmt.Errorf("NewCropping: axis %d: offset %d with extent %d outside [0,%d]: %w",
					d, o, out[d], in[d], ErrInvalidShape)
			}
		}
		cp := make([]int, len(offset))
		copy(cp, offset) // defensive copy: operators are immutable
		offset = cp
	}

	return cropping{
		in:        in.Clone(),
		out:       out.Clone(),
		offset:    offset,
		inStrides: in.Strides(),
	}, nil
}

// InputShape is the large shape the Direct transform reads from.
func (op cropping) InputShape() ndarray.Shape { return op.in }

// OutputShape is the small region shape the Direct transform writes.
func (op cropping) OutputShape() ndarray.Shape { return op.out }

// SelfAdjoint: cropping changes shapes, so direct and adjoint differ.
func (cropping) SelfAdjoint() bool { return false }

// Invertible: cropping discards data; no inverse exists.
func (cropping) Invertible() bool { return false }

// Offset returns the per-axis placement of the region (a copy).
func (op cropping) Offset() []int {
	cp := make([]int, len(op.offset))
	copy(cp, op.offset)

	return cp
}

// Apply computes, per transform:
//
//	Direct  (crop):     y[i] ← α·x[i+offset] + β·y[i] over the region;
//	Adjoint (zero-pad): y[i+offset] ← α·x[i] + β·(prior), everywhere
//	                    else y keeps β·(prior) — zeros when β = 0.
//
// Inverse tags fail with ErrSingularOperator.
// Complexity: O(region size) for Direct; O(len(y)) for Adjoint (the
// whole output is scaled by β first).
func (op cropping) Apply(t Transform, alpha float64, x *ndarray.Array, beta float64, y *ndarray.Array) error {
	if err := validateApply(op, t, x, y); err != nil {
		return err
	}
	if t.IsInverse() {
		return fmt.Errorf("Apply(%s): cropping: %w", t, ErrSingularOperator)
	}

	if t.IsAdjoint() {
		// Zero-padding: settle every output position to β·prior first
		// (zeros when β = 0, without reading), then add the scattered
		// region term.
		scaleOutput(beta, y)
		if alpha == 0 {
			return nil
		}
		small, large := x.Data(), y.Data()
		op.walkRegion(func(largeBase, smallBase, rowLen int) {
			// Region already carries β·prior; accumulate α·x onto it.
			// Combine cannot fail here: both slices have length rowLen.
			_ = vec.Combine(alpha, small[smallBase:smallBase+rowLen], 1, large[largeBase:largeBase+rowLen])
		})

		return nil
	}

	// Cropping: gather region rows, one contiguous Combine each.
	if alpha == 0 {
		scaleOutput(beta, y) // x is never read

		return nil
	}
	large, small := x.Data(), y.Data()
	op.walkRegion(func(largeBase, smallBase, rowLen int) {
		// Combine cannot fail here: both slices have length rowLen.
		_ = vec.Combine(alpha, large[largeBase:largeBase+rowLen], beta, small[smallBase:smallBase+rowLen])
	})

	return nil
}

// walkRegion visits every contiguous row of the region in fixed
// odometer order, reporting the flat base offset of the row inside the
// large (in-shaped) buffer, inside the small (out-shaped) buffer, and
// the row length (the trailing extent). Rank 1 degenerates to a single
// row.
func (op cropping) walkRegion(visit func(largeBase, smallBase, rowLen int)) {
	rank := op.out.Rank()
	rowLen := op.out[rank-1]

	// counters is the odometer over the leading axes of the region.
	counters := make([]int, rank-1)
	rows := op.out.Size() / rowLen
	smallBase := 0
	for r := 0; r < rows; r++ {
		// Flat base inside the large buffer for this region row.
		largeBase := op.offset[rank-1] // trailing axis is contiguous
		for d := 0; d < rank-1; d++ {
			largeBase += (op.offset[d] + counters[d]) * op.inStrides[d]
		}
		visit(largeBase, smallBase, rowLen)
		smallBase += rowLen

		// Advance the odometer (rightmost leading axis fastest).
		for d := rank - 2; d >= 0; d-- {
			counters[d]++
			if counters[d] < op.out[d] {
				break
			}
			counters[d] = 0
		}
	}
}
