// Package ndarray provides the flat numeric containers every other
// lvlinop package computes on: Shape, an ordered tuple of per-axis
// extents, and Array, a dense row-major N-dimensional float64 buffer.
//
// 🚀 What is ndarray?
//
//	The minimal array abstraction the operator layer needs:
//	  • Shape — extents, sizes, row-major strides, centering offsets
//	  • Array — flat storage, bounds-checked multi-index access,
//	    and a Data() escape hatch for stride-1 kernel fast paths
//	  • Validators — one canonical source of truth for nil/shape checks
//
// ✨ Key guarantees:
//   - Row-major layout: the LAST axis is contiguous (stride 1), so
//     inner loops over the trailing dimension walk memory in order.
//   - Strict construction: non-positive extents are rejected with
//     ErrInvalidShape before any allocation happens.
//   - Bounds-safe indexers: At/Set return ErrOutOfRange, never panic.
//
// ⚙️ Usage:
//
//	shp := ndarray.Shape{3, 4}
//	a, err := ndarray.New(shp)        // zero-initialized 3×4
//	_ = a.Set(2.5, 1, 2)              // a[1,2] = 2.5
//	v, _ := a.At(1, 2)                // v == 2.5
//	flat := a.Data()                  // stride-1 view for kernels
//
// All containers are plain values with no hidden state; sharing an
// Array across goroutines is safe as long as at most one writes.
package ndarray
