// SPDX-License-Identifier: MIT
// Package linop: thin bridges from Array operands to the vec kernels.
// Shared by the catalog so the coefficient contract (α = 0 never reads
// x, β = 0 never reads prior y) is honored in exactly one place.

package linop

import (
	"github.com/katalvlaran/lvlinop/ndarray"
	"github.com/katalvlaran/lvlinop/vec"
)

// combineInto computes y ← α·x + β·y over the flat buffers. Shapes are
// validated by the caller (validateApply), so the only kernel error —
// length mismatch — cannot occur; it is still propagated, not dropped.
func combineInto(alpha float64, x *ndarray.Array, beta float64, y *ndarray.Array) error {
	return vec.Combine(alpha, x.Data(), beta, y.Data())
}

// scaleOutput computes y ← β·y, with β = 0 filling zeros without
// reading the prior contents. Catalog operators call this first when
// they accumulate term by term afterwards.
func scaleOutput(beta float64, y *ndarray.Array) {
	vec.Scale(beta, y.Data())
}
