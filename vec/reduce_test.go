// SPDX-License-Identifier: MIT
package vec_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinop/vec"
)

const reduceTol = 1e-12

// TestDot_Basic verifies the inner product at both element types.
func TestDot_Basic(t *testing.T) {
	got, err := vec.Dot([]float64{1, 2, 3}, []float64{4, 5, 6})
	require.NoError(t, err)
	assert.InDelta(t, 32.0, got, reduceTol)

	got32, err := vec.Dot([]float32{1, 2, 3}, []float32{4, 5, 6})
	require.NoError(t, err)
	assert.InDelta(t, 32.0, got32, reduceTol)
}

// TestDot_WideAccumulation checks that float32 inputs accumulate in
// float64: summing many small terms onto a large one must not lose
// them to float32 rounding.
func TestDot_WideAccumulation(t *testing.T) {
	const n = 1 << 12
	x := make([]float32, n+1)
	y := make([]float32, n+1)
	x[0], y[0] = 4096, 4096 // large head term: 4096² = 2²⁴
	for i := 1; i <= n; i++ {
		x[i], y[i] = 1, 0.5 // 4096 small terms of 0.5 each
	}

	got, err := vec.Dot(x, y)
	require.NoError(t, err)
	// float32 accumulation would round each +0.5 into 2²⁴ away;
	// float64 keeps them: 2²⁴ + 2048.
	assert.InDelta(t, float64(1<<24)+2048, got, reduceTol)
}

// TestDot_Errors covers mismatched lengths and the empty identity.
func TestDot_Errors(t *testing.T) {
	_, err := vec.Dot([]float64{1}, []float64{1, 2})
	assert.ErrorIs(t, err, vec.ErrLengthMismatch)

	got, err := vec.Dot([]float64{}, []float64{})
	require.NoError(t, err)
	assert.Zero(t, got, "empty dot must yield the reduction identity")
}

// TestNorms verifies the three norms on a fixed vector and the empty
// identity.
func TestNorms(t *testing.T) {
	x := []float64{3, -4, 0}

	assert.InDelta(t, 7.0, vec.Norm1(x), reduceTol)
	assert.InDelta(t, 5.0, vec.Norm2(x), reduceTol)
	assert.InDelta(t, 4.0, vec.NormInf(x), reduceTol)

	x32 := []float32{3, -4, 0}
	assert.InDelta(t, 7.0, vec.Norm1(x32), reduceTol)
	assert.InDelta(t, 5.0, vec.Norm2(x32), reduceTol)
	assert.InDelta(t, 4.0, vec.NormInf(x32), reduceTol)

	assert.Zero(t, vec.Norm1([]float64{}))
	assert.Zero(t, vec.Norm2([]float64{}))
	assert.Zero(t, vec.NormInf([]float64{}))
}

// TestNormInf_Negative ensures the max runs over magnitudes, not raw
// values.
func TestNormInf_Negative(t *testing.T) {
	assert.Equal(t, 9.0, vec.NormInf([]float64{-9, 2, 3}))
	assert.False(t, math.Signbit(vec.NormInf([]float64{-9})))
}
