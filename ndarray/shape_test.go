// SPDX-License-Identifier: MIT
package ndarray_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlinop/ndarray"
)

// TestShape_Validate covers accepted and rejected shapes.
func TestShape_Validate(t *testing.T) {
	assert.NoError(t, ndarray.Shape{1}.Validate())
	assert.NoError(t, ndarray.Shape{3, 4, 5}.Validate())

	assert.ErrorIs(t, ndarray.Shape{}.Validate(), ndarray.ErrInvalidShape)
	assert.ErrorIs(t, ndarray.Shape{3, 0}.Validate(), ndarray.ErrInvalidShape)
	assert.ErrorIs(t, ndarray.Shape{-1}.Validate(), ndarray.ErrInvalidShape)
}

// TestShape_SizeRankEqual covers the derived facts.
func TestShape_SizeRankEqual(t *testing.T) {
	s := ndarray.Shape{3, 4, 5}
	assert.Equal(t, 60, s.Size())
	assert.Equal(t, 3, s.Rank())
	assert.Equal(t, 0, ndarray.Shape(nil).Size())

	assert.True(t, s.Equal(ndarray.Shape{3, 4, 5}))
	assert.False(t, s.Equal(ndarray.Shape{3, 4}))
	assert.False(t, s.Equal(ndarray.Shape{3, 4, 6}))
	assert.True(t, ndarray.Shape(nil).Equal(nil))
}

// TestShape_Strides pins the row-major convention: last axis stride 1.
func TestShape_Strides(t *testing.T) {
	assert.Equal(t, []int{20, 5, 1}, ndarray.Shape{3, 4, 5}.Strides())
	assert.Equal(t, []int{1}, ndarray.Shape{7}.Strides())
}

// TestShape_CloneIsIndependent ensures editing a clone leaves the
// original untouched.
func TestShape_CloneIsIndependent(t *testing.T) {
	s := ndarray.Shape{2, 3}
	c := s.Clone()
	c[0] = 99
	assert.Equal(t, ndarray.Shape{2, 3}, s)
	assert.Nil(t, ndarray.Shape(nil).Clone())
}

// TestCenterOffset pins the fftshift convention per axis for even and
// odd extents.
func TestCenterOffset(t *testing.T) {
	// Even in, even out: 8>>1 − 4>>1 = 2.
	assert.Equal(t, []int{2}, ndarray.CenterOffset(ndarray.Shape{8}, ndarray.Shape{4}))
	// Odd in, even out: 7>>1 − 4>>1 = 1.
	assert.Equal(t, []int{1}, ndarray.CenterOffset(ndarray.Shape{7}, ndarray.Shape{4}))
	// Odd/odd per axis, computed independently.
	assert.Equal(t, []int{2, 1},
		ndarray.CenterOffset(ndarray.Shape{9, 5}, ndarray.Shape{4, 3}))
}

// TestShape_String covers the debug rendering.
func TestShape_String(t *testing.T) {
	assert.Equal(t, "3×4", ndarray.Shape{3, 4}.String())
	assert.Equal(t, "unspecified", ndarray.Shape(nil).String())
}
