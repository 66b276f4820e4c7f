// SPDX-License-Identifier: MIT
package ndarray_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinop/ndarray"
)

// TestNew_ZeroInitialized verifies fresh arrays are all zeros and
// malformed shapes are rejected before allocation.
func TestNew_ZeroInitialized(t *testing.T) {
	a, err := ndarray.New(ndarray.Shape{2, 3})
	require.NoError(t, err)
	assert.Equal(t, 6, a.Size())
	for _, v := range a.Data() {
		assert.Zero(t, v)
	}

	_, err = ndarray.New(ndarray.Shape{2, 0})
	assert.ErrorIs(t, err, ndarray.ErrInvalidShape)
}

// TestFromSlice_AdoptsStorage checks that the buffer is shared, the
// length is validated, and the shape is copied defensively.
func TestFromSlice_AdoptsStorage(t *testing.T) {
	data := []float64{1, 2, 3, 4}
	shp := ndarray.Shape{2, 2}
	a, err := ndarray.FromSlice(shp, data)
	require.NoError(t, err)

	// Storage is shared with the caller by design.
	data[0] = 42
	v, err := a.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)

	// The shape was cloned: caller edits must not desynchronize it.
	shp[0] = 99
	assert.Equal(t, ndarray.Shape{2, 2}, a.Shape())

	_, err = ndarray.FromSlice(ndarray.Shape{3, 3}, data)
	assert.ErrorIs(t, err, ndarray.ErrLengthMismatch)
}

// TestAtSet_RowMajor pins the layout: flat index walks the LAST axis
// fastest.
func TestAtSet_RowMajor(t *testing.T) {
	a, err := ndarray.New(ndarray.Shape{2, 3})
	require.NoError(t, err)

	require.NoError(t, a.Set(7, 1, 2)) // last element of the flat buffer
	assert.Equal(t, 7.0, a.Data()[5])

	require.NoError(t, a.Set(5, 1, 0))
	assert.Equal(t, 5.0, a.Data()[3])

	v, err := a.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
}

// TestAtSet_OutOfRange covers bad ranks and out-of-bounds components.
func TestAtSet_OutOfRange(t *testing.T) {
	a, err := ndarray.New(ndarray.Shape{2, 3})
	require.NoError(t, err)

	_, errAt := a.At(0)
	assert.ErrorIs(t, errAt, ndarray.ErrOutOfRange, "wrong rank must fail")

	_, errAt = a.At(2, 0)
	assert.ErrorIs(t, errAt, ndarray.ErrOutOfRange)

	assert.ErrorIs(t, a.Set(1, 0, -1), ndarray.ErrOutOfRange)
	assert.ErrorIs(t, a.Set(1, 0, 3), ndarray.ErrOutOfRange)
}

// TestCloneFillZero covers the bulk mutators and clone independence.
func TestCloneFillZero(t *testing.T) {
	a, err := ndarray.FromSlice(ndarray.Shape{3}, []float64{1, 2, 3})
	require.NoError(t, err)

	c := a.Clone()
	c.Fill(9)
	assert.Equal(t, []float64{1, 2, 3}, a.Data(), "clone must not share storage")
	assert.Equal(t, []float64{9, 9, 9}, c.Data())

	c.Zero()
	assert.Equal(t, []float64{0, 0, 0}, c.Data())
}

// TestValidators covers the canonical shape/nil checks.
func TestValidators(t *testing.T) {
	a, err := ndarray.New(ndarray.Shape{2})
	require.NoError(t, err)
	b, err := ndarray.New(ndarray.Shape{3})
	require.NoError(t, err)

	assert.NoError(t, ndarray.ValidateNotNil(a))
	assert.ErrorIs(t, ndarray.ValidateNotNil(nil), ndarray.ErrNilArray)

	assert.ErrorIs(t, ndarray.ValidateSameShape(a, b), ndarray.ErrShapeMismatch)
	assert.ErrorIs(t, ndarray.ValidateSameShape(nil, b), ndarray.ErrNilArray)

	assert.NoError(t, ndarray.ValidateHasShape(a, ndarray.Shape{2}))
	assert.NoError(t, ndarray.ValidateHasShape(a, nil), "nil want skips the extent check")
	assert.ErrorIs(t, ndarray.ValidateHasShape(a, ndarray.Shape{3}), ndarray.ErrShapeMismatch)
}

// TestString covers the debug rendering on a tiny array.
func TestString(t *testing.T) {
	a, err := ndarray.FromSlice(ndarray.Shape{2, 2}, []float64{1, 0, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, "2×2[1, 0, 0, 1]", a.String())
}
