// SPDX-License-Identifier: MIT
package cg_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinop/cg"
	"github.com/katalvlaran/lvlinop/linop"
	"github.com/katalvlaran/lvlinop/ndarray"
)

// diagonal builds a diagonal operator from the given weights.
func diagonal(t *testing.T, weights ...float64) linop.Operator {
	t.Helper()
	w, err := ndarray.FromSlice(ndarray.Shape{len(weights)}, weights)
	require.NoError(t, err)
	op, err := linop.NewDiagonalScaling(w)
	require.NoError(t, err)

	return op
}

// TestSolve_Diagonal solves diag(2,3,5)·x = (2,3,5): the solution is
// the all-ones vector, reached within the problem dimension.
func TestSolve_Diagonal(t *testing.T) {
	a := diagonal(t, 2, 3, 5)
	b, err := ndarray.FromSlice(ndarray.Shape{3}, []float64{2, 3, 5})
	require.NoError(t, err)

	res, err := cg.Solve(a, b, cg.DefaultOptions())
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{1, 1, 1}, res.X.Data(), 1e-10)
	assert.LessOrEqual(t, res.Iterations, 3)
	assert.NotEqual(t, cg.ReasonIterationLimit, res.Reason)
	assert.LessOrEqual(t, res.Residual, cg.DefaultRtol*math.Sqrt(2*2+3*3+5*5))
}

// TestSolve_Identity converges in a single step: the first search
// direction already is the solution.
func TestSolve_Identity(t *testing.T) {
	b, err := ndarray.FromSlice(ndarray.Shape{4}, []float64{1, -2, 3, -4})
	require.NoError(t, err)

	res, err := cg.Solve(linop.NewIdentity(), b, cg.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, b.Data(), res.X.Data())
	assert.Equal(t, 1, res.Iterations)
	assert.Equal(t, cg.ReasonAtol, res.Reason)
	assert.Zero(t, res.Residual)
}

// TestSolve_ZeroRHS returns the zero solution without iterating.
func TestSolve_ZeroRHS(t *testing.T) {
	a := diagonal(t, 2, 3)
	b, err := ndarray.New(ndarray.Shape{2})
	require.NoError(t, err)

	res, err := cg.Solve(a, b, cg.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 0}, res.X.Data())
	assert.Equal(t, 0, res.Iterations)
	assert.Equal(t, cg.ReasonAtol, res.Reason)
}

// TestSolve_Indefinite fails fast on a non-positive-definite operator:
// the first curvature is negative, so no step is ever taken.
func TestSolve_Indefinite(t *testing.T) {
	a := diagonal(t, 1, -1)
	b, err := ndarray.FromSlice(ndarray.Shape{2}, []float64{0, 1})
	require.NoError(t, err)

	_, err = cg.Solve(a, b, cg.DefaultOptions())
	assert.ErrorIs(t, err, cg.ErrNonConvergent)
}

// TestSolve_IterationLimit reports the cap as a Result, not an error.
func TestSolve_IterationLimit(t *testing.T) {
	a := diagonal(t, 2, 3, 5)
	b, err := ndarray.FromSlice(ndarray.Shape{3}, []float64{2, 3, 5})
	require.NoError(t, err)

	opts := cg.DefaultOptions()
	opts.MaxIter = 1
	res, err := cg.Solve(a, b, opts)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Iterations)
	assert.Equal(t, cg.ReasonIterationLimit, res.Reason)
	assert.Positive(t, res.Residual)
}

// TestSolveInto_InitialGuess terminates immediately when x already
// solves the system, and reuses the caller's buffer for the solution.
func TestSolveInto_InitialGuess(t *testing.T) {
	a := diagonal(t, 2, 3)
	b, err := ndarray.FromSlice(ndarray.Shape{2}, []float64{4, 9})
	require.NoError(t, err)
	x, err := ndarray.FromSlice(ndarray.Shape{2}, []float64{2, 3})
	require.NoError(t, err)

	res, err := cg.SolveInto(a, b, x, cg.DefaultOptions())
	require.NoError(t, err)

	assert.Same(t, x, res.X)
	assert.Equal(t, 0, res.Iterations)
	assert.Equal(t, cg.ReasonAtol, res.Reason)
}

// TestSolve_BadOptions rejects malformed tolerances and caps before
// touching any buffer.
func TestSolve_BadOptions(t *testing.T) {
	a := diagonal(t, 1, 1)
	b, err := ndarray.FromSlice(ndarray.Shape{2}, []float64{1, 1})
	require.NoError(t, err)

	for name, opts := range map[string]cg.Options{
		"negative Atol":    {Atol: -1},
		"NaN Atol":         {Atol: math.NaN()},
		"negative Rtol":    {Rtol: -1},
		"infinite Rtol":    {Rtol: math.Inf(1)},
		"negative MaxIter": {MaxIter: -1},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := cg.Solve(a, b, opts)
			assert.ErrorIs(t, err, cg.ErrBadOption)
		})
	}
}

// TestSolve_OperandValidation covers nil and mismatched operands.
func TestSolve_OperandValidation(t *testing.T) {
	b, err := ndarray.FromSlice(ndarray.Shape{2}, []float64{1, 1})
	require.NoError(t, err)

	_, err = cg.Solve(nil, b, cg.DefaultOptions())
	assert.ErrorIs(t, err, cg.ErrNilOperand)

	a := diagonal(t, 1, 1)
	_, err = cg.Solve(a, nil, cg.DefaultOptions())
	assert.ErrorIs(t, err, ndarray.ErrNilArray)

	// Operator shaped for dimension 3 cannot solve a dimension-2 system.
	wrong := diagonal(t, 1, 1, 1)
	_, err = cg.Solve(wrong, b, cg.DefaultOptions())
	assert.ErrorIs(t, err, linop.ErrShapeMismatch)

	// SolveInto additionally requires matching estimate and rhs shapes.
	x, err := ndarray.New(ndarray.Shape{3})
	require.NoError(t, err)
	_, err = cg.SolveInto(a, b, x, cg.DefaultOptions())
	assert.ErrorIs(t, err, linop.ErrShapeMismatch)
}

// TestSolve_General exercises a non-diagonal self-adjoint system built
// from a symmetric coefficient matrix.
func TestSolve_General(t *testing.T) {
	// A = [[4, 1], [1, 3]] is symmetric positive-definite.
	coefs, err := ndarray.FromSlice(ndarray.Shape{2, 2}, []float64{
		4, 1,
		1, 3,
	})
	require.NoError(t, err)
	a, err := linop.NewGeneralMatrix(coefs, 1)
	require.NoError(t, err)

	// The textbook instance: b = (1, 2), exact solution (1/11, 7/11).
	b, err := ndarray.FromSlice(ndarray.Shape{2}, []float64{1, 2})
	require.NoError(t, err)

	res, err := cg.Solve(a, b, cg.DefaultOptions())
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.0 / 11, 7.0 / 11}, res.X.Data(), 1e-10)
	assert.LessOrEqual(t, res.Iterations, 2)
}

// TestReason_String covers the criterion names.
func TestReason_String(t *testing.T) {
	assert.Equal(t, "absolute tolerance", cg.ReasonAtol.String())
	assert.Equal(t, "relative tolerance", cg.ReasonRtol.String())
	assert.Equal(t, "iteration limit", cg.ReasonIterationLimit.String())
	assert.Equal(t, "unknown", cg.Reason(99).String())
}
