// SPDX-License-Identifier: MIT
// Package ndarray: canonical validators shared across lvlinop.
//
// Purpose:
//   - Provide a single source of truth for common nil/shape checks so
//     kernels and operators stay minimal and uniform.
//   - Return plain sentinel errors (wrapped once with the validator
//     tag) so call sites can rewrap uniformly and callers still match
//     via errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocation-free on the
//     success path.

package ndarray

import "fmt"

// validatorErrorf wraps an underlying sentinel with the validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the array reference is non-nil.
// Returns ErrNilArray when a == nil.
// Complexity: O(1).
func ValidateNotNil(a *Array) error {
	if a == nil {
		return validatorErrorf("ValidateNotNil", ErrNilArray)
	}

	return nil
}

// ValidateSameShape ensures arrays a and b are non-nil and share
// identical extents.
// Errors: ErrNilArray, ErrShapeMismatch.
// Complexity: O(rank).
func ValidateSameShape(a, b *Array) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if !a.shape.Equal(b.shape) {
		return validatorErrorf(
			fmt.Sprintf("ValidateSameShape: %s vs %s", a.shape, b.shape), ErrShapeMismatch)
	}

	return nil
}

// ValidateHasShape ensures a is non-nil and has exactly the wanted
// shape. A nil want skips the extent comparison (shape-agnostic
// callers defer their checks elsewhere).
// Errors: ErrNilArray, ErrShapeMismatch.
// Complexity: O(rank).
func ValidateHasShape(a *Array, want Shape) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if want == nil {
		return nil
	}
	if !a.shape.Equal(want) {
		return validatorErrorf(
			fmt.Sprintf("ValidateHasShape: have %s, want %s", a.shape, want), ErrShapeMismatch)
	}

	return nil
}
