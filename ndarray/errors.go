// SPDX-License-Identifier: MIT
// Package ndarray: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// ndarray package. All functions MUST return these sentinels and tests
// MUST check them via errors.Is. No function panics on user-triggered
// error conditions; panics are reserved for programmer errors in
// private helpers (if any).

package ndarray

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "ndarray: ..." for consistency and to
// allow easy grepping across logs. DO NOT %w wrap these sentinels when
// returning directly; if context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary — callers will
// still use errors.Is to match.

var (
	// ErrInvalidShape is returned when a requested shape is malformed:
	// zero rank where a positive rank is required, a non-positive
	// extent, or a rank mismatch between related shapes/offsets.
	// Constructors must validate before any allocation.
	ErrInvalidShape = errors.New("ndarray: invalid shape")

	// ErrShapeMismatch indicates incompatible shapes between operands,
	// e.g. combining two arrays whose extents differ.
	ErrShapeMismatch = errors.New("ndarray: shape mismatch")

	// ErrOutOfRange indicates that a multi-index component is outside
	// the valid [0, extent) range, or has the wrong number of axes.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("ndarray: index out of range")

	// ErrNilArray indicates that a nil *Array (receiver or argument)
	// was used where a concrete array is required.
	ErrNilArray = errors.New("ndarray: nil array")

	// ErrLengthMismatch indicates that a flat data slice does not match
	// the element count implied by the target shape.
	ErrLengthMismatch = errors.New("ndarray: data length mismatch")
)
