// SPDX-License-Identifier: MIT
// Package linop: the Operator contract, the decoration rewrite, and
// the public apply facades.
//
// Purpose:
//   - Define the one interface every concrete operator satisfies.
//   - Implement decoration as a single tagged wrapper that REWRITES on
//     construction: wrapping a wrapped operator composes the two tags
//     and re-wraps the original base, so decorations never nest.
//   - Provide the accumulate-into-output facades (Apply, ApplyAdd,
//     AllocateResult) that callers actually use.
//
// Determinism & Policy:
//   - Decoration resolution is a pure, terminating rewrite bounded by
//     the group order 4 — never an iterative process.
//   - Construction-time validation is strict and eager; apply-time
//     validation happens on every call (buffers arrive fresh) and
//     always precedes any write.

package linop

import (
	"fmt"

	"github.com/katalvlaran/lvlinop/ndarray"
)

// Operator is a lazily applied linear transform.
//
// Concrete operators must implement the Direct transform of Apply at
// minimum; self-adjoint operators get Adjoint (and InverseAdjoint, when
// invertible) for free via tag collapse, and non-self-adjoint catalog
// operators implement Adjoint explicitly. Operators with no algebraic
// inverse report Invertible() == false and reject inverse tags.
//
// Shape contract: InputShape/OutputShape may return nil, meaning
// "unspecified" — the operator acts on any shape and size checks are
// deferred to apply time (x and y must still agree where the operator
// maps a shape onto itself).
//
// Operators are immutable value objects: constructed once, applied any
// number of times, owning no mutable state beyond captured operands
// which they never mutate. They are therefore safe to share across
// goroutines without synchronization.
type Operator interface {
	// InputShape returns the expected shape of x under Direct.
	InputShape() ndarray.Shape

	// OutputShape returns the expected shape of y under Direct.
	OutputShape() ndarray.Shape

	// SelfAdjoint reports whether Adjoint(op) ≡ Direct(op) by contract.
	SelfAdjoint() bool

	// Invertible reports whether an algebraic inverse is available.
	Invertible() bool

	// Apply computes y ← α·T(op)(x) + β·y in place.
	// It must validate that x and y have exactly the operator's
	// expected shapes under t (ErrShapeMismatch otherwise, before any
	// write), must not read x when α = 0, and must not read the prior
	// contents of y when β = 0.
	Apply(t Transform, alpha float64, x *ndarray.Array, beta float64, y *ndarray.Array) error
}

// ---------- Decoration (tag + base, never nested) ----------

// decorated records which transform of base is meant. tag is never
// Direct (Decorate unwraps that case) and the base is never itself a
// *decorated (Decorate composes tags instead).
type decorated struct {
	tag  Transform
	base Operator
}

// Decorate returns the operator representing t(op), rewriting eagerly:
//
//   - t(t′(B)) collapses to (t∘t′)(B) — decorations never nest;
//   - for a self-adjoint base the adjoint bit is dropped;
//   - a resulting Direct tag unwraps to the base operator itself;
//   - an inverse-bit result on a non-invertible base fails with
//     ErrSingularOperator (eagerly: the invalid decoration is never
//     constructed).
//
// Errors: ErrNilOperator, ErrUnknownTransform, ErrSingularOperator.
// Complexity: O(1).
func Decorate(t Transform, op Operator) (Operator, error) {
	if op == nil {
		return nil, fmt.Errorf("Decorate: %w", ErrNilOperator)
	}
	if !t.Valid() {
		return nil, fmt.Errorf("Decorate: tag %d: %w", t, ErrUnknownTransform)
	}

	// Compose with an existing decoration instead of nesting.
	tag, base := t, op
	if d, ok := op.(*decorated); ok {
		tag = Compose(t, d.tag)
		base = d.base
	}
	// Self-adjoint collapse: Adjoint→Direct, InverseAdjoint→Inverse.
	if base.SelfAdjoint() {
		tag = tag.selfAdjointCollapse()
	}
	// The identity transform needs no wrapper at all.
	if tag == Direct {
		return base, nil
	}
	// Inverse requests are validated here, once, at construction.
	if tag.IsInverse() && !base.Invertible() {
		return nil, fmt.Errorf("Decorate(%s): %w", tag, ErrSingularOperator)
	}

	return &decorated{tag: tag, base: base}, nil
}

// NewAdjoint returns the adjoint of op (rewritten, never nested).
func NewAdjoint(op Operator) (Operator, error) { return Decorate(Adjoint, op) }

// NewInverse returns the inverse of op.
// Errors: ErrSingularOperator when op is not invertible.
func NewInverse(op Operator) (Operator, error) { return Decorate(Inverse, op) }

// NewInverseAdjoint returns the inverse of the adjoint of op.
// Errors: ErrSingularOperator when op is not invertible.
func NewInverseAdjoint(op Operator) (Operator, error) { return Decorate(InverseAdjoint, op) }

// Base returns the undecorated operator underneath op (op itself when
// it carries no decoration).
func Base(op Operator) Operator {
	if d, ok := op.(*decorated); ok {
		return d.base
	}

	return op
}

// TransformOf returns the decoration tag op carries (Direct when none).
func TransformOf(op Operator) Transform {
	if d, ok := op.(*decorated); ok {
		return d.tag
	}

	return Direct
}

// InputShape returns the base input shape, swapped when the tag swaps.
func (d *decorated) InputShape() ndarray.Shape {
	if d.tag.SwapsShapes() {
		return d.base.OutputShape()
	}

	return d.base.InputShape()
}

// OutputShape returns the base output shape, swapped when the tag swaps.
func (d *decorated) OutputShape() ndarray.Shape {
	if d.tag.SwapsShapes() {
		return d.base.InputShape()
	}

	return d.base.OutputShape()
}

// SelfAdjoint delegates to the base: decorating cannot change whether
// direct and adjoint application coincide.
func (d *decorated) SelfAdjoint() bool { return d.base.SelfAdjoint() }

// Invertible delegates to the base (every tag is a group element, so
// invertibility of the decorated operator equals the base's).
func (d *decorated) Invertible() bool { return d.base.Invertible() }

// Apply rewrites t(d) = t(tag(B)) to the single equivalent call
// (t∘tag)(B) on the base operator. One hop, no recursion: the base is
// never decorated.
func (d *decorated) Apply(t Transform, alpha float64, x *ndarray.Array, beta float64, y *ndarray.Array) error {
	if !t.Valid() {
		return fmt.Errorf("Apply(%s): %w", t, ErrUnknownTransform)
	}

	return d.base.Apply(Compose(t, d.tag), alpha, x, beta, y)
}

// ---------- Apply facades (what callers actually use) ----------

// Apply computes op(x) into a freshly allocated result: y ← 1·op(x).
// Errors: ErrNilOperator, ErrShapeMismatch (and whatever op reports).
// Complexity: one AllocateResult plus one apply.
func Apply(op Operator, x *ndarray.Array) (*ndarray.Array, error) {
	if op == nil {
		return nil, fmt.Errorf("Apply: %w", ErrNilOperator)
	}
	y, err := AllocateResult(op, Direct, x, false)
	if err != nil {
		return nil, err
	}
	// β = 0: the fresh buffer is written, never read.
	if err = op.Apply(Direct, 1, x, 0, y); err != nil {
		return nil, err
	}

	return y, nil
}

// ApplyAdd computes y ← α·op(x) + β·y in place, returning the first
// validation or apply error. This is the full accumulate-into-output
// protocol with caller-owned buffers.
func ApplyAdd(alpha float64, op Operator, x *ndarray.Array, beta float64, y *ndarray.Array) error {
	if op == nil {
		return fmt.Errorf("ApplyAdd: %w", ErrNilOperator)
	}

	return op.Apply(Direct, alpha, x, beta, y)
}

// AllocateResult returns an output container sized for t(op) applied
// to x: a fresh zero Array of the operator's output shape under t, or
// x's own shape when the operator is shape-agnostic.
//
// Scratch reuse: when scratch is true AND the output shape coincides
// with x's, the input buffer itself is returned — a performance escape
// hatch the caller explicitly opts into. Aliasing safety is then the
// caller's responsibility (documented precondition, not validated).
//
// Errors: ErrNilOperator, ndarray.ErrNilArray, ErrUnknownTransform,
// ndarray.ErrInvalidShape.
func AllocateResult(op Operator, t Transform, x *ndarray.Array, scratch bool) (*ndarray.Array, error) {
	if op == nil {
		return nil, fmt.Errorf("AllocateResult: %w", ErrNilOperator)
	}
	if !t.Valid() {
		return nil, fmt.Errorf("AllocateResult(%s): %w", t, ErrUnknownTransform)
	}
	if err := ndarray.ValidateNotNil(x); err != nil {
		return nil, fmt.Errorf("AllocateResult: %w", err)
	}

	// Shape-agnostic operators map a shape onto itself.
	out := outputShapeUnder(op, t)
	if out == nil {
		out = x.Shape()
	}
	if scratch && x.Shape().Equal(out) {
		return x, nil // caller opted into aliasing
	}

	return ndarray.New(out)
}

// ---------- Shared apply-time validation ----------

// inputShapeUnder returns op's expected input shape under t.
func inputShapeUnder(op Operator, t Transform) ndarray.Shape {
	if t.SwapsShapes() {
		return op.OutputShape()
	}

	return op.InputShape()
}

// outputShapeUnder returns op's expected output shape under t.
func outputShapeUnder(op Operator, t Transform) ndarray.Shape {
	if t.SwapsShapes() {
		return op.InputShape()
	}

	return op.OutputShape()
}

// validateApply is the canonical apply-time precondition shared by the
// catalog: the tag must be known, x and y must be non-nil and carry
// exactly the operator's expected shapes under t; a shape-agnostic
// operator still requires x and y to agree with each other. Runs before
// any write on every call — buffers arrive fresh each time, so nothing
// is cached.
// Errors: ErrUnknownTransform, ndarray.ErrNilArray, ErrShapeMismatch.
func validateApply(op Operator, t Transform, x, y *ndarray.Array) error {
	if !t.Valid() {
		return fmt.Errorf("Apply(%s): %w", t, ErrUnknownTransform)
	}
	if err := ndarray.ValidateHasShape(x, inputShapeUnder(op, t)); err != nil {
		return fmt.Errorf("Apply(%s): x: %w", t, err)
	}
	if err := ndarray.ValidateHasShape(y, outputShapeUnder(op, t)); err != nil {
		return fmt.Errorf("Apply(%s): y: %w", t, err)
	}
	// Endomorphisms with unspecified shape: operands must still agree.
	if inputShapeUnder(op, t) == nil && outputShapeUnder(op, t) == nil {
		if err := ndarray.ValidateSameShape(x, y); err != nil {
			return fmt.Errorf("Apply(%s): %w", t, err)
		}
	}

	return nil
}
