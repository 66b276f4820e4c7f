// SPDX-License-Identifier: MIT
// Package linop: the Transform tag algebra.
//
// Purpose:
//   - Represent which of the four transforms of a base operator is
//     meant, as a two-bit enumerated tag carried alongside the base.
//   - Implement composition as a pure function over two tags: the four
//     transforms form a commutative group of order 4 isomorphic to
//     ℤ₂×ℤ₂, so with bit 0 = "adjoint" and bit 1 = "inverse" the whole
//     composition table collapses to a XOR.
//
// Determinism & Policy:
//   - Composition is total and terminating by construction (one XOR);
//     no iterative rewriting is ever needed.

package linop

// Transform bits. Adjoint and Inverse are each involutions, which is
// exactly XOR on the corresponding bit.
const (
	transformAdjointBit Transform = 1 << 0
	transformInverseBit Transform = 1 << 1
)

// Transform identifies which transform of a base operator is meant.
//
// Composition table (∘, Direct is the identity element):
//
//	| ∘         | Direct    | Adjoint   | Inverse   | InvAdjoint |
//	|-----------|-----------|-----------|-----------|------------|
//	| Direct    | Direct    | Adjoint   | Inverse   | InvAdjoint |
//	| Adjoint   | Adjoint   | Direct    | InvAdjoint| Inverse    |
//	| Inverse   | Inverse   | InvAdjoint| Direct    | Adjoint    |
//	| InvAdjoint| InvAdjoint| Inverse   | Adjoint   | Direct     |
type Transform uint8

const (
	// Direct is the identity transform: the operator itself.
	Direct Transform = 0

	// Adjoint is the conjugate-transpose transform.
	Adjoint Transform = transformAdjointBit

	// Inverse is the algebraic inverse transform.
	Inverse Transform = transformInverseBit

	// InverseAdjoint is the inverse of the adjoint (equivalently the
	// adjoint of the inverse; the group is commutative).
	InverseAdjoint Transform = transformAdjointBit | transformInverseBit
)

// transformNames indexes String() by tag value.
var transformNames = [4]string{"Direct", "Adjoint", "Inverse", "InverseAdjoint"}

// Compose returns a∘b under the group table above.
// ℤ₂×ℤ₂ makes composition a XOR of the two-bit tags; the result is
// independent of any wrapped operator's identity.
// Complexity: O(1).
func Compose(a, b Transform) Transform { return a ^ b }

// Valid reports whether t is one of the four defined tags.
// Complexity: O(1).
func (t Transform) Valid() bool { return t <= InverseAdjoint }

// IsAdjoint reports whether the adjoint bit is set.
func (t Transform) IsAdjoint() bool { return t&transformAdjointBit != 0 }

// IsInverse reports whether the inverse bit is set.
func (t Transform) IsInverse() bool { return t&transformInverseBit != 0 }

// SwapsShapes reports whether applying t exchanges the base operator's
// input and output shapes. Adjoint swaps, Inverse swaps, and the two
// swaps cancel for InverseAdjoint — i.e. odd bit parity swaps.
// Complexity: O(1).
func (t Transform) SwapsShapes() bool {
	return ((t>>1)^t)&1 == 1
}

// selfAdjointCollapse drops the adjoint bit: for a self-adjoint base,
// Adjoint ≡ Direct and InverseAdjoint ≡ Inverse, collapsing the group
// to order 2 on {Direct, Inverse}.
// Complexity: O(1).
func (t Transform) selfAdjointCollapse() Transform {
	return t &^ transformAdjointBit
}

// String implements fmt.Stringer; unknown tags render as "Transform(n)".
func (t Transform) String() string {
	if !t.Valid() {
		return "Transform(invalid)"
	}

	return transformNames[t]
}
