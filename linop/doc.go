// Package linop implements lazy linear operators: immutable values that
// know how to apply a linear transform to an ndarray without ever
// materializing a matrix, composed through a closed decoration algebra.
//
// 🚀 What is linop?
//
//	Three tightly-coupled pieces:
//	  • The decoration algebra — four transform tags (Direct, Adjoint,
//	    Inverse, InverseAdjoint) forming a commutative group of order 4
//	    (ℤ₂×ℤ₂, Direct is the identity). Wrapping an already-wrapped
//	    operator REWRITES to a single decoration; nesting is impossible
//	    by construction.
//	  • The apply protocol — every operator satisfies
//	    y ← α·T(op)(x) + β·y via Apply(t, α, x, β, y), validating both
//	    operand shapes on every call before any write.
//	  • The catalog — identity, uniform & diagonal scaling, rank-one,
//	    general dense contraction, half-Hessian container, and the
//	    cropping / zero-padding adjoint pair.
//
// ✨ Algebra cheat sheet:
//
//	Adjoint(Adjoint(A))  == A          (involution)
//	Inverse(Inverse(A))  == A          (involution)
//	Adjoint(Inverse(A))  == InverseAdjoint(A)
//	Adjoint(A) == A                    (self-adjoint A)
//
// ⚙️ Usage:
//
//	A, _ := linop.NewGeneralMatrix(coefs, 1) // dense m×n operator
//	At, _ := linop.NewAdjoint(A)             // lazily transposed
//	y, _ := linop.Apply(At, u)               // y = Aᵀ·u
//	_ = linop.ApplyAdd(2, A, x, -1, y)       // y ← 2·A·x − y
//
// Error policy: construction is strict and eager (invalid operators are
// never constructible — ErrInvalidShape, ErrSingularOperator); apply
// revalidates the supplied buffers on every call (ErrShapeMismatch) and
// never writes before validation passes.
package linop
