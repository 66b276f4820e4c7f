// Package lvlinop is your in-memory toolkit for building and applying
// linear operators lazily — composed, decorated, and solved without ever
// materializing a matrix you don't need.
//
// 🚀 What is lvlinop?
//
//	A modern, deterministic library that brings together:
//		• N-D arrays: flat, row-major, cache-friendly numeric containers
//		• Vector kernels: combine (y ← α·x + β·y), dot, norms — with
//		  multiply-free fast branches for the coefficients {−1, 0, 1}
//		• Operator algebra: Direct / Adjoint / Inverse / InverseAdjoint
//		  decorations that compose by rule and never nest
//		• Operator catalog: identity, scalings, rank-one, dense matrices,
//		  cropping & zero-padding — each a minimal apply implementation
//		• Conjugate gradient: an operator-agnostic iterative solver
//
// ✨ Why choose lvlinop?
//
//   - Lazy by design – operators are immutable values; apply is the only cost
//   - Rock-solid guarantees – eager validation, sentinel errors, in-code docs
//   - Closed algebra – wrapping a wrapped operator rewrites, never stacks
//   - Vendor-accelerated – gonum fast paths with a mandatory pure-Go fallback
//
// Under the hood, everything is organized under four subpackages:
//
//	ndarray/ — Shape descriptors and flat N-D float64 arrays
//	vec/     — elementary kernels over flat numeric buffers
//	linop/   — the decoration algebra, apply protocol & operator catalog
//	cg/      — conjugate-gradient solver consuming only the apply protocol
//
// Quick example:
//
//	W, _ := linop.NewDiagonalScaling(weights) // self-adjoint
//	Wi, _ := linop.NewInverse(W)              // rewrites, no nesting
//	y, _ := linop.Apply(Wi, x)                // y = W⁻¹·x
//
// Every apply call follows the accumulate-into-output convention
// y ← α·op(x) + β·y, so chaining operators never allocates more than
// the caller asks for.
//
//	go get github.com/katalvlaran/lvlinop
package lvlinop
