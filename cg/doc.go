// Package cg solves A·x = b by the conjugate-gradient method for a
// self-adjoint, positive-definite linear operator A — consuming ONLY
// the linop apply protocol, so A may be any catalog operator or any
// decorated composition of them.
//
// 🚀 What is cg?
//
//	The standard iteration: maintain the residual r, the search
//	direction p, and the estimate x; each step applies A once, takes
//	the step (r·r)/(p·A·p) along p, and re-conjugates the direction
//	against the previous residual (Gram–Schmidt).
//
// ✨ Termination (whichever triggers first, reported in Result.Reason):
//   - residual norm ≤ Atol                       → ReasonAtol
//   - residual norm ≤ Rtol·‖b‖                   → ReasonRtol
//   - MaxIter iterations completed               → ReasonIterationLimit
//
// Failure is distinct from slow termination: a non-positive curvature
// p·A·p ≤ 0 (operator not positive-definite, or numerical breakdown)
// fails with ErrNonConvergent rather than dividing by a non-positive
// value.
//
// ⚙️ Usage:
//
//	D, _ := linop.NewDiagonalScaling(weights) // SPD diagonal operator
//	res, err := cg.Solve(D, b, cg.DefaultOptions())
//	if err != nil {
//	  // handle ErrNonConvergent / validation errors
//	}
//	fmt.Println(res.Iterations, res.Reason, res.Residual)
//
// Contract: A must be self-adjoint and positive-definite; this is a
// documented precondition, not structurally enforced (a symmetric
// dense operator carries no self-adjoint flag). The solver owns its
// working vectors for the duration of one call only.
package cg
