// Package vec provides the elementary kernels every operator apply
// ultimately lands on: scaled combination, scaling, filling, dot
// products and norms over flat numeric buffers.
//
// 🚀 What is vec?
//
//	The hot inner loops of lvlinop, generic over float32/float64:
//	  • Combine — y ← α·x + β·y with dedicated multiply-free branches
//	    for α, β ∈ {−1, 0, 1}
//	  • Scale / Fill / Copy — the degenerate combinations, exported
//	    because operators use them directly
//	  • Dot, Norm1, Norm2, NormInf — reductions accumulating in
//	    float64 regardless of the element type
//
// ✨ The coefficient contract (not a mere optimization hint):
//   - α = 0 branches NEVER read x: x may be uninitialized or aliasing
//     garbage and the call still degenerates to a pure scale of y.
//   - β = 0 branches NEVER read the prior contents of y.
//   - Every {−1, 0, 1} branch produces results bit-identical to the
//     generic multiply-add path for those values; the test suite
//     verifies this per element type and shape.
//
// ⚙️ Vendor delegation:
//
//	For []float64 the general-coefficient path and the reductions
//	delegate to gonum (floats.Scale, floats.AddScaled, floats.Dot,
//	floats.Norm). The pure-Go loop remains the mandatory fallback and
//	is the only path for float32: correctness never depends on the
//	vendor routines being reachable.
//
// Complexity: every kernel is a single O(n) pass; reductions are O(n)
// with O(1) extra space.
package vec
