// Package gaussquad builds Gauss quadrature rules — Legendre, Hermite
// and Laguerre — and the integrators that apply them.
//
// 🚀 What is Gauss quadrature?
//
//	An n-point rule ∫ w(x)·f(x) dx ≈ Σᵢ wᵢ·f(xᵢ) whose nodes are the
//	roots of the n-th orthogonal polynomial for the weight w(x).  With
//	only n evaluations it integrates polynomials up to degree 2n−1
//	exactly.  The three classical families:
//	  • Legendre — w(x) = 1 on [−1, 1] (general-purpose)
//	  • Hermite  — w(x) = e^(−x²) on (−∞, ∞) (Gaussian expectations)
//	  • Laguerre — w(x) = e^(−x)  on [0, ∞) (exponential tails)
//
// ✨ Key features:
//   - nodes found by the Aberth method: all roots of the order-n
//     polynomial converge simultaneously, seeded by the order-(n−1) rule
//   - rules memoized per family in a concurrency-safe cache; each order
//     is computed at most once, callers get private copies
//   - exact symmetry: symmetric families return exactly mirrored nodes
//     and an exact zero middle node for odd orders
//   - arbitrary precision: the same algorithms run over math/big
//     through the Field abstraction, narrowed to float64 on request
//   - Kahan-compensated summation in every integrator
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlnum/gaussquad"
//
//	f := gaussquad.NewIntegratorFactory()
//	gl, err := f.LegendreOn(5, 0, 1)   // 5-point rule scaled to [0,1]
//	v := gl.Integrate(func(x float64) float64 { return x * x })
//
// Orders run from 1 to 1000. Errors are sentinels: ErrOrderOutOfRange,
// ErrRootsNoConvergence, ErrLengthMismatch, ErrUnsortedPoints.
package gaussquad
