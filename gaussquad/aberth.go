package gaussquad

import (
	"math"
	"sort"
)

// maxAberthIterations caps the simultaneous root refinement. Seeded by
// the interlacing roots of the previous order, the method converges in
// a few iterations; the cap only trips on pathological evaluators.
const maxAberthIterations = 1000

// findRoots locates the n real roots of an orthogonal polynomial with
// the Aberth method. ratio evaluates P(x)/P'(x); previous holds the
// roots of the degree n-1 polynomial of the same family, whose
// interlacing property provides the initial guesses.
//
// All roots are refined together: each offset is the Newton step
// corrected by the repulsion of the other current root estimates, so
// two estimates never collapse onto the same root. Iteration stops when
// the largest offset falls below the largest ULP among the roots.
// The returned roots are sorted in ascending order.
func findRoots(n int, previous []float64, ratio func(float64) float64) ([]float64, error) {
	roots := make([]float64, n)
	switch {
	case n == 1:
		roots[0] = 0
	case n == 2:
		roots[0], roots[1] = -1, 1
	default:
		// interlacing guesses: endpoints of the previous rule plus the
		// midpoints of its consecutive roots
		roots[0] = previous[0]
		for i := 1; i < n-1; i++ {
			roots[i] = 0.5 * (previous[i-1] + previous[i])
		}
		roots[n-1] = previous[n-2]
	}

	ratios := make([]float64, n)
	for iter := 0; iter < maxAberthIterations; iter++ {
		for i, r := range roots {
			ratios[i] = ratio(r)
		}

		maxOffset := 0.0
		for i := range roots {
			repulsion := 0.0
			for j := range roots {
				if j != i {
					repulsion += 1 / (roots[i] - roots[j])
				}
			}
			offset := ratios[i] / (1 - ratios[i]*repulsion)
			if math.IsInf(ratios[i], 0) {
				// an initial guess sitting on a root of P' makes the
				// Newton ratio blow up; in the limit the update is
				// driven by the repulsion term alone
				offset = -1 / repulsion
			}
			// a NaN abs must poison maxOffset, not slip past the
			// comparison, so the loop cannot declare convergence on
			// non-finite roots
			if abs := math.Abs(offset); math.IsNaN(abs) || abs > maxOffset {
				maxOffset = abs
			}
			roots[i] -= offset
		}

		tol := 0.0
		for _, r := range roots {
			if u := ulp(r); u > tol {
				tol = u
			}
		}
		if maxOffset <= tol {
			sort.Float64s(roots)
			return roots, nil
		}
	}

	return nil, ErrRootsNoConvergence
}

// enforceSymmetry makes the roots of a symmetric family exactly
// mirrored around zero, averaging each pair and pinning the middle
// root of odd orders to exactly 0.
func enforceSymmetry(roots []float64) {
	n := len(roots)
	for i := 0; i < n/2; i++ {
		idx := n - 1 - i
		c := 0.5 * (roots[i] - roots[idx])
		roots[i], roots[idx] = c, -c
	}
	if n%2 != 0 {
		roots[n/2] = 0
	}
}

// ulp returns the distance from |x| to the next representable float64.
func ulp(x float64) float64 {
	ax := math.Abs(x)
	return math.Nextafter(ax, math.Inf(1)) - ax
}
