package gaussquad

import "math"

var (
	sqrtPi = math.Sqrt(math.Pi)

	// orthonormal Hermite seeds: H̃₀ = π^(−1/4), H̃₁ = √2·x·π^(−1/4)
	hermiteH0 = 1 / math.Sqrt(sqrtPi)
	hermiteH1 = math.Sqrt2 / math.Sqrt(sqrtPi)
)

// hermiteComputer derives Gauss-Hermite nodes and weights for the
// weight function e^(−x²). It works with the orthonormal Hermite
// polynomials H̃ₙ, whose recurrence
//
//	H̃ₖ₊₁ = x·√(2/(k+1))·H̃ₖ − √(k/(k+1))·H̃ₖ₋₁
//
// keeps values in floating-point range for all supported orders, where
// the classical Hₙ would overflow near n = 150.
type hermiteComputer struct{}

func (hermiteComputer) ComputeRule(n int, previous []float64) ([]float64, []float64, error) {
	if n == 1 {
		return []float64{0}, []float64{sqrtPi}, nil
	}

	points, err := findRoots(n, previous, func(x float64) float64 {
		return hermiteRatio(n, x)
	})
	if err != nil {
		return nil, nil, err
	}
	enforceSymmetry(points)

	// wᵢ = 2/dᵢ² with dᵢ = √(2n)·H̃ₙ₋₁(xᵢ), mirrored across zero
	weights := make([]float64, n)
	sqrtTwoN := math.Sqrt(2 * float64(n))
	for i := 0; i < n/2; i++ {
		d := sqrtTwoN * hermiteValue(n-1, points[i])
		w := 2 / (d * d)
		weights[i] = w
		weights[n-1-i] = w
	}
	if n%2 != 0 {
		// H̃ₙ₋₁(0) in closed form: only its even-degree ancestors
		// contribute at the origin
		hmz := hermiteH0
		for j := 1; j < n; j += 2 {
			hmz = -hmz * math.Sqrt(float64(j)/float64(j+1))
		}
		d := sqrtTwoN * hmz
		weights[n/2] = 2 / (d * d)
	}

	return points, weights, nil
}

// hermiteRatio returns H̃ₙ(x)/H̃ₙ'(x) using H̃ₙ' = √(2n)·H̃ₙ₋₁.
func hermiteRatio(n int, x float64) float64 {
	hm := hermiteH0
	h := hermiteH1 * x
	for j := 1; j < n; j++ {
		jp1 := float64(j + 1)
		hNext := x*math.Sqrt(2/jp1)*h - math.Sqrt(float64(j)/jp1)*hm
		hm, h = h, hNext
	}
	return h / (math.Sqrt(2*float64(n)) * hm)
}

// hermiteValue evaluates the orthonormal H̃_degree at x.
func hermiteValue(degree int, x float64) float64 {
	if degree == 0 {
		return hermiteH0
	}
	hm := hermiteH0
	h := hermiteH1 * x
	for j := 1; j < degree; j++ {
		jp1 := float64(j + 1)
		hNext := x*math.Sqrt(2/jp1)*h - math.Sqrt(float64(j)/jp1)*hm
		hm, h = h, hNext
	}
	return h
}
