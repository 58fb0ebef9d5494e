package gaussquad

// legendreComputer derives Gauss-Legendre nodes and weights. The nodes
// are the roots of the Legendre polynomial Pₙ; the weights follow from
// wᵢ = 2(1−xᵢ²) / (n·(Pₙ₋₁(xᵢ) − xᵢ·Pₙ(xᵢ)))².
type legendreComputer struct{}

func (legendreComputer) ComputeRule(n int, previous []float64) ([]float64, []float64, error) {
	if n == 1 {
		return []float64{0}, []float64{2}, nil
	}

	points, err := findRoots(n, previous, func(x float64) float64 {
		return legendreRatio(n, x)
	})
	if err != nil {
		return nil, nil, err
	}
	enforceSymmetry(points)

	// the family is symmetric, so each weight serves a mirrored pair
	weights := make([]float64, n)
	for i := 0; i <= (n-1)/2; i++ {
		c := points[i]
		pn, pnm1 := legendrePair(n, c)
		d := float64(n) * (pnm1 - c*pn)
		w := 2 * (1 - c*c) / (d * d)
		weights[i] = w
		weights[n-1-i] = w
	}

	return points, weights, nil
}

// legendreRatio returns Pₙ(x)/Pₙ'(x), running the three-term recurrence
// for the value and its derivative simultaneously:
//
//	(k+1)·Pₖ₊₁  = (2k+1)·x·Pₖ − k·Pₖ₋₁
//	(k+1)·Pₖ₊₁' = (2k+1)·(Pₖ + x·Pₖ') − k·Pₖ₋₁'
func legendreRatio(n int, x float64) float64 {
	pm, dm := 1.0, 0.0 // P₀, P₀'
	p, d := x, 1.0     // P₁, P₁'
	for k := 1; k < n; k++ {
		kf := float64(k)
		pNext := ((2*kf+1)*x*p - kf*pm) / (kf + 1)
		dNext := ((2*kf+1)*(p+x*d) - kf*dm) / (kf + 1)
		pm, dm = p, d
		p, d = pNext, dNext
	}
	return p / d
}

// legendrePair returns Pₙ(x) and Pₙ₋₁(x).
func legendrePair(n int, x float64) (pn, pnm1 float64) {
	pm, p := 1.0, x
	for k := 1; k < n; k++ {
		kf := float64(k)
		pNext := ((2*kf+1)*x*p - kf*pm) / (kf + 1)
		pm, p = p, pNext
	}
	return p, pm
}
