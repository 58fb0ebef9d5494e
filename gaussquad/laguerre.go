package gaussquad

// laguerreComputer derives Gauss-Laguerre nodes and weights for the
// weight function e^(−x) on [0, ∞). The nodes are the roots of the
// Laguerre polynomial Lₙ; the weights are wᵢ = xᵢ / ((n+1)·Lₙ₊₁(xᵢ))².
// The family is not symmetric, so no mirroring applies.
type laguerreComputer struct{}

func (laguerreComputer) ComputeRule(n int, previous []float64) ([]float64, []float64, error) {
	points, err := findRoots(n, previous, func(x float64) float64 {
		return laguerreRatio(n, x)
	})
	if err != nil {
		return nil, nil, err
	}

	weights := make([]float64, n)
	np1 := float64(n + 1)
	for i, x := range points {
		d := np1 * laguerreValue(n+1, x)
		weights[i] = x / (d * d)
	}

	return points, weights, nil
}

// laguerreRatio returns Lₙ(x)/Lₙ'(x), running the recurrences for the
// value and the derivative side by side:
//
//	(k+1)·Lₖ₊₁  = (2k+1−x)·Lₖ − k·Lₖ₋₁
//	(k+1)·Lₖ₊₁' = (2k+1−x)·Lₖ' − Lₖ − k·Lₖ₋₁'
//
// Tracking the derivative directly keeps the ratio finite at x = 0,
// where the closed form x·Lₙ' = n·(Lₙ − Lₙ₋₁) degenerates to 0/0.
func laguerreRatio(n int, x float64) float64 {
	lm, dm := 1.0, 0.0  // L₀, L₀'
	l, d := 1.0-x, -1.0 // L₁, L₁'
	for k := 1; k < n; k++ {
		kf := float64(k)
		lNext := ((2*kf+1-x)*l - kf*lm) / (kf + 1)
		dNext := ((2*kf+1-x)*d - l - kf*dm) / (kf + 1)
		lm, dm = l, d
		l, d = lNext, dNext
	}
	return l / d
}

// laguerreValue evaluates L_degree at x.
func laguerreValue(degree int, x float64) float64 {
	if degree == 0 {
		return 1
	}
	lm, l := 1.0, 1.0-x
	for k := 1; k < degree; k++ {
		kf := float64(k)
		lNext := ((2*kf+1-x)*l - kf*lm) / (kf + 1)
		lm, l = l, lNext
	}
	return l
}
