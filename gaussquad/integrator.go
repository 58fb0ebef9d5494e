package gaussquad

// Integrator applies a fixed quadrature rule: Integrate evaluates
// Σ wᵢ·f(xᵢ) with Kahan-compensated summation.
type Integrator struct {
	points  []float64
	weights []float64
}

// NewIntegrator builds an integrator from explicit points and weights.
// The slices are copied; points must be strictly ascending and match
// the weights in length.
func NewIntegrator(points, weights []float64) (*Integrator, error) {
	if len(points) != len(weights) {
		return nil, ErrLengthMismatch
	}
	for i := 1; i < len(points); i++ {
		if points[i] <= points[i-1] {
			return nil, ErrUnsortedPoints
		}
	}
	return &Integrator{points: clone(points), weights: clone(weights)}, nil
}

// Order returns the number of points of the rule.
func (g *Integrator) Order() int { return len(g.points) }

// Points returns a copy of the integration points.
func (g *Integrator) Points() []float64 { return clone(g.points) }

// Weights returns a copy of the integration weights.
func (g *Integrator) Weights() []float64 { return clone(g.weights) }

// Integrate returns the weighted sum of f over the rule's points.
func (g *Integrator) Integrate(f func(float64) float64) float64 {
	var sum, comp float64
	for i, x := range g.points {
		y := g.weights[i]*f(x) - comp
		t := sum + y
		comp = (t - sum) - y
		sum = t
	}
	return sum
}

// SymmetricIntegrator applies a rule whose points and weights are
// mirrored around zero. Integrate pairs f(x) with f(−x) under a single
// weight, halving the number of weight multiplications and keeping the
// sum of an even integrand exactly symmetric.
type SymmetricIntegrator struct {
	Integrator
}

// NewSymmetricIntegrator builds a symmetric integrator; the rule must
// satisfy the same validity conditions as NewIntegrator.
func NewSymmetricIntegrator(points, weights []float64) (*SymmetricIntegrator, error) {
	inner, err := NewIntegrator(points, weights)
	if err != nil {
		return nil, err
	}
	return &SymmetricIntegrator{Integrator: *inner}, nil
}

// Integrate returns the weighted sum of f over the rule's points,
// exploiting the symmetry of the rule.
func (g *SymmetricIntegrator) Integrate(f func(float64) float64) float64 {
	n := len(g.points)
	if n == 1 {
		return g.weights[0] * f(g.points[0])
	}

	var sum, comp float64
	for i := 0; i < n/2; i++ {
		x := g.points[i]
		y := g.weights[i]*(f(x)+f(-x)) - comp
		t := sum + y
		comp = (t - sum) - y
		sum = t
	}
	if n%2 != 0 {
		y := g.weights[n/2]*f(0) - comp
		sum += y
	}
	return sum
}

// transform rescales a rule for [−1, 1] onto [a, b], in place.
func transform(points, weights []float64, a, b float64) ([]float64, []float64) {
	scale := 0.5 * (b - a)
	shift := a + scale
	for i := range points {
		points[i] = points[i]*scale + shift
		weights[i] *= scale
	}
	return points, weights
}
