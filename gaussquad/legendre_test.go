package gaussquad

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

func legendreRule(t *testing.T, n int) ([]float64, []float64) {
	t.Helper()
	pts, wts, err := NewLegendreRuleFactory().Rule(n)
	require.NoError(t, err)
	return pts, wts
}

func TestLegendreKnownRules(t *testing.T) {
	pts, wts := legendreRule(t, 1)
	assert.Equal(t, []float64{0}, pts)
	assert.Equal(t, []float64{2}, wts)

	pts, wts = legendreRule(t, 2)
	c := 1 / math.Sqrt(3)
	assert.InDelta(t, -c, pts[0], 1.0e-15)
	assert.InDelta(t, c, pts[1], 1.0e-15)
	assert.InDelta(t, 1, wts[0], 1.0e-15)
	assert.InDelta(t, 1, wts[1], 1.0e-15)

	pts, wts = legendreRule(t, 3)
	s := math.Sqrt(0.6)
	assert.InDelta(t, -s, pts[0], 1.0e-15)
	assert.Equal(t, 0.0, pts[1])
	assert.InDelta(t, s, pts[2], 1.0e-15)
	assert.InDelta(t, 5.0/9, wts[0], 1.0e-15)
	assert.InDelta(t, 8.0/9, wts[1], 1.0e-15)
	assert.InDelta(t, 5.0/9, wts[2], 1.0e-15)

	pts, wts = legendreRule(t, 5)
	assert.InDelta(t, -0.9061798459386640, pts[0], 1.0e-14)
	assert.InDelta(t, -0.5384693101056831, pts[1], 1.0e-14)
	assert.Equal(t, 0.0, pts[2])
	assert.InDelta(t, 0.2369268850561891, wts[0], 1.0e-14)
	assert.InDelta(t, 0.4786286704993665, wts[1], 1.0e-14)
	assert.InDelta(t, 0.5688888888888889, wts[2], 1.0e-14)
}

func TestLegendreRuleInvariants(t *testing.T) {
	for n := 1; n <= 50; n++ {
		pts, wts := legendreRule(t, n)

		// strictly ascending points inside (-1, 1)
		for i := range pts {
			assert.Greater(t, pts[i], -1.0)
			assert.Less(t, pts[i], 1.0)
			if i > 0 {
				assert.Greater(t, pts[i], pts[i-1])
			}
		}

		// exact mirror symmetry and positive weights
		for i := range pts {
			assert.Equal(t, pts[i], -pts[n-1-i], "order %d, point %d", n, i)
			assert.Equal(t, wts[i], wts[n-1-i], "order %d, weight %d", n, i)
			assert.Positive(t, wts[i])
		}
		if n%2 != 0 {
			assert.Equal(t, 0.0, pts[n/2])
		}

		// weights sum to the interval length
		sum := 0.0
		for _, w := range wts {
			sum += w
		}
		assert.InDelta(t, 2.0, sum, 5.0e-14, "order %d", n)
	}
}

func TestLegendrePolynomialExactness(t *testing.T) {
	// an n-point rule integrates monomials up to degree 2n-1 exactly
	factory := NewIntegratorFactory()
	for n := 1; n <= 10; n++ {
		gl, err := factory.Legendre(n)
		require.NoError(t, err)
		for degree := 0; degree <= 2*n-1; degree++ {
			d := degree
			got := gl.Integrate(func(x float64) float64 { return math.Pow(x, float64(d)) })
			want := 0.0
			if d%2 == 0 {
				want = 2 / float64(d+1)
			}
			assert.True(t, scalar.EqualWithinAbs(want, got, 5.0e-14),
				"order %d, degree %d: got %g want %g", n, d, got, want)
		}
	}
}

func TestLegendreOnInterval(t *testing.T) {
	factory := NewIntegratorFactory()
	gl, err := factory.LegendreOn(5, 0, 1)
	require.NoError(t, err)

	// ∫₀¹ x² dx = 1/3
	got := gl.Integrate(func(x float64) float64 { return x * x })
	assert.InDelta(t, 1.0/3, got, 1.0e-15)

	// ∫₀¹ eˣ dx = e - 1 to rule accuracy
	got = gl.Integrate(math.Exp)
	assert.InDelta(t, math.E-1, got, 1.0e-12)
}

func TestLegendreNonPolynomialConvergence(t *testing.T) {
	// the error of ∫₋₁¹ 1/(1+x²) dx must fall fast with the order; the
	// integrand's poles at ±i bound the geometric rate to (1+√2)^(-2n),
	// about 1.5e-12 at n = 16
	exact := 2 * math.Atan(1)
	factory := NewIntegratorFactory()
	prevErr := math.Inf(1)
	for _, n := range []int{2, 4, 8, 16} {
		gl, err := factory.Legendre(n)
		require.NoError(t, err)
		got := gl.Integrate(func(x float64) float64 { return 1 / (1 + x*x) })
		e := math.Abs(got - exact)
		assert.Less(t, e, prevErr)
		prevErr = e
	}
	assert.Less(t, prevErr, 5.0e-12)
}
