package ellint

import (
	"math"

	"github.com/katalvlaran/lvlnum/carlson"
)

// Series switch thresholds. Below these the direct Carlson reduction
// loses accuracy to cancellation, while the leading terms of the A&S
// expansions are already exact to double precision.
const (
	nomeSeriesThreshold = 1.0e-16
	bigKSeriesThreshold = 1.0e-8
)

// Nome returns the elliptic nome q(m) = exp(-π K(1-m)/K(m)).
//
// For very small m the ratio of quarter periods underflows the useful
// digits, so the expansion q = m/16·(1 + m/2) (A&S 17.3.21, truncated)
// is used instead.
func Nome(m float64) float64 {
	if math.Abs(m) < nomeSeriesThreshold {
		m16 := m * 0.0625
		return m16 * (1 + 8*m16)
	}
	return math.Exp(-math.Pi * BigKPrime(m) / BigK(m))
}

// BigK returns the complete elliptic integral of the first kind,
// K(m) = ∫₀^{π/2} dθ/√(1-m·sin²θ) = RF(0, 1-m, 1).
//
// Valid for m < 1; K diverges as m → 1.
func BigK(m float64) float64 {
	if math.Abs(m) < bigKSeriesThreshold {
		// A&S 17.3.11 truncated
		return (1 + 0.25*m) * 0.5 * math.Pi
	}
	return carlson.RF(0, 1-m, 1)
}

// BigKPrime returns the complementary quarter period
// K'(m) = K(1-m) = RF(0, m, 1).
func BigKPrime(m float64) float64 {
	return carlson.RF(0, m, 1)
}

// BigE returns the complete elliptic integral of the second kind,
// E(m) = ∫₀^{π/2} √(1-m·sin²θ) dθ = 2·RG(0, 1-m, 1).
func BigE(m float64) float64 {
	return 2 * carlson.RG(0, 1-m, 1)
}

// BigF returns the incomplete elliptic integral of the first kind,
// F(φ|m) = sinφ·RF(cos²φ, 1-m·sin²φ, 1).
//
// The reduction holds for |φ| ≤ π/2.
func BigF(phi, m float64) float64 {
	s, c := math.Sincos(phi)
	return s * carlson.RF(c*c, 1-m*s*s, 1)
}

// BigE2 returns the incomplete elliptic integral of the second kind,
// E(φ|m) = sinφ·RF(cos²φ, 1-m·sin²φ, 1) - m/3·sin³φ·RD(cos²φ, 1-m·sin²φ, 1).
//
// The reduction holds for |φ| ≤ π/2.
func BigE2(phi, m float64) float64 {
	s, c := math.Sincos(phi)
	c2 := c * c
	s2 := s * s
	oneMinus := 1 - m*s2
	return s*carlson.RF(c2, oneMinus, 1) - m*s2*s*carlson.RD(c2, oneMinus, 1)/3
}
