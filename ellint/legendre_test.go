package ellint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestBigKKnownValues(t *testing.T) {
	assert.InDelta(t, 0.5*math.Pi, BigK(0), 1.0e-15)
	// A&S table 17.1, m = 0.5
	assert.InDelta(t, 1.8540746773013719, BigK(0.5), 1.0e-14)
	assert.True(t, BigK(0.9999999) > 8)
}

func TestBigKSmallParameter(t *testing.T) {
	// the series switch must join the Carlson reduction smoothly
	for _, m := range []float64{1.0e-12, 1.0e-10, 1.0e-9, 2.0e-8, 1.0e-6} {
		direct := 0.5 * math.Pi * (1 + m*(0.25+m*9.0/64))
		assert.True(t, scalar.EqualWithinAbsOrRel(direct, BigK(m), 5.0e-15, 5.0e-15), "m=%g", m)
	}
}

func TestBigKPrimeComplement(t *testing.T) {
	for _, m := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		assert.True(t, scalar.EqualWithinAbsOrRel(BigK(1-m), BigKPrime(m), 1.0e-14, 1.0e-14))
	}
}

func TestBigEKnownValues(t *testing.T) {
	assert.InDelta(t, 0.5*math.Pi, BigE(0), 1.0e-15)
	assert.InDelta(t, 1.0, BigE(1), 1.0e-14)
	// A&S table 17.1, m = 0.5
	assert.InDelta(t, 1.3506438810476755, BigE(0.5), 1.0e-14)
}

func TestLegendreRelation(t *testing.T) {
	// E K' + E' K - K K' = pi/2 for every m in (0, 1)
	for m := 0.05; m < 1; m += 0.05 {
		k := BigK(m)
		kp := BigKPrime(m)
		e := BigE(m)
		ep := BigE(1 - m)
		assert.InDelta(t, 0.5*math.Pi, e*kp+ep*k-k*kp, 1.0e-13, "m=%g", m)
	}
}

func TestBigFReducesToBigK(t *testing.T) {
	for _, m := range []float64{0.1, 0.4, 0.8} {
		assert.True(t, scalar.EqualWithinAbsOrRel(BigK(m), BigF(0.5*math.Pi, m), 1.0e-13, 1.0e-13))
	}
}

func TestBigFZeroParameterIsIdentity(t *testing.T) {
	// F(phi|0) = phi
	for phi := -1.5; phi <= 1.5; phi += 0.1 {
		assert.InDelta(t, phi, BigF(phi, 0), 1.0e-14)
	}
}

func TestBigE2ReducesToBigE(t *testing.T) {
	for _, m := range []float64{0.1, 0.4, 0.8} {
		assert.True(t, scalar.EqualWithinAbsOrRel(BigE(m), BigE2(0.5*math.Pi, m), 1.0e-13, 1.0e-13))
	}
}

func TestBigE2ZeroParameterIsIdentity(t *testing.T) {
	// E(phi|0) = phi
	for phi := -1.5; phi <= 1.5; phi += 0.1 {
		assert.InDelta(t, phi, BigE2(phi, 0), 1.0e-14)
	}
}

func TestBigFOddInPhi(t *testing.T) {
	for phi := 0.1; phi <= 1.5; phi += 0.2 {
		assert.InDelta(t, -BigF(phi, 0.7), BigF(-phi, 0.7), 1.0e-15)
		assert.InDelta(t, -BigE2(phi, 0.7), BigE2(-phi, 0.7), 1.0e-15)
	}
}

func TestNome(t *testing.T) {
	// for m = 1/2 the quarter periods coincide, so q = exp(-pi)
	assert.InDelta(t, math.Exp(-math.Pi), Nome(0.5), 1.0e-15)
	assert.InDelta(t, 0.0, Nome(0), 1.0e-30)
	// series and exponential branches must agree where they meet
	m := 2.0e-16
	assert.True(t, scalar.EqualWithinAbsOrRel(m/16, Nome(m), 1.0e-12, 1.0e-12))
}
