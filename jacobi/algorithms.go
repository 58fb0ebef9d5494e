package jacobi

import (
	"math"

	"github.com/katalvlaran/lvlnum/ellint"
)

// nearZero evaluates the trio by the circular series A&S 16.13, valid
// for very small positive m.
type nearZero struct {
	m float64
}

func (a nearZero) valuesN(u float64) (CopolarN, error) {
	sin, cos := math.Sincos(u)
	factor := 0.25 * a.m * (u - sin*cos)
	return CopolarN{
		Sn: sin - factor*cos,
		Cn: cos + factor*sin,
		Dn: 1 - 0.5*a.m*sin*sin,
	}, nil
}

// nearOne evaluates the trio by the hyperbolic series A&S 16.15, valid
// for m within one part in 10⁹ of 1; m1 is the complementary parameter.
type nearOne struct {
	m1 float64
}

func (a nearOne) valuesN(u float64) (CopolarN, error) {
	s := math.Sinh(u)
	c := math.Cosh(u)
	sech := 1 / c
	t := s * sech
	factor := 0.25 * a.m1 * (s*c - u) * sech
	return CopolarN{
		Sn: t + factor*sech,
		Cn: sech - factor*t,
		Dn: sech + factor*t,
	}, nil
}

// negativeParameter maps m < 0 onto the complementary parameter
// -m/(1-m) ∈ (0, 1) using the A&S 16.10 transform; the delegate's d
// trio rescales back to the requested trio.
type negativeParameter struct {
	alg         algorithm
	inputScale  float64
	outputScale float64
}

func newNegativeParameter(m float64) (algorithm, error) {
	omM := 1 - m
	alg, err := selectAlgorithm(-m / omM)
	if err != nil {
		return nil, err
	}
	scale := math.Sqrt(omM)
	return negativeParameter{alg: alg, inputScale: scale, outputScale: 1 / scale}, nil
}

func (a negativeParameter) valuesN(u float64) (CopolarN, error) {
	n, err := a.alg.valuesN(u * a.inputScale)
	if err != nil {
		return CopolarN{}, err
	}
	d := copolarDFromN(n)
	return CopolarN{Sn: a.outputScale * d.Sd, Cn: d.Cd, Dn: d.Nd}, nil
}

// bigParameter maps m > 1 onto the reciprocal parameter 1/m ∈ (0, 1)
// using the A&S 16.11 transform; cn and dn swap on the way back.
type bigParameter struct {
	alg         algorithm
	inputScale  float64
	outputScale float64
}

func newBigParameter(m float64) (algorithm, error) {
	alg, err := selectAlgorithm(1 / m)
	if err != nil {
		return nil, err
	}
	scale := math.Sqrt(m)
	return bigParameter{alg: alg, inputScale: scale, outputScale: 1 / scale}, nil
}

func (a bigParameter) valuesN(u float64) (CopolarN, error) {
	n, err := a.alg.valuesN(u * a.inputScale)
	if err != nil {
		return CopolarN{}, err
	}
	return CopolarN{Sn: a.outputScale * n.Sn, Cn: n.Dn, Dn: n.Cn}, nil
}

// bounded evaluates the trio through the Jacobi theta functions at the
// nome q(m) (DLMF 22.2.4-22.2.6); this covers the generic parameter
// range away from 0 and 1.
type bounded struct {
	theta   ThetaEvaluator
	t02     float64 // θ₂(0)
	t03     float64 // θ₃(0)
	t04     float64 // θ₄(0)
	scaling float64 // π / (2K(m))
}

func newBounded(m float64) (algorithm, error) {
	theta := NewThetaEvaluator(ellint.Nome(m))
	t0, err := theta.Values(0)
	if err != nil {
		return nil, err
	}
	return bounded{
		theta:   theta,
		t02:     t0.T2,
		t03:     t0.T3,
		t04:     t0.T4,
		scaling: 0.5 * math.Pi / ellint.BigK(m),
	}, nil
}

func (a bounded) valuesN(u float64) (CopolarN, error) {
	t, err := a.theta.Values(u * a.scaling)
	if err != nil {
		return CopolarN{}, err
	}
	return CopolarN{
		Sn: (a.t03 * t.T1) / (a.t02 * t.T4),
		Cn: (a.t04 * t.T2) / (a.t02 * t.T4),
		Dn: (a.t04 * t.T3) / (a.t03 * t.T4),
	}, nil
}
