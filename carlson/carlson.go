package carlson

import (
	"math"
	"math/cmplx"
)

// RF — Carlson elliptic integral of the first kind
//
// Description:
//
//	RF(x,y,z) = ½ ∫₀^∞ dt / √((t+x)(t+y)(t+z))
//
//	RF is symmetric in its three variables and reduces every incomplete
//	elliptic integral of the first kind: F(φ|m) = sinφ·RF(cos²φ, 1−m·sin²φ, 1).
//
// Domain:
//
//	x, y, z ≥ 0 with at most one of them zero; returns NaN for negative
//	arguments (use RFComplex for the full complex plane) and +Inf-scale
//	values when two variables vanish (the integral diverges there).
func RF(x, y, z float64) float64 {
	if x < 0 || y < 0 || z < 0 {
		return math.NaN()
	}
	return real(rfDup(complex(x, 0), complex(y, 0), complex(z, 0)))
}

// RFComplex computes RF for complex variables.
func RFComplex(x, y, z complex128) complex128 {
	return rfDup(x, y, z)
}

// RC — degenerate case RC(x,y) = RF(x,y,y)
//
// For real y < 0 the integral is defined by its Cauchy principal value,
// computed through the branch-cut transform
// RC(x,y) = √(x/(x−y))·RC(x−y, −y).
//
// Domain: x ≥ 0, y ≠ 0; returns NaN otherwise.
func RC(x, y float64) float64 {
	if x < 0 || y == 0 {
		return math.NaN()
	}
	if y < 0 {
		xMy := x - y
		return math.Sqrt(x/xMy) * real(rcDup(complex(xMy, 0), complex(-y, 0)))
	}
	return real(rcDup(complex(x, 0), complex(y, 0)))
}

// RCComplex computes RC for complex variables, applying the Cauchy
// principal value transform when y lies on the negative real axis.
func RCComplex(x, y complex128) complex128 {
	if imag(y) == 0 && real(y) < 0 {
		xMy := x - y
		return cmplx.Sqrt(x/xMy) * rcDup(xMy, -y)
	}
	return rcDup(x, y)
}

// RJ — Carlson elliptic integral of the third kind
//
//	RJ(x,y,z,p) = 3/2 ∫₀^∞ dt / ((t+p)√((t+x)(t+y)(t+z)))
//
// Domain: x, y, z ≥ 0 with at most one zero, p > 0; returns NaN
// otherwise (use RJComplex for negative p).
func RJ(x, y, z, p float64) float64 {
	if x < 0 || y < 0 || z < 0 || p <= 0 {
		return math.NaN()
	}
	cx, cy, cz, cp := complex(x, 0), complex(y, 0), complex(z, 0), complex(p, 0)
	delta := (cp - cx) * (cp - cy) * (cp - cz)
	return real(rjDup(cx, cy, cz, cp, delta))
}

// RJComplex computes RJ for complex variables.
func RJComplex(x, y, z, p complex128) complex128 {
	delta := (p - x) * (p - y) * (p - z)
	return rjDup(x, y, z, p, delta)
}

// RD — degenerate case RD(x,y,z) = RJ(x,y,z,z)
//
// Domain: x, y ≥ 0 with at most one zero, z > 0; returns NaN otherwise.
func RD(x, y, z float64) float64 {
	if x < 0 || y < 0 || z <= 0 {
		return math.NaN()
	}
	return real(rdDup(complex(x, 0), complex(y, 0), complex(z, 0)))
}

// RDComplex computes RD for complex variables.
func RDComplex(x, y, z complex128) complex128 {
	return rdDup(x, y, z)
}

// RG — Carlson elliptic integral of the second kind
//
//	RG(x,y,z) = ¼ ∫₀^∞ t/s(t)·(x/(t+x) + y/(t+y) + z/(t+z)) dt
//
// RG stays finite even when two variables vanish; it reduces the
// complete elliptic integral of the second kind: E(m) = 2·RG(0, 1−m, 1).
//
// Domain: x, y, z ≥ 0; returns NaN for negative arguments.
func RG(x, y, z float64) float64 {
	if x < 0 || y < 0 || z < 0 {
		return math.NaN()
	}
	return real(rgDup(complex(x, 0), complex(y, 0), complex(z, 0)))
}

// RGComplex computes RG for complex variables.
func RGComplex(x, y, z complex128) complex128 {
	return rgDup(x, y, z)
}
