package jacobi

import (
	"math"

	"github.com/katalvlaran/lvlnum/carlson"
	"github.com/katalvlaran/lvlnum/ellint"
)

// The twelve inverse functions reduce to Carlson RF integrals
// (DLMF 19.25.29-19.25.34). Each of the three shapes below covers the
// four functions sharing the same singularity structure: the function
// letters p, q, r stand for the ordering of the three poles, and the
// delta arguments are the squared-value differences between poles,
// expressed with the parameter m.

// ArcSn returns the inverse of sn, for x in [-1, 1].
func (e *Elliptic) ArcSn(x float64) float64 {
	return e.arcSP(x, -1, -e.m)
}

// ArcCn returns the inverse of cn, for x in [-1, 1].
func (e *Elliptic) ArcCn(x float64) float64 {
	return e.arcPQ(x, 1, -e.m)
}

// ArcDn returns the inverse of dn, for x in [√(1-m), 1].
func (e *Elliptic) ArcDn(x float64) float64 {
	return e.arcPQ(x, e.m, -1)
}

// ArcCs returns the inverse of cs.
func (e *Elliptic) ArcCs(x float64) float64 {
	return e.arcPS(x, 1, 1-e.m)
}

// ArcDs returns the inverse of ds, for |x| ≥ √(1-m).
func (e *Elliptic) ArcDs(x float64) float64 {
	return e.arcPS(x, e.m-1, e.m)
}

// ArcNs returns the inverse of ns, for |x| ≥ 1.
func (e *Elliptic) ArcNs(x float64) float64 {
	return e.arcPS(x, -1, -e.m)
}

// ArcDc returns the inverse of dc, for |x| ≥ 1.
func (e *Elliptic) ArcDc(x float64) float64 {
	return e.arcPQ(x, e.m-1, 1)
}

// ArcNc returns the inverse of nc, for |x| ≥ 1.
func (e *Elliptic) ArcNc(x float64) float64 {
	return e.arcPQ(x, -1, 1-e.m)
}

// ArcSc returns the inverse of sc.
func (e *Elliptic) ArcSc(x float64) float64 {
	return e.arcSP(x, 1, 1-e.m)
}

// ArcNd returns the inverse of nd, for x in [1, 1/√(1-m)].
func (e *Elliptic) ArcNd(x float64) float64 {
	return e.arcPQ(x, -e.m, e.m-1)
}

// ArcSd returns the inverse of sd, for |x| ≤ 1/√(1-m).
func (e *Elliptic) ArcSd(x float64) float64 {
	return e.arcSP(x, e.m, e.m-1)
}

// ArcCd returns the inverse of cd, for |x| ≤ 1.
func (e *Elliptic) ArcCd(x float64) float64 {
	return e.arcPQ(x, 1-e.m, e.m)
}

// arcPS inverts functions with a pole at s and a zero at p
// (cs, ds, ns); odd in x, unbounded at x = ±∞.
func (e *Elliptic) arcPS(x, deltaQP, deltaRP float64) float64 {
	x2 := x * x
	return math.Copysign(carlson.RF(x2, x2+deltaQP, x2+deltaRP), x)
}

// arcSP inverts functions with a zero at s (sn, sc, sd); odd in x.
func (e *Elliptic) arcSP(x, deltaQP, deltaRP float64) float64 {
	x2 := x * x
	return x * carlson.RF(1, 1+deltaQP*x2, 1+deltaRP*x2)
}

// arcPQ inverts functions with value 1 at u = 0 (cn, dn, dc, nc, nd,
// cd); even in x, so the negative branch folds back through the
// half period 2K(m).
func (e *Elliptic) arcPQ(x, deltaQP, deltaRQ float64) float64 {
	x2 := x * x
	w := (1 - x2) / deltaQP
	positive := math.Sqrt(w) * carlson.RF(x2, 1, 1+deltaRQ*w)
	if x < 0 {
		return 2*ellint.BigK(e.m) - positive
	}
	return positive
}
