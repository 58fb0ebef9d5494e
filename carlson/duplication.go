package carlson

import (
	"math"
	"math/cmplx"
)

// maxDuplications caps the duplication loop. Each iteration quarters the
// spread of the variables, so 16 steps cover the whole double range.
const maxDuplications = 16

// eps is the unit roundoff of float64, the distance from 1.0 to the next
// representable value.
const eps = 0x1p-52

// Convergence thresholds q = c·max|a0-vᵢ|, iterated until q < 4^m·|a_m|.
// The constants come from the error bounds of the respective Taylor
// tails (Carlson 1995, eqs. 2.4, 2.16 and 2.30).
var (
	rfPrefactor = math.Pow(3*eps, -1.0/8)
	rcPrefactor = math.Pow(3*eps, -1.0/8)
	rdPrefactor = math.Pow(0.25*eps, -1.0/8)
)

// rfDup evaluates RF(x, y, z) by the duplication theorem.
func rfDup(x, y, z complex128) complex128 {
	a0 := (x + y + z) / 3
	q := rfPrefactor * maxDeviation(a0, x, y, z)

	vx, vy, vz, a := x, y, z, a0
	fourM := 1.0
	for m := 0; m < maxDuplications; m++ {
		if m > 0 && q < fourM*cmplx.Abs(a) {
			break
		}
		sx, sy, sz := cmplx.Sqrt(vx), cmplx.Sqrt(vy), cmplx.Sqrt(vz)
		lambda := sx*sy + sy*sz + sz*sx
		vx = (vx + lambda) * 0.25
		vy = (vy + lambda) * 0.25
		vz = (vz + lambda) * 0.25
		a = (a + lambda) * 0.25
		fourM *= 4
	}

	inv := 1 / (complex(fourM, 0) * a)
	bigX := (a0 - x) * inv
	bigY := (a0 - y) * inv
	bigZ := -bigX - bigY

	e2 := bigX*bigY - bigZ*bigZ
	e3 := bigX * bigY * bigZ

	// Taylor tail, DLMF 19.36.1.
	poly := 1 - e2/10 + e3/14 + e2*e2/24 - 3*e2*e3/44 -
		5*e2*e2*e2/208 + 3*e3*e3/104 + e2*e2*e3/16

	return poly / cmplx.Sqrt(a)
}

// rcDup evaluates RC(x, y) by the duplication theorem. Callers are
// responsible for the branch-cut transform when y lies on the negative
// real axis.
func rcDup(x, y complex128) complex128 {
	a0 := (x + 2*y) / 3
	q := rcPrefactor * cmplx.Abs(a0-x)

	vx, vy, a := x, y, a0
	fourM := 1.0
	for m := 0; m < maxDuplications; m++ {
		if m > 0 && q < fourM*cmplx.Abs(a) {
			break
		}
		lambda := 2*cmplx.Sqrt(vx)*cmplx.Sqrt(vy) + vy
		vx = (vx + lambda) * 0.25
		vy = (vy + lambda) * 0.25
		a = (a + lambda) * 0.25
		fourM *= 4
	}

	s := (y - a0) / (complex(fourM, 0) * a)

	// Taylor tail, DLMF 19.36.2, in Horner form.
	poly := 1 + s*s*(complex(3.0/10, 0)+s*(complex(1.0/7, 0)+
		s*(complex(3.0/8, 0)+s*(complex(9.0/22, 0)+
			s*(complex(159.0/208, 0)+s*complex(9.0/8, 0))))))

	return poly / cmplx.Sqrt(a)
}

// rdDup evaluates RD(x, y, z) by the duplication theorem, accumulating
// the telescoping sum over the z variable as it goes.
func rdDup(x, y, z complex128) complex128 {
	a0 := (x + y + 3*z) / 5
	q := rdPrefactor * maxDeviation(a0, x, y, z)

	vx, vy, vz, a := x, y, z, a0
	var sum complex128
	fourM := 1.0
	for m := 0; m < maxDuplications; m++ {
		if m > 0 && q < fourM*cmplx.Abs(a) {
			break
		}
		sx, sy, sz := cmplx.Sqrt(vx), cmplx.Sqrt(vy), cmplx.Sqrt(vz)
		lambda := sx*sy + sy*sz + sz*sx
		sum += 1 / (complex(fourM, 0) * sz * (vz + lambda))
		vx = (vx + lambda) * 0.25
		vy = (vy + lambda) * 0.25
		vz = (vz + lambda) * 0.25
		a = (a + lambda) * 0.25
		fourM *= 4
	}

	inv := 1 / (complex(fourM, 0) * a)
	bigX := (a0 - x) * inv
	bigY := (a0 - y) * inv
	bigZ := -(bigX + bigY) / 3

	e2 := bigX*bigY - 6*bigZ*bigZ
	e3 := (3*bigX*bigY - 8*bigZ*bigZ) * bigZ
	e4 := 3 * (bigX*bigY - bigZ*bigZ) * bigZ * bigZ
	e5 := bigX * bigY * bigZ * bigZ * bigZ

	poly := rjrdTail(e2, e3, e4, e5)

	return poly/(complex(fourM, 0)*a*cmplx.Sqrt(a)) + 3*sum
}

// rjDup evaluates RJ(x, y, z, p) by the duplication theorem. delta is the
// invariant (p-x)(p-y)(p-z) computed from the original arguments; it
// drives the sM recursion that collapses the whole RC sum into a single
// term (Carlson 2000, eq. A.3).
func rjDup(x, y, z, p, delta complex128) complex128 {
	a0 := (x + y + z + 2*p) / 5
	q := rdPrefactor * maxDeviation(a0, x, y, z, p)

	vx, vy, vz, vp, a := x, y, z, p, a0
	var sM complex128
	fourM := 1.0
	for m := 0; m < maxDuplications; m++ {
		if m > 0 && q < fourM*cmplx.Abs(a) {
			break
		}
		sx, sy, sz, sp := cmplx.Sqrt(vx), cmplx.Sqrt(vy), cmplx.Sqrt(vz), cmplx.Sqrt(vp)
		dM := (sp + sx) * (sp + sy) * (sp + sz)
		if m == 0 {
			sM = dM * 0.5
		} else {
			rM := sM * (cmplx.Sqrt(delta/(sM*sM*complex(fourM, 0))+1) + 1)
			sM = (dM*rM - delta/complex(fourM*fourM, 0)) /
				(2 * (dM + rM/complex(fourM, 0)))
		}
		lambda := sx*sy + sy*sz + sz*sx
		vx = (vx + lambda) * 0.25
		vy = (vy + lambda) * 0.25
		vz = (vz + lambda) * 0.25
		vp = (vp + lambda) * 0.25
		a = (a + lambda) * 0.25
		fourM *= 4
	}

	inv := 1 / (complex(fourM, 0) * a)
	bigX := (a0 - x) * inv
	bigY := (a0 - y) * inv
	bigZ := (a0 - z) * inv
	bigP := -(bigX + bigY + bigZ) / 2
	bigP2 := bigP * bigP

	xyz := bigX * bigY * bigZ
	e2 := bigX*(bigY+bigZ) + bigY*bigZ - 3*bigP2
	e3 := xyz + 2*bigP*(e2+2*bigP2)
	e4 := (2*xyz + bigP*(e2+3*bigP2)) * bigP
	e5 := xyz * bigP2

	poly := rjrdTail(e2, e3, e4, e5)
	polyTerm := poly / (complex(fourM, 0) * a * cmplx.Sqrt(a))
	rcTerm := 3 * rcDup(1, delta/(sM*sM*complex(fourM, 0))+1) / sM

	return polyTerm + rcTerm
}

// rjrdTail is the shared seventh-order Taylor tail of RJ and RD
// (DLMF 19.36.2).
func rjrdTail(e2, e3, e4, e5 complex128) complex128 {
	return 1 - 3*e2/14 + e3/6 + 9*e2*e2/88 - 3*e4/22 - 9*e2*e3/52 +
		3*e5/26 - e2*e2*e2/16 + 3*e3*e3/40 + 3*e2*e4/20 +
		45*e2*e2*e3/272 - 9*(e3*e4+e2*e5)/68
}

// rgDup evaluates RG(x, y, z) from RF and RD. The (x-z)(y-z) factor in
// the identity cancels badly unless the middle variable sits in the
// third slot, so the arguments are reordered by real part first.
func rgDup(x, y, z complex128) complex128 {
	xR, yR, zR := real(x), real(y), real(z)
	switch {
	case xR <= yR && yR <= zR:
		return rgPermuted(x, z, y)
	case xR <= yR && xR <= zR:
		return rgPermuted(x, y, z)
	case xR <= yR:
		return rgPermuted(z, y, x)
	case xR <= zR:
		return rgPermuted(y, z, x)
	case yR <= zR:
		return rgPermuted(y, x, z)
	default:
		return rgPermuted(z, x, y)
	}
}

// rgPermuted keeps the zero variable, if any, out of the third slot.
func rgPermuted(x, y, z complex128) complex128 {
	if z == 0 {
		if x == 0 {
			// both remaining variables vanish: RG(0, 0, y) = sqrt(y)/2
			return cmplx.Sqrt(y) * 0.5
		}
		return rgSafe(y, z, x)
	}
	return rgSafe(x, y, z)
}

// rgSafe applies the RF/RD identity with z nonzero.
func rgSafe(x, y, z complex128) complex128 {
	termF := rfDup(x, y, z) * z
	termD := (x - z) * (y - z) * rdDup(x, y, z) / 3
	termS := cmplx.Sqrt(x) * cmplx.Sqrt(y) / cmplx.Sqrt(z)
	return (termF - termD + termS) * 0.5
}

// maxDeviation returns max |a0 - vᵢ| over the variables.
func maxDeviation(a0 complex128, vs ...complex128) float64 {
	max := 0.0
	for _, v := range vs {
		if d := cmplx.Abs(a0 - v); d > max {
			max = d
		}
	}
	return max
}
