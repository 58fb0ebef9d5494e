package jacobi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// doTestInverse samples x over [xMin, xMax] and checks that the direct
// function rebuilds x from the inverse's output.
func doTestInverse(t *testing.T, je *Elliptic, xMin, xMax float64,
	direct func(u float64) float64, inverse func(x float64) float64, tol float64) {
	t.Helper()
	const n = 100
	for i := 0; i < n; i++ {
		x := xMin + float64(i)*(xMax-xMin)/(n-1)
		rebuilt := direct(inverse(x))
		assert.InDelta(t, x, rebuilt, tol, "x=%g", x)
	}
}

func trioN(t *testing.T, je *Elliptic, u float64) CopolarN {
	t.Helper()
	n, err := je.ValuesN(u)
	require.NoError(t, err)
	return n
}

func trioS(t *testing.T, je *Elliptic, u float64) CopolarS {
	t.Helper()
	s, err := je.ValuesS(u)
	require.NoError(t, err)
	return s
}

func trioC(t *testing.T, je *Elliptic, u float64) CopolarC {
	t.Helper()
	c, err := je.ValuesC(u)
	require.NoError(t, err)
	return c
}

func trioD(t *testing.T, je *Elliptic, u float64) CopolarD {
	t.Helper()
	d, err := je.ValuesD(u)
	require.NoError(t, err)
	return d
}

func TestInverseCopolarN(t *testing.T) {
	je := build(t, 0.7)
	doTestInverse(t, je, -0.80, 0.80, func(u float64) float64 { return trioN(t, je, u).Sn }, je.ArcSn, 1.0e-14)
	doTestInverse(t, je, -1.00, 1.00, func(u float64) float64 { return trioN(t, je, u).Cn }, je.ArcCn, 1.0e-14)
	doTestInverse(t, je, 0.55, 1.00, func(u float64) float64 { return trioN(t, je, u).Dn }, je.ArcDn, 1.0e-14)
}

func TestInverseCopolarS(t *testing.T) {
	je := build(t, 0.7)
	doTestInverse(t, je, -2.00, 2.00, func(u float64) float64 { return trioS(t, je, u).Cs }, je.ArcCs, 1.0e-14)
	doTestInverse(t, je, 0.55, 2.00, func(u float64) float64 { return trioS(t, je, u).Ds }, je.ArcDs, 1.0e-14)
	doTestInverse(t, je, -2.00, -0.55, func(u float64) float64 { return trioS(t, je, u).Ds }, je.ArcDs, 1.0e-14)
	doTestInverse(t, je, 1.00, 2.00, func(u float64) float64 { return trioS(t, je, u).Ns }, je.ArcNs, 1.0e-11)
	doTestInverse(t, je, -2.00, -1.00, func(u float64) float64 { return trioS(t, je, u).Ns }, je.ArcNs, 1.0e-11)
}

func TestInverseCopolarC(t *testing.T) {
	je := build(t, 0.7)
	doTestInverse(t, je, 1.00, 2.00, func(u float64) float64 { return trioC(t, je, u).Dc }, je.ArcDc, 1.0e-14)
	doTestInverse(t, je, -2.00, -1.00, func(u float64) float64 { return trioC(t, je, u).Dc }, je.ArcDc, 1.0e-14)
	doTestInverse(t, je, 1.00, 2.00, func(u float64) float64 { return trioC(t, je, u).Nc }, je.ArcNc, 1.0e-14)
	doTestInverse(t, je, -2.00, -1.00, func(u float64) float64 { return trioC(t, je, u).Nc }, je.ArcNc, 1.0e-14)
	doTestInverse(t, je, -2.00, 2.00, func(u float64) float64 { return trioC(t, je, u).Sc }, je.ArcSc, 1.0e-14)
}

func TestInverseCopolarD(t *testing.T) {
	je := build(t, 0.7)
	doTestInverse(t, je, 1.00, 1.80, func(u float64) float64 { return trioD(t, je, u).Nd }, je.ArcNd, 1.0e-14)
	doTestInverse(t, je, -1.80, 1.80, func(u float64) float64 { return trioD(t, je, u).Sd }, je.ArcSd, 1.0e-14)
	doTestInverse(t, je, -1.00, 1.00, func(u float64) float64 { return trioD(t, je, u).Cd }, je.ArcCd, 1.0e-14)
}
