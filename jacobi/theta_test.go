package jacobi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlnum/ellint"
)

func TestThetaZeroNome(t *testing.T) {
	// q = 0 collapses the series to the circular functions
	te := NewThetaEvaluator(0)
	for z := -3.0; z <= 3; z += 0.25 {
		th, err := te.Values(z)
		require.NoError(t, err)
		assert.InDelta(t, 0.0, th.T1, 1.0e-15)
		assert.InDelta(t, 0.0, th.T2, 1.0e-15)
		assert.InDelta(t, 1.0, th.T3, 1.0e-15)
		assert.InDelta(t, 1.0, th.T4, 1.0e-15)
	}
}

func TestThetaQuasiPeriodicity(t *testing.T) {
	// θ3 and θ4 are π-periodic; θ1 and θ2 flip sign over a π shift
	te := NewThetaEvaluator(ellint.Nome(0.7))
	for z := -2.0; z <= 2; z += 0.1 {
		a, err := te.Values(z)
		require.NoError(t, err)
		b, err := te.Values(z + math.Pi)
		require.NoError(t, err)
		assert.InDelta(t, -a.T1, b.T1, 1.0e-12)
		assert.InDelta(t, -a.T2, b.T2, 1.0e-12)
		assert.InDelta(t, a.T3, b.T3, 1.0e-12)
		assert.InDelta(t, a.T4, b.T4, 1.0e-12)
	}
}

func TestThetaJacobiIdentity(t *testing.T) {
	// θ2(0)⁴ + θ4(0)⁴ = θ3(0)⁴
	for _, m := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		te := NewThetaEvaluator(ellint.Nome(m))
		th, err := te.Values(0)
		require.NoError(t, err)
		lhs := math.Pow(th.T2, 4) + math.Pow(th.T4, 4)
		assert.InDelta(t, math.Pow(th.T3, 4), lhs, 1.0e-13)
	}
}

func TestThetaNoConvergence(t *testing.T) {
	te := NewThetaEvaluator(math.NaN())
	_, err := te.Values(0.5)
	assert.ErrorIs(t, err, ErrThetaNoConvergence)
}

func TestThetaModulusRecovery(t *testing.T) {
	// k = θ2(0)²/θ3(0)² recovers the modulus from the nome
	for _, m := range []float64{0.2, 0.5, 0.8} {
		te := NewThetaEvaluator(ellint.Nome(m))
		th, err := te.Values(0)
		require.NoError(t, err)
		k := th.T2 * th.T2 / (th.T3 * th.T3)
		assert.InDelta(t, math.Sqrt(m), k, 1.0e-13)
	}
}
