package gaussquad

import "math/big"

// DefaultDecimalDigits is the precision the high-precision Legendre
// rules are computed at before narrowing to float64. Forty digits keep
// every narrowed node and weight correctly rounded up to MaxOrder.
const DefaultDecimalDigits = 40

// IntegratorFactory hands out ready-to-use integrators for the three
// classical families. All rule caches are shared across the integrators
// a factory produces, and safe for concurrent use.
type IntegratorFactory struct {
	legendre   *RuleFactory
	legendreHP *ConvertingRuleFactory[*big.Float]
	hermite    *RuleFactory
	laguerre   *RuleFactory
}

// NewIntegratorFactory builds a factory with the default high-precision
// setting.
func NewIntegratorFactory() *IntegratorFactory {
	return NewIntegratorFactoryWithDigits(DefaultDecimalDigits)
}

// NewIntegratorFactoryWithDigits builds a factory whose high-precision
// Legendre rules carry the given number of decimal digits internally.
func NewIntegratorFactoryWithDigits(decimalDigits int) *IntegratorFactory {
	field := NewBigFloatField(decimalDigits)
	return &IntegratorFactory{
		legendre:   NewLegendreRuleFactory(),
		legendreHP: NewConvertingRuleFactory[*big.Float](field, NewLegendreFieldRuleFactory[*big.Float](field)),
		hermite:    NewHermiteRuleFactory(),
		laguerre:   NewLaguerreRuleFactory(),
	}
}

// Legendre returns an n-point Gauss-Legendre integrator on [-1, 1].
func (f *IntegratorFactory) Legendre(n int) (*Integrator, error) {
	pts, wts, err := f.legendre.Rule(n)
	if err != nil {
		return nil, err
	}
	return NewIntegrator(pts, wts)
}

// LegendreOn returns an n-point Gauss-Legendre integrator rescaled to
// [lower, upper].
func (f *IntegratorFactory) LegendreOn(n int, lower, upper float64) (*Integrator, error) {
	pts, wts, err := f.legendre.Rule(n)
	if err != nil {
		return nil, err
	}
	pts, wts = transform(pts, wts, lower, upper)
	return NewIntegrator(pts, wts)
}

// LegendreHighPrecision returns an n-point Gauss-Legendre integrator on
// [-1, 1] whose rule was computed in arbitrary precision and rounded to
// float64.
func (f *IntegratorFactory) LegendreHighPrecision(n int) (*Integrator, error) {
	pts, wts, err := f.legendreHP.Rule(n)
	if err != nil {
		return nil, err
	}
	return NewIntegrator(pts, wts)
}

// LegendreHighPrecisionOn is LegendreHighPrecision rescaled to
// [lower, upper].
func (f *IntegratorFactory) LegendreHighPrecisionOn(n int, lower, upper float64) (*Integrator, error) {
	pts, wts, err := f.legendreHP.Rule(n)
	if err != nil {
		return nil, err
	}
	pts, wts = transform(pts, wts, lower, upper)
	return NewIntegrator(pts, wts)
}

// Hermite returns an n-point Gauss-Hermite integrator for
// ∫ e^(−x²)·f(x) dx over the real line.
func (f *IntegratorFactory) Hermite(n int) (*SymmetricIntegrator, error) {
	pts, wts, err := f.hermite.Rule(n)
	if err != nil {
		return nil, err
	}
	return NewSymmetricIntegrator(pts, wts)
}

// Laguerre returns an n-point Gauss-Laguerre integrator for
// ∫₀^∞ e^(−x)·f(x) dx.
func (f *IntegratorFactory) Laguerre(n int) (*Integrator, error) {
	pts, wts, err := f.laguerre.Rule(n)
	if err != nil {
		return nil, err
	}
	return NewIntegrator(pts, wts)
}
