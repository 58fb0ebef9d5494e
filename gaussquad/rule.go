package gaussquad

import "sync"

// Rule order bounds. High orders are numerically pointless in double
// precision and quadratic in cost, so requests are capped.
const (
	MinOrder = 1
	MaxOrder = 1000
)

// RuleComputer derives the nodes and weights of a single rule order.
// previous holds the points of the order n-1 rule of the same family
// (nil when n == 1); implementations must not retain or mutate it.
type RuleComputer interface {
	ComputeRule(n int, previous []float64) (points, weights []float64, err error)
}

// RuleSource hands out quadrature rules by order. Both the double
// precision factories and the high-precision narrowing factory satisfy
// it.
type RuleSource interface {
	Rule(n int) (points, weights []float64, err error)
}

// RuleFactory memoizes the rules of one orthogonal polynomial family.
// Each order is computed at most once, even under concurrent access;
// failed computations are never cached. Callers always receive fresh
// copies, so mutating a returned slice cannot corrupt the cache.
type RuleFactory struct {
	computer RuleComputer

	mu      sync.Mutex
	points  map[int][]float64
	weights map[int][]float64
}

// NewRuleFactory wraps a computer in a memoizing factory. The stock
// families are available through NewLegendreRuleFactory,
// NewHermiteRuleFactory and NewLaguerreRuleFactory; injecting a custom
// computer is mainly useful for instrumentation and tests.
func NewRuleFactory(computer RuleComputer) *RuleFactory {
	return &RuleFactory{
		computer: computer,
		points:   make(map[int][]float64),
		weights:  make(map[int][]float64),
	}
}

// NewLegendreRuleFactory builds a factory for Gauss-Legendre rules,
// integrating ∫₋₁¹ f(x) dx.
func NewLegendreRuleFactory() *RuleFactory {
	return NewRuleFactory(legendreComputer{})
}

// NewHermiteRuleFactory builds a factory for Gauss-Hermite rules,
// integrating ∫ e^(−x²)·f(x) dx over the real line.
func NewHermiteRuleFactory() *RuleFactory {
	return NewRuleFactory(hermiteComputer{})
}

// NewLaguerreRuleFactory builds a factory for Gauss-Laguerre rules,
// integrating ∫₀^∞ e^(−x)·f(x) dx.
func NewLaguerreRuleFactory() *RuleFactory {
	return NewRuleFactory(laguerreComputer{})
}

// Rule returns the points and weights of the order-n rule.
func (f *RuleFactory) Rule(n int) (points, weights []float64, err error) {
	if n < MinOrder || n > MaxOrder {
		return nil, nil, ErrOrderOutOfRange
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.fillLocked(n); err != nil {
		return nil, nil, err
	}

	return clone(f.points[n]), clone(f.weights[n]), nil
}

// fillLocked computes every missing order up to n. Order k seeds its
// root search with the points of order k-1, so the chain is filled
// bottom-up; the recursion of a naive implementation would deadlock on
// the non-reentrant mutex.
func (f *RuleFactory) fillLocked(n int) error {
	if _, ok := f.points[n]; ok {
		return nil
	}
	for k := 1; k <= n; k++ {
		if _, ok := f.points[k]; ok {
			continue
		}
		pts, wts, err := f.computer.ComputeRule(k, f.points[k-1])
		if err != nil {
			return err
		}
		if len(pts) != len(wts) {
			return ErrLengthMismatch
		}
		f.points[k] = pts
		f.weights[k] = wts
	}
	return nil
}

func clone(s []float64) []float64 {
	c := make([]float64, len(s))
	copy(c, s)
	return c
}
