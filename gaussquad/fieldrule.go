package gaussquad

import (
	"math"
	"sort"
	"sync"
)

// FieldRuleComputer derives the nodes and weights of a single rule
// order over an arbitrary field.
type FieldRuleComputer[T any] interface {
	ComputeRule(n int, previous []T) (points, weights []T, err error)
}

// FieldRuleFactory memoizes the rules of one family over an arbitrary
// field, mirroring RuleFactory. Returned slices hold deep copies, so
// mutable element types like *big.Float stay isolated from the cache.
type FieldRuleFactory[T any] struct {
	field    Field[T]
	computer FieldRuleComputer[T]

	mu      sync.Mutex
	points  map[int][]T
	weights map[int][]T
}

// NewFieldRuleFactory wraps a field computer in a memoizing factory.
func NewFieldRuleFactory[T any](field Field[T], computer FieldRuleComputer[T]) *FieldRuleFactory[T] {
	return &FieldRuleFactory[T]{
		field:    field,
		computer: computer,
		points:   make(map[int][]T),
		weights:  make(map[int][]T),
	}
}

// NewLegendreFieldRuleFactory builds a factory for Gauss-Legendre rules
// over the given field.
func NewLegendreFieldRuleFactory[T any](field Field[T]) *FieldRuleFactory[T] {
	return NewFieldRuleFactory[T](field, legendreFieldComputer[T]{field: field})
}

// Rule returns deep copies of the points and weights of the order-n rule.
func (f *FieldRuleFactory[T]) Rule(n int) (points, weights []T, err error) {
	if n < MinOrder || n > MaxOrder {
		return nil, nil, ErrOrderOutOfRange
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.fillLocked(n); err != nil {
		return nil, nil, err
	}

	return f.deepClone(f.points[n]), f.deepClone(f.weights[n]), nil
}

func (f *FieldRuleFactory[T]) fillLocked(n int) error {
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

func (f *FieldRuleFactory[T]) deepClone(s []T) []T {
	c := make([]T, len(s))
	for i, v := range s {
		c[i] = f.field.Copy(v)
	}
	return c
}

// findRootsField is the Aberth root search of findRoots lifted to an
// arbitrary field; the tolerance is the largest ULP among the current
// root estimates at the field's precision.
func findRootsField[T any](fd Field[T], n int, previous []T, ratio func(T) T) ([]T, error) {
	roots := make([]T, n)
	switch {
	case n == 1:
		roots[0] = fd.Zero()
	case n == 2:
		roots[0] = fd.FromInt(-1)
		roots[1] = fd.One()
	default:
		half := fd.FromFloat64(0.5)
		roots[0] = fd.Copy(previous[0])
		for i := 1; i < n-1; i++ {
			roots[i] = fd.Mul(half, fd.Add(previous[i-1], previous[i]))
		}
		roots[n-1] = fd.Copy(previous[n-2])
	}

	one := fd.One()
	ratios := make([]T, n)
	for iter := 0; iter < maxAberthIterations; iter++ {
		for i, r := range roots {
			ratios[i] = ratio(r)
		}

		maxOffset := fd.Zero()
		finite := true
		for i := range roots {
			repulsion := fd.Zero()
			for j := range roots {
				if j != i {
					repulsion = fd.Add(repulsion, fd.Div(one, fd.Sub(roots[i], roots[j])))
				}
			}
			offset := fd.Div(ratios[i], fd.Sub(one, fd.Mul(ratios[i], repulsion)))
			// Cmp cannot see a NaN offset, so finiteness is checked on
			// the narrowed value before it counts as progress
			if v := fd.Float64(offset); math.IsNaN(v) || math.IsInf(v, 0) {
				finite = false
			}
			if abs := fd.Abs(offset); fd.Cmp(abs, maxOffset) > 0 {
				maxOffset = abs
			}
			roots[i] = fd.Sub(roots[i], offset)
		}

		tol := fd.Zero()
		for _, r := range roots {
			if u := fd.ULP(r); fd.Cmp(u, tol) > 0 {
				tol = u
			}
		}
		if finite && fd.Cmp(maxOffset, tol) <= 0 {
			sort.Slice(roots, func(i, j int) bool { return fd.Cmp(roots[i], roots[j]) < 0 })
			return roots, nil
		}
	}

	return nil, ErrRootsNoConvergence
}

// enforceSymmetryField mirrors enforceSymmetry over an arbitrary field.
func enforceSymmetryField[T any](fd Field[T], roots []T) {
	n := len(roots)
	half := fd.FromFloat64(0.5)
	for i := 0; i < n/2; i++ {
		idx := n - 1 - i
		c := fd.Mul(half, fd.Sub(roots[i], roots[idx]))
		roots[i] = c
		roots[idx] = fd.Neg(c)
	}
	if n%2 != 0 {
		roots[n/2] = fd.Zero()
	}
}

// legendreFieldComputer is legendreComputer lifted to an arbitrary
// field; same recurrences, same weight formula.
type legendreFieldComputer[T any] struct {
	field Field[T]
}

func (c legendreFieldComputer[T]) ComputeRule(n int, previous []T) ([]T, []T, error) {
	fd := c.field
	if n == 1 {
		return []T{fd.Zero()}, []T{fd.FromInt(2)}, nil
	}

	points, err := findRootsField(fd, n, previous, func(x T) T {
		return c.ratio(n, x)
	})
	if err != nil {
		return nil, nil, err
	}
	enforceSymmetryField(fd, points)

	one := fd.One()
	two := fd.FromInt(2)
	nF := fd.FromInt(n)
	weights := make([]T, n)
	for i := 0; i <= (n-1)/2; i++ {
		x := points[i]
		pn, pnm1 := c.pair(n, x)
		d := fd.Mul(nF, fd.Sub(pnm1, fd.Mul(x, pn)))
		w := fd.Div(fd.Mul(two, fd.Sub(one, fd.Mul(x, x))), fd.Mul(d, d))
		weights[i] = w
		weights[n-1-i] = fd.Copy(w)
	}

	return points, weights, nil
}

func (c legendreFieldComputer[T]) ratio(n int, x T) T {
	fd := c.field
	pm, dm := fd.One(), fd.Zero()
	p, d := fd.Copy(x), fd.One()
	for k := 1; k < n; k++ {
		twoKp1 := fd.FromInt(2*k + 1)
		kF := fd.FromInt(k)
		kp1 := fd.FromInt(k + 1)
		pNext := fd.Div(fd.Sub(fd.Mul(twoKp1, fd.Mul(x, p)), fd.Mul(kF, pm)), kp1)
		dNext := fd.Div(fd.Sub(fd.Mul(twoKp1, fd.Add(p, fd.Mul(x, d))), fd.Mul(kF, dm)), kp1)
		pm, dm = p, d
		p, d = pNext, dNext
	}
	return fd.Div(p, d)
}

func (c legendreFieldComputer[T]) pair(n int, x T) (pn, pnm1 T) {
	fd := c.field
	pm, p := fd.One(), fd.Copy(x)
	for k := 1; k < n; k++ {
		twoKp1 := fd.FromInt(2*k + 1)
		kF := fd.FromInt(k)
		kp1 := fd.FromInt(k + 1)
		pNext := fd.Div(fd.Sub(fd.Mul(twoKp1, fd.Mul(x, p)), fd.Mul(kF, pm)), kp1)
		pm, p = p, pNext
	}
	return p, pm
}
