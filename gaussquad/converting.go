package gaussquad

import "sync"

// ConvertingRuleFactory narrows the rules of a field factory to machine
// doubles. The narrowed form is cached separately, so repeated requests
// do not pay the high-precision computation or the conversion twice.
type ConvertingRuleFactory[T any] struct {
	field  Field[T]
	source *FieldRuleFactory[T]

	mu      sync.Mutex
	points  map[int][]float64
	weights map[int][]float64
}

// NewConvertingRuleFactory wraps a field rule factory.
func NewConvertingRuleFactory[T any](field Field[T], source *FieldRuleFactory[T]) *ConvertingRuleFactory[T] {
	return &ConvertingRuleFactory[T]{
		field:   field,
		source:  source,
		points:  make(map[int][]float64),
		weights: make(map[int][]float64),
	}
}

// Rule returns the points and weights of the order-n rule, computed at
// the source's precision and rounded to float64.
func (c *ConvertingRuleFactory[T]) Rule(n int) (points, weights []float64, err error) {
	if n < MinOrder || n > MaxOrder {
		return nil, nil, ErrOrderOutOfRange
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if pts, ok := c.points[n]; ok {
		return clone(pts), clone(c.weights[n]), nil
	}

	fieldPts, fieldWts, err := c.source.Rule(n)
	if err != nil {
		return nil, nil, err
	}

	pts := make([]float64, n)
	wts := make([]float64, n)
	for i := range fieldPts {
		pts[i] = c.field.Float64(fieldPts[i])
		wts[i] = c.field.Float64(fieldWts[i])
	}
	c.points[n] = pts
	c.weights[n] = wts

	return clone(pts), clone(wts), nil
}
