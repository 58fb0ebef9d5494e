package gaussquad

// NewHermiteFieldRuleFactory builds a factory for Gauss-Hermite rules
// over the given field. Unlike the double-precision Hermite computer it
// does not refine all roots simultaneously: each root of the order-n
// polynomial is bracketed between roots of the order n-1 polynomial
// (they interlace) and pinned down by bisection, which stays robust at
// any precision.
func NewHermiteFieldRuleFactory[T any](field Field[T]) *FieldRuleFactory[T] {
	pi4 := field.Sqrt(field.Sqrt(field.Pi()))
	h0 := field.Div(field.One(), pi4)
	return NewFieldRuleFactory[T](field, hermiteFieldComputer[T]{
		field:  field,
		sqrtPi: field.Sqrt(field.Pi()),
		h0:     h0,
		h1:     field.Mul(field.Sqrt(field.FromInt(2)), h0),
	})
}

type hermiteFieldComputer[T any] struct {
	field  Field[T]
	sqrtPi T
	h0     T // H̃₀ = π^(−1/4)
	h1     T // H̃₁ / x
}

func (c hermiteFieldComputer[T]) ComputeRule(n int, previous []T) ([]T, []T, error) {
	fd := c.field
	if n == 1 {
		return []T{fd.Zero()}, []T{fd.Copy(c.sqrtPi)}, nil
	}

	points := make([]T, n)
	weights := make([]T, n)
	two := fd.FromInt(2)
	sqrtTwoN := fd.Sqrt(fd.FromInt(2 * n))

	iMax := n / 2
	for i := 0; i < iMax; i++ {
		// bracket [a, b]: the leftmost root lies above the Krasikov
		// bound −√(2(n−1)); the others interlace the previous rule
		var a, b T
		if i == 0 {
			a = fd.Neg(fd.Sqrt(fd.FromInt(2 * (n - 1))))
		} else {
			a = fd.Copy(previous[i-1])
		}
		if iMax == 1 {
			b = fd.FromFloat64(-0.5)
		} else {
			b = fd.Copy(previous[i])
		}

		root, err := bisect(fd, func(x T) T { return c.value(n, x) }, a, b)
		if err != nil {
			return nil, nil, err
		}

		d := fd.Mul(sqrtTwoN, c.value(n-1, root))
		w := fd.Div(two, fd.Mul(d, d))

		points[i] = root
		points[n-1-i] = fd.Neg(root)
		weights[i] = w
		weights[n-1-i] = fd.Copy(w)
	}

	if n%2 != 0 {
		// middle root is exactly zero; H̃ₙ₋₁(0) in closed form
		hmz := fd.Copy(c.h0)
		for j := 1; j < n; j += 2 {
			hmz = fd.Neg(fd.Mul(hmz, fd.Sqrt(fd.Div(fd.FromInt(j), fd.FromInt(j+1)))))
		}
		d := fd.Mul(sqrtTwoN, hmz)
		points[n/2] = fd.Zero()
		weights[n/2] = fd.Div(two, fd.Mul(d, d))
	}

	return points, weights, nil
}

// value evaluates the orthonormal H̃_degree at x.
func (c hermiteFieldComputer[T]) value(degree int, x T) T {
	fd := c.field
	if degree == 0 {
		return fd.Copy(c.h0)
	}
	hm := fd.Copy(c.h0)
	h := fd.Mul(c.h1, x)
	for j := 1; j < degree; j++ {
		jF := fd.FromInt(j)
		jp1 := fd.FromInt(j + 1)
		hNext := fd.Sub(
			fd.Mul(fd.Mul(x, fd.Sqrt(fd.Div(fd.FromInt(2), jp1))), h),
			fd.Mul(fd.Sqrt(fd.Div(jF, jp1)), hm),
		)
		hm, h = h, hNext
	}
	return h
}

// bisect finds the root of f inside [a, b], where f changes sign. The
// interval halves every step, so prec plus a few extra iterations
// always reach the ULP-scale tolerance.
func bisect[T any](fd Field[T], f func(T) T, a, b T) (T, error) {
	zero := fd.Zero()
	half := fd.FromFloat64(0.5)

	fa := f(a)
	if fd.Cmp(fa, zero) == 0 {
		return a, nil
	}
	fb := f(b)
	if fd.Cmp(fb, zero) == 0 {
		return b, nil
	}
	aNeg := fd.Cmp(fa, zero) < 0

	maxIter := int(fd.Prec()) + 64
	for iter := 0; iter < maxIter; iter++ {
		mid := fd.Mul(half, fd.Add(a, b))
		width := fd.Abs(fd.Sub(b, a))
		if fd.Cmp(width, fd.ULP(mid)) <= 0 {
			return mid, nil
		}

		fm := f(mid)
		switch {
		case fd.Cmp(fm, zero) == 0:
			return mid, nil
		case (fd.Cmp(fm, zero) < 0) == aNeg:
			a = mid
		default:
			b = mid
		}
	}

	return zero, ErrRootsNoConvergence
}
