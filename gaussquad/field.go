package gaussquad

import (
	"math"
	"math/big"
)

// Field describes the arithmetic a rule computation needs, so the same
// algorithms run over float64 and over arbitrary-precision values.
// Implementations must be usable by value and safe for concurrent use.
type Field[T any] interface {
	Zero() T
	One() T
	FromInt(v int) T
	FromFloat64(v float64) T
	Float64(a T) float64
	Copy(a T) T

	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Div(a, b T) T
	Neg(a T) T
	Sqrt(a T) T
	Abs(a T) T

	// Cmp returns -1, 0 or +1 as a is less than, equal to or greater
	// than b.
	Cmp(a, b T) int
	// ULP returns the distance from |a| to the next representable
	// value at the field's precision.
	ULP(a T) T
	// Prec returns the mantissa length in bits.
	Prec() uint
	// Pi returns π at the field's precision.
	Pi() T
}

// Float64Field implements Field over machine doubles.
type Float64Field struct{}

func (Float64Field) Zero() float64                 { return 0 }
func (Float64Field) One() float64                  { return 1 }
func (Float64Field) FromInt(v int) float64         { return float64(v) }
func (Float64Field) FromFloat64(v float64) float64 { return v }
func (Float64Field) Float64(a float64) float64     { return a }
func (Float64Field) Copy(a float64) float64        { return a }
func (Float64Field) Add(a, b float64) float64      { return a + b }
func (Float64Field) Sub(a, b float64) float64      { return a - b }
func (Float64Field) Mul(a, b float64) float64      { return a * b }
func (Float64Field) Div(a, b float64) float64      { return a / b }
func (Float64Field) Neg(a float64) float64         { return -a }
func (Float64Field) Sqrt(a float64) float64        { return math.Sqrt(a) }
func (Float64Field) Abs(a float64) float64         { return math.Abs(a) }
func (Float64Field) ULP(a float64) float64         { return ulp(a) }
func (Float64Field) Prec() uint                    { return 53 }
func (Float64Field) Pi() float64                   { return math.Pi }

func (Float64Field) Cmp(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// BigFloatField implements Field over *big.Float values at a fixed
// binary precision. Sqrt panics on negative operands, as big.Float
// does; the rule computations only take square roots of nonnegative
// quantities.
type BigFloatField struct {
	prec uint
	pi   *big.Float
}

// NewBigFloatField builds a field with enough mantissa bits to carry
// the requested number of decimal digits, plus guard bits.
func NewBigFloatField(decimalDigits int) BigFloatField {
	prec := uint(math.Ceil(float64(decimalDigits)*math.Log2(10))) + 16
	return BigFloatField{prec: prec, pi: agmPi(prec)}
}

func (f BigFloatField) new() *big.Float { return new(big.Float).SetPrec(f.prec) }

func (f BigFloatField) Zero() *big.Float { return f.new() }
func (f BigFloatField) One() *big.Float  { return f.new().SetInt64(1) }

func (f BigFloatField) FromInt(v int) *big.Float         { return f.new().SetInt64(int64(v)) }
func (f BigFloatField) FromFloat64(v float64) *big.Float { return f.new().SetFloat64(v) }

func (f BigFloatField) Float64(a *big.Float) float64 {
	v, _ := a.Float64()
	return v
}

func (f BigFloatField) Copy(a *big.Float) *big.Float { return f.new().Set(a) }

func (f BigFloatField) Add(a, b *big.Float) *big.Float { return f.new().Add(a, b) }
func (f BigFloatField) Sub(a, b *big.Float) *big.Float { return f.new().Sub(a, b) }
func (f BigFloatField) Mul(a, b *big.Float) *big.Float { return f.new().Mul(a, b) }
func (f BigFloatField) Div(a, b *big.Float) *big.Float { return f.new().Quo(a, b) }
func (f BigFloatField) Neg(a *big.Float) *big.Float    { return f.new().Neg(a) }
func (f BigFloatField) Sqrt(a *big.Float) *big.Float   { return f.new().Sqrt(a) }
func (f BigFloatField) Abs(a *big.Float) *big.Float    { return f.new().Abs(a) }

func (f BigFloatField) Cmp(a, b *big.Float) int { return a.Cmp(b) }

func (f BigFloatField) ULP(a *big.Float) *big.Float {
	exp := 0
	if a.Sign() != 0 {
		exp = a.MantExp(nil)
	}
	one := new(big.Float).SetPrec(f.prec).SetInt64(1)
	return f.new().SetMantExp(one, exp-int(f.prec))
}

func (f BigFloatField) Prec() uint { return f.prec }

func (f BigFloatField) Pi() *big.Float { return f.new().Set(f.pi) }

// agmPi computes π to prec bits with the Gauss-Legendre AGM iteration.
// Convergence is quadratic, so the digit count doubles every pass.
func agmPi(prec uint) *big.Float {
	wp := prec + 32 // working precision with guard bits

	one := new(big.Float).SetPrec(wp).SetInt64(1)
	half := new(big.Float).SetPrec(wp).SetFloat64(0.5)

	a := new(big.Float).SetPrec(wp).SetInt64(1)
	b := new(big.Float).SetPrec(wp).Sqrt(half)
	t := new(big.Float).SetPrec(wp).SetFloat64(0.25)
	p := new(big.Float).SetPrec(wp).SetInt64(1)

	// iterate until a and b agree to the working precision, not just
	// the target precision: the final (a+b)²/(4t) amplifies the residual
	// well past one target-precision ULP otherwise
	limit := new(big.Float).SetPrec(wp).SetMantExp(one, -int(wp))
	diff := new(big.Float).SetPrec(wp)
	for i := 0; i < 100; i++ {
		diff.Sub(a, b)
		if diff.Abs(diff).Cmp(limit) < 0 {
			break
		}
		aNext := new(big.Float).SetPrec(wp).Add(a, b)
		aNext.Mul(aNext, half)

		b.Mul(a, b)
		b.Sqrt(b)

		diff.Sub(a, aNext)
		diff.Mul(diff, diff)
		diff.Mul(diff, p)
		t.Sub(t, diff)

		p.Add(p, p)
		a = aNext
	}

	sum := new(big.Float).SetPrec(wp).Add(a, b)
	sum.Mul(sum, sum)
	quarterT := new(big.Float).SetPrec(wp).Add(t, t)
	quarterT.Add(quarterT, quarterT)
	pi := sum.Quo(sum, quarterT)

	return new(big.Float).SetPrec(prec).Set(pi)
}
