package jacobi

import "math"

// maxThetaTerms caps the theta Fourier series. The terms decay like
// q^(n²), so for any nome below the dispatcher's reach the series is
// done in well under ten terms; the cap only trips on non-finite input.
const maxThetaTerms = 100

// ulpOne is the distance from 1.0 to the next representable float64.
const ulpOne = 0x1p-52

// Theta holds the values of the four Jacobi theta functions θ₁..θ₄ at
// one point.
type Theta struct {
	T1 float64
	T2 float64
	T3 float64
	T4 float64
}

// ThetaEvaluator computes the four Jacobi theta functions for a fixed
// nome q via their Fourier series (DLMF 20.2.1-20.2.4).
type ThetaEvaluator struct {
	q       float64 // nome
	qSquare float64 // q²
	qFourth float64 // q^(1/4)
}

// NewThetaEvaluator builds an evaluator for nome q, |q| < 1.
func NewThetaEvaluator(q float64) ThetaEvaluator {
	return ThetaEvaluator{q: q, qSquare: q * q, qFourth: math.Pow(q, 0.25)}
}

// Values evaluates θ₁(z), θ₂(z), θ₃(z), θ₄(z).
//
// The series run until the q^(n²) weight drops below one ULP of the
// leading term; the three power sequences q^(n²), q^(2n) and q^(n(n+1))
// are maintained incrementally so each term stays cheap.
func (te ThetaEvaluator) Values(z float64) (Theta, error) {
	sin1, cos1 := math.Sincos(z)

	// n = 0 terms
	sum1 := sin1
	sum2 := cos1
	sum3 := 0.0
	sum4 := 0.0

	sign := 1.0
	qNN := 1.0   // q^(n²)
	qTwoN := 1.0 // q^(2n)
	qNNp1 := 1.0 // q^(n(n+1))
	for n := 1; n <= maxThetaTerms; n++ {
		sign = -sign
		qNN *= qTwoN * te.q
		qTwoN *= te.qSquare
		qNNp1 *= qTwoN

		angle := float64(2*n) * z
		cosE := math.Cos(angle)              // even multiple, 2nz
		sinO, cosO := math.Sincos(angle + z) // odd multiple, (2n+1)z

		sum1 += sign * qNNp1 * sinO
		sum2 += qNNp1 * cosO
		sum3 += qNN * cosE
		sum4 += sign * qNN * cosE

		if qNN <= ulpOne {
			return Theta{
				T1: 2 * te.qFourth * sum1,
				T2: 2 * te.qFourth * sum2,
				T3: 1 + 2*sum3,
				T4: 1 + 2*sum4,
			}, nil
		}
	}

	return Theta{}, ErrThetaNoConvergence
}
