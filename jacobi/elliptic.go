package jacobi

// Parameter thresholds selecting the series algorithms. Within 1e-9 of
// m = 0 or m = 1 the truncated A&S expansions are accurate to double
// precision and much cheaper than the theta route.
const (
	nearZeroThreshold = 1.0e-9
	nearOneThreshold  = 1.0 - nearZeroThreshold
)

// algorithm evaluates the principal copolar trio for one parameter
// region.
type algorithm interface {
	valuesN(u float64) (CopolarN, error)
}

// Elliptic evaluates the twelve Jacobi elliptic functions for a fixed
// parameter m. Build it once per parameter; evaluation at different
// arguments reuses the precomputed quarter period and nome.
type Elliptic struct {
	m   float64
	alg algorithm
}

// Build selects the evaluation algorithm for parameter m and returns a
// ready-to-use evaluator.
//
// The five regions are mutually exclusive:
//
//	m < 0            — A&S 16.10 negative-parameter transform
//	m > 1            — A&S 16.11 reciprocal-parameter transform
//	m ≤ 1e-9         — A&S 16.13 circular series
//	m ≥ 1 - 1e-9     — A&S 16.15 hyperbolic series
//	otherwise        — theta functions at the nome q(m)
func Build(m float64) (*Elliptic, error) {
	alg, err := selectAlgorithm(m)
	if err != nil {
		return nil, err
	}
	return &Elliptic{m: m, alg: alg}, nil
}

func selectAlgorithm(m float64) (algorithm, error) {
	switch {
	case m < 0:
		return newNegativeParameter(m)
	case m > 1:
		return newBigParameter(m)
	case m < nearZeroThreshold:
		return nearZero{m: m}, nil
	case m > nearOneThreshold:
		return nearOne{m1: 1 - m}, nil
	default:
		return newBounded(m)
	}
}

// Parameter returns the parameter m the evaluator was built for.
func (e *Elliptic) Parameter() float64 { return e.m }

// ValuesN returns the principal trio sn(u|m), cn(u|m), dn(u|m).
func (e *Elliptic) ValuesN(u float64) (CopolarN, error) {
	return e.alg.valuesN(u)
}

// ValuesS returns the trio cs(u|m), ds(u|m), ns(u|m).
func (e *Elliptic) ValuesS(u float64) (CopolarS, error) {
	n, err := e.alg.valuesN(u)
	if err != nil {
		return CopolarS{}, err
	}
	return copolarSFromN(n), nil
}

// ValuesC returns the trio dc(u|m), nc(u|m), sc(u|m).
func (e *Elliptic) ValuesC(u float64) (CopolarC, error) {
	n, err := e.alg.valuesN(u)
	if err != nil {
		return CopolarC{}, err
	}
	return copolarCFromN(n), nil
}

// ValuesD returns the trio nd(u|m), sd(u|m), cd(u|m).
func (e *Elliptic) ValuesD(u float64) (CopolarD, error) {
	n, err := e.alg.valuesN(u)
	if err != nil {
		return CopolarD{}, err
	}
	return copolarDFromN(n), nil
}
