package jacobi

import "errors"

// ErrThetaNoConvergence indicates the theta function Fourier series did
// not converge within its term cap. With a finite nome |q| < 1 the
// series converges in a handful of terms, so this error only surfaces
// for NaN or infinite arguments.
var ErrThetaNoConvergence = errors.New("jacobi: theta series did not converge")
