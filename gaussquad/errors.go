package gaussquad

import "errors"

var (
	// ErrOrderOutOfRange indicates a requested rule order outside [MinOrder, MaxOrder].
	ErrOrderOutOfRange = errors.New("gaussquad: rule order must be in [1, 1000]")

	// ErrRootsNoConvergence indicates the simultaneous root search hit its
	// iteration cap before the offsets shrank below the ULP tolerance.
	ErrRootsNoConvergence = errors.New("gaussquad: root search did not converge")

	// ErrLengthMismatch indicates points and weights of different lengths.
	ErrLengthMismatch = errors.New("gaussquad: points and weights must have the same length")

	// ErrUnsortedPoints indicates integration points that are not strictly ascending.
	ErrUnsortedPoints = errors.New("gaussquad: points must be strictly ascending")
)
