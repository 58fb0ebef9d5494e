// Package carlson evaluates the Carlson symmetric forms of elliptic
// integrals — RF, RC, RJ, RD and RG — for real and complex arguments.
//
// 🚀 What are Carlson forms?
//
//	Symmetric standard forms that every Legendre-form elliptic integral
//	(K, E, F, Π) reduces to.  They are the numerical workhorse behind:
//	  • Complete & incomplete elliptic integrals
//	  • Inverse Jacobi elliptic functions
//	  • Arc lengths of ellipses and geodesy computations
//
// ✨ Key features:
//   - duplication theorem iteration: each step quarters the distance to
//     the mean, so a handful of steps reach machine precision
//   - seventh-order Taylor tail (DLMF 19.36) after the iteration stops
//   - single complex-valued engine; real entry points validate the real
//     domain and return NaN outside it
//   - RC Cauchy principal value for negative second argument
//   - RG assembled from RF and RD with a cancellation-avoiding permutation
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlnum/carlson"
//
//	k := carlson.RF(0, 1-m, 1)          // complete integral K(m)
//	w := carlson.RJComplex(x, y, z, p)  // full complex plane
//
// Precision: relative error a few ULP for well-conditioned arguments.
// The iteration is capped at 16 duplications; arguments that have not met
// the convergence criterion by then (only possible far outside the
// intended domain) still get the Taylor tail evaluated on the last
// iterate.
package carlson
