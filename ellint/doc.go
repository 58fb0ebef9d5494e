// Package ellint evaluates Legendre-form elliptic integrals — the
// complete integrals K, K', E, the incomplete integrals F(φ|m) and
// E(φ|m), and the elliptic nome q — for the parameter convention m = k².
//
// 🚀 Why Legendre forms?
//
//	K and E show up everywhere a circle refuses to stay a circle:
//	  • Pendulum periods at large amplitude
//	  • Perimeters of ellipses
//	  • Potentials of charged rings & inductance of loops
//	  • Quarter periods and nome of the Jacobi elliptic functions
//
// ✨ Key features:
//   - every integral reduces to a Carlson symmetric form, so accuracy
//     rides on the duplication engine in lvlnum/carlson
//   - small-parameter series switches (A&S 17.3.11, 17.3.21) where the
//     Carlson reduction would lose digits
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlnum/ellint"
//
//	period := 4 * math.Sqrt(l/g) * ellint.BigK(m)
//
// All functions take the parameter m, not the modulus k; callers holding
// a modulus should pass k*k.
package ellint
