// Package jacobi computes the twelve Jacobi elliptic functions
// sn, cn, dn, cs, ds, ns, dc, nc, sc, nd, sd, cd and their inverses,
// for any real parameter m.
//
// 🚀 What are Jacobi elliptic functions?
//
//	Doubly periodic generalizations of sine and cosine.  They solve the
//	pendulum equation exactly and appear in:
//	  • Large-amplitude oscillators & the spinning top
//	  • Conformal maps of rectangles
//	  • Soliton solutions of the KdV equation
//	  • Filter design (elliptic / Cauer filters)
//
// ✨ Key features:
//   - one dispatcher, five algorithms: the parameter m picks the right
//     evaluation strategy at construction time
//   - m < 0 and m > 1 handled through the A&S 16.10 / 16.11 transforms
//   - |m| or |1−m| below 1e-9 handled by the A&S 16.13 / 16.15 series
//   - the generic range uses Jacobi theta functions at the nome q(m)
//   - twelve inverse functions via Carlson RF (DLMF 19.25)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlnum/jacobi"
//
//	je, err := jacobi.Build(0.7)
//	if err != nil { ... }
//	n, err := je.ValuesN(1.4) // principal trio sn, cn, dn
//	u := je.ArcSn(0.5)        // inverse of sn
//
// Functions come in copolar trios: ValuesN returns (sn, cn, dn),
// ValuesS returns (cs, ds, ns), ValuesC returns (dc, nc, sc) and
// ValuesD returns (nd, sd, cd).  The nine subsidiary functions are exact
// ratios of the principal trio, so each trio costs one evaluation.
//
// Errors: ErrThetaNoConvergence if the theta Fourier series fails to
// converge (only reachable for non-finite input).
package jacobi
