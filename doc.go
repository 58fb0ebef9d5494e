// Package lvlnum is your in-memory toolbox for special functions and
// numerical integration — from Gauss quadrature rules to Jacobi elliptic
// functions and Carlson symmetric integrals.
//
// 🚀 What is lvlnum?
//
//	A modern, thread-safe library that brings together:
//		• Quadrature rules: Gauss-Legendre, Gauss-Hermite, Gauss-Laguerre
//		• Simultaneous root finding: the Aberth method with ULP tolerances
//		• Arbitrary precision: field-generic rule computation over math/big
//		• Elliptic functions: the twelve Jacobi functions and their inverses
//		• Elliptic integrals: Legendre forms K, K', E, F via Carlson forms
//		• Carlson forms: RF, RC, RJ, RD, RG for real and complex arguments
//
// ✨ Why choose lvlnum?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – memoized rule caches safe under concurrency
//   - Pure Go – no cgo, no hidden deps
//   - Honest errors – sentinel errors for every convergence failure
//
// Under the hood, everything is organized under four subpackages:
//
//	gaussquad/ — rule factories, the Aberth solver & Kahan integrators
//	jacobi/    — sn, cn, dn and friends, theta functions, twelve inverses
//	ellint/    — complete & incomplete Legendre-form elliptic integrals
//	carlson/   — the symmetric-form duplication engine everything rests on
//
// Quick ASCII example:
//
//	    ∫₋₁¹ f(x) dx  ≈  Σᵢ wᵢ·f(xᵢ)
//
//	five well-placed points integrate any degree-9 polynomial exactly.
//
// Dive into DESIGN.md for the architecture notes and examples/ for
// runnable scenarios.
//
//	go get github.com/katalvlaran/lvlnum/gaussquad
package lvlnum
