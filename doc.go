// Package pointreg aligns two point sets (2D or 3D) with a rigid
// transform (a rotation matrix plus a translation vector) estimated by
// the Iterative Closest Point (ICP) algorithm.
//
// 🚀 What is pointreg?
//
//	A small, deterministic registration library that alternates two
//	steps for a fixed number of rounds:
//		• match: pair every target point with its nearest reference
//		  point (brute-force linear search, first-minimum tie-break)
//		• fit:   solve the closed-form least-squares rotation and
//		  translation for the paired sets (Kabsch method via singular
//		  value decomposition)
//	The accumulated rotation and translation are exposed once the
//	iteration budget is spent.
//
// ✨ Why choose pointreg?
//
//   - Minimal API – two matrices in, a rotation and a translation out
//   - Deterministic – fixed loop orders, explicit tie-breaks, no randomness
//   - Fail-fast – sentinel errors on every invalid input, no panics
//   - Pure compute – no I/O, no goroutines, no global state
//
// Under the hood, everything is organized under three subpackages:
//
//	point/  — fixed-length coordinate tuples with subtraction & distance
//	kabsch/ — the stateless optimal-rotation/translation solver
//	icp/    — the iterative matching-and-fitting orchestrator
//
// Quick ASCII example:
//
//	    reference            target
//	    ○───○                    ●───●
//	    │   │    ──align──▶      │   │
//	    ○───○                    ●───●
//
//	a unit square registered onto its displaced twin.
//
// Dense matrices, singular value decomposition and determinants are
// supplied by gonum (gonum.org/v1/gonum/mat); pointreg adds no matrix
// implementation of its own.
//
//	go get github.com/optimumkit/pointreg/icp
package pointreg
