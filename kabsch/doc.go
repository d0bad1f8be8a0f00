// Package kabsch solves the closed-form rigid alignment of two point
// sets with known row correspondences (the Kabsch method).
//
// Given two n×d matrices whose i-th rows correspond, the package
// estimates the d×d rotation that best maps the target set onto the
// reference set in the least-squares sense, via singular value
// decomposition of the cross-covariance matrix. If the decomposition
// lands on a reflection (determinant −1) the last row of the rotation
// is negated to restore a proper rotation.
//
// The solver is stateless: every function takes matrices in and hands
// matrices out, never mutating its arguments. The iterative wrapper
// lives in the sibling icp package.
//
// Conventions:
//   - Points are rows: an n×d matrix holds n points of dimension d.
//   - Centroids and translations are d×1 column vectors.
//   - ApplyTransform composes as (points + translation) · rotation,
//     i.e. rotation right-multiplies row vectors.
package kabsch
