package kabsch

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// validatePoints rejects nil and degenerate point matrices.
// Returns the matrix dimensions on success.
func validatePoints(points *mat.Dense) (rows, cols int, err error) {
	if points == nil {
		return 0, 0, ErrNilMatrix
	}
	rows, cols = points.Dims()
	if rows == 0 || cols == 0 {
		return 0, 0, ErrEmptyInput
	}

	return rows, cols, nil
}

// Centroid returns the columnwise mean of points as a d×1 vector:
// element j is the mean of column j. Returns ErrNilMatrix for a nil
// input and ErrEmptyInput for a matrix with zero rows or columns.
func Centroid(points *mat.Dense) (*mat.VecDense, error) {
	rows, cols, err := validatePoints(points)
	if err != nil {
		return nil, err
	}

	centroid := mat.NewVecDense(cols, nil)
	column := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(column, j, points)
		centroid.SetVec(j, stat.Mean(column, nil))
	}

	return centroid, nil
}

// OptimalRotation estimates the d×d proper rotation that best aligns
// target onto ref in the least-squares sense, assuming row i of target
// corresponds to row i of ref.
//
// Both inputs must be non-nil, non-empty and of identical shape. The
// arguments are never mutated. Returns ErrSVDFailed when the
// decomposition of the cross-covariance matrix does not converge.
func OptimalRotation(ref, target *mat.Dense) (*mat.Dense, error) {
	refRows, refCols, err := validatePoints(ref)
	if err != nil {
		return nil, err
	}
	tarRows, tarCols, err := validatePoints(target)
	if err != nil {
		return nil, err
	}
	if refRows != tarRows || refCols != tarCols {
		return nil, ErrShapeMismatch
	}

	centroidRef, err := Centroid(ref)
	if err != nil {
		return nil, err
	}
	centroidTar, err := Centroid(target)
	if err != nil {
		return nil, err
	}

	// Center both sets at their centroids.
	refCentered := mat.NewDense(refRows, refCols, nil)
	tarCentered := mat.NewDense(tarRows, tarCols, nil)
	for i := 0; i < refRows; i++ {
		for j := 0; j < refCols; j++ {
			refCentered.Set(i, j, ref.At(i, j)-centroidRef.AtVec(j))
			tarCentered.Set(i, j, target.At(i, j)-centroidTar.AtVec(j))
		}
	}

	// Cross-covariance H = targetᵀ · ref over the centered sets.
	var cov mat.Dense
	cov.Mul(tarCentered.T(), refCentered)

	// If svd(H) = (U, S, V) then the rotation is R = V · Uᵀ.
	var svd mat.SVD
	if ok := svd.Factorize(&cov, mat.SVDFull); !ok {
		return nil, ErrSVDFailed
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	rotation := mat.NewDense(refCols, refCols, nil)
	rotation.Mul(&v, u.T())

	// A negative determinant means the decomposition picked a
	// reflection; negating the last row restores a proper rotation.
	if mat.Det(rotation) < 0 {
		last := refCols - 1
		for j := 0; j < refCols; j++ {
			rotation.Set(last, j, -rotation.At(last, j))
		}
	}

	return rotation, nil
}

// OptimalTranslation returns the d×1 translation that pairs with the
// given rotation: t = centroid(ref) − rotation · centroid(target).
//
// ref and target must share a shape, and rotation must be d×d for d
// columns of ref. The arguments are never mutated.
func OptimalTranslation(ref, target, rotation *mat.Dense) (*mat.VecDense, error) {
	refRows, refCols, err := validatePoints(ref)
	if err != nil {
		return nil, err
	}
	tarRows, tarCols, err := validatePoints(target)
	if err != nil {
		return nil, err
	}
	if refRows != tarRows || refCols != tarCols {
		return nil, ErrShapeMismatch
	}
	if rotation == nil {
		return nil, ErrNilMatrix
	}
	if r, c := rotation.Dims(); r != refCols || c != refCols {
		return nil, ErrShapeMismatch
	}

	centroidRef, err := Centroid(ref)
	if err != nil {
		return nil, err
	}
	centroidTar, err := Centroid(target)
	if err != nil {
		return nil, err
	}

	rotated := mat.NewVecDense(refCols, nil)
	rotated.MulVec(rotation, centroidTar)

	translation := mat.NewVecDense(refCols, nil)
	translation.SubVec(centroidRef, rotated)

	return translation, nil
}

// RMSE returns the registration error between two equally shaped point
// matrices: the sum over rows of the Euclidean norm of the row
// difference. Returns (0, ErrShapeMismatch) when the shapes differ.
func RMSE(a, b *mat.Dense) (float64, error) {
	aRows, aCols, err := validatePoints(a)
	if err != nil {
		return 0, err
	}
	bRows, bCols, err := validatePoints(b)
	if err != nil {
		return 0, err
	}
	if aRows != bRows || aCols != bCols {
		return 0, ErrShapeMismatch
	}

	diff := make([]float64, aCols)
	var total float64
	for i := 0; i < aRows; i++ {
		for j := 0; j < aCols; j++ {
			diff[j] = a.At(i, j) - b.At(i, j)
		}
		total += floats.Norm(diff, 2)
	}

	return total, nil
}

// ApplyTransform returns (points + translation) · rotation, leaving the
// arguments untouched. Points are rows, so the rotation
// right-multiplies.
//
// The translation may be given in three shapes:
//   - n×d, matching points: added elementwise;
//   - d×1 column vector: element j is added to every row's column j;
//   - 1×d row vector: likewise, read across.
//
// Any other translation shape, or a rotation that is not d×d, yields
// ErrShapeMismatch. A *mat.VecDense translation (d×1) satisfies the
// column-vector case.
func ApplyTransform(points *mat.Dense, translation mat.Matrix, rotation *mat.Dense) (*mat.Dense, error) {
	rows, cols, err := validatePoints(points)
	if err != nil {
		return nil, err
	}
	if rotation == nil || translation == nil {
		return nil, ErrNilMatrix
	}
	if r, c := rotation.Dims(); r != cols || c != cols {
		return nil, ErrShapeMismatch
	}

	shifted := mat.NewDense(rows, cols, nil)
	tRows, tCols := translation.Dims()
	switch {
	case tRows == rows && tCols == cols:
		shifted.Add(points, translation)
	case tCols == 1 && tRows == cols:
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				shifted.Set(i, j, points.At(i, j)+translation.At(j, 0))
			}
		}
	case tRows == 1 && tCols == cols:
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				shifted.Set(i, j, points.At(i, j)+translation.At(0, j))
			}
		}
	default:
		return nil, ErrShapeMismatch
	}

	out := mat.NewDense(rows, cols, nil)
	out.Mul(shifted, rotation)

	return out, nil
}
