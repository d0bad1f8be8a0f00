package icp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/optimumkit/pointreg/kabsch"
	"github.com/optimumkit/pointreg/point"
)

// ICP holds the state of one registration run: the fixed target set,
// the moving reference set and the transform accumulated so far.
type ICP struct {
	ref    *mat.Dense // original moving set, kept for the caller
	target *mat.Dense // fixed set
	cur    *mat.Dense // moving set under the accumulated transform

	rotation    *mat.Dense
	translation *mat.VecDense

	opts      Options
	remaining int
}

// New validates the inputs and prepares a solver. Both matrices must be
// non-nil, non-empty, equally shaped and have exactly int(opts.Dim)
// columns; opts.MaxIterations must be positive. The matrices are copied,
// so the caller's data is never touched.
func New(ref, target *mat.Dense, opts Options) (*ICP, error) {
	if ref == nil || target == nil {
		return nil, ErrNilMatrix
	}
	refRows, refCols := ref.Dims()
	tarRows, tarCols := target.Dims()
	if refRows == 0 || refCols == 0 || tarRows == 0 || tarCols == 0 {
		return nil, ErrEmptyInput
	}
	if refRows != tarRows || refCols != tarCols {
		return nil, ErrShapeMismatch
	}
	if opts.Dim != Dim2D && opts.Dim != Dim3D {
		return nil, ErrInvalidDim
	}
	if refCols != int(opts.Dim) {
		return nil, ErrInvalidDim
	}
	if opts.MaxIterations <= 0 {
		return nil, ErrBadIterations
	}

	dim := int(opts.Dim)
	rotation := mat.NewDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		rotation.Set(i, i, 1)
	}

	return &ICP{
		ref:         mat.DenseCopyOf(ref),
		target:      mat.DenseCopyOf(target),
		cur:         mat.DenseCopyOf(ref),
		rotation:    rotation,
		translation: mat.NewVecDense(dim, nil),
		opts:        opts,
		remaining:   opts.MaxIterations,
	}, nil
}

// Solve runs the match-and-fit loop until the iteration budget is
// spent. Each round pairs the fixed points with their nearest moving
// points, fits a rotation and translation to the pairing, folds the
// rotation into the accumulated one by angle, overwrites the
// translation, re-transforms the moving set and reports the error to
// the Observer.
//
// The loop never exits early on convergence. Calling Solve again after
// the budget is spent returns nil without changing anything.
func (ic *ICP) Solve() error {
	for ic.remaining > 0 {
		closest, err := ic.match()
		if err != nil {
			return fmt.Errorf("icp: match: %w", err)
		}

		newRot, err := kabsch.OptimalRotation(closest, ic.target)
		if err != nil {
			return fmt.Errorf("icp: fit rotation: %w", err)
		}
		newTrans, err := kabsch.OptimalTranslation(closest, ic.target, newRot)
		if err != nil {
			return fmt.Errorf("icp: fit translation: %w", err)
		}

		// Fold the new rotation into the accumulated one by adding the
		// in-plane angles and rebuilding the matrix from the sum.
		angle := rotationAngle(ic.rotation) + rotationAngle(newRot)
		ic.rotation = rotationFromAngle(angle, int(ic.opts.Dim))
		ic.translation = newTrans

		cur, err := kabsch.ApplyTransform(ic.cur, ic.translation, ic.rotation)
		if err != nil {
			return fmt.Errorf("icp: apply transform: %w", err)
		}
		ic.cur = cur

		rmse, err := kabsch.RMSE(ic.target, ic.cur)
		if err != nil {
			return fmt.Errorf("icp: rmse: %w", err)
		}

		ic.remaining--
		if ic.opts.Observer != nil {
			ic.opts.Observer(ic.opts.MaxIterations-ic.remaining, rmse)
		}
	}

	return nil
}

// Rotation returns a copy of the accumulated rotation matrix. Before
// the first Solve it is the identity.
func (ic *ICP) Rotation() *mat.Dense {
	return mat.DenseCopyOf(ic.rotation)
}

// Translation returns a copy of the accumulated translation vector.
// Before the first Solve it is zero.
func (ic *ICP) Translation() *mat.VecDense {
	out := mat.NewVecDense(ic.translation.Len(), nil)
	out.CopyVec(ic.translation)

	return out
}

// match pairs every fixed point with the nearest point of the current
// moving set and returns the paired moving points, one row per fixed
// point, in fixed-row order. Ties go to the lowest moving-row index.
func (ic *ICP) match() (*mat.Dense, error) {
	rows, cols := ic.target.Dims()

	refPoints := make([]point.Point, rows)
	tarPoints := make([]point.Point, rows)
	for r := 0; r < rows; r++ {
		ref := point.New()
		tar := point.New()
		ref.Prepare(cols)
		tar.Prepare(cols)
		for c := 0; c < cols; c++ {
			if err := ref.SetValue(ic.cur.At(r, c), c); err != nil {
				return nil, err
			}
			if err := tar.SetValue(ic.target.At(r, c), c); err != nil {
				return nil, err
			}
		}
		refPoints[r] = ref
		tarPoints[r] = tar
	}

	closest := mat.NewDense(rows, cols, nil)
	for i := range tarPoints {
		bestDistance := math.Inf(1)
		var best point.Point
		for j := range refPoints {
			dist, err := tarPoints[i].DistanceTo(refPoints[j])
			if err != nil {
				return nil, err
			}
			if dist < bestDistance {
				bestDistance = dist
				best = refPoints[j]
			}
		}
		for c := 0; c < cols; c++ {
			closest.Set(i, c, best.At(c))
		}
	}

	return closest, nil
}

// rotationAngle extracts the in-plane rotation angle from rot, in
// degrees. The asin argument is clamped against float drift.
func rotationAngle(rot *mat.Dense) float64 {
	s := rot.At(1, 0)
	if s > 1 {
		s = 1
	} else if s < -1 {
		s = -1
	}

	return math.Asin(s) * 180 / math.Pi
}

// rotationFromAngle builds a size×size rotation by the given angle (in
// degrees) in the xy plane. Rows and columns beyond the first two stay
// identity.
func rotationFromAngle(angle float64, size int) *mat.Dense {
	rot := mat.NewDense(size, size, nil)
	for i := 0; i < size; i++ {
		rot.Set(i, i, 1)
	}
	sin, cos := math.Sincos(angle * math.Pi / 180)
	rot.Set(0, 0, cos)
	rot.Set(0, 1, -sin)
	rot.Set(1, 0, sin)
	rot.Set(1, 1, cos)

	return rot
}
