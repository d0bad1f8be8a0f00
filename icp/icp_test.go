package icp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/optimumkit/pointreg/icp"
)

func unitSquare() *mat.Dense {
	return mat.NewDense(4, 2, []float64{
		0, 0,
		1, 0,
		1, 1,
		0, 1,
	})
}

// TestNew_Validation walks every constructor rejection.
func TestNew_Validation(t *testing.T) {
	square := unitSquare()
	opts := icp.DefaultOptions()

	_, err := icp.New(nil, square, opts)
	assert.ErrorIs(t, err, icp.ErrNilMatrix)

	_, err = icp.New(square, nil, opts)
	assert.ErrorIs(t, err, icp.ErrNilMatrix)

	_, err = icp.New(&mat.Dense{}, square, opts)
	assert.ErrorIs(t, err, icp.ErrEmptyInput)

	tall := mat.NewDense(5, 2, nil)
	_, err = icp.New(square, tall, opts)
	assert.ErrorIs(t, err, icp.ErrShapeMismatch)

	cube := mat.NewDense(4, 3, nil)
	_, err = icp.New(cube, mat.DenseCopyOf(cube), opts)
	assert.ErrorIs(t, err, icp.ErrInvalidDim, "2D options must reject 3-column data")

	badDim := opts
	badDim.Dim = 4
	_, err = icp.New(square, unitSquare(), badDim)
	assert.ErrorIs(t, err, icp.ErrInvalidDim)

	badIter := opts
	badIter.MaxIterations = 0
	_, err = icp.New(square, unitSquare(), badIter)
	assert.ErrorIs(t, err, icp.ErrBadIterations)
}

// TestSolve_AlreadyAligned registers a set onto itself: every round
// must report an error of zero and the accumulated transform must stay
// at identity and zero.
func TestSolve_AlreadyAligned(t *testing.T) {
	const rounds = 5

	var iterations []int
	var errors []float64
	opts := icp.Options{
		Dim:           icp.Dim2D,
		MaxIterations: rounds,
		Observer: func(iteration int, rmse float64) {
			iterations = append(iterations, iteration)
			errors = append(errors, rmse)
		},
	}

	solver, err := icp.New(unitSquare(), unitSquare(), opts)
	require.NoError(t, err)
	require.NoError(t, solver.Solve())

	require.Len(t, iterations, rounds, "the loop never exits early")
	for i, it := range iterations {
		assert.Equal(t, i+1, it, "iterations count from 1")
	}
	for _, rmse := range errors {
		assert.InDelta(t, 0, rmse, 1e-9)
	}

	identity := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	assert.True(t, mat.EqualApprox(solver.Rotation(), identity, 1e-9))
	trans := solver.Translation()
	assert.InDelta(t, 0, trans.AtVec(0), 1e-9)
	assert.InDelta(t, 0, trans.AtVec(1), 1e-9)
}

// TestSolve_AlreadyAligned3D runs the aligned case in three dimensions
// with a cube.
func TestSolve_AlreadyAligned3D(t *testing.T) {
	cube := mat.NewDense(8, 3, []float64{
		1, 1, 1,
		1, 1, -1,
		1, -1, 1,
		1, -1, -1,
		-1, 1, 1,
		-1, 1, -1,
		-1, -1, 1,
		-1, -1, -1,
	})

	var calls int
	opts := icp.Options{
		Dim:           icp.Dim3D,
		MaxIterations: 3,
		Observer: func(_ int, rmse float64) {
			calls++
			assert.InDelta(t, 0, rmse, 1e-9)
		},
	}

	solver, err := icp.New(cube, mat.DenseCopyOf(cube), opts)
	require.NoError(t, err)
	require.NoError(t, solver.Solve())
	assert.Equal(t, 3, calls)

	identity := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
	assert.True(t, mat.EqualApprox(solver.Rotation(), identity, 1e-9))
}

// TestSolve_QuarterTurnMechanics runs the rotated-square scenario and
// checks the loop mechanics: a full budget of observer calls, a proper
// orthogonal accumulated rotation and untouched inputs.
func TestSolve_QuarterTurnMechanics(t *testing.T) {
	ref := unitSquare()
	// The square turned 90° counterclockwise about the origin.
	target := mat.NewDense(4, 2, []float64{
		0, 0,
		0, 1,
		-1, 1,
		-1, 0,
	})
	refSnapshot := mat.DenseCopyOf(ref)
	tarSnapshot := mat.DenseCopyOf(target)

	const rounds = 10
	var calls int
	opts := icp.Options{
		Dim:           icp.Dim2D,
		MaxIterations: rounds,
		Observer: func(iteration int, rmse float64) {
			calls++
			assert.Equal(t, calls, iteration)
			assert.False(t, math.IsNaN(rmse))
			assert.GreaterOrEqual(t, rmse, 0.0)
		},
	}

	solver, err := icp.New(ref, target, opts)
	require.NoError(t, err)
	require.NoError(t, solver.Solve())

	assert.Equal(t, rounds, calls)

	rot := solver.Rotation()
	assert.InDelta(t, 1.0, mat.Det(rot), 1e-9, "accumulated rotation must stay proper")
	var gram mat.Dense
	gram.Mul(rot.T(), rot)
	identity := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	assert.True(t, mat.EqualApprox(&gram, identity, 1e-9), "accumulated rotation must stay orthogonal")

	assert.True(t, mat.Equal(ref, refSnapshot), "reference input must not be mutated")
	assert.True(t, mat.Equal(target, tarSnapshot), "target input must not be mutated")
}

// TestSolve_SecondCallIsNoOp verifies the one-shot contract: once the
// budget is spent, Solve returns nil and changes nothing.
func TestSolve_SecondCallIsNoOp(t *testing.T) {
	var calls int
	opts := icp.Options{
		Dim:           icp.Dim2D,
		MaxIterations: 4,
		Observer:      func(int, float64) { calls++ },
	}

	solver, err := icp.New(unitSquare(), unitSquare(), opts)
	require.NoError(t, err)
	require.NoError(t, solver.Solve())

	rotBefore := solver.Rotation()
	transBefore := solver.Translation()
	callsBefore := calls

	require.NoError(t, solver.Solve())

	assert.Equal(t, callsBefore, calls, "a spent solver must not run more rounds")
	assert.True(t, mat.Equal(solver.Rotation(), rotBefore))
	assert.True(t, mat.Equal(solver.Translation(), transBefore))
}

// TestAccessors_BeforeSolve checks the initial transform and that the
// returned copies do not alias solver state.
func TestAccessors_BeforeSolve(t *testing.T) {
	solver, err := icp.New(unitSquare(), unitSquare(), icp.DefaultOptions())
	require.NoError(t, err)

	rot := solver.Rotation()
	identity := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	assert.True(t, mat.Equal(rot, identity))

	trans := solver.Translation()
	assert.Equal(t, 0.0, trans.AtVec(0))
	assert.Equal(t, 0.0, trans.AtVec(1))

	// Writing through the copies must not reach the solver.
	rot.Set(0, 0, 42)
	trans.SetVec(0, 42)
	assert.True(t, mat.Equal(solver.Rotation(), identity))
	assert.Equal(t, 0.0, solver.Translation().AtVec(0))
}

// TestDefaultOptions pins the baseline configuration.
func TestDefaultOptions(t *testing.T) {
	opts := icp.DefaultOptions()
	assert.Equal(t, icp.Dim2D, opts.Dim)
	assert.Equal(t, icp.DefaultMaxIterations, opts.MaxIterations)
	assert.Nil(t, opts.Observer)
}
