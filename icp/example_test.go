package icp_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/optimumkit/pointreg/icp"
)

// Example registers a unit square onto itself and watches the error
// per round. An already aligned pair stays at zero error and an
// identity transform.
func Example() {
	square := mat.NewDense(4, 2, []float64{
		0, 0,
		1, 0,
		1, 1,
		0, 1,
	})

	opts := icp.Options{
		Dim:           icp.Dim2D,
		MaxIterations: 3,
		Observer: func(iteration int, rmse float64) {
			fmt.Printf("round %d error %.1f\n", iteration, rmse)
		},
	}

	solver, err := icp.New(square, mat.DenseCopyOf(square), opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := solver.Solve(); err != nil {
		fmt.Println("error:", err)
		return
	}

	identity := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	fmt.Println("rotation is identity:", mat.EqualApprox(solver.Rotation(), identity, 1e-9))

	// Output:
	// round 1 error 0.0
	// round 2 error 0.0
	// round 3 error 0.0
	// rotation is identity: true
}

// ExampleNew shows the constructor rejecting mismatched shapes before
// any work is done.
func ExampleNew() {
	ref := mat.NewDense(4, 2, []float64{
		0, 0,
		1, 0,
		1, 1,
		0, 1,
	})
	target := mat.NewDense(3, 2, []float64{
		0, 0,
		1, 0,
		1, 1,
	})

	_, err := icp.New(ref, target, icp.DefaultOptions())
	fmt.Println(err)

	// Output:
	// icp: shape mismatch
}
