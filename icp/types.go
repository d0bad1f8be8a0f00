package icp

// Dim is the spatial dimension of the point sets.
type Dim int

const (
	// Dim2D registers planar point sets (two columns).
	Dim2D Dim = 2
	// Dim3D registers spatial point sets (three columns).
	Dim3D Dim = 3
)

// DefaultMaxIterations is the iteration budget used by DefaultOptions.
const DefaultMaxIterations = 20

// Observer receives the registration error after each round. iteration
// counts from 1 up to MaxIterations; rmse is the sum over rows of the
// Euclidean distance between the fixed set and the transformed moving
// set.
type Observer func(iteration int, rmse float64)

// Options configures a solver instance.
type Options struct {
	// Dim is the expected spatial dimension; both input matrices must
	// have exactly int(Dim) columns.
	Dim Dim

	// MaxIterations is the fixed number of match-and-fit rounds. It
	// must be positive; the loop runs exactly this many times.
	MaxIterations int

	// Observer, when non-nil, is called once per round with the
	// 1-based iteration number and the current registration error.
	Observer Observer
}

// DefaultOptions returns the baseline configuration: 2D points,
// DefaultMaxIterations rounds, no observer.
func DefaultOptions() Options {
	return Options{
		Dim:           Dim2D,
		MaxIterations: DefaultMaxIterations,
	}
}
