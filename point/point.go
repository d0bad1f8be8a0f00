package point

import "gonum.org/v1/gonum/floats"

// Point is an ordered sequence of real coordinates. The zero value has
// no coordinates; size it with Prepare (or use New2D/New3D) before any
// indexed write.
type Point struct {
	coords []float64
}

// New returns an empty point with no coordinates.
func New() Point {
	return Point{}
}

// New2D returns a point with the two given coordinates.
func New2D(x, y float64) Point {
	return Point{coords: []float64{x, y}}
}

// New3D returns a point with the three given coordinates.
func New3D(x, y, z float64) Point {
	return Point{coords: []float64{x, y, z}}
}

// Prepare appends size zero coordinates to the point. Use it after New
// to make room for indexed writes via SetValue.
func (p *Point) Prepare(size int) {
	p.coords = append(p.coords, make([]float64, size)...)
}

// SetValue writes value at coordinate position pos.
// Returns ErrOutOfRange when pos is outside [0, Size()).
func (p *Point) SetValue(value float64, pos int) error {
	if pos < 0 || pos >= len(p.coords) {
		return ErrOutOfRange
	}
	p.coords[pos] = value

	return nil
}

// At returns the coordinate at index i. Like a slice access, it panics
// when i is outside [0, Size()); error-prone writes go through SetValue.
func (p Point) At(i int) float64 {
	return p.coords[i]
}

// Size returns the number of coordinates held by the point.
func (p Point) Size() int {
	return len(p.coords)
}

// Sub returns p - other, computed elementwise over the subtrahend's
// coordinates. The result is sized to other, not to p, so a 3D point
// minus a 2D point is a 2D point. Returns ErrDimensionMismatch when p
// has fewer coordinates than other.
func (p Point) Sub(other Point) (Point, error) {
	if p.Size() < other.Size() {
		return Point{}, ErrDimensionMismatch
	}

	diff := Point{coords: make([]float64, other.Size())}
	for i := 0; i < other.Size(); i++ {
		diff.coords[i] = p.coords[i] - other.coords[i]
	}

	return diff, nil
}

// DistanceTo returns the Euclidean distance from p to other, taken over
// other's coordinates (the Sub sizing contract applies). Returns
// ErrDimensionMismatch when p has fewer coordinates than other.
func (p Point) DistanceTo(other Point) (float64, error) {
	diff, err := p.Sub(other)
	if err != nil {
		return 0, err
	}

	return floats.Norm(diff.coords, 2), nil
}
