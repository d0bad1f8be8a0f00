// Package point defines the fixed-length coordinate tuple used by the
// registration pipeline.
//
// A Point is a value type holding 2 or 3 (or, transiently, 0) real
// coordinates. It supports elementwise subtraction and Euclidean
// distance, the two primitives the nearest-neighbor matching step
// needs. Points are copied freely; there is no shared ownership.
//
// Sizing contract:
//   - A Point constructed with New() has no coordinates; call Prepare
//     before any indexed write.
//   - Subtraction is asymmetric: the result is sized to the subtrahend,
//     so p.Sub(q) requires p.Size() >= q.Size() and yields a Point of
//     q.Size() coordinates.
package point
