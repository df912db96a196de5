// Package layout defines the point type and placement options.
package layout

import "errors"

// ErrNonPositiveN is returned when a layout is requested for n < 1.
var ErrNonPositiveN = errors.New("layout: n must be >= 1")

// Point is a 2D coordinate in the renderer's data space.
type Point struct {
	X, Y float64
}

// Options configures point placement.
//
// Fields:
//   - Center      — geometric center of the polygon.
//   - Radius      — distance of every point from the center.
//   - RotationDeg — counter-clockwise rotation of the first point, in
//     degrees. 90 places point 1 at the top of the figure.
type Options struct {
	Center      Point
	Radius      float64
	RotationDeg float64
}

// DefaultOptions returns placement at the origin with radius 1 and the
// first point on top (90° rotation).
func DefaultOptions() Options {
	return Options{
		Center:      Point{X: 0, Y: 0},
		Radius:      1.0,
		RotationDeg: 90.0,
	}
}
