package layout

import "math"

// RegularNgon returns the coordinates of n points placed per opts, in
// counter-clockwise order.
//
// Rules:
//   - n >= 3: vertices of a regular n-gon, the first oriented by
//     opts.RotationDeg (90° puts point 1 on top).
//   - n == 2: two points on the X axis, symmetric about the center.
//   - n == 1: the center alone.
//
// Errors:
//   - ErrNonPositiveN — if n < 1.
func RegularNgon(n int, opts Options) ([]Point, error) {
	if n < 1 {
		return nil, ErrNonPositiveN
	}

	cx, cy := opts.Center.X, opts.Center.Y
	switch n {
	case 1:
		return []Point{{X: cx, Y: cy}}, nil
	case 2:
		return []Point{
			{X: cx - opts.Radius, Y: cy},
			{X: cx + opts.Radius, Y: cy},
		}, nil
	}

	rot := opts.RotationDeg * math.Pi / 180.0
	step := 2.0 * math.Pi / float64(n)
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		ang := rot + float64(i)*step
		pts[i] = Point{
			X: cx + opts.Radius*math.Cos(ang),
			Y: cy + opts.Radius*math.Sin(ang),
		}
	}

	return pts, nil
}

// AutoRadius suggests a radius that keeps n points inside a unit viewport
// with the given relative margin. The margin is clamped to [0, 0.4]; with
// the default square viewport a radius near 1.0 is the sweet spot, so the
// adjustment is deliberately gentle.
//
// Errors:
//   - ErrNonPositiveN — if n < 1.
func AutoRadius(n int, margin float64) (float64, error) {
	if n < 1 {
		return 0, ErrNonPositiveN
	}
	if margin < 0 {
		margin = 0
	}
	if margin > 0.4 {
		margin = 0.4
	}

	return 1.0 - margin*0.2, nil
}
