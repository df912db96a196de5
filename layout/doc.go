// Package layout places the ground set {1..n} on a plane as the vertices
// of a regular polygon, for visual front ends that draw partitions.
//
// What
//
//   - RegularNgon(n, opts) returns n points in counter-clockwise order:
//     a triangle for n=3, a square for n=4, a pentagon for n=5, and so
//     on. n=1 sits at the center; n=2 spans the X axis symmetrically.
//   - AutoRadius(n, margin) picks a radius that keeps every point inside
//     a unit viewport with the requested relative margin.
//
// Why
//
//	Rendering itself (canvas, windowing, event loop) is a consumer
//	concern; the deterministic geometry underneath it is not. Keeping
//	the layout here lets any renderer draw the same picture.
//
// Determinism
//
//	Pure trigonometry over the options; identical inputs give identical
//	coordinates. The default 90° rotation puts point 1 at the top.
//
// Errors
//
//   - ErrNonPositiveN — if n < 1.
//
// Usage
//
//	opts := layout.DefaultOptions()
//	opts.Radius = layout.AutoRadius(n, 0.15)
//	pts, err := layout.RegularNgon(n, opts)
package layout
