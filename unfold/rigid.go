package unfold

import (
	"math"

	"zappem.net/pub/math/polygon"
)

// mat2 is a row-major 2x2 matrix.
type mat2 [4]float64

// rotation returns the counter-clockwise rotation by theta radians.
func rotation(theta float64) mat2 {
	s, c := math.Sincos(theta)

	return mat2{c, -s, s, c}
}

// reflection returns the reflection across the origin line along the
// unit axis u.
func reflection(u polygon.Point) mat2 {
	return mat2{
		2*u.X*u.X - 1, 2 * u.X * u.Y,
		2 * u.X * u.Y, 2*u.Y*u.Y - 1,
	}
}

func (m mat2) mul(n mat2) mat2 {
	return mat2{
		m[0]*n[0] + m[1]*n[2], m[0]*n[1] + m[1]*n[3],
		m[2]*n[0] + m[3]*n[2], m[2]*n[1] + m[3]*n[3],
	}
}

func (m mat2) apply(p polygon.Point) polygon.Point {
	return polygon.Point{X: m[0]*p.X + m[1]*p.Y, Y: m[2]*p.X + m[3]*p.Y}
}

// unitDir returns the unit vector from a to b, or the zero point for
// coincident inputs.
func unitDir(a, b polygon.Point) polygon.Point {
	dx, dy := b.X-a.X, b.Y-a.Y
	n := math.Hypot(dx, dy)
	if n == 0 {
		return polygon.Point{}
	}

	return polygon.Point{X: dx / n, Y: dy / n}
}

func clonePts(pts []polygon.Point) []polygon.Point {
	return append([]polygon.Point(nil), pts...)
}

// extentY returns the lowest and highest Y over pts.
func extentY(pts []polygon.Point) (lo, hi float64) {
	lo, hi = pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		lo = math.Min(lo, p.Y)
		hi = math.Max(hi, p.Y)
	}

	return lo, hi
}
