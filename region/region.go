package region

import (
	"errors"
	"math"

	"zappem.net/pub/math/polygon"
)

// ErrTooFewPoints fires when a loop has fewer than three distinct
// points after duplicate removal.
var ErrTooFewPoints = errors.New("region: loop needs at least 3 distinct points")

// Region is a set of solid planar outlines with optional holes.
type Region struct {
	shapes *polygon.Shapes
}

// New returns an empty region.
func New() *Region {
	return &Region{shapes: &polygon.Shapes{}}
}

// Add appends one solid loop. Consecutive near-duplicate points are
// dropped and clockwise input is reoriented, so every added loop
// counts as filled area regardless of winding.
func (r *Region) Add(pts []polygon.Point) error {
	clean := make([]polygon.Point, 0, len(pts))
	for _, p := range pts {
		if len(clean) > 0 && polygon.MatchPoint(p, clean[len(clean)-1]) {
			continue
		}
		clean = append(clean, p)
	}
	if len(clean) > 1 && polygon.MatchPoint(clean[len(clean)-1], clean[0]) {
		clean = clean[:len(clean)-1]
	}
	if len(clean) < 3 {
		return ErrTooFewPoints
	}

	var err error
	r.shapes, err = r.shapes.Append(clean...)
	if err != nil {
		return err
	}
	last := len(r.shapes.P) - 1
	if r.shapes.P[last].Hole {
		if err := r.shapes.Invert(last); err != nil {
			return err
		}
	}

	return nil
}

// Clone returns an independent deep copy.
func (r *Region) Clone() *Region {
	return &Region{shapes: r.shapes.Duplicate()}
}

// Merge combines overlapping and edge-adjacent outlines in place.
// Call before any rotation; merged outlines stay valid under the
// rigid transforms below.
func (r *Region) Merge() {
	r.shapes.Union()
}

// Count returns the number of outlines (holes included).
func (r *Region) Count() int { return len(r.shapes.P) }

// Empty reports whether the region has no outlines.
func (r *Region) Empty() bool { return len(r.shapes.P) == 0 }

// Area returns the signed total area: solid outlines add, holes
// subtract.
func (r *Region) Area() float64 {
	var a float64
	for _, s := range r.shapes.P {
		a += shoelace(s.PS)
	}

	return a
}

// LoopArea returns the unsigned area a single loop would contribute.
func LoopArea(pts []polygon.Point) float64 {
	return math.Abs(shoelace(pts))
}

// shoelace is the signed area, positive for counter-clockwise loops.
func shoelace(ps []polygon.Point) float64 {
	var a float64
	for i, p := range ps {
		q := ps[(i+1)%len(ps)]
		a += p.X*q.Y - q.X*p.Y
	}

	return a / 2
}

// Bounds returns the lower-left and top-right corners; ok is false for
// an empty region.
func (r *Region) Bounds() (ll, tr polygon.Point, ok bool) {
	if r.Empty() {
		return polygon.Point{}, polygon.Point{}, false
	}
	ll, tr = r.shapes.BB()

	return ll, tr, true
}

// HeightAt returns the Y extent the region would have after rotating
// by deg counter-clockwise about the origin. The region itself is not
// modified.
func (r *Region) HeightAt(deg float64) float64 {
	si, co := math.Sincos(deg * math.Pi / 180)
	first := true
	var lo, hi float64
	for _, s := range r.shapes.P {
		for _, p := range s.PS {
			y := si*p.X + co*p.Y
			if first {
				lo, hi = y, y
				first = false
				continue
			}
			lo = math.Min(lo, y)
			hi = math.Max(hi, y)
		}
	}
	if first {
		return 0
	}

	return hi - lo
}

// MinHeight scans whole degrees in [0,180) and returns the angle
// giving the smallest Y extent together with that extent.
func (r *Region) MinHeight() (deg int, h float64) {
	h = math.Inf(1)
	for d := 0; d < 180; d++ {
		if got := r.HeightAt(float64(d)); got < h {
			deg, h = d, got
		}
	}
	if math.IsInf(h, 1) {
		return 0, 0
	}

	return deg, h
}

// RotateToMinHeight rotates the region to its flattest orientation and
// returns the resulting height.
func (r *Region) RotateToMinHeight() float64 {
	deg, h := r.MinHeight()
	r.Rotate(float64(deg))

	return h
}

// Rotate turns the region by deg counter-clockwise about the origin.
func (r *Region) Rotate(deg float64) {
	si, co := math.Sincos(deg * math.Pi / 180)
	for _, s := range r.shapes.P {
		for i, p := range s.PS {
			s.PS[i] = polygon.Point{X: co*p.X - si*p.Y, Y: si*p.X + co*p.Y}
		}
		rebound(s)
	}
}

// Translate shifts the region by (dx, dy).
func (r *Region) Translate(dx, dy float64) {
	for _, s := range r.shapes.P {
		for i, p := range s.PS {
			s.PS[i] = polygon.Point{X: p.X + dx, Y: p.Y + dy}
		}
		rebound(s)
	}
}

// TranslateToPositive shifts the region so its lower-left bound sits
// on the origin.
func (r *Region) TranslateToPositive() {
	ll, _, ok := r.Bounds()
	if !ok {
		return
	}
	r.Translate(-ll.X, -ll.Y)
}

// ShrinkEach pulls every outline's sides inward by s, outline by
// outline, leaving gaps between formerly touching neighbours. An
// outline too small to survive is kept unshrunk. s <= 0 is a no-op;
// call before Merge.
func (r *Region) ShrinkEach(s float64) {
	s = math.Abs(s)
	if s == 0 {
		return
	}
	for i, sh := range r.shapes.P {
		dropCollinear(sh)
		if sh.MaxX-sh.MinX <= 2*s || sh.MaxY-sh.MinY <= 2*s {
			continue
		}
		// Inflate moves each side by half the given distance.
		if err := r.shapes.Inflate(i, -2*s); err != nil {
			continue
		}
		rebound(sh)
	}
}

// Outlines returns copies of every outline's points, holes included.
func (r *Region) Outlines() [][]polygon.Point {
	out := make([][]polygon.Point, len(r.shapes.P))
	for i, s := range r.shapes.P {
		out[i] = append([]polygon.Point(nil), s.PS...)
	}

	return out
}

// rebound recomputes a shape's cached bounding box after its points
// moved.
func rebound(s *polygon.Shape) {
	for i, p := range s.PS {
		if i == 0 {
			s.MinX, s.MaxX = p.X, p.X
			s.MinY, s.MaxY = p.Y, p.Y
			continue
		}
		s.MinX = math.Min(s.MinX, p.X)
		s.MaxX = math.Max(s.MaxX, p.X)
		s.MinY = math.Min(s.MinY, p.Y)
		s.MaxY = math.Max(s.MaxY, p.Y)
	}
}

// dropCollinear removes vertices that sit on the straight line between
// their neighbours. Offsetting treats such vertices as corners and
// would bow the side, so they go first.
func dropCollinear(s *polygon.Shape) {
	if len(s.PS) < 4 {
		return
	}
	kept := make([]polygon.Point, 0, len(s.PS))
	n := len(s.PS)
	for i := 0; i < n; i++ {
		a := s.PS[(i+n-1)%n]
		b := s.PS[i]
		c := s.PS[(i+1)%n]
		cross := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
		if math.Abs(cross) <= 1e-9 {
			continue
		}
		kept = append(kept, b)
	}
	if len(kept) >= 3 && len(kept) < len(s.PS) {
		s.PS = kept
	}
}
