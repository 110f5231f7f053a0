package region_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"zappem.net/pub/math/polygon"

	"github.com/sayhiben/washi-cut/region"
)

func square(x, y, side float64) []polygon.Point {
	return []polygon.Point{
		{X: x, Y: y},
		{X: x + side, Y: y},
		{X: x + side, Y: y + side},
		{X: x, Y: y + side},
	}
}

func reversed(pts []polygon.Point) []polygon.Point {
	out := make([]polygon.Point, 0, len(pts))
	for i := len(pts) - 1; i >= 0; i-- {
		out = append(out, pts[i])
	}

	return out
}

// TestAdd_NormalizesWinding counts clockwise input as filled area too.
func TestAdd_NormalizesWinding(t *testing.T) {
	r := region.New()
	require.NoError(t, r.Add(square(0, 0, 10)))
	require.NoError(t, r.Add(reversed(square(20, 0, 10))))

	assert.InDelta(t, 200, r.Area(), 1e-9)
	assert.Equal(t, 2, r.Count())
}

// TestAdd_TooFewPoints rejects loops that collapse below a triangle.
func TestAdd_TooFewPoints(t *testing.T) {
	r := region.New()
	err := r.Add([]polygon.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 0}})
	assert.ErrorIs(t, err, region.ErrTooFewPoints)
}

// TestMerge_OverlappingSquares verifies the overlap accounting the
// search relies on: two 2x2 squares overlapping in a unit square merge
// to area 7, one less than their sum.
func TestMerge_OverlappingSquares(t *testing.T) {
	r := region.New()
	require.NoError(t, r.Add(square(0, 0, 2)))
	require.NoError(t, r.Add(square(1, 1, 2)))
	require.InDelta(t, 8, r.Area(), 1e-9, "before merging both count fully")

	r.Merge()
	assert.InDelta(t, 7, r.Area(), 1e-6)
}

// TestMerge_AdjacentSquares keeps edge-to-edge neighbours at their
// exact summed area, so touching faces never read as overlap.
func TestMerge_AdjacentSquares(t *testing.T) {
	r := region.New()
	require.NoError(t, r.Add(square(0, 0, 1)))
	require.NoError(t, r.Add(square(1, 0, 1)))

	r.Merge()
	assert.InDelta(t, 2, r.Area(), 1e-6)
}

// TestHeightAt_Rectangle probes the Y extent under rotation without
// mutating the region.
func TestHeightAt_Rectangle(t *testing.T) {
	r := region.New()
	require.NoError(t, r.Add([]polygon.Point{
		{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 10}, {X: 0, Y: 10},
	}))

	assert.InDelta(t, 10, r.HeightAt(0), 1e-9)
	assert.InDelta(t, 20, r.HeightAt(90), 1e-9)
	assert.InDelta(t, 10, r.HeightAt(180), 1e-9)

	ll, tr, ok := r.Bounds()
	require.True(t, ok)
	assert.Equal(t, polygon.Point{X: 0, Y: 0}, ll, "probe left region untouched")
	assert.Equal(t, polygon.Point{X: 20, Y: 10}, tr)
}

// TestMinHeight_RotatedRectangle finds the angle that lays a tilted
// rectangle flat again.
func TestMinHeight_RotatedRectangle(t *testing.T) {
	r := region.New()
	require.NoError(t, r.Add([]polygon.Point{
		{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 10}, {X: 0, Y: 10},
	}))
	r.Rotate(30)

	deg, h := r.MinHeight()
	assert.Equal(t, 150, deg, "30 + 150 brings the long side level")
	assert.InDelta(t, 10, h, 1e-9)

	got := r.RotateToMinHeight()
	assert.InDelta(t, h, got, 1e-9)
}

// TestShrinkEach pulls each side inward by the cut gap.
func TestShrinkEach(t *testing.T) {
	r := region.New()
	require.NoError(t, r.Add(square(0, 0, 10)))

	r.ShrinkEach(1)
	assert.InDelta(t, 64, r.Area(), 1e-6, "10x10 becomes 8x8")
	ll, tr, ok := r.Bounds()
	require.True(t, ok)
	assert.InDelta(t, 1, ll.X, 1e-6)
	assert.InDelta(t, 9, tr.Y, 1e-6)
}

// TestShrinkEach_CollinearMidpoint shrinks a square with a redundant
// vertex on one side without bowing that side.
func TestShrinkEach_CollinearMidpoint(t *testing.T) {
	r := region.New()
	require.NoError(t, r.Add([]polygon.Point{
		{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}))

	r.ShrinkEach(1)
	assert.InDelta(t, 64, r.Area(), 1e-6)
}

// TestShrinkEach_TooSmall keeps outlines the gap would annihilate.
func TestShrinkEach_TooSmall(t *testing.T) {
	r := region.New()
	require.NoError(t, r.Add(square(0, 0, 1)))

	r.ShrinkEach(2)
	assert.InDelta(t, 1, r.Area(), 1e-9, "unshrunk fallback")
}

// TestTranslateToPositive moves the lower-left bound onto the origin.
func TestTranslateToPositive(t *testing.T) {
	r := region.New()
	require.NoError(t, r.Add(square(-5, -7, 2)))

	r.TranslateToPositive()
	ll, tr, ok := r.Bounds()
	require.True(t, ok)
	assert.InDelta(t, 0, ll.X, 1e-12)
	assert.InDelta(t, 0, ll.Y, 1e-12)
	assert.InDelta(t, 2, tr.X, 1e-12)
}

// TestClone_Independent checks deep copies.
func TestClone_Independent(t *testing.T) {
	r := region.New()
	require.NoError(t, r.Add(square(0, 0, 1)))

	c := r.Clone()
	c.Translate(100, 100)

	_, tr, ok := r.Bounds()
	require.True(t, ok)
	assert.InDelta(t, 1, tr.X, 1e-12, "original stays put")
}

// TestLoopArea ignores winding.
func TestLoopArea(t *testing.T) {
	pts := square(0, 0, 10)
	assert.InDelta(t, 100, region.LoopArea(pts), 1e-9)
	assert.InDelta(t, 100, region.LoopArea(reversed(pts)), 1e-9)
}

// TestEmptyRegion exercises the zero-value behaviours.
func TestEmptyRegion(t *testing.T) {
	r := region.New()
	assert.True(t, r.Empty())
	assert.Zero(t, r.Area())
	assert.Zero(t, r.HeightAt(45))

	_, _, ok := r.Bounds()
	assert.False(t, ok)

	deg, h := r.MinHeight()
	assert.Zero(t, deg)
	assert.Zero(t, h)

	r.TranslateToPositive()
	assert.True(t, r.Empty())
}
