package unfold_test

import (
	"math"
	"testing"

	"github.com/fogleman/fauxgl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"zappem.net/pub/math/polygon"

	"github.com/sayhiben/washi-cut/facegraph"
	"github.com/sayhiben/washi-cut/mesh"
	"github.com/sayhiben/washi-cut/region"
	"github.com/sayhiben/washi-cut/unfold"
)

// pyramidFan is an open square pyramid whose four sides form a cycle
// in the face graph. The windings are chosen so the hinge path
// 0-1-2-3 swings every face outward, giving the ribbon search a
// guaranteed solution.
func pyramidFan(t testing.TB) *facegraph.Graph {
	t.Helper()
	verts := []fauxgl.Vector{
		fauxgl.V(0, 0, 0), fauxgl.V(1, 0, 0),
		fauxgl.V(1, 1, 0), fauxgl.V(0, 1, 0),
		fauxgl.V(0.5, 0.5, 1),
	}
	tris := [][3]int{{0, 1, 4}, {2, 1, 4}, {3, 2, 4}, {0, 4, 3}}
	m, err := mesh.New(verts, tris, 0)
	require.NoError(t, err)
	g, err := facegraph.Build(m, facegraph.Options{Triangles: true})
	require.NoError(t, err)

	return g
}

func cubeGraph(t *testing.T, side float64) *facegraph.Graph {
	t.Helper()
	g, err := facegraph.Build(mesh.Cube(side), facegraph.Options{})
	require.NoError(t, err)

	return g
}

// assertCongruent checks that every placed outline preserves all
// pairwise distances of its local flattening, i.e. only rigid motion
// happened.
func assertCongruent(t *testing.T, g *facegraph.Graph, coords map[int][]polygon.Point) {
	t.Helper()
	for id, placed := range coords {
		local := g.Faces[id].Local
		require.Len(t, placed, len(local), "face %d cardinality", id)
		for a := 0; a < len(local); a++ {
			for b := a + 1; b < len(local); b++ {
				want := math.Hypot(local[a].X-local[b].X, local[a].Y-local[b].Y)
				got := math.Hypot(placed[a].X-placed[b].X, placed[a].Y-placed[b].Y)
				assert.InDelta(t, want, got, 1e-9, "face %d pair %d-%d", id, a, b)
			}
		}
	}
}

// assertPartition checks that the strips cover every face exactly once.
func assertPartition(t *testing.T, g *facegraph.Graph, res *unfold.Result) {
	t.Helper()
	seen := make(map[int]int)
	for _, s := range res.Strips {
		for id := range s.Coords {
			seen[id]++
		}
	}
	require.Len(t, seen, len(g.Faces))
	for id, n := range seen {
		assert.Equal(t, 1, n, "face %d placed once", id)
	}
}

func stripExtentY(s unfold.StripNet) float64 {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, pts := range s.Coords {
		for _, p := range pts {
			lo = math.Min(lo, p.Y)
			hi = math.Max(hi, p.Y)
		}
	}

	return hi - lo
}

// TestStrips_CubeBands unfolds a cube whose faces fit the tape: the
// equatorial band chains while the two blocked faces each open their
// own strip.
func TestStrips_CubeBands(t *testing.T) {
	g := cubeGraph(t, 10)
	opts := unfold.DefaultOptions()
	opts.TapeWidth = 15

	res, err := unfold.Strips(g, opts)
	require.NoError(t, err)
	require.Len(t, res.Strips, 3)
	assert.Len(t, res.Strips[0].Coords, 4, "band of four around the root")
	assert.Len(t, res.Strips[1].Coords, 1)
	assert.Len(t, res.Strips[2].Coords, 1)

	assertPartition(t, g, res)
	for i, s := range res.Strips {
		assert.Nil(t, s.Order, "breadth-first strips carry no order")
		assert.LessOrEqual(t, stripExtentY(s), 15+1e-6, "strip %d height", i)
		assertCongruent(t, g, s.Coords)
	}
}

// TestStrips_OversizedFaces still emits one strip per face when every
// face alone exceeds the tape; roots are never height-gated.
func TestStrips_OversizedFaces(t *testing.T) {
	g := cubeGraph(t, 20)
	opts := unfold.DefaultOptions()
	opts.TapeWidth = 15

	res, err := unfold.Strips(g, opts)
	require.NoError(t, err)
	require.Len(t, res.Strips, 6)
	for _, s := range res.Strips {
		assert.Len(t, s.Coords, 1)
	}
	assertPartition(t, g, res)
}

// TestStrips_Tetrahedron covers every face of a tetrahedron within the
// tape bound.
func TestStrips_Tetrahedron(t *testing.T) {
	g, err := facegraph.Build(mesh.Tetrahedron(10), facegraph.Options{})
	require.NoError(t, err)
	opts := unfold.DefaultOptions()
	opts.TapeWidth = 15

	res, err := unfold.Strips(g, opts)
	require.NoError(t, err)
	require.NotEmpty(t, res.Strips)
	assertPartition(t, g, res)
	for i, s := range res.Strips {
		assert.LessOrEqual(t, stripExtentY(s), 15+1e-6, "strip %d height", i)
		assertCongruent(t, g, s.Coords)
	}
}

// TestStrips_Deterministic repeats a run and expects identical output.
func TestStrips_Deterministic(t *testing.T) {
	g := cubeGraph(t, 10)
	opts := unfold.DefaultOptions()
	opts.TapeWidth = 15

	r1, err := unfold.Strips(g, opts)
	require.NoError(t, err)
	r2, err := unfold.Strips(g, opts)
	require.NoError(t, err)
	assert.Equal(t, r1, r2)
}

// TestRibbon_PyramidFan finds the designed hinge path, checks the
// shared-edge continuity the placement guarantees, and verifies the
// full-resolution height bound.
func TestRibbon_PyramidFan(t *testing.T) {
	g := pyramidFan(t)
	opts := unfold.DefaultOptions()
	opts.TapeWidth = 15

	res, err := unfold.Ribbon(g, opts)
	require.NoError(t, err)
	require.Len(t, res.Strips, 1)
	strip := res.Strips[0]
	require.Equal(t, []int{0, 1, 2, 3}, strip.Order)
	require.Len(t, strip.Coords, len(g.Faces))
	assertCongruent(t, g, strip.Coords)

	// Consecutive faces agree exactly on their hinge vertices.
	for k := 0; k+1 < len(strip.Order); k++ {
		a, b := strip.Order[k], strip.Order[k+1]
		edge, ok := g.SharedEdge(a, b)
		require.True(t, ok, "path step %d-%d is a hinge", a, b)
		for _, v := range edge {
			ia := indexOf(g.Faces[a].Loop, v)
			ib := indexOf(g.Faces[b].Loop, v)
			require.GreaterOrEqual(t, ia, 0)
			require.GreaterOrEqual(t, ib, 0)
			pa := strip.Coords[a][ia]
			pb := strip.Coords[b][ib]
			assert.InDelta(t, pa.X, pb.X, 1e-9, "vertex %d X", v)
			assert.InDelta(t, pa.Y, pb.Y, 1e-9, "vertex %d Y", v)
		}
	}

	// The rotated band fits the tape at full resolution, not just at
	// the coarse probe angles.
	reg := region.New()
	for _, pts := range strip.Coords {
		require.NoError(t, reg.Add(pts))
	}
	_, h := reg.MinHeight()
	assert.LessOrEqual(t, h, 15+1e-6)
}

// TestRibbon_TetrahedronFoldsBack: a uniformly wound shell hinges
// every neighbour back over its parent, so overlap rejection starves
// the beam and the planner reports ErrNoRibbon.
func TestRibbon_TetrahedronFoldsBack(t *testing.T) {
	g, err := facegraph.Build(mesh.Tetrahedron(10), facegraph.Options{})
	require.NoError(t, err)
	opts := unfold.DefaultOptions()
	opts.TapeWidth = 15

	_, err = unfold.Ribbon(g, opts)
	assert.ErrorIs(t, err, unfold.ErrNoRibbon)
}

// TestRibbon_OversizedTape still fails on the cube: no hinge path
// visits all six sides with every fold landing clear.
func TestRibbon_OversizedTape(t *testing.T) {
	g := cubeGraph(t, 10)
	opts := unfold.DefaultOptions()
	opts.TapeWidth = 15

	_, err := unfold.Ribbon(g, opts)
	assert.ErrorIs(t, err, unfold.ErrNoRibbon)
}

// TestRibbon_Deterministic repeats the pyramid search.
func TestRibbon_Deterministic(t *testing.T) {
	g := pyramidFan(t)
	opts := unfold.DefaultOptions()
	opts.TapeWidth = 15

	r1, err := unfold.Ribbon(g, opts)
	require.NoError(t, err)
	r2, err := unfold.Ribbon(g, opts)
	require.NoError(t, err)
	assert.Equal(t, r1.Strips[0].Order, r2.Strips[0].Order)
	assert.Equal(t, r1.Strips[0].Coords, r2.Strips[0].Coords)
}

// TestPlanners_InputGuards covers the shared option and graph checks.
func TestPlanners_InputGuards(t *testing.T) {
	g := pyramidFan(t)

	_, err := unfold.Strips(nil, unfold.Options{TapeWidth: 15})
	assert.ErrorIs(t, err, unfold.ErrGraphNil)
	_, err = unfold.Ribbon(nil, unfold.Options{TapeWidth: 15})
	assert.ErrorIs(t, err, unfold.ErrGraphNil)

	_, err = unfold.Strips(g, unfold.Options{})
	assert.ErrorIs(t, err, unfold.ErrOptionViolation, "zero tape width")
	_, err = unfold.Ribbon(g, unfold.Options{TapeWidth: -3})
	assert.ErrorIs(t, err, unfold.ErrOptionViolation)
	_, err = unfold.Ribbon(g, unfold.Options{TapeWidth: 15, Beam: -1})
	assert.ErrorIs(t, err, unfold.ErrOptionViolation)
	_, err = unfold.Ribbon(g, unfold.Options{TapeWidth: 15, OverlapTol: -1})
	assert.ErrorIs(t, err, unfold.ErrOptionViolation)
}

// TestRibbon_IsolatedFace refuses a graph without any hinge at all.
func TestRibbon_IsolatedFace(t *testing.T) {
	m := &mesh.Mesh{
		Verts: []fauxgl.Vector{fauxgl.V(0, 0, 0), fauxgl.V(1, 0, 0), fauxgl.V(0, 1, 0)},
		Tris:  [][3]int{{0, 1, 2}},
	}
	g, err := facegraph.Build(m, facegraph.Options{Triangles: true})
	require.NoError(t, err)

	_, err = unfold.Ribbon(g, unfold.Options{TapeWidth: 15})
	assert.ErrorIs(t, err, unfold.ErrNoRibbon)

	res, err := unfold.Strips(g, unfold.Options{TapeWidth: 15})
	require.NoError(t, err)
	assert.Len(t, res.Strips, 1, "strips still place a lone face")
	assert.Equal(t, 1, res.FaceCount())
}

func indexOf(loop []int, v int) int {
	for i, x := range loop {
		if x == v {
			return i
		}
	}

	return -1
}
