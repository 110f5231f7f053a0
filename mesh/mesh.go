package mesh

import (
	"fmt"
	"math"
	"sort"

	"github.com/fogleman/fauxgl"

	washicut "github.com/sayhiben/washi-cut"
)

// Mesh is an indexed triangle shell. Verts holds each distinct position
// once; Tris references positions by index, winding as loaded.
type Mesh struct {
	Verts []fauxgl.Vector
	Tris  [][3]int
}

// New welds triangle-soup input into an indexed Mesh: positions closer
// than weldTol collapse to one vertex, degenerate triangles (repeated
// vertex after welding) and duplicate triangles (same vertex set) are
// dropped, unreferenced vertices are removed. weldTol <= 0 selects
// DefaultWeldTol.
//
// Contract: every triangle index must lie in [0, len(verts)).
// Returns ErrVertexRange on violation, ErrEmptyMesh when nothing
// survives.
func New(verts []fauxgl.Vector, tris [][3]int, weldTol float64) (*Mesh, error) {
	if weldTol <= 0 {
		weldTol = DefaultWeldTol
	}

	// Weld by quantized position cell.
	type cell [3]int64
	canon := make(map[cell]int, len(verts))
	remap := make([]int, len(verts))
	welded := make([]fauxgl.Vector, 0, len(verts))
	for i, v := range verts {
		c := cell{
			int64(math.Round(v.X / weldTol)),
			int64(math.Round(v.Y / weldTol)),
			int64(math.Round(v.Z / weldTol)),
		}
		id, ok := canon[c]
		if !ok {
			id = len(welded)
			welded = append(welded, v)
			canon[c] = id
		}
		remap[i] = id
	}

	// Remap triangles; drop degenerates and duplicates.
	seen := make(map[[3]int]struct{}, len(tris))
	out := make([][3]int, 0, len(tris))
	for ti, t := range tris {
		for _, vi := range t {
			if vi < 0 || vi >= len(verts) {
				return nil, fmt.Errorf("%w: triangle %d references vertex %d of %d", ErrVertexRange, ti, vi, len(verts))
			}
		}
		a, b, c := remap[t[0]], remap[t[1]], remap[t[2]]
		if a == b || b == c || a == c {
			continue
		}
		if _, dup := seen[sortedTri(a, b, c)]; dup {
			continue
		}
		seen[sortedTri(a, b, c)] = struct{}{}
		out = append(out, [3]int{a, b, c})
	}
	if len(out) == 0 {
		return nil, ErrEmptyMesh
	}

	m := &Mesh{Verts: welded, Tris: out}
	m.compact()
	washicut.Logger().Debug("mesh welded",
		"verts_in", len(verts), "verts_out", len(m.Verts),
		"tris_in", len(tris), "tris_out", len(m.Tris))

	return m, nil
}

// sortedTri orders a triangle's vertex ids ascending, giving a
// winding-independent identity key.
func sortedTri(a, b, c int) [3]int {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}

	return [3]int{a, b, c}
}

// compact drops vertices no triangle references, preserving the
// relative order of the survivors.
func (m *Mesh) compact() {
	referenced := make([]bool, len(m.Verts))
	for _, t := range m.Tris {
		referenced[t[0]] = true
		referenced[t[1]] = true
		referenced[t[2]] = true
	}
	remap := make([]int, len(m.Verts))
	kept := make([]fauxgl.Vector, 0, len(m.Verts))
	for i, v := range m.Verts {
		if !referenced[i] {
			remap[i] = -1
			continue
		}
		remap[i] = len(kept)
		kept = append(kept, v)
	}
	if len(kept) == len(m.Verts) {
		return
	}
	for i, t := range m.Tris {
		m.Tris[i] = [3]int{remap[t[0]], remap[t[1]], remap[t[2]]}
	}
	m.Verts = kept
}

// Scale multiplies every vertex position by f in place.
func (m *Mesh) Scale(f float64) {
	for i := range m.Verts {
		m.Verts[i] = m.Verts[i].MulScalar(f)
	}
}

// TriNormal returns the unit normal of triangle i, or the zero vector
// for a zero-area triangle.
func (m *Mesh) TriNormal(i int) fauxgl.Vector {
	t := m.Tris[i]
	n := m.Verts[t[1]].Sub(m.Verts[t[0]]).Cross(m.Verts[t[2]].Sub(m.Verts[t[0]]))
	if n.Length() == 0 {
		return n
	}

	return n.Normalize()
}

// Adjacency returns every undirected edge shared by exactly two
// triangles: pairs[i] is the triangle index pair (lower first) and
// edges[i] the shared edge's vertex ids (lower first). Results are
// sorted by pair for determinism. Edges owned by a single triangle are
// open shell boundary and produce no entry.
//
// Returns ErrNonManifoldEdge when an edge has more than two owners.
//
// Complexity: O(T) expected over the edge index, O(E log E) for the
// final ordering.
func (m *Mesh) Adjacency() (pairs [][2]int, edges [][2]int, err error) {
	type edge [2]int
	owners := make(map[edge][]int, len(m.Tris)*3/2)
	for ti, t := range m.Tris {
		for k := 0; k < 3; k++ {
			a, b := t[k], t[(k+1)%3]
			if a > b {
				a, b = b, a
			}
			owners[edge{a, b}] = append(owners[edge{a, b}], ti)
		}
	}

	for e, ts := range owners {
		switch len(ts) {
		case 1:
			// open boundary edge
		case 2:
			f0, f1 := ts[0], ts[1]
			if f0 > f1 {
				f0, f1 = f1, f0
			}
			pairs = append(pairs, [2]int{f0, f1})
			edges = append(edges, [2]int{e[0], e[1]})
		default:
			return nil, nil, fmt.Errorf("%w: edge (%d,%d) claimed by %d", ErrNonManifoldEdge, e[0], e[1], len(ts))
		}
	}

	idx := make([]int, len(pairs))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		pa, pb := pairs[idx[a]], pairs[idx[b]]
		if pa[0] != pb[0] {
			return pa[0] < pb[0]
		}

		return pa[1] < pb[1]
	})
	sp := make([][2]int, len(pairs))
	se := make([][2]int, len(edges))
	for i, j := range idx {
		sp[i] = pairs[j]
		se[i] = edges[j]
	}

	return sp, se, nil
}
