package facegraph

import (
	"fmt"

	"github.com/fogleman/fauxgl"
	"zappem.net/pub/math/polygon"

	"github.com/sayhiben/washi-cut/mesh"
)

const (
	// zeroEdgeTol is the length below which an edge counts as absent.
	zeroEdgeTol = 1e-12

	// normalTol is the minimum cross-product length accepted when
	// deriving the plane normal from loop geometry.
	normalTol = 1e-9
)

// flatten projects loop's mesh vertices into the face's own plane.
//
// Frame: origin at the first loop vertex, X along the first edge of
// nonzero length, plane normal from the first non-collinear vertex
// beyond it, Y completing the right-handed basis. Distances within the
// plane are preserved exactly, so the output is congruent to the 3D
// boundary.
func flatten(m *mesh.Mesh, loop []int) ([]polygon.Point, error) {
	if len(loop) < 3 {
		return nil, fmt.Errorf("%w: %d vertices", ErrDegenerateFace, len(loop))
	}

	p0 := m.Verts[loop[0]]
	i1 := 0
	for i := 1; i < len(loop); i++ {
		if m.Verts[loop[i]].Sub(p0).Length() > zeroEdgeTol {
			i1 = i
			break
		}
	}
	if i1 == 0 {
		return nil, fmt.Errorf("%w: all vertices coincide", ErrDegenerateFace)
	}

	e1 := m.Verts[loop[i1]].Sub(p0)
	var n fauxgl.Vector
	havePlane := false
	for i := i1 + 1; i < len(loop); i++ {
		cr := e1.Cross(m.Verts[loop[i]].Sub(p0))
		if cr.Length() > normalTol {
			n = cr.Normalize()
			havePlane = true
			break
		}
	}
	if !havePlane {
		return nil, fmt.Errorf("%w: collinear loop", ErrDegenerateFace)
	}

	u := e1.Normalize()
	v := n.Cross(u).Normalize()
	out := make([]polygon.Point, len(loop))
	for i, vi := range loop {
		d := m.Verts[vi].Sub(p0)
		out[i] = polygon.Point{X: d.Dot(u), Y: d.Dot(v)}
	}

	return out, nil
}
