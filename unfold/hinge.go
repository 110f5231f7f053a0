package unfold

import (
	"fmt"
	"math"

	"zappem.net/pub/math/polygon"

	"github.com/sayhiben/washi-cut/facegraph"
)

// vertexIndex returns val's position in loop, or -1 when absent.
func vertexIndex(loop []int, val int) int {
	for i, v := range loop {
		if v == val {
			return i
		}
	}

	return -1
}

// placeChild maps the child face's local outline into the parent's
// placed frame by hinging across their shared edge.
//
// The hinge endpoints are located by vertex id in both loops, so each
// shared vertex lands exactly on the coordinate the parent already
// assigned it. The transform is S = Reflect(u) * Rotate(phi) with u
// the placed hinge direction and phi the angle closing the child's
// local hinge onto it. The reflection is what swings the child to the
// far side of the hinge instead of folding it back over the parent;
// whether that side is actually clear of other faces is for the
// caller's overlap accounting to decide.
func placeChild(g *facegraph.Graph, parent []polygon.Point, parentID, childID int) ([]polygon.Point, error) {
	edge, ok := g.SharedEdge(parentID, childID)
	if !ok {
		return nil, fmt.Errorf("%w: faces %d and %d", ErrNoHinge, parentID, childID)
	}

	va, vb := edge[0], edge[1]
	parentLoop := g.Faces[parentID].Loop
	pa, pb := vertexIndex(parentLoop, va), vertexIndex(parentLoop, vb)
	if pa < 0 || pb < 0 {
		va, vb = vb, va
		pa, pb = vertexIndex(parentLoop, va), vertexIndex(parentLoop, vb)
		if pa < 0 || pb < 0 {
			return nil, fmt.Errorf("%w: edge (%d,%d) not on face %d boundary",
				ErrNoHinge, edge[0], edge[1], parentID)
		}
	}
	childLoop := g.Faces[childID].Loop
	ca, cb := vertexIndex(childLoop, va), vertexIndex(childLoop, vb)
	if ca < 0 || cb < 0 {
		ca, cb = vertexIndex(childLoop, vb), vertexIndex(childLoop, va)
		if ca < 0 || cb < 0 {
			return nil, fmt.Errorf("%w: edge (%d,%d) not on face %d boundary",
				ErrNoHinge, edge[0], edge[1], childID)
		}
	}

	aG, bG := parent[pa], parent[pb]
	uG := unitDir(aG, bG)
	local := g.Faces[childID].Local
	aL, bL := local[ca], local[cb]
	uL := unitDir(aL, bL)

	phi := math.Atan2(uG.Y, uG.X) - math.Atan2(uL.Y, uL.X)
	s := reflection(uG).mul(rotation(phi))

	placed := make([]polygon.Point, len(local))
	for i, p := range local {
		q := s.apply(polygon.Point{X: p.X - aL.X, Y: p.Y - aL.Y})
		placed[i] = polygon.Point{X: q.X + aG.X, Y: q.Y + aG.Y}
	}

	return placed, nil
}
