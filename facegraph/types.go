package facegraph

import (
	"errors"

	"github.com/fogleman/fauxgl"
	"zappem.net/pub/math/polygon"
)

// Sentinel errors returned by Build. Wrapped occurrences carry the
// offending face or vertex in their message.
var (
	// ErrMeshNil fires when Build receives a nil mesh.
	ErrMeshNil = errors.New("facegraph: mesh is nil")

	// ErrNonManifold marks a boundary walk that met a vertex of degree
	// other than two, or an edge claimed by more than two faces.
	ErrNonManifold = errors.New("facegraph: non-manifold boundary")

	// ErrDegenerateFace marks a face with fewer than three vertices,
	// with all vertices coincident, or with a fully collinear loop.
	ErrDegenerateFace = errors.New("facegraph: degenerate face")
)

// Face is one planar region of the shell together with its flattening.
type Face struct {
	// ID is the face's index in Graph.Faces.
	ID int

	// Loop lists the boundary's mesh vertex ids in walk order; the
	// last entry connects back to the first implicitly.
	Loop []int

	// Local is the boundary flattened into the face plane, one point
	// per Loop entry, Local[0] at the origin.
	Local []polygon.Point

	// Normal is the face plane's unit normal.
	Normal fauxgl.Vector
}

// Graph couples flattened faces with their shared-edge adjacency.
// A Graph is immutable once built and safe for concurrent readers.
type Graph struct {
	// Faces is dense: Faces[i].ID == i.
	Faces []Face

	// Adj[i] lists the neighbours of face i in ascending id order.
	Adj [][]int

	shared map[[2]int][2]int
}

// SharedEdge reports the mesh vertex pair (lower id first) on the
// hinge between faces a and b. Argument order does not matter.
func (g *Graph) SharedEdge(a, b int) ([2]int, bool) {
	e, ok := g.shared[[2]int{a, b}]

	return e, ok
}

// Degree returns the neighbour count of face id.
func (g *Graph) Degree(id int) int { return len(g.Adj[id]) }

// Options tunes Build. The zero value selects facet mode with the
// default coplanarity tolerance.
type Options struct {
	// Triangles true keeps every triangle as its own face instead of
	// merging coplanar runs into facets.
	Triangles bool

	// AngleTol is the facet coplanarity tolerance in radians; 0 means
	// mesh.DefaultFacetAngle.
	AngleTol float64
}
