package mesh

import "github.com/fogleman/fauxgl"

// Canonical closed shells with deterministic vertex and triangle order.
// They back the test suites and the example programs; real input comes
// from Load.

// Tetrahedron returns a regular tetrahedron with the given edge length
// in millimeters, centered at the origin.
func Tetrahedron(side float64) *Mesh {
	base := []fauxgl.Vector{
		fauxgl.V(1, 1, 1),
		fauxgl.V(1, -1, -1),
		fauxgl.V(-1, 1, -1),
		fauxgl.V(-1, -1, 1),
	}
	// Scale so edges measure exactly side.
	f := side / base[0].Sub(base[1]).Length()
	verts := make([]fauxgl.Vector, len(base))
	for i, v := range base {
		verts[i] = v.MulScalar(f)
	}

	return &Mesh{
		Verts: verts,
		Tris: [][3]int{
			{0, 1, 2},
			{0, 3, 1},
			{0, 2, 3},
			{1, 3, 2},
		},
	}
}

// Cube returns an axis-aligned cube with the given side length in
// millimeters, centered at the origin, triangulated two triangles per
// square face.
func Cube(side float64) *Mesh {
	s := side / 2
	verts := []fauxgl.Vector{
		fauxgl.V(-s, -s, -s), fauxgl.V(s, -s, -s), fauxgl.V(s, s, -s), fauxgl.V(-s, s, -s),
		fauxgl.V(-s, -s, s), fauxgl.V(s, -s, s), fauxgl.V(s, s, s), fauxgl.V(-s, s, s),
	}

	return &Mesh{
		Verts: verts,
		Tris: [][3]int{
			{0, 1, 2}, {0, 2, 3}, // bottom
			{4, 5, 6}, {4, 6, 7}, // top
			{0, 1, 5}, {0, 5, 4}, // front
			{1, 2, 6}, {1, 6, 5}, // right
			{2, 3, 7}, {2, 7, 6}, // back
			{3, 0, 4}, {3, 4, 7}, // left
		},
	}
}
