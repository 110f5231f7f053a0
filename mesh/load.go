package mesh

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fogleman/fauxgl"

	washicut "github.com/sayhiben/washi-cut"
)

// Load reads an STL or OBJ file, welds the triangle soup into an
// indexed Mesh, and scales it to millimeters according to opts.Unit.
// The format is chosen by file extension (case-insensitive).
func Load(path string, opts LoadOptions) (*Mesh, error) {
	unit := opts.Unit
	if unit == "" {
		unit = UnitMM
	}
	if unit != UnitMM && unit != UnitInch {
		return nil, fmt.Errorf("%w: %q", ErrUnknownUnit, opts.Unit)
	}

	var (
		fm  *fauxgl.Mesh
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".stl":
		fm, err = fauxgl.LoadSTL(path)
	case ".obj":
		fm, err = fauxgl.LoadOBJ(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("mesh: load %s: %w", path, err)
	}

	verts := make([]fauxgl.Vector, 0, len(fm.Triangles)*3)
	tris := make([][3]int, 0, len(fm.Triangles))
	for _, t := range fm.Triangles {
		base := len(verts)
		verts = append(verts, t.V1.Position, t.V2.Position, t.V3.Position)
		tris = append(tris, [3]int{base, base + 1, base + 2})
	}

	m, err := New(verts, tris, opts.WeldTol)
	if err != nil {
		return nil, err
	}
	if unit == UnitInch {
		m.Scale(inchToMM)
	}
	washicut.Logger().Info("mesh loaded",
		"path", path, "unit", unit, "verts", len(m.Verts), "tris", len(m.Tris))

	return m, nil
}

// SaveSTL writes the mesh as STL. Used by fixtures and debugging; the
// pipeline itself only reads meshes.
func (m *Mesh) SaveSTL(path string) error {
	tris := make([]*fauxgl.Triangle, len(m.Tris))
	for i, t := range m.Tris {
		tris[i] = fauxgl.NewTriangleForPoints(m.Verts[t[0]], m.Verts[t[1]], m.Verts[t[2]])
	}

	return fauxgl.SaveSTL(path, fauxgl.NewTriangleMesh(tris))
}
