package mesh

import "errors"

// Sentinel errors for mesh construction and ingest.
var (
	// ErrEmptyMesh is returned when no valid triangle survives loading
	// or welding.
	ErrEmptyMesh = errors.New("mesh: no valid triangles")

	// ErrUnsupportedFormat is returned for file extensions the loader
	// does not understand.
	ErrUnsupportedFormat = errors.New("mesh: unsupported file format")

	// ErrUnknownUnit is returned when LoadOptions.Unit is neither
	// UnitMM nor UnitInch.
	ErrUnknownUnit = errors.New("mesh: unknown input unit")

	// ErrNonManifoldEdge is returned when more than two triangles claim
	// the same undirected edge.
	ErrNonManifoldEdge = errors.New("mesh: edge shared by more than two triangles")

	// ErrVertexRange is returned when a triangle references a vertex
	// index outside the supplied slice.
	ErrVertexRange = errors.New("mesh: triangle vertex index out of range")
)

// Input unit names accepted by Load.
const (
	UnitMM   = "mm"
	UnitInch = "inch"
)

// inchToMM converts inch-unit input meshes to millimeters.
const inchToMM = 25.4

// DefaultWeldTol merges positions closer than one nanometer-ish in mm
// terms; identical soup vertices always collapse, genuinely distinct
// ones never do at dice-blank scales.
const DefaultWeldTol = 1e-6

// DefaultFacetAngle is the maximum angle, in radians, between triangle
// normals still considered coplanar when grouping facets.
const DefaultFacetAngle = 1e-4

// LoadOptions tunes file ingest.
type LoadOptions struct {
	// Unit of the input file, UnitMM or UnitInch. Empty means UnitMM.
	Unit string

	// WeldTol is the position tolerance for merging soup vertices.
	// Zero means DefaultWeldTol.
	WeldTol float64
}

// DefaultLoadOptions returns millimeter input with the default weld
// tolerance.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{Unit: UnitMM, WeldTol: DefaultWeldTol}
}
