// Package mesh provides the triangle-mesh container feeding the
// unfolding pipeline: file ingest (STL/OBJ via fauxgl), vertex welding,
// triangle adjacency, coplanar facet grouping, and canonical test
// solids.
//
// What
//
//	A Mesh is a welded, indexed triangle shell: shared positions appear
//	once in Verts and every triangle references them by index. File
//	loaders produce triangle soup (three independent positions per
//	triangle); New welds that soup by position tolerance so that
//	topology (which faces share which edges) becomes recoverable.
//
// Facets
//
//	Facets groups triangles into maximal coplanar patches across shared
//	edges (a cube's 12 triangles become 6 quads). Groups always cover
//	the whole surface: a triangle with no coplanar neighbor forms its
//	own single-triangle facet.
//
// Units
//
//	All downstream geometry is in millimeters. Load scales inch-unit
//	input by 25.4 after welding.
//
// Complexity: welding is O(T) with a quantized position index; facet
// grouping is O(T α(T)) over the adjacency relation (union-find).
package mesh
