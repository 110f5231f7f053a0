// Package facegraph flattens a welded shell into planar faces and
// records which faces share which mesh edge.
//
// Two granularities are supported:
//
//   - facet mode (default) merges runs of coplanar triangles into one
//     face per flat region, so a cube unfolds as six squares rather
//     than twelve triangles;
//   - triangle mode keeps every triangle as its own face.
//
// Each face carries its boundary loop flattened into a local 2D frame
// with vertex 0 at the origin and the first nonzero edge along +X.
// Frames are isometric to the 3D face, so downstream placement only
// ever rigid-moves congruent copies of these outlines.
package facegraph
