// Package washicut turns closed polygonal shells (dice blanks and
// other small convex solids) into flat, height-bounded polygon strips
// ready to cut from washi tape and wrap back around the shell.
//
// 🎲 What is washi-cut?
//
//	A toolkit that unfolds a 3D shell into 2D cut outlines:
//		• Mesh ingest: STL/OBJ loading, unit scaling, vertex welding,
//		  coplanar facet grouping
//		• Face graph: boundary loops flattened into per-face 2D bases,
//		  adjacency over shared edges
//		• Unfolding: hinge placement across shared edges, a robust BFS
//		  strip grower, and a beam-searched single-ribbon mode
//		• Region oracle: polygon union with area and min-height queries
//		• Layout: strips packed onto a tape band with gaps and margins
//		• Export: SVG (Cricut-ready), DXF and printable PDF
//
// ✂️ Why strips?
//
//   - Washi tape comes in a fixed width; every strip must fit the band
//   - Hinged unfolding keeps shared edges continuous, so strips wrap
//     without stretching
//   - The ribbon mode tries to cover the whole shell with one strip;
//     the BFS mode always succeeds by splitting into several
//
// Everything is organized under flat subpackages:
//
//	mesh/      - triangle meshes: load, weld, facets, canonical solids
//	facegraph/ - faces, boundary loops, adjacency, shared edges
//	unfold/    - hinge placement plus the strip and ribbon planners
//	region/    - merged 2D regions with rotated height queries
//	layout/    - tape-band arrangement of finished strips
//	export/    - SVG, DXF and printable PDF writers
//	cmd/       - the washicut command-line tool
//
// Quick ASCII example:
//
//	   ┌──┬──┬──┬──┐
//	   │  │  │  │  │   a cube unfolded into one 4-face ribbon
//	   └──┴──┴──┴──┘   (two faces split off when the tape is narrow)
//
// Logging is silent by default; call SetLogger to observe the
// pipeline. See README.md and cmd/washicut for end-to-end usage.
//
//	go get github.com/sayhiben/washi-cut
package washicut
