// Package region wraps planar polygon collections for the unfolding
// pipeline: merged strip outlines, area and overlap accounting, height
// probes under rotation, and the cut-gap shrink applied before export.
//
// Coordinates are millimetres. Rotation angles are counter-clockwise
// degrees about the origin. A Region owns its shapes; Clone before
// branching.
package region
