// Package unfold flattens a face graph into tape-width bounded planar
// strips.
//
// Two planners are provided:
//
//   - Strips grows breadth-first hinge trees, opening a new strip
//     whenever the next face would push the band past the tape width;
//     every face lands in exactly one strip.
//   - Ribbon beam-searches for a single hinge path covering every face
//     within the tape width, and reports ErrNoRibbon when the beam or
//     the deadline runs out rather than returning a partial cover.
//
// Faces move by rigid hinge motion only, so every placed outline stays
// congruent to its flattened source face and neighbouring faces agree
// exactly along the hinge that joined them.
package unfold
