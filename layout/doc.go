// Package layout packs unfolded strips into a single horizontal tape
// band. Every strip is first rotated to its flattest orientation, then
// centred vertically in the band and placed left to right with a fixed
// gap. The whole set can be duplicated side by side for wrapping
// several identical solids from one sheet.
//
// All coordinates are millimetres with the origin at the sheet's lower
// left corner.
package layout
