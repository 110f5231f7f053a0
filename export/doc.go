// Package export renders an arranged sheet to cut-ready files. SVG is
// the primary format and what craft cutters consume; DXF serves CAM
// toolchains and PDF gives a printable preview of the band.
//
// All formats share the sheet's millimetre coordinates. SVG and DXF
// keep the sheet's y axis pointing up; the PDF preview flips it to the
// page convention.
package export
