package export

import (
	"fmt"

	"github.com/yofu/dxf"

	washicut "github.com/sayhiben/washi-cut"
	"github.com/sayhiben/washi-cut/layout"
)

// cutLayer holds every outline segment in the emitted drawing.
const cutLayer = "CUT"

// SaveDXF writes the sheet as a DXF drawing, each outline exploded
// into LINE entities on the cut layer. CAM importers rejoin the
// segments by their shared endpoints.
func SaveDXF(path string, sheet *layout.Sheet) error {
	if sheet == nil {
		return ErrSheetNil
	}

	d := dxf.NewDrawing()
	if _, err := d.AddLayer(cutLayer, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("export: layer %s: %w", cutLayer, err)
	}

	n := 0
	for _, r := range sheet.Regions {
		for _, pts := range r.Outlines() {
			for i := range pts {
				p, q := pts[i], pts[(i+1)%len(pts)]
				d.Line(p.X, p.Y, 0, q.X, q.Y, 0)
				n++
			}
		}
	}
	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	washicut.Logger().Debug("dxf written", "segments", n, "path", path)

	return nil
}
