package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	svg "github.com/ajstarks/svgo/float"
	"zappem.net/pub/math/polygon"

	washicut "github.com/sayhiben/washi-cut"
	"github.com/sayhiben/washi-cut/layout"
)

// cutStyle is the stroke every cutter outline is drawn with. The
// hairline width marks it as a cut path, not an engraving.
const cutStyle = "fill:none;stroke:#000;stroke-width:0.1"

// ErrSheetNil signals a nil sheet passed to an export call.
var ErrSheetNil = errors.New("export: nil sheet")

// WriteSVG writes the sheet as an SVG document sized in millimetres,
// one closed path per outline.
func WriteSVG(w io.Writer, sheet *layout.Sheet) error {
	if sheet == nil {
		return ErrSheetNil
	}

	canvas := svg.New(w)
	canvas.StartviewUnit(sheet.Width, sheet.Height, "mm", 0, 0, sheet.Width, sheet.Height)
	n := 0
	for _, r := range sheet.Regions {
		for _, pts := range r.Outlines() {
			canvas.Path(pathData(pts), cutStyle)
			n++
		}
	}
	canvas.End()
	washicut.Logger().Debug("svg written", "outlines", n,
		"width_mm", sheet.Width, "height_mm", sheet.Height)

	return nil
}

// SaveSVG writes the sheet to path, creating or truncating the file.
func SaveSVG(path string, sheet *layout.Sheet) error {
	if sheet == nil {
		return ErrSheetNil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := WriteSVG(f, sheet); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	return nil
}

// pathData renders one closed outline as an SVG path string.
func pathData(pts []polygon.Point) string {
	var b strings.Builder
	for i, p := range pts {
		cmd := "M"
		if i > 0 {
			cmd = " L"
		}
		fmt.Fprintf(&b, "%s %.3f,%.3f", cmd, p.X, p.Y)
	}
	b.WriteString(" Z")

	return b.String()
}
