package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	washicut "github.com/sayhiben/washi-cut"
	"github.com/sayhiben/washi-cut/layout"
)

// Page layout constants (A4 landscape in mm).
const (
	pageWidth  = 297.0
	pageHeight = 210.0
	pageMargin = 15.0
	headerH    = 12.0
	drawTop    = pageMargin + headerH + 10.0
)

// SavePDF writes a printable preview of the band: the sheet outline
// scaled to the page with every cut path drawn inside it. The page y
// axis grows downward, so the sheet is flipped vertically.
func SavePDF(path string, sheet *layout.Sheet) error {
	if sheet == nil {
		return ErrSheetNil
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, pageMargin)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(pageMargin, pageMargin)
	title := fmt.Sprintf("Washi band %.1f x %.1f mm", sheet.Width, sheet.Height)
	pdf.CellFormat(pageWidth-2*pageMargin, headerH, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(pageMargin, pageMargin+headerH)
	stats := fmt.Sprintf("Strips: %d | Cut length: %.0f mm",
		len(sheet.Regions), cutLength(sheet))
	pdf.CellFormat(pageWidth-2*pageMargin, 5, stats, "", 0, "L", false, 0, "")

	drawW := pageWidth - 2*pageMargin
	drawH := pageHeight - drawTop - pageMargin
	scale := math.Min(drawW/sheet.Width, drawH/sheet.Height)
	canvasW := sheet.Width * scale
	canvasH := sheet.Height * scale
	ox := pageMargin + (drawW-canvasW)/2
	oy := drawTop

	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(ox, oy, canvasW, canvasH, "D")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.3)
	for _, r := range sheet.Regions {
		for _, pts := range r.Outlines() {
			for i := range pts {
				p, q := pts[i], pts[(i+1)%len(pts)]
				pdf.Line(
					ox+p.X*scale, oy+(sheet.Height-p.Y)*scale,
					ox+q.X*scale, oy+(sheet.Height-q.Y)*scale)
			}
		}
	}

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)
	label := fmt.Sprintf("%.0f mm", sheet.Width)
	lw := pdf.GetStringWidth(label)
	pdf.SetXY(ox+(canvasW-lw)/2, oy+canvasH+1)
	pdf.CellFormat(lw, 4, label, "", 0, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	washicut.Logger().Debug("pdf written", "path", path)

	return nil
}

// cutLength sums the perimeter of every outline on the sheet.
func cutLength(sheet *layout.Sheet) float64 {
	total := 0.0
	for _, r := range sheet.Regions {
		for _, pts := range r.Outlines() {
			for i := range pts {
				p, q := pts[i], pts[(i+1)%len(pts)]
				total += math.Hypot(q.X-p.X, q.Y-p.Y)
			}
		}
	}

	return total
}
