package export_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
	"zappem.net/pub/math/polygon"

	"github.com/sayhiben/washi-cut/export"
	"github.com/sayhiben/washi-cut/layout"
	"github.com/sayhiben/washi-cut/region"
)

// sampleSheet arranges one 10x10 square into a 15mm band: a 12x17
// sheet with a single outline at (1,3.5)..(11,13.5).
func sampleSheet(t *testing.T) *layout.Sheet {
	t.Helper()
	r := region.New()
	require.NoError(t, r.Add([]polygon.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}))
	o := layout.DefaultOptions()
	o.TapeWidth = 15
	sheet, err := layout.Arrange([]*region.Region{r}, o)
	require.NoError(t, err)

	return sheet
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteSVG(&buf, sampleSheet(t)))
	out := buf.String()

	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "mm\"")
	assert.Contains(t, out, "viewBox=")
	assert.Contains(t, out, "stroke-width:0.1")
	assert.Contains(t, out, " Z\"")
	assert.Contains(t, out, "</svg>")
	assert.Equal(t, 1, strings.Count(out, "<path"), "one outline, one path")
	assert.Contains(t, out, "M 1.000,3.500", "outline starts at its leftmost-lowest corner")
}

func TestWriteSVG_EmptySheet(t *testing.T) {
	o := layout.DefaultOptions()
	o.TapeWidth = 15
	sheet, err := layout.Arrange(nil, o)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, export.WriteSVG(&buf, sheet))
	assert.Contains(t, buf.String(), "<svg")
	assert.Zero(t, strings.Count(buf.String(), "<path"))
}

func TestSaveSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "band.svg")
	require.NoError(t, export.SaveSVG(path, sampleSheet(t)))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "</svg>")

	err = export.SaveSVG(filepath.Join(t.TempDir(), "no", "such", "dir.svg"), sampleSheet(t))
	assert.Error(t, err)
}

func TestSaveDXF_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "band.dxf")
	require.NoError(t, export.SaveDXF(path, sampleSheet(t)))

	d, err := dxf.Open(path)
	require.NoError(t, err)

	var lines []*entity.Line
	for _, ent := range d.Entities() {
		if l, ok := ent.(*entity.Line); ok {
			lines = append(lines, l)
		}
	}
	require.Len(t, lines, 4, "a square explodes into four segments")

	// The segments chain end to start.
	for i, l := range lines {
		next := lines[(i+1)%len(lines)]
		assert.InDelta(t, l.End[0], next.Start[0], 1e-6)
		assert.InDelta(t, l.End[1], next.Start[1], 1e-6)
	}
	assert.InDelta(t, 1.0, lines[0].Start[0], 1e-6)
	assert.InDelta(t, 3.5, lines[0].Start[1], 1e-6)
}

func TestSavePDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "band.pdf")
	require.NoError(t, export.SavePDF(path, sampleSheet(t)))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF-")), "pdf header")
	assert.Greater(t, len(raw), 500)
}

func TestExport_NilSheet(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, export.WriteSVG(&buf, nil), export.ErrSheetNil)
	assert.ErrorIs(t, export.SaveSVG("x.svg", nil), export.ErrSheetNil)
	assert.ErrorIs(t, export.SaveDXF("x.dxf", nil), export.ErrSheetNil)
	assert.ErrorIs(t, export.SavePDF("x.pdf", nil), export.ErrSheetNil)
}
