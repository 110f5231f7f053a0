package layout

import (
	"errors"
	"fmt"
	"math"

	washicut "github.com/sayhiben/washi-cut"
	"github.com/sayhiben/washi-cut/region"
)

// fallbackWidth is the sheet width reported when nothing was placed.
const fallbackWidth = 100.0

// ErrOptionViolation signals an Options field outside its legal range.
var ErrOptionViolation = errors.New("layout: option violation")

// Options control band packing.
type Options struct {
	// TapeWidth is the band height in mm. Strips are centred in it.
	TapeWidth float64

	// Gap is the horizontal clearance between neighbouring strips and
	// between duplicated sets, in mm.
	Gap float64

	// Margin is kept clear around the whole sheet, in mm.
	Margin float64

	// Duplicates is how many complete copies of the strip set to lay
	// out side by side. Must be at least 1.
	Duplicates int
}

// DefaultOptions returns the packing defaults. TapeWidth has no
// default and must be set by the caller.
func DefaultOptions() Options {
	return Options{Gap: 2, Margin: 1, Duplicates: 1}
}

// Validate reports the first option outside its legal range.
func (o Options) Validate() error {
	// Stage 1: band height.
	if !(o.TapeWidth > 0) || math.IsInf(o.TapeWidth, 1) {
		return fmt.Errorf("%w: tape width %v", ErrOptionViolation, o.TapeWidth)
	}
	// Stage 2: spacing.
	if o.Gap < 0 || math.IsNaN(o.Gap) {
		return fmt.Errorf("%w: gap %v", ErrOptionViolation, o.Gap)
	}
	if o.Margin < 0 || math.IsNaN(o.Margin) {
		return fmt.Errorf("%w: margin %v", ErrOptionViolation, o.Margin)
	}
	// Stage 3: duplicates.
	if o.Duplicates < 1 {
		return fmt.Errorf("%w: duplicates %d", ErrOptionViolation, o.Duplicates)
	}

	return nil
}

// Sheet is a finished arrangement. Regions sit inside the band
// [Margin, Margin+TapeWidth] except for strips taller than the band,
// which keep their bottom edge on the band floor.
type Sheet struct {
	Regions []*region.Region
	Width   float64 // mm
	Height  float64 // mm
}

// Arrange orients, centres and packs the strips into one tape band.
// Empty and nil regions are dropped; the inputs are never modified.
func Arrange(strips []*region.Region, opts Options) (*Sheet, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	// Stage 1: orient each strip flat, centre it in the band and
	// advance the cursor by its width.
	var set []*region.Region
	x := 0.0
	for _, s := range strips {
		if s == nil || s.Empty() {
			continue
		}
		r := s.Clone()
		h := r.RotateToMinHeight()
		r.TranslateToPositive()
		ypad := math.Max(0, (opts.TapeWidth-h)*0.5)
		_, tr, _ := r.Bounds()
		r.Translate(x, ypad)
		set = append(set, r)
		x += tr.X + opts.Gap
	}

	// Stage 2: replicate the whole set side by side and shift
	// everything in from the sheet margin.
	setW := 0.0
	if len(set) > 0 {
		setW = x - opts.Gap
	}
	placed := make([]*region.Region, 0, len(set)*opts.Duplicates)
	for i := 0; i < opts.Duplicates; i++ {
		xoff := float64(i) * (setW + opts.Gap)
		for _, r := range set {
			c := r.Clone()
			c.Translate(xoff+opts.Margin, opts.Margin)
			placed = append(placed, c)
		}
	}

	// Stage 3: size the sheet.
	w := fallbackWidth
	if len(set) > 0 {
		w = float64(opts.Duplicates)*setW +
			float64(opts.Duplicates-1)*opts.Gap +
			2*opts.Margin
	}
	sheet := &Sheet{
		Regions: placed,
		Width:   w,
		Height:  opts.TapeWidth + 2*opts.Margin,
	}
	washicut.Logger().Debug("arranged sheet",
		"strips", len(set), "duplicates", opts.Duplicates,
		"width_mm", sheet.Width, "height_mm", sheet.Height)

	return sheet, nil
}
