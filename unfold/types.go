package unfold

import (
	"errors"
	"fmt"
	"math"
	"time"

	"zappem.net/pub/math/polygon"
)

const (
	// heightTol pads tape-width comparisons against float noise.
	heightTol = 1e-6

	// timeoutFloor is the least wall-clock budget the ribbon search
	// will accept.
	timeoutFloor = 100 * time.Millisecond

	defaultBeam       = 24
	defaultTimeout    = 2 * time.Second
	defaultOverlapTol = 1e-4
)

// Sentinel errors.
var (
	// ErrGraphNil fires when a planner receives a nil graph.
	ErrGraphNil = errors.New("unfold: graph is nil")

	// ErrOptionViolation covers every Validate failure.
	ErrOptionViolation = errors.New("unfold: invalid options")

	// ErrNoHinge marks a placement request for two faces that do not
	// share a boundary edge.
	ErrNoHinge = errors.New("unfold: faces share no hinge edge")

	// ErrNoRibbon reports that no single hinge path covering all faces
	// fits the tape width within the search budget. Callers usually
	// fall back to Strips.
	ErrNoRibbon = errors.New("unfold: no single ribbon found")
)

// StripNet is one planar strip: every face of the strip placed into a
// common frame.
type StripNet struct {
	// Coords maps face id to its placed outline, congruent to the
	// face's local flattening.
	Coords map[int][]polygon.Point

	// Order is the hinge path for ribbon results and nil for strips
	// grown breadth-first.
	Order []int
}

// Result is a complete unfolding. Strips from the breadth-first
// planner partition the faces; the ribbon planner returns exactly one
// strip covering everything.
type Result struct {
	Strips []StripNet
}

// FaceCount returns the number of placed faces across all strips.
func (r *Result) FaceCount() int {
	n := 0
	for _, s := range r.Strips {
		n += len(s.Coords)
	}

	return n
}

// Options tunes both planners. Zero values select the documented
// defaults; TapeWidth has no default and must be set.
type Options struct {
	// TapeWidth is the height bound of every strip in millimetres.
	TapeWidth float64

	// Beam is the number of states the ribbon search keeps per round.
	// 0 means 24.
	Beam int

	// Timeout is the ribbon search's wall-clock budget, floored at
	// 100ms. 0 means 2s.
	Timeout time.Duration

	// OverlapTol is the area overlap, in square millimetres, tolerated
	// when a candidate face lands on the ribbon. 0 means 1e-4.
	OverlapTol float64

	// Seed is reserved for future stochastic tie-breaking. Both
	// planners are currently deterministic and ignore it.
	Seed int64
}

// DefaultOptions returns the documented defaults with TapeWidth unset.
func DefaultOptions() Options {
	return Options{
		Beam:       defaultBeam,
		Timeout:    defaultTimeout,
		OverlapTol: defaultOverlapTol,
	}
}

// Validate checks the options stage by stage, wrapping every failure
// in ErrOptionViolation.
func (o *Options) Validate() error {
	// Stage 1: the tape must bound a positive, finite band.
	if math.IsNaN(o.TapeWidth) || math.IsInf(o.TapeWidth, 0) || o.TapeWidth <= 0 {
		return fmt.Errorf("%w: tape width %v must be a positive finite number", ErrOptionViolation, o.TapeWidth)
	}

	// Stage 2: beam width 0 selects the default, negatives are
	// meaningless.
	if o.Beam < 0 {
		return fmt.Errorf("%w: beam %d must not be negative", ErrOptionViolation, o.Beam)
	}

	// Stage 3: overlap tolerance 0 selects the default.
	if math.IsNaN(o.OverlapTol) || o.OverlapTol < 0 {
		return fmt.Errorf("%w: overlap tolerance %v must not be negative", ErrOptionViolation, o.OverlapTol)
	}

	// Stage 4: any timeout is accepted; the floor handles the rest.
	return nil
}

// withDefaults fills unset fields. Callers validate first.
func (o Options) withDefaults() Options {
	if o.Beam == 0 {
		o.Beam = defaultBeam
	}
	if o.Timeout == 0 {
		o.Timeout = defaultTimeout
	}
	if o.Timeout < timeoutFloor {
		o.Timeout = timeoutFloor
	}
	if o.OverlapTol == 0 {
		o.OverlapTol = defaultOverlapTol
	}

	return o
}
