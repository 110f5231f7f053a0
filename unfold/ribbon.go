package unfold

import (
	"fmt"
	"math"
	"sort"
	"time"

	"zappem.net/pub/math/polygon"

	washicut "github.com/sayhiben/washi-cut"
	"github.com/sayhiben/washi-cut/facegraph"
	"github.com/sayhiben/washi-cut/region"
)

// coarseAngles is the probe set used to score states during the
// search. The full 1-degree scan only runs after planning, so the
// beam stays cheap.
var coarseAngles = [...]float64{0, 30, 45, 60, 90, 120, 150}

// ribbonState is one partial hinge path under consideration.
type ribbonState struct {
	coords map[int][]polygon.Point
	geom   *region.Region
	path   []int
	h      float64 // coarse height of geom
	area   float64 // merged area of geom
}

// ribbonEngine carries the invariant parts of one Ribbon call.
type ribbonEngine struct {
	g        *facegraph.Graph
	tape     float64
	beam     int
	overlap  float64
	deadline time.Time
}

// Ribbon searches for one hinge path that covers every face within the
// tape width. On success the single returned strip carries the full
// visiting order. ErrNoRibbon is the expected failure and callers
// usually fall back to Strips.
//
// Contract: deterministic given the graph and options. The deadline
// (Options.Timeout, floored at 100ms) is checked between rounds and
// between state expansions, never inside one, so the overrun is at
// most one expansion's cost. Memory is bounded by the beam width times
// candidate fan-out.
func Ribbon(g *facegraph.Graph, opts Options) (*Result, error) {
	// Stage 1: guards.
	if g == nil {
		return nil, ErrGraphNil
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	o := opts.withDefaults()

	// Stage 2: seed at the best-connected face, smaller id on ties.
	start, bestDeg := -1, 0
	for id := 0; id < len(g.Faces); id++ {
		if d := g.Degree(id); d > bestDeg {
			start, bestDeg = id, d
		}
	}
	if start < 0 {
		return nil, fmt.Errorf("%w: no connected faces", ErrNoRibbon)
	}

	// Stage 3: run the beam rounds.
	e := &ribbonEngine{
		g:        g,
		tape:     o.TapeWidth,
		beam:     o.Beam,
		overlap:  o.OverlapTol,
		deadline: time.Now().Add(o.Timeout),
	}

	return e.search(start)
}

func (e *ribbonEngine) search(start int) (*Result, error) {
	geom := region.New()
	if err := geom.Add(e.g.Faces[start].Local); err != nil {
		return nil, fmt.Errorf("unfold: seed face %d: %w", start, err)
	}
	live := []*ribbonState{{
		coords: map[int][]polygon.Point{start: clonePts(e.g.Faces[start].Local)},
		geom:   geom,
		path:   []int{start},
		h:      e.coarseHeight(geom),
		area:   geom.Area(),
	}}

	round := 0
	for len(live) > 0 {
		if time.Now().After(e.deadline) {
			break
		}

		// Keep the flattest states; stable so equal heights preserve
		// discovery order.
		sort.SliceStable(live, func(i, j int) bool { return live[i].h < live[j].h })
		if len(live) > e.beam {
			live = live[:e.beam]
		}
		round++
		washicut.Logger().Debug("ribbon round",
			"round", round, "states", len(live), "best_height", live[0].h,
			"placed", len(live[0].path))

		var next []*ribbonState
		for _, st := range live {
			if time.Now().After(e.deadline) {
				break
			}
			if res := e.expand(st, &next); res != nil {
				return res, nil
			}
		}
		live = next
	}

	return nil, fmt.Errorf("%w: tape width %v", ErrNoRibbon, e.tape)
}

// expand grows st by each unused neighbour of its last face, appending
// the survivors to next. A non-nil result means a state covered every
// face within the tape width.
func (e *ribbonEngine) expand(st *ribbonState, next *[]*ribbonState) *Result {
	type candidate struct {
		face   int
		placed []polygon.Point
		geom   *region.Region
		h      float64
	}

	last := st.path[len(st.path)-1]
	var cands []candidate
	for _, nb := range e.g.Adj[last] {
		if _, used := st.coords[nb]; used {
			continue
		}
		placed, err := placeChild(e.g, st.coords[last], last, nb)
		if err != nil {
			continue
		}

		ng := st.geom.Clone()
		if err := ng.Add(placed); err != nil {
			continue
		}
		ng.Merge()
		leak := st.area + region.LoopArea(placed) - ng.Area()
		if leak > e.overlap {
			continue
		}
		cands = append(cands, candidate{nb, placed, ng, e.coarseHeight(ng)})
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].h < cands[j].h })

	for _, c := range cands {
		coords := make(map[int][]polygon.Point, len(st.coords)+1)
		for id, pts := range st.coords {
			coords[id] = pts
		}
		coords[c.face] = c.placed
		path := append(clonePath(st.path), c.face)

		if len(coords) == len(e.g.Faces) && c.h <= e.tape+heightTol {
			washicut.Logger().Debug("ribbon complete",
				"faces", len(coords), "height", c.h)

			return &Result{Strips: []StripNet{{Coords: coords, Order: path}}}
		}
		*next = append(*next, &ribbonState{
			coords: coords,
			geom:   c.geom,
			path:   path,
			h:      c.h,
			area:   c.geom.Area(),
		})
	}

	return nil
}

func (e *ribbonEngine) coarseHeight(r *region.Region) float64 {
	h := math.Inf(1)
	for _, a := range coarseAngles {
		h = math.Min(h, r.HeightAt(a))
	}

	return h
}

func clonePath(p []int) []int {
	return append([]int(nil), p...)
}
