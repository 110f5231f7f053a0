package unfold

import (
	"math"

	"zappem.net/pub/math/polygon"

	washicut "github.com/sayhiben/washi-cut"
	"github.com/sayhiben/washi-cut/facegraph"
)

// stripWalker grows one breadth-first strip at a time until every face
// is placed.
type stripWalker struct {
	g        *facegraph.Graph
	tape     float64
	unplaced map[int]struct{}
	strips   []StripNet
}

// Strips unfolds the whole graph into height-bounded strips. Every
// face is placed exactly once; faces that would push a strip past the
// tape width stay behind and seed later strips. Deterministic for a
// given graph.
//
// Complexity: O(F * d) placements with F faces and d the maximum
// degree, each placement linear in the face's loop length.
func Strips(g *facegraph.Graph, opts Options) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	w := &stripWalker{
		g:        g,
		tape:     opts.TapeWidth,
		unplaced: make(map[int]struct{}, len(g.Faces)),
	}
	for id := range g.Faces {
		w.unplaced[id] = struct{}{}
	}

	for len(w.unplaced) > 0 {
		w.grow(w.pickRoot())
	}
	washicut.Logger().Debug("strips grown",
		"strips", len(w.strips), "faces", len(g.Faces))

	return &Result{Strips: w.strips}, nil
}

// pickRoot selects the unplaced face with the highest degree, smaller
// id on ties.
func (w *stripWalker) pickRoot() int {
	best, bestDeg := -1, -1
	for id := 0; id < len(w.g.Faces); id++ {
		if _, open := w.unplaced[id]; !open {
			continue
		}
		if d := w.g.Degree(id); d > bestDeg {
			best, bestDeg = id, d
		}
	}

	return best
}

// grow places root at its local coordinates and expands outward while
// the strip's running Y extent stays within the tape width. A face
// rejected for height keeps its claim in parentOf, so it is never
// retried within this strip and stays available to seed a later one.
func (w *stripWalker) grow(root int) {
	coords := map[int][]polygon.Point{root: clonePts(w.g.Faces[root].Local)}
	delete(w.unplaced, root)
	yMin, yMax := extentY(coords[root])

	parentOf := make(map[int]int)
	var queue []int
	enqueue := func(parent int) {
		for _, nb := range w.g.Adj[parent] {
			if _, open := w.unplaced[nb]; !open {
				continue
			}
			if _, claimed := parentOf[nb]; claimed {
				continue
			}
			parentOf[nb] = parent
			queue = append(queue, nb)
		}
	}
	enqueue(root)

	for len(queue) > 0 {
		child := queue[0]
		queue = queue[1:]
		if _, open := w.unplaced[child]; !open {
			continue
		}
		parentCoords, ok := coords[parentOf[child]]
		if !ok {
			continue
		}

		placed, err := placeChild(w.g, parentCoords, parentOf[child], child)
		if err != nil {
			continue
		}
		lo, hi := extentY(placed)
		newMin, newMax := math.Min(yMin, lo), math.Max(yMax, hi)
		if newMax-newMin > w.tape+heightTol {
			continue
		}

		coords[child] = placed
		delete(w.unplaced, child)
		yMin, yMax = newMin, newMax
		enqueue(child)
	}

	washicut.Logger().Debug("strip closed",
		"root", root, "faces", len(coords), "height", yMax-yMin)
	w.strips = append(w.strips, StripNet{Coords: coords})
}
