package facegraph

import (
	"fmt"
	"sort"

	washicut "github.com/sayhiben/washi-cut"
	"github.com/sayhiben/washi-cut/mesh"
)

// Build flattens m into a face graph.
//
// Contract: m must be a closed manifold shell (every interior edge
// owned by exactly two triangles). Open boundary edges simply produce
// no adjacency; anything claimed by more than two faces is rejected
// with ErrNonManifold.
//
// Complexity: O(T) for grouping and flattening plus O(F·d log d) for
// neighbour ordering, T triangles, F faces, d max degree.
func Build(m *mesh.Mesh, opts Options) (*Graph, error) {
	if m == nil {
		return nil, ErrMeshNil
	}

	var (
		g   *Graph
		err error
	)
	if opts.Triangles {
		g, err = buildTriangles(m)
	} else {
		g, err = buildFacets(m, opts.AngleTol)
	}
	if err != nil {
		return nil, err
	}

	for i := range g.Adj {
		sort.Ints(g.Adj[i])
	}
	washicut.Logger().Debug("face graph built",
		"faces", len(g.Faces), "triangle_mode", opts.Triangles)

	return g, nil
}

// buildTriangles keeps one face per triangle and takes adjacency
// straight from the mesh's shared-edge relation.
func buildTriangles(m *mesh.Mesh) (*Graph, error) {
	faces := make([]Face, len(m.Tris))
	for i, t := range m.Tris {
		loop := []int{t[0], t[1], t[2]}
		local, err := flatten(m, loop)
		if err != nil {
			return nil, fmt.Errorf("face %d: %w", i, err)
		}
		faces[i] = Face{ID: i, Loop: loop, Local: local, Normal: m.TriNormal(i)}
	}

	pairs, edges, err := m.Adjacency()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNonManifold, err)
	}

	g := &Graph{
		Faces:  faces,
		Adj:    make([][]int, len(faces)),
		shared: make(map[[2]int][2]int, len(pairs)*2),
	}
	for i, p := range pairs {
		g.Adj[p[0]] = append(g.Adj[p[0]], p[1])
		g.Adj[p[1]] = append(g.Adj[p[1]], p[0])
		g.shared[[2]int{p[0], p[1]}] = edges[i]
		g.shared[[2]int{p[1], p[0]}] = edges[i]
	}

	return g, nil
}

// buildFacets merges coplanar triangle runs into facets, walks each
// facet's boundary into a loop and derives adjacency from the loops'
// edges.
func buildFacets(m *mesh.Mesh, angleTol float64) (*Graph, error) {
	groups, err := m.Facets(angleTol)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNonManifold, err)
	}

	faces := make([]Face, len(groups))
	for gi, group := range groups {
		var loop []int
		if len(group) == 1 {
			t := m.Tris[group[0]]
			loop = []int{t[0], t[1], t[2]}
		} else {
			loop, err = facetBoundary(m, group)
			if err != nil {
				return nil, fmt.Errorf("facet %d: %w", gi, err)
			}
		}
		local, err := flatten(m, loop)
		if err != nil {
			return nil, fmt.Errorf("facet %d: %w", gi, err)
		}
		faces[gi] = Face{ID: gi, Loop: loop, Local: local, Normal: m.TriNormal(group[0])}
	}

	// Loop edges keyed (min,max) vertex pair; a pair of facets on both
	// sides of an edge becomes a hinge.
	type rec struct {
		key   [2]int
		faces []int
	}
	index := make(map[[2]int]int)
	recs := make([]rec, 0, len(faces)*4)
	for fid := range faces {
		loop := faces[fid].Loop
		for k := range loop {
			a, b := loop[k], loop[(k+1)%len(loop)]
			if a > b {
				a, b = b, a
			}
			key := [2]int{a, b}
			i, ok := index[key]
			if !ok {
				i = len(recs)
				index[key] = i
				recs = append(recs, rec{key: key})
			}
			recs[i].faces = append(recs[i].faces, fid)
		}
	}

	g := &Graph{
		Faces:  faces,
		Adj:    make([][]int, len(faces)),
		shared: make(map[[2]int][2]int, len(recs)*2),
	}
	for _, r := range recs {
		switch len(r.faces) {
		case 1:
			// open shell boundary edge
		case 2:
			i, j := r.faces[0], r.faces[1]
			g.Adj[i] = append(g.Adj[i], j)
			g.Adj[j] = append(g.Adj[j], i)
			g.shared[[2]int{i, j}] = r.key
			g.shared[[2]int{j, i}] = r.key
		default:
			return nil, fmt.Errorf("%w: edge (%d,%d) shared by %d faces",
				ErrNonManifold, r.key[0], r.key[1], len(r.faces))
		}
	}

	return g, nil
}

// facetBoundary collects the edges used exactly once inside the group
// and orders them into a single closed loop by a degree-2 walk.
func facetBoundary(m *mesh.Mesh, group []int) ([]int, error) {
	type edge [2]int
	count := make(map[edge]int, len(group)*3)
	order := make([]edge, 0, len(group)*3)
	for _, ti := range group {
		t := m.Tris[ti]
		for k := 0; k < 3; k++ {
			a, b := t[k], t[(k+1)%3]
			if a > b {
				a, b = b, a
			}
			e := edge{a, b}
			if count[e] == 0 {
				order = append(order, e)
			}
			count[e]++
		}
	}

	nbrs := make(map[int][]int)
	boundary := 0
	var first edge
	for _, e := range order {
		if count[e] != 1 {
			continue
		}
		if boundary == 0 {
			first = e
		}
		boundary++
		nbrs[e[0]] = append(nbrs[e[0]], e[1])
		nbrs[e[1]] = append(nbrs[e[1]], e[0])
	}
	if boundary == 0 {
		return nil, fmt.Errorf("%w: facet has no boundary", ErrNonManifold)
	}

	start := first[0]
	loop := []int{start}
	prev, curr := -1, start
	for {
		ns := nbrs[curr]
		if len(ns) != 2 {
			return nil, fmt.Errorf("%w: vertex %d has boundary degree %d",
				ErrNonManifold, curr, len(ns))
		}
		next := ns[0]
		if next == prev {
			next = ns[1]
		}
		if next == start {
			break
		}
		loop = append(loop, next)
		prev, curr = curr, next
	}
	if len(loop) != boundary {
		return nil, fmt.Errorf("%w: facet boundary splits into multiple loops", ErrNonManifold)
	}

	return loop, nil
}
