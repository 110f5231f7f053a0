package mesh

import (
	"math"
	"sort"

	"github.com/fogleman/fauxgl"
)

// Facets groups triangles into maximal coplanar patches: two triangles
// belong to the same facet when they are connected through shared edges
// whose adjacent normals differ by at most angleTol radians.
// angleTol <= 0 selects DefaultFacetAngle.
//
// Every triangle lands in exactly one group; a triangle with no
// coplanar neighbor forms a single-triangle facet, so the groups always
// cover the whole surface. Groups are ordered by their smallest
// triangle index, members ascending, which keeps downstream face ids
// deterministic.
//
// Returns ErrNonManifoldEdge from the underlying adjacency scan.
//
// Complexity: O(T α(T)) over the adjacency relation (union-find with
// path compression and union by rank).
func (m *Mesh) Facets(angleTol float64) ([][]int, error) {
	if angleTol <= 0 {
		angleTol = DefaultFacetAngle
	}
	pairs, _, err := m.Adjacency()
	if err != nil {
		return nil, err
	}

	normals := make([]fauxgl.Vector, len(m.Tris))
	for i := range m.Tris {
		normals[i] = m.TriNormal(i)
	}
	cosTol := math.Cos(angleTol)

	// Disjoint-set over triangle indices.
	n := len(m.Tris)
	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	find := func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}

		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra == rb {
			return
		}
		if rank[ra] < rank[rb] {
			ra, rb = rb, ra
		}
		parent[rb] = ra
		if rank[ra] == rank[rb] {
			rank[ra]++
		}
	}

	for _, p := range pairs {
		if normals[p[0]].Dot(normals[p[1]]) >= cosTol {
			union(p[0], p[1])
		}
	}

	// Emit groups keyed by root; member lists come out ascending because
	// triangles are scanned in index order.
	groups := make(map[int][]int, n)
	for i := 0; i < n; i++ {
		r := find(i)
		groups[r] = append(groups[r], i)
	}
	roots := make([]int, 0, len(groups))
	for r := range groups {
		roots = append(roots, r)
	}
	sort.Slice(roots, func(a, b int) bool { return groups[roots[a]][0] < groups[roots[b]][0] })

	out := make([][]int, 0, len(roots))
	for _, r := range roots {
		out = append(out, groups[r])
	}

	return out, nil
}
