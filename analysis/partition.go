package analysis

import "github.com/JieGou/Tomato/core"

// Partition groups the graph's curve ids into maximal sets that are
// mutually reachable through shared endpoints, ignoring edge direction and
// ignoring strong connectivity. Every id present in the graph lands in
// exactly one group and groups are disjoint; only an id that contributed
// no vertices at all (missing geometry) is dropped rather than silently
// merged somewhere. An edge-less vertex forms a singleton group.
//
// Complexity: O(V + E).
func Partition(g *core.Graph) ([]IDSet, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	// Direction-agnostic adjacency: out-edges plus their reversals.
	verts := g.Vertices()
	neighbors := make(map[core.CurveVertex][]core.CurveVertex, len(verts))
	for _, e := range g.Edges() {
		neighbors[e.Source] = append(neighbors[e.Source], e.Target)
		neighbors[e.Target] = append(neighbors[e.Target], e.Source)
	}

	seen := make(map[core.CurveVertex]bool, len(verts))
	var groups []IDSet

	for _, root := range verts {
		if seen[root] {
			continue
		}
		// Grow the group breadth-wise from the root.
		seen[root] = true
		queue := []core.CurveVertex{root}
		ids := make(IDSet)
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			ids[u.ID] = struct{}{}
			for _, w := range neighbors[u] {
				if !seen[w] {
					seen[w] = true
					queue = append(queue, w)
				}
			}
		}
		groups = append(groups, ids)
	}

	return groups, nil
}
