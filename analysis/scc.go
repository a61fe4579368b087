package analysis

import "github.com/JieGou/Tomato/core"

// NonLoopVertices computes the strongly connected components of g and
// returns every vertex whose component contains only itself — no partner
// is reachable both ways, so the vertex takes part in no loop. All other
// vertices belong to some cycle. This is the basis of all dangling
// detection.
//
// A lone vertex whose only edge is a self-loop still counts as non-loop:
// loop-bearing single points must be made explicit by the builder's
// synthetic 2-cycle mode instead.
//
// Complexity: O(V + E) (iterative Tarjan).
func NonLoopVertices(g *core.Graph) (VertexSet, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	verts := g.Vertices()
	index := make(map[core.CurveVertex]int, len(verts))
	lowlink := make(map[core.CurveVertex]int, len(verts))
	onStack := make(map[core.CurveVertex]bool, len(verts))
	var tarjanStack []core.CurveVertex
	next := 0

	out := make(VertexSet)

	// frame replaces the usual recursive call: v plus a cursor over its
	// out-edges.
	type frame struct {
		v     core.CurveVertex
		edges []core.Edge
		i     int
	}

	for _, root := range verts {
		if _, seen := index[root]; seen {
			continue
		}

		index[root] = next
		lowlink[root] = next
		next++
		onStack[root] = true
		tarjanStack = append(tarjanStack, root)
		stack := []frame{{v: root, edges: g.OutEdges(root)}}

		for len(stack) > 0 {
			f := &stack[len(stack)-1]

			if f.i < len(f.edges) {
				w := f.edges[f.i].Target
				f.i++
				if _, seen := index[w]; !seen {
					index[w] = next
					lowlink[w] = next
					next++
					onStack[w] = true
					tarjanStack = append(tarjanStack, w)
					stack = append(stack, frame{v: w, edges: g.OutEdges(w)})
				} else if onStack[w] && index[w] < lowlink[f.v] {
					lowlink[f.v] = index[w]
				}

				continue
			}

			// All out-edges explored: close v, propagate its lowlink.
			v := f.v
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				parent := stack[len(stack)-1].v
				if lowlink[v] < lowlink[parent] {
					lowlink[parent] = lowlink[v]
				}
			}

			if lowlink[v] != index[v] {
				continue
			}
			// v roots a component: pop its members.
			size := 0
			var last core.CurveVertex
			for {
				w := tarjanStack[len(tarjanStack)-1]
				tarjanStack = tarjanStack[:len(tarjanStack)-1]
				onStack[w] = false
				size++
				last = w
				if w == v {
					break
				}
			}
			if size == 1 {
				out[last] = struct{}{}
			}
		}
	}

	return out, nil
}
