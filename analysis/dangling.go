package analysis

import (
	"sort"

	"github.com/JieGou/Tomato/core"
)

// DanglingVertices returns every endpoint that hangs loose: a vertex that
// is both a path terminal of the depth-first forest (no unvisited
// successor remained when it was expanded) and not part of any loop.
// The forest is rooted at vertices without incoming edges, so a stub
// chain is always entered from its start.
// For each such vertex the DFS predecessor chain is walked back to its
// root; a root that is itself non-loop is reported too, so both ends of an
// isolated dangling segment are flagged, not just the far one.
//
// An isolated curve touching nothing produces exactly its two own
// endpoints here.
func DanglingVertices(g *core.Graph) (VertexSet, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	nonLoop, err := NonLoopVertices(g)
	if err != nil {
		return nil, err
	}

	verts := g.Vertices()
	indegree := make(map[core.CurveVertex]int, len(verts))
	for _, e := range g.Edges() {
		indegree[e.Target]++
	}

	visited := make(map[core.CurveVertex]bool, len(verts))
	pred := make(map[core.CurveVertex]core.CurveVertex, len(verts))
	terminal := make(map[core.CurveVertex]bool)

	// Iterative DFS recording predecessors and terminals.
	walk := func(root core.CurveVertex) {
		if visited[root] {
			return
		}
		visited[root] = true
		stack := []core.CurveVertex{root}
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			progressed := false
			for _, e := range g.OutEdges(v) {
				if visited[e.Target] {
					continue
				}
				visited[e.Target] = true
				pred[e.Target] = v
				stack = append(stack, e.Target)
				progressed = true
			}
			if !progressed {
				terminal[v] = true
			}
		}
	}

	// Root the forest at vertices nothing points to, so a chain is always
	// walked from its natural start regardless of how its vertices sort;
	// starting inside a chain would misreport its sink-side remainder.
	// Whatever remains afterwards sits on cycles and is swept separately.
	for _, root := range verts {
		if indegree[root] == 0 {
			walk(root)
		}
	}
	for _, root := range verts {
		walk(root)
	}

	out := make(VertexSet)
	for _, v := range verts {
		if !terminal[v] || !nonLoop.Contains(v) {
			continue
		}
		out[v] = struct{}{}

		// Walk back to the path root; a non-loop root is the near end of
		// the same stub.
		r := v
		for {
			p, ok := pred[r]
			if !ok {
				break
			}
			r = p
		}
		if r != v && nonLoop.Contains(r) {
			out[r] = struct{}{}
		}
	}

	return out, nil
}

// DanglingPaths extracts the stub segments hanging off the main structure:
// the out-edges of all non-loop vertices form a sub-graph, and every
// root-to-leaf path of its depth-first forest is returned. Roots are the
// sub-graph vertices without incoming sub-graph edges (falling back to any
// still-unvisited vertex), so each stub is reported from its attachment
// outwards.
func DanglingPaths(g *core.Graph) ([][]core.Edge, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	nonLoop, err := NonLoopVertices(g)
	if err != nil {
		return nil, err
	}

	// Sub-graph restricted to edges leaving non-loop vertices. Targets may
	// be loop vertices; they simply have no outgoing sub-edges.
	sub := make(map[core.CurveVertex][]core.Edge, len(nonLoop))
	indegree := make(map[core.CurveVertex]int)
	for _, v := range g.Vertices() {
		if !nonLoop.Contains(v) {
			continue
		}
		edges := g.OutEdges(v)
		sub[v] = edges
		for _, e := range edges {
			indegree[e.Target]++
		}
	}

	roots := make([]core.CurveVertex, 0, len(sub))
	for v := range sub {
		if indegree[v] == 0 {
			roots = append(roots, v)
		}
	}
	sortVertices(roots)

	var paths [][]core.Edge
	visited := make(map[core.CurveVertex]bool, len(sub))

	// frame keeps an out-edge cursor plus the length of the edge path that
	// led into the frame's vertex.
	type frame struct {
		edges []core.Edge
		i     int
		moved bool // a child frame was entered from here
		depth int
	}

	walk := func(root core.CurveVertex) {
		if visited[root] {
			return
		}
		visited[root] = true

		var path []core.Edge
		stack := []frame{{edges: sub[root]}}
		for len(stack) > 0 {
			f := &stack[len(stack)-1]

			advanced := false
			for f.i < len(f.edges) {
				e := f.edges[f.i]
				f.i++
				if visited[e.Target] {
					continue
				}
				visited[e.Target] = true
				path = append(path, e)
				f.moved = true
				stack = append(stack, frame{edges: sub[e.Target], depth: len(path)})
				advanced = true

				break
			}
			if advanced {
				continue
			}

			// Exhausted. A frame that never entered a child is a leaf of
			// the sub-graph forest: record the root-to-leaf path.
			if !f.moved && len(path) > 0 {
				paths = append(paths, append([]core.Edge(nil), path...))
			}
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				// Drop this frame's incoming edge: resume the parent with
				// the path it had when it entered this child.
				path = path[:stack[len(stack)-1].depth]
			}
		}
	}

	for _, root := range roots {
		walk(root)
	}
	// Anything left unvisited sits on a sub-graph cycle of non-loop…
	// cannot happen for SCC singletons, but stay total: sweep the rest.
	rest := make([]core.CurveVertex, 0)
	for v := range sub {
		if !visited[v] {
			rest = append(rest, v)
		}
	}
	sortVertices(rest)
	for _, root := range rest {
		walk(root)
	}

	return paths, nil
}

// sortVertices orders vertices by (X, Y, ID), matching Graph.Vertices.
func sortVertices(verts []core.CurveVertex) {
	sort.Slice(verts, func(i, j int) bool {
		a, b := verts[i], verts[j]
		if a.Point.X != b.Point.X {
			return a.Point.X < b.Point.X
		}
		if a.Point.Y != b.Point.Y {
			return a.Point.Y < b.Point.Y
		}

		return a.ID < b.ID
	})
}
