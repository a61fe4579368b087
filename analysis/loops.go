package analysis

import "github.com/JieGou/Tomato/core"

// Loops enumerates the graph's explicit cycles: depth-first search records
// one loop per discovered back edge — an edge whose target is an ancestor
// on the current DFS path. The minimal cycle is rebuilt by prepending the
// discovery (predecessor) edge of the current edge's source until the
// chain closes on the back edge's target.
//
// Each back edge yields exactly one loop, so loops sharing vertices are
// reported once per back edge — a theta graph yields two overlapping
// reports. Callers get every independent cycle, not a minimal cover.
func Loops(g *core.Graph) ([][]core.Edge, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	verts := g.Vertices()
	state := make(map[core.CurveVertex]int, len(verts))
	// discovery[v] is the tree edge that first reached v.
	discovery := make(map[core.CurveVertex]core.Edge, len(verts))

	var loops [][]core.Edge

	type frame struct {
		v     core.CurveVertex
		edges []core.Edge
		i     int
	}

	for _, root := range verts {
		if state[root] != white {
			continue
		}
		state[root] = gray
		stack := []frame{{v: root, edges: g.OutEdges(root)}}

		for len(stack) > 0 {
			f := &stack[len(stack)-1]

			if f.i < len(f.edges) {
				e := f.edges[f.i]
				f.i++
				switch state[e.Target] {
				case white:
					state[e.Target] = gray
					discovery[e.Target] = e
					stack = append(stack, frame{v: e.Target, edges: g.OutEdges(e.Target)})
				case gray:
					// Back edge to an ancestor: one explicit loop.
					loops = append(loops, rebuildLoop(e, discovery))
				}
				// black targets are cross/forward edges; no cycle there.

				continue
			}

			state[f.v] = black
			stack = stack[:len(stack)-1]
		}
	}

	return loops, nil
}

// rebuildLoop closes the cycle for back edge e by walking discovery edges
// from e.Source back up to e.Target.
func rebuildLoop(e core.Edge, discovery map[core.CurveVertex]core.Edge) []core.Edge {
	loop := []core.Edge{e}
	cur := e.Source
	for cur != e.Target {
		pe := discovery[cur]
		loop = append([]core.Edge{pe}, loop...)
		cur = pe.Source
	}

	return loop
}

// IDsInLoop derives from the loop sets every curve id that owns a genuine
// in-loop edge — an edge whose source and target belong to that same
// curve. Coincidence links between two curves never qualify.
func IDsInLoop(g *core.Graph) (IDSet, error) {
	loops, err := Loops(g)
	if err != nil {
		return nil, err
	}

	out := make(IDSet)
	for _, loop := range loops {
		for _, e := range loop {
			if e.SameOwner() {
				out[e.Source.ID] = struct{}{}
			}
		}
	}

	return out, nil
}
