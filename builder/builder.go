package builder

import (
	"github.com/JieGou/Tomato/core"
	"github.com/JieGou/Tomato/kdtree"
)

// workItem schedules a curve visit. src is the already-emitted graph vertex
// the curve was discovered from; nil marks a traversal root.
type workItem struct {
	id  core.CurveID
	src *core.CurveVertex
}

// anchorKey identifies "curve id stands at point" for back-edge targeting.
type anchorKey struct {
	id    core.CurveID
	point core.Point
}

// graphBuilder holds the per-call traversal state. A fresh instance is made
// for every Build, so nothing is shared across invocations.
type graphBuilder struct {
	opts      Options
	endpoints map[core.CurveID][]core.Point
	index     *kdtree.Tree
	graph     *core.Graph
	visited   map[core.CurveID]bool
	stack     []workItem
	// anchors records, per (id, point), the first graph vertex that came to
	// stand for that curve at that location — either the curve's own chain
	// vertex or the vertex it was scheduled from. Back edges resolve their
	// target here so they always land on a vertex the graph contains.
	anchors map[anchorKey]core.CurveVertex
}

// Build constructs the topology multigraph for ids, pulling endpoints from
// src. The id set must be non-empty and src non-nil; ids without endpoints
// are soft-skipped. See the package documentation for the traversal rules.
func Build(src EndpointSource, ids []core.CurveID, opts ...Option) (*core.Graph, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	ordered := dedupIDs(ids)
	if len(ordered) == 0 {
		return nil, ErrNoCurves
	}

	b := &graphBuilder{
		opts:      o,
		endpoints: make(map[core.CurveID][]core.Point, len(ordered)),
		graph:     core.NewGraph(),
		visited:   make(map[core.CurveID]bool, len(ordered)),
		anchors:   make(map[anchorKey]core.CurveVertex),
	}

	// One endpoint fetch per id; every endpoint of every curve is indexed.
	var indexed []core.CurveVertex
	for _, id := range ordered {
		pts := src.CurveEndpoints(id)
		b.endpoints[id] = pts
		for _, p := range pts {
			indexed = append(indexed, core.CurveVertex{Point: p, ID: id})
		}
	}
	b.index = kdtree.Build(indexed)

	// Drain the worklist per island; every id still unvisited afterwards
	// (disjoint island, or abandoned from all directions) roots a new
	// traversal of its own.
	for _, id := range ordered {
		if b.visited[id] {
			continue
		}
		b.stack = append(b.stack, workItem{id: id})
		b.drain()
	}

	return b.graph, nil
}

// drain pops and visits work items until the stack is empty.
func (b *graphBuilder) drain() {
	for len(b.stack) > 0 {
		it := b.stack[len(b.stack)-1]
		b.stack = b.stack[:len(b.stack)-1]
		if b.visited[it.id] {
			continue
		}
		b.visit(it)
	}
}

// visit emits the edges contributed by one curve and schedules the curves
// coincident with its endpoints.
func (b *graphBuilder) visit(it workItem) {
	pts := b.endpoints[it.id]
	if len(pts) == 0 {
		// Missing geometry: soft skip, contributes nothing.
		b.visited[it.id] = true

		return
	}

	verts := distinctVertices(it.id, pts)

	// A curve reached from src must actually touch src's point; otherwise
	// abandon this visit — the curve stays unvisited and is reached later
	// from another direction, or roots its own traversal.
	if it.src != nil && indexOfPoint(verts, it.src.Point) < 0 {
		return
	}
	b.visited[it.id] = true

	// The chain reuses the source vertex wherever the curve touches its
	// point, so the new edges attach to the already-emitted graph instead
	// of spawning a twin vertex at the shared location.
	chain := append([]core.CurveVertex(nil), verts...)
	anchorIdx := 0
	if it.src != nil {
		for i := range verts {
			if verts[i].Point == it.src.Point {
				chain[i] = *it.src
			}
		}
		anchorIdx = indexOfPoint(verts, it.src.Point)
	}

	for i := range verts {
		b.recordAnchor(it.id, verts[i].Point, chain[i])
		if it.src != nil && verts[i].Point == it.src.Point {
			continue // the connection point was already explored by the pusher
		}
		b.coincidences(verts[i], chain[i])
	}

	if len(verts) == 1 {
		// Raw self-loop: the curve starts and ends at one point. The default
		// keeps just the edge-less vertex, so the id still lands in its own
		// partition group; opt-in mode emits a synthetic 2-cycle instead so
		// the vertex counts as loop-bearing.
		if b.opts.SelfLoopEdges {
			b.emitSelfLoop(it.id, chain[0])
		} else {
			b.graph.AddVertex(chain[0])
		}

		return
	}

	b.emitChain(it.id, chain, anchorIdx)
}

// coincidences queries the spatial index around the curve's own vertex and
// either schedules unvisited coincident curves or closes loops back into
// the already-emitted graph. current is the graph vertex standing at that
// location for the curve being visited.
func (b *graphBuilder) coincidences(own, current core.CurveVertex) {
	for _, hit := range b.index.Query(own.Point, b.opts.AdjacencyRadius) {
		if hit.ID == own.ID {
			continue
		}
		if b.visited[hit.ID] {
			b.closeLoop(current, hit)

			continue
		}
		src := current
		b.stack = append(b.stack, workItem{id: hit.ID, src: &src})
		b.recordAnchor(hit.ID, hit.Point, current)
	}
}

// closeLoop emits the back edge that makes a rediscovered coincidence
// explicit: current connects to the vertex recorded for (hit.ID, point),
// falling back to the indexed vertex itself for traversal roots.
func (b *graphBuilder) closeLoop(current core.CurveVertex, hit core.CurveVertex) {
	target, ok := b.anchors[anchorKey{id: hit.ID, point: hit.Point}]
	if !ok {
		target = hit
	}
	if !b.graph.HasVertex(target) {
		// The coincident curve never contributed edges here (e.g. all its
		// endpoints collapsed); there is nothing to connect to.
		return
	}
	b.graph.AddEdge(core.Edge{Source: current, Target: target})
}

// emitChain walks the chain outward in both directions from the anchor,
// inserting one synthetic midpoint vertex between each consecutive pair.
// The midpoint keeps a curve whose two endpoints both lie on a loop from
// being strongly connected through its own body.
func (b *graphBuilder) emitChain(id core.CurveID, chain []core.CurveVertex, anchorIdx int) {
	for i := anchorIdx; i > 0; i-- {
		b.emitStep(id, chain[i], chain[i-1])
	}
	for i := anchorIdx; i < len(chain)-1; i++ {
		b.emitStep(id, chain[i], chain[i+1])
	}
}

// emitStep emits from→mid and mid→to for one consecutive endpoint pair.
func (b *graphBuilder) emitStep(id core.CurveID, from, to core.CurveVertex) {
	mid := core.CurveVertex{Point: from.Point.MidpointTo(to.Point), ID: id}
	b.graph.AddEdge(core.Edge{Source: from, Target: mid})
	b.graph.AddEdge(core.Edge{Source: mid, Target: to})
}

// emitSelfLoop emits the opt-in 2-cycle for a single-point curve: one
// synthetic vertex near the real location, connected both ways, so the SCC
// test still classifies the vertex as loop-bearing.
func (b *graphBuilder) emitSelfLoop(id core.CurveID, base core.CurveVertex) {
	ghost := core.CurveVertex{
		Point: core.Point{X: base.Point.X + b.opts.AdjacencyRadius/2, Y: base.Point.Y},
		ID:    id,
	}
	b.graph.AddEdge(core.Edge{Source: base, Target: ghost})
	b.graph.AddEdge(core.Edge{Source: ghost, Target: base})
}

// recordAnchor stores the graph vertex standing for (id, point) unless one
// was recorded earlier; the first recording wins.
func (b *graphBuilder) recordAnchor(id core.CurveID, p core.Point, v core.CurveVertex) {
	key := anchorKey{id: id, point: p}
	if _, ok := b.anchors[key]; !ok {
		b.anchors[key] = v
	}
}

// distinctVertices collapses consecutive equal endpoints into one vertex
// each. A curve that starts and ends at the same point therefore collapses
// to a single vertex only when every endpoint coincides; a closed polyline
// keeps its duplicated terminal vertex and closes through value equality.
func distinctVertices(id core.CurveID, pts []core.Point) []core.CurveVertex {
	out := make([]core.CurveVertex, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && out[len(out)-1].Point == p {
			continue
		}
		out = append(out, core.CurveVertex{Point: p, ID: id})
	}

	return out
}

// indexOfPoint returns the first chain index whose point equals p exactly,
// or -1.
func indexOfPoint(verts []core.CurveVertex, p core.Point) int {
	for i := range verts {
		if verts[i].Point == p {
			return i
		}
	}

	return -1
}

// dedupIDs keeps the first occurrence of each id, preserving input order.
func dedupIDs(ids []core.CurveID) []core.CurveID {
	seen := make(map[core.CurveID]struct{}, len(ids))
	out := make([]core.CurveID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
