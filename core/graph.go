package core

import "sort"

// Graph is a directed multigraph over CurveVertex values.
//
// Vertices exist implicitly through AddVertex/AddEdge; parallel edges and
// self-loops are kept as-is. A Graph is assembled once by the builder and
// treated as immutable by every analysis, so no locking is needed — each
// analysis pass owns its own instance (see package doc).
type Graph struct {
	adjacency map[CurveVertex][]Edge // vertex → out-edges, insertion order
	edges     []Edge                 // all edges, insertion order
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[CurveVertex][]Edge),
	}
}

// AddVertex ensures v is present, with no edges if it is new.
// Adding an existing vertex is a no-op.
func (g *Graph) AddVertex(v CurveVertex) {
	if _, ok := g.adjacency[v]; !ok {
		g.adjacency[v] = nil
	}
}

// AddEdge appends the directed edge e, materializing both endpoints.
// Parallel edges and self-loops are always accepted; construction is
// infallible by contract.
func (g *Graph) AddEdge(e Edge) {
	g.AddVertex(e.Source)
	g.AddVertex(e.Target)
	g.adjacency[e.Source] = append(g.adjacency[e.Source], e)
	g.edges = append(g.edges, e)
}

// HasVertex reports whether v is present.
func (g *Graph) HasVertex(v CurveVertex) bool {
	_, ok := g.adjacency[v]

	return ok
}

// OutEdges returns the out-edges of v in insertion order.
// The returned slice is a copy; absent vertices yield nil.
func (g *Graph) OutEdges(v CurveVertex) []Edge {
	out := g.adjacency[v]
	if out == nil {
		return nil
	}

	return append([]Edge(nil), out...)
}

// Vertices returns every vertex sorted by (X, Y, ID). The fixed order makes
// repeated analyses over the same graph return identical results.
// Complexity: O(V log V).
func (g *Graph) Vertices() []CurveVertex {
	verts := make([]CurveVertex, 0, len(g.adjacency))
	for v := range g.adjacency {
		verts = append(verts, v)
	}
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

	return verts
}

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// VertexCount returns the number of distinct vertices.
func (g *Graph) VertexCount() int { return len(g.adjacency) }

// EdgeCount returns the number of edges, counting parallels.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// CurveIDs returns the sorted distinct ids owning at least one vertex.
func (g *Graph) CurveIDs() []CurveID {
	seen := make(map[CurveID]struct{}, len(g.adjacency))
	for v := range g.adjacency {
		seen[v.ID] = struct{}{}
	}
	ids := make([]CurveID, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}
