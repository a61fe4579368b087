// Package tomato analyzes 2D line-drawing geometry (lines, arcs, polylines)
// as a topological graph: it discovers which curve endpoints coincide in
// space, builds a directed multigraph of curves and shared endpoints, and
// answers the structural queries needed to spot drawing defects — dangling
// stubs, isolated segments, disjoint islands — before automatic repair.
//
// The pipeline is one-way and runs to completion inside a single call:
//
//	curve ids → endpoints → spatial index → graph → analyses
//
// Everything is organized under four subpackages:
//
//	core/     — Point, CurveVertex, Edge and the directed multigraph they form
//	kdtree/   — static 2-d tree for radius-bounded coincidence queries
//	builder/  — turns an id set + endpoint source into the topology graph
//	analysis/ — loop membership (SCC), dangling vertices/paths, partitioning,
//	            and explicit cycle enumeration
//
// The host geometry layer only has to supply endpoints per curve id (see
// builder.EndpointSource); the core never edits geometry and keeps no state
// between invocations, so concurrent passes over disjoint id sets are safe
// as long as each pass builds its own graph.
//
// Quick ASCII example:
//
//	A────B────D
//	 ╲   │
//	  ╲  │
//	   ╲ │
//	     C
//
// A-B-C form a closed loop; B-D dangles. analysis.DanglingVertices reports
// D's free end, analysis.IDsInLoop reports the three triangle curves.
package tomato
