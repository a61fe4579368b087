// Package analysis answers the structural queries over a built topology
// graph: which vertices take part in a loop, which are dangling stubs, how
// the curves partition into disjoint islands, and which explicit cycles
// exist.
//
// All functions are total over a constructed graph — once the graph
// exists, only correctness of results is a concern, never failure. The
// single error condition is passing a nil graph (an analysis attempted
// before a successful build), reported as ErrGraphNil. Every algorithm
// walks the graph's deterministically sorted vertex order on explicit
// worklists, so results are identical across repeated calls and no call
// can exhaust the goroutine stack on pathologically deep drawings.
//
// Key operations:
//
//   - NonLoopVertices: strongly connected components (iterative Tarjan);
//     a singleton component is "not part of a loop"
//   - DanglingVertices / DanglingPaths: the stub endpoints and stub edge
//     chains hanging off the main structure
//   - Partition: maximal groups of curves mutually reachable through
//     shared endpoints, ignoring edge direction
//   - Loops / IDsInLoop: one explicit cycle per discovered DFS back edge
//
// Complexity: every analysis is linear or near-linear in V+E, except loop
// reconstruction which additionally pays the combined length of the
// reported cycles.
package analysis
