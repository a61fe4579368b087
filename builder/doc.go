// Package builder turns an unordered set of curve ids into the directed
// topology multigraph consumed by the analysis package.
//
// The caller supplies an EndpointSource — the narrow boundary to the host
// geometry layer — and the ids of the curves to analyze. Build indexes
// every endpoint in a 2-d tree, then traverses the id set with an explicit
// worklist: each visited curve emits a chain of edges along its own
// distinct endpoints (with one synthetic midpoint vertex between every
// consecutive pair), schedules the not-yet-visited curves found within the
// adjacency radius of each endpoint, and emits a back edge whenever a
// coincident curve turns out to be visited already, making the loop
// explicit in the graph. When the worklist drains with unvisited ids left,
// traversal restarts from an arbitrary new root — that is how disjoint
// islands of curves are covered.
//
// The choice of traversal root among several pending ids is arbitrary
// (first in input order). Final topological classifications — loop
// membership, dangling-ness, partition membership — are root-independent;
// only the internal synthetic-midpoint identities may differ between id
// orderings, which is why callers must key results by CurveID, never by
// the internal vertex set.
//
// Error taxonomy:
//
//   - invalid input (nil source, empty id set, bad option values) is
//     reported immediately and nothing is built;
//   - a curve id with zero endpoints is a soft skip: it is marked visited
//     and contributes no vertices or edges;
//   - an unsupported curve type is the endpoint source's concern — it must
//     simply return an empty endpoint sequence, which folds into the
//     previous case.
//
// Build keeps all state in per-call locals, so concurrent builds over
// disjoint id sets need no coordination.
package builder
