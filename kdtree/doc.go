// Package kdtree provides a static 2-d tree over curve vertices, used by
// the graph builder to find which other curves have an endpoint near a
// given point.
//
// The tree is built once from the full endpoint set and is read-only for
// its lifetime: there is no insert, delete or rebalance. Duplicate
// coordinates are fully supported — many curves sharing one point each
// keep their own entry. Queries are radius-bounded and return every
// indexed vertex within Euclidean distance of the probe; querying an
// empty tree returns an empty result, never an error.
//
// Both construction and query run on explicit worklists rather than
// recursion, so pathologically deep drawings cannot exhaust the call
// stack.
//
// Complexity:
//
//   - Build: O(n log² n) time, O(n) memory (per-node median sort).
//   - Query: O(√n + k) expected for k reported vertices.
package kdtree
