// Package core defines the value types of the topology pipeline — Point,
// CurveVertex, Edge — and the directed multigraph built over them.
//
// Equality is deliberately exact: two Points are equal iff their coordinates
// match bit-for-bit, and two CurveVertex values are equal iff their points
// and owning curve ids both match. All tolerance decisions are made
// explicitly by the algorithms that need them (see builder), never
// implicitly by the types.
//
// A Graph is built once per analysis pass and is read-only afterwards.
// Parallel edges and self-loops are always permitted; the builder relies on
// both to make coincidence links and loop closures explicit.
package core
