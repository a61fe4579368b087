// Package core: value types shared by the whole pipeline.
//
// This file declares Point, CurveID, CurveVertex and Edge. All four are
// comparable value types, so Go's == gives exactly the structural equality
// the algorithms depend on, and all four may be used as map keys directly.
package core

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Point is a 2D coordinate with exact (non-fuzzy) equality.
type Point struct {
	X, Y float64
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// MidpointTo returns the point halfway between p and q.
func (p Point) MidpointTo(q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// CurveID is the opaque identifier of a curve, owned by the external
// geometry source. The core never dereferences it except to hand it back
// to the endpoint provider.
type CurveID string

// CurveVertex states "curve ID has an endpoint at location Point".
// It carries identity and coordinate only, no geometry ownership, and must
// not outlive the curve set it was computed for.
//
// Two CurveVertex values are equal iff their points are exactly equal
// coordinate-wise and their owning ids are equal; plain == implements this.
type CurveVertex struct {
	Point Point
	ID    CurveID
}

// Hash returns a dictionary hash consistent with == : equal vertices always
// hash equal. The coordinates are truncated to int64 before hashing, so
// floating noise below one drawing unit never perturbs the hash; vertices
// that differ only sub-integrally collide, which is fine for a hash.
func (v CurveVertex) Hash() uint64 {
	h := fnv.New64a()
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(int64(v.Point.X)))
	binary.LittleEndian.PutUint64(buf[8:], uint64(int64(v.Point.Y)))
	h.Write(buf[:])
	h.Write([]byte(v.ID))

	return h.Sum64()
}

// Edge is a directed connection between two curve vertices. It represents
// either a step along one curve (possibly through a synthetic midpoint
// vertex) or a coincidence back-link that makes a loop explicit.
type Edge struct {
	Source CurveVertex
	Target CurveVertex
}

// SameOwner reports whether both endpoints of e belong to one curve.
// Loop analyses use this to tell curve-owned steps from coincidence links.
func (e Edge) SameOwner() bool {
	return e.Source.ID == e.Target.ID
}
