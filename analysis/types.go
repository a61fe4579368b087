// Package analysis: shared result types, traversal states, and sentinel
// errors.
package analysis

import (
	"errors"

	"github.com/JieGou/Tomato/core"
)

// ErrGraphNil is returned when a nil *core.Graph is passed to any analysis;
// attempting an analysis before a successful build is a contract violation.
var ErrGraphNil = errors.New("analysis: graph is nil")

// Traversal state of a vertex during depth-first search.
const (
	white = iota // not visited yet
	gray         // on the current DFS path
	black        // fully explored
)

// VertexSet is a set of curve vertices keyed by structural equality.
type VertexSet map[core.CurveVertex]struct{}

// Contains reports whether v is in the set.
func (s VertexSet) Contains(v core.CurveVertex) bool {
	_, ok := s[v]

	return ok
}

// IDSet is a set of curve ids.
type IDSet map[core.CurveID]struct{}

// Contains reports whether id is in the set.
func (s IDSet) Contains(id core.CurveID) bool {
	_, ok := s[id]

	return ok
}
