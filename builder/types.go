// Package builder: endpoint boundary, sentinel errors, and build options.
package builder

import (
	"errors"
	"math"

	"github.com/JieGou/Tomato/core"
)

// DefaultAdjacencyRadius is the coincidence tolerance, in drawing units,
// used to decide that two curve endpoints touch. Endpoints farther apart
// than this are never considered adjacent.
const DefaultAdjacencyRadius = 0.1

// Sentinel errors for graph construction.
var (
	// ErrNilSource indicates Build was given a nil EndpointSource.
	ErrNilSource = errors.New("builder: endpoint source is nil")

	// ErrNoCurves indicates Build was given an empty curve id set.
	ErrNoCurves = errors.New("builder: curve id set is empty")

	// ErrOptionViolation indicates a WithX option received a meaningless
	// value (e.g. a non-positive or NaN adjacency radius).
	ErrOptionViolation = errors.New("builder: invalid option value")
)

// EndpointSource is the boundary to the host geometry layer: given a curve
// id it returns the curve's ordered endpoints — two for a line, N vertices
// for a polyline; closed shapes typically start and end at the same point.
// Returning an empty slice marks the curve as having no usable geometry.
type EndpointSource interface {
	CurveEndpoints(id core.CurveID) []core.Point
}

// EndpointFunc adapts a plain function to EndpointSource.
type EndpointFunc func(id core.CurveID) []core.Point

// CurveEndpoints implements EndpointSource.
func (f EndpointFunc) CurveEndpoints(id core.CurveID) []core.Point { return f(id) }

// Option configures optional behavior of Build.
type Option func(*Options)

// Options holds configurable parameters for graph construction.
type Options struct {
	// AdjacencyRadius is the endpoint coincidence tolerance in drawing
	// units. Defaults to DefaultAdjacencyRadius.
	AdjacencyRadius float64

	// SelfLoopEdges, if true, makes a curve that starts and ends at the
	// same point (one distinct endpoint after deduplication) emit a
	// synthetic 2-cycle so its vertex is still recognized as loop-bearing.
	// By default such curves contribute only their single edge-less vertex.
	SelfLoopEdges bool

	// err records the first invalid option value; surfaced by Build.
	err error
}

// DefaultOptions returns Options with the default adjacency radius and
// self-loop emission disabled.
func DefaultOptions() Options {
	return Options{AdjacencyRadius: DefaultAdjacencyRadius}
}

// WithAdjacencyRadius overrides the endpoint coincidence tolerance.
// Non-positive or NaN radii are rejected at Build with ErrOptionViolation.
func WithAdjacencyRadius(r float64) Option {
	return func(o *Options) {
		if r <= 0 || math.IsNaN(r) {
			o.err = ErrOptionViolation

			return
		}
		o.AdjacencyRadius = r
	}
}

// WithSelfLoopEdges enables synthetic 2-cycle emission for curves whose
// endpoints all coincide.
func WithSelfLoopEdges() Option {
	return func(o *Options) { o.SelfLoopEdges = true }
}
