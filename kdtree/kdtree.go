package kdtree

import (
	"sort"

	"github.com/JieGou/Tomato/core"
)

// node is one tree entry. Children are indices into Tree.nodes; -1 = none.
type node struct {
	vertex core.CurveVertex
	axis   int // 0 splits on X, 1 on Y
	left   int
	right  int
}

// Tree is an immutable 2-d tree over curve vertices.
// The zero-value-like tree returned by Build(nil) is valid and empty.
type Tree struct {
	nodes []node
	root  int
}

// span is a pending subrange of the working slice during construction.
type span struct {
	lo, hi int // half-open range into the working slice
	depth  int
	parent int  // node index to link the produced subtree to, -1 for root
	left   bool // link as parent's left child
}

// Build constructs the tree from vertices. The input slice is not retained
// or modified. Duplicate points and duplicate vertices are all kept.
func Build(vertices []core.CurveVertex) *Tree {
	t := &Tree{root: -1}
	if len(vertices) == 0 {
		return t
	}

	work := append([]core.CurveVertex(nil), vertices...)
	t.nodes = make([]node, 0, len(work))

	// Explicit worklist instead of recursion; each span sorts its subrange
	// on the split axis and promotes the median to a node.
	stack := []span{{lo: 0, hi: len(work), depth: 0, parent: -1}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.lo >= s.hi {
			continue
		}

		axis := s.depth % 2
		seg := work[s.lo:s.hi]
		sort.SliceStable(seg, func(i, j int) bool {
			return coordinate(seg[i].Point, axis) < coordinate(seg[j].Point, axis)
		})

		mid := s.lo + (s.hi-s.lo)/2
		idx := len(t.nodes)
		t.nodes = append(t.nodes, node{vertex: work[mid], axis: axis, left: -1, right: -1})

		switch {
		case s.parent < 0:
			t.root = idx
		case s.left:
			t.nodes[s.parent].left = idx
		default:
			t.nodes[s.parent].right = idx
		}

		stack = append(stack,
			span{lo: s.lo, hi: mid, depth: s.depth + 1, parent: idx, left: true},
			span{lo: mid + 1, hi: s.hi, depth: s.depth + 1, parent: idx, left: false},
		)
	}

	return t
}

// Len returns the number of indexed vertices.
func (t *Tree) Len() int { return len(t.nodes) }

// Query returns every indexed vertex within radius of p (inclusive);
// radius 0 still reports exactly coincident vertices. The empty tree and
// negative radii yield an empty result.
func (t *Tree) Query(p core.Point, radius float64) []core.CurveVertex {
	if t == nil || t.root < 0 || radius < 0 {
		return nil
	}

	rr := radius * radius
	var out []core.CurveVertex

	stack := []int{t.root}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &t.nodes[i]

		dx := p.X - n.vertex.Point.X
		dy := p.Y - n.vertex.Point.Y
		if dx*dx+dy*dy <= rr {
			out = append(out, n.vertex)
		}

		// Prune a side only when the splitting plane is farther than radius.
		d := coordinate(p, n.axis) - coordinate(n.vertex.Point, n.axis)
		if n.left >= 0 && d <= radius {
			stack = append(stack, n.left)
		}
		if n.right >= 0 && d >= -radius {
			stack = append(stack, n.right)
		}
	}

	return out
}

// coordinate selects the axis component of p.
func coordinate(p core.Point, axis int) float64 {
	if axis == 0 {
		return p.X
	}

	return p.Y
}
