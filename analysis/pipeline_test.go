package analysis_test

// End-to-end checks over graphs produced by the builder: the canonical
// drawing fixtures and the invariants every built graph must satisfy.

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JieGou/Tomato/analysis"
	"github.com/JieGou/Tomato/builder"
	"github.com/JieGou/Tomato/core"
)

func pt(x, y float64) core.Point { return core.Point{X: x, Y: y} }

func tableSource(curves map[core.CurveID][]core.Point) builder.EndpointSource {
	return builder.EndpointFunc(func(id core.CurveID) []core.Point {
		return curves[id]
	})
}

func mustBuild(t *testing.T, curves map[core.CurveID][]core.Point, ids []core.CurveID) *core.Graph {
	t.Helper()
	g, err := builder.Build(tableSource(curves), ids)
	require.NoError(t, err)

	return g
}

// triangleAt places three lines forming a triangle with corners offset by
// (dx, dy), ids prefixed for disambiguation.
func triangleAt(prefix string, dx, dy float64) map[core.CurveID][]core.Point {
	a, b, c := pt(dx, dy), pt(dx+4, dy), pt(dx+2, dy+3)

	return map[core.CurveID][]core.Point{
		core.CurveID(prefix + "1"): {a, b},
		core.CurveID(prefix + "2"): {b, c},
		core.CurveID(prefix + "3"): {c, a},
	}
}

func merge(dst map[core.CurveID][]core.Point, src map[core.CurveID][]core.Point) map[core.CurveID][]core.Point {
	for id, pts := range src {
		dst[id] = pts
	}

	return dst
}

func sameOwnerIDs(loop []core.Edge) analysis.IDSet {
	ids := make(analysis.IDSet)
	for _, e := range loop {
		if e.SameOwner() {
			ids[e.Source.ID] = struct{}{}
		}
	}

	return ids
}

func TestPipeline_ClosedPolyline(t *testing.T) {
	curves := map[core.CurveID][]core.Point{
		"P": {pt(0, 0), pt(2, 0), pt(2, 2), pt(0, 2), pt(0, 0)},
	}
	g := mustBuild(t, curves, []core.CurveID{"P"})

	groups, err := analysis.Partition(g)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, analysis.IDSet{"P": {}}, groups[0])

	dangling, err := analysis.DanglingVertices(g)
	require.NoError(t, err)
	assert.Empty(t, dangling)

	loops, err := analysis.Loops(g)
	require.NoError(t, err)
	assert.NotEmpty(t, loops)
}

func TestPipeline_IsolatedLine(t *testing.T) {
	curves := map[core.CurveID][]core.Point{
		"L": {pt(0, 0), pt(2, 0)},
	}
	g := mustBuild(t, curves, []core.CurveID{"L"})

	groups, err := analysis.Partition(g)
	require.NoError(t, err)
	require.Len(t, groups, 1)

	dangling, err := analysis.DanglingVertices(g)
	require.NoError(t, err)
	require.Len(t, dangling, 2, "an isolated curve is fully dangling")
	assert.True(t, dangling.Contains(core.CurveVertex{Point: pt(0, 0), ID: "L"}))
	assert.True(t, dangling.Contains(core.CurveVertex{Point: pt(2, 0), ID: "L"}))

	loops, err := analysis.Loops(g)
	require.NoError(t, err)
	assert.Empty(t, loops)
}

func TestPipeline_IsolatedLineReversedOrientation(t *testing.T) {
	// Same line drawn right to left; endpoint order must not change which
	// vertices dangle.
	curves := map[core.CurveID][]core.Point{
		"L": {pt(2, 0), pt(0, 0)},
	}
	g := mustBuild(t, curves, []core.CurveID{"L"})

	dangling, err := analysis.DanglingVertices(g)
	require.NoError(t, err)
	require.Len(t, dangling, 2)
	assert.True(t, dangling.Contains(core.CurveVertex{Point: pt(0, 0), ID: "L"}))
	assert.True(t, dangling.Contains(core.CurveVertex{Point: pt(2, 0), ID: "L"}))
	assert.False(t, dangling.Contains(core.CurveVertex{Point: pt(1, 0), ID: "L"}),
		"the synthetic midpoint is interior, never dangling")
}

func TestPipeline_Triangle(t *testing.T) {
	curves := triangleAt("L", 0, 0)
	g := mustBuild(t, curves, []core.CurveID{"L1", "L2", "L3"})

	groups, err := analysis.Partition(g)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Len(t, groups[0], 3)

	dangling, err := analysis.DanglingVertices(g)
	require.NoError(t, err)
	assert.Empty(t, dangling)

	loops, err := analysis.Loops(g)
	require.NoError(t, err)
	require.Len(t, loops, 1, "a triangle closes through exactly one back edge")
	assert.Len(t, sameOwnerIDs(loops[0]), 3, "the loop passes through edges owned by all three curves")
}

func TestPipeline_TriangleWithDanglingLine(t *testing.T) {
	curves := merge(triangleAt("L", 0, 0), map[core.CurveID][]core.Point{
		"L4": {pt(4, 0), pt(8, 0)}, // attached at corner b, free at (8,0)
	})
	g := mustBuild(t, curves, []core.CurveID{"L1", "L2", "L3", "L4"})

	dangling, err := analysis.DanglingVertices(g)
	require.NoError(t, err)
	require.Len(t, dangling, 1, "only the free end dangles, not the attachment")
	assert.True(t, dangling.Contains(core.CurveVertex{Point: pt(8, 0), ID: "L4"}))

	ids, err := analysis.IDsInLoop(g)
	require.NoError(t, err)
	assert.Equal(t, analysis.IDSet{"L1": {}, "L2": {}, "L3": {}}, ids)

	paths, err := analysis.DanglingPaths(g)
	require.NoError(t, err)
	require.NotEmpty(t, paths)
	last := paths[len(paths)-1]
	assert.Equal(t, core.CurveVertex{Point: pt(8, 0), ID: "L4"}, last[len(last)-1].Target,
		"the stub path ends at the free endpoint")
}

func TestPipeline_TwoDisjointTriangles(t *testing.T) {
	curves := merge(triangleAt("L", 0, 0), triangleAt("M", 20, 0))
	ids := []core.CurveID{"L1", "L2", "L3", "M1", "M2", "M3"}
	g := mustBuild(t, curves, ids)

	groups, err := analysis.Partition(g)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Len(t, groups[0], 3)
	assert.Len(t, groups[1], 3)

	dangling, err := analysis.DanglingVertices(g)
	require.NoError(t, err)
	assert.Empty(t, dangling)

	loops, err := analysis.Loops(g)
	require.NoError(t, err)
	assert.Len(t, loops, 2, "each island closes its own loop")
}

func TestPipeline_PartitionCoversEveryBuildableID(t *testing.T) {
	curves := merge(triangleAt("L", 0, 0), map[core.CurveID][]core.Point{
		"S": {pt(30, 30), pt(32, 30)}, // isolated segment
		"C": {pt(40, 40), pt(40, 40)}, // collapses to one point
		// "ghost" stays absent: no endpoints.
	})
	ids := []core.CurveID{"L1", "L2", "L3", "S", "C", "ghost"}
	g := mustBuild(t, curves, ids)

	groups, err := analysis.Partition(g)
	require.NoError(t, err)

	seen := make(map[core.CurveID]int)
	for _, grp := range groups {
		for id := range grp {
			seen[id]++
		}
	}
	assert.Equal(t, map[core.CurveID]int{"L1": 1, "L2": 1, "L3": 1, "S": 1, "C": 1}, seen,
		"disjoint groups cover exactly the ids with geometry; the ghost is dropped")
	assert.Contains(t, groups, analysis.IDSet{"C": {}},
		"a collapsed curve keeps its lone vertex and forms its own group")
}

func TestPipeline_AnalysesAreIdempotent(t *testing.T) {
	curves := merge(triangleAt("L", 0, 0), map[core.CurveID][]core.Point{
		"L4": {pt(4, 0), pt(8, 0)},
	})
	g := mustBuild(t, curves, []core.CurveID{"L1", "L2", "L3", "L4"})

	loops1, err := analysis.Loops(g)
	require.NoError(t, err)
	loops2, err := analysis.Loops(g)
	require.NoError(t, err)
	assert.Equal(t, loops1, loops2)

	d1, err := analysis.DanglingVertices(g)
	require.NoError(t, err)
	d2, err := analysis.DanglingVertices(g)
	require.NoError(t, err)
	assert.Equal(t, d1, d2)

	p1, err := analysis.Partition(g)
	require.NoError(t, err)
	p2, err := analysis.Partition(g)
	require.NoError(t, err)
	assert.Equal(t, p1, p2)
}

func TestPipeline_SelfLoopModeMarksLoopBearing(t *testing.T) {
	curves := map[core.CurveID][]core.Point{
		"C": {pt(1, 1), pt(1, 1)},
	}
	g, err := builder.Build(tableSource(curves), []core.CurveID{"C"}, builder.WithSelfLoopEdges())
	require.NoError(t, err)

	nonLoop, err := analysis.NonLoopVertices(g)
	require.NoError(t, err)
	assert.Empty(t, nonLoop, "the synthetic 2-cycle keeps the vertex loop-bearing")

	ids, err := analysis.IDsInLoop(g)
	require.NoError(t, err)
	assert.Equal(t, analysis.IDSet{"C": {}}, ids)
}
