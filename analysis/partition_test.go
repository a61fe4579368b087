package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JieGou/Tomato/analysis"
	"github.com/JieGou/Tomato/core"
)

func TestPartition_NilGraph(t *testing.T) {
	res, err := analysis.Partition(nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, analysis.ErrGraphNil)
}

func TestPartition_EmptyGraph(t *testing.T) {
	res, err := analysis.Partition(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestPartition_DirectionIsIgnored(t *testing.T) {
	// a→b and c→b only meet head-on; undirected adjacency still joins them.
	a, b, c := vtx(0, 0, "A"), vtx(1, 0, "B"), vtx(2, 0, "C")
	g := core.NewGraph()
	g.AddEdge(edge(a, b))
	g.AddEdge(edge(c, b))

	groups, err := analysis.Partition(g)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Len(t, groups[0], 3)
}

func TestPartition_DisjointIslands(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(edge(vtx(0, 0, "A"), vtx(1, 0, "B")))
	g.AddEdge(edge(vtx(10, 0, "C"), vtx(11, 0, "D")))

	groups, err := analysis.Partition(g)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	seen := make(map[core.CurveID]int)
	for _, grp := range groups {
		for id := range grp {
			seen[id]++
		}
	}
	assert.Equal(t, map[core.CurveID]int{"A": 1, "B": 1, "C": 1, "D": 1}, seen,
		"every id appears in exactly one group")
}

func TestPartition_ManyVerticesOneCurve(t *testing.T) {
	// Several vertices of one curve collapse to a single id entry.
	g := core.NewGraph()
	g.AddEdge(edge(vtx(0, 0, "A"), vtx(1, 0, "A")))
	g.AddEdge(edge(vtx(1, 0, "A"), vtx(2, 0, "A")))

	groups, err := analysis.Partition(g)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, analysis.IDSet{"A": {}}, groups[0])
}
