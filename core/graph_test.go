package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lqmc-lab/linarr/core"
)

func TestAddEdgeRejectsSelfLoopAndDuplicate(t *testing.T) {
	g := core.NewGraph(3)
	require.NoError(t, g.AddEdge(0, 1))
	assert.ErrorIs(t, g.AddEdge(0, 1), core.ErrDuplicateEdge)
	assert.ErrorIs(t, g.AddEdge(2, 2), core.ErrSelfLoop)
}

func TestAddEdgeKeepsAdjacencyNormalized(t *testing.T) {
	g := core.NewGraph(4)
	require.NoError(t, g.AddEdge(0, 3))
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 2))

	nb, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []core.Vertex{1, 2, 3}, nb)
	assert.True(t, g.IsNormalized())
}

func TestHasEdgeUndirectedSymmetric(t *testing.T) {
	g := core.NewGraph(3)
	require.NoError(t, g.AddEdge(0, 1))
	has, err := g.HasEdge(1, 0)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestRemoveEdgeAndNotFound(t *testing.T) {
	g := core.NewGraph(2)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.RemoveEdge(0, 1))
	assert.ErrorIs(t, g.RemoveEdge(0, 1), core.ErrEdgeNotFound)
}

func TestRemoveNodeRenumbers(t *testing.T) {
	g := core.NewGraph(4)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))

	require.NoError(t, g.RemoveNode(1))
	assert.Equal(t, 3, g.NumNodes())
	has, err := g.HasEdge(1, 2)
	require.NoError(t, err)
	assert.True(t, has, "old vertex 2 should now be vertex 1, still linked to old vertex 3 (now 2)")
}

func TestBulkAddThenFinish(t *testing.T) {
	g := core.NewGraph(3)
	require.NoError(t, g.AddEdgeBulk(2, 0))
	require.NoError(t, g.AddEdgeBulk(0, 1))
	require.NoError(t, g.FinishBulkAdd(true, true))

	nb, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []core.Vertex{1, 2}, nb)
}

func TestQEnumeratesIndependentEdgePairs(t *testing.T) {
	g := core.NewGraph(4)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(2, 3))
	require.NoError(t, g.AddEdge(1, 2))

	pairs := g.Q()
	assert.Len(t, pairs, 1)
	assert.Equal(t, core.Edge{From: 0, To: 1}, pairs[0][0])
	assert.Equal(t, core.Edge{From: 2, To: 3}, pairs[0][1])
}

func TestDisjointUnion(t *testing.T) {
	a := core.NewGraph(2)
	require.NoError(t, a.AddEdge(0, 1))
	b := core.NewGraph(2)
	require.NoError(t, b.AddEdge(0, 1))

	u, err := a.DisjointUnion(b)
	require.NoError(t, err)
	assert.Equal(t, 4, u.NumNodes())
	has, err := u.HasEdge(2, 3)
	require.NoError(t, err)
	assert.True(t, has)
}
