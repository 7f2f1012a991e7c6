package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lqmc-lab/linarr/bfs"
	"github.com/lqmc-lab/linarr/core"
)

// path builds an undirected path graph 0-1-2-...-(n-1).
func path(n int) *core.Graph {
	g := core.NewGraph(n)
	for i := 0; i < n-1; i++ {
		_ = g.AddEdge(core.Vertex(i), core.Vertex(i+1))
	}

	return g
}

func TestRunVisitsEveryVertexOnAPath(t *testing.T) {
	g := path(5)
	res, err := bfs.Run(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []bfs.Vertex{0, 1, 2, 3, 4}, res.Order)
	assert.Equal(t, 4, res.Depth[4])

	p, err := res.PathTo(4)
	require.NoError(t, err)
	assert.Equal(t, []bfs.Vertex{0, 1, 2, 3, 4}, p)
}

func TestRunTerminatesEarly(t *testing.T) {
	g := path(6)
	res, err := bfs.Run(g, 0, bfs.WithTerminate(func(v bfs.Vertex) bool { return v == 2 }))
	require.NoError(t, err)
	assert.Equal(t, []bfs.Vertex{0, 1, 2}, res.Order)
}

func TestTraversalReusableAcrossStarts(t *testing.T) {
	g := core.NewGraph(4)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(2, 3))

	tr, err := bfs.New(g)
	require.NoError(t, err)
	require.NoError(t, tr.StartAt(0))
	assert.True(t, tr.Visited(1))
	assert.False(t, tr.Visited(2))

	require.NoError(t, tr.StartAt(2))
	assert.True(t, tr.AllVisited())
}

func TestAdmitGatesEnqueue(t *testing.T) {
	g := path(4)
	var visitedOrder []bfs.Vertex
	_, err := bfs.Run(g, 0,
		bfs.WithAdmit(func(s, target bfs.Vertex, ltr bool) bool { return target != 2 }),
		bfs.WithProcessCurrent(func(v bfs.Vertex) { visitedOrder = append(visitedOrder, v) }),
	)
	require.NoError(t, err)
	assert.NotContains(t, visitedOrder, bfs.Vertex(2))
	assert.NotContains(t, visitedOrder, bfs.Vertex(3))
}
