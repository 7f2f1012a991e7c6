package crossings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lqmc-lab/linarr/arrangement"
	"github.com/lqmc-lab/linarr/core"
	"github.com/lqmc-lab/linarr/crossings"
)

var allAlgorithms = []crossings.Algorithm{
	crossings.BruteForce,
	crossings.DynamicProgramming,
	crossings.StackBased,
	crossings.Ladder,
}

// starGraph (n-1 edges, no two independent) never crosses under any
// arrangement, identity included.
func TestNoCrossingsOnStar(t *testing.T) {
	g := core.NewGraph(5)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.AddEdge(0, 3))
	require.NoError(t, g.AddEdge(0, 4))

	arr := arrangement.NewIdentity(5)
	for _, algo := range allAlgorithms {
		c, err := crossings.NumCrossings(g, arr, algo)
		require.NoError(t, err)
		assert.EqualValues(t, 0, c, "algo %v", algo)
	}
}

// Two edges (0,2) and (1,3) under the identity arrangement interleave:
// positions 0<1<2<3, so edge (0,2) and edge (1,3) cross exactly once.
func TestSingleCrossingAgreesAcrossEngines(t *testing.T) {
	g := core.NewGraph(4)
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.AddEdge(1, 3))

	arr := arrangement.NewIdentity(4)
	for _, algo := range allAlgorithms {
		c, err := crossings.NumCrossings(g, arr, algo)
		require.NoError(t, err)
		assert.EqualValues(t, 1, c, "algo %v", algo)
	}
}

// Nested edges (0,3) and (1,2) never cross.
func TestNestedEdgesDoNotCross(t *testing.T) {
	g := core.NewGraph(4)
	require.NoError(t, g.AddEdge(0, 3))
	require.NoError(t, g.AddEdge(1, 2))

	arr := arrangement.NewIdentity(4)
	for _, algo := range allAlgorithms {
		c, err := crossings.NumCrossings(g, arr, algo)
		require.NoError(t, err)
		assert.EqualValues(t, 0, c, "algo %v", algo)
	}
}

// A denser graph (6 vertices, several independent edges) exercises
// multiple simultaneous opens/closes per position, checked for mutual
// agreement across all four engines rather than by a hand count.
func TestEnginesAgreeOnDenseGraph(t *testing.T) {
	g := core.NewGraph(6)
	require.NoError(t, g.AddEdge(0, 3))
	require.NoError(t, g.AddEdge(1, 4))
	require.NoError(t, g.AddEdge(2, 5))
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.AddEdge(3, 5))

	arr, err := arrangement.NewFromVertexToPosition([]arrangement.Position{2, 0, 4, 5, 1, 3})
	require.NoError(t, err)

	want, err := crossings.NumCrossings(g, arr, crossings.BruteForce)
	require.NoError(t, err)

	for _, algo := range allAlgorithms[1:] {
		got, err := crossings.NumCrossings(g, arr, algo)
		require.NoError(t, err)
		assert.Equal(t, want, got, "algo %v", algo)
	}
}

func TestNumCrossingsBatch(t *testing.T) {
	g := core.NewGraph(4)
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.AddEdge(1, 3))

	identity := arrangement.NewIdentity(4)
	reversed, err := arrangement.NewFromVertexToPosition([]arrangement.Position{3, 2, 1, 0})
	require.NoError(t, err)

	got, err := crossings.NumCrossingsBatch(g, []*arrangement.Arrangement{identity, reversed}, crossings.BruteForce)
	require.NoError(t, err)
	assert.EqualValues(t, []uint64{1, 1}, got)
}

func TestIsNumCrossingsLE(t *testing.T) {
	g := core.NewGraph(4)
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.AddEdge(1, 3))
	arr := arrangement.NewIdentity(4)

	value, ok, err := crossings.IsNumCrossingsLE(g, arr, 1, crossings.BruteForce)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.EqualValues(t, 1, value)

	_, ok, err = crossings.IsNumCrossingsLE(g, arr, 0, crossings.BruteForce)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUnknownAlgorithm(t *testing.T) {
	g := core.NewGraph(4)
	arr := arrangement.NewIdentity(4)
	_, err := crossings.NumCrossings(g, arr, crossings.Algorithm(99))
	assert.ErrorIs(t, err, crossings.ErrUnknownAlgorithm)
}
