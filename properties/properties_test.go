package properties_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lqmc-lab/linarr/core"
	"github.com/lqmc-lab/linarr/properties"
)

func pathTree(t *testing.T, n int) *core.Tree {
	t.Helper()
	tr := core.NewFreeTree(n)
	for i := 0; i < n-1; i++ {
		require.NoError(t, tr.AddEdge(core.Vertex(i), core.Vertex(i+1)))
	}
	return tr
}

func starTree(t *testing.T, n int) *core.Tree {
	t.Helper()
	tr := core.NewFreeTree(n)
	for i := 1; i < n; i++ {
		require.NoError(t, tr.AddEdge(0, core.Vertex(i)))
	}
	return tr
}

func TestExpectedCrossingsStarIsAlwaysZero(t *testing.T) {
	g := starTree(t, 5)
	ec, err := properties.ExpectedCrossings(g)
	require.NoError(t, err)
	assert.InDelta(t, 0, ec, 1e-9)
}

func TestExpectedCrossingsFourCycle(t *testing.T) {
	// a 4-cycle has 2 independent edge pairs, each crossing with
	// probability 1/3, so E[C] = 2/3.
	g := core.NewGraph(4)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))
	require.NoError(t, g.AddEdge(3, 0))

	ec, err := properties.ExpectedCrossings(g)
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, ec, 1e-9)
}

func TestVarianceCrossingsStarIsAlwaysZero(t *testing.T) {
	// every edge of a star shares its one endpoint with every other
	// edge, so no two edges are ever independent: C is always 0 under
	// any arrangement, hence Var[C] = 0.
	g := starTree(t, 6)
	v, err := properties.VarianceCrossings(g)
	require.NoError(t, err)
	assert.InDelta(t, 0, v, 1e-9)
}

func TestExpectedSumEdgeLengthsThreeVertexPath(t *testing.T) {
	// hand-verified against brute-force enumeration of all 3! arrangements:
	// E[D] = 8/3.
	got := properties.ExpectedSumEdgeLengths(3, 2)
	assert.InDelta(t, 8.0/3.0, got, 1e-9)
}

func TestVarianceSumEdgeLengthsThreeVertexPath(t *testing.T) {
	tr := pathTree(t, 3)
	v, err := properties.VarianceSumEdgeLengths(tr)
	require.NoError(t, err)
	assert.InDelta(t, 2.0/9.0, v, 1e-9)
}

func TestVarianceSumEdgeLengthsFourVertexStarAndPathAgree(t *testing.T) {
	// both four-vertex trees (star and path) were hand-verified against
	// brute-force enumeration of all 4! arrangements to give Var[D] = 1,
	// despite differing shapes, since n=4, m=3 fixes Var(single edge) and
	// the two shapes happen to split shared/disjoint pairs differently
	// but still sum to the same total.
	for _, tr := range []*core.Tree{starTree(t, 4), pathTree(t, 4)} {
		v, err := properties.VarianceSumEdgeLengths(tr)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, v, 1e-9)
	}
}

func TestVarianceSumEdgeLengthsFiveVertexPathAndStarDiffer(t *testing.T) {
	pv, err := properties.VarianceSumEdgeLengths(pathTree(t, 5))
	require.NoError(t, err)
	assert.InDelta(t, 13.0/5.0, pv, 1e-9)

	sv, err := properties.VarianceSumEdgeLengths(starTree(t, 5))
	require.NoError(t, err)
	assert.InDelta(t, 14.0/5.0, sv, 1e-9)
}

func TestAggregate1IsRatioOfSums(t *testing.T) {
	samples := []properties.Sample{
		{D: 4, N: 2},
		{D: 10, N: 3},
	}
	got, err := properties.Aggregate1(samples)
	require.NoError(t, err)
	assert.InDelta(t, 14.0/5.0, got, 1e-9)
}

func TestAggregate2IsMeanOfRatios(t *testing.T) {
	samples := []properties.Sample{
		{D: 4, N: 2}, // ratio 2
		{D: 10, N: 5}, // ratio 2
		{D: 3, N: 1}, // ratio 3
	}
	got, err := properties.Aggregate2(samples)
	require.NoError(t, err)
	assert.InDelta(t, 7.0/3.0, got, 1e-9)
}

func TestAggregateEmptySampleErrors(t *testing.T) {
	_, err := properties.Aggregate1(nil)
	assert.ErrorIs(t, err, properties.ErrEmptySample)

	_, err = properties.Aggregate2(nil)
	assert.ErrorIs(t, err, properties.ErrEmptySample)
}
