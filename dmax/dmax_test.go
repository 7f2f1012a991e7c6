package dmax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lqmc-lab/linarr/core"
	"github.com/lqmc-lab/linarr/dmax"
)

func edgeLengthSum(t *testing.T, tr *core.Tree, posOf func(core.Vertex) (int, error)) uint64 {
	t.Helper()
	var d uint64
	for _, e := range tr.Edges() {
		pu, err := posOf(e.From)
		require.NoError(t, err)
		pv, err := posOf(e.To)
		require.NoError(t, err)
		if pu > pv {
			pu, pv = pv, pu
		}
		d += uint64(pv - pu)
	}
	return d
}

func TestProjectiveAEFStarCost(t *testing.T) {
	// star with hub 0 and 4 leaves: the most spread-out projective
	// arrangement puts the hub at one end, giving lengths 1,2,3,4.
	tr := core.NewFreeTree(5)
	require.NoError(t, tr.AddEdge(0, 1))
	require.NoError(t, tr.AddEdge(0, 2))
	require.NoError(t, tr.AddEdge(0, 3))
	require.NoError(t, tr.AddEdge(0, 4))

	arr, cost, err := dmax.ProjectiveAEF(tr, 0)
	require.NoError(t, err)

	d := edgeLengthSum(t, tr, func(v core.Vertex) (int, error) {
		p, err := arr.PositionOf(v)
		return int(p), err
	})
	assert.Equal(t, cost, d)
	assert.EqualValues(t, 10, cost)
}

func TestProjectiveAEFPathCost(t *testing.T) {
	tr := core.NewFreeTree(4)
	require.NoError(t, tr.AddEdge(0, 1))
	require.NoError(t, tr.AddEdge(1, 2))
	require.NoError(t, tr.AddEdge(2, 3))

	arr, cost, err := dmax.ProjectiveAEF(tr, 0)
	require.NoError(t, err)

	d := edgeLengthSum(t, tr, func(v core.Vertex) (int, error) {
		p, err := arr.PositionOf(v)
		return int(p), err
	})
	assert.Equal(t, cost, d)
	assert.EqualValues(t, 6, cost)
}

func TestPlanarAEFNeverBelowProjective(t *testing.T) {
	tr := core.NewFreeTree(6)
	require.NoError(t, tr.AddEdge(0, 1))
	require.NoError(t, tr.AddEdge(1, 2))
	require.NoError(t, tr.AddEdge(1, 3))
	require.NoError(t, tr.AddEdge(2, 4))
	require.NoError(t, tr.AddEdge(2, 5))

	_, projCost, err := dmax.ProjectiveAEF(tr, 0)
	require.NoError(t, err)

	arr, planarCost, err := dmax.PlanarAEF(tr)
	require.NoError(t, err)

	d := edgeLengthSum(t, tr, func(v core.Vertex) (int, error) {
		p, err := arr.PositionOf(v)
		return int(p), err
	})
	assert.Equal(t, planarCost, d)
	assert.GreaterOrEqual(t, planarCost, projCost)
}

func TestPlanarAEFStarCost(t *testing.T) {
	tr := core.NewFreeTree(5)
	require.NoError(t, tr.AddEdge(0, 1))
	require.NoError(t, tr.AddEdge(0, 2))
	require.NoError(t, tr.AddEdge(0, 3))
	require.NoError(t, tr.AddEdge(0, 4))

	arr, cost, err := dmax.PlanarAEF(tr)
	require.NoError(t, err)

	d := edgeLengthSum(t, tr, func(v core.Vertex) (int, error) {
		p, err := arr.PositionOf(v)
		return int(p), err
	})
	assert.Equal(t, cost, d)
	assert.EqualValues(t, 10, cost)
}

func TestBipartitePathCost(t *testing.T) {
	// path 0-1-2-3: colors {0,2} and {1,3}; best block arrangement
	// places one class entirely before the other, e.g. 0,2,1,3 or a
	// permutation of it, giving D = |0-2|+|2-1|... the true max over
	// all four block permutations is checked by direct recomputation.
	tr := core.NewFreeTree(4)
	require.NoError(t, tr.AddEdge(0, 1))
	require.NoError(t, tr.AddEdge(1, 2))
	require.NoError(t, tr.AddEdge(2, 3))

	arr, cost, err := dmax.Bipartite(tr)
	require.NoError(t, err)

	d := edgeLengthSum(t, tr, func(v core.Vertex) (int, error) {
		p, err := arr.PositionOf(v)
		return int(p), err
	})
	assert.Equal(t, cost, d)
	assert.GreaterOrEqual(t, cost, uint64(3))
}

func TestOneThistleAtLeastAsGoodAsBipartite(t *testing.T) {
	tr := core.NewFreeTree(5)
	require.NoError(t, tr.AddEdge(0, 1))
	require.NoError(t, tr.AddEdge(1, 2))
	require.NoError(t, tr.AddEdge(2, 3))
	require.NoError(t, tr.AddEdge(3, 4))

	_, bipCost, err := dmax.Bipartite(tr)
	require.NoError(t, err)

	arr, thistleCost, err := dmax.OneThistle(tr)
	require.NoError(t, err)

	d := edgeLengthSum(t, tr, func(v core.Vertex) (int, error) {
		p, err := arr.PositionOf(v)
		return int(p), err
	})
	assert.Equal(t, thistleCost, d)
	assert.GreaterOrEqual(t, thistleCost, bipCost)
}

func TestUnconstrainedAtLeastAsGoodAsPlanar(t *testing.T) {
	tr := core.NewFreeTree(5)
	require.NoError(t, tr.AddEdge(0, 1))
	require.NoError(t, tr.AddEdge(0, 2))
	require.NoError(t, tr.AddEdge(0, 3))
	require.NoError(t, tr.AddEdge(0, 4))

	_, planarCost, err := dmax.PlanarAEF(tr)
	require.NoError(t, err)

	arr, cost, err := dmax.Unconstrained(tr)
	require.NoError(t, err)

	d := edgeLengthSum(t, tr, func(v core.Vertex) (int, error) {
		p, err := arr.PositionOf(v)
		return int(p), err
	})
	assert.Equal(t, cost, d)
	assert.GreaterOrEqual(t, cost, planarCost)
}

func TestUnconstrainedExceedsPlanarOnCaterpillar(t *testing.T) {
	// spec fixture S6: caterpillar backbone 0-1-2-3, leaf 4 on 1, leaf
	// 5 on 2. max_D_planar = 11, max_D_unconstrained = 12 — the
	// border-only candidate restriction once in bnbState.fill forced
	// every placed prefix to be a connected subtree, which made
	// Unconstrained collapse onto the planar-constrained maximum on
	// non-star trees like this one instead of the true (strictly
	// larger) global maximum.
	tr := core.NewFreeTree(6)
	require.NoError(t, tr.AddEdge(0, 1))
	require.NoError(t, tr.AddEdge(1, 2))
	require.NoError(t, tr.AddEdge(2, 3))
	require.NoError(t, tr.AddEdge(1, 4))
	require.NoError(t, tr.AddEdge(2, 5))

	_, planarCost, err := dmax.PlanarAEF(tr)
	require.NoError(t, err)
	require.EqualValues(t, 11, planarCost)

	arr, cost, err := dmax.Unconstrained(tr)
	require.NoError(t, err)

	d := edgeLengthSum(t, tr, func(v core.Vertex) (int, error) {
		p, err := arr.PositionOf(v)
		return int(p), err
	})
	assert.Equal(t, cost, d)
	assert.EqualValues(t, 12, cost)
	assert.Greater(t, cost, planarCost)
}

func TestUnconstrainedSingleVertex(t *testing.T) {
	tr := core.NewFreeTree(1)
	arr, cost, err := dmax.Unconstrained(tr)
	require.NoError(t, err)
	assert.EqualValues(t, 0, cost)
	p, err := arr.PositionOf(0)
	require.NoError(t, err)
	assert.EqualValues(t, 0, p)
}
