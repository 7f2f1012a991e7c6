package dmin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lqmc-lab/linarr/core"
	"github.com/lqmc-lab/linarr/dmin"
)

func TestProjectivePathIsAlreadyOptimal(t *testing.T) {
	tr := core.NewFreeTree(5)
	require.NoError(t, tr.AddEdge(0, 1))
	require.NoError(t, tr.AddEdge(1, 2))
	require.NoError(t, tr.AddEdge(2, 3))
	require.NoError(t, tr.AddEdge(3, 4))

	arr, cost, err := dmin.Projective(tr, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 4, cost)

	var d uint64
	for _, e := range tr.Edges() {
		pu, err := arr.PositionOf(e.From)
		require.NoError(t, err)
		pv, err := arr.PositionOf(e.To)
		require.NoError(t, err)
		if pu > pv {
			pu, pv = pv, pu
		}
		d += uint64(pv - pu)
	}
	assert.Equal(t, cost, d)
}

func TestProjectiveStarCost(t *testing.T) {
	// star with hub 0 and leaves 1..4: every arrangement respecting a
	// single root position gives each edge length >= 1, optimum is a
	// contiguous block around the hub.
	tr := core.NewFreeTree(5)
	require.NoError(t, tr.AddEdge(0, 1))
	require.NoError(t, tr.AddEdge(0, 2))
	require.NoError(t, tr.AddEdge(0, 3))
	require.NoError(t, tr.AddEdge(0, 4))

	arr, cost, err := dmin.Projective(tr, 0)
	require.NoError(t, err)

	var d uint64
	for _, e := range tr.Edges() {
		pu, err := arr.PositionOf(e.From)
		require.NoError(t, err)
		pv, err := arr.PositionOf(e.To)
		require.NoError(t, err)
		if pu > pv {
			pu, pv = pv, pu
		}
		d += uint64(pv - pu)
	}
	assert.Equal(t, cost, d)
	// minimum possible for a star on n=5 is 1+1+2+2 = 6.
	assert.EqualValues(t, 6, cost)
}

func TestPlanarSingleVertex(t *testing.T) {
	tr := core.NewFreeTree(1)
	arr, cost, err := dmin.Planar(tr)
	require.NoError(t, err)
	assert.EqualValues(t, 0, cost)
	p, err := arr.PositionOf(0)
	require.NoError(t, err)
	assert.EqualValues(t, 0, p)
}

func TestPlanarPathIsAlreadyOptimal(t *testing.T) {
	tr := core.NewFreeTree(5)
	require.NoError(t, tr.AddEdge(0, 1))
	require.NoError(t, tr.AddEdge(1, 2))
	require.NoError(t, tr.AddEdge(2, 3))
	require.NoError(t, tr.AddEdge(3, 4))

	arr, cost, err := dmin.Planar(tr)
	require.NoError(t, err)
	assert.EqualValues(t, 4, cost)

	var d uint64
	for _, e := range tr.Edges() {
		pu, err := arr.PositionOf(e.From)
		require.NoError(t, err)
		pv, err := arr.PositionOf(e.To)
		require.NoError(t, err)
		if pu > pv {
			pu, pv = pv, pu
		}
		d += uint64(pv - pu)
	}
	assert.Equal(t, cost, d)
}

func TestPlanarStarCost(t *testing.T) {
	tr := core.NewFreeTree(5)
	require.NoError(t, tr.AddEdge(0, 1))
	require.NoError(t, tr.AddEdge(0, 2))
	require.NoError(t, tr.AddEdge(0, 3))
	require.NoError(t, tr.AddEdge(0, 4))

	arr, cost, err := dmin.Planar(tr)
	require.NoError(t, err)

	var d uint64
	for _, e := range tr.Edges() {
		pu, err := arr.PositionOf(e.From)
		require.NoError(t, err)
		pv, err := arr.PositionOf(e.To)
		require.NoError(t, err)
		if pu > pv {
			pu, pv = pv, pu
		}
		d += uint64(pv - pu)
	}
	assert.Equal(t, cost, d)
	assert.EqualValues(t, 6, cost)
}

func TestUnconstrainedNeverExceedsPlanar(t *testing.T) {
	// unconstrained Dmin is always <= planar Dmin, since planar is a
	// stricter constraint; a caterpillar gives a non-trivial case where
	// the unconstrained optimum genuinely differs from the planar one.
	tr := core.NewFreeTree(7)
	require.NoError(t, tr.AddEdge(0, 1))
	require.NoError(t, tr.AddEdge(1, 2))
	require.NoError(t, tr.AddEdge(2, 3))
	require.NoError(t, tr.AddEdge(1, 4))
	require.NoError(t, tr.AddEdge(2, 5))
	require.NoError(t, tr.AddEdge(3, 6))

	_, planarCost, err := dmin.Planar(tr)
	require.NoError(t, err)

	arr, unconstrainedCost, err := dmin.Unconstrained(tr)
	require.NoError(t, err)

	var d uint64
	for _, e := range tr.Edges() {
		pu, err := arr.PositionOf(e.From)
		require.NoError(t, err)
		pv, err := arr.PositionOf(e.To)
		require.NoError(t, err)
		if pu > pv {
			pu, pv = pv, pu
		}
		d += uint64(pv - pu)
	}
	assert.Equal(t, unconstrainedCost, d)
	assert.LessOrEqual(t, unconstrainedCost, planarCost)
}

func TestUnconstrainedPathIsAlreadyOptimal(t *testing.T) {
	tr := core.NewFreeTree(4)
	require.NoError(t, tr.AddEdge(0, 1))
	require.NoError(t, tr.AddEdge(1, 2))
	require.NoError(t, tr.AddEdge(2, 3))

	arr, cost, err := dmin.Unconstrained(tr)
	require.NoError(t, err)
	assert.EqualValues(t, 3, cost)

	var d uint64
	for _, e := range tr.Edges() {
		pu, err := arr.PositionOf(e.From)
		require.NoError(t, err)
		pv, err := arr.PositionOf(e.To)
		require.NoError(t, err)
		if pu > pv {
			pu, pv = pv, pu
		}
		d += uint64(pv - pu)
	}
	assert.Equal(t, cost, d)
}

func TestUnconstrainedStarCost(t *testing.T) {
	tr := core.NewFreeTree(6)
	require.NoError(t, tr.AddEdge(0, 1))
	require.NoError(t, tr.AddEdge(0, 2))
	require.NoError(t, tr.AddEdge(0, 3))
	require.NoError(t, tr.AddEdge(0, 4))
	require.NoError(t, tr.AddEdge(0, 5))

	arr, cost, err := dmin.Unconstrained(tr)
	require.NoError(t, err)

	var d uint64
	for _, e := range tr.Edges() {
		pu, err := arr.PositionOf(e.From)
		require.NoError(t, err)
		pv, err := arr.PositionOf(e.To)
		require.NoError(t, err)
		if pu > pv {
			pu, pv = pv, pu
		}
		d += uint64(pv - pu)
	}
	assert.Equal(t, cost, d)
	// optimum for a star on n=6 is 1+1+2+2+3 = 9.
	assert.EqualValues(t, 9, cost)
}
