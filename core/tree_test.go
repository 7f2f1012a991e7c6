package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lqmc-lab/linarr/core"
)

func TestTreeRejectsCycle(t *testing.T) {
	tr := core.NewFreeTree(4)
	require.NoError(t, tr.AddEdge(0, 1))
	require.NoError(t, tr.AddEdge(1, 2))
	assert.ErrorIs(t, tr.AddEdge(0, 2), core.ErrWouldCreateCycle)
}

func TestTreeRejectsTooManyEdges(t *testing.T) {
	tr := core.NewFreeTree(4)
	require.NoError(t, tr.AddEdge(0, 1))
	require.NoError(t, tr.AddEdge(1, 2))
	require.NoError(t, tr.AddEdge(2, 3))
	assert.True(t, tr.IsConnected())

	assert.ErrorIs(t, tr.AddEdge(0, 3), core.ErrTooManyEdges)
}

func TestTreeUnionFindTracksConnectivity(t *testing.T) {
	tr := core.NewFreeTree(4)
	require.NoError(t, tr.AddEdge(0, 1))
	assert.False(t, tr.IsConnected())
	require.NoError(t, tr.AddEdge(1, 2))
	require.NoError(t, tr.AddEdge(2, 3))
	assert.True(t, tr.IsConnected())
	assert.Equal(t, tr.Find(0), tr.Find(3))
}

func TestRootedTreeRecomputeSizes(t *testing.T) {
	tr, err := core.NewRootedTree(5, 0, core.Arborescence)
	require.NoError(t, err)
	require.NoError(t, tr.AddEdge(0, 1))
	require.NoError(t, tr.AddEdge(0, 2))
	require.NoError(t, tr.AddEdge(1, 3))
	require.NoError(t, tr.AddEdge(1, 4))

	require.NoError(t, tr.RecomputeSizes())
	size0, err := tr.SubtreeSize(0)
	require.NoError(t, err)
	assert.EqualValues(t, 5, size0)

	size1, err := tr.SubtreeSize(1)
	require.NoError(t, err)
	assert.EqualValues(t, 3, size1)

	size2, err := tr.SubtreeSize(2)
	require.NoError(t, err)
	assert.EqualValues(t, 1, size2)
}

func TestSubtreeSizeInvalidAfterMutation(t *testing.T) {
	tr, err := core.NewRootedTree(3, 0, core.Arborescence)
	require.NoError(t, err)
	require.NoError(t, tr.AddEdge(0, 1))
	require.NoError(t, tr.AddEdge(0, 2))
	require.NoError(t, tr.RecomputeSizes())
	assert.True(t, tr.SizesValid())

	require.NoError(t, tr.RemoveEdge(0, 2))
	require.NoError(t, tr.AddEdge(0, 2))
	assert.False(t, tr.SizesValid())
	_, err = tr.SubtreeSize(0)
	assert.ErrorIs(t, err, core.ErrSizesInvalid)
}

func TestClassifyTypePath(t *testing.T) {
	tr := core.NewFreeTree(4)
	require.NoError(t, tr.AddEdge(0, 1))
	require.NoError(t, tr.AddEdge(1, 2))
	require.NoError(t, tr.AddEdge(2, 3))

	cls, err := tr.ClassifyType()
	require.NoError(t, err)
	assert.True(t, cls.Has(core.TypePath))
	assert.True(t, cls.Has(core.TypeCaterpillar))
}

func TestClassifyTypeStar(t *testing.T) {
	tr := core.NewFreeTree(4)
	require.NoError(t, tr.AddEdge(0, 1))
	require.NoError(t, tr.AddEdge(0, 2))
	require.NoError(t, tr.AddEdge(0, 3))

	cls, err := tr.ClassifyType()
	require.NoError(t, err)
	assert.True(t, cls.Has(core.TypeStar))
	assert.False(t, cls.Has(core.TypePath))
}

func TestClassifyTypeCaterpillarNotPath(t *testing.T) {
	// 0-1-2, plus leaves 3,4 hanging off 1: a caterpillar but not a path.
	tr := core.NewFreeTree(5)
	require.NoError(t, tr.AddEdge(0, 1))
	require.NoError(t, tr.AddEdge(1, 2))
	require.NoError(t, tr.AddEdge(1, 3))
	require.NoError(t, tr.AddEdge(1, 4))

	cls, err := tr.ClassifyType()
	require.NoError(t, err)
	assert.True(t, cls.Has(core.TypeCaterpillar))
	assert.False(t, cls.Has(core.TypePath))
}

func TestRemoveNodeInvalidatesRoot(t *testing.T) {
	tr, err := core.NewRootedTree(3, 0, core.Arborescence)
	require.NoError(t, err)
	require.NoError(t, tr.AddEdge(0, 1))
	require.NoError(t, tr.AddEdge(0, 2))

	require.NoError(t, tr.RemoveNode(0))
	assert.False(t, tr.Rooted())
}
