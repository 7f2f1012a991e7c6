package generate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lqmc-lab/linarr/core"
	"github.com/lqmc-lab/linarr/generate"
)

func TestRandomUnlabelledFreeTreeIsConnectedWithNMinusOneEdges(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 20} {
		tr, err := generate.RandomUnlabelledFreeTree(n, generate.WithSeed(42))
		require.NoError(t, err, "n=%d", n)
		assert.True(t, tr.IsConnected(), "n=%d", n)
		assert.EqualValues(t, n-1, tr.NumEdges(), "n=%d", n)
	}
}

func TestRandomUnlabelledFreeTreeIsDeterministicForFixedSeed(t *testing.T) {
	a, err := generate.RandomUnlabelledFreeTree(15, generate.WithSeed(7))
	require.NoError(t, err)
	b, err := generate.RandomUnlabelledFreeTree(15, generate.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, a.Edges(), b.Edges())
}

func TestRandomUnlabelledFreeTreeRejectsZeroNodes(t *testing.T) {
	_, err := generate.RandomUnlabelledFreeTree(0)
	assert.ErrorIs(t, err, generate.ErrTooFewNodes)
}

func TestRandomUnlabelledRootedTreeIsConnectedAndRooted(t *testing.T) {
	for _, n := range []int{1, 2, 3, 10} {
		tr, err := generate.RandomUnlabelledRootedTree(n, generate.WithSeed(13))
		require.NoError(t, err, "n=%d", n)
		assert.True(t, tr.Rooted(), "n=%d", n)
		assert.True(t, tr.IsConnected(), "n=%d", n)
		assert.EqualValues(t, n-1, tr.NumEdges(), "n=%d", n)
		assert.Equal(t, core.Arborescence, tr.Directionality(), "n=%d", n)

		root, rooted := tr.Root()
		require.True(t, rooted)
		for _, e := range tr.Edges() {
			assert.NotEqual(t, root, e.To, "root must have no parent, n=%d", n)
		}
	}
}
