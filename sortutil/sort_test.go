package sortutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lqmc-lab/linarr/sortutil"
)

func TestCountingSortNonDecreasing(t *testing.T) {
	data := []int{5, 3, 0, 3, 1, 5}
	require.NoError(t, sortutil.CountingSort(data, 5, sortutil.NonDecreasing, func(v int) int { return v }))
	assert.Equal(t, []int{0, 1, 3, 3, 5, 5}, data)
}

func TestCountingSortNonIncreasing(t *testing.T) {
	data := []int{5, 3, 0, 3, 1, 5}
	require.NoError(t, sortutil.CountingSort(data, 5, sortutil.NonIncreasing, func(v int) int { return v }))
	assert.Equal(t, []int{5, 5, 3, 3, 1, 0}, data)
}

func TestCountingSortIsStable(t *testing.T) {
	type pair struct {
		key, orig int
	}
	data := []pair{{1, 0}, {0, 1}, {1, 2}, {0, 3}}
	require.NoError(t, sortutil.CountingSort(data, 1, sortutil.NonDecreasing, func(p pair) int { return p.key }))
	assert.Equal(t, []pair{{0, 1}, {0, 3}, {1, 0}, {1, 2}}, data)
}

func TestCountingSortRejectsOutOfRangeKey(t *testing.T) {
	data := []int{0, 2}
	err := sortutil.CountingSort(data, 1, sortutil.NonDecreasing, func(v int) int { return v })
	assert.ErrorIs(t, err, sortutil.ErrNegativeKey)
}

func TestBitSortPartitions(t *testing.T) {
	data := []int{1, 2, 3, 4, 5, 6}
	sortutil.BitSort(data, false, func(v int) bool { return v%2 == 0 })
	assert.Equal(t, []int{1, 3, 5, 2, 4, 6}, data)
}

func TestRadixSortMatchesCountingSort(t *testing.T) {
	data := []int{170, 45, 75, 90, 802, 24, 2, 66}
	sortutil.RadixSort(data, 10, 3, func(v int) int { return v })
	assert.Equal(t, []int{2, 24, 45, 66, 75, 90, 170, 802}, data)
}

func TestMemoryReusableAcrossCalls(t *testing.T) {
	mem := sortutil.NewMemory[int](4, 4)
	a := []int{3, 1, 2, 0}
	require.NoError(t, sortutil.CountingSortWithMemory(a, sortutil.NonDecreasing, func(v int) int { return v }, mem))
	assert.Equal(t, []int{0, 1, 2, 3}, a)

	mem.Reset()
	b := []int{2, 0, 3, 1}
	require.NoError(t, sortutil.CountingSortWithMemory(b, sortutil.NonDecreasing, func(v int) int { return v }, mem))
	assert.Equal(t, []int{0, 1, 2, 3}, b)
}
