package generate

import (
	"errors"

	"github.com/lqmc-lab/linarr/core"
)

// ErrTooFewNodes is returned when asked to generate a tree over fewer
// than 1 vertex.
var ErrTooFewNodes = errors.New("generate: need at least 1 node")

// RandomUnlabelledFreeTree returns a uniformly random labelled free tree
// over n vertices, built from a uniformly random Prüfer sequence (see
// doc.go for why this substitutes for the original's unlabelled-tree
// sampling). n must be at least 1.
func RandomUnlabelledFreeTree(n int, opts ...Option) (*core.Tree, error) {
	if n < 1 {
		return nil, ErrTooFewNodes
	}
	cfg := newConfig(opts...)

	t := core.NewFreeTree(n)
	if n <= 2 {
		if n == 2 {
			if err := t.AddEdge(0, 1); err != nil {
				return nil, err
			}
		}
		return t, nil
	}

	seq := make([]int, n-2)
	for i := range seq {
		seq[i] = cfg.rng.Intn(n)
	}

	degree := make([]int, n)
	for i := range degree {
		degree[i] = 1
	}
	for _, v := range seq {
		degree[v]++
	}

	for _, v := range seq {
		leaf := -1
		for u := 0; u < n; u++ {
			if degree[u] == 1 {
				leaf = u
				break
			}
		}
		if err := t.AddEdge(core.Vertex(leaf), core.Vertex(v)); err != nil {
			return nil, err
		}
		degree[leaf]--
		degree[v]--
	}

	remaining := make([]int, 0, 2)
	for u := 0; u < n; u++ {
		if degree[u] == 1 {
			remaining = append(remaining, u)
		}
	}
	if err := t.AddEdge(core.Vertex(remaining[0]), core.Vertex(remaining[1])); err != nil {
		return nil, err
	}

	return t, nil
}
