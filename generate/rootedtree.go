package generate

import "github.com/lqmc-lab/linarr/core"

// RandomUnlabelledRootedTree returns a uniformly random labelled rooted
// tree over n vertices: a free tree sampled the same way as
// RandomUnlabelledFreeTree (see doc.go), rooted at a uniformly random
// vertex, with every edge oriented away from the root (Arborescence).
func RandomUnlabelledRootedTree(n int, opts ...Option) (*core.Tree, error) {
	if n < 1 {
		return nil, ErrTooFewNodes
	}
	cfg := newConfig(opts...)

	free, err := RandomUnlabelledFreeTree(n, WithRand(cfg.rng))
	if err != nil {
		return nil, err
	}

	root := core.Vertex(cfg.rng.Intn(n))
	rooted, err := core.NewRootedTree(n, root, core.Arborescence)
	if err != nil {
		return nil, err
	}
	if n == 1 {
		return rooted, nil
	}

	visited := make([]bool, n)
	visited[root] = true
	stack := []core.Vertex{root}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		neighbors, err := free.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, v := range neighbors {
			if visited[v] {
				continue
			}
			visited[v] = true
			if err := rooted.AddEdge(u, v); err != nil {
				return nil, err
			}
			stack = append(stack, v)
		}
	}

	return rooted, nil
}
