package treeprops

import "github.com/lqmc-lab/linarr/core"

// MaximumCaterpillarSubsequence returns the size of the tree's maximum
// spanning caterpillar: the largest count of (path vertices + vertices
// adjacent to the path) over every simple path in the tree.
//
// Grounded on find_farthest_vertex from
// original_source/lal/detail/properties/tree_maximum_caterpillar.hpp: each
// vertex's "weight" (its degree minus one) is added as the BFS reaches it,
// so the running count at a vertex (2 plus the weights along the path from
// the start) is exactly the number of path vertices plus vertices adjacent
// to the path so far; two farthest-vertex
// passes (arbitrary start, then from the first pass's farthest vertex)
// locate the diameter-maximizing path, exactly as a double BFS locates a
// tree's diameter.
func MaximumCaterpillarSubsequence(t *core.Tree) (uint64, error) {
	n := t.NumNodes()
	if n <= 2 {
		return uint64(n), nil
	}

	degree := make([]int, n)
	for v := 0; v < n; v++ {
		d, err := t.Degree(Vertex(v))
		if err != nil {
			return 0, err
		}
		degree[v] = d
	}

	weight := make([]uint64, n)
	for v := 0; v < n; v++ {
		weight[v] = uint64(degree[v] - 1)
	}

	first, _, err := farthestVertex(t, 0, weight)
	if err != nil {
		return 0, err
	}
	_, maxCount, err := farthestVertex(t, first, weight)
	if err != nil {
		return 0, err
	}

	return maxCount, nil
}

func farthestVertex(t *core.Tree, start Vertex, weight []uint64) (Vertex, uint64, error) {
	n := t.NumNodes()
	counts := make([]uint64, n)
	visited := make([]bool, n)
	counts[start] = 2 + weight[start]
	visited[start] = true
	queue := []Vertex{start}
	farthest := start
	maxCount := counts[start]

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		nb, err := t.Neighbors(u)
		if err != nil {
			return 0, 0, err
		}
		for _, v := range nb {
			if visited[v] {
				continue
			}
			visited[v] = true
			counts[v] = counts[u] + weight[v]
			if counts[v] > maxCount {
				maxCount = counts[v]
				farthest = v
			}
			queue = append(queue, v)
		}
	}

	return farthest, maxCount, nil
}
