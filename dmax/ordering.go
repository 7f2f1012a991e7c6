package dmax

import (
	"sort"

	"github.com/lqmc-lab/linarr/arrangement"
	"github.com/lqmc-lab/linarr/core"
)

// Vertex re-exports core.Vertex.
type Vertex = core.Vertex

// nodeSize pairs a neighbour with the size of the subtree hanging off it.
type nodeSize struct {
	v    Vertex
	size uint64
}

// buildRootedOrderingAscending is dmin's buildRootedOrdering with the
// per-vertex children sorted non-decreasingly by size instead of
// non-increasingly: the ordering the maximization dual of the interval
// method needs, since it places the smallest subtree innermost and the
// largest outermost.
func buildRootedOrderingAscending(t *core.Tree, root Vertex) ([][]nodeSize, error) {
	n := t.NumNodes()
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}
	visited := make([]bool, n)
	order := make([]Vertex, 0, n)
	queue := []Vertex{root}
	visited[root] = true

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		order = append(order, u)
		nb, err := t.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, v := range nb {
			if !visited[v] {
				visited[v] = true
				parent[v] = int(u)
				queue = append(queue, v)
			}
		}
	}

	sizes := make([]uint64, n)
	for i := range sizes {
		sizes[i] = 1
	}
	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		if parent[v] >= 0 {
			sizes[parent[v]] += sizes[v]
		}
	}

	l := make([][]nodeSize, n)
	for _, u := range order {
		nb, err := t.Neighbors(u)
		if err != nil {
			return nil, err
		}
		var children []nodeSize
		for _, v := range nb {
			if int(v) != parent[u] {
				children = append(children, nodeSize{v: v, size: sizes[v]})
			}
		}
		sort.Slice(children, func(i, j int) bool { return children[i].size < children[j].size })
		l[u] = children
	}

	return l, nil
}

func arrangementFromPositions(posOf []int) (*arrangement.Arrangement, error) {
	vp := make([]arrangement.Position, len(posOf))
	for v, p := range posOf {
		vp[v] = arrangement.Position(p)
	}
	return arrangement.NewFromVertexToPosition(vp)
}
