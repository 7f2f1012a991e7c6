package treeprops

import (
	"github.com/lqmc-lab/linarr/core"
)

// Vertex re-exports core.Vertex.
type Vertex = core.Vertex

// Centroid returns the one or two centroidal vertices of the connected
// component containing x: the vertex (or vertices) whose removal leaves
// every remaining component with at most floor(n/2) vertices. When two
// vertices tie, both are returned with the smaller index first; when one
// suffices, ok2 is false.
//
// Implemented by the classic leaf-peeling algorithm: repeatedly strip
// current-degree-1 vertices from a working copy of the degree array,
// accumulating each stripped vertex's weight onto its unique remaining
// neighbor, until some vertex's accumulated weight reaches ceil(n/2).
func Centroid(t *core.Tree, x Vertex) (c1 Vertex, c2 Vertex, ok2 bool, err error) {
	n := t.NumNodes()
	if n == 1 {
		return x, 0, false, nil
	}

	degree := make([]int, n)
	weight := make([]uint64, n)
	for v := 0; v < n; v++ {
		d, derr := t.Degree(Vertex(v))
		if derr != nil {
			return 0, 0, false, derr
		}
		degree[v] = d
		weight[v] = 1
	}

	ndiv2 := uint64(n)/2 + uint64(n)%2

	queue := make([]Vertex, 0, n)
	for v := 0; v < n; v++ {
		if degree[v] == 1 {
			queue = append(queue, Vertex(v))
		}
	}

	const invalid = -1
	c1i, c2i := invalid, invalid

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		if weight[u] >= ndiv2 {
			if c1i == invalid {
				c1i = int(u)
			} else {
				c2i = int(u)
			}
			continue
		}

		degree[u]--
		nb, nerr := t.Neighbors(u)
		if nerr != nil {
			return 0, 0, false, nerr
		}
		for _, v := range nb {
			if degree[v] == 0 {
				continue
			}
			degree[v]--
			weight[v] += weight[u]
			if degree[v] == 1 {
				queue = append(queue, v)
			}
		}
	}

	if c2i != invalid {
		if c1i > c2i {
			c1i, c2i = c2i, c1i
		}

		return Vertex(c1i), Vertex(c2i), true, nil
	}

	return Vertex(c1i), 0, false, nil
}

// Centre returns the one or two central vertices of the tree: those
// minimizing eccentricity, found by the classical repeated-leaf-removal
// algorithm (strip every current leaf layer by layer until 1 or 2
// vertices remain).
func Centre(t *core.Tree) (c1 Vertex, c2 Vertex, ok2 bool, err error) {
	n := t.NumNodes()
	if n == 1 {
		return 0, 0, false, nil
	}
	if n == 2 {
		return 0, 1, true, nil
	}

	degree := make([]int, n)
	leaves := make([]Vertex, 0, n)
	for v := 0; v < n; v++ {
		d, derr := t.Degree(Vertex(v))
		if derr != nil {
			return 0, 0, false, derr
		}
		degree[v] = d
		if d <= 1 {
			leaves = append(leaves, Vertex(v))
		}
	}

	remaining := n
	for remaining > 2 {
		remaining -= len(leaves)
		next := make([]Vertex, 0)
		for _, u := range leaves {
			nb, nerr := t.Neighbors(u)
			if nerr != nil {
				return 0, 0, false, nerr
			}
			for _, v := range nb {
				if degree[v] <= 0 {
					continue
				}
				degree[v]--
				if degree[v] == 1 {
					next = append(next, v)
				}
			}
		}
		leaves = next
	}

	switch len(leaves) {
	case 1:
		return leaves[0], 0, false, nil
	default:
		a, b := leaves[0], leaves[1]
		if a > b {
			a, b = b, a
		}

		return a, b, true, nil
	}
}
