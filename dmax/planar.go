package dmax

import (
	"github.com/lqmc-lab/linarr/arrangement"
	"github.com/lqmc-lab/linarr/core"
	"github.com/lqmc-lab/linarr/sortutil"
)

// sortedAdjInfo is one entry of a vertex's bidirectional sorted adjacency
// list: its neighbour v, the size of the subtree "looking away" through
// v, the index v occupies in this list, the index this vertex occupies
// in v's own list, and the inclusive running size total.
type sortedAdjInfo struct {
	child              Vertex
	size               uint64
	sigmaChildInParent int
	sigmaParentInChild int
	partialSum         uint64
}

type directedEdge struct {
	u, v Vertex
	size uint64
}

// makeSortedAdjacencyList builds, for every vertex u, the list of
// neighbours sorted non-increasingly by the size of the subtree u sees
// through that neighbour, mirroring
// DMax::planar::make_sorted_adjacency_list. The original locates each
// entry's cross-index (sigma_parent_in_child) via a second counting sort
// keyed to land entries in the same relative order as the list they'll
// be read back from; this instead looks the cross-index up from a plain
// map, trading that indirection for a simpler equivalent at the same
// O(n) amortized cost.
func makeSortedAdjacencyList(t *core.Tree) ([][]sortedAdjInfo, error) {
	n := t.NumNodes()

	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}
	visited := make([]bool, n)
	order := make([]Vertex, 0, n)
	queue := []Vertex{0}
	visited[0] = true
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

	edges := make([]directedEdge, 0, 2*(n-1))
	for _, v := range order {
		if p := parent[v]; p >= 0 {
			edges = append(edges, directedEdge{u: Vertex(p), v: v, size: sizes[v]})
			edges = append(edges, directedEdge{u: v, v: Vertex(p), size: uint64(n) - sizes[v]})
		}
	}

	if err := sortutil.CountingSort(edges, n, sortutil.NonIncreasing, func(e directedEdge) int { return int(e.size) }); err != nil {
		return nil, err
	}

	type key struct{ u, v Vertex }
	idxOf := make(map[key]int, len(edges))

	m := make([][]sortedAdjInfo, n)
	for _, e := range edges {
		sigma := len(m[e.u])
		var prevSum uint64
		if sigma > 0 {
			prevSum = m[e.u][sigma-1].partialSum
		}
		m[e.u] = append(m[e.u], sortedAdjInfo{
			child:              e.v,
			size:               e.size,
			sigmaChildInParent: sigma,
			partialSum:         e.size + prevSum,
		})
		idxOf[key{e.u, e.v}] = sigma
	}

	for u := 0; u < n; u++ {
		for i := range m[u] {
			v := m[u][i].child
			m[u][i].sigmaParentInChild = idxOf[key{v, Vertex(u)}]
		}
	}

	return m, nil
}

// PlanarAEF returns a maximum sum-of-edge-lengths arrangement with no
// edge crossings. It computes the projective maximum at vertex 0 in
// O(n), propagates it to every other vertex by an O(1) recurrence, and
// re-runs ProjectiveAEF at whichever vertex maximizes it.
func PlanarAEF(t *core.Tree) (*arrangement.Arrangement, uint64, error) {
	n := t.NumNodes()
	if n == 1 {
		arr, err := arrangementFromPositions([]int{0})
		return arr, 0, err
	}
	if n == 2 {
		arr, err := arrangementFromPositions([]int{0, 1})
		return arr, 1, err
	}

	m, err := makeSortedAdjacencyList(t)
	if err != nil {
		return nil, 0, err
	}

	degree := func(v Vertex) uint64 { return uint64(len(m[v])) }

	dmaxPerVertex := make([]uint64, n)
	_, cost0, err := ProjectiveAEF(t, 0)
	if err != nil {
		return nil, 0, err
	}
	dmaxPerVertex[0] = cost0

	maxDMax := dmaxPerVertex[0]
	maxRoot := Vertex(0)

	visited := make([]bool, n)
	visited[0] = true
	queue := []Vertex{0}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		for _, info := range m[u] {
			v := info.child
			if visited[v] {
				continue
			}

			sUV := info.size
			sVU := uint64(n) - sUV
			partialSumUI := info.partialSum
			partialSumVI := m[v][info.sigmaParentInChild].partialSum

			dmaxPerVertex[v] = dmaxPerVertex[u] +
				(partialSumVI + (degree(v)-uint64(info.sigmaParentInChild+1))*sVU) -
				(partialSumUI + (degree(u)-uint64(info.sigmaChildInParent+1))*sUV)

			visited[v] = true
			queue = append(queue, v)

			if dmaxPerVertex[v] > maxDMax {
				maxDMax = dmaxPerVertex[v]
				maxRoot = v
			}
		}
	}

	return ProjectiveAEF(t, maxRoot)
}
