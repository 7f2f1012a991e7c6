package dmin

import "github.com/lqmc-lab/linarr/core"

// mutableForest is a plain adjacency-list copy of a tree that Shiloach's
// algorithm repeatedly splits (by removing edges incident to a centroid)
// and rejoins as it recurses. core.Tree's acyclicity/connectivity
// invariants make it unsuitable for this: the algorithm needs a forest —
// a temporarily disconnected graph — as an intermediate state, not a
// tree, so this package keeps its own minimal mutable copy instead.
type mutableForest struct {
	adj [][]Vertex
}

func newMutableForest(t *core.Tree) (*mutableForest, error) {
	n := t.NumNodes()
	f := &mutableForest{adj: make([][]Vertex, n)}
	for v := 0; v < n; v++ {
		nb, err := t.Neighbors(Vertex(v))
		if err != nil {
			return nil, err
		}
		f.adj[v] = append([]Vertex(nil), nb...)
	}
	return f, nil
}

func (f *mutableForest) removeEdge(u, v Vertex) {
	f.adj[u] = removeFirst(f.adj[u], v)
	f.adj[v] = removeFirst(f.adj[v], u)
}

func (f *mutableForest) addEdge(u, v Vertex) {
	f.adj[u] = append(f.adj[u], v)
	f.adj[v] = append(f.adj[v], u)
}

func removeFirst(s []Vertex, x Vertex) []Vertex {
	for i, v := range s {
		if v == x {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

func (f *mutableForest) degree(v Vertex) int { return len(f.adj[v]) }

// sizesAndParent BFS-walks the connected component containing root and
// returns, for every visited vertex, its subtree size (rooted at root)
// and its parent (root's own parent entry is -1).
func (f *mutableForest) sizesAndParent(root Vertex) (sizes map[Vertex]uint64, parent map[Vertex]int, order []Vertex) {
	sizes = make(map[Vertex]uint64)
	parent = make(map[Vertex]int)
	visited := map[Vertex]bool{root: true}
	parent[root] = -1
	queue := []Vertex{root}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		order = append(order, u)
		for _, v := range f.adj[u] {
			if !visited[v] {
				visited[v] = true
				parent[v] = int(u)
				queue = append(queue, v)
			}
		}
	}

	for _, v := range order {
		sizes[v] = 1
	}
	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		if p := parent[v]; p >= 0 {
			sizes[Vertex(p)] += sizes[v]
		}
	}

	return sizes, parent, order
}

// componentSize returns the number of vertices reachable from root.
func (f *mutableForest) componentSize(root Vertex) uint64 {
	_, _, order := f.sizesAndParent(root)
	return uint64(len(order))
}

// centroid returns a centroid of the connected component containing
// root: the vertex minimizing the largest branch left after its
// removal. Computed from the same subtree-size pass buildRootedOrdering
// already needs, rather than tree_centroid.hpp's leaf-peeling walk
// (treeprops.Centroid), since this recursive algorithm already has
// sizes/parent in hand at every call and a leaf-peel would redo that
// work from scratch after every edge split.
func (f *mutableForest) centroid(root Vertex) Vertex {
	sizes, parent, order := f.sizesAndParent(root)
	total := sizes[root]

	children := make(map[Vertex][]Vertex)
	for _, v := range order {
		if p := parent[v]; p >= 0 {
			children[Vertex(p)] = append(children[Vertex(p)], v)
		}
	}

	best := root
	var bestBranch uint64 = total
	for _, v := range order {
		branch := total - sizes[v]
		for _, c := range children[v] {
			if sizes[c] > branch {
				branch = sizes[c]
			}
		}
		if branch < bestBranch {
			bestBranch = branch
			best = v
		}
	}

	return best
}
