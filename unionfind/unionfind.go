package unionfind

import (
	"github.com/lqmc-lab/linarr/bfs"
	"github.com/lqmc-lab/linarr/vtx"
)

// Vertex re-exports vtx.Vertex.
type Vertex = vtx.Vertex

// Edge is a plain (u,v) pair, independent of core.Edge to avoid an import
// of package core.
type Edge struct{ U, V Vertex }

// UF holds the two parallel arrays described in §4.4.
type UF struct {
	RootOf   []Vertex
	RootSize []uint64
}

// New creates a UF over n singleton components: rootOf[v] = v,
// rootSize[v] = 1.
func New(n int) *UF {
	uf := &UF{RootOf: make([]Vertex, n), RootSize: make([]uint64, n)}
	for v := 0; v < n; v++ {
		uf.RootOf[v] = Vertex(v)
		uf.RootSize[v] = 1
	}

	return uf
}

// Root returns the representative of v's component.
func (uf *UF) Root(v Vertex) Vertex { return uf.RootOf[v] }

// Size returns the size of v's component (valid when v is itself a root;
// callers typically call Size(Root(v))).
func (uf *UF) Size(v Vertex) uint64 { return uf.RootSize[v] }

// Connected reports whether u and v currently share a component.
func (uf *UF) Connected(u, v Vertex) bool { return uf.RootOf[u] == uf.RootOf[v] }

// AfterAddEdge updates uf after g gained the edge (u,v), which must have
// just been added to two previously-disconnected components. The smaller
// component is rooted under the larger one; a BFS starting from the child
// side (with the parent side pre-marked visited, so the walk never crosses
// back) rewrites rootOf for every vertex on the newly attached side.
func (uf *UF) AfterAddEdge(g bfs.Graph, u, v Vertex) error {
	rootU, rootV := uf.RootOf[u], uf.RootOf[v]
	sizeU, sizeV := uf.RootSize[rootU], uf.RootSize[rootV]
	newSize := sizeU + sizeV

	var parent, child, newRoot Vertex
	if sizeU < sizeV {
		uf.RootOf[rootU] = rootV
		uf.RootOf[u] = rootV
		newRoot = rootV
		parent, child = v, u
	} else {
		uf.RootOf[rootV] = rootU
		uf.RootOf[v] = rootU
		newRoot = rootU
		parent, child = u, v
	}
	uf.RootSize[newRoot] = newSize

	tr, err := bfs.New(g,
		bfs.WithUseReverseEdges(g.Directed()),
		bfs.WithInitiallyVisited(parent),
		bfs.WithProcessCurrent(func(w Vertex) { uf.RootOf[w] = newRoot }),
	)
	if err != nil {
		return err
	}

	return tr.StartAt(child)
}

// AfterAddEdges updates uf after a batch of edges was added in one go: one
// BFS per still-unvisited endpoint recomputes roots and sizes for every
// component the batch touched.
func (uf *UF) AfterAddEdges(g bfs.Graph, edges []Edge) error {
	tr, err := bfs.New(g, bfs.WithUseReverseEdges(g.Directed()))
	if err != nil {
		return err
	}

	var currentRoot Vertex
	var size uint64
	tr.Configure(bfs.WithProcessCurrent(func(w Vertex) {
		uf.RootOf[w] = currentRoot
		size++
	}))

	for _, e := range edges {
		if tr.Visited(e.U) {
			continue
		}
		currentRoot, size = e.U, 0
		if err := tr.StartAt(e.U); err != nil {
			return err
		}
		uf.RootSize[currentRoot] = size
	}

	return nil
}

// AfterBulkEdit recomputes every component from scratch: one BFS per
// still-unvisited vertex across the whole graph. Used after finish_bulk_*.
func (uf *UF) AfterBulkEdit(g bfs.Graph) error {
	tr, err := bfs.New(g, bfs.WithUseReverseEdges(g.Directed()))
	if err != nil {
		return err
	}

	var currentRoot Vertex
	var size uint64
	tr.Configure(bfs.WithProcessCurrent(func(w Vertex) {
		uf.RootOf[w] = currentRoot
		size++
	}))

	for v := 0; v < g.NumNodes(); v++ {
		if tr.Visited(Vertex(v)) {
			continue
		}
		currentRoot, size = Vertex(v), 0
		if err := tr.StartAt(Vertex(v)); err != nil {
			return err
		}
		uf.RootSize[currentRoot] = size
	}

	return nil
}

// AfterRemoveEdge updates uf after g lost the edge (u,v), which must have
// connected the same component. Two BFS calls rewrite each half: one
// rooted at u (counting its size as it goes), one rooted at v (whose size
// is the remainder).
func (uf *UF) AfterRemoveEdge(g bfs.Graph, u, v Vertex) error {
	sizeUV := uf.RootSize[uf.RootOf[u]]

	tr, err := bfs.New(g, bfs.WithUseReverseEdges(g.Directed()))
	if err != nil {
		return err
	}

	var sizeCCU uint64
	tr.Configure(bfs.WithProcessCurrent(func(w Vertex) {
		uf.RootOf[w] = u
		sizeCCU++
	}))
	if err := tr.StartAt(u); err != nil {
		return err
	}
	uf.RootOf[u] = u
	uf.RootSize[u] = sizeCCU

	tr.Configure(bfs.WithProcessCurrent(func(w Vertex) { uf.RootOf[w] = v }))
	if err := tr.StartAt(v); err != nil {
		return err
	}
	uf.RootOf[v] = v
	uf.RootSize[v] = sizeUV - sizeCCU

	return nil
}

// AfterRemoveEdges updates uf after a batch of edge removals: for every
// edge's endpoint not yet visited, BFS from it to rewrite its new
// component.
func (uf *UF) AfterRemoveEdges(g bfs.Graph, edges []Edge) error {
	tr, err := bfs.New(g, bfs.WithUseReverseEdges(g.Directed()))
	if err != nil {
		return err
	}

	var currentRoot Vertex
	var size uint64
	tr.Configure(bfs.WithProcessCurrent(func(w Vertex) {
		uf.RootOf[w] = currentRoot
		size++
	}))

	for _, e := range edges {
		if !tr.Visited(e.U) {
			currentRoot, size = e.U, 0
			if err := tr.StartAt(e.U); err != nil {
				return err
			}
			uf.RootSize[e.U] = size
		}
		if !tr.Visited(e.V) {
			currentRoot, size = e.V, 0
			if err := tr.StartAt(e.V); err != nil {
				return err
			}
			uf.RootSize[e.V] = size
		}
	}

	return nil
}

// BeforeRemoveEdgesIncidentTo must be called once per neighbor v of u,
// before u's incident edges are actually removed from g, so that the BFS
// can still reach the rest of v's side through u. The traversal masks u as
// already visited and roots the walk at v.
func (uf *UF) BeforeRemoveEdgesIncidentTo(g bfs.Graph, u, v Vertex) error {
	var size uint64
	tr, err := bfs.New(g,
		bfs.WithUseReverseEdges(g.Directed()),
		bfs.WithInitiallyVisited(u),
		bfs.WithProcessCurrent(func(w Vertex) {
			uf.RootOf[w] = v
			size++
		}),
	)
	if err != nil {
		return err
	}
	if err := tr.StartAt(v); err != nil {
		return err
	}
	uf.RootOf[v] = v
	uf.RootSize[v] = size

	return nil
}
