package core

import (
	"fmt"

	"github.com/lqmc-lab/linarr/unionfind"
)

// TreeType is a bitset of the shape classes a tree may belong to. It is
// lazily validated: ClassifyType recomputes it on demand and caches the
// result until the next structural mutation invalidates it.
type TreeType uint16

const (
	TypePath TreeType = 1 << iota
	TypeStar
	TypeQuasiStar
	TypeBistar
	TypeCaterpillar
	TypeSpider
	TypeTwoLinear
)

// Has reports whether t includes class c.
func (t TreeType) Has(c TreeType) bool { return t&c != 0 }

// Directionality distinguishes a rooted tree's edge orientation.
type Directionality int

const (
	// Arborescence: every edge points away from the root.
	Arborescence Directionality = iota
	// AntiArborescence: every edge points toward the root.
	AntiArborescence
)

// Tree layers the acyclicity invariant, an incrementally-maintained
// union-find, lazily-validated subtree sizes, and a lazily-validated
// tree-type bitset on top of a Graph. Every Graph mutator is still usable
// directly (Tree embeds *Graph), but AddEdge additionally enforces
// acyclicity and keeps the union-find in sync via Graph's hook mechanism.
type Tree struct {
	*Graph

	uf *unionfind.UF

	rooted  bool
	root    Vertex
	dir     Directionality
	sizes   []uint64
	sizesOK bool

	typ   TreeType
	typOK bool
}

// NewFreeTree creates an empty free (unrooted) Tree over n vertices.
func NewFreeTree(n int) *Tree {
	g := NewGraph(n)
	t := &Tree{Graph: g, uf: unionfind.New(n)}
	t.wireHooks()

	return t
}

// NewRootedTree creates an empty rooted Tree over n vertices with the given
// root and directionality.
func NewRootedTree(n int, root Vertex, dir Directionality) (*Tree, error) {
	if int(root) < 0 || int(root) >= n {
		return nil, ErrRootOutOfRange
	}
	g := NewGraph(n, WithDirected())
	t := &Tree{Graph: g, uf: unionfind.New(n), rooted: true, root: root, dir: dir}
	t.wireHooks()

	return t, nil
}

func (t *Tree) wireHooks() {
	t.Graph.hooks = hooks{
		validateAddEdge: t.validateAddEdge,
		afterAddEdge: func(u, v Vertex) {
			_ = t.uf.AfterAddEdge(t.Graph, u, v)
			t.invalidate()
		},
		afterAddEdges: func(edges []Edge) {
			_ = t.uf.AfterAddEdges(t.Graph, toUFEdges(edges))
			t.invalidate()
		},
		afterRemoveEdge: func(u, v Vertex) {
			_ = t.uf.AfterRemoveEdge(t.Graph, u, v)
			t.invalidate()
		},
		afterRemoveEdges: func(edges []Edge) {
			_ = t.uf.AfterRemoveEdges(t.Graph, toUFEdges(edges))
			t.invalidate()
		},
		afterBulkFinish: func() {
			_ = t.uf.AfterBulkEdit(t.Graph)
			t.invalidate()
		},
		beforeRemoveEdgesIncident: func(u Vertex) {
			neighbors, _ := t.Graph.Neighbors(u)
			for _, v := range append([]Vertex(nil), neighbors...) {
				_ = t.uf.BeforeRemoveEdgesIncidentTo(t.Graph, u, v)
			}
		},
		afterRemoveEdgesIncident: func(Vertex) { t.invalidate() },
		afterRemoveNode: func(removed Vertex) {
			t.uf = unionfind.New(t.Graph.NumNodes())
			_ = t.uf.AfterBulkEdit(t.Graph)
			if t.rooted {
				switch {
				case removed == t.root:
					t.rooted = false
				case removed < t.root:
					t.root--
				}
			}
			t.invalidate()
		},
	}
}

func toUFEdges(edges []Edge) []unionfind.Edge {
	out := make([]unionfind.Edge, len(edges))
	for i, e := range edges {
		out[i] = unionfind.Edge{U: e.From, V: e.To}
	}

	return out
}

func (t *Tree) invalidate() {
	t.sizesOK = false
	t.typOK = false
}

func (t *Tree) validateAddEdge(u, v Vertex) error {
	if t.Graph.numEdges >= uint64(t.Graph.NumNodes()-1) {
		return ErrTooManyEdges
	}
	if t.uf.Connected(u, v) {
		return fmt.Errorf("%w: (%d,%d)", ErrWouldCreateCycle, u, v)
	}

	return nil
}

// Rooted reports whether the tree has a designated root.
func (t *Tree) Rooted() bool { return t.rooted }

// Root returns the tree's root, if any.
func (t *Tree) Root() (Vertex, bool) { return t.root, t.rooted }

// SetRoot changes the root of a rooted tree without altering its edges.
// Subtree sizes are invalidated (the direction "away from root" changes).
func (t *Tree) SetRoot(root Vertex) error {
	if !t.rooted {
		return ErrNotRooted
	}
	if err := t.checkRange(root); err != nil {
		return err
	}
	t.root = root
	t.invalidate()

	return nil
}

// Directionality returns the rooted tree's edge orientation.
func (t *Tree) Directionality() Directionality { return t.dir }

// Find returns the root of the connected component containing v, via the
// incrementally-maintained union-find (O(1) lookup, no path walk needed
// since every mutation keeps rootOf fully rewritten).
func (t *Tree) Find(v Vertex) Vertex { return t.uf.Root(v) }

// ComponentSize returns the size of v's connected component.
func (t *Tree) ComponentSize(v Vertex) uint64 { return t.uf.Size(t.uf.Root(v)) }

// IsConnected reports whether the tree (so far) is a single component,
// i.e. whether it has exactly n-1 edges all in one component.
func (t *Tree) IsConnected() bool {
	if t.Graph.NumNodes() == 0 {
		return true
	}

	return t.uf.Size(t.Find(0)) == uint64(t.Graph.NumNodes())
}

// SizesValid reports whether the cached subtree-size array reflects the
// current edge set.
func (t *Tree) SizesValid() bool { return t.sizesOK }

// RecomputeSizes walks the tree from its root (via out-neighbors, following
// the arborescence/anti-arborescence direction) and fills in the subtree
// size of every vertex. Requires a rooted, fully-connected tree.
func (t *Tree) RecomputeSizes() error {
	if !t.rooted {
		return ErrNotRooted
	}
	if !t.IsConnected() {
		return fmt.Errorf("core: tree is not fully connected, cannot size subtrees")
	}
	n := t.Graph.NumNodes()
	sizes := make([]uint64, n)
	order := make([]Vertex, 0, n)
	visited := make([]bool, n)
	stack := []Vertex{t.root}
	visited[t.root] = true
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, u)
		children, err := t.children(u)
		if err != nil {
			return err
		}
		for _, c := range children {
			if !visited[c] {
				visited[c] = true
				stack = append(stack, c)
			}
		}
	}
	for i := range sizes {
		sizes[i] = 1
	}
	for i := len(order) - 1; i > 0; i-- {
		u := order[i]
		p, err := t.parentOf(u)
		if err != nil {
			return err
		}
		sizes[p] += sizes[u]
	}
	t.sizes = sizes
	t.sizesOK = true

	return nil
}

// children returns u's children given the rooted tree's directionality.
func (t *Tree) children(u Vertex) ([]Vertex, error) {
	if t.dir == Arborescence {
		return t.Graph.OutNeighbors(u)
	}

	return t.Graph.InNeighbors(u)
}

// ParentOf returns u's parent in a rooted tree. ok is false when u is the
// root (no parent) or when the tree is not rooted.
func (t *Tree) ParentOf(u Vertex) (p Vertex, ok bool, err error) {
	if !t.rooted {
		return 0, false, ErrNotRooted
	}
	if err := t.checkRange(u); err != nil {
		return 0, false, err
	}
	if u == t.root {
		return 0, false, nil
	}
	p, err = t.parentOf(u)
	if err != nil {
		return 0, false, err
	}

	return p, true, nil
}

// parentOf returns u's unique parent. Only valid for u != root in a
// connected rooted tree.
func (t *Tree) parentOf(u Vertex) (Vertex, error) {
	var list []Vertex
	var err error
	if t.dir == Arborescence {
		list, err = t.Graph.InNeighbors(u)
	} else {
		list, err = t.Graph.OutNeighbors(u)
	}
	if err != nil {
		return 0, err
	}
	if len(list) != 1 {
		return 0, fmt.Errorf("core: vertex %d does not have exactly one parent", u)
	}

	return list[0], nil
}

// SubtreeSize returns the size of the subtree rooted at v. Returns
// ErrSizesInvalid if RecomputeSizes has not been called since the last
// structural mutation.
func (t *Tree) SubtreeSize(v Vertex) (uint64, error) {
	if !t.sizesOK {
		return 0, ErrSizesInvalid
	}
	if err := t.checkRange(v); err != nil {
		return 0, err
	}

	return t.sizes[v], nil
}
