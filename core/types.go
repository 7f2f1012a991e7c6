package core

import (
	"errors"

	"github.com/lqmc-lab/linarr/vtx"
)

// Vertex identifies a node by its index in [0, n). It is a distinct type
// from Position so that the compiler catches the easy mistake of indexing
// an arrangement by a vertex where a position was meant, or vice versa.
// Aliased from package vtx — see that package's doc comment for why.
type Vertex = vtx.Vertex

// Position identifies a slot on the line, in [0, n).
type Position = vtx.Position

// Edge is an unordered (undirected graphs) or ordered (directed graphs)
// connection between two vertices.
type Edge struct {
	From Vertex
	To   Vertex
}

// Sentinel errors for core graph and tree operations. Each is wrapped with
// fmt.Errorf("%w: ...") at the call site when extra detail helps a caller
// debug a specific failure.
var (
	// ErrVertexOutOfRange indicates a vertex index outside [0, n).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrSelfLoop indicates an edge (u,u) was attempted without loops enabled.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates a parallel edge was attempted without
	// multi-edges enabled.
	ErrDuplicateEdge = errors.New("core: duplicate edge not allowed")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNotBulkMode indicates FinishBulk* was called without a matching
	// *Bulk call series, or a non-bulk mutator was called while bulk mode
	// is active.
	ErrNotBulkMode = errors.New("core: graph is not in bulk-edit mode")

	// ErrWouldCreateCycle indicates an edge addition to a Tree would close
	// a cycle, violating the tree invariant.
	ErrWouldCreateCycle = errors.New("core: edge would create a cycle in a tree")

	// ErrTooManyEdges indicates an edge addition to a Tree would exceed
	// n-1 edges.
	ErrTooManyEdges = errors.New("core: tree cannot hold more than n-1 edges")

	// ErrRootOutOfRange indicates a requested root vertex is outside [0, n).
	ErrRootOutOfRange = errors.New("core: root out of range")

	// ErrNotRooted indicates a rooted-tree-only operation was called on a
	// tree with no root set.
	ErrNotRooted = errors.New("core: tree has no root")

	// ErrSizesInvalid indicates SubtreeSize was queried while the cached
	// subtree-size array is stale; call RecomputeSizes first.
	ErrSizesInvalid = errors.New("core: subtree sizes are not valid")
)

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithDirected marks the graph as directed. The default is undirected.
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}

// WithLoopsAllowed permits self-loop edges (u,u). The default rejects them.
func WithLoopsAllowed() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdgesAllowed permits parallel edges between the same ordered
// pair of endpoints. The default rejects them.
func WithMultiEdgesAllowed() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}
