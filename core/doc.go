// Package core defines the fundamental graph model this library computes
// over: Vertex and Position newtypes, the Graph type (directed or
// undirected, with a normalized-adjacency invariant), and the Tree type
// that layers acyclicity, an incrementally-maintained union-find, lazy
// subtree sizes, and a lazily-validated tree-type classification on top of
// a Graph.
//
// Every mutation on a Graph (AddEdge, RemoveEdge, RemoveNode, ...) runs
// through a small set of overridable hooks so that Tree — which cannot
// subclass Graph the way the C++ original does, since Go has no
// inheritance — can keep its derived data (union-find, subtree sizes,
// tree-type bits) in sync without Tree's callers ever touching that
// machinery directly. This mirrors the "every mutation calls an
// overridable post-hook" design of the original library, expressed with
// Go composition and function-valued struct fields instead of virtual
// methods.
//
// All mutable state here is guarded by two separate sync.RWMutex locks —
// one for vertex-count/size bookkeeping, one for edges/adjacency — the
// same split lvlath/core.Graph uses for its own string-keyed graph, kept
// here even though the algorithms in this module are single-threaded
// per-call (see the package-level Concurrency note in SPEC_FULL.md): it is
// the teacher's own baseline for any exported mutable type, not a
// response to a requirement.
package core
