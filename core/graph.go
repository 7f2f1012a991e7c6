package core

import (
	"fmt"
	"sort"
	"sync"
)

// hooks lets a Tree observe every mutation performed on its embedded Graph
// without Go's lack of inheritance forcing Tree to duplicate the mutator
// bodies. Every field is optional; a nil hook is a no-op. This is the
// "overridable post-hook" of §4.2, expressed as composed function values
// instead of virtual dispatch.
type hooks struct {
	afterAddEdge               func(u, v Vertex)
	afterAddEdges              func(edges []Edge)
	afterRemoveEdge            func(u, v Vertex)
	afterRemoveEdges           func(edges []Edge)
	afterBulkFinish            func()
	beforeRemoveEdgesIncident  func(u Vertex)
	afterRemoveEdgesIncident   func(u Vertex)
	afterRemoveNode            func(removed Vertex)
	validateAddEdge            func(u, v Vertex) error
}

// Graph is the core in-memory graph data structure: n vertices in [0,n),
// directed or undirected, with an adjacency invariant ("normalized" means
// every per-vertex neighbor list is strictly increasing) maintained
// incrementally by mutations, or explicitly restored by Normalize.
//
// muSize guards n and the configuration flags; muAdj guards numEdges,
// adjacency, and the normalized flag. The split mirrors lvlath/core.Graph's
// muVert/muEdgeAdj pair.
type Graph struct {
	muSize sync.RWMutex
	muAdj  sync.RWMutex

	n          int
	directed   bool
	allowLoops bool
	allowMulti bool

	numEdges   uint64
	normalized bool
	bulk       bool

	// succ[u] holds u's out-neighbors (directed) or all neighbors
	// (undirected, in which case it equals the classic adjacency list:
	// every undirected edge {u,v} appears once in succ[u] and once in
	// succ[v]).
	succ [][]Vertex
	// pred[u] holds u's in-neighbors. Unused (nil) for undirected graphs.
	pred [][]Vertex

	hooks hooks
}

// NewGraph creates an empty Graph over n vertices {0,...,n-1}. By default
// the graph is undirected, disallows self-loops, and disallows multi-edges.
func NewGraph(n int, opts ...GraphOption) *Graph {
	g := &Graph{n: n, normalized: true}
	for _, opt := range opts {
		opt(g)
	}
	g.succ = make([][]Vertex, n)
	if g.directed {
		g.pred = make([][]Vertex, n)
	}

	return g
}

// NumNodes returns n, the number of vertices.
func (g *Graph) NumNodes() int {
	g.muSize.RLock()
	defer g.muSize.RUnlock()

	return g.n
}

// NumEdges returns the number of edges: for undirected graphs this is half
// the sum of degrees, maintained incrementally rather than recomputed.
func (g *Graph) NumEdges() uint64 {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	return g.numEdges
}

// Directed reports whether the graph is directed.
func (g *Graph) Directed() bool { return g.directed }

// IsNormalized reports whether every adjacency list is currently known to
// be strictly increasing.
func (g *Graph) IsNormalized() bool {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	return g.normalized
}

func (g *Graph) checkRange(vs ...Vertex) error {
	for _, v := range vs {
		if int(v) < 0 || int(v) >= g.n {
			return fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, v, g.n)
		}
	}

	return nil
}

// Neighbors returns u's neighbor list (undirected graphs) or out-neighbor
// list (directed graphs). The returned slice aliases internal storage and
// must be treated as read-only.
func (g *Graph) Neighbors(u Vertex) ([]Vertex, error) {
	if err := g.checkRange(u); err != nil {
		return nil, err
	}
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	return g.succ[u], nil
}

// OutNeighbors returns u's out-neighbors. For undirected graphs this is
// identical to Neighbors.
func (g *Graph) OutNeighbors(u Vertex) ([]Vertex, error) { return g.Neighbors(u) }

// InNeighbors returns u's in-neighbors. For undirected graphs this is
// identical to Neighbors; for directed graphs it is the dedicated
// predecessor list.
func (g *Graph) InNeighbors(u Vertex) ([]Vertex, error) {
	if err := g.checkRange(u); err != nil {
		return nil, err
	}
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	if !g.directed {
		return g.succ[u], nil
	}

	return g.pred[u], nil
}

// Degree returns len(Neighbors(u)).
func (g *Graph) Degree(u Vertex) (int, error) {
	nb, err := g.Neighbors(u)
	if err != nil {
		return 0, err
	}

	return len(nb), nil
}

func insertSorted(list []Vertex, v Vertex) []Vertex {
	i := sort.Search(len(list), func(i int) bool { return list[i] >= v })
	list = append(list, 0)
	copy(list[i+1:], list[i:])
	list[i] = v

	return list
}

func removeSorted(list []Vertex, v Vertex) ([]Vertex, bool) {
	i := sort.Search(len(list), func(i int) bool { return list[i] >= v })
	if i >= len(list) || list[i] != v {
		return list, false
	}

	return append(list[:i], list[i+1:]...), true
}

func containsSorted(list []Vertex, v Vertex) bool {
	i := sort.Search(len(list), func(i int) bool { return list[i] >= v })

	return i < len(list) && list[i] == v
}

func containsLinear(list []Vertex, v Vertex) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}

	return false
}

// HasEdge reports whether the edge (u,v) exists (out-edge in directed
// graphs). It bisects the shorter endpoint's list when the graph is
// normalized and falls back to a linear scan otherwise, always probing
// whichever of the two candidate lists is shorter.
func (g *Graph) HasEdge(u, v Vertex) (bool, error) {
	if err := g.checkRange(u, v); err != nil {
		return false, err
	}
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	return g.hasEdgeLocked(u, v), nil
}

// hasEdgeLocked is HasEdge without range checking or locking. Caller holds
// muAdj.
func (g *Graph) hasEdgeLocked(u, v Vertex) bool {
	probeList := g.succ[u]
	probeVal := v
	if g.directed {
		if len(g.pred[v]) < len(g.succ[u]) {
			probeList, probeVal = g.pred[v], u
		}
	} else if len(g.succ[v]) < len(g.succ[u]) {
		probeList, probeVal = g.succ[v], u
	}
	if g.normalized {
		return containsSorted(probeList, probeVal)
	}

	return containsLinear(probeList, probeVal)
}

func (g *Graph) validatePair(u, v Vertex) error {
	if err := g.checkRange(u, v); err != nil {
		return err
	}
	if u == v && !g.allowLoops {
		return ErrSelfLoop
	}
	if !g.allowMulti {
		if g.hasEdgeLocked(u, v) {
			return fmt.Errorf("%w: (%d,%d)", ErrDuplicateEdge, u, v)
		}
	}

	return nil
}

// AddEdge inserts the edge (u,v), keeping adjacency lists normalized (if
// they already were) by inserting in sorted position. Runs in
// O(deg(u)+deg(v)) due to the shift incurred by sorted insertion.
func (g *Graph) AddEdge(u, v Vertex) error {
	g.muAdj.Lock()
	if g.bulk {
		g.muAdj.Unlock()
		return ErrNotBulkMode
	}
	if err := g.validatePair(u, v); err != nil {
		g.muAdj.Unlock()
		return err
	}
	if g.hooks.validateAddEdge != nil {
		if err := g.hooks.validateAddEdge(u, v); err != nil {
			g.muAdj.Unlock()
			return err
		}
	}
	g.addEdgeRaw(u, v, true)
	g.muAdj.Unlock()

	if g.hooks.afterAddEdge != nil {
		g.hooks.afterAddEdge(u, v)
	}

	return nil
}

// addEdgeRaw performs the actual storage mutation. Caller holds muAdj.
func (g *Graph) addEdgeRaw(u, v Vertex, sorted bool) {
	if sorted && g.normalized {
		g.succ[u] = insertSorted(g.succ[u], v)
	} else {
		g.succ[u] = append(g.succ[u], v)
	}
	if g.directed {
		if sorted && g.normalized {
			g.pred[v] = insertSorted(g.pred[v], u)
		} else {
			g.pred[v] = append(g.pred[v], u)
		}
	} else if u != v {
		if sorted && g.normalized {
			g.succ[v] = insertSorted(g.succ[v], u)
		} else {
			g.succ[v] = append(g.succ[v], u)
		}
	}
	g.numEdges++
}

// AddEdges adds every edge in the batch, then refreshes derived hook state
// once for the whole batch (instead of once per edge) — mirroring
// update_unionfind_after_add_edges in the original library, which recomputes
// roots for the touched components in a single sweep.
func (g *Graph) AddEdges(edges []Edge) error {
	g.muAdj.Lock()
	if g.bulk {
		g.muAdj.Unlock()
		return ErrNotBulkMode
	}
	for _, e := range edges {
		if err := g.validatePair(e.From, e.To); err != nil {
			g.muAdj.Unlock()
			return err
		}
		if g.hooks.validateAddEdge != nil {
			if err := g.hooks.validateAddEdge(e.From, e.To); err != nil {
				g.muAdj.Unlock()
				return err
			}
		}
		g.addEdgeRaw(e.From, e.To, true)
	}
	g.muAdj.Unlock()

	if g.hooks.afterAddEdges != nil {
		g.hooks.afterAddEdges(edges)
	}

	return nil
}

// AddEdgeBulk appends (u,v) to the raw adjacency without maintaining the
// normalized invariant or running hooks; callers must follow a sequence of
// AddEdgeBulk calls with FinishBulkAdd. It is a batch path for callers that
// add many edges at once, where per-edge invariant maintenance would be pure
// overhead.
func (g *Graph) AddEdgeBulk(u, v Vertex) error {
	g.muAdj.Lock()
	defer g.muAdj.Unlock()
	g.bulk = true
	if err := g.checkRange(u, v); err != nil {
		return err
	}
	g.addEdgeRaw(u, v, false)
	g.normalized = false

	return nil
}

// FinishBulkAdd ends bulk-edit mode. If normalize is true, every adjacency
// list is sorted and the normalized invariant is restored; if check is true,
// the graph is scanned for duplicate edges and self-loops violating the
// configured policy. Runs the afterBulkFinish hook exactly once.
func (g *Graph) FinishBulkAdd(normalize, check bool) error {
	g.muAdj.Lock()
	if !g.bulk {
		g.muAdj.Unlock()
		return ErrNotBulkMode
	}
	g.bulk = false
	if normalize {
		g.normalizeLocked()
	}
	if check {
		if err := g.checkNormalizedLocked(requireNoViolation{selfLoop: !g.allowLoops, multi: !g.allowMulti}); err != nil {
			g.muAdj.Unlock()
			return err
		}
	}
	g.muAdj.Unlock()

	if g.hooks.afterBulkFinish != nil {
		g.hooks.afterBulkFinish()
	}

	return nil
}

type requireNoViolation struct {
	selfLoop bool
	multi    bool
}

func (g *Graph) checkNormalizedLocked(req requireNoViolation) error {
	for u := 0; u < g.n; u++ {
		list := g.succ[u]
		for i, v := range list {
			if req.selfLoop && int(v) == u {
				return fmt.Errorf("%w: (%d,%d)", ErrSelfLoop, u, v)
			}
			if req.multi && i > 0 && list[i-1] == v {
				return fmt.Errorf("%w: (%d,%d)", ErrDuplicateEdge, u, v)
			}
		}
	}

	return nil
}

// RemoveEdge deletes the edge (u,v).
func (g *Graph) RemoveEdge(u, v Vertex) error {
	g.muAdj.Lock()
	if g.bulk {
		g.muAdj.Unlock()
		return ErrNotBulkMode
	}
	if err := g.checkRange(u, v); err != nil {
		g.muAdj.Unlock()
		return err
	}
	removed := g.removeEdgeRaw(u, v)
	g.muAdj.Unlock()
	if !removed {
		return fmt.Errorf("%w: (%d,%d)", ErrEdgeNotFound, u, v)
	}
	if g.hooks.afterRemoveEdge != nil {
		g.hooks.afterRemoveEdge(u, v)
	}

	return nil
}

func (g *Graph) removeEdgeRaw(u, v Vertex) bool {
	var ok bool
	if g.normalized {
		g.succ[u], ok = removeSorted(g.succ[u], v)
	} else {
		ok = removeLinear(&g.succ[u], v)
	}
	if !ok {
		return false
	}
	if g.directed {
		if g.normalized {
			g.pred[v], _ = removeSorted(g.pred[v], u)
		} else {
			removeLinear(&g.pred[v], u)
		}
	} else if u != v {
		if g.normalized {
			g.succ[v], _ = removeSorted(g.succ[v], u)
		} else {
			removeLinear(&g.succ[v], u)
		}
	}
	g.numEdges--

	return true
}

func removeLinear(list *[]Vertex, v Vertex) bool {
	for i, x := range *list {
		if x == v {
			*list = append((*list)[:i], (*list)[i+1:]...)
			return true
		}
	}

	return false
}

// RemoveEdges deletes every edge in the batch.
func (g *Graph) RemoveEdges(edges []Edge) error {
	g.muAdj.Lock()
	if g.bulk {
		g.muAdj.Unlock()
		return ErrNotBulkMode
	}
	for _, e := range edges {
		if err := g.checkRange(e.From, e.To); err != nil {
			g.muAdj.Unlock()
			return err
		}
		g.removeEdgeRaw(e.From, e.To)
	}
	g.muAdj.Unlock()
	if g.hooks.afterRemoveEdges != nil {
		g.hooks.afterRemoveEdges(edges)
	}

	return nil
}

// RemoveEdgeBulk marks the graph as not normalized and removes (u,v)
// without running hooks; pair with FinishBulkRemove.
func (g *Graph) RemoveEdgeBulk(u, v Vertex) error {
	g.muAdj.Lock()
	defer g.muAdj.Unlock()
	g.bulk = true
	if err := g.checkRange(u, v); err != nil {
		return err
	}
	g.removeEdgeRaw(u, v)

	return nil
}

// FinishBulkRemove ends bulk-edit mode for removals, optionally
// re-normalizing, and runs afterBulkFinish once.
func (g *Graph) FinishBulkRemove(normalize bool) error {
	g.muAdj.Lock()
	if !g.bulk {
		g.muAdj.Unlock()
		return ErrNotBulkMode
	}
	g.bulk = false
	if normalize {
		g.normalizeLocked()
	}
	g.muAdj.Unlock()
	if g.hooks.afterBulkFinish != nil {
		g.hooks.afterBulkFinish()
	}

	return nil
}

// RemoveEdgesIncidentTo deletes every edge stored in u's adjacency list
// (every edge touching u in an undirected graph; in a directed graph only
// u's out-edges (u,v) are removed and in-edges (w,u) are kept), running the
// beforeRemoveEdgesIncident hook (which Tree uses to snapshot union-find
// state while u's neighbors are still reachable) before the mutation and
// afterRemoveEdgesIncident afterward.
func (g *Graph) RemoveEdgesIncidentTo(u Vertex) error {
	if err := g.checkRange(u); err != nil {
		return err
	}
	if g.hooks.beforeRemoveEdgesIncident != nil {
		g.hooks.beforeRemoveEdgesIncident(u)
	}

	g.muAdj.Lock()
	neighbors := append([]Vertex(nil), g.succ[u]...)
	for _, v := range neighbors {
		g.removeEdgeRaw(u, v)
	}
	g.muAdj.Unlock()

	if g.hooks.afterRemoveEdgesIncident != nil {
		g.hooks.afterRemoveEdgesIncident(u)
	}

	return nil
}

// RemoveNode deletes vertex u and renumbers every vertex with a larger
// index down by one to close the gap, as required by §3's Lifecycle
// invariant. Runs in O(n + m).
func (g *Graph) RemoveNode(u Vertex) error {
	if err := g.checkRange(u); err != nil {
		return err
	}
	if err := g.RemoveEdgesIncidentTo(u); err != nil {
		return err
	}

	g.muSize.Lock()
	g.muAdj.Lock()
	remap := func(list []Vertex) []Vertex {
		out := list[:0]
		for _, v := range list {
			switch {
			case v == u:
				continue
			case v > u:
				out = append(out, v-1)
			default:
				out = append(out, v)
			}
		}

		return out
	}
	newSucc := make([][]Vertex, g.n-1)
	var newPred [][]Vertex
	if g.directed {
		newPred = make([][]Vertex, g.n-1)
	}
	for v := Vertex(0); int(v) < g.n; v++ {
		if v == u {
			continue
		}
		idx := v
		if v > u {
			idx = v - 1
		}
		newSucc[idx] = remap(g.succ[v])
		if g.directed {
			newPred[idx] = remap(g.pred[v])
		}
	}
	g.succ = newSucc
	g.pred = newPred
	g.n--
	g.muAdj.Unlock()
	g.muSize.Unlock()

	if g.hooks.afterRemoveNode != nil {
		g.hooks.afterRemoveNode(u)
	}

	return nil
}

// DisjointUnion appends other's vertices after self's, shifting every
// vertex index in other by n, and returns a new Graph holding the combined
// vertex set and both edge sets. Neither input graph is mutated.
func (g *Graph) DisjointUnion(other *Graph) (*Graph, error) {
	if g.directed != other.directed {
		return nil, fmt.Errorf("core: cannot union a directed and an undirected graph")
	}
	shift := g.n
	out := NewGraph(g.n+other.n, graphOptionsOf(g)...)
	out.succ = make([][]Vertex, out.n)
	if out.directed {
		out.pred = make([][]Vertex, out.n)
	}
	for u := 0; u < g.n; u++ {
		out.succ[u] = append([]Vertex(nil), g.succ[u]...)
		if out.directed {
			out.pred[u] = append([]Vertex(nil), g.pred[u]...)
		}
	}
	for u := 0; u < other.n; u++ {
		shifted := make([]Vertex, len(other.succ[u]))
		for i, v := range other.succ[u] {
			shifted[i] = v + Vertex(shift)
		}
		out.succ[u+shift] = shifted
		if out.directed {
			shiftedIn := make([]Vertex, len(other.pred[u]))
			for i, v := range other.pred[u] {
				shiftedIn[i] = v + Vertex(shift)
			}
			out.pred[u+shift] = shiftedIn
		}
	}
	out.numEdges = g.numEdges + other.numEdges
	out.normalized = g.normalized && other.normalized

	return out, nil
}

func graphOptionsOf(g *Graph) []GraphOption {
	var opts []GraphOption
	if g.directed {
		opts = append(opts, WithDirected())
	}
	if g.allowLoops {
		opts = append(opts, WithLoopsAllowed())
	}
	if g.allowMulti {
		opts = append(opts, WithMultiEdgesAllowed())
	}

	return opts
}

// Normalize re-sorts every adjacency list into strictly increasing order
// and marks the graph as normalized.
func (g *Graph) Normalize() {
	g.muAdj.Lock()
	defer g.muAdj.Unlock()
	g.normalizeLocked()
}

func (g *Graph) normalizeLocked() {
	for u := range g.succ {
		sort.Slice(g.succ[u], func(i, j int) bool { return g.succ[u][i] < g.succ[u][j] })
	}
	if g.directed {
		for u := range g.pred {
			sort.Slice(g.pred[u], func(i, j int) bool { return g.pred[u][i] < g.pred[u][j] })
		}
	}
	g.normalized = true
}

// CheckNormalized tests (without mutating) whether every adjacency list is
// currently strictly increasing, and updates the cached flag to match.
func (g *Graph) CheckNormalized() bool {
	g.muAdj.Lock()
	defer g.muAdj.Unlock()
	ok := true
	for u := range g.succ {
		for i := 1; i < len(g.succ[u]); i++ {
			if g.succ[u][i-1] >= g.succ[u][i] {
				ok = false
				break
			}
		}
		if !ok {
			break
		}
	}
	g.normalized = ok

	return ok
}

// Q returns every unordered pair of edges that share no endpoint (the
// "pairs of independent edges"), materialized as a slice since Go has no
// lazy-generator protocol as lightweight as the original's Q_iterator.
// Runs in O(m^2).
func (g *Graph) Q() [][2]Edge {
	edges := g.allEdges()
	var out [][2]Edge
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			a, b := edges[i], edges[j]
			if a.From != b.From && a.From != b.To && a.To != b.From && a.To != b.To {
				out = append(out, [2]Edge{a, b})
			}
		}
	}

	return out
}

// allEdges materializes every edge exactly once: for undirected graphs,
// only pairs with From <= To are kept to avoid double counting.
func (g *Graph) allEdges() []Edge {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	var out []Edge
	for u := 0; u < g.n; u++ {
		for _, v := range g.succ[u] {
			if g.directed || Vertex(u) <= v {
				out = append(out, Edge{From: Vertex(u), To: v})
			}
		}
	}

	return out
}

// Edges returns every edge in the graph, each undirected edge listed once.
func (g *Graph) Edges() []Edge { return g.allEdges() }
