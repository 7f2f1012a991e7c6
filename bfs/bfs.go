package bfs

import (
	"fmt"

	"github.com/lqmc-lab/linarr/containers"
)

// Traversal is a reusable breadth-first search object: the visited bitset
// and the FIFO queue are allocated once and can be driven through many
// StartAt calls, with SetVisited letting a caller seed which vertices
// should be treated as already visited before a call begins. This is the
// shape package unionfind needs: it runs one BFS per still-unvisited
// vertex in a batch, reusing the same Traversal and only resetting the
// callbacks between starts.
type Traversal struct {
	g       Graph
	opts    Options
	visited []bool
	queue   *containers.QueueArray[Vertex]
}

// New builds a Traversal over g. The Options collected from opts persist
// across StartAt calls until changed with Configure.
func New(g Graph, opts ...Option) (*Traversal, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	q, err := containers.NewQueueArray[Vertex](g.NumNodes())
	if err != nil {
		return nil, err
	}
	t := &Traversal{g: g, opts: o, visited: make([]bool, g.NumNodes()), queue: q}
	for _, v := range o.InitiallyVisited {
		t.visited[v] = true
	}

	return t, nil
}

// Configure replaces the callbacks/toggles used by subsequent StartAt
// calls without touching the visited bitset.
func (t *Traversal) Configure(opts ...Option) {
	for _, opt := range opts {
		opt(&t.opts)
	}
}

// ClearVisited marks every vertex unvisited.
func (t *Traversal) ClearVisited() {
	for i := range t.visited {
		t.visited[i] = false
	}
}

// ClearQueue empties the internal queue without touching visited state.
func (t *Traversal) ClearQueue() { t.queue.Reset() }

// SetVisited marks u's visited flag directly, without enqueueing it. Used
// to make a traversal "pretend" part of the graph is already visited.
func (t *Traversal) SetVisited(u Vertex, visited bool) { t.visited[u] = visited }

// Visited reports whether u has been visited so far.
func (t *Traversal) Visited(u Vertex) bool { return t.visited[u] }

// AllVisited reports whether every vertex has been visited.
func (t *Traversal) AllVisited() bool {
	for _, v := range t.visited {
		if !v {
			return false
		}
	}

	return true
}

// StartAt enqueues every source (marking each visited immediately, before
// enqueueing, to avoid double-pushing the same vertex from two sources)
// and runs the traversal to completion or until Terminate returns true.
func (t *Traversal) StartAt(sources ...Vertex) error {
	for _, s := range sources {
		if int(s) < 0 || int(s) >= t.g.NumNodes() {
			return fmt.Errorf("%w: %d", ErrSourceOutOfRange, s)
		}
		if !t.visited[s] {
			t.visited[s] = true
			if err := t.queue.Push(s); err != nil {
				return err
			}
		}
	}

	return t.run()
}

func (t *Traversal) run() error {
	for t.queue.Len() > 0 {
		select {
		case <-t.opts.Ctx.Done():
			return t.opts.Ctx.Err()
		default:
		}

		s, err := t.queue.Pop()
		if err != nil {
			return err
		}
		t.opts.ProcessCurrent(s)
		if t.opts.Terminate(s) {
			return nil
		}
		if err := t.processNeighbors(s); err != nil {
			return err
		}
	}

	return nil
}

func (t *Traversal) processNeighbors(s Vertex) error {
	out, err := t.g.OutNeighbors(s)
	if err != nil {
		return err
	}
	for _, target := range out {
		if err := t.dealWith(s, target, true); err != nil {
			return err
		}
	}
	if t.g.Directed() && t.opts.UseReverseEdges {
		in, err := t.g.InNeighbors(s)
		if err != nil {
			return err
		}
		for _, target := range in {
			if err := t.dealWith(s, target, false); err != nil {
				return err
			}
		}
	}

	return nil
}

func (t *Traversal) dealWith(s, target Vertex, ltr bool) error {
	wasVisited := t.visited[target]
	if !wasVisited || t.opts.ProcessVisitedNeighbors {
		t.opts.ProcessNeighbor(s, target, ltr)
	}
	if !wasVisited {
		if t.opts.Admit(s, target, ltr) {
			t.visited[target] = true

			return t.queue.Push(target)
		}
	}

	return nil
}

// Result is the outcome of a high-level Run call: visit order, BFS-tree
// depth, and BFS-tree parent for every reached vertex.
type Result struct {
	Order  []Vertex
	Depth  map[Vertex]int
	Parent map[Vertex]Vertex
}

// PathTo reconstructs the shortest path (in edge count) from the traversal
// source to dest, using the BFS-tree parent pointers.
func (r *Result) PathTo(dest Vertex) ([]Vertex, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	path := []Vertex{dest}
	for cur := dest; ; {
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Run performs a single breadth-first traversal from source and returns
// its visit order, depth map, and parent map, building on Traversal with
// depth/parent bookkeeping wired through ProcessCurrent/ProcessNeighbor.
func Run(g Graph, source Vertex, opts ...Option) (*Result, error) {
	res := &Result{
		Depth:  map[Vertex]int{source: 0},
		Parent: map[Vertex]Vertex{},
	}
	trackingOpts := append([]Option{
		WithProcessCurrent(func(v Vertex) { res.Order = append(res.Order, v) }),
		WithProcessNeighbor(func(s, target Vertex, ltr bool) {
			if !ltr {
				return
			}
			if _, seen := res.Depth[target]; !seen {
				res.Depth[target] = res.Depth[s] + 1
				res.Parent[target] = s
			}
		}),
	}, opts...)

	t, err := New(g, trackingOpts...)
	if err != nil {
		return nil, err
	}
	if err := t.StartAt(source); err != nil {
		return nil, err
	}

	return res, nil
}
