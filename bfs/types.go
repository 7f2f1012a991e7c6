package bfs

import (
	"context"
	"errors"

	"github.com/lqmc-lab/linarr/vtx"
)

// Vertex re-exports vtx.Vertex so callers of this package never need to
// import vtx directly.
type Vertex = vtx.Vertex

// Graph is the minimal structural interface Run needs. *core.Graph and
// *core.Tree both satisfy it.
type Graph interface {
	NumNodes() int
	Directed() bool
	OutNeighbors(u Vertex) ([]Vertex, error)
	InNeighbors(u Vertex) ([]Vertex, error)
}

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil Graph is passed to Run.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrSourceOutOfRange is returned when a source vertex is outside [0,n).
	ErrSourceOutOfRange = errors.New("bfs: source vertex out of range")
)

// Terminate is called immediately after a vertex is popped and processed;
// returning true stops the traversal early.
type Terminate func(node Vertex) bool

// ProcessCurrent is the per-vertex visit hook.
type ProcessCurrent func(node Vertex)

// ProcessNeighbor is the per-edge hook. ltr is true when the edge runs in
// its natural direction (source -> target); in a directed graph traversed
// with reverse edges enabled, in-edges are reported with ltr=false.
type ProcessNeighbor func(source, target Vertex, ltr bool)

// Admit gates whether an unvisited neighbor gets enqueued at all.
type Admit func(source, target Vertex, ltr bool) bool

// Option configures a traversal via functional arguments, matching the
// WithXxx idiom used throughout this module's sibling packages.
type Option func(*Options)

// Options holds the callbacks and toggles that customize one Run call.
type Options struct {
	Ctx context.Context

	Terminate       Terminate
	ProcessCurrent  ProcessCurrent
	ProcessNeighbor ProcessNeighbor
	Admit           Admit

	// UseReverseEdges also follows in-edges in directed graphs.
	UseReverseEdges bool

	// ProcessVisitedNeighbors invokes ProcessNeighbor even when the target
	// was already visited, instead of only for newly-discovered ones.
	ProcessVisitedNeighbors bool

	// InitiallyVisited, if non-nil, marks these vertices visited before the
	// traversal starts without enqueueing them — used by union-find
	// maintenance to make a BFS "pretend the parent side is visited" so it
	// only walks through the newly attached side of a tree.
	InitiallyVisited []Vertex
}

// DefaultOptions returns an Options with no-op hooks, no reverse edges, and
// context.Background().
func DefaultOptions() Options {
	return Options{
		Ctx:             context.Background(),
		Terminate:       func(Vertex) bool { return false },
		ProcessCurrent:  func(Vertex) {},
		ProcessNeighbor: func(Vertex, Vertex, bool) {},
		Admit:           func(Vertex, Vertex, bool) bool { return true },
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTerminate registers the early-stop predicate.
func WithTerminate(fn Terminate) Option {
	return func(o *Options) {
		if fn != nil {
			o.Terminate = fn
		}
	}
}

// WithProcessCurrent registers the per-vertex visit hook.
func WithProcessCurrent(fn ProcessCurrent) Option {
	return func(o *Options) {
		if fn != nil {
			o.ProcessCurrent = fn
		}
	}
}

// WithProcessNeighbor registers the per-edge hook.
func WithProcessNeighbor(fn ProcessNeighbor) Option {
	return func(o *Options) {
		if fn != nil {
			o.ProcessNeighbor = fn
		}
	}
}

// WithAdmit registers the enqueue gate.
func WithAdmit(fn Admit) Option {
	return func(o *Options) {
		if fn != nil {
			o.Admit = fn
		}
	}
}

// WithUseReverseEdges enables following in-edges in directed graphs.
func WithUseReverseEdges(use bool) Option {
	return func(o *Options) { o.UseReverseEdges = use }
}

// WithProcessVisitedNeighbors enables invoking ProcessNeighbor for already
// visited targets.
func WithProcessVisitedNeighbors(yes bool) Option {
	return func(o *Options) { o.ProcessVisitedNeighbors = yes }
}

// WithInitiallyVisited marks the given vertices visited before the
// traversal begins, without enqueueing or visiting them.
func WithInitiallyVisited(vs ...Vertex) Option {
	return func(o *Options) { o.InitiallyVisited = append(o.InitiallyVisited, vs...) }
}
