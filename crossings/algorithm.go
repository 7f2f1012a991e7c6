package crossings

import (
	"errors"

	"github.com/lqmc-lab/linarr/arrangement"
	"github.com/lqmc-lab/linarr/core"
)

// Algorithm selects one of the four interchangeable crossing-count
// engines. All four must return the same value for the same (graph,
// arrangement) pair.
type Algorithm int

const (
	// BruteForce checks every pair of independent edges directly. O(m^2).
	BruteForce Algorithm = iota
	// DynamicProgramming is the position-indexed M/K matrix method. O(n^2).
	DynamicProgramming
	// StackBased sweeps edges sorted by left endpoint through a Fenwick
	// tree keyed by right endpoint. O((n+m) log n).
	StackBased
	// Ladder sweeps positions left to right through the same Fenwick
	// primitive as StackBased, opening/closing edges as their endpoints
	// are reached. O((n+m) log n).
	Ladder
)

// ErrUnknownAlgorithm is returned when Algorithm holds a value outside the
// four named constants.
var ErrUnknownAlgorithm = errors.New("crossings: unknown algorithm")

// Graph is the structural surface every engine needs from a graph: node
// count and an edge list. *core.Graph and *core.Tree (which embeds one)
// both satisfy it.
type Graph interface {
	NumNodes() int
	Edges() []core.Edge
}

// NumCrossings computes C, the number of edge crossings induced by arr
// over g, using the selected engine.
func NumCrossings(g Graph, arr *arrangement.Arrangement, algo Algorithm) (uint64, error) {
	switch algo {
	case BruteForce:
		return bruteForce(g, arr)
	case DynamicProgramming:
		return dynamicProgramming(g, arr)
	case StackBased:
		return stackBased(g, arr)
	case Ladder:
		return ladder(g, arr)
	default:
		return 0, ErrUnknownAlgorithm
	}
}

// NumCrossingsBatch computes C for every arrangement in arrs, reusing
// whatever per-call scratch state the chosen engine allocates only once.
func NumCrossingsBatch(g Graph, arrs []*arrangement.Arrangement, algo Algorithm) ([]uint64, error) {
	out := make([]uint64, len(arrs))
	for i, arr := range arrs {
		c, err := NumCrossings(g, arr, algo)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}

	return out, nil
}

// IsNumCrossingsLE reports whether C(g, arr) <= upperBound. When isLE is
// true, value is the exact crossing count. When isLE is false, value is
// only a sentinel (m^2, an upper bound on any achievable C) and must not
// be read as the true count — the point of this variant is to let a
// caller stop counting as soon as C is known to exceed upperBound,
// without paying for the rest of the computation.
func IsNumCrossingsLE(g Graph, arr *arrangement.Arrangement, upperBound uint64, algo Algorithm) (value uint64, isLE bool, err error) {
	switch algo {
	case BruteForce:
		return bruteForceLE(g, arr, upperBound)
	case DynamicProgramming, StackBased, Ladder:
		c, cerr := NumCrossings(g, arr, algo)
		if cerr != nil {
			return 0, false, cerr
		}
		if c <= upperBound {
			return c, true, nil
		}
		m := uint64(len(g.Edges()))
		return m * m, false, nil
	default:
		return 0, false, ErrUnknownAlgorithm
	}
}
