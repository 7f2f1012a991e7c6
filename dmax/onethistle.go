package dmax

import (
	"github.com/lqmc-lab/linarr/arrangement"
	"github.com/lqmc-lab/linarr/core"
)

// OneThistle returns the highest-scoring sum-of-edge-lengths arrangement
// among Bipartite's own optimum and every arrangement obtained from it by
// moving a single vertex (the "thistle") to any other position while
// leaving the relative order of the rest undisturbed. Arrangements that
// differ from that one bipartite optimum in more than a single moved
// vertex are not considered.
//
// original_source has no DMax_1_thistle detail file in this pack (its
// generate/all_bipartite_arrangements.hpp neighbour is the only related
// file retrieved), so this is this project's own single-vertex
// relaxation search on top of Bipartite, not a literal port.
func OneThistle(t *core.Tree) (*arrangement.Arrangement, uint64, error) {
	n := t.NumNodes()
	edges := t.Edges()

	baseArr, baseCost, err := Bipartite(t)
	if err != nil {
		return nil, 0, err
	}

	basePos := make([]int, n)
	for v := 0; v < n; v++ {
		p, perr := baseArr.PositionOf(Vertex(v))
		if perr != nil {
			return nil, 0, perr
		}
		basePos[v] = int(p)
	}

	best := baseCost
	bestPos := append([]int(nil), basePos...)

	costOf := func(posOf []int) uint64 {
		var d uint64
		for _, e := range edges {
			pu, pv := posOf[e.From], posOf[e.To]
			if pu > pv {
				pu, pv = pv, pu
			}
			d += uint64(pv - pu)
		}
		return d
	}

	order := make([]Vertex, n)
	for v := 0; v < n; v++ {
		order[basePos[v]] = Vertex(v)
	}

	for _, thistle := range order {
		rest := make([]Vertex, 0, n-1)
		for _, v := range order {
			if v != thistle {
				rest = append(rest, v)
			}
		}

		for insertAt := 0; insertAt <= len(rest); insertAt++ {
			candidateOrder := make([]Vertex, 0, n)
			candidateOrder = append(candidateOrder, rest[:insertAt]...)
			candidateOrder = append(candidateOrder, thistle)
			candidateOrder = append(candidateOrder, rest[insertAt:]...)

			posOf := make([]int, n)
			for i, v := range candidateOrder {
				posOf[v] = i
			}

			if d := costOf(posOf); d > best {
				best = d
				bestPos = posOf
			}
		}
	}

	arr, err := arrangementFromPositions(bestPos)
	if err != nil {
		return nil, 0, err
	}
	return arr, best, nil
}
