package dmax

import (
	"github.com/lqmc-lab/linarr/arrangement"
	"github.com/lqmc-lab/linarr/core"
)

// bnbState is an unrestricted branch-and-bound search over all
// position-by-position vertex placements: at each position every
// still-unassigned vertex is a candidate, and D_p (the sum of lengths
// of edges whose both endpoints are already placed) plus a loose upper
// bound on every still-unplaced edge is used to prune, the same
// update_state/recover_state and pruning family 1 (admissibility) kept
// in
// original_source/lal/detail/linarr/D/DMax/unconstrained/branch_and_bound/AEF/BnB_state_manipulation.cpp.
// The other five families described there require the per-path
// thistle, level-sequence, color-balance, and level-value-prediction
// bookkeeping this package does not implement (see doc.go); without
// them the search degrades to O(n!) in the worst case, but it always
// explores the full candidate set and therefore always finds the true
// maximum.
type bnbState struct {
	n          int
	neighbors  [][]Vertex
	assigned   []bool
	posOf      []int
	totalEdges int
	best       uint64
	bestPos    []int
}

func (s *bnbState) place(v Vertex, pos int) (edgesAdded int, lengthSum uint64) {
	s.assigned[v] = true
	s.posOf[v] = pos
	for _, w := range s.neighbors[v] {
		if s.assigned[w] {
			d := pos - s.posOf[w]
			if d < 0 {
				d = -d
			}
			lengthSum += uint64(d)
			edgesAdded++
		}
	}
	return
}

func (s *bnbState) unplace(v Vertex) {
	s.assigned[v] = false
}

func (s *bnbState) fill(pos int, dP uint64, placedEdges int) {
	if pos == s.n {
		if s.bestPos == nil || dP > s.best {
			s.best = dP
			s.bestPos = append([]int(nil), s.posOf...)
		}
		return
	}

	remaining := s.totalEdges - placedEdges
	upperBound := dP + uint64(remaining)*uint64(s.n-1)
	if s.bestPos != nil && upperBound <= s.best {
		return
	}

	for v := 0; v < s.n; v++ {
		if s.assigned[v] {
			continue
		}

		added, lengthSum := s.place(Vertex(v), pos)
		s.fill(pos+1, dP+lengthSum, placedEdges+added)
		s.unplace(Vertex(v))
	}
}

// Unconstrained returns a maximum sum-of-edge-lengths arrangement with
// no constraint at all, via branch-and-bound over every placement of
// every vertex, pruned only by the admissibility bound.
func Unconstrained(t *core.Tree) (*arrangement.Arrangement, uint64, error) {
	n := t.NumNodes()
	neighbors := make([][]Vertex, n)
	for v := 0; v < n; v++ {
		nb, err := t.Neighbors(Vertex(v))
		if err != nil {
			return nil, 0, err
		}
		neighbors[v] = nb
	}

	s := &bnbState{
		n:          n,
		neighbors:  neighbors,
		assigned:   make([]bool, n),
		posOf:      make([]int, n),
		totalEdges: n - 1,
	}
	s.fill(0, 0, 0)

	arr, err := arrangementFromPositions(s.bestPos)
	if err != nil {
		return nil, 0, err
	}
	return arr, s.best, nil
}
