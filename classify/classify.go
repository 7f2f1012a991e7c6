package classify

import (
	"sort"

	"github.com/lqmc-lab/linarr/arrangement"
	"github.com/lqmc-lab/linarr/core"
	"github.com/lqmc-lab/linarr/crossings"
)

// Vertex re-exports core.Vertex.
type Vertex = core.Vertex

// Classify assigns pi's class memberships over rooted tree t, computing
// the crossing count C itself via algo.
func Classify(t *core.Tree, pi *arrangement.Arrangement, algo crossings.Algorithm) (ClassSet, error) {
	root, rooted := t.Root()
	if !rooted {
		return 0, core.ErrNotRooted
	}

	if t.NumNodes() <= 2 {
		return ClassSet(0).setProjective(), nil
	}

	covered, err := isRootCovered(t, pi, root)
	if err != nil {
		return 0, err
	}

	if t.NumNodes() == 3 {
		return smallClass(covered), nil
	}

	c, err := crossings.NumCrossings(t, pi, algo)
	if err != nil {
		return 0, err
	}

	return classifyLargeTree(t, pi, root, covered, c)
}

// ClassifyKnownC is Classify for a caller that already has C in hand,
// skipping the redundant recount.
func ClassifyKnownC(t *core.Tree, pi *arrangement.Arrangement, c uint64) (ClassSet, error) {
	root, rooted := t.Root()
	if !rooted {
		return 0, core.ErrNotRooted
	}

	if t.NumNodes() <= 2 {
		return ClassSet(0).setProjective(), nil
	}

	covered, err := isRootCovered(t, pi, root)
	if err != nil {
		return 0, err
	}

	if t.NumNodes() == 3 {
		return smallClass(covered), nil
	}

	return classifyLargeTree(t, pi, root, covered, c)
}

func smallClass(rootCovered bool) ClassSet {
	if rootCovered {
		return ClassSet(0).setPlanar()
	}
	return ClassSet(0).setProjective()
}

func classifyLargeTree(t *core.Tree, pi *arrangement.Arrangement, root Vertex, covered bool, c uint64) (ClassSet, error) {
	if c == 0 {
		return smallClass(covered), nil
	}

	n := t.NumNodes()
	yields := make([][]int, n)
	if err := buildYields(t, pi, root, yields); err != nil {
		return 0, err
	}

	var cls ClassSet
	if !yieldsCross(yields) && maxDiscontinuity(yields) <= 1 {
		cls |= WG1
	}

	ec1, err := isEC1(t, pi)
	if err != nil {
		return 0, err
	}
	if ec1 {
		cls |= EC1
	}

	return cls, nil
}

// childrenOf returns u's tree children, independent of the rooted tree's
// edge direction.
func childrenOf(t *core.Tree, u Vertex) ([]Vertex, error) {
	if t.Directionality() == core.Arborescence {
		return t.OutNeighbors(u)
	}
	return t.InNeighbors(u)
}

// allIncident returns every vertex adjacent to u via any edge, regardless
// of that edge's direction.
func allIncident(t *core.Tree, u Vertex) ([]Vertex, error) {
	out, err := t.OutNeighbors(u)
	if err != nil {
		return nil, err
	}
	in, err := t.InNeighbors(u)
	if err != nil {
		return nil, err
	}
	all := make([]Vertex, 0, len(out)+len(in))
	all = append(all, out...)
	all = append(all, in...)
	return all, nil
}

func isRootCovered(t *core.Tree, pi *arrangement.Arrangement, root Vertex) (bool, error) {
	pr, err := pi.PositionOf(root)
	if err != nil {
		return false, err
	}
	for _, e := range t.Edges() {
		ps, err := pi.PositionOf(e.From)
		if err != nil {
			return false, err
		}
		pt, err := pi.PositionOf(e.To)
		if err != nil {
			return false, err
		}
		if (ps < pr && pr < pt) || (pt < pr && pr < ps) {
			return true, nil
		}
	}
	return false, nil
}

// buildYields fills yields[v] with the sorted positions of every vertex in
// the subtree rooted at v, for every v reachable from root.
func buildYields(t *core.Tree, pi *arrangement.Arrangement, v Vertex, yields [][]int) error {
	p, err := pi.PositionOf(v)
	if err != nil {
		return err
	}
	yields[v] = append(yields[v], int(p))

	children, err := childrenOf(t, v)
	if err != nil {
		return err
	}
	for _, c := range children {
		if err := buildYields(t, pi, c, yields); err != nil {
			return err
		}
		yields[v] = append(yields[v], yields[c]...)
	}
	sort.Ints(yields[v])
	return nil
}

// yieldsCross reports whether the yields of some pair of vertex-disjoint
// subtrees interleave: positions su1 < sv1 < su2 < sv2 (or the mirror) for
// some pair drawn from each yield. Nested subtrees share positions and are
// not compared.
func yieldsCross(yields [][]int) bool {
	n := len(yields)
	for u := 0; u < n; u++ {
		yu := yields[u]
		for v := u + 1; v < n; v++ {
			yv := yields[v]
			if len(yu) == 0 || len(yv) == 0 {
				continue
			}
			if i := sort.SearchInts(yu, yv[0]); i < len(yu) && yu[i] == yv[0] {
				continue
			}
			if i := sort.SearchInts(yv, yu[0]); i < len(yv) && yv[i] == yu[0] {
				continue
			}
			for i1 := 0; i1 < len(yu); i1++ {
				for i2 := i1 + 1; i2 < len(yu); i2++ {
					su1, su2 := yu[i1], yu[i2]
					for j1 := 0; j1 < len(yv); j1++ {
						for j2 := j1 + 1; j2 < len(yv); j2++ {
							sv1, sv2 := yv[j1], yv[j2]
							if (su1 < sv1 && sv1 < su2 && su2 < sv2) ||
								(sv1 < su1 && su1 < sv2 && sv2 < su2) {
								return true
							}
						}
					}
				}
			}
		}
	}
	return false
}

// maxDiscontinuity returns the largest number of gaps (consecutive sorted
// positions more than 1 apart) found in any single vertex's yield.
func maxDiscontinuity(yields [][]int) int {
	maxDis := 0
	for _, y := range yields {
		dis := 0
		for i := 1; i < len(y); i++ {
			if y[i]-y[i-1] > 1 {
				dis++
			}
		}
		if dis > maxDis {
			maxDis = dis
		}
	}
	return maxDis
}

type edgePair struct{ a, b Vertex }

func sortPair(a, b Vertex) edgePair {
	if a < b {
		return edgePair{a, b}
	}
	return edgePair{b, a}
}

// isEC1 reports whether every edge of t is crossed only by edges that all
// share one common endpoint — vacuously true for edges crossed by zero or
// one other edge. The per-edge crossing collection and pairwise
// shared-endpoint bookkeeping (the "common" set below) is a direct port of
// original_source/lal/linarr/classify_syntactic_dependency_structure.cpp's
// __is_1EC. That original only sets its result to true the first time it
// finds an edge with two or more crossers sharing exactly one common node,
// leaving it false by default and relying on a separate special case
// (C==1) elsewhere to catch the single-crosser-per-edge situation; this
// version defaults to true and disqualifies on the first violation
// instead, matching the "for every edge" wording literally so a structure
// where every edge has at most one crosser is recognised as EC1 without
// needing that separate case.
func isEC1(t *core.Tree, pi *arrangement.Arrangement) (bool, error) {
	n := t.NumNodes()
	posToVertex := make([]Vertex, n)
	for v := 0; v < n; v++ {
		p, err := pi.PositionOf(Vertex(v))
		if err != nil {
			return false, err
		}
		posToVertex[p] = Vertex(v)
	}

	for _, e := range t.Edges() {
		ps, err := pi.PositionOf(e.From)
		if err != nil {
			return false, err
		}
		pt, err := pi.PositionOf(e.To)
		if err != nil {
			return false, err
		}
		if ps > pt {
			ps, pt = pt, ps
		}

		var crossing []edgePair
		for r := ps + 1; r < pt; r++ {
			u := posToVertex[r]
			neighbors, err := allIncident(t, u)
			if err != nil {
				return false, err
			}
			for _, v := range neighbors {
				pv, err := pi.PositionOf(v)
				if err != nil {
					return false, err
				}
				if pv < ps || pt < pv {
					crossing = append(crossing, sortPair(u, v))
				}
			}
		}

		if len(crossing) < 2 {
			continue
		}

		common := map[Vertex]bool{}
		for i := 0; i < len(crossing); i++ {
			for j := i + 1; j < len(crossing); j++ {
				a, b := crossing[i], crossing[j]
				if a.a != b.a && a.a != b.b && a.b != b.a && a.b != b.b {
					return false, nil
				}
				if a.a == b.a || a.a == b.b {
					common[a.a] = true
				}
				if a.b == b.a || a.b == b.b {
					common[a.b] = true
				}
			}
		}
		if len(common) != 1 {
			return false, nil
		}
	}

	return true, nil
}
