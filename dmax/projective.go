package dmax

import (
	"github.com/lqmc-lab/linarr/arrangement"
	"github.com/lqmc-lab/linarr/core"
)

type place int

const (
	placeNone place = iota
	placeLeft
	placeRight
)

// arrangeIntervalMax is the maximization dual of dmin's arrangeInterval:
// where the minimizer alternates sides to keep every subtree as close to
// r as the recursion allows, the maximizer piles every child onto one
// side instead (never alternating): the side facing away from r's own
// parent, so r sits at the end of its interval nearest that parent and
// each child's root sits at the far end of the child's own interval.
// Children go smallest-to-largest from the outside in, so each successive
// subtree's interval sits between r and all the subtrees already placed;
// the largest, placed last, lies next to r and lengthens the edge of every
// smaller sibling. This pushes r itself to the extreme boundary of its own
// interval rather than leaving it centered, which is what maximizes the
// sum of edge lengths (verified directly against the star graph: n-1
// leaves around a hub maximize at 1+2+...+(n-1) only when the hub sits at
// one end).
func arrangeIntervalMax(l [][]nodeSize, r Vertex, rPlace place, ini, fin int, posOf []int) uint64 {
	children := l[r]
	left := rPlace != placeLeft

	var accLeft, accRight uint64
	var nLeft, nRight uint64
	var dSum, dAnchor uint64

	for _, child := range children {
		vi, ni := child.v, child.size

		var childIni, childFin int
		var childPlace place
		if left {
			childPlace = placeLeft
			childIni, childFin = ini, ini+int(ni)-1
		} else {
			childPlace = placeRight
			childIni, childFin = fin-int(ni)+1, fin
		}
		dAnchor += arrangeIntervalMax(l, vi, childPlace, childIni, childFin, posOf)

		if left {
			dSum += ni * nLeft
			nLeft++
			accLeft += ni
			ini += int(ni)
		} else {
			dSum += ni * nRight
			nRight++
			accRight += ni
			fin -= int(ni)
		}
		dSum++
	}

	posOf[r] = ini

	switch rPlace {
	case placeLeft:
		dAnchor += accRight
	case placeRight:
		dAnchor += accLeft
	}

	return dAnchor + dSum
}

// ProjectiveAEF returns a maximum sum-of-edge-lengths arrangement that
// respects root as the tree's root, via the "arrange extremal first"
// dual of the interval method.
func ProjectiveAEF(t *core.Tree, root Vertex) (*arrangement.Arrangement, uint64, error) {
	n := t.NumNodes()
	if n == 1 {
		arr, err := arrangementFromPositions([]int{0})
		return arr, 0, err
	}

	l, err := buildRootedOrderingAscending(t, root)
	if err != nil {
		return nil, 0, err
	}

	posOf := make([]int, n)
	cost := arrangeIntervalMax(l, root, placeNone, 0, n-1, posOf)

	arr, err := arrangementFromPositions(posOf)
	if err != nil {
		return nil, 0, err
	}

	return arr, cost, nil
}
