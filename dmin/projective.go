package dmin

import (
	"github.com/lqmc-lab/linarr/arrangement"
	"github.com/lqmc-lab/linarr/core"
)

// place mirrors Dopt_utils::place: where a subtree root sits relative to
// its parent in the arrangement being built.
type place int

const (
	placeNone place = iota
	placeLeft
	placeRight
)

// arrangeInterval is a direct port of Dmin_utils::arrange: place r's
// children largest-to-smallest alternating left/right of r, each
// recursively arranged into a contiguous interval, then place r itself
// at the single position the intervals converge to.
func arrangeInterval(l [][]nodeSize, r Vertex, rPlace place, ini, fin int, posOf []int) uint64 {
	children := l[r]
	left := rPlace != placeRight

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
		dAnchor += arrangeInterval(l, vi, childPlace, childIni, childFin, posOf)

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

		left = !left
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

// Projective returns a minimum sum-of-edge-lengths arrangement that
// respects root as the tree's root (no edge may cross the vertical line
// through root's position), via the interval method.
func Projective(t *core.Tree, root Vertex) (*arrangement.Arrangement, uint64, error) {
	n := t.NumNodes()
	l, err := buildRootedOrdering(t, root)
	if err != nil {
		return nil, 0, err
	}

	posOf := make([]int, n)
	cost := arrangeInterval(l, root, placeNone, 0, n-1, posOf)

	arr, err := arrangementFromPositions(posOf)
	if err != nil {
		return nil, 0, err
	}

	return arr, cost, nil
}
