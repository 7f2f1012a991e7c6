package dmin

import (
	"github.com/lqmc-lab/linarr/arrangement"
	"github.com/lqmc-lab/linarr/core"
	"github.com/lqmc-lab/linarr/treeprops"
)

// embedBranch is a direct port of Dmin_utils::embed_branch (the
// Hochberg-Stallmann displacement method, with Alemany-Puig's
// correction): v's children alternate, by 1-indexed position parity,
// between the side already anchored under v and the opposite side,
// accumulating a signed displacement (base, dir) from v's own position.
func embedBranch(l [][]nodeSize, v Vertex, base, dir int64, relPos []int64) uint64 {
	cv := l[v]
	var costBranch, before, after, underAnchor uint64

	for i := 1; i < len(cv); i += 2 {
		underAnchor += cv[i].size
	}
	base += dir * (int64(underAnchor) + 1)
	costBranch += underAnchor

	for idx := len(cv) - 1; idx >= 0; idx-- {
		pos := idx + 1
		vi, ni := cv[idx].v, cv[idx].size
		even := pos%2 == 0

		var childBase, childDir int64
		if even {
			childBase = base - dir*int64(before)
			childDir = -dir
		} else {
			childBase = base + dir*int64(after)
			childDir = dir
		}
		costBranch += embedBranch(l, vi, childBase, childDir, relPos)

		if even {
			costBranch += before
			before += ni
		} else {
			costBranch += after
			after += ni
		}
		costBranch++
	}

	relPos[v] = base
	return costBranch
}

// embed is a direct port of Dmin_utils::embed: the root is placed at
// left_sum (the displacement accumulated from its odd-position, i.e.
// left-growing, children), then every other vertex's absolute position
// is the root's plus its relative displacement.
func embed(l [][]nodeSize, r Vertex, n int) ([]int, uint64) {
	relPos := make([]int64, n)
	var leftSum, rightSum, d uint64

	cr := l[r]
	for idx := len(cr) - 1; idx >= 0; idx-- {
		pos := idx + 1
		vi, ni := cr[idx].v, cr[idx].size
		even := pos%2 == 0

		var base, dir int64
		if even {
			base, dir = int64(rightSum), 1
		} else {
			base, dir = -int64(leftSum), -1
		}
		d += embedBranch(l, vi, base, dir, relPos)

		if even {
			d += rightSum
			rightSum += ni
		} else {
			d += leftSum
			leftSum += ni
		}
		d++
	}

	relPos[r] = 0
	rootPos := int64(leftSum)
	posOf := make([]int, n)
	for v := 0; v < n; v++ {
		posOf[v] = int(rootPos + relPos[v])
	}

	return posOf, d
}

// Planar returns a minimum sum-of-edge-lengths arrangement with no edge
// crossings, via the displacement method rooted at the tree's centroid —
// which Hochberg & Stallmann showed gives the true planar minimum,
// letting this run in O(n) rather than trying every vertex as root.
func Planar(t *core.Tree) (*arrangement.Arrangement, uint64, error) {
	n := t.NumNodes()
	if n == 1 {
		arr, err := arrangementFromPositions([]int{0})
		return arr, 0, err
	}

	root, _, _, err := treeprops.Centroid(t, 0)
	if err != nil {
		return nil, 0, err
	}

	l, err := buildRootedOrdering(t, root)
	if err != nil {
		return nil, 0, err
	}

	posOf, cost := embed(l, root, n)

	arr, err := arrangementFromPositions(posOf)
	if err != nil {
		return nil, 0, err
	}

	return arr, cost, nil
}
