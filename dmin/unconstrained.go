package dmin

import (
	"sort"

	"github.com/lqmc-lab/linarr/arrangement"
	"github.com/lqmc-lab/linarr/core"
)

// anchorT mirrors Dopt_utils' three-way ANCHOR state: a subtree is
// unanchored (its own centroid decides the split), or anchored to the
// left/right boundary of its interval (its reference vertex is already
// fixed by the caller).
type anchorT int

const (
	noAnchor anchorT = iota
	leftAnchor
	rightAnchor
)

type edgePair struct{ a, b Vertex }

// calculatePAlpha is a direct port of Shiloach::calculate_p_alpha: it
// finds the largest number of subtree-pairs (p_alpha) worth peeling off
// and arranging on their own, symmetric-interleaved around the centroid
// ("recursion B"), along with the two candidate anchor costs s0/s1 that
// recursion B would still owe once those pairs are placed.
func calculatePAlpha(anchored bool, n uint64, ord []nodeSize) (s0, s1 uint64, maxP int) {
	k := len(ord) - 1
	n0 := ord[0].size

	if !anchored {
		maxP = k / 2
		if maxP == 0 {
			return 0, 0, 0
		}

		var sum uint64
		for i := 0; i <= 2*maxP; i++ {
			sum += ord[i].size
		}
		nStar := n - sum
		tricky := (n0+2)/2 + (nStar+2)/2
		nP := ord[2*maxP].size

		for maxP > 0 && nP <= tricky {
			sum -= ord[2*maxP].size + ord[2*maxP-1].size
			maxP--
			nStar = n - sum
			tricky = (n0+2)/2 + (nStar+2)/2
			if maxP > 0 {
				nP = ord[2*maxP].size
			}
		}

		s0 = uint64(maxP) * (nStar + 1 + n0)
		for i := 1; i < maxP; i++ {
			s0 += uint64(i) * (ord[2*i+1].size + ord[2*i+2].size)
		}
		return s0, 0, maxP
	}

	maxP = (k + 1) / 2
	if maxP == 0 {
		return 0, 0, 0
	}

	var sum uint64
	for i := 0; i <= 2*maxP-1; i++ {
		sum += ord[i].size
	}
	nStar := n - sum
	tricky := (n0+2)/2 + (nStar+2)/2
	nP := ord[2*maxP-1].size

	for maxP > 0 && nP <= tricky {
		sum -= ord[2*maxP-1].size + ord[2*maxP-2].size
		maxP--
		nStar = n - sum
		tricky = (n0+2)/2 + (nStar+2)/2
		if maxP > 0 {
			nP = ord[2*maxP-1].size
		}
	}

	s1 = uint64(maxP)*(nStar+1+n0) - 1
	for i := 1; i < maxP; i++ {
		s1 += uint64(i) * (ord[2*i].size + ord[2*i+1].size)
	}
	return 0, s1, maxP
}

// calculateMLA is a direct port of Shiloach::calculate_mla: recursion A
// splits off the centroid's largest branch and recurses on each half;
// recursion B instead peels off calculatePAlpha's symmetric run of
// smaller branches and interleaves them around the centroid. Whichever
// costs less is kept.
func calculateMLA(f *mutableForest, rootOrAnchor Vertex, alpha anchorT, start, end int, posOf []int) uint64 {
	sizes, _, _ := f.sizesAndParent(rootOrAnchor)
	sizeTree := sizes[rootOrAnchor]

	if sizeTree == 1 {
		posOf[rootOrAnchor] = start
		return 0
	}

	var vStar Vertex
	if alpha == noAnchor {
		vStar = f.centroid(rootOrAnchor)
	} else {
		vStar = rootOrAnchor
	}

	sizesV, _, _ := f.sizesAndParent(vStar)
	ord := make([]nodeSize, 0, f.degree(vStar))
	for _, u := range f.adj[vStar] {
		ord = append(ord, nodeSize{v: u, size: sizesV[u]})
	}
	sort.SliceStable(ord, func(i, j int) bool { return ord[i].size > ord[j].size })

	v0, n0 := ord[0].v, ord[0].size
	f.removeEdge(vStar, v0)

	var c1, c2 uint64
	if alpha == leftAnchor {
		c2 = calculateMLA(f, vStar, noAnchor, start, end-int(n0), posOf)
		c1 = calculateMLA(f, v0, leftAnchor, end-int(n0)+1, end, posOf)
	} else {
		c1 = calculateMLA(f, v0, rightAnchor, start, start+int(n0)-1, posOf)
		newAlpha := leftAnchor
		if alpha != noAnchor {
			newAlpha = noAnchor
		}
		c2 = calculateMLA(f, vStar, newAlpha, start+int(n0), end, posOf)
	}

	var cost uint64
	if alpha == noAnchor {
		cost = c1 + c2 + 1
	} else {
		cost = c1 + c2 + sizeTree - n0
	}

	f.addEdge(vStar, v0)

	anchored := alpha == leftAnchor || alpha == rightAnchor
	s0, s1, pAlpha := calculatePAlpha(anchored, sizeTree, ord)

	if pAlpha > 0 {
		anchoredInt := 0
		if anchored {
			anchoredInt = 1
		}
		upper := 2*pAlpha - anchoredInt

		edges := make([]edgePair, 0, upper)
		for i := 1; i <= upper; i++ {
			edges = append(edges, edgePair{a: vStar, b: ord[i].v})
		}
		for _, e := range edges {
			f.removeEdge(e.a, e.b)
		}

		posOfB := append([]int(nil), posOf...)
		var costB uint64
		s, e2 := start, end

		for i := 1; i <= upper; i++ {
			r, ni := ord[i].v, ord[i].size
			var onLeft bool
			if alpha == leftAnchor {
				onLeft = i%2 == 0
			} else {
				onLeft = i%2 == 1
			}

			var cAux uint64
			if onLeft {
				cAux = calculateMLA(f, r, rightAnchor, s, s+int(ni)-1, posOfB)
				s += int(ni)
			} else {
				cAux = calculateMLA(f, r, leftAnchor, e2-int(ni)+1, e2, posOfB)
				e2 -= int(ni)
			}
			costB += cAux
		}
		costB += calculateMLA(f, vStar, noAnchor, s, e2, posOfB)

		for _, e := range edges {
			f.addEdge(e.a, e.b)
		}

		if alpha == noAnchor {
			costB += s0
		} else {
			costB += s1
		}

		if costB < cost {
			copy(posOf, posOfB)
			cost = costB
		}
	}

	return cost
}

// Unconstrained returns a minimum sum-of-edge-lengths arrangement with no
// constraint at all, via Shiloach's recursive centroid-splitting
// algorithm.
func Unconstrained(t *core.Tree) (*arrangement.Arrangement, uint64, error) {
	n := t.NumNodes()
	f, err := newMutableForest(t)
	if err != nil {
		return nil, 0, err
	}

	posOf := make([]int, n)
	cost := calculateMLA(f, 0, noAnchor, 0, n-1, posOf)

	arr, err := arrangementFromPositions(posOf)
	if err != nil {
		return nil, 0, err
	}

	return arr, cost, nil
}
