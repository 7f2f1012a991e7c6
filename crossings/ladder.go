package crossings

import "github.com/lqmc-lab/linarr/arrangement"

// ladder sweeps positions left to right (rather than stackBased's
// edge-sorted sweep), opening and closing edges as their endpoints are
// reached, using the same Fenwick-tree primitive but keyed by left
// endpoint of the currently-open set instead of right endpoint.
//
// For a crossing pair e1=(l1,r1), e2=(l2,r2) with l1<l2<r1<r2, the pair
// is detected exactly once: when the sweep closes e1 (at r1), e2 is
// already open (l2<r1) and not yet closed (r2>r1), so e1's query for
// "open edges with a larger left endpoint" finds it. By the time e2
// closes, e1 has already been removed, so the pair is never counted
// twice. Edges sharing an endpoint can't cross: all edges closing at
// the same position share that vertex, so every position removes all of
// its closers from the tree before querying, which excludes them from
// each other's counts.
func ladder(g Graph, arr *arrangement.Arrangement) (uint64, error) {
	n := g.NumNodes()
	sp, err := spans(g, arr)
	if err != nil {
		return 0, err
	}

	opensAt := make([][]int, n)
	closesAt := make([][]int, n)
	for _, s := range sp {
		opensAt[s.l] = append(opensAt[s.l], s.l)
		closesAt[s.r] = append(closesAt[s.r], s.l)
	}

	bit := newFenwick(n)
	var c uint64
	for p := 0; p < n; p++ {
		for _, l := range closesAt[p] {
			bit.remove(l)
		}
		for _, l := range closesAt[p] {
			c += uint64(bit.rangeCountGreater(l))
		}
		for range opensAt[p] {
			bit.add(p)
		}
	}

	return c, nil
}
