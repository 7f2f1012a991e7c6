package crossings

import (
	"sort"

	"github.com/lqmc-lab/linarr/arrangement"
)

type span struct{ l, r int }

// spans converts every edge of g into its (lo, hi) position span under
// arr, with lo < hi always.
func spans(g Graph, arr *arrangement.Arrangement) ([]span, error) {
	edges := g.Edges()
	out := make([]span, 0, len(edges))
	for _, e := range edges {
		lo, hi, err := orderedSpan(arr, [2]uint32{uint32(e.From), uint32(e.To)})
		if err != nil {
			return nil, err
		}
		out = append(out, span{l: lo, r: hi})
	}

	return out, nil
}

// stackBased sweeps edges sorted by left endpoint ascending, ties broken
// by right endpoint descending so that edges sharing their left endpoint
// never count each other. Two edges
// with distinct endpoints (a,b), (c,d), a<b, c<d cross iff a<c<b<d or
// c<a<d<b; processing edges in increasing left-endpoint order, the
// second case is always symmetric to the first from the later edge's
// point of view. So for each edge e=(l,r) we count previously-inserted
// edges whose right endpoint falls strictly inside (l,r): those are
// exactly the edges e'=(l',r') with l'<l<r'<r, i.e. the crossing
// partners of e with a smaller left endpoint. Every crossing pair shares
// exactly one edge with the smaller left endpoint, so this counts each
// pair exactly once. Implemented with a Fenwick tree over right
// endpoints for O(log n) per edge, for O(m log n) total — the complexity
// class named "stack-based" in the source the pack's detail file for
// this engine was not present for.
func stackBased(g Graph, arr *arrangement.Arrangement) (uint64, error) {
	n := g.NumNodes()
	sp, err := spans(g, arr)
	if err != nil {
		return 0, err
	}
	sort.Slice(sp, func(i, j int) bool {
		if sp[i].l != sp[j].l {
			return sp[i].l < sp[j].l
		}
		return sp[i].r > sp[j].r
	})

	bit := newFenwick(n)
	var c uint64
	for _, s := range sp {
		c += uint64(bit.rangeCountOpen(s.l, s.r))
		bit.add(s.r)
	}

	return c, nil
}
