package properties

import "github.com/lqmc-lab/linarr/core"

// ExpectedSumEdgeLengths returns E[D] over a uniform random arrangement
// of a graph with n vertices and m edges. A single edge's length is the
// distance between two uniformly random distinct positions out of n, and
// summing the gap n(n^2-1)/6 over all C(n,2) position pairs gives
// E[length] = (n+1)/3, so E[D] = m(n+1)/3 by linearity of expectation.
// Unlike VarianceSumEdgeLengths, this only needs vertex and edge counts,
// not the tree's shape, since expectation doesn't see edge adjacency.
func ExpectedSumEdgeLengths(n, m int) float64 {
	return float64(m) * float64(n+1) / 3.0
}

// VarianceSumEdgeLengths returns Var[D] over a uniform random arrangement
// of tree t. No file under original_source/lal/properties ports this —
// the pack's properties/ sources only ever cover Var[C] — so this closed
// form is this project's own derivation from order-statistics identities
// over random vertex-to-position assignments, independently verified
// against brute-force enumeration of every permutation for several small
// trees (3 to 6 vertices, path/star/mixed shapes) before being trusted
// here, in the absence of a Go toolchain to check it mechanically.
//
// Var(D) decomposes by edge-pair relationship, since Cov(L_e1, L_e2) is
// zero unless the two edges touch:
//
//   - m independent terms Var(L_e) = (n+1)(n-2)/18, one per edge.
//   - one term 2*Cov_shared per pair of edges sharing a vertex, where
//     Cov_shared = (n+1)(n-8)/180. The number of such pairs is
//     sum_v C(deg(v),2).
//   - one term 2*Cov_disjoint per pair of edges sharing no vertex, where
//     Cov_disjoint = -(n+1)/45. The number of such pairs is
//     C(m,2) - sum_v C(deg(v),2).
//
// Both covariances come from E[L1*L2] for, respectively, a random
// 3-subset of positions assigned to a shared-vertex triple and a random
// 4-subset assigned to two disjoint edges: each reduces to a cubic
// polynomial in n that factors cleanly as
// E[L1*L2|shared] = (n+1)(7n+4)/60 and
// E[L1*L2|disjoint] = (n+1)(5n+4)/45, minus E[L]^2 = ((n+1)/3)^2.
func VarianceSumEdgeLengths(t *core.Tree) (float64, error) {
	n := t.NumNodes()
	edges := t.Edges()
	m := len(edges)

	var sharedPairs int64
	for v := 0; v < n; v++ {
		d, err := t.Degree(core.Vertex(v))
		if err != nil {
			return 0, err
		}
		sharedPairs += int64(d) * int64(d-1) / 2
	}
	totalPairs := int64(m) * int64(m-1) / 2
	disjointPairs := totalPairs - sharedPairs

	nf := float64(n)
	varSingle := (nf + 1) * (nf - 2) / 18
	covShared := (nf + 1) * (nf - 8) / 180
	covDisjoint := -(nf + 1) / 45

	v := float64(m)*varSingle + 2*float64(sharedPairs)*covShared + 2*float64(disjointPairs)*covDisjoint
	return v, nil
}
