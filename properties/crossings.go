package properties

import (
	"github.com/lqmc-lab/linarr/core"
)

// Graph is the structural surface VarianceCrossings and ExpectedCrossings
// need. Both *core.Graph and *core.Tree (which embeds a *core.Graph)
// satisfy it.
type Graph interface {
	NumNodes() int
	Edges() []core.Edge
	Neighbors(core.Vertex) ([]core.Vertex, error)
	Degree(core.Vertex) (int, error)
	HasEdge(core.Vertex, core.Vertex) (bool, error)
}

// ExpectedCrossings returns E[C] over a uniform random arrangement of g:
// each of the C(m,2) pairs of independent edges contributes crossing
// probability exactly 1/3 (of the 3 equally likely relative orderings of
// 4 distinct positions, exactly one produces a crossing), and pairs that
// share a vertex can never cross. So E[C] = |Q| / 3 where |Q| is the
// number of edge pairs sharing no endpoint, computed here directly as
// C(m,2) - sum_v C(deg(v),2) rather than via core.Graph.Q() so this
// function only needs the Graph interface above, not a concrete
// *core.Graph.
func ExpectedCrossings(g Graph) (float64, error) {
	n := g.NumNodes()
	m := int64(len(g.Edges()))

	var sharedPairs int64
	for v := 0; v < n; v++ {
		d, err := g.Degree(core.Vertex(v))
		if err != nil {
			return 0, err
		}
		sharedPairs += int64(d) * int64(d-1) / 2
	}

	disjointPairs := m*(m-1)/2 - sharedPairs
	return float64(disjointPairs) / 3.0, nil
}

// commonNeighbors counts the shared elements of two sorted neighbor lists
// via a two-pointer merge, the Go equivalent of the original's iterate()
// macro over two sorted adjacency vectors.
func commonNeighbors(a, b []core.Vertex) int64 {
	var i, j, count int64
	for int(i) < len(a) && int(j) < len(b) {
		if a[i] == b[j] {
			count++
			i++
			j++
		} else if a[i] < b[j] {
			i++
		} else {
			j++
		}
	}
	return count
}

// degreeSumOfCommon sums deg(w) over every w common to sorted lists a and
// b, again via two-pointer merge; deg is the caller's degree lookup
// (passed in so callers can use a precomputed table instead of calling
// g.Degree per element).
func degreeSumOfCommon(a, b []core.Vertex, deg func(core.Vertex) int64) int64 {
	var i, j, sum int64
	for int(i) < len(a) && int(j) < len(b) {
		if a[i] == b[j] {
			sum += deg(b[j])
			i++
			j++
		} else if a[i] < b[j] {
			i++
		} else {
			j++
		}
	}
	return sum
}

// VarianceCrossings computes Var[C] over a uniform random arrangement of
// g, a direct port of
// original_source/lal/properties/variance_C_gen_graphs.cpp's
// compute_data_gen_graphs (the per-edge accumulation of Qs, Kg, n_paths_4,
// n_paths_5, n_cycles_4, paw, pair_C3_L2, Phi_1, Phi_2, Lambda_1, Lambda_2)
// and the fixed-coefficient overload of var_num_crossings_rational. The
// "reuse" hash-map memoization variant is not ported (see doc.go); this
// always takes the non-memoized path, and always assumes normalized
// (sorted) adjacency lists since core.Graph's AddEdge keeps neighbor
// lists sorted unconditionally — the original's is_normalized=false
// branch, which exists only to sort a copy first, has no equivalent
// needed here.
func VarianceCrossings(g Graph) (float64, error) {
	n := g.NumNodes()
	m := int64(len(g.Edges()))

	degree := make([]int64, n)
	neighbors := make([][]core.Vertex, n)
	for v := 0; v < n; v++ {
		d, err := g.Degree(core.Vertex(v))
		if err != nil {
			return 0, err
		}
		degree[v] = int64(d)
		nb, err := g.Neighbors(core.Vertex(v))
		if err != nil {
			return 0, err
		}
		neighbors[v] = nb
	}
	deg := func(v core.Vertex) int64 { return degree[v] }

	var sumSquaredDegrees, sumCubedDegrees, psi int64
	xi := make([]int64, n)
	for s := 0; s < n; s++ {
		ks := degree[s]
		sumSquaredDegrees += ks * ks
		sumCubedDegrees += ks * ks * ks
		for _, t := range neighbors[s] {
			kt := degree[t]
			psi += ks * kt
			xi[s] += kt
		}
	}
	psi /= 2

	qs := (m*(m+1) - sumSquaredDegrees) / 2
	kg := (m+1)*sumSquaredDegrees - sumCubedDegrees - 2*psi
	phi1 := (m + 1) * psi
	var phi2, mu, nPathsFour, nPathsFive, nCyclesFour, paw, pairC3L2, lambda1, lambda2 int64

	for _, e := range g.Edges() {
		s, t := e.From, e.To
		ks, kt := degree[s], degree[t]
		ns, nt := neighbors[s], neighbors[t]

		for _, u := range ns {
			if u == t {
				continue
			}
			ku := degree[u]
			nu := neighbors[u]
			commonUT := commonNeighbors(nt, nu)

			utIsEdge, err := g.HasEdge(u, t)
			if err != nil {
				return 0, err
			}
			utAdj := int64(0)
			if utIsEdge {
				utAdj = 1
			}
			nPathsFive += (kt-1-utAdj)*(ku-1-utAdj) + 1 - commonUT
		}

		for _, u := range nt {
			if u == s {
				continue
			}
			ku := degree[u]
			nu := neighbors[u]
			commonUS := commonNeighbors(ns, nu)

			isUSEdge, err := g.HasEdge(u, s)
			if err != nil {
				return 0, err
			}
			usAdj := int64(0)
			if isUSEdge {
				usAdj = 1
			}
			nPathsFive += (ks-1-usAdj)*(ku-1-usAdj) + 1 - commonUS
			nCyclesFour += commonUS
		}

		nCyclesFour -= kt - 1

		commonST := commonNeighbors(ns, nt)
		degSumST := degreeSumOfCommon(ns, nt, deg)

		paw += degSumST - 2*commonST
		pairC3L2 += commonST*(m-ks-kt+3) - degSumST

		phi1 -= ks * kt * (ks + kt)
		phi2 += (ks + kt) * (sumSquaredDegrees - (ks*(ks-1) + kt*(kt-1)) - xi[s] - xi[t])

		mu += commonST

		lambda1 += (kt-1)*(xi[s]-kt) + (ks-1)*(xi[t]-ks)
		lambda1 -= 2 * degSumST

		lambda2 += (ks + kt) * ((ks-1)*(kt-1) - commonST)
	}

	lambda2 += lambda1
	phi2 /= 2
	nPathsFour = m - sumSquaredDegrees + psi - mu
	nCyclesFour /= 4
	nPathsFive /= 2
	pairC3L2 /= 3

	// Coefficients as in the original's fixed-coefficient overload of
	// var_num_crossings_rational, with its +=/-= signs folded in so every
	// term here is a plain addition.
	v := float64(2*m+4) / 45 * float64(qs)
	v += float64(kg) / 90
	v -= float64(2*m+7) / 180 * float64(nPathsFour)
	v -= float64(nPathsFive) / 180
	v -= float64(nCyclesFour) / 15
	v -= float64(lambda1) / 60
	v += float64(lambda2) / 180
	v -= float64(phi1) / 90
	v += float64(phi2) / 180
	v += float64(paw) / 30
	v += float64(pairC3L2) / 30

	return v, nil
}
