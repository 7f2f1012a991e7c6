package crossings

import "github.com/lqmc-lab/linarr/arrangement"

// dynamicProgramming is a direct port of the commented-out "basic,
// straightforward and easy to understand" reference implementation found
// in original_source/lal/internal/graphs/C_dyn_prog.cpp
// (compute_M/compute_K/crossings_sequence_n2_n2), kept in full-size n*n
// matrices rather than the file's optimized (n-3)*(n-3) in-place pointer
// version. Runs in O(n^2) time and space.
//
// No crossing can exist with fewer than 4 distinct vertices (two
// independent edges need 4 endpoints between them), matching the
// original's own n<4 early return.
func dynamicProgramming(g Graph, arr *arrangement.Arrangement) (uint64, error) {
	n := g.NumNodes()
	if n < 4 {
		return 0, nil
	}

	seq := make([]arrangement.Vertex, n)
	for p := 0; p < n; p++ {
		v, err := arr.VertexAt(arrangement.Position(p))
		if err != nil {
			return 0, err
		}
		seq[p] = v
	}

	pos := make([]int, n)
	for p, v := range seq {
		pos[v] = p
	}

	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	for _, e := range g.Edges() {
		u, v := int(e.From), int(e.To)
		adj[u][v] = true
		adj[v][u] = true
	}

	// M[pu][i] = number of neighbours of the vertex at position pu that
	// sit at position >= i.
	m := make([][]uint64, n)
	for pu := 0; pu < n; pu++ {
		m[pu] = make([]uint64, n)
		u := int(seq[pu])
		k := uint64(0)
		for v := 0; v < n; v++ {
			if adj[u][v] {
				k++
			}
		}
		m[pu][0] = k
		for i := 1; i < n && k > 0; i++ {
			if adj[u][int(seq[i-1])] {
				k--
			}
			m[pu][i] = k
		}
	}

	k := make([][]uint64, n)
	for i := range k {
		k[i] = make([]uint64, n)
	}
	for i := n - 4; i >= 1; i-- {
		for j := n - 2; j >= i+2; j-- {
			k[i][j] = m[i+1][j+1] + k[i+1][j]
		}
	}
	for j := n - 2; j >= 2; j-- {
		k[0][j] = m[1][j+1] + k[1][j]
	}

	var c uint64
	for pu := 0; pu < n; pu++ {
		u := int(seq[pu])
		for v := 0; v < n; v++ {
			if !adj[u][v] {
				continue
			}
			if pu < pos[v] {
				c += k[pu][pos[v]]
			}
		}
	}

	return c, nil
}
