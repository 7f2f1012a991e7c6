package crossings

import "github.com/lqmc-lab/linarr/arrangement"

// bruteForce counts crossings by checking every pair of independent
// edges directly against arr's positions. Grounded on core.Graph.Q()
// ("pairs of independent edges", already O(m^2) by construction) — edges
// sharing an endpoint can never cross, so restricting the pairwise scan
// to Q()'s output is both correct and exactly what the brute-force
// engine in the original is described as doing.
func bruteForce(g Graph, arr *arrangement.Arrangement) (uint64, error) {
	pairs, err := independentPairs(g)
	if err != nil {
		return 0, err
	}

	var c uint64
	for _, pr := range pairs {
		crosses, err := crossesAt(arr, pr[0], pr[1])
		if err != nil {
			return 0, err
		}
		if crosses {
			c++
		}
	}

	return c, nil
}

// bruteForceLE is bruteForce with an early exit once the running count
// exceeds upperBound.
func bruteForceLE(g Graph, arr *arrangement.Arrangement, upperBound uint64) (uint64, bool, error) {
	pairs, err := independentPairs(g)
	if err != nil {
		return 0, false, err
	}

	var c uint64
	for _, pr := range pairs {
		crosses, err := crossesAt(arr, pr[0], pr[1])
		if err != nil {
			return 0, false, err
		}
		if crosses {
			c++
			if c > upperBound {
				m := uint64(len(g.Edges()))
				return m * m, false, nil
			}
		}
	}

	return c, true, nil
}

// independentPairs reimplements Graph.Q() over the Graph interface used
// by this package, since Q() itself is only exported on *core.Graph and
// this package only depends on the structural Graph interface.
func independentPairs(g Graph) ([][2][2]uint32, error) {
	edges := g.Edges()
	var out [][2][2]uint32
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			a, b := edges[i], edges[j]
			if a.From != b.From && a.From != b.To && a.To != b.From && a.To != b.To {
				out = append(out, [2][2]uint32{{uint32(a.From), uint32(a.To)}, {uint32(b.From), uint32(b.To)}})
			}
		}
	}

	return out, nil
}

// crossesAt reports whether two edges cross under arr: sorting each
// edge's endpoints by position, they cross iff one's span strictly
// interleaves with the other's (a<c<b<d or c<a<d<b), never nests or
// shares an endpoint.
func crossesAt(arr *arrangement.Arrangement, e1, e2 [2]uint32) (bool, error) {
	a1, b1, err := orderedSpan(arr, e1)
	if err != nil {
		return false, err
	}
	a2, b2, err := orderedSpan(arr, e2)
	if err != nil {
		return false, err
	}

	return (a1 < a2 && a2 < b1 && b1 < b2) || (a2 < a1 && a1 < b2 && b2 < b1), nil
}

func orderedSpan(arr *arrangement.Arrangement, e [2]uint32) (lo, hi int, err error) {
	p1, err := arr.PositionOf(arrangement.Vertex(e[0]))
	if err != nil {
		return 0, 0, err
	}
	p2, err := arr.PositionOf(arrangement.Vertex(e[1]))
	if err != nil {
		return 0, 0, err
	}
	if p1 < p2 {
		return int(p1), int(p2), nil
	}
	return int(p2), int(p1), nil
}
