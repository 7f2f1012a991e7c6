package treeprops

import "github.com/lqmc-lab/linarr/core"

// SubtreeSizes recomputes (if stale) and returns the subtree size of every
// vertex of a rooted tree, indexed by vertex.
func SubtreeSizes(t *core.Tree) ([]uint64, error) {
	if !t.SizesValid() {
		if err := t.RecomputeSizes(); err != nil {
			return nil, err
		}
	}
	out := make([]uint64, t.NumNodes())
	for v := range out {
		s, err := t.SubtreeSize(Vertex(v))
		if err != nil {
			return nil, err
		}
		out[v] = s
	}

	return out, nil
}
