package arrangement

import (
	"errors"
	"fmt"

	"github.com/lqmc-lab/linarr/core"
)

// HeadVector is the external wire format from §6: a length-n slice of
// 1-indexed parent indices; 0 marks the root. hv[i] == 0 means i is the
// root; otherwise hv[i]-1 is i's parent.
type HeadVector []int

// Sentinel errors for head-vector parsing.
var (
	ErrNoRoot          = errors.New("arrangement: head vector has no root")
	ErrMultipleRoots   = errors.New("arrangement: head vector has multiple roots")
	ErrParentOutOfRange = errors.New("arrangement: head vector parent index out of range")
)

// TreeFromHeadVector parses hv into a rooted core.Tree. Malformed input
// (no root, multiple roots, an out-of-range parent, or a cycle) is
// reported as an error naming the offending position and value, per §7's
// "input malformed for parsers" taxonomy.
func TreeFromHeadVector(hv HeadVector) (*core.Tree, error) {
	n := len(hv)
	root := -1
	parent := make([]int, n)
	for i, h := range hv {
		switch {
		case h == 0:
			if root != -1 {
				return nil, fmt.Errorf("%w: positions %d and %d both claim to be root", ErrMultipleRoots, root, i)
			}
			root = i
			parent[i] = -1
		case h < 0 || h > n:
			return nil, fmt.Errorf("%w: position %d has parent value %d", ErrParentOutOfRange, i, h)
		default:
			parent[i] = h - 1
		}
	}
	if root == -1 {
		return nil, ErrNoRoot
	}

	tr, err := core.NewRootedTree(n, core.Vertex(root), core.Arborescence)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if i == root {
			continue
		}
		if err := tr.AddEdge(core.Vertex(parent[i]), core.Vertex(i)); err != nil {
			return nil, fmt.Errorf("arrangement: position %d (parent %d): %w", i, parent[i], err)
		}
	}

	return tr, nil
}

// HeadVectorFromTree writes the parent of each vertex at that vertex's
// position under arr (or its own index if arr is nil, i.e. the identity
// arrangement), producing the external head-vector format.
func HeadVectorFromTree(tr *core.Tree, arr *Arrangement) (HeadVector, error) {
	if !tr.Rooted() {
		return nil, core.ErrNotRooted
	}
	n := tr.NumNodes()
	if arr == nil {
		arr = NewIdentity(n)
	}
	if arr.Size() != n {
		return nil, fmt.Errorf("arrangement: arrangement size %d does not match tree size %d", arr.Size(), n)
	}

	hv := make(HeadVector, n)
	for v := 0; v < n; v++ {
		pos, err := arr.PositionOf(core.Vertex(v))
		if err != nil {
			return nil, err
		}
		parent, ok, err := tr.ParentOf(core.Vertex(v))
		if err != nil {
			return nil, err
		}
		if !ok {
			hv[pos] = 0
			continue
		}
		parentPos, err := arr.PositionOf(parent)
		if err != nil {
			return nil, err
		}
		hv[pos] = int(parentPos) + 1
	}

	return hv, nil
}
