package crossings

// fenwick is a 0-indexed Binary Indexed Tree over [0, size) counting
// point insertions (a multiset: an index may be inserted, and later
// removed, more than once), supporting O(log size) point update and
// prefix-sum query. Shared by the stack-based and ladder engines.
type fenwick struct {
	tree []int
	size int
}

func newFenwick(size int) *fenwick {
	return &fenwick{tree: make([]int, size+1), size: size}
}

// add increments the count at index i (0-indexed).
func (f *fenwick) add(i int) {
	for i++; i <= f.size; i += i & (-i) {
		f.tree[i]++
	}
}

// remove decrements the count at index i (0-indexed). The caller must
// only remove an index previously added and not yet removed.
func (f *fenwick) remove(i int) {
	for i++; i <= f.size; i += i & (-i) {
		f.tree[i]--
	}
}

// rangeCountGreater returns the number of insertions at indices
// strictly greater than i.
func (f *fenwick) rangeCountGreater(i int) int {
	return f.prefixSum(f.size-1) - f.prefixSum(i)
}

// prefixSum returns the number of insertions at indices [0, i].
func (f *fenwick) prefixSum(i int) int {
	if i < 0 {
		return 0
	}
	if i >= f.size {
		i = f.size - 1
	}
	s := 0
	for i++; i > 0; i -= i & (-i) {
		s += f.tree[i]
	}
	return s
}

// rangeCountOpen returns the number of insertions at indices strictly
// between lo and hi (lo < index < hi).
func (f *fenwick) rangeCountOpen(lo, hi int) int {
	if hi-lo <= 1 {
		return 0
	}
	return f.prefixSum(hi-1) - f.prefixSum(lo)
}
