// Package containers provides the fixed-capacity data structures shared by
// the traversal, union-find, and branch-and-bound kernels elsewhere in this
// module: an array with a logical size separate from its capacity, an
// array-backed FIFO queue, and a set over [0,n) that supports O(1)
// positional access to its current members.
//
// None of these types allocate once constructed with a given capacity;
// callers that run the same algorithm repeatedly over many graphs are
// expected to build one container per scratch buffer and Reset it between
// runs, rather than reallocate.
package containers
