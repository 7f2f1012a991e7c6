// Package unionfind maintains, incrementally, the union-find structure
// described in §4.4: two parallel arrays — rootOf (component representative
// per vertex) and rootSize (size of the component rooted there) — updated
// after every tree edit rather than recomputed from scratch, so that
// component queries stay O(alpha(n)).
//
// Every update function takes the edited graph and drives a bfs.Traversal
// over the side of the tree that changed, mirroring update_unionfind_* in
// the original library: adding an edge roots the smaller component under
// the larger one and walks only the newly attached side (by marking the
// parent side pre-visited before starting); removing an edge rewrites both
// halves from scratch via two BFS calls; a batch of edits gets one BFS per
// still-unvisited vertex touched by the batch; a bulk edit gets one BFS per
// still-unvisited vertex in the whole graph.
//
// This package depends only on bfs.Graph's structural interface, not on
// package core, so that core.Tree can call into it without an import
// cycle — see vtx's doc comment for the same reasoning applied one layer
// down.
package unionfind
