// Package linarr computes quantitative properties of linear
// arrangements of graphs and trees: bijections of a vertex set onto
// [0,n) used throughout quantitative and computational linguistics to
// model how a syntactic dependency tree is laid out as a sentence.
//
// The module is organized as:
//
//	containers/   — array with a logical size, array-backed queue, movable set
//	core/         — Graph and Tree: the graph/tree model everything else computes over
//	bfs/          — breadth-first traversal and connectivity queries
//	unionfind/    — incremental union-find backing Tree's cycle checks
//	sortutil/     — counting sort and related small sorting helpers
//	arrangement/  — the Arrangement type: a vertex<->position bijection
//	treeprops/    — structural tree properties (centroid, centre, subtree sizes, maximum caterpillar)
//	crossings/    — C: the number of crossing edge pairs, via several algorithms
//	dmin/         — minimum sum of edge lengths (unconstrained, planar, projective)
//	dmax/         — maximum sum of edge lengths (unconstrained, planar, projective, bipartite, 1-thistle)
//	classify/     — syntactic-dependency-tree structure classification (Projective/Planar/EC1/WG1)
//	properties/   — closed-form expectation/variance of C and D, and corpus aggregation
//	generate/     — random tree generation for fixtures and simulation
//
// Every package takes *core.Graph or *core.Tree as its structural input
// and returns plain Go values or sentinel errors; none of them hold
// hidden global state, so results are deterministic given deterministic
// inputs (arrangement, tree shape, and — for generate — an explicit
// seed).
package linarr
