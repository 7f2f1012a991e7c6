// Package treeprops computes structural tree properties that sit above
// core.Tree: the centroid (the vertex or pair of vertices minimizing the
// largest subtree hanging off it), the centre (the vertex or pair
// minimizing eccentricity, found by iterative leaf-peeling), subtree
// sizes as a public wrapper over core.Tree's lazily-validated cache, and
// the maximum caterpillar subsequence (the largest number of vertices on a
// simple path plus the vertices adjacent to it).
//
// Centroid-finding follows lal::detail::find_centroidal_vertex's
// leaf-peeling strategy: repeatedly remove current leaves, accumulating
// the removed weight onto each leaf's unique remaining neighbor, until
// some vertex's accumulated weight reaches ceil(n/2) — that vertex (or
// that pair, if two reach the threshold simultaneously) is the centroid.
package treeprops
