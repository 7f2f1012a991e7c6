// Package classify assigns a syntactic-dependency-tree structure to a
// rooted tree and one of its linear arrangements, as an explicit bitset
// of class memberships (Projective, Planar, EC1, WG1) rather than a
// single enum.
//
// Grounded on
// original_source/lal/linarr/classify_syntactic_dependency_structure.cpp
// (the small-n special cases, the C=0 short-circuit, and the class
// subsumption rules) and
// original_source/lal/linarr/syntactic_dependency_tree/classify.cpp
// (confirmed, on inspection, to hold the same logic under a different
// entry point for an already-built dependency-tree type; this package
// exposes only the classify_tree_structure path, since the repo has no
// equivalent of the separate "dependency tree" domain type).
//
// The C++'s single-linked-list __get_yields/__disjoint_yields/__is_1EC
// helpers are adapted, not copied: this package's rooted_tree already
// stores arborescence edges, so subtree recursion walks children
// directly instead of the original's generic-neighbour-plus-visited-set
// DFS (which exists there only because lal's rooted_tree is represented
// as a general directed graph with no dedicated children accessor).
package classify
