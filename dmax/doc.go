// Package dmax computes maximum sum-of-edge-lengths arrangements under
// the same constraint regimes dmin covers, plus the unconstrained
// branch-and-bound maximizer.
//
// ProjectiveAEF is the dual of dmin's interval method: where
// minimization alternates sides so every subtree stays as close to the
// parent as the recursion allows, maximization piles every child onto a
// single side instead (never alternating), the side facing away from the
// parent's own parent, smallest first from the outside in, so the largest
// subtree is placed last, next to the parent, and lies between the parent
// and every smaller sibling. This pushes the parent itself to the boundary
// of its own interval rather than leaving it centered. PlanarAEF
// computes the projective maximum at one vertex in O(n) via a
// bidirectional sorted adjacency list, then propagates it to every other
// vertex by an O(1) recurrence and re-runs ProjectiveAEF at the argmax
// root — grounded on
// original_source/lal/detail/linarr/D/DMax/Planar_AEF.hpp and
// .../DMax_Planar_AEF.hpp (the latter is an older, structurally
// equivalent revision of the same algorithm, cross-checked against the
// former). Bipartite and OneThistle are grounded only on
// original_source/lal/generate/all_bipartite_arrangements.hpp's
// documented semantics (exhaustive enumeration of per-color-class
// permutations in both "red first"/"blue first" orientations) since the
// pack does not carry the closed-form DMax_bipartite/DMax_1_thistle
// detail files; see DESIGN.md for what had to be reconstructed from
// that description alone.
//
// Unconstrained implements a correct but only partially pruned
// branch-and-bound: every still-unassigned vertex is a candidate at
// every position (the search never restricts the candidate set to a
// border/frontier subset, since doing so silently changes which
// arrangements are reachable and can return a suboptimal result — see
// DESIGN.md for a worked counterexample), and pruning family 1
// (admissibility: D_p plus an upper bound on every still-unplaced
// edge), described by
// original_source/lal/detail/linarr/D/DMax/unconstrained/branch_and_bound/AEF/BnB_state_manipulation.cpp,
// is implemented; families 2-6 (level-sequence monotonicity, color
// accounting, per-path thistle caps, level-value prediction with
// origin tags, and the cut-signature closed-form bound) are not, since
// the four BnB_propagate_*/BnB_roll_back_* files describing them run to
// nearly 1500 lines of mutually-recursive path bookkeeping with no
// smaller seam to port in isolation. Without families 2-6 the search
// degrades to O(n!) in the worst case — a real performance cost, not a
// correctness one — so Unconstrained is best suited to small trees.
// See DESIGN.md for the full accounting.
package dmax
