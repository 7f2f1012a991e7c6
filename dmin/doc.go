// Package dmin computes a linear arrangement of a tree that minimizes D,
// the sum of edge lengths, under three constraint regimes: Projective
// (root-respecting interval method), Planar (no-crossings displacement
// method rooted at the centroid), and Unconstrained (Shiloach's
// centroid-splitting recursive algorithm).
//
// Grounded on original_source/lal/detail/linarr/D/Dmin/utils.hpp for the
// interval method (arrange/arrange_projective) and displacement method
// (embed/embed_branch, Hochberg & Stallmann's algorithm, used here rooted
// at the tree's centroid per the same file's citation that doing so gives
// the true planar minimum in O(n)), and on
// original_source/lal/detail/linarr/D/Dmin/Unconstrained_YS.hpp
// (Shiloach's algorithm: calculate_p_alpha and calculate_mla) for the
// unconstrained case.
package dmin
