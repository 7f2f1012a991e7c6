// Package arrangement implements a linear arrangement: a bijection
// between a graph's n vertices and n positions on a line, represented as
// two parallel, always-in-sync mappings ("vertex to position" and
// "position to vertex").
//
// Arrangement distinguishes the identity arrangement (position i holds
// vertex i) as a zero-allocation distinguished case, mirroring
// lal::linear_arrangement's own identity/non-identity split, so that
// callers who never permute vertices — the common case for D on an
// as-given tree — pay no allocation cost.
//
// This package also implements the external head-vector format from §6:
// a length-n slice of 1-indexed parent indices (0 marks the root),
// converted to and from core.Tree.
package arrangement
