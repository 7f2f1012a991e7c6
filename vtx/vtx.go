// Package vtx defines the two strong-typed integer newtypes shared by
// every other package in this module: Vertex (an index into the vertex set
// {0,...,n-1}) and Position (an index into the line {0,...,n-1} that an
// arrangement assigns vertices to).
//
// They are kept in their own leaf package, rather than alongside the Graph
// type in package core, purely to break what would otherwise be an import
// cycle: the traversal driver (package bfs) and the union-find maintenance
// routines (package unionfind) are written against a small structural
// Graph interface so they never import package core, but they still need
// to name the same Vertex type core.Graph's methods use. Both sides import
// vtx instead; core re-exports the two names as type aliases so callers
// never see the difference.
package vtx

// Vertex identifies a node by its index in [0, n). Keeping it distinct
// from Position is the single cheapest guard this library has against
// indexing an arrangement by the wrong coordinate.
type Vertex uint32

// Position identifies a slot on the line, in [0, n).
type Position uint32
