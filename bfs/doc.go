// Package bfs implements a configurable breadth-first traversal driver.
// Union-find maintenance (package unionfind) builds Traversals with New and
// starts them with StartAt, supplying its own callback set; Run is the
// one-call form of the same driver. The dmin, dmax and classify packages
// walk trees with their own loops and do not use this package.
//
// Run is written against the Graph interface declared in this package, not
// against *core.Graph directly — the "replace templates over graph type
// with a trait/interface" design note applies here: any type exposing
// NumNodes/OutNeighbors/InNeighbors/Directed can be traversed, and
// *core.Graph satisfies it without either package importing the other's
// concrete type, which is what keeps core (which wants to call into this
// package to maintain its union-find) from forming an import cycle with it.
package bfs
