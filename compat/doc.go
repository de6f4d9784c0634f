// Package compat builds the compatibility graph of two labeled graphs.
//
// A compatibility node is a candidate pair (i, j) of a node of G1 and a
// node of G2 that the node predicate accepts. Two compatibility nodes
// (i1,j1) and (i2,j2) with i1≠i2 and j1≠j2 are joined by
//
//   - a c-edge when both graphs bond the respective nodes and the edge
//     predicate accepts the two bonds,
//   - a d-edge when both graphs bond them with mismatched labels, or when
//     neither graph bonds them,
//   - nothing when exactly one graph bonds them (the pairs exclude each
//     other in every valid mapping).
//
// Cliques over c ∪ d are therefore partial bijections that preserve
// adjacency, which is what the clique package enumerates.
//
// Three strategies are provided:
//
//	Build          sequential; neighbor signatures bucket candidate pairs.
//	BuildParallel  same output, rows split over a bounded fork/join pool.
//	BuildFallback  no signatures; d-edges for unbonded pairs are capped.
//
// Compatibility node ids are assigned in ascending (Source, Target) order,
// so Build and BuildParallel return identical graphs for every fork
// threshold and worker count.
package compat
