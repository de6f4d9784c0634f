// Package clique enumerates the maximum cliques of a compatibility graph.
//
// The adjacency relation is the union of c-edges and d-edges. Maximum runs
// Bron–Kerbosch with Tomita pivoting: at every branch the pivot u is the
// vertex of P ∪ X with the most neighbors in P, and only P \ N(u) is
// expanded. Branches whose |R| + |P| cannot reach the best size seen so
// far are cut. Every clique of the best size is returned, because
// different seeds may extend into different final mappings.
//
// Candidate and excluded sets are bitsets
// (github.com/bits-and-blooms/bitset), so intersections cost O(V/64).
//
// There is no internal timeout. A caller that needs a bound passes
// WithContext; once the context is done the enumeration stops and the
// largest cliques found so far are returned with Cancelled set.
package clique
