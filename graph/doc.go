// Package graph defines the read-only labeled graph view consumed by the
// maximum common subgraph engine, together with a small thread-safe
// in-memory implementation and the index mapping types shared by every
// stage of the search.
//
// A molecule is modeled as G = (V,E) with dense integer node indices
// 0..n-1, one string label per node (an element symbol, an atom type, a
// query wildcard) and one string label per undirected edge (bond order,
// aromatic flag, query wildcard).
//
// The engine never mutates a Graph. Any type that satisfies the Graph
// interface can be searched, so callers may wrap their own molecule
// containers instead of copying them into a Labeled.
//
// Core surface:
//
//	Graph      - NodeCount, Label, Neighbors, HasEdge, EdgeLabel
//	Query      - optional marker for wildcard query patterns
//	Labeled    - in-memory Graph with AddNode / AddEdge (RWMutex guarded)
//	Pair       - one (Source, Target) correspondence
//	Mapping    - []Pair with sorting, inversion, comparison and hashing
//
// Label lookups return an error so that a collaborator backed by an
// external label service can report a failure. The engine treats such a
// node as incompatible with every other node (fail-closed) instead of
// aborting the search.
//
// Errors:
//
//	ErrNodeOutOfRange  - index outside [0, NodeCount).
//	ErrLoopNotAllowed  - AddEdge(i, i).
//	ErrDuplicateEdge   - a second AddEdge between the same endpoints.
package graph
