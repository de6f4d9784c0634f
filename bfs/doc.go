// Package bfs splits node sets of a graph.Graph into connected pieces by
// breadth-first search.
//
// What
//
//   - Components walks the subgraph induced by a node set and returns
//     its connected components. The mcs package uses it to count the
//     fragments a mapping covers.
//
// Determinism
//
//	graph.Graph returns neighbors in ascending order and the walk enqueues
//	them in that order, so every component lists its members in a
//	reproducible visit sequence.
//
// Complexity (V = listed nodes, E = bonds among them)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	parts, err := bfs.Components(g, []int{0, 1, 4, 5})
//
// Errors
//
//   - ErrGraphNil         if the graph is nil.
//   - ErrNodeOutOfRange   if a listed node is not in the graph.
package bfs
