// Package mcs computes maximum common subgraph correspondences between two
// labeled graphs.
//
// Search runs a fixed pipeline:
//
//	BuildGraph → ZeroEdgeCheck → EnumerateCliques → ExtendMappings → Done
//
//   - BuildGraph picks a construction strategy from the graph sizes:
//     both graphs above LargeGraphLimit use the fallback build, a smaller
//     graph of at most SequentialLimit nodes uses the sequential build,
//     and everything else is built in parallel.
//   - ZeroEdgeCheck discards a graph without c-edges and rebuilds it with
//     the fallback strategy, which still finds disconnected node sets.
//   - EnumerateCliques finds every maximum clique.
//   - ExtendMappings grows each clique with bounded backtracking. All
//     cliques share one budget of BudgetFactor × (|G1| + |G2|) attempts.
//   - Done keeps mappings of the largest size, drops exact duplicates and
//     sorts them lexicographically over (Source, Target) pairs.
//
// Empty inputs and inputs without compatible pairs yield an empty result.
// Budget exhaustion and context cancellation are not errors: the result
// carries the best mappings found with TimedOut set. Cancellation during
// clique enumeration keeps the largest cliques seen so far and extends
// them. WithTimeout fixes one deadline at the Search call that bounds the
// parallel build, clique enumeration and extension alike.
//
// When either graph implements graph.Query, wildcard predicates are bound
// (unless the caller supplied predicates) and the query keeps its role
// during extension.
//
// Each Search emits an OpenTelemetry span and metrics, and logs its stages
// at debug level through the logger given by WithLogger.
package mcs
