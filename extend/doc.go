// Package extend grows a partial node mapping into maximal mappings by
// bounded backtracking.
//
// The engine walks the rows of one graph (the larger one unless the
// direction is fixed) and, for each row, tries every free column of the
// other graph that the node predicate accepts and that is consistent
// with the pairs already mapped, then the choice of leaving the row
// unmapped. Two pairs are consistent unless exactly one graph bonds
// them, which is the adjacency relation of the compatibility graph, so
// any clique is a valid seed.
//
// Rows adjacent to mapped rows are explored first, and within a row the
// columns whose bond labels match a mapped neighbor come first. The
// search is pruned by
//
//	size + min(open rows with a free candidate, free columns with an open candidate)
//
// and by a shared budget.Budget consulted before every assignment. The
// frame stack is explicit (github.com/emirpasic/gods arraystack), so deep
// searches never grow the goroutine stack.
package extend
