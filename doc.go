// Package reactiondecoder is an in-memory engine for maximum common
// subgraph (MCS) search between labeled molecular graphs, the atom-mapping
// core of a reaction decoder.
//
// What is inside?
//
//	A thread-safe library that brings together:
//		• Labeled graphs: atoms as labeled nodes, bonds as labeled edges
//		• Match predicates: exact, wildcard and topology-only labels
//		• Compatibility graphs: sequential, fork/join parallel and fallback builds
//		• Maximum clique enumeration: Bron–Kerbosch with pivoting over bitsets
//		• Bounded extension: budgeted backtracking that grows clique seeds
//		• Orchestration: mcs.Search with tracing, metrics and logging
//
// Under the hood, packages are organized as:
//
//	graph/     — Graph interface, Labeled graph, Pair and Mapping
//	match/     — node/edge predicates and the per-search Oracle
//	compat/    — compatibility graph construction
//	clique/    — maximum clique enumeration
//	extend/    — bounded backtracking extension
//	budget/    — attempt counters with soft deadlines
//	bfs/       — breadth-first search and induced components
//	builder/   — deterministic labeled fixtures (paths, rings, stars…)
//	config/    — TOML thresholds
//	mcs/       — the Search pipeline
//	cmd/mcs    — command-line front end over YAML graph files
//
// Quick ASCII example:
//
//	    C───C═O          C───C═O
//	        │      vs.       │
//	        O                N
//
//	acetic acid and acetamide share the C-C=O core (size 3).
//
//	res, err := mcs.Search(ctx, acid, amide)
package reactiondecoder
