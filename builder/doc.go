// SPDX-License-Identifier: MIT
// Package: builder
//
// Package builder assembles deterministic labeled-graph fixtures for the
// MCS engine: paths, cycles, stars, wheels, complete graphs, isolated atoms
// and seeded random sparse graphs, all composable through one entry point.
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithLabelFn(builder.CycleLabelFn("C", "C", "O"))},
//	    builder.Cycle(6),
//	    builder.Isolated("N", "S"),
//	)
//
// Components:
//
//   - Constructor: a closure that appends nodes and bonds to a
//     *graph.Labeled. Every constructor appends after the nodes already
//     present, so composition never renumbers earlier fixtures.
//   - BuilderOption: functional options resolved into an immutable
//     builderConfig (label scheme, bond scheme, RNG).
//   - LabelFn schemes: ConstantLabelFn, CycleLabelFn, SymbolLabelFn.
//   - BondFn schemes: DefaultBondFn ("1"), ConstantBondFn, ChoiceBondFn.
//
// Guarantees:
//
//   - Determinism: equal options, seed and constructor order produce
//     identical graphs.
//   - Option constructors panic on meaningless input; constructors return
//     sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) and never panic.
package builder
