// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - public entry point of the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Topology factories live in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/asad/ReactionDecoder-sub000/graph"
)

// Constructor appends a deterministic fixture to g using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters before touching g and return sentinel errors.
//   - Number their nodes after the nodes already in g.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *graph.Labeled, cfg builderConfig) error

// BuildGraph creates a *graph.Labeled with graph options gopts, resolves
// the builder configuration from bopts, and applies all constructors in
// order. Any constructor error is wrapped as "BuildGraph: %w" and returned
// immediately; no partial cleanup is attempted.
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildGraph(gopts []graph.Option, bopts []BuilderOption, cons ...Constructor) (*graph.Labeled, error) {
	g := graph.New(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs constructors against an existing graph with freshly resolved
// options. It is the in-place counterpart of BuildGraph.
func Apply(g *graph.Labeled, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// addNodes appends n nodes labeled cfg.labelFn(0..n-1) and returns the
// index of the first one.
func addNodes(g *graph.Labeled, cfg builderConfig, n int) int {
	base := g.NodeCount()
	for i := 0; i < n; i++ {
		g.AddNode(cfg.labelFn(i))
	}

	return base
}

// bond adds the edge {u,v} labeled by cfg.bondFn.
func bond(method string, g *graph.Labeled, cfg builderConfig, u, v int) error {
	l := cfg.bondFn(cfg.rng)
	if err := g.AddEdge(u, v, l); err != nil {
		return fmt.Errorf("%s: AddEdge(%d-%d, %q): %w", method, u, v, l, err)
	}

	return nil
}
