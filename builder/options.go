// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a constructor by mutating a builderConfig
// before graph construction begins.
type BuilderOption func(*builderConfig)

// WithLabelFn sets the node label scheme. Panics on nil.
func WithLabelFn(fn LabelFn) BuilderOption {
	if fn == nil {
		panic("builder: WithLabelFn(nil)")
	}
	return func(c *builderConfig) { c.labelFn = fn }
}

// WithLabels is shorthand for WithLabelFn(CycleLabelFn(labels...)).
func WithLabels(labels ...string) BuilderOption {
	return WithLabelFn(CycleLabelFn(labels...))
}

// WithBondFn sets the bond label generator. Panics on nil.
func WithBondFn(fn BondFn) BuilderOption {
	if fn == nil {
		panic("builder: WithBondFn(nil)")
	}
	return func(c *builderConfig) { c.bondFn = fn }
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		// Seeded source → reproducible draws.
		c.rng = rand.New(rand.NewSource(seed))
	}
}
