// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • labelFn = ConstantLabelFn("C")
//   • bondFn  = DefaultBondFn ("1")
//   • rng     = nil (pure/deterministic unless seeded)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Node label strategy: local index -> label.
	labelFn LabelFn
	// Bond label generator.
	bondFn BondFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
}

const defaultLabel = "C"

// newBuilderConfig applies options in order over the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		labelFn: ConstantLabelFn(defaultLabel),
		bondFn:  DefaultBondFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
