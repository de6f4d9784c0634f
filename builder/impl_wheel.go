// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_wheel.go — implementation of Wheel(n) constructor.
//
// Canonical definition:
//   • Wₙ = Cₙ₋₁ + hub, i.e., a ring of size (n-1) plus a hub node.
//   • Therefore, n ≥ 4 (since the ring must be a valid cycle: n-1 ≥ 3).
//
// Contract:
//   • Builds the ring using Cycle(n-1) with the same cfg semantics.
//   • Appends the hub last with label cfg.labelFn(n-1).
//   • Emits spokes hub - ring[i] in increasing ring order.

package builder

import (
	"fmt"

	"github.com/asad/ReactionDecoder-sub000/graph"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4 // because the ring has size (n-1) which must be ≥ 3
)

// Wheel returns a Constructor that builds a wheel Wₙ = Cₙ₋₁ + hub.
func Wheel(n int) Constructor {
	return func(g *graph.Labeled, cfg builderConfig) error {
		if err := validateMin(methodWheel, n, minWheelNodes); err != nil {
			return err
		}

		base := g.NodeCount()
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}

		hub := g.AddNode(cfg.labelFn(n - 1))
		for i := 0; i < n-1; i++ {
			if err := bond(methodWheel, g, cfg, hub, base+i); err != nil {
				return err
			}
		}

		return nil
	}
}
