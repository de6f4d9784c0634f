// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Appends n nodes labeled cfg.labelFn(0..n-1).
//   • Emits bonds in stable order i - (i+1)%n for i=0..n-1.
//
// Complexity:
//   • Time: O(n) nodes + O(n) bonds.

package builder

import "github.com/asad/ReactionDecoder-sub000/graph"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-node ring C_n.
func Cycle(n int) Constructor {
	return func(g *graph.Labeled, cfg builderConfig) error {
		if err := validateMin(methodCycle, n, minCycleNodes); err != nil {
			return err
		}

		base := addNodes(g, cfg, n)
		for i := 0; i < n; i++ {
			if err := bond(methodCycle, g, cfg, base+i, base+(i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
