// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The hub is the first appended node (label cfg.labelFn(0)); leaves
//     follow with labels cfg.labelFn(1..n-1).
//   - Emits spokes hub - leaf[i] in increasing leaf order.
//
// Complexity:
//   - Time: O(n) nodes + O(n-1) bonds.

package builder

import "github.com/asad/ReactionDecoder-sub000/graph"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with n nodes: one hub and
// n-1 leaves. A methane-like fixture is Star(5) with labels C,H,H,H,H.
func Star(n int) Constructor {
	return func(g *graph.Labeled, cfg builderConfig) error {
		if err := validateMin(methodStar, n, minStarNodes); err != nil {
			return err
		}

		hub := addNodes(g, cfg, n)
		for i := 1; i < n; i++ {
			if err := bond(methodStar, g, cfg, hub, hub+i); err != nil {
				return err
			}
		}

		return nil
	}
}
