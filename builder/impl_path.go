// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Appends n nodes labeled cfg.labelFn(0..n-1).
//   - Emits bonds (i-1)-i for i=1..n-1 in increasing order.
//
// Complexity:
//   - Time: O(n) nodes + O(n-1) bonds.

package builder

import "github.com/asad/ReactionDecoder-sub000/graph"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *graph.Labeled, cfg builderConfig) error {
		if err := validateMin(methodPath, n, minPathNodes); err != nil {
			return err
		}

		base := addNodes(g, cfg, n)
		for i := 1; i < n; i++ {
			if err := bond(methodPath, g, cfg, base+i-1, base+i); err != nil {
				return err
			}
		}

		return nil
	}
}
