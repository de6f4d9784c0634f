// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Appends n nodes labeled cfg.labelFn(0..n-1).
//   • Emits each unordered pair {i,j} with i<j exactly once, in
//     lexicographic (i,j) order.
//
// Complexity:
//   • Time: O(n) nodes + O(n²) bonds.

package builder

import "github.com/asad/ReactionDecoder-sub000/graph"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *graph.Labeled, cfg builderConfig) error {
		if err := validateMin(methodComplete, n, minCompleteNodes); err != nil {
			return err
		}

		base := addNodes(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := bond(methodComplete, g, cfg, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
