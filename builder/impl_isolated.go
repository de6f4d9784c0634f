// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_isolated.go — implementation of Isolated(labels...) constructor.
//
// Contract:
//   • At least one label (else ErrTooFewVertices).
//   • Appends one unbonded node per label, in argument order. The
//     configured label scheme is ignored.

package builder

import "github.com/asad/ReactionDecoder-sub000/graph"

const methodIsolated = "Isolated"

// Isolated returns a Constructor that appends unbonded nodes with the
// given labels, e.g. counter-ions or lone heteroatoms.
func Isolated(labels ...string) Constructor {
	own := append([]string(nil), labels...)
	return func(g *graph.Labeled, _ builderConfig) error {
		if err := validateMin(methodIsolated, len(own), 1); err != nil {
			return err
		}
		for _, l := range own {
			g.AddNode(l)
		}

		return nil
	}
}
