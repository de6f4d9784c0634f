// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator over unordered pairs {i,j}, i<j: each bond
//     is included independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Node labels come from cfg.labelFn; bond labels from cfg.bondFn(cfg.rng).
//
// Complexity:
//   - Time: O(n) nodes + O(n²) Bernoulli trials.
//
// Determinism:
//   - Stable trial order: for each i asc, j asc (j>i). Fixed seed ⇒ fixed graph.

package builder

import (
	"fmt"

	"github.com/asad/ReactionDecoder-sub000/graph"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse returns a Constructor that samples a random labeled graph
// over n nodes with independent bond probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *graph.Labeled, cfg builderConfig) error {
		if err := validateMin(methodRandomSparse, n, minRandomSparseVertices); err != nil {
			return err
		}
		if err := validateProbability(methodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		base := addNodes(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				// p ∈ {0,1} is deterministic without an rng.
				include := p == 1
				if cfg.rng != nil && p > 0 && p < 1 {
					include = cfg.rng.Float64() < p
				}
				if !include {
					continue
				}
				if err := bond(methodRandomSparse, g, cfg, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
