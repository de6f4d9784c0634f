// SPDX-License-Identifier: MIT
// Package: builder
//
// validators.go - parameter checks shared by constructors. Each returns an
// error wrapping the matching sentinel so callers can use errors.Is.

package builder

import "fmt"

// validateMin ensures got ≥ min.
// Complexity: O(1).
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewVertices)
	}
	return nil
}

// validateProbability enforces p ∈ [0,1].
func validateProbability(method string, p float64) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", method, p, ErrInvalidProbability)
	}
	return nil
}
