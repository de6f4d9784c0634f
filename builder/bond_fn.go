// Package builder provides internal helper functions and types
// for configuring bond labels in graph constructors.
package builder

import "math/rand"

// DefaultBond is the bond label used when no BondFn is configured.
const DefaultBond = "1"

// BondFn produces a bond label given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type BondFn func(rng *rand.Rand) string

// DefaultBondFn always returns DefaultBond.
func DefaultBondFn(_ *rand.Rand) string { return DefaultBond }

// ConstantBondFn returns a BondFn that always yields label.
func ConstantBondFn(label string) BondFn {
	return func(_ *rand.Rand) string { return label }
}

// ChoiceBondFn picks uniformly among labels. With a nil rng it yields
// labels[0] to keep a deterministic fallback. Panics if labels is empty.
func ChoiceBondFn(labels ...string) BondFn {
	if len(labels) == 0 {
		panic("ChoiceBondFn: at least one label is required")
	}
	own := append([]string(nil), labels...)
	return func(rng *rand.Rand) string {
		if rng == nil {
			return own[0]
		}
		return own[rng.Intn(len(own))]
	}
}
