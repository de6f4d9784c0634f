// Package builder provides internal helper functions and types
// for configuring node label schemes in graph constructors.
package builder

import "fmt"

// LabelFn generates a node label from its zero-based index within one
// constructor call. It must be pure and deterministic.
type LabelFn func(idx int) string

// ConstantLabelFn labels every node with label.
// Complexity: O(1).
func ConstantLabelFn(label string) LabelFn {
	return func(int) string { return label }
}

// CycleLabelFn repeats labels in order: idx → labels[idx % len(labels)].
// Panics if labels is empty.
func CycleLabelFn(labels ...string) LabelFn {
	if len(labels) == 0 {
		panic("CycleLabelFn: at least one label is required")
	}
	own := append([]string(nil), labels...)
	return func(idx int) string { return own[idx%len(own)] }
}

// SymbolLabelFn returns the uppercase Latin letter for idx in [0..25],
// e.g. 0→"A", 25→"Z". Useful for fixtures where every node is distinct.
// Panics if idx < 0 or idx > 25.
func SymbolLabelFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolLabelFn: idx must be in [0,25], got %d", idx))
	}
	return string('A' + rune(idx))
}
