package mcs

import (
	"fmt"

	"github.com/asad/ReactionDecoder-sub000/bfs"
	"github.com/asad/ReactionDecoder-sub000/graph"
)

// Fragments returns the number of connected components of the subgraph of
// g1 induced by the sources of m. A connected common substructure has one
// fragment; fallback results usually have several.
//
// Panics if m references a node outside g1.
// Complexity: O(|m| + Σdeg).
func Fragments(g1 graph.Graph, m Mapping) int {
	parts, err := bfs.Components(g1, m.Sources())
	if err != nil {
		panic(fmt.Sprintf("mcs: Fragments: %v", err))
	}

	return len(parts)
}

// Invert returns m with the roles of the two graphs exchanged, sorted by
// the new Source.
func Invert(m Mapping) Mapping { return m.Invert() }
