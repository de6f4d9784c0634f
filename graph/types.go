package graph

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Sentinel errors for labeled graph operations.
var (
	// ErrNodeOutOfRange indicates an index outside [0, NodeCount).
	ErrNodeOutOfRange = errors.New("graph: node index out of range")

	// ErrLoopNotAllowed indicates an edge from a node to itself.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")

	// ErrDuplicateEdge indicates a second edge between the same endpoints.
	ErrDuplicateEdge = errors.New("graph: duplicate edge")
)

// Graph is the read-only view of a labeled, undirected, simple graph.
//
// Implementations must be safe for concurrent readers: the parallel
// compatibility builder queries both inputs from several goroutines.
type Graph interface {
	// NodeCount returns the number of nodes; indices are 0..NodeCount()-1.
	NodeCount() int

	// Label returns the label of node i. A non-nil error marks a failed
	// lookup; the node is then treated as incompatible with everything.
	Label(i int) (string, error)

	// Neighbors returns the nodes adjacent to i in ascending order.
	Neighbors(i int) []int

	// HasEdge reports whether i and j are adjacent.
	HasEdge(i, j int) bool

	// EdgeLabel returns the label of the edge {i,j}, or "" when absent.
	EdgeLabel(i, j int) string
}

// Query marks a wildcard query pattern. Graphs that do not implement it
// are ordinary target graphs.
type Query interface {
	IsQuery() bool
}

// IsQuery reports whether g declares itself a wildcard query pattern.
func IsQuery(g Graph) bool {
	q, ok := g.(Query)
	return ok && q.IsQuery()
}

// Pair is one correspondence between a node of the first graph (Source)
// and a node of the second graph (Target).
type Pair struct {
	Source int
	Target int
}

// String renders the pair as "s:t".
func (p Pair) String() string { return fmt.Sprintf("%d:%d", p.Source, p.Target) }

// Mapping is a partial bijection between the nodes of two graphs.
// Mappings produced by the engine are sorted by Source.
type Mapping []Pair

// Sorted returns a copy of m ordered by (Source, Target).
func (m Mapping) Sorted() Mapping {
	out := make(Mapping, len(m))
	copy(out, m)
	sort.Slice(out, func(a, b int) bool {
		if out[a].Source != out[b].Source {
			return out[a].Source < out[b].Source
		}
		return out[a].Target < out[b].Target
	})

	return out
}

// Invert swaps Source and Target of every pair and re-sorts the result.
func (m Mapping) Invert() Mapping {
	out := make(Mapping, len(m))
	for i, p := range m {
		out[i] = Pair{Source: p.Target, Target: p.Source}
	}

	return out.Sorted()
}

// Compare orders mappings lexicographically over their pairs; a proper
// prefix sorts first. It returns -1, 0 or +1.
func (m Mapping) Compare(o Mapping) int {
	n := len(m)
	if len(o) < n {
		n = len(o)
	}
	for i := 0; i < n; i++ {
		switch {
		case m[i].Source < o[i].Source:
			return -1
		case m[i].Source > o[i].Source:
			return 1
		case m[i].Target < o[i].Target:
			return -1
		case m[i].Target > o[i].Target:
			return 1
		}
	}
	switch {
	case len(m) < len(o):
		return -1
	case len(m) > len(o):
		return 1
	}

	return 0
}

// Equal reports pairwise equality.
func (m Mapping) Equal(o Mapping) bool { return m.Compare(o) == 0 }

// Hash returns an order-sensitive 64-bit digest of the pairs. Callers
// that deduplicate by hash must confirm with Equal.
func (m Mapping) Hash() uint64 {
	d := xxhash.New()
	var buf [16]byte
	for _, p := range m {
		binary.LittleEndian.PutUint64(buf[:8], uint64(p.Source))
		binary.LittleEndian.PutUint64(buf[8:], uint64(p.Target))
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}

// Sources returns the source indices in mapping order.
func (m Mapping) Sources() []int {
	out := make([]int, len(m))
	for i, p := range m {
		out[i] = p.Source
	}

	return out
}

// String renders the mapping as "{s:t s:t ...}".
func (m Mapping) String() string {
	parts := make([]string, len(m))
	for i, p := range m {
		parts[i] = p.String()
	}

	return "{" + strings.Join(parts, " ") + "}"
}
