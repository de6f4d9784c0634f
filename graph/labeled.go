package graph

import (
	"fmt"
	"sort"
	"sync"
)

// Option configures a Labeled graph before creation.
type Option func(g *Labeled)

// AsQuery marks the graph as a wildcard query pattern.
func AsQuery() Option {
	return func(g *Labeled) { g.query = true }
}

// WithName attaches a human-readable name used in logs and CLI output.
func WithName(name string) Option {
	return func(g *Labeled) { g.name = name }
}

// Labeled is an in-memory Graph.
//
// Nodes are appended with AddNode and never removed, so indices are stable.
// Edges are undirected, unique per endpoint pair and never loops.
// mu guards labels and adjacency; readers take the read lock.
type Labeled struct {
	mu sync.RWMutex

	name  string
	query bool

	labels []string
	// adj[i][j] = label of edge {i,j}; mirrored in adj[j][i].
	adj []map[int]string
}

// New creates an empty Labeled graph.
// Complexity: O(1)
func New(opts ...Option) *Labeled {
	g := &Labeled{}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// FromLabels creates a graph with one node per label and no edges.
func FromLabels(labels []string, opts ...Option) *Labeled {
	g := New(opts...)
	for _, l := range labels {
		g.AddNode(l)
	}

	return g
}

// Name returns the graph name given by WithName.
func (g *Labeled) Name() string { return g.name }

// IsQuery implements Query.
func (g *Labeled) IsQuery() bool { return g.query }

// AddNode appends a node and returns its index.
// Complexity: O(1) amortized.
func (g *Labeled) AddNode(label string) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.labels = append(g.labels, label)
	g.adj = append(g.adj, make(map[int]string))

	return len(g.labels) - 1
}

// AddEdge connects i and j with the given edge label.
//
// Errors: ErrNodeOutOfRange, ErrLoopNotAllowed, ErrDuplicateEdge.
// Complexity: O(1).
func (g *Labeled) AddEdge(i, j int, label string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.labels)
	if i < 0 || i >= n || j < 0 || j >= n {
		return fmt.Errorf("AddEdge(%d,%d) on %d nodes: %w", i, j, n, ErrNodeOutOfRange)
	}
	if i == j {
		return fmt.Errorf("AddEdge(%d,%d): %w", i, j, ErrLoopNotAllowed)
	}
	if _, ok := g.adj[i][j]; ok {
		return fmt.Errorf("AddEdge(%d,%d): %w", i, j, ErrDuplicateEdge)
	}
	g.adj[i][j] = label
	g.adj[j][i] = label

	return nil
}

// NodeCount implements Graph.
func (g *Labeled) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.labels)
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(V).
func (g *Labeled) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0
	for _, nb := range g.adj {
		total += len(nb)
	}

	return total / 2
}

// Label implements Graph.
func (g *Labeled) Label(i int) (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if i < 0 || i >= len(g.labels) {
		return "", fmt.Errorf("Label(%d): %w", i, ErrNodeOutOfRange)
	}

	return g.labels[i], nil
}

// Neighbors implements Graph. The result is a fresh ascending slice;
// an out-of-range index yields nil.
// Complexity: O(d log d).
func (g *Labeled) Neighbors(i int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if i < 0 || i >= len(g.adj) {
		return nil
	}
	out := make([]int, 0, len(g.adj[i]))
	for j := range g.adj[i] {
		out = append(out, j)
	}
	sort.Ints(out)

	return out
}

// Degree returns the number of neighbors of i (0 when out of range).
func (g *Labeled) Degree(i int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if i < 0 || i >= len(g.adj) {
		return 0
	}

	return len(g.adj[i])
}

// HasEdge implements Graph.
func (g *Labeled) HasEdge(i, j int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if i < 0 || i >= len(g.adj) {
		return false
	}
	_, ok := g.adj[i][j]

	return ok
}

// EdgeLabel implements Graph.
func (g *Labeled) EdgeLabel(i, j int) string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if i < 0 || i >= len(g.adj) {
		return ""
	}

	return g.adj[i][j]
}
