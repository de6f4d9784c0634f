package compat

import (
	"errors"
	"fmt"
	"sort"

	"github.com/asad/ReactionDecoder-sub000/graph"
	"github.com/asad/ReactionDecoder-sub000/match"
)

// ErrInvalidGraph is returned by Validate when an invariant is broken.
var ErrInvalidGraph = errors.New("compat: invalid compatibility graph")

// Strategy identifies the construction path that produced a Graph.
type Strategy uint8

const (
	// Sequential is the signature-bucketed single-goroutine build.
	Sequential Strategy = iota
	// Parallel is the signature-bucketed fork/join build.
	Parallel
	// Fallback is the large-graph build without signatures.
	Fallback
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case Sequential:
		return "sequential"
	case Parallel:
		return "parallel"
	case Fallback:
		return "fallback"
	default:
		return fmt.Sprintf("strategy(%d)", uint8(s))
	}
}

// Node is a candidate pair (Source in G1, Target in G2) with a dense id.
type Node struct {
	Source int
	Target int
	ID     int
}

// Edge joins two compatibility nodes; A < B always.
type Edge struct {
	A int
	B int
}

func newEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// Stats summarises the size of a compatibility graph.
type Stats struct {
	Strategy Strategy
	Nodes    int
	CEdges   int
	DEdges   int
}

// Graph is an immutable compatibility graph.
type Graph struct {
	// Nodes sorted by ID; Nodes[k].ID == k.
	Nodes []Node
	// CEdges and DEdges sorted by (A, B).
	CEdges []Edge
	DEdges []Edge

	strategy Strategy
	index    map[graph.Pair]int
	edges    map[Edge]struct{}
}

// assemble freezes sorted slices into a Graph and builds lookup indexes.
// Duplicate (Source, Target) keys or ids that do not match their slot are
// programming defects and panic.
func assemble(s Strategy, nodes []Node, c, d []Edge) *Graph {
	sort.Slice(nodes, func(a, b int) bool { return nodes[a].ID < nodes[b].ID })
	sortEdges(c)
	sortEdges(d)

	g := &Graph{
		Nodes:    nodes,
		CEdges:   c,
		DEdges:   d,
		strategy: s,
		index:    make(map[graph.Pair]int, len(nodes)),
		edges:    make(map[Edge]struct{}, len(c)+len(d)),
	}
	for k, n := range nodes {
		if n.ID != k {
			panic(fmt.Sprintf("compat: node id %d stored at slot %d", n.ID, k))
		}
		key := graph.Pair{Source: n.Source, Target: n.Target}
		if _, dup := g.index[key]; dup {
			panic(fmt.Sprintf("compat: duplicate compatibility node %v", key))
		}
		g.index[key] = n.ID
	}
	for _, e := range c {
		g.edges[e] = struct{}{}
	}
	for _, e := range d {
		g.edges[e] = struct{}{}
	}

	return g
}

func sortEdges(es []Edge) {
	sort.Slice(es, func(a, b int) bool {
		if es[a].A != es[b].A {
			return es[a].A < es[b].A
		}
		return es[a].B < es[b].B
	})
}

// Strategy returns the construction path used.
func (g *Graph) Strategy() Strategy { return g.strategy }

// Len returns the number of compatibility nodes.
func (g *Graph) Len() int { return len(g.Nodes) }

// ID returns the id of the compatibility node (s, t).
func (g *Graph) ID(s, t int) (int, bool) {
	id, ok := g.index[graph.Pair{Source: s, Target: t}]
	return id, ok
}

// Adjacent reports whether a c-edge or d-edge joins a and b.
func (g *Graph) Adjacent(a, b int) bool {
	_, ok := g.edges[newEdge(a, b)]
	return ok
}

// Mapping converts a set of compatibility node ids into a sorted mapping.
// Panics on an id outside [0, Len()).
func (g *Graph) Mapping(ids []int) graph.Mapping {
	m := make(graph.Mapping, len(ids))
	for k, id := range ids {
		if id < 0 || id >= len(g.Nodes) {
			panic(fmt.Sprintf("compat: compatibility node id %d out of range [0,%d)", id, len(g.Nodes)))
		}
		n := g.Nodes[id]
		m[k] = graph.Pair{Source: n.Source, Target: n.Target}
	}

	return m.Sorted()
}

// Stats returns node and edge counts.
func (g *Graph) Stats() Stats {
	return Stats{
		Strategy: g.strategy,
		Nodes:    len(g.Nodes),
		CEdges:   len(g.CEdges),
		DEdges:   len(g.DEdges),
	}
}

// Validate checks every node and edge against the oracle that built g.
// Edges must connect distinct sources and distinct targets, and their
// kind must agree with o.Relate. Fallback graphs may omit d-edges for
// unbonded pairs, so only emitted edges are checked for them.
func (g *Graph) Validate(o *match.Oracle) error {
	const method = "Validate"
	for _, n := range g.Nodes {
		if !o.Node(n.Source, n.Target) {
			return fmt.Errorf("%s: node %d (%d,%d) rejected by predicate: %w",
				method, n.ID, n.Source, n.Target, ErrInvalidGraph)
		}
	}

	check := func(e Edge, kind string) error {
		if e.A >= e.B || e.A < 0 || e.B >= len(g.Nodes) {
			return fmt.Errorf("%s: %s-edge %v malformed: %w", method, kind, e, ErrInvalidGraph)
		}
		a, b := g.Nodes[e.A], g.Nodes[e.B]
		if a.Source == b.Source || a.Target == b.Target {
			return fmt.Errorf("%s: %s-edge %v shares an index: %w", method, kind, e, ErrInvalidGraph)
		}
		rel := o.Relate(a.Source, a.Target, b.Source, b.Target)
		switch {
		case kind == "c" && rel != match.Bonded,
			kind == "d" && rel != match.Mismatched && rel != match.Unbonded:
			return fmt.Errorf("%s: %s-edge %v classified %s: %w", method, kind, e, rel, ErrInvalidGraph)
		}
		return nil
	}
	for _, e := range g.CEdges {
		if err := check(e, "c"); err != nil {
			return err
		}
	}
	for _, e := range g.DEdges {
		if err := check(e, "d"); err != nil {
			return err
		}
	}

	return nil
}
