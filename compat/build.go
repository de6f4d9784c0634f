package compat

import (
	"context"
	"fmt"

	"github.com/asad/ReactionDecoder-sub000/match"
)

// plan is the shared read-only input of one build: the accepted columns
// of every row and the id of each row's first compatibility node.
type plan struct {
	o      *match.Oracle
	rows   [][]int
	offset []int
	total  int
}

// newPlan lists the compatibility nodes of o. With signed=true a pair
// must also have equal neighbor signatures (skipped in query mode).
func newPlan(o *match.Oracle, width int, signed bool) *plan {
	n1, n2 := o.Size1(), o.Size2()
	p := &plan{
		o:      o,
		rows:   make([][]int, n1),
		offset: make([]int, n1+1),
	}

	var sig1, sig2 []string
	if signed && !o.Query() {
		sig1 = signatures(o.Graph1(), n1, width, o.Label1)
		sig2 = signatures(o.Graph2(), n2, width, o.Label2)
	}
	for i := 0; i < n1; i++ {
		p.offset[i] = p.total
		for j := 0; j < n2; j++ {
			if !o.Node(i, j) {
				continue
			}
			if sig1 != nil && sig1[i] != sig2[j] {
				continue
			}
			p.rows[i] = append(p.rows[i], j)
			p.total++
		}
	}
	p.offset[n1] = p.total

	return p
}

// leaf emits the nodes of rows [lo,hi) and every edge whose lower
// endpoint lies in those rows. Edges to later rows are classified
// against the whole plan, so disjoint leaves never emit the same edge.
func (p *plan) leaf(lo, hi int) fragment {
	f := newFragment()
	n1 := len(p.rows)
	for i1 := lo; i1 < hi; i1++ {
		for k1, j1 := range p.rows[i1] {
			a := p.offset[i1] + k1
			f.nodes[a] = Node{Source: i1, Target: j1, ID: a}
			for i2 := i1 + 1; i2 < n1; i2++ {
				for k2, j2 := range p.rows[i2] {
					if j1 == j2 {
						continue
					}
					b := p.offset[i2] + k2
					switch p.o.Relate(i1, j1, i2, j2) {
					case match.Bonded:
						f.c[Edge{A: a, B: b}] = struct{}{}
					case match.Mismatched, match.Unbonded:
						f.d[Edge{A: a, B: b}] = struct{}{}
					}
				}
			}
		}
	}

	return f
}

// Build constructs the compatibility graph on the calling goroutine.
//
// Steps:
//  1. Compute neighbor signatures of both graphs (unless query mode).
//  2. Accept (i,j) when signatures are equal and o.Node(i,j) holds.
//  3. Classify every pair of accepted nodes with distinct indices.
//
// Complexity: O(n1·n2 + V²) time where V is the number of
// compatibility nodes; O(V + E) space.
func Build(o *match.Oracle, opts ...Option) *Graph {
	cfg := newOptions(opts)
	p := newPlan(o, cfg.signatureWidth, true)
	f := p.leaf(0, len(p.rows))

	return f.freeze(Sequential)
}

// BuildParallel constructs the same graph as Build by splitting the rows
// of G1 over a fork/join pool. It returns ctx.Err() when the context is
// cancelled before the join completes.
func BuildParallel(ctx context.Context, o *match.Oracle, opts ...Option) (*Graph, error) {
	const method = "BuildParallel"
	cfg := newOptions(opts)
	p := newPlan(o, cfg.signatureWidth, true)

	fk := newForker(ctx, cfg.workers, cfg.forkThreshold, p.leaf)
	f, err := fk.run(0, len(p.rows))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return f.freeze(Parallel), nil
}

// BuildFallback constructs a reduced graph for large or edge-poor inputs.
// Nodes come from the node predicate alone. A d-edge for an unbonded
// pair is kept only while the running d-edge count is below the node
// count, unless both graphs are smaller than the d-edge cap. The running
// count makes the result order dependent, so this build is sequential.
//
// Complexity: O(n1·n2 + V²) time.
func BuildFallback(o *match.Oracle, opts ...Option) *Graph {
	cfg := newOptions(opts)
	p := newPlan(o, cfg.signatureWidth, false)
	small := o.Size1() < cfg.dEdgeCap && o.Size2() < cfg.dEdgeCap

	nodes := make([]Node, 0, p.total)
	var c, d []Edge
	n1 := len(p.rows)
	for i1 := 0; i1 < n1; i1++ {
		for k1, j1 := range p.rows[i1] {
			a := p.offset[i1] + k1
			nodes = append(nodes, Node{Source: i1, Target: j1, ID: a})
			for i2 := i1 + 1; i2 < n1; i2++ {
				for k2, j2 := range p.rows[i2] {
					if j1 == j2 {
						continue
					}
					b := p.offset[i2] + k2
					switch o.Relate(i1, j1, i2, j2) {
					case match.Bonded:
						c = append(c, Edge{A: a, B: b})
					case match.Mismatched:
						d = append(d, Edge{A: a, B: b})
					case match.Unbonded:
						if small || len(d) < p.total {
							d = append(d, Edge{A: a, B: b})
						}
					}
				}
			}
		}
	}

	return assemble(Fallback, nodes, c, d)
}
