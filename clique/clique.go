package clique

import (
	"context"
	"fmt"
	"sort"

	"github.com/bits-and-blooms/bitset"

	"github.com/asad/ReactionDecoder-sub000/compat"
)

// Clique is a set of compatibility node ids in ascending order.
type Clique []int

// Compare orders cliques lexicographically; a proper prefix sorts first.
func (c Clique) Compare(o Clique) int {
	for k := 0; k < len(c) && k < len(o); k++ {
		if c[k] != o[k] {
			if c[k] < o[k] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(c) < len(o):
		return -1
	case len(c) > len(o):
		return 1
	}

	return 0
}

// Result holds every maximum clique found.
type Result struct {
	// Cliques of size Size, sorted lexicographically.
	Cliques []Clique
	// Size of the largest clique; 0 for an empty graph.
	Size int
	// Calls counts expand invocations.
	Calls int
	// Cancelled is true when ctx ended the enumeration early. Cliques
	// then holds the largest cliques found so far.
	Cancelled bool
}

// Option configures Maximum.
type Option func(*options)

type options struct {
	limit int
	ctx   context.Context
}

// pollMask makes the engine check ctx once every 1024 expand calls.
const pollMask = 1023

// WithLimit keeps at most n maximum cliques (0 keeps all). Cliques are
// retained in discovery order, then sorted. Panics if n < 0.
func WithLimit(n int) Option {
	if n < 0 {
		panic("clique: WithLimit(n<0)")
	}
	return func(o *options) { o.limit = n }
}

// WithContext stops the enumeration once ctx is done. A nil ctx is
// ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// engine holds the mutable state of one enumeration.
type engine struct {
	ctx   context.Context
	adj   []*bitset.BitSet
	r     []int
	best  int
	found []Clique
	limit int
	calls int

	stopped bool
}

// Maximum returns all cliques of maximum size in g. When the context
// given by WithContext is done, it returns the largest cliques found so
// far with Cancelled set.
//
// Complexity: O(3^{V/3}) worst case; far less in practice thanks to
// pivoting and the size bound. Panics when an edge references a node id
// outside [0, g.Len()).
func Maximum(g *compat.Graph, opts ...Option) Result {
	cfg := options{ctx: context.Background()}
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(g.Nodes)
	if n == 0 {
		return Result{}
	}

	e := &engine{
		ctx:   cfg.ctx,
		adj:   adjacency(n, g.CEdges, g.DEdges),
		limit: cfg.limit,
	}
	p := bitset.New(uint(n))
	for v := 0; v < n; v++ {
		p.Set(uint(v))
	}
	e.expand(p, bitset.New(uint(n)))

	sort.Slice(e.found, func(a, b int) bool { return e.found[a].Compare(e.found[b]) < 0 })

	return Result{Cliques: e.found, Size: e.best, Calls: e.calls, Cancelled: e.stopped}
}

func adjacency(n int, edgeSets ...[]compat.Edge) []*bitset.BitSet {
	adj := make([]*bitset.BitSet, n)
	for v := range adj {
		adj[v] = bitset.New(uint(n))
	}
	for _, es := range edgeSets {
		for _, ed := range es {
			if ed.A < 0 || ed.B < 0 || ed.A >= n || ed.B >= n || ed.A == ed.B {
				panic(fmt.Sprintf("clique: edge %v references a node outside [0,%d)", ed, n))
			}
			adj[ed.A].Set(uint(ed.B))
			adj[ed.B].Set(uint(ed.A))
		}
	}

	return adj
}

// expand owns p and x and may mutate them.
func (e *engine) expand(p, x *bitset.BitSet) {
	if e.calls&pollMask == 0 && e.ctx.Err() != nil {
		e.stopped = true
	}
	if e.stopped {
		return
	}
	e.calls++
	if p.None() {
		if x.None() {
			e.record()
		}
		return
	}
	if len(e.r)+int(p.Count()) < e.best {
		return
	}

	u := e.pivot(p, x)
	cand := p.Difference(e.adj[u])
	for v, ok := cand.NextSet(0); ok; v, ok = cand.NextSet(v + 1) {
		if len(e.r)+int(p.Count()) < e.best {
			return
		}
		e.r = append(e.r, int(v))
		e.expand(p.Intersection(e.adj[v]), x.Intersection(e.adj[v]))
		e.r = e.r[:len(e.r)-1]
		if e.stopped {
			return
		}
		p.Clear(v)
		x.Set(v)
	}
}

// pivot picks the vertex of P ∪ X with the most neighbors in P; ties go
// to the lowest id.
func (e *engine) pivot(p, x *bitset.BitSet) uint {
	px := p.Union(x)
	var (
		best    uint
		bestCnt = -1
	)
	for u, ok := px.NextSet(0); ok; u, ok = px.NextSet(u + 1) {
		if c := int(p.IntersectionCardinality(e.adj[u])); c > bestCnt {
			best, bestCnt = u, c
		}
	}

	return best
}

func (e *engine) record() {
	size := len(e.r)
	switch {
	case size > e.best:
		e.best = size
		e.found = e.found[:0]
	case size < e.best:
		return
	}
	if e.limit > 0 && len(e.found) >= e.limit {
		return
	}
	c := make(Clique, size)
	copy(c, e.r)
	sort.Ints(c)
	e.found = append(e.found, c)
}
