package extend

import (
	"context"
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/asad/ReactionDecoder-sub000/budget"
	"github.com/asad/ReactionDecoder-sub000/graph"
	"github.com/asad/ReactionDecoder-sub000/match"
)

// DefaultMaxResults bounds the distinct best mappings kept per seed.
const DefaultMaxResults = 8

// pollMask makes the engine check ctx once every 1024 attempts.
const pollMask = 1023

// unmapped marks a free row or column, and the "leave unmapped" choice.
const unmapped = -1

// Result is the outcome of one extension.
type Result struct {
	// Mappings of the best size reached, in (G1, G2) orientation,
	// in discovery order. The seed is always the first candidate.
	Mappings []graph.Mapping
	// TimedOut is true when the budget was exhausted or ctx cancelled.
	TimedOut bool
	// Attempts consumed by this call.
	Attempts int
}

// Option configures Extend.
type Option func(*options)

type options struct {
	maxResults int
	fixed      bool
}

// WithMaxResults keeps at most n distinct mappings. Panics if n < 1.
func WithMaxResults(n int) Option {
	if n < 1 {
		panic("extend: WithMaxResults(n<1)")
	}
	return func(o *options) { o.maxResults = n }
}

// WithFixedDirection always walks the rows of G1. Query searches use it
// so the pattern keeps its role.
func WithFixedDirection() Option {
	return func(o *options) { o.fixed = true }
}

// Extend grows seed within the budget b.
//
// When G2 has more nodes than G1 (and the direction is not fixed) the
// engine runs on o.Transpose() with the inverted seed, and inverts its
// mappings back. Cancellation of ctx is treated like budget exhaustion:
// the best mappings so far are returned with TimedOut set.
//
// Panics if seed references indices outside the graphs or maps a node
// twice.
func Extend(ctx context.Context, seed graph.Mapping, o *match.Oracle, b *budget.Budget, opts ...Option) Result {
	cfg := options{maxResults: DefaultMaxResults}
	for _, opt := range opts {
		opt(&cfg)
	}

	swapped := !cfg.fixed && o.Size2() > o.Size1()
	if swapped {
		o = o.Transpose()
		seed = seed.Invert()
	}

	e := newEngine(ctx, o, b, cfg.maxResults)
	e.seed(seed)
	e.record()
	e.search()

	out := e.results
	if swapped {
		for k, m := range out {
			out[k] = m.Invert()
		}
	}

	return Result{Mappings: out, TimedOut: b.TimedOut(), Attempts: e.attempts}
}

// frame is one row decision on the explicit stack.
type frame struct {
	row     int
	cands   []int
	next    int
	col     int
	applied bool
}

type engine struct {
	ctx context.Context
	o   *match.Oracle
	b   *budget.Budget

	n1, n2    int
	rowCompat [][]int
	colCompat [][]int

	colOf   []int
	rowOf   []int
	decided []bool
	size    int

	best    int
	limit   int
	results []graph.Mapping
	seen    map[uint64][]int

	attempts int
	stopped  bool
}

func newEngine(ctx context.Context, o *match.Oracle, b *budget.Budget, limit int) *engine {
	n1, n2 := o.Size1(), o.Size2()
	e := &engine{
		ctx:       ctx,
		o:         o,
		b:         b,
		n1:        n1,
		n2:        n2,
		rowCompat: make([][]int, n1),
		colCompat: make([][]int, n2),
		colOf:     make([]int, n1),
		rowOf:     make([]int, n2),
		decided:   make([]bool, n1),
		limit:     limit,
		seen:      make(map[uint64][]int),
	}
	for r := 0; r < n1; r++ {
		e.colOf[r] = unmapped
		for c := 0; c < n2; c++ {
			if o.Node(r, c) {
				e.rowCompat[r] = append(e.rowCompat[r], c)
				e.colCompat[c] = append(e.colCompat[c], r)
			}
		}
	}
	for c := range e.rowOf {
		e.rowOf[c] = unmapped
	}

	return e
}

func (e *engine) seed(m graph.Mapping) {
	for _, p := range m {
		if p.Source < 0 || p.Source >= e.n1 || p.Target < 0 || p.Target >= e.n2 {
			panic(fmt.Sprintf("extend: seed pair %v out of range %dx%d", p, e.n1, e.n2))
		}
		if e.colOf[p.Source] != unmapped || e.rowOf[p.Target] != unmapped {
			panic(fmt.Sprintf("extend: seed maps %v twice", p))
		}
		e.colOf[p.Source] = p.Target
		e.rowOf[p.Target] = p.Source
		e.decided[p.Source] = true
		e.size++
	}
}

// search runs the backtracking loop until the stack drains or the
// budget stops it.
func (e *engine) search() {
	stack := arraystack.New()
	if r := e.pickRow(); r != unmapped {
		stack.Push(e.newFrame(r))
	}

	for !stack.Empty() {
		top, _ := stack.Peek()
		f := top.(*frame)
		if f.applied {
			e.undo(f)
		}
		if e.stopped || f.next >= len(f.cands) {
			stack.Pop()
			continue
		}
		col := f.cands[f.next]
		f.next++
		if !e.attempt() {
			e.stopped = true
			continue
		}
		e.apply(f, col)

		if bound := e.bound(); bound < e.best || (bound == e.best && len(e.results) >= e.limit) {
			continue
		}
		r := e.pickRow()
		if r == unmapped {
			e.record()
			continue
		}
		stack.Push(e.newFrame(r))
	}
}

func (e *engine) attempt() bool {
	if e.attempts&pollMask == 0 && e.ctx.Err() != nil {
		e.b.Stop()
	}
	if !e.b.Attempt() {
		return false
	}
	e.attempts++

	return true
}

func (e *engine) apply(f *frame, col int) {
	e.decided[f.row] = true
	if col != unmapped {
		e.colOf[f.row] = col
		e.rowOf[col] = f.row
		e.size++
	}
	f.col = col
	f.applied = true
}

func (e *engine) undo(f *frame) {
	if f.col != unmapped {
		e.rowOf[f.col] = unmapped
		e.colOf[f.row] = unmapped
		e.size--
	}
	e.decided[f.row] = false
	f.applied = false
}

// open reports whether row r is undecided and still has a free column
// the node predicate accepts.
func (e *engine) open(r int) bool {
	if e.decided[r] {
		return false
	}
	for _, c := range e.rowCompat[r] {
		if e.rowOf[c] == unmapped {
			return true
		}
	}
	return false
}

func (e *engine) bound() int {
	rows := 0
	for r := 0; r < e.n1; r++ {
		if e.open(r) {
			rows++
		}
	}
	cols := 0
	for c := 0; c < e.n2; c++ {
		if e.rowOf[c] != unmapped {
			continue
		}
		for _, r := range e.colCompat[c] {
			if !e.decided[r] {
				cols++
				break
			}
		}
	}
	if cols < rows {
		rows = cols
	}

	return e.size + rows
}

// pickRow returns the lowest open row adjacent to a mapped row, else the
// lowest open row, else unmapped.
func (e *engine) pickRow() int {
	g1 := e.o.Graph1()
	first := unmapped
	for r := 0; r < e.n1; r++ {
		if !e.open(r) {
			continue
		}
		for _, k := range g1.Neighbors(r) {
			if e.colOf[k] != unmapped {
				return r
			}
		}
		if first == unmapped {
			first = r
		}
	}

	return first
}

// newFrame lists the consistent free columns of r, label-matched
// anchors first, followed by the unmapped choice.
func (e *engine) newFrame(r int) *frame {
	var anchored, rest []int
	for _, c := range e.rowCompat[r] {
		if e.rowOf[c] != unmapped {
			continue
		}
		ok, anchor := e.consistent(r, c)
		if !ok {
			continue
		}
		if anchor {
			anchored = append(anchored, c)
		} else {
			rest = append(rest, c)
		}
	}
	cands := make([]int, 0, len(anchored)+len(rest)+1)
	cands = append(cands, anchored...)
	cands = append(cands, rest...)
	cands = append(cands, unmapped)

	return &frame{row: r, cands: cands, col: unmapped}
}

// consistent checks (r,c) against every mapped pair. Only bonded
// neighbors can conflict, so the check walks neighbor lists. anchor is
// true when some mapped neighbor bond also matches its label.
func (e *engine) consistent(r, c int) (ok, anchor bool) {
	g1, g2 := e.o.Graph1(), e.o.Graph2()
	for _, r2 := range g1.Neighbors(r) {
		c2 := e.colOf[r2]
		if c2 == unmapped {
			continue
		}
		if !g2.HasEdge(c, c2) {
			return false, false
		}
		if e.o.Edge(r, r2, c, c2) {
			anchor = true
		}
	}
	for _, c2 := range g2.Neighbors(c) {
		r2 := e.rowOf[c2]
		if r2 != unmapped && !g1.HasEdge(r, r2) {
			return false, false
		}
	}

	return true, anchor
}

func (e *engine) mapping() graph.Mapping {
	m := make(graph.Mapping, 0, e.size)
	for r, c := range e.colOf {
		if c != unmapped {
			m = append(m, graph.Pair{Source: r, Target: c})
		}
	}

	return m
}

// record keeps the current mapping when it is at least as large as the
// best so far, up to limit distinct mappings.
func (e *engine) record() {
	switch {
	case e.size < e.best:
		return
	case e.size > e.best:
		e.best = e.size
		e.results = e.results[:0]
		e.seen = make(map[uint64][]int)
	}
	if len(e.results) >= e.limit {
		return
	}
	m := e.mapping()
	h := m.Hash()
	for _, k := range e.seen[h] {
		if e.results[k].Equal(m) {
			return
		}
	}
	e.seen[h] = append(e.seen[h], len(e.results))
	e.results = append(e.results, m)
}
