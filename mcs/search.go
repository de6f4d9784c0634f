package mcs

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/asad/ReactionDecoder-sub000/budget"
	"github.com/asad/ReactionDecoder-sub000/clique"
	"github.com/asad/ReactionDecoder-sub000/compat"
	"github.com/asad/ReactionDecoder-sub000/extend"
	"github.com/asad/ReactionDecoder-sub000/graph"
	"github.com/asad/ReactionDecoder-sub000/match"
)

// Search computes the maximum common subgraph mappings of g1 and g2.
//
// The returned error is non-nil only for caller defects (nil graphs).
// Degenerate inputs, budget exhaustion and ctx cancellation all return
// a valid Result. A configured timeout runs from the call and bounds
// every stage: the parallel build, clique enumeration and extension.
func Search(ctx context.Context, g1, g2 graph.Graph, opts ...Option) (Result, error) {
	const method = "Search"
	if g1 == nil || g2 == nil {
		return Result{}, fmt.Errorf("%s: %w", method, ErrNilGraph)
	}

	cfg := newOptions(opts)
	id := uuid.NewString()
	start := time.Now()
	n1, n2 := g1.NodeCount(), g2.NodeCount()

	var deadline time.Time
	if d := cfg.th.Timeout.Duration(); d > 0 {
		deadline = start.Add(d)
		var cancel context.CancelFunc
		ctx, cancel = context.WithDeadline(ctx, deadline)
		defer cancel()
	}

	ctx, span := startSearchSpan(ctx, id, n1, n2)
	defer span.End()

	s := &searcher{
		cfg:      cfg,
		log:      cfg.logger.With("search", id),
		g1:       g1,
		g2:       g2,
		deadline: deadline,
	}
	res := s.run(ctx)
	res.Stats.SearchID = id
	res.Stats.Elapsed = time.Since(start)

	setSearchSpanResult(span, res)
	recordSearchMetrics(ctx, res.Stats.Elapsed, res)
	s.log.Debug("search done",
		"size", res.Size(),
		"mappings", len(res.Mappings),
		"timed_out", res.TimedOut,
		"elapsed", res.Stats.Elapsed.Round(time.Microsecond))

	return res, nil
}

// searcher carries the state of one Search call.
type searcher struct {
	cfg      options
	log      *log.Logger
	g1, g2   graph.Graph
	query    bool
	deadline time.Time
	stats    Stats
}

func (s *searcher) run(ctx context.Context) Result {
	o := s.oracle()
	s.stats.LabelFailures = o.Failures()
	if o.Failures() > 0 {
		s.log.Debug("label lookups failed; nodes excluded", "count", o.Failures())
	}
	if o.Size1() == 0 || o.Size2() == 0 {
		return Result{Stats: s.stats}
	}

	cg, ok := s.buildGraph(ctx, o)
	if !ok {
		return Result{TimedOut: true, Stats: s.stats}
	}
	cg = s.zeroEdgeCheck(o, cg)

	cliques := s.enumerate(ctx, cg)
	if cliques.Size == 0 {
		return Result{TimedOut: cliques.Cancelled, Stats: s.stats}
	}

	all, timedOut := s.extendAll(ctx, o, cg, cliques)

	return Result{Mappings: best(all), TimedOut: timedOut || cliques.Cancelled, Stats: s.stats}
}

// oracle binds the predicates. Query graphs default to wildcard matching.
func (s *searcher) oracle() *match.Oracle {
	s.query = graph.IsQuery(s.g1) || graph.IsQuery(s.g2)
	nm, em := match.Defaults(s.g1, s.g2)
	if s.cfg.nodeMatch != nil {
		nm = s.cfg.nodeMatch
	}
	if s.cfg.edgeMatch != nil {
		em = s.cfg.edgeMatch
	}

	return match.New(s.g1, s.g2, nm, em)
}

// buildGraph selects and runs a construction strategy. ok is false when
// ctx was cancelled during a parallel build.
func (s *searcher) buildGraph(ctx context.Context, o *match.Oracle) (*compat.Graph, bool) {
	th := s.cfg.th
	n1, n2 := o.Size1(), o.Size2()
	opts := []compat.Option{
		compat.WithSignatureWidth(th.SignatureWidth),
		compat.WithForkThreshold(th.ForkThreshold),
		compat.WithWorkers(th.Workers),
		compat.WithDEdgeCap(th.FallbackDEdgeCap),
	}

	var cg *compat.Graph
	switch {
	case n1 > th.LargeGraphLimit && n2 > th.LargeGraphLimit:
		cg = compat.BuildFallback(o, opts...)
		s.stats.Fallback = true
	case min(n1, n2) <= th.SequentialLimit:
		cg = compat.Build(o, opts...)
	default:
		var err error
		cg, err = compat.BuildParallel(ctx, o, opts...)
		if err != nil {
			s.log.Debug("parallel build cancelled", "err", err)
			s.stats.Strategy = compat.Parallel
			return nil, false
		}
	}
	s.record(cg)
	s.log.Debug("compatibility graph built",
		"strategy", cg.Strategy(), "nodes", cg.Len(),
		"c_edges", len(cg.CEdges), "d_edges", len(cg.DEdges))

	return cg, true
}

// zeroEdgeCheck replaces a graph without c-edges by the fallback build.
func (s *searcher) zeroEdgeCheck(o *match.Oracle, cg *compat.Graph) *compat.Graph {
	if len(cg.CEdges) > 0 || cg.Strategy() == compat.Fallback {
		return cg
	}
	th := s.cfg.th
	fb := compat.BuildFallback(o,
		compat.WithSignatureWidth(th.SignatureWidth),
		compat.WithDEdgeCap(th.FallbackDEdgeCap))
	s.stats.Fallback = true
	s.record(fb)
	s.log.Debug("no c-edges; rebuilt with fallback",
		"nodes", fb.Len(), "c_edges", len(fb.CEdges), "d_edges", len(fb.DEdges))

	return fb
}

func (s *searcher) record(cg *compat.Graph) {
	st := cg.Stats()
	s.stats.Strategy = st.Strategy
	s.stats.Nodes = st.Nodes
	s.stats.CEdges = st.CEdges
	s.stats.DEdges = st.DEdges
}

// enumerate lists the maximum cliques of cg. A done ctx cuts it short
// with the largest cliques seen so far.
func (s *searcher) enumerate(ctx context.Context, cg *compat.Graph) clique.Result {
	res := clique.Maximum(cg,
		clique.WithLimit(s.cfg.th.MaxCliques),
		clique.WithContext(ctx))
	s.stats.CliqueSize = res.Size
	s.stats.Cliques = len(res.Cliques)
	s.log.Debug("cliques enumerated",
		"size", res.Size, "count", len(res.Cliques),
		"calls", res.Calls, "cancelled", res.Cancelled)

	return res
}

// extendAll grows every clique under one shared budget and stops as soon
// as the budget is exhausted.
func (s *searcher) extendAll(ctx context.Context, o *match.Oracle, cg *compat.Graph, cr clique.Result) ([]Mapping, bool) {
	th := s.cfg.th
	b := budget.ForGraphs(th.BudgetFactor, o.Size1(), o.Size2(),
		budget.WithDeadline(s.deadline))
	s.stats.BudgetLimit = b.Limit()

	opts := []extend.Option{extend.WithMaxResults(th.MaxResults)}
	if s.query {
		opts = append(opts, extend.WithFixedDirection())
	}

	var all []Mapping
	for k, c := range cr.Cliques {
		er := extend.Extend(ctx, cg.Mapping(c), o, b, opts...)
		all = append(all, er.Mappings...)
		s.stats.Attempts += er.Attempts
		if b.Exhausted() {
			s.log.Debug("budget exhausted", "cliques_done", k+1, "cliques", len(cr.Cliques), "attempts", b.Used())
			return all, true
		}
	}

	return all, false
}

// best keeps the largest non-empty mappings, drops exact duplicates and
// sorts the rest lexicographically.
func best(all []Mapping) []Mapping {
	size := 0
	for _, m := range all {
		if len(m) > size {
			size = len(m)
		}
	}
	if size == 0 {
		return nil
	}

	seen := make(map[uint64][]Mapping)
	var out []Mapping
next:
	for _, m := range all {
		if len(m) != size {
			continue
		}
		m = m.Sorted()
		h := m.Hash()
		for _, prev := range seen[h] {
			if prev.Equal(m) {
				continue next
			}
		}
		seen[h] = append(seen[h], m)
		out = append(out, m)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Compare(out[b]) < 0 })

	return out
}
