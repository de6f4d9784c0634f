package mcs

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/asad/ReactionDecoder-sub000/config"
	"github.com/asad/ReactionDecoder-sub000/match"
)

// Option configures Search. Constructors panic on meaningless values.
type Option func(*options)

type options struct {
	nodeMatch match.NodeMatcher
	edgeMatch match.EdgeMatcher

	th     config.Thresholds
	logger *log.Logger
}

func newOptions(opts []Option) options {
	cfg := options{th: config.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard)
	}

	return cfg
}

// WithNodeMatcher sets the node label predicate (default exact equality,
// wildcard-aware for query graphs). Panics on nil.
func WithNodeMatcher(fn match.NodeMatcher) Option {
	if fn == nil {
		panic("mcs: WithNodeMatcher(nil)")
	}
	return func(o *options) { o.nodeMatch = fn }
}

// WithEdgeMatcher sets the edge label predicate. Panics on nil.
func WithEdgeMatcher(fn match.EdgeMatcher) Option {
	if fn == nil {
		panic("mcs: WithEdgeMatcher(nil)")
	}
	return func(o *options) { o.edgeMatch = fn }
}

// WithThresholds replaces every threshold at once. Zero fields take their
// defaults. Panics if t fails validation.
func WithThresholds(t config.Thresholds) Option {
	if err := t.Validate(); err != nil {
		panic("mcs: WithThresholds: " + err.Error())
	}
	return func(o *options) {
		keep := o.th
		o.th = t
		fillZero(&o.th, keep)
	}
}

// fillZero copies defaults into zero fields of t.
func fillZero(t *config.Thresholds, d config.Thresholds) {
	for _, f := range []struct {
		dst *int
		src int
	}{
		{&t.SequentialLimit, d.SequentialLimit},
		{&t.LargeGraphLimit, d.LargeGraphLimit},
		{&t.FallbackDEdgeCap, d.FallbackDEdgeCap},
		{&t.ForkThreshold, d.ForkThreshold},
		{&t.Workers, d.Workers},
		{&t.BudgetFactor, d.BudgetFactor},
		{&t.SignatureWidth, d.SignatureWidth},
		{&t.MaxResults, d.MaxResults},
	} {
		if *f.dst == 0 {
			*f.dst = f.src
		}
	}
}

// WithSequentialLimit sets the size at or below which the smaller graph
// triggers a sequential build. Panics if n < 0.
func WithSequentialLimit(n int) Option {
	if n < 0 {
		panic("mcs: WithSequentialLimit(n<0)")
	}
	return func(o *options) { o.th.SequentialLimit = n }
}

// WithLargeGraphLimit sets the size above which two graphs go straight
// to the fallback build. Panics if n < 1.
func WithLargeGraphLimit(n int) Option {
	if n < 1 {
		panic("mcs: WithLargeGraphLimit(n<1)")
	}
	return func(o *options) { o.th.LargeGraphLimit = n }
}

// WithFallbackDEdgeCap sets the size below which the fallback build keeps
// all unbonded d-edges. Panics if n < 0.
func WithFallbackDEdgeCap(n int) Option {
	if n < 0 {
		panic("mcs: WithFallbackDEdgeCap(n<0)")
	}
	return func(o *options) { o.th.FallbackDEdgeCap = n }
}

// WithForkThreshold sets the parallel split width. Panics if n < 1.
func WithForkThreshold(n int) Option {
	if n < 1 {
		panic("mcs: WithForkThreshold(n<1)")
	}
	return func(o *options) { o.th.ForkThreshold = n }
}

// WithWorkers bounds parallel builder goroutines. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("mcs: WithWorkers(n<1)")
	}
	return func(o *options) { o.th.Workers = n }
}

// WithBudgetFactor sets extension attempts per input node. Panics if n < 1.
func WithBudgetFactor(n int) Option {
	if n < 1 {
		panic("mcs: WithBudgetFactor(n<1)")
	}
	return func(o *options) { o.th.BudgetFactor = n }
}

// WithTimeout sets a soft wall-clock limit on the whole search, counted
// from the Search call; 0 disables it. Panics if d < 0.
func WithTimeout(d time.Duration) Option {
	if d < 0 {
		panic("mcs: WithTimeout(d<0)")
	}
	return func(o *options) { o.th.Timeout = config.Duration(d) }
}

// WithMaxCliques extends at most n maximum cliques (0 = all).
// Panics if n < 0.
func WithMaxCliques(n int) Option {
	if n < 0 {
		panic("mcs: WithMaxCliques(n<0)")
	}
	return func(o *options) { o.th.MaxCliques = n }
}

// WithMaxResults keeps at most n distinct mappings per clique.
// Panics if n < 1.
func WithMaxResults(n int) Option {
	if n < 1 {
		panic("mcs: WithMaxResults(n<1)")
	}
	return func(o *options) { o.th.MaxResults = n }
}

// WithLogger routes debug output to l. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("mcs: WithLogger(nil)")
	}
	return func(o *options) { o.logger = l }
}
