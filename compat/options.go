package compat

import "runtime"

// Defaults for the construction options.
const (
	DefaultSignatureWidth = 6
	DefaultForkThreshold  = 20
	DefaultDEdgeCap       = 50
)

// Option configures a build.
// Option constructors panic on meaningless input; builds never panic
// on valid graphs.
type Option func(*options)

type options struct {
	signatureWidth int
	forkThreshold  int
	workers        int
	dEdgeCap       int
}

func newOptions(opts []Option) options {
	cfg := options{
		signatureWidth: DefaultSignatureWidth,
		forkThreshold:  DefaultForkThreshold,
		workers:        runtime.GOMAXPROCS(0),
		dEdgeCap:       DefaultDEdgeCap,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSignatureWidth sets how many neighbor labels a signature keeps.
// Panics if w < 1.
func WithSignatureWidth(w int) Option {
	if w < 1 {
		panic("compat: WithSignatureWidth(w<1)")
	}
	return func(o *options) { o.signatureWidth = w }
}

// WithForkThreshold sets the widest row range a parallel task handles
// without splitting. Panics if t < 1.
func WithForkThreshold(t int) Option {
	if t < 1 {
		panic("compat: WithForkThreshold(t<1)")
	}
	return func(o *options) { o.forkThreshold = t }
}

// WithWorkers bounds the number of goroutines forked by BuildParallel.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("compat: WithWorkers(n<1)")
	}
	return func(o *options) { o.workers = n }
}

// WithDEdgeCap sets the size below which BuildFallback emits every
// unbonded d-edge. Panics if n < 0.
func WithDEdgeCap(n int) Option {
	if n < 0 {
		panic("compat: WithDEdgeCap(n<0)")
	}
	return func(o *options) { o.dEdgeCap = n }
}
