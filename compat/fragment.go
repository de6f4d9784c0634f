package compat

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// fragment is the output of one fork/join task. Fragments are never
// mutated after their task returns; union allocates a new one.
type fragment struct {
	nodes map[int]Node
	c     map[Edge]struct{}
	d     map[Edge]struct{}
}

func newFragment() fragment {
	return fragment{
		nodes: make(map[int]Node),
		c:     make(map[Edge]struct{}),
		d:     make(map[Edge]struct{}),
	}
}

// union merges two fragments by set union. It is associative and
// commutative, so split points never change the merged content.
func union(x, y fragment) fragment {
	out := fragment{
		nodes: make(map[int]Node, len(x.nodes)+len(y.nodes)),
		c:     make(map[Edge]struct{}, len(x.c)+len(y.c)),
		d:     make(map[Edge]struct{}, len(x.d)+len(y.d)),
	}
	for _, f := range [2]fragment{x, y} {
		for id, n := range f.nodes {
			out.nodes[id] = n
		}
		for e := range f.c {
			out.c[e] = struct{}{}
		}
		for e := range f.d {
			out.d[e] = struct{}{}
		}
	}

	return out
}

// freeze converts the fragment into sorted slices.
func (f fragment) freeze(s Strategy) *Graph {
	nodes := make([]Node, 0, len(f.nodes))
	for _, n := range f.nodes {
		nodes = append(nodes, n)
	}
	c := make([]Edge, 0, len(f.c))
	for e := range f.c {
		c = append(c, e)
	}
	d := make([]Edge, 0, len(f.d))
	for e := range f.d {
		d = append(d, e)
	}

	return assemble(s, nodes, c, d)
}

// forker runs leaf over a row range, halving ranges wider than threshold.
// The right half always runs on the current goroutine; the left half is
// forked only when the semaphore admits another worker, otherwise it
// runs inline too.
type forker struct {
	ctx       context.Context
	sem       *semaphore.Weighted
	threshold int
	leaf      func(lo, hi int) fragment
}

func newForker(ctx context.Context, workers, threshold int, leaf func(lo, hi int) fragment) *forker {
	return &forker{
		ctx:       ctx,
		sem:       semaphore.NewWeighted(int64(workers)),
		threshold: threshold,
		leaf:      leaf,
	}
}

func (f *forker) run(lo, hi int) (fragment, error) {
	if err := f.ctx.Err(); err != nil {
		return fragment{}, err
	}
	if hi-lo <= f.threshold {
		return f.leaf(lo, hi), nil
	}
	mid := lo + (hi-lo)/2

	if !f.sem.TryAcquire(1) {
		left, err := f.run(lo, mid)
		if err != nil {
			return fragment{}, err
		}
		right, err := f.run(mid, hi)
		if err != nil {
			return fragment{}, err
		}
		return union(left, right), nil
	}

	var (
		g    errgroup.Group
		left fragment
	)
	g.Go(func() error {
		defer f.sem.Release(1)
		var err error
		left, err = f.run(lo, mid)
		return err
	})
	right, rerr := f.run(mid, hi)
	if err := g.Wait(); err != nil {
		return fragment{}, err
	}
	if rerr != nil {
		return fragment{}, rerr
	}

	return union(left, right), nil
}
