// Package budget bounds the total work of one MCS search.
//
// A Budget is a counter with a fixed limit plus an optional soft
// wall-clock deadline. The extension engine calls Attempt before every
// candidate assignment; once the limit is reached (or the deadline has
// passed) Attempt returns false and the budget stays exhausted for the
// rest of the search. Exhaustion is not an error: callers keep the best
// results they already have and report TimedOut.
//
// The limit is proportional to the input size, Factor × (|G1| + |G2|),
// so small molecules finish exhaustively while large ones degrade
// gracefully.
//
// A Budget is scoped to one search call and is not safe for concurrent use.
package budget

import (
	"time"
)

// deadlineMask makes Attempt consult the clock once every 256 calls.
const deadlineMask = 255

// DefaultFactor is the attempts-per-node multiplier used by ForGraphs
// when factor <= 0.
const DefaultFactor = 200

// Budget is a per-search attempt counter.
type Budget struct {
	limit int
	used  int

	useDeadline bool
	deadline    time.Time

	timedOut bool
}

// Option configures a Budget.
type Option func(*Budget)

// WithDeadline sets an absolute soft deadline. A zero time disables it.
func WithDeadline(t time.Time) Option {
	return func(b *Budget) {
		b.useDeadline = !t.IsZero()
		b.deadline = t
	}
}

// WithTimeout sets a soft deadline d from now. Non-positive d disables it.
func WithTimeout(d time.Duration) Option {
	return func(b *Budget) {
		if d <= 0 {
			b.useDeadline = false
			return
		}
		b.useDeadline = true
		b.deadline = time.Now().Add(d)
	}
}

// New returns a budget allowing limit attempts. Panics on limit < 0.
func New(limit int, opts ...Option) *Budget {
	if limit < 0 {
		panic("budget: New(limit<0)")
	}
	b := &Budget{limit: limit}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// ForGraphs returns a budget of factor × (n1 + n2) attempts.
func ForGraphs(factor, n1, n2 int, opts ...Option) *Budget {
	if factor <= 0 {
		factor = DefaultFactor
	}

	return New(factor*(n1+n2), opts...)
}

// Attempt consumes one unit. It returns false, and marks the budget
// timed out, when the limit is reached or the deadline has passed.
func (b *Budget) Attempt() bool {
	if b.timedOut {
		return false
	}
	if b.used >= b.limit {
		b.timedOut = true
		return false
	}
	b.used++
	if b.useDeadline && b.used&deadlineMask == 0 && time.Now().After(b.deadline) {
		b.timedOut = true
		return false
	}

	return true
}

// Stop exhausts the budget immediately (cooperative cancellation).
func (b *Budget) Stop() { b.timedOut = true }

// Exhausted reports whether no further attempts are allowed.
func (b *Budget) Exhausted() bool { return b.timedOut }

// TimedOut reports whether the search was cut short. Same as Exhausted;
// kept for call sites that read as a result flag.
func (b *Budget) TimedOut() bool { return b.timedOut }

// Used returns the number of attempts consumed.
func (b *Budget) Used() int { return b.used }

// Limit returns the configured maximum.
func (b *Budget) Limit() int { return b.limit }

// Remaining returns Limit - Used, never negative.
func (b *Budget) Remaining() int {
	if r := b.limit - b.used; r > 0 {
		return r
	}

	return 0
}
