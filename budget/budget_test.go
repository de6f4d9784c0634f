package budget_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asad/ReactionDecoder-sub000/budget"
)

func TestBudget_LimitExhaustion(t *testing.T) {
	b := budget.New(3)
	for i := 0; i < 3; i++ {
		require.True(t, b.Attempt(), "attempt %d", i)
	}
	assert.False(t, b.Exhausted(), "exhaustion is observed by the next attempt")
	assert.False(t, b.Attempt())
	assert.True(t, b.Exhausted())
	assert.True(t, b.TimedOut())
	assert.Equal(t, 3, b.Used())
	assert.Equal(t, 0, b.Remaining())
	assert.False(t, b.Attempt(), "exhaustion is sticky")
}

func TestBudget_ForGraphs(t *testing.T) {
	assert.Equal(t, 50, budget.ForGraphs(5, 4, 6).Limit())
	assert.Equal(t, budget.DefaultFactor*3, budget.ForGraphs(0, 1, 2).Limit())
	assert.Equal(t, 0, budget.ForGraphs(7, 0, 0).Limit())
}

func TestBudget_ZeroLimit(t *testing.T) {
	b := budget.New(0)
	assert.False(t, b.Attempt())
	assert.True(t, b.TimedOut())
}

func TestBudget_Stop(t *testing.T) {
	b := budget.New(10)
	require.True(t, b.Attempt())
	b.Stop()
	assert.False(t, b.Attempt())
	assert.Equal(t, 9, b.Remaining())
}

func TestBudget_DeadlineIsSoft(t *testing.T) {
	b := budget.New(1<<20, budget.WithDeadline(time.Now().Add(-time.Second)))

	// The clock is consulted sparsely; the first checkpoint must trip.
	n := 0
	for b.Attempt() {
		n++
	}
	assert.True(t, b.TimedOut())
	assert.Less(t, n, 256)
}

func TestBudget_NonPositiveTimeoutDisablesDeadline(t *testing.T) {
	b := budget.New(600, budget.WithTimeout(0))
	n := 0
	for b.Attempt() {
		n++
	}
	assert.Equal(t, 600, n)
}

func TestBudget_NegativeLimitPanics(t *testing.T) {
	assert.Panics(t, func() { budget.New(-1) })
}

func TestBudget_ZeroDeadlineDisablesDeadline(t *testing.T) {
	b := budget.New(600, budget.WithDeadline(time.Time{}))

	n := 0
	for b.Attempt() {
		n++
	}
	assert.Equal(t, 600, n)
	assert.True(t, b.Exhausted())
}
