package extend_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asad/ReactionDecoder-sub000/budget"
	"github.com/asad/ReactionDecoder-sub000/extend"
	"github.com/asad/ReactionDecoder-sub000/graph"
	"github.com/asad/ReactionDecoder-sub000/match"
)

func chain(t *testing.T, labels ...string) *graph.Labeled {
	t.Helper()
	g := graph.FromLabels(labels)
	for i := 0; i+1 < len(labels); i++ {
		require.NoError(t, g.AddEdge(i, i+1, "1"))
	}
	return g
}

func triangle(t *testing.T) *graph.Labeled {
	t.Helper()
	g := chain(t, "X", "X", "X")
	require.NoError(t, g.AddEdge(0, 2, "1"))
	return g
}

func exact(g1, g2 graph.Graph) *match.Oracle {
	return match.New(g1, g2, match.ExactNode(), match.ExactEdge())
}

// requireConsistent checks that no two pairs of m are bonded in only one graph.
func requireConsistent(t *testing.T, o *match.Oracle, m graph.Mapping) {
	t.Helper()
	for a := 0; a < len(m); a++ {
		require.True(t, o.Node(m[a].Source, m[a].Target), "pair %v", m[a])
		for b := a + 1; b < len(m); b++ {
			rel := o.Relate(m[a].Source, m[a].Target, m[b].Source, m[b].Target)
			require.True(t, rel.Coexist(), "%v and %v conflict", m[a], m[b])
		}
	}
}

func TestExtend_FromEmptySeed(t *testing.T) {
	g1 := chain(t, "A", "B", "C")
	g2 := chain(t, "A", "B", "C")
	o := exact(g1, g2)

	res := extend.Extend(context.Background(), nil, o, budget.ForGraphs(0, 3, 3))
	require.Len(t, res.Mappings, 1)
	assert.Equal(t, "{0:0 1:1 2:2}", res.Mappings[0].String())
	assert.False(t, res.TimedOut)
	assert.Positive(t, res.Attempts)
}

func TestExtend_RespectsBondConflicts(t *testing.T) {
	tri := triangle(t)
	edge := chain(t, "X", "X")
	o := exact(tri, edge)
	seed := graph.Mapping{{Source: 0, Target: 0}}

	res := extend.Extend(context.Background(), seed, o, budget.New(1000))
	require.Len(t, res.Mappings, 2)
	assert.Equal(t, "{0:0 1:1}", res.Mappings[0].String())
	assert.Equal(t, "{0:0 2:1}", res.Mappings[1].String())
	for _, m := range res.Mappings {
		requireConsistent(t, o, m)
	}
}

func TestExtend_MonotoneOverSeed(t *testing.T) {
	g1 := chain(t, "C", "C", "O", "C", "N")
	g2 := chain(t, "N", "C", "O", "C", "C")
	o := exact(g1, g2)
	seed := graph.Mapping{{Source: 2, Target: 2}}

	res := extend.Extend(context.Background(), seed, o, budget.New(10_000))
	require.NotEmpty(t, res.Mappings)
	for _, m := range res.Mappings {
		assert.GreaterOrEqual(t, len(m), len(seed))
		assert.Contains(t, m, seed[0])
		requireConsistent(t, o, m)
	}
	// Reversed chains overlap completely.
	assert.Len(t, res.Mappings[0], 5)
}

func TestExtend_BudgetExhaustionKeepsSeed(t *testing.T) {
	g := chain(t, "C", "C", "C", "C")
	o := exact(g, g)
	seed := graph.Mapping{{Source: 1, Target: 1}}

	res := extend.Extend(context.Background(), seed, o, budget.New(0))
	assert.True(t, res.TimedOut)
	assert.Zero(t, res.Attempts)
	require.Len(t, res.Mappings, 1)
	assert.True(t, res.Mappings[0].Equal(seed))
}

func TestExtend_CancelledContext(t *testing.T) {
	g := chain(t, "C", "C", "C")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := extend.Extend(ctx, nil, exact(g, g), budget.New(1000))
	assert.True(t, res.TimedOut)
	assert.Zero(t, res.Attempts)
}

func TestExtend_SwapsToLargerGraphAndBack(t *testing.T) {
	small := chain(t, "C", "O")
	large := chain(t, "N", "C", "O")
	o := exact(small, large)

	for _, opts := range [][]extend.Option{nil, {extend.WithFixedDirection()}} {
		res := extend.Extend(context.Background(), nil, o, budget.New(1000), opts...)
		require.Len(t, res.Mappings, 1)
		assert.Equal(t, "{0:1 1:2}", res.Mappings[0].String())
	}

	seed := graph.Mapping{{Source: 1, Target: 2}}
	res := extend.Extend(context.Background(), seed, o, budget.New(1000))
	require.Len(t, res.Mappings, 1)
	assert.Equal(t, "{0:1 1:2}", res.Mappings[0].String())
}

func TestExtend_MaxResults(t *testing.T) {
	g := graph.FromLabels([]string{"C", "C", "C", "C"})
	o := exact(g, g)

	res := extend.Extend(context.Background(), nil, o, budget.New(100_000), extend.WithMaxResults(3))
	require.Len(t, res.Mappings, 3)
	for k, m := range res.Mappings {
		assert.Len(t, m, 4)
		for j := 0; j < k; j++ {
			assert.False(t, m.Equal(res.Mappings[j]), "duplicate mapping %v", m)
		}
	}
	assert.Panics(t, func() { extend.WithMaxResults(0) })
}

func TestExtend_BadSeedPanics(t *testing.T) {
	g := chain(t, "C", "C")
	o := exact(g, g)
	assert.Panics(t, func() {
		extend.Extend(context.Background(), graph.Mapping{{Source: 5, Target: 0}}, o, budget.New(10))
	})
	assert.Panics(t, func() {
		extend.Extend(context.Background(), graph.Mapping{{Source: 0, Target: 0}, {Source: 1, Target: 0}}, o, budget.New(10))
	})
}
