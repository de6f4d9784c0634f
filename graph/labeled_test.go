package graph_test

import (
	"errors"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asad/ReactionDecoder-sub000/graph"
)

// ethanol builds C-C-O with single bonds.
func ethanol(t *testing.T) *graph.Labeled {
	t.Helper()
	g := graph.FromLabels([]string{"C", "C", "O"}, graph.WithName("ethanol"))
	require.NoError(t, g.AddEdge(0, 1, "1"))
	require.NoError(t, g.AddEdge(1, 2, "1"))

	return g
}

func TestLabeled_Basics(t *testing.T) {
	g := ethanol(t)

	assert.Equal(t, "ethanol", g.Name())
	assert.False(t, g.IsQuery())
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, []int{0, 2}, g.Neighbors(1))
	assert.Equal(t, 2, g.Degree(1))
	assert.True(t, g.HasEdge(2, 1), "edges are undirected")
	assert.False(t, g.HasEdge(0, 2))
	assert.Equal(t, "1", g.EdgeLabel(1, 0))
	assert.Equal(t, "", g.EdgeLabel(0, 2))

	l, err := g.Label(2)
	require.NoError(t, err)
	assert.Equal(t, "O", l)
}

func TestLabeled_Errors(t *testing.T) {
	g := ethanol(t)

	_, err := g.Label(7)
	assert.True(t, errors.Is(err, graph.ErrNodeOutOfRange))

	assert.ErrorIs(t, g.AddEdge(0, 9, "1"), graph.ErrNodeOutOfRange)
	assert.ErrorIs(t, g.AddEdge(1, 1, "1"), graph.ErrLoopNotAllowed)
	assert.ErrorIs(t, g.AddEdge(1, 0, "2"), graph.ErrDuplicateEdge)

	assert.Nil(t, g.Neighbors(-1))
	assert.False(t, g.HasEdge(-1, 0))
	assert.Equal(t, 0, g.Degree(42))
}

func TestIsQuery(t *testing.T) {
	assert.True(t, graph.IsQuery(graph.New(graph.AsQuery())))
	assert.False(t, graph.IsQuery(graph.New()))
}

func TestMapping_SortInvertCompare(t *testing.T) {
	m := graph.Mapping{{Source: 2, Target: 0}, {Source: 0, Target: 1}}

	s := m.Sorted()
	assert.Equal(t, graph.Mapping{{Source: 0, Target: 1}, {Source: 2, Target: 0}}, s)
	assert.Equal(t, graph.Mapping{{Source: 2, Target: 0}, {Source: 0, Target: 1}}, m, "Sorted must not mutate")

	inv := s.Invert()
	assert.Equal(t, graph.Mapping{{Source: 0, Target: 2}, {Source: 1, Target: 0}}, inv)
	assert.True(t, inv.Invert().Equal(s))

	assert.Equal(t, -1, s[:1].Compare(s), "prefix sorts first")
	assert.Equal(t, 1, s.Compare(s[:1]))
	assert.Equal(t, 0, s.Compare(s.Sorted()))
	assert.Equal(t, []int{0, 2}, s.Sources())
	assert.Equal(t, "{0:1 2:0}", s.String())
}

func TestMapping_Hash(t *testing.T) {
	a := graph.Mapping{{Source: 0, Target: 1}, {Source: 1, Target: 0}}
	b := graph.Mapping{{Source: 0, Target: 1}, {Source: 1, Target: 0}}
	c := graph.Mapping{{Source: 0, Target: 0}, {Source: 1, Target: 1}}

	assert.Equal(t, a.Hash(), b.Hash())
	assert.NotEqual(t, a.Hash(), c.Hash())
}

// TestMapping_HashLayout pins the digest input: each pair as two
// little-endian uint64 words.
func TestMapping_HashLayout(t *testing.T) {
	m := graph.Mapping{{Source: 1, Target: 258}}
	raw := []byte{
		1, 0, 0, 0, 0, 0, 0, 0,
		2, 1, 0, 0, 0, 0, 0, 0,
	}

	assert.Equal(t, xxhash.Sum64(raw), m.Hash())
	assert.Equal(t, xxhash.Sum64(nil), graph.Mapping{}.Hash())
}
