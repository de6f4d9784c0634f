package mcs_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/asad/ReactionDecoder-sub000/builder"
	"github.com/asad/ReactionDecoder-sub000/compat"
	"github.com/asad/ReactionDecoder-sub000/config"
	"github.com/asad/ReactionDecoder-sub000/graph"
	"github.com/asad/ReactionDecoder-sub000/match"
	"github.com/asad/ReactionDecoder-sub000/mcs"
)

// chain returns a path over labels with single bonds.
func chain(t testing.TB, labels ...string) *graph.Labeled {
	t.Helper()
	g := graph.FromLabels(labels)
	for i := 0; i+1 < len(labels); i++ {
		require.NoError(t, g.AddEdge(i, i+1, "1"))
	}
	return g
}

// build runs builder constructors and fails the test on error.
func build(t testing.TB, bopts []builder.BuilderOption, cons ...builder.Constructor) *graph.Labeled {
	t.Helper()
	g, err := builder.BuildGraph(nil, bopts, cons...)
	require.NoError(t, err)
	return g
}

// labelChain returns n nodes of label in a single-bond path followed by
// the isolated extras.
func labelChain(t testing.TB, n int, label string, extras ...string) *graph.Labeled {
	t.Helper()
	return build(t, []builder.BuilderOption{builder.WithLabels(label)},
		builder.Path(n), builder.Isolated(extras...))
}

func mapping(pairs ...int) mcs.Mapping {
	m := make(mcs.Mapping, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		m = append(m, mcs.Pair{Source: pairs[i], Target: pairs[i+1]})
	}
	return m
}

// ScenarioSuite covers the end-to-end pipeline paths.
type ScenarioSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *ScenarioSuite) SetupTest() {
	s.ctx = context.Background()
}

// Identical paths map completely through the sequential build.
func (s *ScenarioSuite) TestIdenticalPaths() {
	g := chain(s.T(), "A", "B", "C")

	res, err := mcs.Search(s.ctx, g, chain(s.T(), "A", "B", "C"))
	s.Require().NoError(err)

	s.Equal([]mcs.Mapping{mapping(0, 0, 1, 1, 2, 2)}, res.Mappings)
	s.False(res.TimedOut)
	s.Equal(compat.Sequential, res.Stats.Strategy)
	s.False(res.Stats.Fallback)
	s.Equal(3, res.Stats.CliqueSize)
	s.NotEmpty(res.Stats.SearchID)
	s.Equal(1, mcs.Fragments(g, res.Mappings[0]))
}

// A triangle against a single bond has no signature-compatible pair, so
// the zero-edge check switches to the fallback build.
func (s *ScenarioSuite) TestTriangleAgainstBond() {
	tri := build(s.T(), nil, builder.Cycle(3))
	bond := build(s.T(), nil, builder.Path(2))

	res, err := mcs.Search(s.ctx, tri, bond)
	s.Require().NoError(err)

	s.True(res.Stats.Fallback)
	s.Equal(compat.Fallback, res.Stats.Strategy)
	s.Equal(6, res.Stats.Nodes)
	s.Equal(6, res.Stats.CEdges)
	s.Equal(2, res.Size())
	s.Require().Len(res.Mappings, 6)
	s.Equal(mapping(0, 0, 1, 1), res.Mappings[0])
	s.Equal(mapping(1, 1, 2, 0), res.Mappings[5])
	for _, m := range res.Mappings {
		s.Equal(1, mcs.Fragments(tri, m))
	}
}

// Two 40-node molecules sharing only isolated heteroatoms go through the
// parallel build, find no c-edges and recover the disconnected match
// through the fallback build.
func (s *ScenarioSuite) TestDisconnectedCommonAtoms() {
	g1 := labelChain(s.T(), 37, "C", "N", "O", "S")
	g2 := labelChain(s.T(), 37, "P", "N", "O", "S")

	res, err := mcs.Search(s.ctx, g1, g2)
	s.Require().NoError(err)

	s.True(res.Stats.Fallback)
	s.Equal(3, res.Stats.Nodes)
	s.Zero(res.Stats.CEdges)
	s.Equal(3, res.Stats.DEdges)
	s.Equal([]mcs.Mapping{mapping(37, 37, 38, 38, 39, 39)}, res.Mappings)
	s.Equal(3, mcs.Fragments(g1, res.Mappings[0]))
}

// Extension maps the path end that the strict signatures exclude.
func (s *ScenarioSuite) TestExtensionBeyondClique() {
	path := build(s.T(), nil, builder.Path(12))
	ring := build(s.T(), nil, builder.Cycle(12))

	res, err := mcs.Search(s.ctx, path, ring)
	s.Require().NoError(err)

	s.Equal(10, res.Stats.CliqueSize)
	s.Equal(11, res.Size())
	s.False(res.TimedOut)
	for _, m := range res.Mappings {
		s.Equal(1, mcs.Fragments(path, m))
	}
}

// A tiny budget stops extension but keeps the mappings already found.
func (s *ScenarioSuite) TestBudgetExhaustion() {
	path := build(s.T(), nil, builder.Path(12))
	ring := build(s.T(), nil, builder.Cycle(12))

	res, err := mcs.Search(s.ctx, path, ring, mcs.WithBudgetFactor(1))
	s.Require().NoError(err)

	s.True(res.TimedOut)
	s.Equal(24, res.Stats.BudgetLimit)
	s.LessOrEqual(res.Stats.Attempts, res.Stats.BudgetLimit)
	s.GreaterOrEqual(res.Size(), 10)
}

func TestScenarioSuite(t *testing.T) {
	suite.Run(t, new(ScenarioSuite))
}

func TestSearch_NilGraph(t *testing.T) {
	_, err := mcs.Search(context.Background(), nil, graph.New())
	assert.True(t, errors.Is(err, mcs.ErrNilGraph))

	_, err = mcs.Search(context.Background(), graph.New(), nil)
	assert.ErrorIs(t, err, mcs.ErrNilGraph)
}

func TestSearch_EmptyAndDisjoint(t *testing.T) {
	ctx := context.Background()

	res, err := mcs.Search(ctx, graph.New(), chain(t, "C", "O"))
	require.NoError(t, err)
	assert.Empty(t, res.Mappings)
	assert.Zero(t, res.Size())
	assert.False(t, res.TimedOut)

	res, err = mcs.Search(ctx, chain(t, "C", "C"), chain(t, "N", "N"))
	require.NoError(t, err)
	assert.Empty(t, res.Mappings)
}

func TestSearch_SingleAtoms(t *testing.T) {
	res, err := mcs.Search(context.Background(),
		graph.FromLabels([]string{"O"}), chain(t, "C", "O", "C"))
	require.NoError(t, err)
	assert.Equal(t, []mcs.Mapping{mapping(0, 1)}, res.Mappings)
}

func TestSearch_SymmetricSize(t *testing.T) {
	ctx := context.Background()
	g1 := build(t, []builder.BuilderOption{builder.WithLabels("C", "C", "O")}, builder.Cycle(6))
	g2 := build(t, []builder.BuilderOption{builder.WithLabels("C", "O")}, builder.Path(7))

	ab, err := mcs.Search(ctx, g1, g2)
	require.NoError(t, err)
	ba, err := mcs.Search(ctx, g2, g1)
	require.NoError(t, err)

	assert.Equal(t, ab.Size(), ba.Size())
	assert.Positive(t, ab.Size())
}

func TestSearch_Idempotent(t *testing.T) {
	ctx := context.Background()
	g1 := build(t, []builder.BuilderOption{builder.WithLabels("C", "N")}, builder.Wheel(7))
	g2 := build(t, []builder.BuilderOption{builder.WithLabels("C", "N")}, builder.Cycle(6))

	first, err := mcs.Search(ctx, g1, g2)
	require.NoError(t, err)
	second, err := mcs.Search(ctx, g1, g2)
	require.NoError(t, err)

	assert.Equal(t, first.Mappings, second.Mappings)
	assert.NotEqual(t, first.Stats.SearchID, second.Stats.SearchID)
}

func TestSearch_ParallelMatchesSequential(t *testing.T) {
	ctx := context.Background()
	opts := []builder.BuilderOption{
		builder.WithLabels("C", "C", "O", "N"),
		builder.WithBondFn(builder.ChoiceBondFn("1", "2")),
		builder.WithSeed(7),
	}
	g1 := build(t, opts, builder.RandomSparse(9, 0.35))
	opts[2] = builder.WithSeed(11)
	g2 := build(t, opts, builder.RandomSparse(9, 0.35))

	seq, err := mcs.Search(ctx, g1, g2)
	require.NoError(t, err)
	require.Equal(t, compat.Sequential, seq.Stats.Strategy)

	for _, fork := range []int{1, 2, 5} {
		par, err := mcs.Search(ctx, g1, g2,
			mcs.WithSequentialLimit(0), mcs.WithForkThreshold(fork), mcs.WithWorkers(3))
		require.NoError(t, err)
		if !par.Stats.Fallback {
			assert.Equal(t, compat.Parallel, par.Stats.Strategy)
		}
		assert.Equal(t, seq.Mappings, par.Mappings, "fork threshold %d", fork)
	}
}

func TestSearch_LargeGraphsUseFallback(t *testing.T) {
	g := chain(t, "C", "C", "O", "N")

	res, err := mcs.Search(context.Background(), g, chain(t, "C", "C", "O", "N"),
		mcs.WithLargeGraphLimit(1))
	require.NoError(t, err)
	assert.True(t, res.Stats.Fallback)
	assert.Equal(t, 4, res.Size())
}

func TestSearch_CancelledParallelBuild(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := mcs.Search(ctx, chain(t, "C", "O", "N"), chain(t, "C", "O", "N"),
		mcs.WithSequentialLimit(0))
	require.NoError(t, err)
	assert.True(t, res.TimedOut)
	assert.Empty(t, res.Mappings)
}

// Two 18-membered rings give a compatibility graph whose clique
// enumeration runs far longer than any of these limits.
func TestSearch_CancelledDuringCliqueEnumeration(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g1, g2 := build(t, nil, builder.Cycle(18)), build(t, nil, builder.Cycle(18))

	start := time.Now()
	res, err := mcs.Search(ctx, g1, g2)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), time.Second)
	assert.True(t, res.TimedOut)
	assert.Empty(t, res.Mappings)
	assert.Equal(t, 324, res.Stats.Nodes)
}

func TestSearch_ContextDeadlineBoundsCliqueEnumeration(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	g1, g2 := build(t, nil, builder.Cycle(18)), build(t, nil, builder.Cycle(18))

	start := time.Now()
	res, err := mcs.Search(ctx, g1, g2)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), time.Second)
	assert.True(t, res.TimedOut)
	require.NotEmpty(t, res.Mappings)
	assert.Positive(t, res.Stats.CliqueSize)
}

func TestSearch_TimeoutCoversEveryStage(t *testing.T) {
	g1, g2 := build(t, nil, builder.Cycle(18)), build(t, nil, builder.Cycle(18))

	start := time.Now()
	res, err := mcs.Search(context.Background(), g1, g2, mcs.WithTimeout(200*time.Millisecond))
	require.NoError(t, err)
	assert.Less(t, time.Since(start), time.Second)
	assert.True(t, res.TimedOut)
	require.NotEmpty(t, res.Mappings)
	for _, m := range res.Mappings {
		assert.Len(t, m, res.Size())
	}
}

func TestSearch_QueryWildcards(t *testing.T) {
	q := graph.FromLabels([]string{"C", match.AnyNode}, graph.AsQuery())
	require.NoError(t, q.AddEdge(0, 1, match.AnyEdge))
	target := graph.FromLabels([]string{"C", "O", "N"})
	require.NoError(t, target.AddEdge(0, 1, "2"))
	require.NoError(t, target.AddEdge(1, 2, "1"))

	res, err := mcs.Search(context.Background(), q, target)
	require.NoError(t, err)
	assert.Equal(t, []mcs.Mapping{mapping(0, 0, 1, 1)}, res.Mappings)
}

func TestSearch_CustomEdgeMatcher(t *testing.T) {
	g1 := graph.FromLabels([]string{"C", "O"})
	require.NoError(t, g1.AddEdge(0, 1, "2"))
	g2 := graph.FromLabels([]string{"C", "O"})
	require.NoError(t, g2.AddEdge(0, 1, "1"))

	// A mismatched bond leaves only a d-edge, so the strict search ends in
	// the fallback build; accepting any bond yields a c-edge instead.
	strict, err := mcs.Search(context.Background(), g1, g2)
	require.NoError(t, err)
	assert.True(t, strict.Stats.Fallback)
	assert.Zero(t, strict.Stats.CEdges)
	assert.Equal(t, []mcs.Mapping{mapping(0, 0, 1, 1)}, strict.Mappings)

	loose, err := mcs.Search(context.Background(), g1, g2,
		mcs.WithEdgeMatcher(match.AnyEdgeMatch()))
	require.NoError(t, err)
	assert.False(t, loose.Stats.Fallback)
	assert.Equal(t, 1, loose.Stats.CEdges)
	assert.Equal(t, []mcs.Mapping{mapping(0, 0, 1, 1)}, loose.Mappings)
}

// failing breaks the label lookup of one node.
type failing struct {
	*graph.Labeled
	broken int
}

func (f failing) Label(i int) (string, error) {
	if i == f.broken {
		return "", errors.New("lookup failed")
	}
	return f.Labeled.Label(i)
}

func TestSearch_LabelFailure(t *testing.T) {
	g1 := failing{Labeled: chain(t, "C", "C", "O"), broken: 2}

	res, err := mcs.Search(context.Background(), g1, chain(t, "C", "C", "O"))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Stats.LabelFailures)
	assert.Equal(t, 2, res.Size())
	for _, m := range res.Mappings {
		assert.NotContains(t, m.Sources(), 2)
	}
}

func TestSearch_MaxResultsAndCliques(t *testing.T) {
	ring := build(t, nil, builder.Cycle(6))

	all, err := mcs.Search(context.Background(), ring, build(t, nil, builder.Cycle(6)))
	require.NoError(t, err)
	assert.Equal(t, 6, all.Size())
	assert.Len(t, all.Mappings, 12)

	one, err := mcs.Search(context.Background(), ring, build(t, nil, builder.Cycle(6)),
		mcs.WithMaxCliques(1), mcs.WithMaxResults(1))
	require.NoError(t, err)
	require.Len(t, one.Mappings, 1)
	assert.Contains(t, all.Mappings, one.Mappings[0])
}

func TestSearch_WithThresholds(t *testing.T) {
	th := config.Thresholds{MaxResults: 1, MaxCliques: 1}
	ring := build(t, nil, builder.Cycle(5))

	res, err := mcs.Search(context.Background(), ring, build(t, nil, builder.Cycle(5)),
		mcs.WithThresholds(th))
	require.NoError(t, err)
	assert.Len(t, res.Mappings, 1)
	assert.Equal(t, config.DefaultBudgetFactor*10, res.Stats.BudgetLimit)

	assert.Panics(t, func() { mcs.WithThresholds(config.Thresholds{Workers: -1}) })
}

func TestSearch_LogsStages(t *testing.T) {
	var buf bytes.Buffer
	l := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	_, err := mcs.Search(context.Background(), chain(t, "C", "O"), chain(t, "C", "O"), mcs.WithLogger(l))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "compatibility graph built")
	assert.Contains(t, buf.String(), "search done")
}

func TestOptions_Panics(t *testing.T) {
	for name, fn := range map[string]func(){
		"node matcher": func() { mcs.WithNodeMatcher(nil) },
		"edge matcher": func() { mcs.WithEdgeMatcher(nil) },
		"sequential":   func() { mcs.WithSequentialLimit(-1) },
		"large":        func() { mcs.WithLargeGraphLimit(0) },
		"dedge cap":    func() { mcs.WithFallbackDEdgeCap(-1) },
		"fork":         func() { mcs.WithForkThreshold(0) },
		"workers":      func() { mcs.WithWorkers(0) },
		"budget":       func() { mcs.WithBudgetFactor(0) },
		"timeout":      func() { mcs.WithTimeout(-1) },
		"max cliques":  func() { mcs.WithMaxCliques(-1) },
		"max results":  func() { mcs.WithMaxResults(0) },
		"logger":       func() { mcs.WithLogger(nil) },
	} {
		assert.Panics(t, fn, name)
	}
}
