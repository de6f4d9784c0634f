package mcs

import (
	"errors"
	"time"

	"github.com/asad/ReactionDecoder-sub000/compat"
	"github.com/asad/ReactionDecoder-sub000/graph"
)

// ErrNilGraph is returned when either input graph is nil.
var ErrNilGraph = errors.New("mcs: graph is nil")

// Pair is one (G1 index, G2 index) correspondence.
type Pair = graph.Pair

// Mapping is a partial bijection sorted by Source.
type Mapping = graph.Mapping

// Result is the outcome of one Search.
type Result struct {
	// Mappings of maximum size, sorted lexicographically. Empty when no
	// compatible pair exists.
	Mappings []Mapping
	// TimedOut reports budget exhaustion or context cancellation.
	TimedOut bool
	// Stats describes the work performed.
	Stats Stats
}

// Size returns the size of the mappings, or 0.
func (r Result) Size() int {
	if len(r.Mappings) == 0 {
		return 0
	}
	return len(r.Mappings[0])
}

// Stats describes one search.
type Stats struct {
	SearchID      string
	Strategy      compat.Strategy
	Fallback      bool
	Nodes         int
	CEdges        int
	DEdges        int
	CliqueSize    int
	Cliques       int
	Attempts      int
	BudgetLimit   int
	LabelFailures int
	Elapsed       time.Duration
}
