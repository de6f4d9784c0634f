package extend_test

import (
	"context"
	"fmt"

	"github.com/asad/ReactionDecoder-sub000/budget"
	"github.com/asad/ReactionDecoder-sub000/extend"
	"github.com/asad/ReactionDecoder-sub000/graph"
	"github.com/asad/ReactionDecoder-sub000/match"
)

// ExampleExtend grows a one-pair seed along an ethanol-like chain.
func ExampleExtend() {
	g1 := graph.FromLabels([]string{"C", "C", "O"})
	_ = g1.AddEdge(0, 1, "1")
	_ = g1.AddEdge(1, 2, "1")
	g2 := graph.FromLabels([]string{"O", "C", "C"})
	_ = g2.AddEdge(0, 1, "1")
	_ = g2.AddEdge(1, 2, "1")

	o := match.New(g1, g2, match.ExactNode(), match.ExactEdge())
	seed := graph.Mapping{{Source: 2, Target: 0}}
	res := extend.Extend(context.Background(), seed, o, budget.ForGraphs(0, 3, 3))
	fmt.Println(res.Mappings, res.TimedOut)
	// Output: [{0:2 1:1 2:0}] false
}
