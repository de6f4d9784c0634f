package compat_test

import (
	"fmt"

	"github.com/asad/ReactionDecoder-sub000/compat"
	"github.com/asad/ReactionDecoder-sub000/graph"
	"github.com/asad/ReactionDecoder-sub000/match"
)

// ExampleBuild classifies the candidate pairs of two identical paths.
func ExampleBuild() {
	g := graph.FromLabels([]string{"C", "C", "O"})
	_ = g.AddEdge(0, 1, "1")
	_ = g.AddEdge(1, 2, "2")

	o := match.New(g, g, match.ExactNode(), match.ExactEdge())
	cg := compat.Build(o)
	fmt.Println(cg.Len(), len(cg.CEdges), len(cg.DEdges))
	fmt.Println(cg.Mapping([]int{0, 1, 2}))
	// Output:
	// 3 2 1
	// {0:0 1:1 2:2}
}
