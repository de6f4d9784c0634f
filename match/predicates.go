package match

import "github.com/asad/ReactionDecoder-sub000/graph"

// Wildcard labels understood by the wildcard-aware predicates.
const (
	// AnyNode matches every node label.
	AnyNode = "*"

	// AnyEdge matches every edge label.
	AnyEdge = "~"
)

// NodeMatcher reports whether two node labels may be paired.
type NodeMatcher func(a, b string) bool

// EdgeMatcher reports whether two edge labels may be paired.
type EdgeMatcher func(a, b string) bool

// ExactNode pairs identical node labels.
func ExactNode() NodeMatcher {
	return func(a, b string) bool { return a == b }
}

// ExactEdge pairs identical edge labels.
func ExactEdge() EdgeMatcher {
	return func(a, b string) bool { return a == b }
}

// WildcardNode pairs identical labels, and AnyNode with anything.
func WildcardNode() NodeMatcher {
	return func(a, b string) bool { return a == b || a == AnyNode || b == AnyNode }
}

// WildcardEdge pairs identical labels, and AnyEdge with anything.
func WildcardEdge() EdgeMatcher {
	return func(a, b string) bool { return a == b || a == AnyEdge || b == AnyEdge }
}

// AnyEdgeMatch ignores edge labels entirely (topology-only matching).
func AnyEdgeMatch() EdgeMatcher {
	return func(string, string) bool { return true }
}

// Defaults returns the predicates a search uses when none are given:
// exact matching, or the wildcard-aware pair when either graph is a
// query.
func Defaults(g1, g2 graph.Graph) (NodeMatcher, EdgeMatcher) {
	if graph.IsQuery(g1) || graph.IsQuery(g2) {
		return WildcardNode(), WildcardEdge()
	}

	return ExactNode(), ExactEdge()
}
