// Package match holds the node and edge compatibility predicates used by
// the MCS engine and the per-search Oracle that evaluates them.
//
// Predicates work on labels only:
//
//	NodeMatcher(a, b string) bool   // atom labels
//	EdgeMatcher(a, b string) bool   // bond labels
//
// ExactNode / ExactEdge compare labels for equality. WildcardNode and
// WildcardEdge additionally accept AnyNode ("*") and AnyEdge ("~") on
// either side and are bound automatically for query patterns.
//
// Oracle
//
// An Oracle is built once per search. It interns every node and edge label
// of both graphs into dense ids, evaluates each predicate once per distinct
// id pair, and keeps the node verdicts as a |G1|×|G2| matrix. After
// construction it is read-only and safe for concurrent use, which is what
// the parallel compatibility builder relies on.
//
// Relate classifies two candidate pairs with the compatibility-graph rule:
//
//	both bonded, edges compatible    → Bonded      (c-edge)
//	both bonded, edges incompatible  → Mismatched  (d-edge)
//	neither bonded                   → Unbonded    (d-edge)
//	exactly one bonded               → Conflict    (no edge)
//
// A node whose Label lookup fails is interned as unknown and matches
// nothing; Failures reports how many such nodes were seen.
package match
