package match

import (
	"github.com/asad/ReactionDecoder-sub000/graph"
)

// unknown is the interned id of a node whose label lookup failed.
const unknown = -1

// Relation classifies two candidate pairs (i1,j1) and (i2,j2).
type Relation uint8

const (
	// Conflict: exactly one graph has the edge; the pairs cannot coexist.
	Conflict Relation = iota
	// Bonded: both graphs have the edge and the edge labels match.
	Bonded
	// Mismatched: both graphs have the edge but the labels do not match.
	Mismatched
	// Unbonded: neither graph has the edge.
	Unbonded
)

// String implements fmt.Stringer.
func (r Relation) String() string {
	switch r {
	case Bonded:
		return "bonded"
	case Mismatched:
		return "mismatched"
	case Unbonded:
		return "unbonded"
	default:
		return "conflict"
	}
}

// Coexist reports whether the two pairs may appear in one mapping.
func (r Relation) Coexist() bool { return r != Conflict }

// Table interns label strings into dense ids in first-seen order.
type Table struct {
	ids   map[string]int
	names []string
}

// NewTable returns an empty interning table.
func NewTable() *Table {
	return &Table{ids: make(map[string]int)}
}

// Intern returns the id of label, allocating one if needed.
func (t *Table) Intern(label string) int {
	if id, ok := t.ids[label]; ok {
		return id
	}
	id := len(t.names)
	t.ids[label] = id
	t.names = append(t.names, label)

	return id
}

// Lookup returns the id of label without allocating.
func (t *Table) Lookup(label string) (int, bool) {
	id, ok := t.ids[label]
	return id, ok
}

// Name returns the label of id.
func (t *Table) Name(id int) string { return t.names[id] }

// Len returns the number of interned labels.
func (t *Table) Len() int { return len(t.names) }

// Oracle answers compatibility questions about one (G1, G2) pair.
// It is immutable after New and safe for concurrent readers.
type Oracle struct {
	g1, g2 graph.Graph
	n1, n2 int
	query  bool

	nodeLabels *Table
	lab1, lab2 []int // interned node label per index, or unknown

	node []bool // node[i*n2+j]: predicate verdict for (i,j)

	edgeLabels *Table
	edgeOK     []bool // edgeOK[a*k+b]: verdict for G1 edge label a vs G2 edge label b
	edgeMatch  EdgeMatcher
	transposed bool

	failures int
}

// New evaluates node and edge predicates for g1 × g2.
//
// Steps:
//  1. Resolve and intern every node label; failed lookups become unknown.
//  2. Evaluate nodeMatch once per distinct (label1, label2) id pair and
//     expand the verdicts into the |G1|×|G2| matrix.
//  3. Intern every edge label of both graphs and evaluate edgeMatch once
//     per distinct id pair.
//
// Complexity: O(n1·n2 + E1 + E2 + k²) where k is the number of distinct
// edge labels.
func New(g1, g2 graph.Graph, nodeMatch NodeMatcher, edgeMatch EdgeMatcher) *Oracle {
	o := &Oracle{
		g1:         g1,
		g2:         g2,
		n1:         g1.NodeCount(),
		n2:         g2.NodeCount(),
		query:      graph.IsQuery(g1) || graph.IsQuery(g2),
		nodeLabels: NewTable(),
		edgeLabels: NewTable(),
		edgeMatch:  edgeMatch,
	}

	o.lab1 = o.internNodes(g1, o.n1)
	o.lab2 = o.internNodes(g2, o.n2)

	// Stage 2: one predicate call per distinct label pair.
	memo := make(map[[2]int]bool)
	o.node = make([]bool, o.n1*o.n2)
	var i, j int
	for i = 0; i < o.n1; i++ {
		a := o.lab1[i]
		if a == unknown {
			continue
		}
		for j = 0; j < o.n2; j++ {
			b := o.lab2[j]
			if b == unknown {
				continue
			}
			key := [2]int{a, b}
			ok, seen := memo[key]
			if !seen {
				ok = nodeMatch(o.nodeLabels.Name(a), o.nodeLabels.Name(b))
				memo[key] = ok
			}
			o.node[i*o.n2+j] = ok
		}
	}

	// Stage 3: edge label interning.
	o.internEdges(g1, o.n1)
	o.internEdges(g2, o.n2)
	k := o.edgeLabels.Len()
	o.edgeOK = make([]bool, k*k)
	for a := 0; a < k; a++ {
		for b := 0; b < k; b++ {
			o.edgeOK[a*k+b] = edgeMatch(o.edgeLabels.Name(a), o.edgeLabels.Name(b))
		}
	}

	return o
}

func (o *Oracle) internNodes(g graph.Graph, n int) []int {
	out := make([]int, n)
	for i := 0; i < n; i++ {
		l, err := g.Label(i)
		if err != nil {
			out[i] = unknown
			o.failures++
			continue
		}
		out[i] = o.nodeLabels.Intern(l)
	}

	return out
}

func (o *Oracle) internEdges(g graph.Graph, n int) {
	for i := 0; i < n; i++ {
		for _, j := range g.Neighbors(i) {
			if j > i {
				o.edgeLabels.Intern(g.EdgeLabel(i, j))
			}
		}
	}
}

// Transpose returns an Oracle with the roles of the two graphs exchanged.
// Interning tables are shared; the node matrix is rebuilt transposed.
// Complexity: O(n1·n2).
func (o *Oracle) Transpose() *Oracle {
	t := &Oracle{
		g1:         o.g2,
		g2:         o.g1,
		n1:         o.n2,
		n2:         o.n1,
		query:      o.query,
		nodeLabels: o.nodeLabels,
		lab1:       o.lab2,
		lab2:       o.lab1,
		edgeLabels: o.edgeLabels,
		edgeOK:     o.edgeOK,
		edgeMatch:  o.edgeMatch,
		transposed: !o.transposed,
		failures:   o.failures,
	}
	t.node = make([]bool, len(o.node))
	for i := 0; i < o.n1; i++ {
		for j := 0; j < o.n2; j++ {
			t.node[j*t.n2+i] = o.node[i*o.n2+j]
		}
	}

	return t
}

// Graph1 returns the first (row) graph.
func (o *Oracle) Graph1() graph.Graph { return o.g1 }

// Graph2 returns the second (column) graph.
func (o *Oracle) Graph2() graph.Graph { return o.g2 }

// Size1 returns |G1|.
func (o *Oracle) Size1() int { return o.n1 }

// Size2 returns |G2|.
func (o *Oracle) Size2() int { return o.n2 }

// Query reports whether either graph is a wildcard query pattern.
func (o *Oracle) Query() bool { return o.query }

// Failures returns the number of nodes whose label lookup failed.
func (o *Oracle) Failures() int { return o.failures }

// Node reports whether node i of G1 may pair with node j of G2.
func (o *Oracle) Node(i, j int) bool { return o.node[i*o.n2+j] }

// Label1 returns the resolved label of node i in G1; ok is false when
// the lookup failed.
func (o *Oracle) Label1(i int) (string, bool) { return o.label(o.lab1[i]) }

// Label2 returns the resolved label of node j in G2.
func (o *Oracle) Label2(j int) (string, bool) { return o.label(o.lab2[j]) }

func (o *Oracle) label(id int) (string, bool) {
	if id == unknown {
		return "", false
	}
	return o.nodeLabels.Name(id), true
}

// Edge reports whether edge {i1,i2} of G1 and edge {j1,j2} of G2 have
// compatible labels. Both edges must exist.
func (o *Oracle) Edge(i1, i2, j1, j2 int) bool {
	l1 := o.g1.EdgeLabel(i1, i2)
	l2 := o.g2.EdgeLabel(j1, j2)
	if o.transposed {
		// Verdicts are stored in the orientation of the original graphs.
		l1, l2 = l2, l1
	}
	a, okA := o.edgeLabels.Lookup(l1)
	b, okB := o.edgeLabels.Lookup(l2)
	if !okA || !okB {
		return o.edgeMatch(l1, l2)
	}

	return o.edgeOK[a*o.edgeLabels.Len()+b]
}

// Relate classifies the candidate pairs (i1,j1) and (i2,j2).
// Callers guarantee i1≠i2 and j1≠j2.
func (o *Oracle) Relate(i1, j1, i2, j2 int) Relation {
	b1 := o.g1.HasEdge(i1, i2)
	b2 := o.g2.HasEdge(j1, j2)
	switch {
	case b1 && b2:
		if o.Edge(i1, i2, j1, j2) {
			return Bonded
		}
		return Mismatched
	case !b1 && !b2:
		return Unbonded
	default:
		return Conflict
	}
}
