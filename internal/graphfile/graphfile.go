// Package graphfile reads labeled molecular graphs from YAML.
//
// A file names its nodes by position:
//
//	name: ethanol
//	query: false
//	nodes:
//	  - label: C
//	  - label: C
//	  - label: O
//	edges:
//	  - {from: 0, to: 1, label: "1"}
//	  - {from: 1, to: 2, label: "1"}
//
// An edge without a label gets DefaultBond.
package graphfile

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/asad/ReactionDecoder-sub000/graph"
)

// MaxFileSize bounds the bytes Load will read.
const MaxFileSize = 4 << 20

// DefaultBond labels edges that omit a label.
const DefaultBond = "1"

var (
	// ErrEmptyLabel indicates a node without a label.
	ErrEmptyLabel = errors.New("graphfile: node label is empty")

	// ErrTooLarge indicates a file above MaxFileSize.
	ErrTooLarge = errors.New("graphfile: file too large")
)

// File is the YAML document layout.
type File struct {
	Name  string `yaml:"name"`
	Query bool   `yaml:"query,omitempty"`
	Nodes []Node `yaml:"nodes"`
	Edges []Edge `yaml:"edges,omitempty"`
}

// Node is one atom entry.
type Node struct {
	Label string `yaml:"label"`
}

// Edge is one bond entry between node positions.
type Edge struct {
	From  int    `yaml:"from"`
	To    int    `yaml:"to"`
	Label string `yaml:"label,omitempty"`
}

// Load reads the graph stored at path. An unnamed graph is named after
// the file.
func Load(path string) (*graph.Labeled, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	if len(data) > MaxFileSize {
		return nil, errors.Wrapf(ErrTooLarge, "%s exceeds %d bytes", path, MaxFileSize)
	}

	doc, err := parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	if doc.Name == "" {
		doc.Name = path
	}
	g, err := doc.Graph()
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}

	return g, nil
}

// Decode parses a graph document from r.
func Decode(r io.Reader) (*graph.Labeled, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read graph")
	}
	doc, err := parse(data)
	if err != nil {
		return nil, err
	}

	return doc.Graph()
}

func parse(data []byte) (File, error) {
	var doc File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return File{}, errors.Wrap(err, "decode yaml")
	}

	return doc, nil
}

// Graph validates the document and builds the labeled graph.
func (d File) Graph() (*graph.Labeled, error) {
	opts := []graph.Option{graph.WithName(d.Name)}
	if d.Query {
		opts = append(opts, graph.AsQuery())
	}
	g := graph.New(opts...)
	for i, n := range d.Nodes {
		if n.Label == "" {
			return nil, errors.Wrapf(ErrEmptyLabel, "node %d", i)
		}
		g.AddNode(n.Label)
	}
	for k, e := range d.Edges {
		label := e.Label
		if label == "" {
			label = DefaultBond
		}
		if err := g.AddEdge(e.From, e.To, label); err != nil {
			return nil, errors.Wrapf(err, "edge %d", k)
		}
	}

	return g, nil
}

// FromGraph captures g as a document, listing each edge once from its
// lower endpoint.
func FromGraph(g *graph.Labeled) (File, error) {
	d := File{Name: g.Name(), Query: g.IsQuery()}
	for i := 0; i < g.NodeCount(); i++ {
		l, err := g.Label(i)
		if err != nil {
			return File{}, errors.Wrapf(err, "node %d", i)
		}
		d.Nodes = append(d.Nodes, Node{Label: l})
	}
	for i := 0; i < g.NodeCount(); i++ {
		for _, j := range g.Neighbors(i) {
			if j > i {
				d.Edges = append(d.Edges, Edge{From: i, To: j, Label: g.EdgeLabel(i, j)})
			}
		}
	}

	return d, nil
}

// Encode writes d as YAML.
func (d File) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return errors.Wrap(err, "encode yaml")
	}

	return errors.Wrap(enc.Close(), "encode yaml")
}
