package bfs

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/queues/arrayqueue"

	"github.com/asad/ReactionDecoder-sub000/graph"
)

// Sentinel errors for Components.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNodeOutOfRange is returned when a listed node is not in the graph.
	ErrNodeOutOfRange = errors.New("bfs: node out of range")
)

// walker encapsulates mutable BFS state over one induced node set.
type walker struct {
	g       graph.Graph
	within  map[int]bool
	queue   *arrayqueue.Queue
	visited map[int]bool
	order   []int
}

// Components partitions nodes into the connected components of the
// subgraph of g they induce. Components are listed in order of their
// first node in nodes; each lists its members in visit order.
func Components(g graph.Graph, nodes []int) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	within := make(map[int]bool, len(nodes))
	for _, v := range nodes {
		if v < 0 || v >= g.NodeCount() {
			return nil, fmt.Errorf("%w: %d of %d", ErrNodeOutOfRange, v, g.NodeCount())
		}
		within[v] = true
	}

	w := &walker{
		g:       g,
		within:  within,
		queue:   arrayqueue.New(),
		visited: make(map[int]bool, len(within)),
		order:   make([]int, 0, len(within)),
	}
	var out [][]int
	for _, v := range nodes {
		if w.visited[v] {
			continue
		}
		from := len(w.order)
		w.enqueue(v)
		w.loop()
		out = append(out, w.order[from:len(w.order):len(w.order)])
	}

	return out, nil
}

func (w *walker) enqueue(v int) {
	w.visited[v] = true
	w.queue.Enqueue(v)
}

// loop drains the queue, enqueuing unvisited neighbors inside the set in
// ascending order.
func (w *walker) loop() {
	for !w.queue.Empty() {
		item, _ := w.queue.Dequeue()
		v := item.(int)
		w.order = append(w.order, v)
		for _, nbr := range w.g.Neighbors(v) {
			if w.within[nbr] && !w.visited[nbr] {
				w.enqueue(nbr)
			}
		}
	}
}
