package compat

import (
	"sort"
	"strings"

	"github.com/asad/ReactionDecoder-sub000/graph"
)

const (
	// filler pads short neighbor lists; it sorts after printable labels.
	filler = "\x7f"
	// missing stands in for a neighbor whose label lookup failed.
	missing = "\x00"
	sep     = "\x1f"
)

// signatures returns the neighbor signature of every node of g.
// label resolves interned labels; ok=false marks a failed lookup, and
// such nodes get an empty signature that never equals a real one.
func signatures(g graph.Graph, n, width int, label func(int) (string, bool)) []string {
	out := make([]string, n)
	nb := make([]string, 0, width)
	for i := 0; i < n; i++ {
		own, ok := label(i)
		if !ok {
			continue
		}
		nb = nb[:0]
		for _, k := range g.Neighbors(i) {
			l, ok := label(k)
			if !ok {
				l = missing
			}
			nb = append(nb, l)
		}
		sort.Strings(nb)
		if len(nb) > width {
			nb = nb[:width]
		}
		var b strings.Builder
		b.WriteString(own)
		for k := 0; k < width; k++ {
			b.WriteString(sep)
			if k < len(nb) {
				b.WriteString(nb[k])
			} else {
				b.WriteString(filler)
			}
		}
		out[i] = b.String()
	}

	return out
}
