package core

import (
	"fmt"
	"io"
	"sort"
)

// WriteDot writes the network in the Graphviz DOT language (spec.md §6):
// one boxed node per artifact labeled with its id and payload, and one
// edge per canonicalized, deduplicated, lexicographically sorted (lo, hi)
// pair.
func (n *Network) WriteDot(w io.Writer) error {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if _, err := fmt.Fprintln(w, "graph G {"); err != nil {
		return err
	}
	for id, a := range n.artifacts {
		label := fmt.Sprintf("id=%d  %s", id, a.payload)
		if _, err := fmt.Fprintf(w, "  N%d [shape=box,label=%q];\n", id, label); err != nil {
			return err
		}
	}

	type pair struct{ lo, hi int }
	seen := make(map[pair]struct{})
	var edges []pair
	for id, a := range n.artifacts {
		for nb := range a.neighbors {
			lo, hi := id, nb
			if lo > hi {
				lo, hi = hi, lo
			}
			p := pair{lo, hi}
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}
			edges = append(edges, p)
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].lo != edges[j].lo {
			return edges[i].lo < edges[j].lo
		}
		return edges[i].hi < edges[j].hi
	})
	for _, e := range edges {
		if _, err := fmt.Fprintf(w, "  N%d -- N%d;\n", e.lo, e.hi); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}
