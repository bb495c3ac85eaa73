package transform

import (
	"slices"

	"github.com/cfgviz/cfgviz/pkg/cfg"
)

// Components partitions the graph into weakly connected components, treating
// every edge (including back edges and self-loops) as undirected.
//
// Components are ordered by their first-seen node in the graph's enumeration
// order, and nodes within a component are listed in id order. Both orders are
// reproducible for a fixed graph, which keeps the side-by-side composition of
// disconnected sub-layouts stable.
func Components(g *cfg.Graph) [][]cfg.NodeID {
	n := g.NodeCount()
	comp := make([]int, n)
	for i := range comp {
		comp[i] = -1
	}

	var groups [][]cfg.NodeID
	for i := 0; i < n; i++ {
		if comp[i] >= 0 {
			continue
		}
		idx := len(groups)
		var members []cfg.NodeID

		stack := []cfg.NodeID{cfg.NodeID(i)}
		comp[i] = idx
		for len(stack) > 0 {
			curr := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			members = append(members, curr)

			for _, eid := range g.OutEdges(curr) {
				if to := g.Edge(eid).To; comp[to] < 0 {
					comp[to] = idx
					stack = append(stack, to)
				}
			}
			for _, eid := range g.InEdges(curr) {
				if from := g.Edge(eid).From; comp[from] < 0 {
					comp[from] = idx
					stack = append(stack, from)
				}
			}
		}

		// DFS discovery order is traversal-dependent; normalize to id order.
		slices.Sort(members)
		groups = append(groups, members)
	}
	return groups
}
