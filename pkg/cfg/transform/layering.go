package transform

import "github.com/cfgviz/cfgviz/pkg/cfg"

// AssignLayers computes a layer (rank) for every node from the acyclic
// reduction described by cls: layer(n) is the longest path length from any
// reduction source (in-degree 0) to n.
//
// The traversal is Kahn's algorithm over the reduction. Every node eventually
// reaches in-degree zero because the reduction is acyclic by construction,
// so the result covers the whole graph: sources sit at layer 0 and every
// tree/forward edge points strictly downward (target layer > source layer).
// Back edges and self-loops are ignored here; the router deals with them.
//
// The queue is seeded in id order and processed FIFO, so layering is
// deterministic for a fixed graph.
func AssignLayers(g *cfg.Graph, cls Classification) []int {
	n := g.NodeCount()
	layers := make([]int, n)
	inDegree := make([]int, n)

	for _, e := range g.Edges() {
		if cls.InReduction(e.ID) {
			inDegree[e.To]++
		}
	}

	queue := make([]cfg.NodeID, 0, n)
	for i := 0; i < n; i++ {
		if inDegree[i] == 0 {
			queue = append(queue, cfg.NodeID(i))
		}
	}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, eid := range g.OutEdges(curr) {
			if !cls.InReduction(eid) {
				continue
			}
			child := g.Edge(eid).To
			if l := layers[curr] + 1; l > layers[child] {
				layers[child] = l
			}
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	return layers
}
