package transform

import "github.com/cfgviz/cfgviz/pkg/cfg"

// EdgeClass is the structural classification of an edge relative to the
// depth-first spanning forest of its graph.
type EdgeClass int

const (
	// EdgeTree leads to a node first discovered through this edge.
	EdgeTree EdgeClass = iota
	// EdgeForward leads to an already fully processed node that is not an
	// ancestor on the traversal stack. Cross edges fall in here too; for
	// layering purposes they behave identically.
	EdgeForward
	// EdgeBack leads to an ancestor still on the traversal stack. Back edges
	// are exactly the loop-forming edges: removing them makes the graph
	// acyclic.
	EdgeBack
	// EdgeSelfLoop connects a node to itself. Self-loops never participate
	// in layering; the router draws them as small anchored loops.
	EdgeSelfLoop
)

// String returns the lowercase name of the edge class.
func (c EdgeClass) String() string {
	switch c {
	case EdgeForward:
		return "forward"
	case EdgeBack:
		return "back"
	case EdgeSelfLoop:
		return "selfloop"
	default:
		return "tree"
	}
}

// Classification records the class of every edge in a graph. The acyclic
// reduction used by layering consists of the Tree and Forward edges only.
type Classification struct {
	Class []EdgeClass  // indexed by EdgeID
	Back  []cfg.EdgeID // back edges in discovery order
	Loops []cfg.EdgeID // self-loops in discovery order
}

// InReduction reports whether the edge participates in the acyclic reduction.
func (c Classification) InReduction(id cfg.EdgeID) bool {
	return c.Class[id] == EdgeTree || c.Class[id] == EdgeForward
}

// Classify runs a depth-first traversal from every unvisited node, in the
// graph's enumeration order, and classifies each edge by the color of its
// target: white targets yield tree edges, gray (on-stack) targets yield back
// edges, black targets yield forward edges. Self-loops are split off before
// traversal and have no effect on it.
//
// The resulting back-edge set is a feedback edge set sufficient to make the
// reduction acyclic. It is not a minimum one; DFS classification is the
// standard trade-off for drawing purposes.
func Classify(g *cfg.Graph) Classification {
	const (
		white = iota
		gray
		black
	)

	cls := Classification{Class: make([]EdgeClass, g.EdgeCount())}
	color := make([]int, g.NodeCount())

	var dfs func(id cfg.NodeID)
	dfs = func(id cfg.NodeID) {
		color[id] = gray
		for _, eid := range g.OutEdges(id) {
			e := g.Edge(eid)
			if e.To == id {
				cls.Class[eid] = EdgeSelfLoop
				cls.Loops = append(cls.Loops, eid)
				continue
			}
			switch color[e.To] {
			case white:
				cls.Class[eid] = EdgeTree
				dfs(e.To)
			case gray:
				cls.Class[eid] = EdgeBack
				cls.Back = append(cls.Back, eid)
			case black:
				cls.Class[eid] = EdgeForward
			}
		}
		color[id] = black
	}

	for _, n := range g.Nodes() {
		if color[n.ID] == white {
			dfs(n.ID)
		}
	}
	return cls
}
