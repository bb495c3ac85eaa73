package layout

import (
	"time"

	"github.com/cfgviz/cfgviz/pkg/cfg"
	"github.com/cfgviz/cfgviz/pkg/cfg/transform"
	"github.com/cfgviz/cfgviz/pkg/observability"
	"github.com/cfgviz/cfgviz/pkg/style"
)

// Node is a positioned basic block in a finished layout.
type Node struct {
	ID    cfg.NodeID
	Key   string
	Block cfg.Block

	Layer     int // rank, 0 at the top of the node's component
	Order     int // position among the real nodes of its layer, left to right
	Component int

	Pos  Point // center in world space
	Size Point // width and height; never zero for real nodes
}

// Bounds returns the node's world-space rectangle.
func (n Node) Bounds() Rect { return RectAround(n.Pos, n.Size.X, n.Size.Y) }

// Edge is a routed control transfer in a finished layout. Points always
// holds at least two waypoints; straight edges have exactly two, edges that
// span several layers pass through one waypoint per crossed layer, back
// edges and self-loops carry their lane corners.
type Edge struct {
	ID    cfg.EdgeID
	From  cfg.NodeID
	To    cfg.NodeID
	Class transform.EdgeClass
	Kind  cfg.BranchKind

	Points []Point
}

// Layout is an immutable snapshot of one layout computation. It is produced
// atomically by [Build], shared read-only between the viewport, interaction
// handling, and the draw pass, and replaced wholesale when the input graph
// or configuration changes.
type Layout struct {
	nodes  []Node   // indexed by NodeID
	edges  []Edge   // indexed by EdgeID
	order  [][]cfg.NodeID
	bounds Rect
	hash   string

	crossings int
}

// NodeCount returns the number of nodes.
func (l *Layout) NodeCount() int { return len(l.nodes) }

// EdgeCount returns the number of edges.
func (l *Layout) EdgeCount() int { return len(l.edges) }

// Node returns the node with the given id. Panics if id is out of range.
func (l *Layout) Node(id cfg.NodeID) Node { return l.nodes[id] }

// Edge returns the edge with the given id. Panics if id is out of range.
func (l *Layout) Edge(id cfg.EdgeID) Edge { return l.edges[id] }

// Nodes returns all nodes in id order. Treat the slice as read-only.
func (l *Layout) Nodes() []Node { return l.nodes }

// Edges returns all edges in id order. Treat the slice as read-only.
func (l *Layout) Edges() []Edge { return l.edges }

// LayerCount returns the number of layers in the drawing, the maximum over
// all components.
func (l *Layout) LayerCount() int { return len(l.order) }

// LayerOrder returns the real nodes of one layer in left-to-right drawing
// order, spanning all components. Treat the slice as read-only.
func (l *Layout) LayerOrder(layer int) []cfg.NodeID { return l.order[layer] }

// Bounds returns the bounding box of the whole drawing. Empty layouts have
// an empty bounds rectangle.
func (l *Layout) Bounds() Rect { return l.bounds }

// Crossings returns the number of edge crossings left after crossing
// reduction, summed over all components.
func (l *Layout) Crossings() int { return l.crossings }

// Hash returns the structural hash of the graph this layout was built from.
func (l *Layout) Hash() string { return l.hash }

// Contains reports whether a node with the given id exists in this layout.
func (l *Layout) Contains(id cfg.NodeID) bool {
	return id >= 0 && int(id) < len(l.nodes)
}

// Build runs the full pipeline over a normalized graph: edge classification,
// layering, per-component crossing reduction, coordinate assignment, and
// edge routing. The graph is never mutated; all scaffolding (dummy nodes for
// multi-layer edges) stays internal to the build.
//
// Build is deterministic: an unchanged graph and config produce an identical
// snapshot. An empty graph produces a valid empty layout.
func Build(g *cfg.Graph, c Config) (*Layout, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	observability.Layout().OnBuildStart(g.NodeCount(), g.EdgeCount())

	measure := c.Measure
	if measure == nil {
		measure = style.Default().Measure
	}

	cls := transform.Classify(g)
	layers := transform.AssignLayers(g, cls)
	comps := transform.Components(g)

	l := &Layout{
		nodes: make([]Node, g.NodeCount()),
		edges: make([]Edge, g.EdgeCount()),
		hash:  g.StructuralHash(),
	}

	xOffset := 0.0
	for ci, members := range comps {
		sc := newScaffold(g, cls, layers, members, ci, measure)
		sc.reduceCrossings(c)
		l.crossings += sc.crossings
		sc.place(c)
		sc.route(c)
		sc.emit(l, xOffset)
		xOffset += sc.width + c.ComponentSpacing
	}

	l.bounds = computeBounds(l)
	observability.Layout().OnBuildComplete(g.NodeCount(), g.EdgeCount(), time.Since(start), nil)
	return l, nil
}

func computeBounds(l *Layout) Rect {
	if len(l.nodes) == 0 {
		return Rect{}
	}
	b := l.nodes[0].Bounds()
	for _, n := range l.nodes[1:] {
		nb := n.Bounds()
		b = b.expandTo(nb.Min)
		b = b.expandTo(nb.Max)
	}
	for _, e := range l.edges {
		for _, p := range e.Points {
			b = b.expandTo(p)
		}
	}
	return b
}
