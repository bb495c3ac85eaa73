package view

import (
	"github.com/cfgviz/cfgviz/pkg/cfg"
	"github.com/cfgviz/cfgviz/pkg/cfg/transform"
	"github.com/cfgviz/cfgviz/pkg/layout"
)

// Primitive is one screen-space draw instruction. The panel emits primitives
// in back-to-front order (edges, then nodes); the host draws them onto
// whatever surface it owns and never needs to understand the layout.
type Primitive interface {
	primitive()
}

// NodeBox draws one basic block: an outer rectangle, a header strip with the
// title, and the body lines below it. All rectangles are in screen space.
type NodeBox struct {
	Node cfg.NodeID

	Rect   layout.Rect
	Header layout.Rect

	Title string
	Body  []string
	Entry bool
	Exit  bool

	Selected bool
	Hovered  bool
}

func (NodeBox) primitive() {}

// EdgePath draws one routed edge as a polyline with an arrowhead at its
// target end. Class distinguishes downward edges from back-edge return arcs
// and self-loops; Kind carries the caller's branch semantics for styling.
type EdgePath struct {
	Edge cfg.EdgeID

	Class transform.EdgeClass
	Kind  cfg.BranchKind

	Points []layout.Point
	Arrow  [3]layout.Point

	Selected bool
}

func (EdgePath) primitive() {}
