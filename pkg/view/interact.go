package view

import (
	"math"

	"github.com/cfgviz/cfgviz/pkg/cfg"
	"github.com/cfgviz/cfgviz/pkg/layout"
)

// NoNode marks an empty node selection or hover.
const NoNode cfg.NodeID = -1

// NoEdge marks an empty edge selection.
const NoEdge cfg.EdgeID = -1

// Pointer is the host's pointer state for one frame, in screen coordinates.
// The panel derives press and release transitions by comparing against the
// previous frame.
type Pointer struct {
	Pos    layout.Point
	Down   bool    // primary button held
	Scroll float64 // wheel steps this frame, positive zooms in
	Inside bool    // pointer within the panel; leaving cancels a pan
}

// pointerState is the interaction state machine's current mode.
type pointerState int

const (
	stateIdle pointerState = iota
	statePanning
	// statePressed covers pointer-down over a node. Nodes are not draggable
	// (the layout is read-only), so the press only arms a click.
	statePressed
)

// clickThreshold is the maximum screen-space movement between press and
// release for the gesture to still count as a click.
const clickThreshold = 4.0

// edgeHitTolerance is the maximum screen-space distance from an edge path
// at which a click selects the edge.
const edgeHitTolerance = 6.0

// ViewState is the per-panel interaction state: the viewport transform plus
// the current selection and hover. It persists across frames and across
// layout recomputation; interaction never mutates a Layout.
type ViewState struct {
	Viewport Viewport

	Selected     cfg.NodeID
	SelectedEdge cfg.EdgeID
	Hovered      cfg.NodeID

	state    pointerState
	wasDown  bool
	lastPos  layout.Point
	pressPos layout.Point
	moved    bool
}

// newViewState returns a ViewState with nothing selected and a neutral zoom.
func newViewState() ViewState {
	return ViewState{
		Viewport:     Viewport{Zoom: 1},
		Selected:     NoNode,
		SelectedEdge: NoEdge,
		Hovered:      NoNode,
	}
}

// update advances the interaction state machine by one frame against the
// given layout. Pan deltas apply incrementally while panning, so releasing
// the pointer simply stops further application; there is nothing to roll
// back. Hover tracks the pointer every frame regardless of button state.
func (vs *ViewState) update(l *layout.Layout, p Pointer, c Config) {
	if p.Scroll != 0 && p.Inside {
		vs.Viewport.ZoomAt(p.Pos, p.Scroll, c)
	}

	vs.Hovered = vs.hitNode(l, p.Pos)

	pressed := p.Down && !vs.wasDown && p.Inside
	released := !p.Down && vs.wasDown

	switch vs.state {
	case stateIdle:
		if pressed {
			vs.pressPos = p.Pos
			vs.moved = false
			if vs.hitNode(l, p.Pos) != NoNode {
				vs.state = statePressed
			} else {
				vs.state = statePanning
			}
		}

	case statePanning:
		if !p.Inside || released {
			if released && !vs.moved {
				vs.click(l, p.Pos)
			}
			vs.state = stateIdle
			break
		}
		vs.Viewport.PanBy(p.Pos.Sub(vs.lastPos))

	case statePressed:
		if !p.Inside {
			vs.state = stateIdle
			break
		}
		if released {
			if !vs.moved {
				vs.click(l, p.Pos)
			}
			vs.state = stateIdle
		}
	}

	if dist(p.Pos, vs.pressPos) > clickThreshold {
		vs.moved = true
	}
	vs.lastPos = p.Pos
	vs.wasDown = p.Down
}

// click resolves a completed click: a node under the pointer wins, then an
// edge path within tolerance, and empty space clears the selection.
func (vs *ViewState) click(l *layout.Layout, screen layout.Point) {
	if id := vs.hitNode(l, screen); id != NoNode {
		vs.Selected = id
		vs.SelectedEdge = NoEdge
		return
	}
	if id := vs.hitEdge(l, screen); id != NoEdge {
		vs.SelectedEdge = id
		vs.Selected = NoNode
		return
	}
	vs.Selected = NoNode
	vs.SelectedEdge = NoEdge
}

// hitNode returns the node whose transformed bounding box contains the
// screen point, or NoNode. Nodes never overlap, so the first hit wins.
func (vs *ViewState) hitNode(l *layout.Layout, screen layout.Point) cfg.NodeID {
	if l == nil {
		return NoNode
	}
	world := vs.Viewport.ToWorld(screen)
	for _, n := range l.Nodes() {
		if n.Bounds().Contains(world) {
			return n.ID
		}
	}
	return NoNode
}

// hitEdge returns the edge whose path passes within the hit tolerance of
// the screen point, or NoEdge. Distances are measured in screen space so
// the tolerance feels constant at every zoom.
func (vs *ViewState) hitEdge(l *layout.Layout, screen layout.Point) cfg.EdgeID {
	if l == nil {
		return NoEdge
	}
	for _, e := range l.Edges() {
		for i := 0; i+1 < len(e.Points); i++ {
			a := vs.Viewport.ToScreen(e.Points[i])
			b := vs.Viewport.ToScreen(e.Points[i+1])
			if distToSegment(screen, a, b) <= edgeHitTolerance {
				return e.ID
			}
		}
	}
	return NoEdge
}

// reconcile carries the selection over to a replacement layout. NodeIDs are
// not stable across rebuilds, so anything that no longer resolves is
// cleared rather than guessed at.
func (vs *ViewState) reconcile(l *layout.Layout) {
	if vs.Selected != NoNode && !l.Contains(vs.Selected) {
		vs.Selected = NoNode
	}
	if vs.SelectedEdge != NoEdge && int(vs.SelectedEdge) >= l.EdgeCount() {
		vs.SelectedEdge = NoEdge
	}
	vs.Hovered = NoNode
}

func dist(a, b layout.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// distToSegment returns the distance from p to the segment ab.
func distToSegment(p, a, b layout.Point) float64 {
	ab := b.Sub(a)
	lenSq := ab.X*ab.X + ab.Y*ab.Y
	if lenSq == 0 {
		return dist(p, a)
	}
	t := ((p.X-a.X)*ab.X + (p.Y-a.Y)*ab.Y) / lenSq
	t = clamp(t, 0, 1)
	return dist(p, a.Add(ab.Scale(t)))
}
