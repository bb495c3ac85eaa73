package view

import (
	"github.com/google/uuid"

	"github.com/cfgviz/cfgviz/pkg/cfg"
	"github.com/cfgviz/cfgviz/pkg/layout"
	"github.com/cfgviz/cfgviz/pkg/observability"
	"github.com/cfgviz/cfgviz/pkg/style"
)

// Options configures a panel at construction time. Zero-value fields fall
// back to the package defaults.
type Options struct {
	Layout layout.Config
	View   Config
	Style  style.NodeStyle
}

// Panel is one interactive control-flow-graph view. It owns the layout
// cache (keyed by structural hash), the view state, and nothing else;
// rendering and the event loop belong to the host, which calls [Panel.Frame]
// once per frame. Two panels showing different graphs never interfere.
//
// Panel is not safe for concurrent use; drive it from the host's frame
// thread.
type Panel struct {
	id uuid.UUID

	layoutCfg layout.Config
	viewCfg   Config
	nodeStyle style.NodeStyle

	state   ViewState
	cache   map[string]*layout.Layout
	current *layout.Layout
	fitted  bool
}

// Input is the host's per-frame input: the drawable surface size and the
// pointer state, both in screen coordinates.
type Input struct {
	Size    layout.Point
	Pointer Pointer
}

// FrameResult is what one frame hands back to the host: the draw primitives
// in back-to-front order, the current selection and hover, and the layout
// snapshot the frame was rendered from (read-only, for stats displays).
type FrameResult struct {
	Primitives   []Primitive
	Selected     cfg.NodeID
	SelectedEdge cfg.EdgeID
	Hovered      cfg.NodeID
	Layout       *layout.Layout
}

// NewPanel validates the configuration and creates an empty panel.
// Configuration violations fail here, never inside a frame.
func NewPanel(opts Options) (*Panel, error) {
	if opts.Layout.IsZero() {
		opts.Layout = layout.DefaultConfig()
	}
	if opts.View == (Config{}) {
		opts.View = DefaultConfig()
	}
	if opts.Style == (style.NodeStyle{}) {
		opts.Style = style.Default()
	}
	if err := opts.Layout.Validate(); err != nil {
		return nil, err
	}
	if err := opts.View.Validate(); err != nil {
		return nil, err
	}
	if opts.Layout.Measure == nil {
		opts.Layout.Measure = opts.Style.Measure
	}
	return &Panel{
		id:        uuid.New(),
		layoutCfg: opts.Layout,
		viewCfg:   opts.View,
		nodeStyle: opts.Style,
		state:     newViewState(),
		cache:     make(map[string]*layout.Layout),
	}, nil
}

// ID returns the panel's instance id, useful for correlating log lines and
// hook events when several panels are alive.
func (p *Panel) ID() uuid.UUID { return p.id }

// State returns a copy of the current view state.
func (p *Panel) State() ViewState { return p.state }

// Layout returns the current layout snapshot, or nil before the first
// successful frame.
func (p *Panel) Layout() *layout.Layout { return p.current }

// SetLayoutConfig swaps the layout configuration, validating it first. The
// cache is dropped so the next frame recomputes with the new spacing.
func (p *Panel) SetLayoutConfig(c layout.Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Measure == nil {
		c.Measure = p.nodeStyle.Measure
	}
	p.layoutCfg = c
	p.cache = make(map[string]*layout.Layout)
	p.current = nil
	return nil
}

// Fit repositions the viewport so the whole drawing is visible with the
// configured margin.
func (p *Panel) Fit() {
	if p.current != nil {
		p.state.Viewport.FitToView(p.current.Bounds(), p.viewCfg)
	}
}

// ZoomBy zooms by delta steps around the screen center.
func (p *Panel) ZoomBy(delta float64) {
	p.state.Viewport.ZoomAt(p.state.Viewport.center(), delta, p.viewCfg)
}

// PanBy shifts the view by a screen-space delta, for keyboard panning.
func (p *Panel) PanBy(dx, dy float64) {
	p.state.Viewport.PanBy(layout.Point{X: dx, Y: dy})
}

// Frame runs one frame: rebuild the layout if the source's structural hash
// changed (or take it from the cache), advance the interaction state, and
// emit draw primitives.
//
// When the source is inconsistent (dangling edge) or the rebuild fails, the
// previous valid snapshot is retained and still rendered; the error is
// returned alongside so the host can surface it. The snapshot swap is
// atomic: a frame never observes a partially updated layout.
func (p *Panel) Frame(src cfg.Source, in Input) (FrameResult, error) {
	p.state.Viewport.Size = in.Size

	var buildErr error
	if g, err := cfg.Build(src); err != nil {
		buildErr = err
	} else if hash := g.StructuralHash(); p.current == nil || p.current.Hash() != hash {
		if cached, ok := p.cache[hash]; ok {
			observability.Cache().OnHit(hash)
			p.swap(cached)
		} else {
			observability.Cache().OnMiss(hash)
			if l, err := layout.Build(g, p.layoutCfg); err != nil {
				buildErr = err
			} else {
				p.cache[hash] = l
				p.swap(l)
			}
		}
	}

	p.state.update(p.current, in.Pointer, p.viewCfg)

	res := FrameResult{
		Primitives:   p.emit(),
		Selected:     p.state.Selected,
		SelectedEdge: p.state.SelectedEdge,
		Hovered:      p.state.Hovered,
		Layout:       p.current,
	}
	return res, buildErr
}

// swap installs a replacement snapshot, carrying the selection over where
// it still resolves. The first snapshot a panel ever shows is fitted to
// view; later swaps keep the user's pan and zoom.
func (p *Panel) swap(l *layout.Layout) {
	p.current = l
	p.state.reconcile(l)
	if !p.fitted {
		p.state.Viewport.FitToView(l.Bounds(), p.viewCfg)
		p.fitted = true
	}
}

// emit produces the frame's primitives: edges first, nodes on top.
func (p *Panel) emit() []Primitive {
	if p.current == nil {
		return nil
	}
	vp := &p.state.Viewport
	prims := make([]Primitive, 0, p.current.EdgeCount()+p.current.NodeCount())

	for _, e := range p.current.Edges() {
		pts := make([]layout.Point, len(e.Points))
		for i, wp := range e.Points {
			pts[i] = vp.ToScreen(wp)
		}
		prims = append(prims, EdgePath{
			Edge:     e.ID,
			Class:    e.Class,
			Kind:     e.Kind,
			Points:   pts,
			Arrow:    arrowhead(pts, p.nodeStyle.ArrowLength*vp.Zoom, p.nodeStyle.ArrowWidth*vp.Zoom),
			Selected: e.ID == p.state.SelectedEdge,
		})
	}

	for _, n := range p.current.Nodes() {
		r := vp.ScreenRect(n.Bounds())
		header := r
		header.Max.Y = header.Min.Y + p.nodeStyle.HeaderHeight*vp.Zoom
		prims = append(prims, NodeBox{
			Node:     n.ID,
			Rect:     r,
			Header:   header,
			Title:    n.Block.Title,
			Body:     n.Block.Body,
			Entry:    n.Block.Entry,
			Exit:     n.Block.Exit,
			Selected: n.ID == p.state.Selected,
			Hovered:  n.ID == p.state.Hovered,
		})
	}
	return prims
}

// arrowhead builds the triangle at the path's target end, oriented along
// the final segment. A degenerate final segment collapses the triangle onto
// the endpoint.
func arrowhead(pts []layout.Point, length, width float64) [3]layout.Point {
	tip := pts[len(pts)-1]
	prev := pts[len(pts)-2]
	d := tip.Sub(prev)
	n := dist(prev, tip)
	if n == 0 {
		return [3]layout.Point{tip, tip, tip}
	}
	dir := d.Scale(1 / n)
	perp := layout.Point{X: -dir.Y, Y: dir.X}
	base := tip.Sub(dir.Scale(length))
	return [3]layout.Point{
		tip,
		base.Add(perp.Scale(width / 2)),
		base.Sub(perp.Scale(width / 2)),
	}
}
