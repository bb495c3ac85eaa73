// Package pkg provides the core libraries for cfgviz control-flow-graph
// visualization.
//
// # Overview
//
// Cfgviz lays out control-flow graphs as layered diagrams (basic blocks in
// ranks, branches flowing downward, loops routed as return arcs) and drives
// an interactive panel over the result. The pkg directory is organized into
// five areas:
//
//  1. [cfg] - Graph normalization (caller sources to dense id space)
//  2. [layout] - The layout pipeline (layering, ordering, coordinates, routing)
//  3. [view] - Viewport, interaction, and the per-frame panel
//  4. [style] - Visual constants and content-based node sizing
//  5. [render/dot] - Graphviz export (DOT, SVG, PNG)
//
// # Architecture
//
// The typical data flow through cfgviz:
//
//	caller graph (implements cfg.Source)
//	         ↓
//	    [cfg] package (normalize, hash)
//	         ↓
//	    [cfg/transform] package (classify edges, assign layers, split components)
//	         ↓
//	    [layout] package (order, place, route)
//	         ↓
//	    [view] package (pan/zoom/select, draw primitives per frame)
//
// # Quick Start
//
// Lay out a graph and run frames against it:
//
//	import (
//	    "github.com/cfgviz/cfgviz/pkg/layout"
//	    "github.com/cfgviz/cfgviz/pkg/view"
//	)
//
//	panel, _ := view.NewPanel(view.Options{})
//	res, err := panel.Frame(mySource, view.Input{
//	    Size:    layout.Point{X: 800, Y: 600},
//	    Pointer: pointerState,
//	})
//	for _, p := range res.Primitives {
//	    draw(p) // host-specific
//	}
//
// One-shot layout without a panel:
//
//	g, _ := cfg.Build(mySource)
//	l, _ := layout.Build(g, layout.DefaultConfig())
//
// # Main Packages
//
// [cfg] - Normalizes any caller graph representation into a dense, immutable
// index space via the [cfg.Source] capability interface, with optional
// [cfg.Describer], [cfg.Sized], and [cfg.Kinded] capabilities. Also provides
// the structural hash the panel's layout cache keys on.
//
// [cfg/transform] - Structural passes over the normalized graph: DFS edge
// classification (tree/forward/back/self-loop), longest-path layering, and
// weakly connected components.
//
// [layout] - Turns a normalized graph into drawable geometry: barycenter
// crossing reduction, coordinate assignment, and edge routing, composed per
// component. Produces immutable [layout.Layout] snapshots.
//
// [view] - The interactive half: viewport transform, pointer state machine,
// and [view.Panel], which owns the layout cache and emits screen-space draw
// primitives once per frame. Host-agnostic; the CLI's terminal canvas is one
// host.
//
// [style] - Node and edge drawing constants, and the default content-based
// node measurer.
//
// [render/dot] - DOT export and Graphviz rasterization for sharing layouts
// outside the interactive panel.
//
// [observability] - Hook registry (no-op by default) for instrumenting
// layout builds and cache behavior.
//
// [cfg]: https://pkg.go.dev/github.com/cfgviz/cfgviz/pkg/cfg
// [cfg/transform]: https://pkg.go.dev/github.com/cfgviz/cfgviz/pkg/cfg/transform
// [layout]: https://pkg.go.dev/github.com/cfgviz/cfgviz/pkg/layout
// [view]: https://pkg.go.dev/github.com/cfgviz/cfgviz/pkg/view
// [style]: https://pkg.go.dev/github.com/cfgviz/cfgviz/pkg/style
// [render/dot]: https://pkg.go.dev/github.com/cfgviz/cfgviz/pkg/render/dot
// [observability]: https://pkg.go.dev/github.com/cfgviz/cfgviz/pkg/observability
package pkg
