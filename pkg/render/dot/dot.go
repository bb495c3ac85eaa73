// Package dot exports a laid-out control-flow graph to Graphviz DOT and
// rasterizes it to SVG or PNG. It exists for sharing and diffing layouts
// outside the interactive panel; the panel itself never touches Graphviz.
package dot

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/cfgviz/cfgviz/pkg/cfg"
	"github.com/cfgviz/cfgviz/pkg/cfg/transform"
	"github.com/cfgviz/cfgviz/pkg/layout"
)

// branchColors styles edges by their semantic branch kind, the palette
// disassembler UIs usually use: green taken, red fall-through, grey
// unconditional.
var branchColors = map[cfg.BranchKind]string{
	cfg.BranchTaken:         "darkgreen",
	cfg.BranchFallThrough:   "firebrick",
	cfg.BranchUnconditional: "gray30",
}

// ToDOT converts a layout snapshot to Graphviz DOT. Node bodies become
// left-aligned label lines, back edges are drawn with constraint=false so
// Graphviz's own ranking mirrors the snapshot's layering, and branch kinds
// map to edge colors.
func ToDOT(l *layout.Layout) string {
	var buf bytes.Buffer
	buf.WriteString("digraph cfg {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"monospace\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, n := range l.Nodes() {
		fmt.Fprintf(&buf, "  %q [label=%q%s];\n", n.Key, fmtLabel(n), fmtNodeAttrs(n))
	}

	buf.WriteString("\n")
	for _, e := range l.Edges() {
		from := l.Node(e.From).Key
		to := l.Node(e.To).Key
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", from, to, strings.Join(fmtEdgeAttrs(e), ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n layout.Node) string {
	if len(n.Block.Body) == 0 {
		return n.Block.Title
	}
	// \l left-aligns each line in Graphviz box labels.
	return n.Block.Title + "\\l" + strings.Join(n.Block.Body, "\\l") + "\\l"
}

func fmtNodeAttrs(n layout.Node) string {
	switch {
	case n.Block.Entry:
		return ", color=darkgreen, penwidth=2"
	case n.Block.Exit:
		return ", color=firebrick, penwidth=2"
	default:
		return ""
	}
}

func fmtEdgeAttrs(e layout.Edge) []string {
	attrs := []string{fmt.Sprintf("color=%s", branchColors[e.Kind])}
	switch e.Class {
	case transform.EdgeBack:
		// Keep Graphviz from ranking against the loop edge.
		attrs = append(attrs, "constraint=false", "style=dashed")
	case transform.EdgeSelfLoop:
		attrs = append(attrs, "constraint=false")
	}
	return attrs
}

// RenderSVG rasterizes a DOT string to SVG via Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return render(dot, graphviz.SVG)
}

// RenderPNG rasterizes a DOT string to PNG via Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return render(dot, graphviz.PNG)
}

func render(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
