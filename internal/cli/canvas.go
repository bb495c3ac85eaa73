package cli

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cfgviz/cfgviz/pkg/cfg"
	"github.com/cfgviz/cfgviz/pkg/layout"
	"github.com/cfgviz/cfgviz/pkg/view"
)

// canvas rasterizes screen-space draw primitives into a grid of styled
// terminal cells. The viewport is sized in columns and rows, so screen
// coordinates map one-to-one onto cells.
type canvas struct {
	w, h   int
	runes  []rune
	styles []*lipgloss.Style
}

func newCanvas(w, h int) *canvas {
	c := &canvas{
		w:      w,
		h:      h,
		runes:  make([]rune, w*h),
		styles: make([]*lipgloss.Style, w*h),
	}
	for i := range c.runes {
		c.runes[i] = ' '
	}
	return c
}

// set places a styled rune, ignoring out-of-bounds coordinates so callers
// never need to clip.
func (c *canvas) set(x, y int, r rune, st *lipgloss.Style) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	c.runes[y*c.w+x] = r
	c.styles[y*c.w+x] = st
}

// draw rasterizes the primitives in order, so later ones occlude earlier
// ones. The panel already emits edges before nodes.
func (c *canvas) draw(prims []view.Primitive) {
	for _, p := range prims {
		switch p := p.(type) {
		case view.EdgePath:
			c.drawEdge(p)
		case view.NodeBox:
			c.drawNode(p)
		}
	}
}

// String renders the grid. Rows are joined with newlines; styled cells are
// wrapped individually.
func (c *canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			r := c.runes[y*c.w+x]
			if st := c.styles[y*c.w+x]; st != nil {
				b.WriteString(st.Render(string(r)))
			} else {
				b.WriteRune(r)
			}
		}
		if y < c.h-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// =============================================================================
// Edges
// =============================================================================

func (c *canvas) drawEdge(e view.EdgePath) {
	st := edgeStyle(e)
	for i := 1; i < len(e.Points); i++ {
		c.drawSegment(e.Points[i-1], e.Points[i], st)
	}
	if n := len(e.Points); n >= 2 {
		tip := e.Points[n-1]
		c.set(cell(tip.X), cell(tip.Y), arrowRune(e.Points[n-2], tip), st)
	}
}

func edgeStyle(e view.EdgePath) *lipgloss.Style {
	if e.Selected {
		return &styleEdgeSelected
	}
	switch e.Kind {
	case cfg.BranchTaken:
		return &styleEdgeTaken
	case cfg.BranchFallThrough:
		return &styleEdgeFall
	default:
		return &styleEdgePlain
	}
}

// drawSegment draws a straight run of cells between two points (Bresenham),
// picking line runes from the segment's direction.
func (c *canvas) drawSegment(a, b layout.Point, st *lipgloss.Style) {
	x0, y0 := cell(a.X), cell(a.Y)
	x1, y1 := cell(b.X), cell(b.Y)

	r := '·'
	switch {
	case y0 == y1:
		r = '─'
	case x0 == x1:
		r = '│'
	case (x1 > x0) == (y1 > y0):
		r = '╲'
	default:
		r = '╱'
	}

	dx, sx := absDelta(x0, x1)
	dy, sy := absDelta(y0, y1)
	dy = -dy
	err := dx + dy
	for {
		c.set(x0, y0, r, st)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// arrowRune picks the arrowhead for the final segment's dominant direction.
func arrowRune(from, to layout.Point) rune {
	dx := to.X - from.X
	dy := to.Y - from.Y
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return '▶'
		}
		return '◀'
	}
	if dy > 0 {
		return '▼'
	}
	return '▲'
}

// =============================================================================
// Nodes
// =============================================================================

func (c *canvas) drawNode(n view.NodeBox) {
	x0, y0 := cell(n.Rect.Min.X), cell(n.Rect.Min.Y)
	x1, y1 := cell(n.Rect.Max.X), cell(n.Rect.Max.Y)
	border := nodeStyle(n)

	if x1-x0 < 2 || y1-y0 < 2 {
		// Too small for a box at this zoom; mark the spot.
		c.set(x0, y0, '▪', border)
		return
	}

	// Interior first, so the fill cannot overwrite the border or text.
	for y := y0 + 1; y < y1; y++ {
		for x := x0 + 1; x < x1; x++ {
			c.set(x, y, ' ', nil)
		}
	}

	c.set(x0, y0, '╭', border)
	c.set(x1, y0, '╮', border)
	c.set(x0, y1, '╰', border)
	c.set(x1, y1, '╯', border)
	for x := x0 + 1; x < x1; x++ {
		c.set(x, y0, '─', border)
		c.set(x, y1, '─', border)
	}
	for y := y0 + 1; y < y1; y++ {
		c.set(x0, y, '│', border)
		c.set(x1, y, '│', border)
	}

	inner := x1 - x0 - 3
	c.drawText(x0+2, y0+1, n.Title, inner, &styleNodeTitle)

	row := y0 + 2
	if len(n.Body) > 0 && row < y1 {
		c.set(x0, row, '├', border)
		c.set(x1, row, '┤', border)
		for x := x0 + 1; x < x1; x++ {
			c.set(x, row, '─', border)
		}
		row++
	}
	for _, line := range n.Body {
		if row >= y1 {
			break
		}
		c.drawText(x0+2, row, line, inner, &styleNodeBody)
		row++
	}
}

func nodeStyle(n view.NodeBox) *lipgloss.Style {
	switch {
	case n.Selected:
		return &styleNodeSelected
	case n.Hovered:
		return &styleNodeHovered
	case n.Entry:
		return &styleNodeEntry
	case n.Exit:
		return &styleNodeExit
	default:
		return &styleNodeBorder
	}
}

// drawText writes s starting at (x, y), truncated to width with an ellipsis.
func (c *canvas) drawText(x, y int, s string, width int, st *lipgloss.Style) {
	if width <= 0 {
		return
	}
	runes := []rune(s)
	if len(runes) > width {
		runes = append(runes[:width-1], '…')
	}
	for i, r := range runes {
		c.set(x+i, y, r, st)
	}
}

// =============================================================================
// Helpers
// =============================================================================

// cell rounds a screen coordinate to its cell index.
func cell(v float64) int {
	return int(math.Floor(v + 0.5))
}

func absDelta(a, b int) (d, step int) {
	if b >= a {
		return b - a, 1
	}
	return a - b, -1
}
