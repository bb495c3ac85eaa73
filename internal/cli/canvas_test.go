package cli

import (
	"strings"
	"testing"

	"github.com/cfgviz/cfgviz/pkg/layout"
	"github.com/cfgviz/cfgviz/pkg/view"
)

func plainRow(c *canvas, y int) string {
	row := make([]rune, c.w)
	copy(row, c.runes[y*c.w:(y+1)*c.w])
	return string(row)
}

func TestCanvas_DrawNodeBox(t *testing.T) {
	c := newCanvas(20, 10)
	c.draw([]view.Primitive{view.NodeBox{
		Rect:  layout.Rect{Min: layout.Point{X: 1, Y: 1}, Max: layout.Point{X: 14, Y: 7}},
		Title: "entry:",
		Body:  []string{"push rbp"},
	}})

	top := plainRow(c, 1)
	if !strings.Contains(top, "╭") || !strings.Contains(top, "╮") {
		t.Errorf("top border missing corners: %q", top)
	}
	if !strings.Contains(plainRow(c, 2), "entry:") {
		t.Errorf("title row missing: %q", plainRow(c, 2))
	}
	if !strings.Contains(plainRow(c, 3), "├") {
		t.Errorf("header separator missing: %q", plainRow(c, 3))
	}
	if !strings.Contains(plainRow(c, 4), "push rbp") {
		t.Errorf("body row missing: %q", plainRow(c, 4))
	}
	bottom := plainRow(c, 7)
	if !strings.Contains(bottom, "╰") || !strings.Contains(bottom, "╯") {
		t.Errorf("bottom border missing corners: %q", bottom)
	}
}

func TestCanvas_TinyNodeCollapses(t *testing.T) {
	c := newCanvas(10, 5)
	c.draw([]view.Primitive{view.NodeBox{
		Rect: layout.Rect{Min: layout.Point{X: 2, Y: 2}, Max: layout.Point{X: 3, Y: 2}},
	}})

	if !strings.Contains(plainRow(c, 2), "▪") {
		t.Errorf("tiny node should collapse to a marker: %q", plainRow(c, 2))
	}
}

func TestCanvas_TruncatesLongTitle(t *testing.T) {
	c := newCanvas(12, 6)
	c.draw([]view.Primitive{view.NodeBox{
		Rect:  layout.Rect{Min: layout.Point{X: 0, Y: 0}, Max: layout.Point{X: 9, Y: 4}},
		Title: "a_very_long_block_name",
	}})

	if !strings.Contains(plainRow(c, 1), "…") {
		t.Errorf("long title should be truncated with an ellipsis: %q", plainRow(c, 1))
	}
}

func TestCanvas_DrawEdgeWithArrow(t *testing.T) {
	c := newCanvas(10, 10)
	c.draw([]view.Primitive{view.EdgePath{
		Points: []layout.Point{{X: 4, Y: 1}, {X: 4, Y: 8}},
	}})

	if !strings.Contains(plainRow(c, 4), "│") {
		t.Errorf("vertical edge run missing: %q", plainRow(c, 4))
	}
	if !strings.Contains(plainRow(c, 8), "▼") {
		t.Errorf("downward arrowhead missing: %q", plainRow(c, 8))
	}
}

func TestCanvas_OutOfBoundsIsSafe(t *testing.T) {
	c := newCanvas(5, 5)
	c.draw([]view.Primitive{
		view.EdgePath{Points: []layout.Point{{X: -20, Y: -20}, {X: 30, Y: 30}}},
		view.NodeBox{Rect: layout.Rect{Min: layout.Point{X: -10, Y: -10}, Max: layout.Point{X: 40, Y: 40}}},
	})
	// Drawing clipped primitives must not panic; rendering still works.
	if got := c.String(); len(strings.Split(got, "\n")) != 5 {
		t.Errorf("String() rows = %d, want 5", len(strings.Split(got, "\n")))
	}
}

func TestCanvas_NodesOccludeEdges(t *testing.T) {
	c := newCanvas(20, 10)
	c.draw([]view.Primitive{
		view.EdgePath{Points: []layout.Point{{X: 5, Y: 0}, {X: 5, Y: 9}}},
		view.NodeBox{Rect: layout.Rect{Min: layout.Point{X: 2, Y: 3}, Max: layout.Point{X: 12, Y: 6}}},
	})

	// Inside the box the edge must be covered.
	interior := []rune(plainRow(c, 4))[3:12]
	if strings.ContainsRune(string(interior), '│') {
		t.Errorf("edge visible through node interior: %q", plainRow(c, 4))
	}
}
