// Package style holds the visual constants for drawing basic blocks and
// edges, and derives node sizes from block content when the caller supplies
// no explicit hint.
//
// Styling is deliberately dumb data: the layout engine consumes only the
// sizing side ([NodeStyle.Measure]); everything else is read by whatever
// host adapter draws the primitives. Loading themes from disk is the host's
// business, not this package's.
package style

import "github.com/cfgviz/cfgviz/pkg/cfg"

// NodeStyle describes how a basic block is drawn: a header strip with the
// title, a padded body with the code lines, and an outline.
type NodeStyle struct {
	// Width is the fixed block width. Height is derived from content.
	Width float64

	// PaddingX and PaddingY inset the body text from the block border.
	PaddingX float64
	PaddingY float64

	// HeaderHeight is the height of the title strip.
	HeaderHeight float64

	// LineHeight is the height of one body line of monospace text.
	LineHeight float64

	// Rounding is the corner radius of the block rectangle.
	Rounding float64

	// ArrowLength and ArrowWidth size the arrowheads on edge ends.
	ArrowLength float64
	ArrowWidth  float64
}

// Default returns the stock style: a 260-unit wide block with a title header
// and monospace body sized at 12pt metrics.
func Default() NodeStyle {
	return NodeStyle{
		Width:        260,
		PaddingX:     8,
		PaddingY:     4,
		HeaderHeight: 22,
		LineHeight:   15,
		Rounding:     3,
		ArrowLength:  10,
		ArrowWidth:   6,
	}
}

// Measure derives a block's drawn size from its content: the fixed style
// width, and header plus padded body height, one line per body line. Blocks
// with an empty body still get one line of height so they remain clickable.
func (s NodeStyle) Measure(b cfg.Block) (w, h float64) {
	lines := len(b.Body)
	if lines == 0 {
		lines = 1
	}
	return s.Width, s.HeaderHeight + 2*s.PaddingY + float64(lines)*s.LineHeight
}
