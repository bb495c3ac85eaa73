package view

import (
	"errors"
	"fmt"
	"math"

	"github.com/cfgviz/cfgviz/pkg/layout"
)

// ErrInvalidConfig wraps every view configuration validation failure.
var ErrInvalidConfig = errors.New("invalid view config")

// Config bounds the viewport's zoom and the margin kept around the drawing
// when fitting it to the screen.
type Config struct {
	MinZoom   float64
	MaxZoom   float64
	FitMargin float64
}

// DefaultConfig returns the stock viewport bounds: zoom 0.1 to 2.0 and a
// 24-unit fit margin.
func DefaultConfig() Config {
	return Config{MinZoom: 0.1, MaxZoom: 2.0, FitMargin: 24}
}

// Validate rejects inverted or degenerate zoom bounds up front.
func (c Config) Validate() error {
	if c.MinZoom <= 0 {
		return fmt.Errorf("%w: min zoom must be > 0, got %v", ErrInvalidConfig, c.MinZoom)
	}
	if c.MinZoom >= c.MaxZoom {
		return fmt.Errorf("%w: min zoom %v must be < max zoom %v", ErrInvalidConfig, c.MinZoom, c.MaxZoom)
	}
	if c.FitMargin < 0 {
		return fmt.Errorf("%w: fit margin must be >= 0, got %v", ErrInvalidConfig, c.FitMargin)
	}
	return nil
}

// Viewport maps world space to screen space with the affine transform
//
//	screen = (world - pan) * zoom + screenCenter
//
// Pan is the world point shown at the screen center. Size is the screen
// extent in host units (pixels or cells) and is refreshed every frame by the
// panel, so resizes keep the same world point centered.
type Viewport struct {
	Pan  layout.Point
	Zoom float64
	Size layout.Point
}

// ToScreen maps a world point to screen coordinates.
func (v *Viewport) ToScreen(w layout.Point) layout.Point {
	return w.Sub(v.Pan).Scale(v.Zoom).Add(v.center())
}

// ToWorld maps a screen point back to world coordinates.
func (v *Viewport) ToWorld(s layout.Point) layout.Point {
	return s.Sub(v.center()).Scale(1 / v.Zoom).Add(v.Pan)
}

// ScreenRect maps a world rectangle to screen coordinates.
func (v *Viewport) ScreenRect(r layout.Rect) layout.Rect {
	return layout.Rect{Min: v.ToScreen(r.Min), Max: v.ToScreen(r.Max)}
}

// FitToView positions the viewport so the given world bounds are fully
// visible with the configured margin: the bounds center lands on the screen
// center and the zoom is the largest value that fits both axes, clamped to
// the configured range. Empty bounds just reset the pan and leave a neutral
// zoom.
func (v *Viewport) FitToView(b layout.Rect, c Config) {
	v.Pan = b.Center()
	if b.Empty() {
		v.Zoom = clamp(1, c.MinZoom, c.MaxZoom)
		return
	}
	availW := v.Size.X - 2*c.FitMargin
	availH := v.Size.Y - 2*c.FitMargin
	if availW <= 0 || availH <= 0 {
		v.Zoom = c.MinZoom
		return
	}
	v.Zoom = clamp(math.Min(availW/b.Width(), availH/b.Height()), c.MinZoom, c.MaxZoom)
}

// zoomFactor is the multiplicative zoom change per scroll step.
const zoomFactor = 1.1

// ZoomAt adjusts the zoom by delta scroll steps while keeping the world
// point under the given screen position fixed on screen: the pan is solved
// so that point projects to the same screen position before and after.
func (v *Viewport) ZoomAt(cursor layout.Point, delta float64, c Config) {
	anchor := v.ToWorld(cursor)
	v.Zoom = clamp(v.Zoom*math.Pow(zoomFactor, delta), c.MinZoom, c.MaxZoom)
	v.Pan = anchor.Sub(cursor.Sub(v.center()).Scale(1 / v.Zoom))
}

// PanBy shifts the view by a screen-space delta: dragging right moves the
// world right under the cursor, so the pan moves left by delta/zoom.
func (v *Viewport) PanBy(screenDelta layout.Point) {
	v.Pan = v.Pan.Sub(screenDelta.Scale(1 / v.Zoom))
}

func (v *Viewport) center() layout.Point {
	return layout.Point{X: v.Size.X / 2, Y: v.Size.Y / 2}
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
