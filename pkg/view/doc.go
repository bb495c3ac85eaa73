// Package view is the interactive half of the panel: the viewport transform
// that maps layout geometry to screen space every frame, the pointer state
// machine for pan, zoom, hover, and selection, and the [Panel] that ties
// both to the layout cache.
//
// The package never owns a frame loop and never draws. A host calls
// [Panel.Frame] once per frame with the current pointer state and surface
// size, gets back an ordered list of screen-space [Primitive] values, and
// draws them with whatever technology it likes. This keeps the whole engine
// testable without a display.
package view
