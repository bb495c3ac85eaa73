// Package layout turns a normalized control-flow graph into drawable
// geometry: positioned basic blocks and routed edge paths.
//
// # Pipeline
//
// [Build] runs the classic layered-drawing passes in order:
//
//  1. Edge classification and layering (the transform package)
//  2. Subdivision of multi-layer edges with zero-size dummy slots
//  3. Barycenter crossing reduction, kept only when it doesn't regress
//  4. Coordinate assignment per layer, components composed side by side
//  5. Edge routing: straight segments, dummy-guided polylines, back-edge
//     return lanes, and anchored self-loops
//
// The result is an immutable [Layout] snapshot. Nothing in this package
// renders or handles input; the view package maps snapshots to screen space
// every frame.
//
// # Determinism
//
// For a fixed graph and [Config], Build is bit-for-bit reproducible: every
// pass iterates in enumeration order and breaks ties by previous position.
// The panel's cache keys layouts by the graph's structural hash and relies
// on this.
package layout
