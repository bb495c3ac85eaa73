// Package cfg normalizes a caller's control-flow graph into the integer
// index space the layout engine works on.
//
// # Overview
//
// The layout engine never depends on how a caller stores its graph. Any
// representation that can enumerate node keys and, per node, enumerate
// outgoing edge targets satisfies the [Source] capability and can be
// normalized with [Build]. The resulting [Graph] owns a dense NodeID/EdgeID
// space assigned in enumeration order, which makes every downstream pass
// reproducible for a fixed source.
//
// Optional capabilities enrich the graph without widening the contract:
// [Describer] supplies block titles and body lines, [Sized] supplies explicit
// node dimensions, and [Kinded] supplies the semantic branch kind of each
// transfer (taken, fall-through, unconditional).
//
// # Errors
//
// Build fails as a whole when the source is inconsistent: a successor key
// outside the enumerated node set yields a *[DanglingEdgeError], and a
// repeated key yields [ErrDuplicateNode]. An empty enumeration is not an
// error; it produces a valid empty graph.
//
// # Crossing counting
//
// [CountLayerCrossings] counts edge crossings between two adjacent layers
// with a Fenwick tree in O(E log V). The ordering pass evaluates every sweep
// against this count, so the counter takes a reusable [CrossingWorkspace] to
// stay allocation-free.
//
// # Related Packages
//
// The [transform] subpackage classifies edges (tree/forward/back/self-loop),
// assigns layers, and splits the graph into connected components. The layout
// package consumes both to produce drawable geometry.
//
// [transform]: github.com/cfgviz/cfgviz/pkg/cfg/transform
package cfg
