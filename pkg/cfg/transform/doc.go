// Package transform prepares a normalized control-flow graph for layered
// drawing.
//
// # Overview
//
// Control-flow graphs are cyclic by nature: every loop contributes at least
// one edge pointing against the flow direction. A layered drawing needs an
// acyclic skeleton, so this package computes one and hands the layout engine
// the data it needs:
//
//   - [Classify] labels every edge tree/forward/back/self-loop via DFS.
//     Back edges are data, not errors; the router draws them as return arcs.
//   - [AssignLayers] ranks nodes by longest path from the reduction's
//     sources, so every tree/forward edge points strictly downward.
//   - [Components] splits disconnected graphs into independently laid out
//     sub-problems.
//
// # Determinism
//
// All three functions iterate in the graph's enumeration order and use
// deterministic tie-breaking, so repeated runs over an unchanged graph
// produce identical results. The layout cache depends on this.
package transform
