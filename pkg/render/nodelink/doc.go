// Package nodelink renders a layered graph ordering as a Graphviz node-link
// diagram, for visually inspecting what the optimizer in pkg/optimize
// actually did to a graph's layer orderings.
//
// # Usage
//
// Convert an ordering to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(layers, edges, hierarchy, nodelink.Options{Detailed: false})
//	svg, err := nodelink.RenderSVG(dot)
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: when true, node labels include their layer and rank
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source with one rank per layer,
// nodes placed left to right in their current order, and an invisible
// ordering chain per layer so Graphviz respects that order instead of its
// own layout heuristic. When a hierarchy is supplied, the nodes of each
// layer's finest grouping level are filled with one color per group; no
// cluster box is drawn.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
