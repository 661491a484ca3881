// Package graphio provides JSON import and export for layered graphs.
//
// # Overview
//
// Untangle uses a simple JSON format as its interchange format for graphs
// with a fixed layer assignment and weighted inter-layer edges, optionally
// carrying a nested, contiguous grouping (a hierarchy) per layer. This
// allows:
//
//   - Feeding externally-produced layered graphs into the optimizer
//   - Round-trip preservation of an ordering found by a previous run
//   - Caching an optimized ordering for reuse by later invocations
//
// # JSON Format
//
//	{
//	  "layers": [["a", "b", "c"], ["d", "e"]],
//	  "edges": [
//	    [{"from": "a", "to": "e", "weight": 2}, {"from": "b", "to": "d"}]
//	  ],
//	  "hierarchy": [
//	    [[2, 1]],
//	    null
//	  ]
//	}
//
// "layers" is an ordered list of layers, each an ordered list of distinct
// node identifiers; a node's position is its rank within the layer.
// "edges" has one entry per consecutive layer pair (len(layers)-1 entries),
// each an array of {from, to, weight} objects; weight defaults to 1 if
// omitted. "hierarchy", if present, has one entry per layer: either null (no
// grouping) or a list of levels from finest to coarsest, each a list of
// group sizes summing to that layer's node count.
//
// # Import
//
// Use [ImportJSON] to read a graph from a file path, or [ReadJSON] to read
// from any io.Reader. Both return the decoded layers, edges, and hierarchy
// ready to pass to [github.com/matzehuels/untangle/pkg/optimize.NewLayoutOptimizer]
// or [github.com/matzehuels/untangle/pkg/optimize.NewHierarchyOptimizer].
//
// # Export
//
// Use [ExportJSON] to write an ordering to a file, or [WriteJSON] to write
// to any io.Writer.
//
// # DAG input
//
// A caller that only has an arbitrary dependency DAG (nodes and directed
// edges, no layer assignment) can decode it with [ReadDAGJSON] or
// [ImportDAGJSON], then derive a layered graph via
// [github.com/matzehuels/untangle/pkg/dag/transform].
package graphio
