// Package transform provides preprocessing utilities that turn an arbitrary
// dependency DAG into a layered graph suitable for crossing minimization.
//
// # Overview
//
// The optimizer operates on graphs that are already partitioned into ordered
// layers with no back edges. Real dependency graphs rarely arrive in that
// shape, so this package supplies the transformations needed to get
// there:
//
//   - [BreakCycles] removes back edges so the graph is a true DAG.
//   - [AssignLayers] computes a row (layer index) for every node using a
//     longest-path topological traversal.
//   - [ToLayers] converts the now-layered DAG into the layer-list-plus-edge-sets
//     shape that pkg/layer and pkg/optimize operate on.
//   - [InferHierarchy] optionally clusters each layer's nodes by shared
//     parentage into a finest-level hierarchy grouping, using a
//     pkg/dag/perm PQ-tree to fix one contiguous arrangement.
//
// # Usage
//
// Run BreakCycles before AssignLayers; layering assumes acyclicity, and
// nodes caught in a cycle are never processed, so no row below them is
// pushed past them. AssignLayers does not split an edge that spans more
// than one row, and ToLayers rejects such an edge.
//
//	transform.BreakCycles(g)
//	transform.AssignLayers(g)
//	layers, edges, err := transform.ToLayers(g)
//	layers, hierarchy, err := transform.InferHierarchy(g, layers)
package transform
