// Package pkg provides the core libraries for untangle, a crossing-minimization
// engine for layered (k-partite) graph drawings.
//
// # Overview
//
// Given an ordered sequence of node layers and the weighted edges between
// consecutive layers, untangle permutes the nodes within each layer —
// optionally respecting a hierarchical grouping that keeps certain nodes
// contiguous — to heuristically minimize the total weighted edge crossings.
//
// # Architecture
//
// The typical data flow:
//
//	Arbitrary dependency graph ([dag])
//	         ↓
//	    [dag/transform] (break cycles, assign layers)
//	         ↓
//	    [layer] (index mapping, crossing counting, pairwise matrices, hierarchy algebra)
//	         ↓
//	    [optimize] (LayoutOptimizer / HierarchyOptimizer: simulated-annealing reducer)
//	         ↓
//	    New per-layer ordering + final crossing count
//
// # Main Packages
//
// [dag] - A directed acyclic graph with row (layer) assignments, useful as a
// staging structure before an ordering problem has distinct layers.
//
// [dag/transform] - Preprocessing: [transform.BreakCycles] and
// [transform.AssignLayers] turn an arbitrary DAG into a layered one;
// [transform.ToLayers] hands that off to [layer], and [transform.InferHierarchy]
// optionally derives a sibling-based grouping using [dag/perm]'s PQ-tree.
//
// [dag/perm] - Permutation helpers ([perm.Generate], [perm.Factorial]), shown
// by the package's own examples, and
// a consecutive-ones [perm.PQTree] used by [transform.InferHierarchy] to fix
// a contiguous arrangement respecting a set of sibling groups.
//
// [layer] - The crossing-minimization primitives: index mapping, the exact
// crossing counter, the pairwise contribution matrix builder, the aggregator,
// and the hierarchy algebra.
//
// [optimize] - The two public engines built on [layer]: LayoutOptimizer (flat
// layers) and HierarchyOptimizer (layers with a nested grouping).
//
// [cache] - A pluggable result cache (file, null, or Redis-backed) for
// optimization runs keyed by a hash of the graph and annealing schedule.
//
// [render/nodelink] - Graphviz DOT export of a layered ordering, for visually
// inspecting what an optimizer run produced.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/layer/...              # Engine only
//	go test -run Example ./...           # Examples only
package pkg
