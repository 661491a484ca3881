package optimize

import (
	"github.com/matzehuels/untangle/pkg/layer"
)

// HierarchyOptimizer wraps a [LayoutOptimizer] with an additional, per-layer
// nested grouping (fine to coarse) that swaps must respect: a granularity-
// aware cooldown permutes whole groups of a chosen level rather than
// individual nodes, then propagates the permutation down to every finer
// level and up to the node sequence itself.
type HierarchyOptimizer[T comparable] struct {
	layout    *LayoutOptimizer[T]
	hierarchy [][][]int
}

// NewHierarchyOptimizer validates the layout and the hierarchy: one
// hierarchy entry per layer ([layer.HierarchyMismatch] otherwise), and each
// layer's levels must sum to its node count and align with the next-finer
// level ([layer.ValidateHierarchy]). A layer with no grouping is represented
// by an empty hierarchy slice.
func NewHierarchyOptimizer[T comparable](layers []layer.Layer[T], edges [][]layer.Edge[T], hierarchy [][][]int) (*HierarchyOptimizer[T], error) {
	lo, err := NewLayoutOptimizer(layers, edges)
	if err != nil {
		return nil, err
	}
	if len(hierarchy) != len(layers) {
		return nil, &layer.HierarchyMismatch{Hierarchy: len(hierarchy), Layers: len(layers)}
	}
	for i, h := range hierarchy {
		if err := layer.ValidateHierarchy(i, len(layers[i]), h); err != nil {
			return nil, err
		}
	}

	return &HierarchyOptimizer[T]{layout: lo, hierarchy: hierarchy}, nil
}

// SetSeed reseeds the Metropolis acceptance PRNG, making subsequent Cooldown
// and Optimize calls reproducible.
func (o *HierarchyOptimizer[T]) SetSeed(seed uint64) { o.layout.SetSeed(seed) }

// CountCrossings sums crossings over every adjacent layer pair.
func (o *HierarchyOptimizer[T]) CountCrossings() int64 { return o.layout.CountCrossings() }

// CountLayerCrossings counts the crossings contributed by a single layer.
func (o *HierarchyOptimizer[T]) CountLayerCrossings(layerIndex int) (int64, error) {
	return o.layout.CountLayerCrossings(layerIndex)
}

// GetNodes returns the current per-layer ordering.
func (o *HierarchyOptimizer[T]) GetNodes() []layer.Layer[T] { return o.layout.GetNodes() }

// GetHierarchy returns the current per-layer group sizes, fine to coarse.
func (o *HierarchyOptimizer[T]) GetHierarchy() [][][]int {
	out := make([][][]int, len(o.hierarchy))
	for i, levels := range o.hierarchy {
		cp := make([][]int, len(levels))
		for j, level := range levels {
			sizes := make([]int, len(level))
			copy(sizes, level)
			cp[j] = sizes
		}
		out[i] = cp
	}
	return out
}

// SwapNodes runs a single-temperature cooldown over layerIndex. When
// granularity is nil it behaves exactly like [LayoutOptimizer.SwapNodes];
// otherwise it swaps whole groups of the chosen level.
func (o *HierarchyOptimizer[T]) SwapNodes(layerIndex int, granularity *int, maxIterations int, temperature float64) (int64, error) {
	return o.Cooldown(layerIndex, maxIterations, temperature, temperature, 1, granularity)
}

// Cooldown runs the reducer over layerIndex following a geometric schedule.
// With granularity nil, the flat layer is cooled directly. With granularity
// set, the fine-grained pairwise matrix is aggregated (§4.4-style) to that
// level's groups via the borders the finest level induces, the reducer is
// run unrestricted on the coarser matrix, and the permutation it returns is
// applied to the node sequence and every hierarchy level via
// [layer.ReorderNodeGroups] and [layer.ReorderHierarchy].
func (o *HierarchyOptimizer[T]) Cooldown(layerIndex, maxIterations int, startTemp, endTemp float64, steps int, granularity *int) (int64, error) {
	if layerIndex < 0 || layerIndex >= o.layout.graph.NumLayers() {
		return 0, layer.ErrInvalidLayerIndex
	}
	if granularity == nil {
		return o.layout.Cooldown(layerIndex, maxIterations, startTemp, endTemp, steps)
	}

	levels := o.hierarchy[layerIndex]
	g := *granularity
	if g < 0 || g >= len(levels) {
		return 0, layer.ErrInvalidLayerIndex
	}

	crossings, p := o.layout.buildPairwise(layerIndex)
	borders, err := layer.GetBorders(levels[0], levels[g])
	if err != nil {
		return 0, err
	}

	aggregated := layer.AggregatePairwiseMatrix(p, borders)
	schedule := layer.Schedule{StartTemp: startTemp, EndTemp: endTemp, Steps: steps}
	perm, newCount := layer.Reduce(len(borders), aggregated, schedule, maxIterations, crossings, nil, o.layout.rng)

	o.layout.graph.Layers[layerIndex] = layer.ReorderNodeGroups(o.layout.graph.Layers[layerIndex], levels[g], perm)
	o.hierarchy[layerIndex] = layer.ReorderHierarchy(levels, g, perm)

	return newCount, nil
}

// Optimize runs passes full sweeps over every layer. Each layer first cools
// every grouping granularity, finest to coarsest, then cools the flat layer.
// Returns the crossing count of the last flat-layer cooldown.
func (o *HierarchyOptimizer[T]) Optimize(startTemp, endTemp float64, steps, maxIterations, passes int) int64 {
	var count int64
	for pass := 0; pass < passes; pass++ {
		for i := 0; i < o.layout.graph.NumLayers(); i++ {
			for g := range o.hierarchy[i] {
				granularity := g
				_, _ = o.Cooldown(i, maxIterations, startTemp, endTemp, steps, &granularity)
			}
			count, _ = o.Cooldown(i, maxIterations, startTemp, endTemp, steps, nil)
		}
	}
	return count
}
