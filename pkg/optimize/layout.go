// Package optimize provides the two public engines built on pkg/layer:
// [LayoutOptimizer] for flat layered graphs, and [HierarchyOptimizer] for
// graphs whose layers carry a nested, contiguous grouping that must be
// preserved across swaps.
package optimize

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/matzehuels/untangle/pkg/layer"
)

// LayoutOptimizer holds a layered graph and permutes each layer in place to
// reduce the total weighted crossing count.
type LayoutOptimizer[T comparable] struct {
	graph    *layer.Graph[T]
	inverted [][]layer.Edge[T]
	rng      *rand.Rand
}

// NewLayoutOptimizer validates layers and edges and returns a ready
// optimizer. See [layer.NewGraph] for the validation rules and errors. The
// Metropolis acceptance draws use a PRNG with a fixed default seed, so every
// optimizer repeats the same draws until [LayoutOptimizer.SetSeed] is called
// with a different seed.
func NewLayoutOptimizer[T comparable](layers []layer.Layer[T], edges [][]layer.Edge[T]) (*LayoutOptimizer[T], error) {
	g, err := layer.NewGraph(layers, edges)
	if err != nil {
		return nil, err
	}

	inverted := make([][]layer.Edge[T], len(edges))
	for i, set := range edges {
		inverted[i] = layer.InvertEdges(set)
	}

	return &LayoutOptimizer[T]{graph: g, inverted: inverted, rng: rand.New(rand.NewPCG(1, 1))}, nil
}

// SetSeed reseeds the Metropolis acceptance PRNG, making subsequent Cooldown
// and Optimize calls reproducible.
func (o *LayoutOptimizer[T]) SetSeed(seed uint64) {
	o.rng = rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// CountCrossings sums crossings over every adjacent layer pair.
func (o *LayoutOptimizer[T]) CountCrossings() int64 {
	return layer.CountTotalCrossings(o.graph)
}

// CountLayerCrossings counts the crossings contributed by a single layer
// against its neighbor(s).
func (o *LayoutOptimizer[T]) CountLayerCrossings(layerIndex int) (int64, error) {
	return layer.CountLayerCrossings(o.graph, layerIndex)
}

// GetNodes returns the current per-layer ordering.
func (o *LayoutOptimizer[T]) GetNodes() []layer.Layer[T] {
	out := make([]layer.Layer[T], len(o.graph.Layers))
	for i, l := range o.graph.Layers {
		cp := make(layer.Layer[T], len(l))
		copy(cp, l)
		out[i] = cp
	}
	return out
}

// buildPairwise builds the pairwise contribution matrix for layerIndex,
// summing both neighbor contributions when it is an interior layer.
func (o *LayoutOptimizer[T]) buildPairwise(layerIndex int) (int64, *mat.Dense) {
	here := layer.RankMap(o.graph.Layers[layerIndex])
	n := len(o.graph.Layers[layerIndex])

	var crossings int64
	var p *mat.Dense

	if layerIndex > 0 {
		upper := o.graph.Layers[layerIndex-1]
		upperRank := layer.RankMap(upper)
		mapped := layer.MapEdges(o.inverted[layerIndex-1], here, upperRank)
		crossings += layer.CountCrossings(len(upper), mapped)
		p = layer.PairwiseMatrix(n, len(upper), mapped)
	}
	if layerIndex < o.graph.NumLayers()-1 {
		lower := o.graph.Layers[layerIndex+1]
		lowerRank := layer.RankMap(lower)
		mapped := layer.MapEdges(o.graph.Edges[layerIndex], here, lowerRank)
		crossings += layer.CountCrossings(len(lower), mapped)
		q := layer.PairwiseMatrix(n, len(lower), mapped)
		if p == nil {
			p = q
		} else {
			p = layer.SumMatrices(p, q)
		}
	}
	return crossings, p
}

// SwapNodes runs a single-temperature cooldown (§4.6 with a one-step
// schedule) over layerIndex and applies the resulting permutation.
func (o *LayoutOptimizer[T]) SwapNodes(layerIndex, maxIterations int, temperature float64) (int64, error) {
	return o.Cooldown(layerIndex, maxIterations, temperature, temperature, 1)
}

// Cooldown runs the reducer over layerIndex following a geometric schedule
// from startTemp to endTemp across steps, and writes the resulting
// permutation back into the layer.
func (o *LayoutOptimizer[T]) Cooldown(layerIndex, maxIterations int, startTemp, endTemp float64, steps int) (int64, error) {
	if layerIndex < 0 || layerIndex >= o.graph.NumLayers() {
		return 0, layer.ErrInvalidLayerIndex
	}

	crossings, p := o.buildPairwise(layerIndex)
	schedule := layer.Schedule{StartTemp: startTemp, EndTemp: endTemp, Steps: steps}
	perm, newCount := layer.Reduce(len(o.graph.Layers[layerIndex]), p, schedule, maxIterations, crossings, nil, o.rng)

	o.graph.Layers[layerIndex] = applyPermutation(o.graph.Layers[layerIndex], perm)
	return newCount, nil
}

// Optimize runs passes full sweeps over every layer, each layer cooling from
// startTemp to endTemp across steps with up to maxIterations sweeps per
// step, and returns the crossing count of the last layer cooled.
func (o *LayoutOptimizer[T]) Optimize(startTemp, endTemp float64, steps, maxIterations, passes int) int64 {
	var count int64
	for pass := 0; pass < passes; pass++ {
		for i := 0; i < o.graph.NumLayers(); i++ {
			count, _ = o.Cooldown(i, maxIterations, startTemp, endTemp, steps)
		}
	}
	return count
}

// applyPermutation reorders a layer according to perm, where perm[j] gives
// the old rank of the node now occupying position j.
func applyPermutation[T comparable](l layer.Layer[T], perm []int) layer.Layer[T] {
	out := make(layer.Layer[T], len(l))
	for j, oldRank := range perm {
		out[j] = l[oldRank]
	}
	return out
}
