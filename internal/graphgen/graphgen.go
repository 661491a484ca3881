// Package graphgen generates synthetic layered graphs for benchmarks and
// tests: a band of interleaved forward/backward edges between consecutive
// layers, with the nodes of each layer shuffled so an optimization run has
// real disorder to work with.
package graphgen

import (
	"math/rand/v2"

	"github.com/matzehuels/untangle/pkg/layer"
)

// generateEdges produces a band of unit-weight edges across a single
// n-node-wide layer pair: walk left and right cursors forward together,
// fanning out 1-2 edges onto the right cursor, then 1-3 edges from the left
// cursor, at a time, until either cursor is within k of the
// end. This mirrors the kind of sparse, locally-clustered connectivity a
// real dependency graph exhibits far better than a uniform random graph
// would.
func generateEdges(rng *rand.Rand, n int) []layer.Edge[int] {
	const k = 3
	var edges []layer.Edge[int]

	l, r := 0, 0
	for l < n-k && r < n-k {
		dl := 1 + rng.IntN(k-1)
		for i := 0; i < dl; i++ {
			edges = append(edges, layer.Edge[int]{From: l + i + 1, To: r, Weight: 1})
		}
		l += dl

		dr := 1 + rng.IntN(k)
		for i := 0; i < dr; i++ {
			edges = append(edges, layer.Edge[int]{From: l, To: r + i + 1, Weight: 1})
		}
		r += dr
	}

	return edges
}

func shuffled(rng *rand.Rand, n int) layer.Layer[int] {
	nodes := make(layer.Layer[int], n)
	for i := range nodes {
		nodes[i] = i
	}
	rng.Shuffle(n, func(i, j int) { nodes[i], nodes[j] = nodes[j], nodes[i] })
	return nodes
}

// Bipartite generates a two-layer graph of n nodes per side.
func Bipartite(rng *rand.Rand, n int) (*layer.Graph[int], error) {
	return Multipartite(rng, 2, n)
}

// Multipartite generates a graph of numLayers layers, each with n nodes,
// connected by a generated edge band between every consecutive pair.
func Multipartite(rng *rand.Rand, numLayers, n int) (*layer.Graph[int], error) {
	layers := make([]layer.Layer[int], numLayers)
	for l := range layers {
		layers[l] = shuffled(rng, n)
	}

	edges := make([][]layer.Edge[int], numLayers-1)
	for l := range edges {
		edges[l] = generateEdges(rng, n)
	}

	return layer.NewGraph(layers, edges)
}
