package layer_test

import (
	"testing"

	"github.com/matzehuels/untangle/pkg/layer"
)

// TestReduceSimpleGraph exercises a small 4-vs-3 bipartite graph with 9
// crossings that a greedy (T=0) reducer can fully untangle within a
// handful of sweeps.
func TestReduceSimpleGraph(t *testing.T) {
	swappable := layer.Layer[int]{0, 1, 2, 10}
	static := layer.Layer[int]{3, 4, 5}
	edges := []layer.Edge[int]{
		{From: 0, To: 5, Weight: 1},
		{From: 1, To: 5, Weight: 2},
		{From: 2, To: 4, Weight: 3},
	}

	mapped := layer.MapEdges(edges, layer.RankMap(swappable), layer.RankMap(static))
	c0 := layer.CountCrossings(len(static), mapped)
	if c0 != 9 {
		t.Fatalf("initial CountCrossings() = %d, want 9", c0)
	}

	p := layer.PairwiseMatrix(len(swappable), len(static), mapped)
	perm, newCount := layer.Reduce(len(swappable), p, layer.SingleStep(0), 10, c0, nil, nil)
	if newCount != 0 {
		t.Fatalf("Reduce() crossing count = %d, want 0", newCount)
	}

	reordered := make(layer.Layer[int], len(swappable))
	for j, oldRank := range perm {
		reordered[j] = swappable[oldRank]
	}

	remapped := layer.MapEdges(edges, layer.RankMap(reordered), layer.RankMap(static))
	if got := layer.CountCrossings(len(static), remapped); got != 0 {
		t.Fatalf("recount after Reduce() = %d, want 0", got)
	}
}

func TestReduceNoOpWhenAlreadyOptimal(t *testing.T) {
	p := layer.PairwiseMatrix(3, 3, nil)
	perm, newCount := layer.Reduce(3, p, layer.SingleStep(1), 5, 0, nil, nil)
	if newCount != 0 {
		t.Fatalf("Reduce() on a zero-crossing graph = %d, want 0", newCount)
	}
	for i, v := range perm {
		if v != i {
			t.Fatalf("Reduce() permuted a graph with no crossings to improve: %v", perm)
		}
	}
}

func TestReduceRespectsBorders(t *testing.T) {
	// Two nodes whose swap would remove all crossings, but they sit across a
	// forbidden group boundary (border at index 0) so the reducer must leave
	// the count unchanged.
	swappable := layer.Layer[int]{0, 1}
	static := layer.Layer[int]{2, 3}
	edges := []layer.Edge[int]{
		{From: 0, To: 3, Weight: 1},
		{From: 1, To: 2, Weight: 1},
	}
	mapped := layer.MapEdges(edges, layer.RankMap(swappable), layer.RankMap(static))
	c0 := layer.CountCrossings(len(static), mapped)
	p := layer.PairwiseMatrix(len(swappable), len(static), mapped)

	borders := map[int]bool{0: true}
	_, newCount := layer.Reduce(len(swappable), p, layer.SingleStep(0), 5, c0, borders, nil)
	if newCount != c0 {
		t.Fatalf("Reduce() with a forbidden border changed count from %d to %d", c0, newCount)
	}
}
