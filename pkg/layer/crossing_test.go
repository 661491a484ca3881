package layer_test

import (
	"testing"

	"github.com/matzehuels/untangle/pkg/layer"
)

func TestCountCrossingsScenarioS1(t *testing.T) {
	upper := layer.Layer[int]{0, 1, 2}
	lower := layer.Layer[int]{3, 4, 5}
	edges := []layer.Edge[int]{
		{From: 0, To: 5, Weight: 1},
		{From: 1, To: 5, Weight: 2},
		{From: 2, To: 4, Weight: 3},
	}

	mapped := layer.MapEdges(edges, layer.RankMap(upper), layer.RankMap(lower))
	got := layer.CountCrossings(len(lower), mapped)
	if got != 9 {
		t.Fatalf("CountCrossings() = %d, want 9", got)
	}
}

func TestCountCrossingsEmpty(t *testing.T) {
	if got := layer.CountCrossings(3, nil); got != 0 {
		t.Fatalf("CountCrossings(nil) = %d, want 0", got)
	}
}

func TestCountCrossingsSingleEdge(t *testing.T) {
	edges := []layer.IndexEdge{{I: 0, J: 1, Weight: 5}}
	if got := layer.CountCrossings(3, edges); got != 0 {
		t.Fatalf("CountCrossings(single edge) = %d, want 0", got)
	}
}

func TestCountTotalCrossings(t *testing.T) {
	layers := []layer.Layer[int]{
		{0, 1, 2},
		{3, 4, 5},
	}
	edges := [][]layer.Edge[int]{
		{
			{From: 0, To: 5, Weight: 1},
			{From: 1, To: 5, Weight: 2},
			{From: 2, To: 4, Weight: 3},
		},
	}

	g, err := layer.NewGraph(layers, edges)
	if err != nil {
		t.Fatalf("NewGraph() error = %v", err)
	}

	if got := layer.CountTotalCrossings(g); got != 9 {
		t.Fatalf("CountTotalCrossings() = %d, want 9", got)
	}

	upperCount, err := layer.CountLayerCrossings(g, 0)
	if err != nil {
		t.Fatalf("CountLayerCrossings(0) error = %v", err)
	}
	if upperCount != 9 {
		t.Fatalf("CountLayerCrossings(0) = %d, want 9", upperCount)
	}

	if _, err := layer.CountLayerCrossings(g, 5); err != layer.ErrInvalidLayerIndex {
		t.Fatalf("CountLayerCrossings(5) error = %v, want ErrInvalidLayerIndex", err)
	}
}
