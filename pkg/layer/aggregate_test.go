package layer_test

import (
	"testing"

	"github.com/matzehuels/untangle/pkg/layer"
	"gonum.org/v1/gonum/mat"
)

func TestAggregatePairwiseMatrixScenarioS3(t *testing.T) {
	fine := mat.NewDense(4, 4, []float64{
		0, 0, 3, 0,
		0, 0, 6, 0,
		-3, -6, 0, 0,
		0, 0, 0, 0,
	})
	borders := []int{1, 2, 3}

	got := layer.AggregatePairwiseMatrix(fine, borders)

	want := [][]float64{
		{0, 9, 0},
		{-9, 0, 0},
		{0, 0, 0},
	}
	for a := range want {
		for b := range want[a] {
			if g := got.At(a, b); g != want[a][b] {
				t.Fatalf("aggregated[%d][%d] = %v, want %v", a, b, g, want[a][b])
			}
		}
	}
}
