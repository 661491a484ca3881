package layer

import "gonum.org/v1/gonum/mat"

// groupOf returns, for each fine index, the coarse group it belongs to,
// given the sorted borders (last border == n-1) marking group ends.
func groupOf(n int, borders []int) []int {
	g := make([]int, n)
	group := 0
	for i := 0; i < n; i++ {
		g[i] = group
		if group < len(borders)-1 && i == borders[group] {
			group++
		}
	}
	return g
}

// AggregatePairwiseMatrix collapses a fine-grained N x N pairwise matrix to
// a coarser G x G matrix, where G = len(borders) and borders gives, for each
// group in increasing order, the fine index of its last member (the last
// border must equal N-1).
//
// For each fine pair (i, j) in distinct groups (gi, gj), P[j][i] is added to
// P'[gj][gi] -- the transposition matches the matmul convention of
// [PairwiseMatrix]. Same-group pairs contribute nothing because their
// antisymmetric fine entries cancel in the sum, and the diagonal is zero by
// construction.
func AggregatePairwiseMatrix(p *mat.Dense, borders []int) *mat.Dense {
	n, _ := p.Dims()
	g := len(borders)
	groups := groupOf(n, borders)

	out := mat.NewDense(g, g, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			gi, gj := groups[i], groups[j]
			if gi == gj {
				continue
			}
			out.Set(gj, gi, out.At(gj, gi)+p.At(j, i))
		}
	}
	return out
}
