package layer

import "gonum.org/v1/gonum/mat"

// PairwiseMatrix builds the N x N antisymmetric pair-contribution matrix for
// a swappable side of size n against a static side of size r, given the
// edges between them mapped into index space.
//
// Let W be the r x n weight matrix with W[j][a] the weight of the edge
// (a, j), or 0 if absent. Define the exclusive cumulative sums along the
// static axis:
//
//	Cf[a][j] = sum_{k<j} W[k][a]
//	Cb[a][j] = sum_{k>j} W[k][a]
//	C = Cb - Cf          (n x r)
//
// The pairwise contribution matrix is P = C * W, an n x n matrix with
// P[a][a] = 0 and P[a][b] = -P[b][a]. With a placed immediately before b,
// P[a][b] is the number of crossings that disappear when the two swap places
// so that a comes after b, over all common neighbors on the static side.
//
// The dense matmul is delegated to gonum's mat.Dense.Mul.
func PairwiseMatrix(n, r int, edges []IndexEdge) *mat.Dense {
	w := mat.NewDense(r, n, nil)
	for _, e := range edges {
		w.Set(e.J, e.I, w.At(e.J, e.I)+float64(e.Weight))
	}

	cf := mat.NewDense(n, r, nil)
	cb := mat.NewDense(n, r, nil)
	for a := 0; a < n; a++ {
		var running float64
		for j := 0; j < r; j++ {
			cf.Set(a, j, running)
			running += w.At(j, a)
		}
		running = 0
		for j := r - 1; j >= 0; j-- {
			cb.Set(a, j, running)
			running += w.At(j, a)
		}
	}

	c := mat.NewDense(n, r, nil)
	c.Sub(cb, cf)

	p := mat.NewDense(n, n, nil)
	p.Mul(c, w)
	for a := 0; a < n; a++ {
		p.Set(a, a, 0)
	}
	return p
}

// SumMatrices adds two same-shaped matrices elementwise, returning a new
// matrix. The antisymmetric property is preserved by elementwise addition of
// two antisymmetric matrices.
func SumMatrices(a, b *mat.Dense) *mat.Dense {
	r, c := a.Dims()
	sum := mat.NewDense(r, c, nil)
	sum.Add(a, b)
	return sum
}
