package layer

// IndexEdge is an edge re-expressed in dense index space: I indexes the
// swappable-side layer, J indexes the static-side layer.
type IndexEdge struct {
	I, J, Weight int
}

// RankMap builds the id -> rank map for a layer, where rank is the node's
// position in the slice.
func RankMap[T comparable](l Layer[T]) map[T]int {
	return indexOf(l)
}

// MapEdges re-expresses edges between a swappable layer and a static layer
// as IndexEdge values, using the precomputed rank maps for each side.
//
// MapEdges assumes edges have already been validated against their declared
// layers (see [NewGraph]); it does not itself return an error for an
// out-of-map endpoint, since that would indicate caller misuse rather than
// a recoverable input error.
func MapEdges[T comparable](edges []Edge[T], swappable, static map[T]int) []IndexEdge {
	out := make([]IndexEdge, 0, len(edges))
	for _, e := range edges {
		i, ok := swappable[e.From]
		if !ok {
			continue
		}
		j, ok := static[e.To]
		if !ok {
			continue
		}
		out = append(out, IndexEdge{I: i, J: j, Weight: e.Weight})
	}
	return out
}
