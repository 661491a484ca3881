package transform

import (
	"sort"
	"strings"

	"github.com/matzehuels/untangle/pkg/dag"
	"github.com/matzehuels/untangle/pkg/dag/perm"
	"github.com/matzehuels/untangle/pkg/layer"
)

// InferHierarchy derives a finest-level grouping for each layer of an
// already-layered DAG by clustering nodes that share an identical direct
// parent set: siblings under the same parents are natural candidates to
// stay visually adjacent once the optimizer reorders the layer.
//
// For each layer, the candidate groups are encoded as consecutive-ones
// constraints on a [perm.PQTree] over the layer's current node order. Since
// the groups are disjoint by construction the constraints are always
// jointly satisfiable; InferHierarchy uses the tree only to fix one
// concrete contiguous arrangement (via Enumerate), then reports that
// arrangement's group sizes as the finest hierarchy level. A layer whose
// grouping is trivial (everything shares one signature, or every node is
// its own group) gets an empty hierarchy entry, since neither grouping
// carries a constraint.
//
// The returned layers are reordered to match the inferred grouping; the
// original layers slice is left untouched.
func InferHierarchy(g *dag.DAG, layers []layer.Layer[string]) ([]layer.Layer[string], [][][]int, error) {
	outLayers := make([]layer.Layer[string], len(layers))
	hierarchy := make([][][]int, len(layers))

	for i, l := range layers {
		reordered, sizes, ok := inferLayerGroups(g, l)
		if !ok {
			outLayers[i] = l
			hierarchy[i] = nil
			continue
		}
		outLayers[i] = reordered
		hierarchy[i] = [][]int{sizes}
	}

	return outLayers, hierarchy, nil
}

// inferLayerGroups groups l's nodes by parent signature and asks a PQ-tree
// for one contiguous arrangement respecting every group. ok is false when
// grouping would be trivial (every node its own group, or a single group
// spanning the whole layer).
func inferLayerGroups(g *dag.DAG, l layer.Layer[string]) (layer.Layer[string], []int, bool) {
	n := len(l)
	signature := make(map[string]string, n)
	order := make(map[string]int, n)
	for idx, id := range l {
		order[id] = idx
		signature[id] = parentSignature(g, id)
	}

	groups := make(map[string][]int)
	for idx, id := range l {
		sig := signature[id]
		groups[sig] = append(groups[sig], idx)
	}
	if len(groups) <= 1 || len(groups) == n {
		return nil, nil, false
	}

	tree := perm.NewPQTree(n)
	for _, indices := range groups {
		if len(indices) > 1 && !tree.Reduce(indices) {
			return nil, nil, false
		}
	}

	arrangements := tree.Enumerate(1)
	if len(arrangements) == 0 {
		return nil, nil, false
	}

	permIdx := arrangements[0]
	reordered := make(layer.Layer[string], n)
	for pos, origIdx := range permIdx {
		reordered[pos] = l[origIdx]
	}

	sizes := groupSizesInOrder(reordered, signature)
	return reordered, sizes, true
}

// parentSignature builds a stable string key identifying id's direct
// parent set, independent of parent discovery order.
func parentSignature(g *dag.DAG, id string) string {
	parents := g.Parents(id)
	sorted := append([]string(nil), parents...)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}

// groupSizesInOrder scans nodes in their new order and reports the size of
// each maximal run of nodes sharing the same signature.
func groupSizesInOrder(nodes layer.Layer[string], signature map[string]string) []int {
	var sizes []int
	for i := 0; i < len(nodes); {
		j := i + 1
		for j < len(nodes) && signature[nodes[j]] == signature[nodes[i]] {
			j++
		}
		sizes = append(sizes, j-i)
		i = j
	}
	return sizes
}
