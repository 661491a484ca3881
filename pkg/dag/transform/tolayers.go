package transform

import (
	"sort"

	"github.com/matzehuels/untangle/pkg/dag"
	"github.com/matzehuels/untangle/pkg/layer"
)

// ToLayers derives a layer-list graph from a DAG whose rows have already
// been assigned (see [AssignLayers]), for callers that only have an
// arbitrary DAG and need the layer.Graph input [layer.NewGraph] expects.
//
// Nodes within a row are ordered by ID for a deterministic starting
// arrangement; the optimizer is free to permute them from there. Every edge
// of g is required to connect consecutive rows (see [dag.ErrNonConsecutiveRows]).
// [AssignLayers] does not guarantee this: an edge that skips a row under
// longest-path layering makes ToLayers return that error, and no
// intermediate nodes are inserted to bridge it.
func ToLayers(g *dag.DAG) ([]layer.Layer[string], [][]layer.Edge[string], error) {
	rowCount := g.MaxRow() + 1
	layers := make([]layer.Layer[string], rowCount)
	for row := 0; row < rowCount; row++ {
		ids := make([]string, 0, len(g.NodesInRow(row)))
		for _, n := range g.NodesInRow(row) {
			ids = append(ids, n.ID)
		}
		sort.Strings(ids)
		layers[row] = ids
	}

	edgeSets := make([][]layer.Edge[string], 0, rowCount-1)
	if rowCount > 1 {
		edgeSets = make([][]layer.Edge[string], rowCount-1)
	}
	for _, e := range g.Edges() {
		from, _ := g.Node(e.From)
		to, _ := g.Node(e.To)
		if to.Row != from.Row+1 {
			return nil, nil, dag.ErrNonConsecutiveRows
		}
		edgeSets[from.Row] = append(edgeSets[from.Row], layer.Edge[string]{From: e.From, To: e.To, Weight: 1})
	}

	return layers, edgeSets, nil
}
