package graphio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/untangle/pkg/dag"
)

type wireDAGEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type wireDAG struct {
	Nodes []string      `json:"nodes"`
	Edges []wireDAGEdge `json:"edges"`
}

// ReadDAGJSON decodes an arbitrary dependency graph (nodes plus directed
// edges, no layer assignment yet) from r. Unlike [ReadJSON], the result has
// no row/layer structure; run it through pkg/dag/transform before handing
// it to pkg/optimize.
func ReadDAGJSON(r io.Reader) (*dag.DAG, error) {
	var wire wireDAG
	if err := json.NewDecoder(r).Decode(&wire); err != nil {
		return nil, fmt.Errorf("graphio: decode dag json: %w", err)
	}

	g := dag.New(nil)
	for _, id := range wire.Nodes {
		if err := g.AddNode(dag.Node{ID: id}); err != nil {
			return nil, fmt.Errorf("graphio: add node %q: %w", id, err)
		}
	}
	for _, e := range wire.Edges {
		if err := g.AddEdge(dag.Edge{From: e.From, To: e.To}); err != nil {
			return nil, fmt.Errorf("graphio: add edge %s->%s: %w", e.From, e.To, err)
		}
	}
	return g, nil
}

// ImportDAGJSON opens path and decodes it via [ReadDAGJSON].
func ImportDAGJSON(path string) (*dag.DAG, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadDAGJSON(f)
}
