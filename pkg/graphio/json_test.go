package graphio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/untangle/pkg/graphio"
	"github.com/matzehuels/untangle/pkg/layer"
)

const sample = `{
  "layers": [["a", "b", "c"], ["d", "e"]],
  "edges": [[{"from": "a", "to": "e", "weight": 2}, {"from": "b", "to": "d"}]],
  "hierarchy": [[[2, 1]], null]
}`

func TestReadJSON(t *testing.T) {
	g, err := graphio.ReadJSON(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if len(g.Layers) != 2 || len(g.Layers[0]) != 3 || len(g.Layers[1]) != 2 {
		t.Fatalf("ReadJSON() layers = %v", g.Layers)
	}
	if len(g.Edges) != 1 || len(g.Edges[0]) != 2 {
		t.Fatalf("ReadJSON() edges = %v", g.Edges)
	}
	if g.Edges[0][0].Weight != 2 {
		t.Fatalf("ReadJSON() edge weight = %d, want 2", g.Edges[0][0].Weight)
	}
	if g.Edges[0][1].Weight != 1 {
		t.Fatalf("ReadJSON() default edge weight = %d, want 1", g.Edges[0][1].Weight)
	}
	if len(g.Hierarchy) != 2 || g.Hierarchy[1] != nil {
		t.Fatalf("ReadJSON() hierarchy = %v", g.Hierarchy)
	}

	if _, err := layer.NewGraph(g.Layers, g.Edges); err != nil {
		t.Fatalf("NewGraph() on decoded graph error = %v", err)
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	layers := []layer.Layer[string]{{"a", "b"}, {"c", "d"}}
	edges := [][]layer.Edge[string]{{{From: "a", To: "d", Weight: 3}}}

	var buf bytes.Buffer
	if err := graphio.WriteJSON(layers, edges, nil, &buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	g, err := graphio.ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON() on round trip error = %v", err)
	}
	if len(g.Layers) != 2 || g.Layers[0][0] != "a" || g.Layers[1][1] != "d" {
		t.Fatalf("round trip layers = %v", g.Layers)
	}
	if g.Edges[0][0].Weight != 3 {
		t.Fatalf("round trip edge weight = %d, want 3", g.Edges[0][0].Weight)
	}
	if g.Hierarchy != nil {
		t.Fatalf("round trip hierarchy = %v, want nil", g.Hierarchy)
	}
}

func TestReadJSONMalformed(t *testing.T) {
	if _, err := graphio.ReadJSON(strings.NewReader("not json")); err == nil {
		t.Fatal("ReadJSON() on malformed input: want error, got nil")
	}
}
