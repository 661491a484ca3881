package graphio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/untangle/pkg/layer"
)

type wireEdge struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Weight int    `json:"weight,omitempty"`
}

type wireGraph struct {
	Layers    [][]string     `json:"layers"`
	Edges     [][]wireEdge   `json:"edges"`
	Hierarchy [][][]int      `json:"hierarchy,omitempty"`
}

// Graph is the decoded form of a JSON layered graph: layers and edge sets
// ready for [layer.NewGraph], plus an optional per-layer hierarchy (nil
// entries mean "no grouping for this layer").
type Graph struct {
	Layers    []layer.Layer[string]
	Edges     [][]layer.Edge[string]
	Hierarchy [][][]int
}

// ReadJSON decodes a JSON layered graph from r. See the package doc for the
// exact format. ReadJSON does not validate layer/edge/hierarchy consistency;
// callers should pass the result to [layer.NewGraph] or
// [github.com/matzehuels/untangle/pkg/optimize.NewHierarchyOptimizer], which
// perform that validation.
func ReadJSON(r io.Reader) (*Graph, error) {
	var w wireGraph
	if err := json.NewDecoder(r).Decode(&w); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	layers := make([]layer.Layer[string], len(w.Layers))
	for i, l := range w.Layers {
		layers[i] = append(layer.Layer[string]{}, l...)
	}

	edges := make([][]layer.Edge[string], len(w.Edges))
	for i, set := range w.Edges {
		es := make([]layer.Edge[string], len(set))
		for j, e := range set {
			weight := e.Weight
			if weight == 0 {
				weight = 1
			}
			es[j] = layer.Edge[string]{From: e.From, To: e.To, Weight: weight}
		}
		edges[i] = es
	}

	return &Graph{Layers: layers, Edges: edges, Hierarchy: w.Hierarchy}, nil
}

// ImportJSON reads a JSON layered graph from a file at path. See [ReadJSON].
func ImportJSON(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// WriteJSON encodes layers, edges, and an optional hierarchy as JSON and
// writes the result to w, 2-space indented. A nil hierarchy is omitted
// entirely; hierarchy may also be shorter than layers if only a prefix of
// layers carries a grouping, matching what [ReadJSON] will happily decode
// back (callers that need round-trip symmetry should pad it to len(layers)
// with nil entries beforehand).
func WriteJSON(layers []layer.Layer[string], edges [][]layer.Edge[string], hierarchy [][][]int, w io.Writer) error {
	out := wireGraph{
		Layers: make([][]string, len(layers)),
		Edges:  make([][]wireEdge, len(edges)),
	}
	for i, l := range layers {
		out.Layers[i] = append([]string{}, l...)
	}
	for i, set := range edges {
		we := make([]wireEdge, len(set))
		for j, e := range set {
			we[j] = wireEdge{From: e.From, To: e.To, Weight: e.Weight}
		}
		out.Edges[i] = we
	}
	if hierarchy != nil {
		out.Hierarchy = hierarchy
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes layers, edges, and an optional hierarchy to a JSON file
// at path, creating or truncating it with 0644 permissions. See [WriteJSON].
func ExportJSON(layers []layer.Layer[string], edges [][]layer.Edge[string], hierarchy [][][]int, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(layers, edges, hierarchy, f)
}
