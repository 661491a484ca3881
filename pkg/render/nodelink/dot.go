package nodelink

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/untangle/pkg/layer"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes the layer index and rank in node labels.
	// When false, only the node ID is shown.
	Detailed bool
}

var clusterColors = []string{"#f4cccc", "#d9ead3", "#cfe2f3", "#fff2cc", "#ead1dc", "#d0e0e3"}

// ToDOT converts a layered ordering to Graphviz DOT source: one rank per
// layer, nodes left to right in their current order. If hierarchy is
// non-nil, the nodes of each layer's finest level (hierarchy[i][0]) are
// filled with one color per group from a fixed palette; no cluster box is
// drawn. A nil or empty entry leaves that layer's nodes white.
func ToDOT[T comparable](layers []layer.Layer[T], edges [][]layer.Edge[T], hierarchy [][][]int, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=18, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.3;\n\n")

	for li, l := range layers {
		writeLayer(&buf, li, l, hierarchyLevel(hierarchy, li), opts)
	}

	buf.WriteString("\n")
	for li, set := range edges {
		for _, e := range set {
			fmt.Fprintf(&buf, "  %s -> %s;\n", nodeID(li, e.From), nodeID(li+1, e.To))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func hierarchyLevel(hierarchy [][][]int, layerIndex int) []int {
	if layerIndex >= len(hierarchy) || len(hierarchy[layerIndex]) == 0 {
		return nil
	}
	return hierarchy[layerIndex][0]
}

func writeLayer[T comparable](buf *bytes.Buffer, layerIndex int, l layer.Layer[T], groupSizes []int, opts Options) {
	fmt.Fprintf(buf, "  { rank=same;\n")

	offset := 0
	groupOf := make([]int, len(l))
	for gi, size := range groupSizes {
		for i := 0; i < size; i++ {
			groupOf[offset+i] = gi
		}
		offset += size
	}

	for rank, n := range l {
		id := nodeID(layerIndex, n)
		label := fmt.Sprintf("%v", n)
		if opts.Detailed {
			label = fmt.Sprintf("%v\\nL%d R%d", n, layerIndex, rank)
		}
		attrs := fmt.Sprintf("label=%q", label)
		if len(groupSizes) > 0 {
			color := clusterColors[groupOf[rank]%len(clusterColors)]
			attrs += fmt.Sprintf(", fillcolor=%q", color)
		}
		fmt.Fprintf(buf, "    %s [%s];\n", id, attrs)
	}

	// An invisible chain forces Graphviz to respect the current left-to-right
	// order within the rank instead of its own node-ordering heuristic.
	for rank := 0; rank < len(l)-1; rank++ {
		fmt.Fprintf(buf, "    %s -> %s [style=invis];\n", nodeID(layerIndex, l[rank]), nodeID(layerIndex, l[rank+1]))
	}

	buf.WriteString("  }\n")
}

func nodeID[T comparable](layerIndex int, n T) string {
	return fmt.Sprintf("%q", fmt.Sprintf("L%d_%v", layerIndex, n))
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var out bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &out); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return out.Bytes(), nil
}
