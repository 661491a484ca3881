package nodelink_test

import (
	"strings"
	"testing"

	"github.com/matzehuels/untangle/pkg/layer"
	"github.com/matzehuels/untangle/pkg/render/nodelink"
)

func TestToDOTBasicStructure(t *testing.T) {
	layers := []layer.Layer[string]{{"a", "b"}, {"c", "d"}}
	edges := [][]layer.Edge[string]{
		{{From: "a", To: "d", Weight: 1}, {From: "b", To: "c", Weight: 1}},
	}

	dot := nodelink.ToDOT(layers, edges, nil, nodelink.Options{})

	if !strings.HasPrefix(dot, "digraph G {") {
		t.Fatalf("expected digraph preamble, got %q", dot[:min(40, len(dot))])
	}
	if strings.Count(dot, "rank=same") != 2 {
		t.Errorf("expected one rank=same block per layer, got: %s", dot)
	}
	if !strings.Contains(dot, `"L0_a" -> "L1_d"`) {
		t.Errorf("missing edge a->d in output: %s", dot)
	}
	if !strings.Contains(dot, `"L0_b" -> "L1_c"`) {
		t.Errorf("missing edge b->c in output: %s", dot)
	}
}

func TestToDOTClustersByHierarchy(t *testing.T) {
	layers := []layer.Layer[string]{{"a", "b", "c"}}
	hierarchy := [][][]int{{{2, 1}}}

	dot := nodelink.ToDOT(layers, nil, hierarchy, nodelink.Options{})

	if !strings.Contains(dot, "fillcolor=") {
		t.Errorf("expected hierarchy grouping to assign fill colors, got: %s", dot)
	}
}

func TestToDOTDetailedLabels(t *testing.T) {
	layers := []layer.Layer[string]{{"a"}}
	dot := nodelink.ToDOT(layers, nil, nil, nodelink.Options{Detailed: true})

	if !strings.Contains(dot, `L0 R0`) {
		t.Errorf("expected detailed label to include layer/rank, got: %s", dot)
	}
}
