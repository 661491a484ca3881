package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/untangle/pkg/dag/transform"
	"github.com/matzehuels/untangle/pkg/graphio"
)

type prepareFlags struct {
	input     string
	output    string
	hierarchy bool
}

// prepareCommand creates the "prepare" command: it turns an arbitrary
// dependency DAG (nodes plus directed edges, no layer assignment) into the
// layered JSON graph the optimize and dot commands expect.
func (c *CLI) prepareCommand() *cobra.Command {
	var flags prepareFlags

	cmd := &cobra.Command{
		Use:   "prepare",
		Short: "Turn a dependency DAG into a layered graph",
		Long:  "Read a JSON dependency graph (nodes and edges with no layer assignment), break cycles, assign layers by longest path, and write the resulting layered graph.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPrepare(flags)
		},
	}

	cmd.Flags().StringVar(&flags.input, "input", "", "path to a JSON dependency graph (required)")
	cmd.Flags().StringVar(&flags.output, "output", "", "path to write the layered JSON graph (default: stdout)")
	cmd.Flags().BoolVar(&flags.hierarchy, "infer-hierarchy", false, "cluster each layer's nodes by shared parentage")
	cmd.MarkFlagRequired("input")

	return cmd
}

func (c *CLI) runPrepare(flags prepareFlags) error {
	g, err := graphio.ImportDAGJSON(flags.input)
	if err != nil {
		return fmt.Errorf("import dag: %w", err)
	}

	broken := transform.BreakCycles(g)
	if broken > 0 {
		c.Logger.Info("broke back edges", "count", broken)
	}
	transform.AssignLayers(g)

	layers, edges, err := transform.ToLayers(g)
	if err != nil {
		return fmt.Errorf("derive layers: %w", err)
	}

	var hierarchy [][][]int
	if flags.hierarchy {
		layers, hierarchy, err = transform.InferHierarchy(g, layers)
		if err != nil {
			return fmt.Errorf("infer hierarchy: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := graphio.WriteJSON(layers, edges, hierarchy, &buf); err != nil {
		return fmt.Errorf("write graph: %w", err)
	}

	if flags.output == "" {
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	}
	return os.WriteFile(flags.output, buf.Bytes(), 0o644)
}
