package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/untangle/pkg/graphio"
	"github.com/matzehuels/untangle/pkg/render/nodelink"
)

type dotFlags struct {
	input    string
	output   string
	svg      bool
	detailed bool
}

// dotCommand creates the "dot" command: it exports a JSON layered graph's
// current ordering as a Graphviz DOT diagram, for visually inspecting what
// the optimizer did to it.
func (c *CLI) dotCommand() *cobra.Command {
	var flags dotFlags

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Export a layered graph's ordering as Graphviz DOT",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDot(flags)
		},
	}

	cmd.Flags().StringVar(&flags.input, "input", "", "path to a JSON layered graph (required)")
	cmd.Flags().StringVar(&flags.output, "output", "", "path to write the DOT/SVG output (default: stdout)")
	cmd.Flags().BoolVar(&flags.svg, "svg", false, "render to SVG instead of emitting DOT source")
	cmd.Flags().BoolVar(&flags.detailed, "detailed", false, "include layer index and rank in node labels")
	cmd.MarkFlagRequired("input")

	return cmd
}

func (c *CLI) runDot(flags dotFlags) error {
	g, err := graphio.ImportJSON(flags.input)
	if err != nil {
		return err
	}

	dot := nodelink.ToDOT(g.Layers, g.Edges, g.Hierarchy, nodelink.Options{Detailed: flags.detailed})

	out := []byte(dot)
	if flags.svg {
		out, err = nodelink.RenderSVG(dot)
		if err != nil {
			return err
		}
	}

	if flags.output == "" {
		_, err := os.Stdout.Write(out)
		return err
	}
	return os.WriteFile(flags.output, out, 0o644)
}
