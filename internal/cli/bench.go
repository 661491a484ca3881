package cli

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/untangle/internal/graphgen"
	"github.com/matzehuels/untangle/pkg/optimize"
)

type benchFlags struct {
	nodesPerLayer int
	numLayers     int
	config        string
	seed          uint64
}

// benchCommand creates the "bench" command: it generates a synthetic
// multipartite graph and reports the crossing count before and after
// running the optimizer against it, along with elapsed time.
func (c *CLI) benchCommand() *cobra.Command {
	var flags benchFlags

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark the optimizer against a generated graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBench(flags)
		},
	}

	cmd.Flags().IntVar(&flags.nodesPerLayer, "nodes", 2000, "nodes per layer")
	cmd.Flags().IntVar(&flags.numLayers, "layers", 2, "number of layers")
	cmd.Flags().StringVar(&flags.config, "config", "", "path to a TOML config file overriding defaults")
	cmd.Flags().Uint64Var(&flags.seed, "seed", 0, "graph generation seed (0 = process-random)")

	return cmd
}

func (c *CLI) runBench(flags benchFlags) error {
	runID := uuid.New().String()
	logger := c.Logger.With("run_id", runID, "cmd", "bench")

	cfg, err := loadConfig(flags.config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	seed := flags.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))

	logger.Info("generating graph", "nodes_per_layer", flags.nodesPerLayer, "layers", flags.numLayers)
	spin := newSpinner("generating graph")
	spin.Start()
	g, err := graphgen.Multipartite(rng, flags.numLayers, flags.nodesPerLayer)
	if err != nil {
		spin.StopWithError("graph generation failed")
		return fmt.Errorf("generate graph: %w", err)
	}
	spin.Stop()

	opt, err := optimize.NewLayoutOptimizer(g.Layers, g.Edges)
	if err != nil {
		return fmt.Errorf("construct optimizer: %w", err)
	}
	opt.SetSeed(seed)

	before := opt.CountCrossings()
	logger.Info("start", "crossings", before)

	spin = newSpinner("optimizing")
	spin.Start()
	start := time.Now()
	opt.Optimize(cfg.Schedule.StartTemp, cfg.Schedule.EndTemp, cfg.Schedule.Steps, cfg.Schedule.MaxIterations, cfg.Schedule.Passes)
	elapsed := time.Since(start)
	after := opt.CountCrossings()
	spin.Stop()

	printSuccess("crossings %d -> %d in %s", before, after, elapsed.Round(time.Millisecond))
	printDetail("nodes_per_layer=%d layers=%d schedule=%+v", flags.nodesPerLayer, flags.numLayers, cfg.Schedule)
	return nil
}
