package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/untangle/pkg/cache"
	"github.com/matzehuels/untangle/pkg/graphio"
	"github.com/matzehuels/untangle/pkg/layer"
	"github.com/matzehuels/untangle/pkg/optimize"
)

type optimizeFlags struct {
	input         string
	output        string
	config        string
	startTemp     float64
	endTemp       float64
	steps         int
	maxIterations int
	passes        int
	seed          uint64
	noTUI         bool
	noCache       bool
}

// optimizeCommand creates the "optimize" command: it reads a JSON layered
// graph, runs the annealing reducer against it, and writes the resulting
// ordering back out.
func (c *CLI) optimizeCommand() *cobra.Command {
	var flags optimizeFlags

	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Minimize edge crossings in a layered graph",
		Long:  "Read a JSON layered graph, run the simulated-annealing reducer against it, and write the resulting ordering to stdout or --output.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runOptimize(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.input, "input", "", "path to a JSON layered graph (required)")
	cmd.Flags().StringVar(&flags.output, "output", "", "path to write the resulting ordering (default: stdout)")
	cmd.Flags().StringVar(&flags.config, "config", "", "path to a TOML config file overriding defaults")
	cmd.Flags().Float64Var(&flags.startTemp, "start-temp", 0, "annealing start temperature (0 = use config/default)")
	cmd.Flags().Float64Var(&flags.endTemp, "end-temp", 0, "annealing end temperature (0 = use config/default)")
	cmd.Flags().IntVar(&flags.steps, "steps", 0, "number of cooling steps (0 = use config/default)")
	cmd.Flags().IntVar(&flags.maxIterations, "max-iterations", 0, "max sweeps per step (0 = use config/default)")
	cmd.Flags().IntVar(&flags.passes, "passes", 0, "full passes over all layers (0 = use config/default)")
	cmd.Flags().Uint64Var(&flags.seed, "seed", 0, "PRNG seed for the Metropolis draws (0 = process-random)")
	cmd.Flags().BoolVar(&flags.noTUI, "no-tui", false, "disable the live progress display")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "bypass the result cache")
	cmd.MarkFlagRequired("input")

	return cmd
}

func (c *CLI) runOptimize(ctx context.Context, flags optimizeFlags) error {
	runID := uuid.New().String()
	logger := c.Logger.With("run_id", runID, "cmd", "optimize")

	g, err := graphio.ImportJSON(flags.input)
	if err != nil {
		return fmt.Errorf("import graph: %w", err)
	}

	cfg, err := loadConfig(flags.config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyOptimizeOverrides(&cfg.Schedule, flags)

	seed := flags.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	raw, err := os.ReadFile(flags.input)
	if err != nil {
		return fmt.Errorf("hash graph: %w", err)
	}
	graphHash := cache.Hash(raw)

	ck, err := newCache(ctx, cfg.Cache, flags.noCache)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer ck.Close()

	keyer := cache.NewDefaultKeyer()
	key := keyer.OrderingKey(graphHash, cache.OrderingKeyOpts{
		StartTemp: cfg.Schedule.StartTemp, EndTemp: cfg.Schedule.EndTemp,
		Steps: cfg.Schedule.Steps, MaxIterations: cfg.Schedule.MaxIterations,
		Passes: cfg.Schedule.Passes, Seed: int64(seed),
	})
	if hit, found, err := ck.Get(ctx, key); err == nil && found {
		logger.Info("cache hit", "key", key)
		if flags.output == "" {
			_, err := os.Stdout.Write(hit)
			return err
		}
		return os.WriteFile(flags.output, hit, 0o644)
	}

	logger.Info("optimizing", "layers", len(g.Layers), "start_temp", cfg.Schedule.StartTemp, "end_temp", cfg.Schedule.EndTemp)
	prog := newProgress(logger)

	var updates chan ProgressUpdate
	var program *tea.Program
	done := make(chan struct{})
	if !flags.noTUI {
		updates = make(chan ProgressUpdate, 16)
		model := NewProgressModel(updates)
		program = tea.NewProgram(model)
		go func() {
			defer close(done)
			_, _ = program.Run()
		}()
	}

	before := countInitialCrossings(g)
	_, orderedLayers, orderedHierarchy := runSchedule(g, cfg.Schedule, seed, updates)

	if updates != nil {
		select {
		case updates <- ProgressUpdate{Done: true}:
		default:
		}
		close(updates)
		<-done
	}

	after := countInitialCrossings(&graphio.Graph{Layers: orderedLayers, Edges: g.Edges})
	prog.done(fmt.Sprintf("optimized %d -> %d crossings", before, after))

	var buf []byte
	buf, err = marshalResult(orderedLayers, g.Edges, orderedHierarchy)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	if err := ck.Set(ctx, key, buf, 24*time.Hour); err != nil {
		logger.Warn("cache write failed", "error", err)
	}

	if flags.output == "" {
		_, err := os.Stdout.Write(buf)
		return err
	}
	return os.WriteFile(flags.output, buf, 0o644)
}

func applyOptimizeOverrides(s *ScheduleConfig, flags optimizeFlags) {
	if flags.startTemp != 0 {
		s.StartTemp = flags.startTemp
	}
	if flags.endTemp != 0 {
		s.EndTemp = flags.endTemp
	}
	if flags.steps != 0 {
		s.Steps = flags.steps
	}
	if flags.maxIterations != 0 {
		s.MaxIterations = flags.maxIterations
	}
	if flags.passes != 0 {
		s.Passes = flags.passes
	}
}

func countInitialCrossings(g *graphio.Graph) int64 {
	opt, err := optimize.NewLayoutOptimizer(g.Layers, g.Edges)
	if err != nil {
		return 0
	}
	return opt.CountCrossings()
}

// runSchedule runs the appropriate optimizer (flat or hierarchy-aware,
// depending on whether g carries a hierarchy) pass by pass, layer by layer,
// emitting a [ProgressUpdate] after each cooldown so the TUI (if attached)
// reflects live progress rather than only a before/after snapshot.
func runSchedule(g *graphio.Graph, s ScheduleConfig, seed uint64, updates chan ProgressUpdate) (int64, []layer.Layer[string], [][][]int) {
	if len(g.Hierarchy) == 0 {
		opt, err := optimize.NewLayoutOptimizer(g.Layers, g.Edges)
		if err != nil {
			return 0, g.Layers, nil
		}
		opt.SetSeed(seed)

		var count int64
		for pass := 0; pass < s.Passes; pass++ {
			for i := range g.Layers {
				count, _ = opt.Cooldown(i, s.MaxIterations, s.StartTemp, s.EndTemp, s.Steps)
				emitProgress(updates, pass, i, "-", s.EndTemp, count)
			}
		}
		return count, opt.GetNodes(), nil
	}

	opt, err := optimize.NewHierarchyOptimizer(g.Layers, g.Edges, g.Hierarchy)
	if err != nil {
		return 0, g.Layers, g.Hierarchy
	}
	opt.SetSeed(seed)

	var count int64
	for pass := 0; pass < s.Passes; pass++ {
		for i := range g.Layers {
			for gi := range opt.GetHierarchy()[i] {
				granularity := gi
				c, _ := opt.Cooldown(i, s.MaxIterations, s.StartTemp, s.EndTemp, s.Steps, &granularity)
				emitProgress(updates, pass, i, fmt.Sprintf("%d", gi), s.EndTemp, c)
			}
			count, _ = opt.Cooldown(i, s.MaxIterations, s.StartTemp, s.EndTemp, s.Steps, nil)
			emitProgress(updates, pass, i, "-", s.EndTemp, count)
		}
	}
	return count, opt.GetNodes(), opt.GetHierarchy()
}

func marshalResult(layers []layer.Layer[string], edges [][]layer.Edge[string], hierarchy [][][]int) ([]byte, error) {
	var buf bytes.Buffer
	if err := graphio.WriteJSON(layers, edges, hierarchy, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func emitProgress(updates chan ProgressUpdate, pass, layerIndex int, granularity string, temp float64, count int64) {
	if updates == nil {
		return
	}
	select {
	case updates <- ProgressUpdate{Pass: pass, Layer: layerIndex, Granularity: granularity, Temperature: temp, Crossings: count}:
	default:
	}
}
