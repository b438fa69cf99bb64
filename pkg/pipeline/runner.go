package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tigra-dev/tigra/pkg/errors"
	"github.com/tigra-dev/tigra/pkg/graphio"
	"github.com/tigra-dev/tigra/pkg/netlist"
	"github.com/tigra-dev/tigra/pkg/observability"
	"github.com/tigra-dev/tigra/pkg/render"
	"github.com/tigra-dev/tigra/pkg/timing"
)

// Runner executes the pipeline stages. It is stateless except for its
// logger; multiple goroutines can safely share one Runner as long as each
// call gets its own Options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → levelize → optimize → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{Artifacts: make(map[string][]byte)}

	// Stage 1: Load
	loadStart := time.Now()
	nl, err := r.Load(ctx, opts.Netlist)
	result.Stats.LoadTime = time.Since(loadStart)
	if err != nil {
		return nil, err
	}
	result.Netlist = nl
	result.Graph = nl.Graph()
	result.Stats.NodeCount = result.Graph.NumNodes()
	result.Stats.EdgeCount = result.Graph.NumEdges()

	r.Logger.Info("loaded netlist",
		"circuit", nl.Name,
		"nodes", result.Stats.NodeCount,
		"edges", result.Stats.EdgeCount,
		"duration", result.Stats.LoadTime)

	// Stage 2: Levelize (+ optional layout optimization)
	if err := r.Analyze(ctx, result, opts.Optimize); err != nil {
		return nil, err
	}

	r.Logger.Info("levelized graph",
		"levels", result.Stats.LevelCount,
		"duration", result.Stats.LevelizeTime)

	// Stage 3: Render
	renderStart := time.Now()
	if err := r.Render(ctx, result, opts); err != nil {
		return nil, err
	}
	result.Stats.RenderTime = time.Since(renderStart)

	if len(opts.Formats) > 0 {
		r.Logger.Info("rendered artifacts",
			"formats", opts.Formats,
			"duration", result.Stats.RenderTime)
	}

	return result, nil
}

// Load parses the netlist at path.
func (r *Runner) Load(ctx context.Context, path string) (*netlist.Netlist, error) {
	hooks := observability.Graph()
	hooks.OnLoadStart(ctx, path)
	start := time.Now()

	nl, err := netlist.Load(path)
	if err != nil {
		hooks.OnLoadComplete(ctx, path, 0, 0, time.Since(start), err)
		return nil, err
	}
	hooks.OnLoadComplete(ctx, path, nl.Graph().NumNodes(), nl.Graph().NumEdges(), time.Since(start), nil)
	return nl, nil
}

// Analyze levelizes the result's graph and, when optimize is set, runs both
// layout optimization passes and remaps the symbol table. Stats and
// translation tables are recorded on the result.
func (r *Runner) Analyze(ctx context.Context, result *Result, optimize bool) error {
	hooks := observability.Graph()
	g := result.Graph

	hooks.OnLevelizeStart(ctx, g.NumNodes(), g.NumEdges())
	start := time.Now()
	err := g.Levelize()
	result.Stats.LevelizeTime = time.Since(start)
	result.Stats.LevelCount = g.NumLevels()
	hooks.OnLevelizeComplete(ctx, g.NumLevels(), result.Stats.LevelizeTime, err)
	if err != nil {
		return errors.Wrap(errors.ErrCodeCyclicGraph, err, "levelize %s", result.Netlist.Name)
	}

	if !optimize {
		return nil
	}

	optStart := time.Now()

	hooks.OnOptimizeStart(ctx, "node")
	nodeTable, err := g.OptimizeNodeLayout()
	hooks.OnOptimizeComplete(ctx, "node", time.Since(optStart), err)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "optimize node layout")
	}
	if err := result.Netlist.RemapNodes(nodeTable); err != nil {
		return err
	}
	result.NodeTable = nodeTable

	edgeStart := time.Now()
	hooks.OnOptimizeStart(ctx, "edge")
	edgeTable, err := g.OptimizeEdgeLayout()
	hooks.OnOptimizeComplete(ctx, "edge", time.Since(edgeStart), err)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "optimize edge layout")
	}
	result.EdgeTable = edgeTable

	result.Stats.OptimizeTime = time.Since(optStart)
	r.Logger.Debug("optimized memory layout",
		"nodes", len(nodeTable),
		"edges", len(edgeTable),
		"duration", result.Stats.OptimizeTime)

	return nil
}

// Render produces the requested artifacts from an analyzed result.
func (r *Runner) Render(ctx context.Context, result *Result, opts Options) error {
	var dot string
	for _, format := range opts.Formats {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		switch format {
		case FormatJSON:
			data, err := graphio.Marshal(result.Graph, result.Netlist.Names())
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "marshal graph")
			}
			result.Artifacts[FormatJSON] = data
		case FormatDOT, FormatSVG:
			if dot == "" {
				dot = render.ToDOT(result.Graph, r.nameFunc(result), render.Options{Detailed: opts.Detailed})
			}
			if format == FormatDOT {
				result.Artifacts[FormatDOT] = []byte(dot)
				continue
			}
			svg, err := render.RenderSVG(dot)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "render svg")
			}
			result.Artifacts[FormatSVG] = svg
		}
	}
	return nil
}

func (r *Runner) nameFunc(result *Result) render.NameFunc {
	return func(id timing.NodeID) string { return result.Netlist.NodeName(id) }
}
