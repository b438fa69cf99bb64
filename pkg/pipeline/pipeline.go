// Package pipeline provides the load → levelize → optimize → export flow
// for tigra.
//
// This package implements the staged processing that the CLI (and any
// embedding application) runs over a netlist: parse the circuit
// description, levelize the timing graph, optionally optimize its memory
// layout, and export artifacts. Centralizing the flow keeps behavior
// consistent across entry points.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Netlist:  "adder.toml",
//	    Optimize: true,
//	    Formats:  []string{"json", "dot"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	dot := result.Artifacts["dot"]
//
// Stages can also be run individually via [Runner.Load], [Runner.Analyze],
// and [Runner.Render].
package pipeline

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tigra-dev/tigra/pkg/netlist"
	"github.com/tigra-dev/tigra/pkg/timing"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatDOT:  true,
	FormatSVG:  true,
}

// Options contains all configuration for a pipeline run.
type Options struct {
	// Netlist is the path of the TOML circuit description to load.
	Netlist string

	// Optimize runs both layout optimization passes (node, then edge)
	// after levelization and remaps the symbol table through the
	// translation tables.
	Optimize bool

	// Formats selects the artifacts to produce. Empty means no artifacts
	// (analysis only).
	Formats []string

	// Detailed includes kind and domain annotations in DOT labels.
	Detailed bool

	// Logger receives stage progress. Defaults to log.Default().
	Logger *log.Logger
}

// ValidateAndSetDefaults checks the options and fills defaults in place.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Netlist == "" {
		return fmt.Errorf("netlist path is required")
	}
	for _, f := range o.Formats {
		if !ValidFormats[f] {
			return fmt.Errorf("invalid format: %q (must be one of: json, dot, svg)", f)
		}
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Netlist is the loaded circuit with its symbol table, already
	// remapped when optimization ran.
	Netlist *netlist.Netlist

	// Graph is the levelized (and possibly layout-optimized) timing graph.
	Graph *timing.Graph

	// NodeTable and EdgeTable are the old→new translation tables from the
	// optimization passes, nil when optimization was not requested.
	// External stores keyed by pre-optimization identifiers must remap
	// through them.
	NodeTable []timing.NodeID
	EdgeTable []timing.EdgeID

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	LevelCount int

	LoadTime     time.Duration
	LevelizeTime time.Duration
	OptimizeTime time.Duration
	RenderTime   time.Duration
}
