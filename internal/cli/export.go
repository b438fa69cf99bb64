package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tigra-dev/tigra/pkg/errors"
	"github.com/tigra-dev/tigra/pkg/pipeline"
)

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	formats  string // comma-separated output formats
	output   string // output base path (netlist name if empty)
	optimize bool   // reorder storage before exporting
	detailed bool   // annotate DOT labels with kind/domain
}

// exportCommand creates the export command.
func (c *CLI) exportCommand() *cobra.Command {
	var opts exportOpts

	cmd := &cobra.Command{
		Use:   "export <netlist.toml>",
		Short: "Render a netlist's timing graph to json, dot, or svg",
		Long: `Export levelizes the timing graph described by a TOML netlist and writes
it out in one or more formats. The json format round-trips through tigra;
dot and svg are for inspection with Graphviz-compatible tooling.

Examples:
  tigra export adder.toml
  tigra export adder.toml --format dot,svg -o out/adder
  tigra export adder.toml --format json --optimize`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExport(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "comma-separated formats: json, dot, svg (default json)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output base path (default: netlist path without extension)")
	cmd.Flags().BoolVar(&opts.optimize, "optimize", false, "reorder node/edge storage to traversal order before export")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include kind and domain in dot labels")
	return cmd
}

func (c *CLI) runExport(cmd *cobra.Command, path string, opts exportOpts) error {
	result, err := c.newRunner().Execute(cmd.Context(), pipeline.Options{
		Netlist:  path,
		Optimize: opts.optimize,
		Formats:  parseFormats(opts.formats),
		Detailed: opts.detailed,
		Logger:   c.Logger,
	})
	if err != nil {
		printError("%s", errors.UserMessage(err))
		return err
	}

	base := opts.output
	if base == "" {
		base = strings.TrimSuffix(path, filepath.Ext(path))
	}

	printSuccess("Exported %s", circuitTitle(result))
	for format, data := range result.Artifacts {
		out := base + "." + format
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		printFile(out)
	}
	return nil
}
