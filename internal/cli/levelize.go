package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tigra-dev/tigra/pkg/errors"
	"github.com/tigra-dev/tigra/pkg/pipeline"
	"github.com/tigra-dev/tigra/pkg/timing"
)

// maxNamesPerLevel caps how many node names a level summary line shows.
const maxNamesPerLevel = 8

// levelizeCommand creates the levelize command.
func (c *CLI) levelizeCommand() *cobra.Command {
	var optimize bool

	cmd := &cobra.Command{
		Use:   "levelize <netlist.toml>",
		Short: "Levelize a netlist and print the level summary",
		Long: `Levelize builds the timing graph described by a TOML netlist, assigns
every node to a topological level, and prints the per-level summary that a
forward analysis pass would traverse.

With --optimize, the node and edge storage is additionally reordered to
match traversal order and the old→new translation table sizes are reported.

Examples:
  tigra levelize adder.toml
  tigra levelize adder.toml --optimize`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newProgress(c.Logger)
			result, err := c.newRunner().Execute(cmd.Context(), pipeline.Options{
				Netlist:  args[0],
				Optimize: optimize,
				Logger:   c.Logger,
			})
			if err != nil {
				printError("%s", errors.UserMessage(err))
				return err
			}
			p.done(fmt.Sprintf("Levelized %d nodes into %d levels",
				result.Stats.NodeCount, result.Stats.LevelCount))

			printLevels(result)
			if optimize {
				printDetail("node layout table: %d entries", len(result.NodeTable))
				printDetail("edge layout table: %d entries", len(result.EdgeTable))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&optimize, "optimize", false, "reorder node/edge storage to traversal order")
	return cmd
}

func printLevels(result *pipeline.Result) {
	g := result.Graph
	fmt.Println(styleTitle.Render(circuitTitle(result)))

	for _, l := range g.Levels() {
		nodes, _ := g.LevelNodes(l)
		fmt.Printf("  %s %s  %s\n",
			styleDim.Render(fmt.Sprintf("level %2d", int(l))),
			styleNumber.Render(fmt.Sprintf("%4d", len(nodes))),
			styleDim.Render(levelNames(result, nodes)))
	}

	pis, _ := g.PrimaryInputs()
	pos, _ := g.PrimaryOutputs()
	printSuccess("%d primary inputs, %d primary outputs", len(pis), len(pos))
}

func circuitTitle(result *pipeline.Result) string {
	if result.Netlist.Name != "" {
		return result.Netlist.Name
	}
	return "circuit"
}

func levelNames(result *pipeline.Result, nodes []timing.NodeID) string {
	names := make([]string, 0, min(len(nodes), maxNamesPerLevel))
	for i, n := range nodes {
		if i == maxNamesPerLevel {
			names = append(names, "…")
			break
		}
		names = append(names, result.Netlist.NodeName(n))
	}
	return strings.Join(names, " ")
}
