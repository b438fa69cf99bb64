package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tigra-dev/tigra/pkg/errors"
	"github.com/tigra-dev/tigra/pkg/netlist"
	"github.com/tigra-dev/tigra/pkg/timing"
)

// statsCommand creates the stats command.
func (c *CLI) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <netlist.toml>",
		Short: "Show structural statistics for a netlist",
		Long: `Stats loads a TOML netlist, levelizes its timing graph, and prints
structural statistics: node and edge counts, the node kind histogram,
level depth, and fan-in/fan-out extremes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nl, err := netlist.Load(args[0])
			if err != nil {
				printError("%s", errors.UserMessage(err))
				return err
			}
			g := nl.Graph()
			if err := g.Levelize(); err != nil {
				printError("%s", err)
				return err
			}
			printStats(nl, g)
			return nil
		},
	}
}

func printStats(nl *netlist.Netlist, g *timing.Graph) {
	fmt.Println(styleTitle.Render(titleOrDefault(nl.Name)))

	printKeyValue("nodes", fmt.Sprintf("%d", g.NumNodes()))
	printKeyValue("edges", fmt.Sprintf("%d", g.NumEdges()))
	printKeyValue("levels", fmt.Sprintf("%d", g.NumLevels()))

	pis, _ := g.PrimaryInputs()
	pos, _ := g.PrimaryOutputs()
	printKeyValue("primary inputs", fmt.Sprintf("%d", len(pis)))
	printKeyValue("primary outputs", fmt.Sprintf("%d", len(pos)))

	kinds := make(map[timing.NodeKind]int)
	maxFanout, maxFanin := 0, 0
	var maxFanoutNode, maxFaninNode timing.NodeID
	for _, n := range g.Nodes() {
		kind, _ := g.NodeType(n)
		kinds[kind]++
		out, _ := g.NodeOutEdges(n)
		in, _ := g.NodeInEdges(n)
		if len(out) > maxFanout {
			maxFanout, maxFanoutNode = len(out), n
		}
		if len(in) > maxFanin {
			maxFanin, maxFaninNode = len(in), n
		}
	}

	for _, kind := range []timing.NodeKind{
		timing.KindInput, timing.KindOutput, timing.KindCombinational,
		timing.KindSequentialSource, timing.KindSequentialSink, timing.KindClockSource,
	} {
		if kinds[kind] > 0 {
			printKeyValue(kind.String(), fmt.Sprintf("%d", kinds[kind]))
		}
	}

	if maxFanout > 0 {
		printDetail("max fan-out: %d (%s)", maxFanout, nl.NodeName(maxFanoutNode))
	}
	if maxFanin > 0 {
		printDetail("max fan-in:  %d (%s)", maxFanin, nl.NodeName(maxFaninNode))
	}
}

func titleOrDefault(name string) string {
	if name == "" {
		return "circuit"
	}
	return name
}
