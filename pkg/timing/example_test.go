package timing_test

import (
	"fmt"

	"github.com/tigra-dev/tigra/pkg/timing"
)

func ExampleGraph_Levelize() {
	// Two primary inputs feed a combinational node, which drives a
	// primary output.
	g := timing.New()
	a := g.AddNode(timing.KindInput, 0, false)
	b := g.AddNode(timing.KindInput, 0, false)
	c := g.AddNode(timing.KindCombinational, 0, false)
	d := g.AddNode(timing.KindOutput, 0, false)
	_, _ = g.AddEdge(a, c)
	_, _ = g.AddEdge(b, c)
	_, _ = g.AddEdge(c, d)

	if err := g.Levelize(); err != nil {
		fmt.Println("levelize:", err)
		return
	}

	for _, l := range g.Levels() {
		nodes, _ := g.LevelNodes(l)
		fmt.Printf("level %d: %d node(s)\n", l, len(nodes))
	}
	pis, _ := g.PrimaryInputs()
	pos, _ := g.PrimaryOutputs()
	fmt.Println("primary inputs:", len(pis))
	fmt.Println("primary outputs:", len(pos))
	// Output:
	// level 0: 2 node(s)
	// level 1: 1 node(s)
	// level 2: 1 node(s)
	// primary inputs: 2
	// primary outputs: 1
}

func ExampleGraph_OptimizeNodeLayout() {
	g := timing.New()
	// Created in reverse of traversal order.
	out := g.AddNode(timing.KindOutput, 0, false)
	in := g.AddNode(timing.KindInput, 0, false)
	_, _ = g.AddEdge(in, out)

	if err := g.Levelize(); err != nil {
		fmt.Println("levelize:", err)
		return
	}

	table, err := g.OptimizeNodeLayout()
	if err != nil {
		fmt.Println("optimize:", err)
		return
	}

	// External stores keyed by old NodeIDs remap through the table.
	fmt.Println("input:", table[in])
	fmt.Println("output:", table[out])
	// Output:
	// input: 0
	// output: 1
}
