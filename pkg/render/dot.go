// Package render exports timing graphs as Graphviz DOT and SVG.
//
// The DOT form draws the graph left to right in signal-flow order. When the
// graph is levelized, nodes of each level are pinned to the same rank so
// the drawing mirrors the level structure an analyzer traverses.
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/tigra-dev/tigra/pkg/timing"
)

// Options configures DOT generation.
type Options struct {
	// Detailed includes the node kind and clock domain in labels.
	// When false, only the node name is shown.
	Detailed bool
}

// NameFunc supplies a display name for a node. The netlist symbol table's
// NodeName method satisfies it.
type NameFunc func(timing.NodeID) string

// ToDOT converts a timing graph to Graphviz DOT format. names may be nil,
// in which case nodes are labeled by identifier. The resulting DOT string
// can be rendered with [RenderSVG].
func ToDOT(g *timing.Graph, names NameFunc, opts Options) string {
	if names == nil {
		names = func(id timing.NodeID) string { return fmt.Sprintf("n%d", int(id)) }
	}

	var buf bytes.Buffer
	buf.WriteString("digraph timing {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		fmt.Fprintf(&buf, "  %q [%s];\n", names(n), nodeAttrs(g, n, names(n), opts.Detailed))
	}

	if g.Levelized() {
		buf.WriteString("\n")
		for _, l := range g.Levels() {
			nodes, _ := g.LevelNodes(l)
			buf.WriteString("  { rank=same;")
			for _, n := range nodes {
				fmt.Fprintf(&buf, " %q;", names(n))
			}
			buf.WriteString(" }\n")
		}
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		src, _ := g.EdgeSrcNode(e)
		sink, _ := g.EdgeSinkNode(e)
		fmt.Fprintf(&buf, "  %q -> %q;\n", names(src), names(sink))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(g *timing.Graph, n timing.NodeID, name string, detailed bool) string {
	kind, _ := g.NodeType(n)
	clkSrc, _ := g.NodeIsClockSource(n)

	label := name
	if detailed {
		domain, _ := g.NodeClockDomain(n)
		label = fmt.Sprintf("%s\n%s / dom %d", name, kind, int(domain))
	}

	attrs := fmt.Sprintf("label=%q", label)
	switch kind {
	case timing.KindInput:
		attrs += ", fillcolor=lightblue"
	case timing.KindOutput:
		attrs += ", fillcolor=lightsalmon"
	case timing.KindSequentialSource, timing.KindSequentialSink:
		attrs += ", fillcolor=lightyellow"
	case timing.KindClockSource:
		attrs += ", fillcolor=lightgrey"
	}
	if clkSrc {
		attrs += ", style=\"rounded,filled,dashed\""
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
