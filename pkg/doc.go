// Package pkg provides the core libraries for tigra timing graph analysis.
//
// # Overview
//
// Tigra builds directed timing graphs from circuit netlists, levelizes them
// into topological layers for analysis traversal, and exports the result.
// The pkg directory is organized by concern:
//
//  1. [timing] - The struct-of-arrays timing graph, levelization, and layout
//     optimization. This is the heart of the library.
//  2. [netlist] - TOML netlist loading and the name-to-node symbol table.
//  3. [graphio] - JSON serialization of graphs for round-tripping.
//  4. [render] - Graphviz DOT and SVG export.
//  5. [pipeline] - Orchestration (load → levelize → optimize → render).
//  6. [errors], [observability], [buildinfo] - Cross-cutting support.
//
// # Architecture
//
// The typical data flow through tigra:
//
//	TOML Netlist
//	     ↓
//	[netlist] package (parse, build graph, symbol table)
//	     ↓
//	[timing] package (levelize, optimize layout)
//	     ↓
//	[graphio] / [render] packages (JSON, DOT, SVG output)
//
// # Quick Start
//
// Build and levelize a graph directly:
//
//	g := timing.New()
//	a := g.AddNode(timing.KindInput, timing.DomainID(0), false)
//	b := g.AddNode(timing.KindOutput, timing.DomainID(0), false)
//	g.AddEdge(a, b)
//	if err := g.Levelize(); err != nil {
//	    // handle cycle
//	}
//
// Or run the whole pipeline from a netlist file:
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Netlist:  "adder.toml",
//	    Optimize: true,
//	    Formats:  []string{pipeline.FormatJSON, pipeline.FormatSVG},
//	})
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/timing/...   # Specific package
//	go test -run Example       # Examples only
//
// [timing]: https://pkg.go.dev/github.com/tigra-dev/tigra/pkg/timing
// [netlist]: https://pkg.go.dev/github.com/tigra-dev/tigra/pkg/netlist
// [graphio]: https://pkg.go.dev/github.com/tigra-dev/tigra/pkg/graphio
// [render]: https://pkg.go.dev/github.com/tigra-dev/tigra/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/tigra-dev/tigra/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/tigra-dev/tigra/pkg/errors
// [observability]: https://pkg.go.dev/github.com/tigra-dev/tigra/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/tigra-dev/tigra/pkg/buildinfo
package pkg
