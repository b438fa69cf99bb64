// Package netlist loads circuit descriptions into timing graphs.
//
// A netlist is a TOML document declaring named timing points and the arcs
// between them:
//
//	name = "adder"
//
//	[[nodes]]
//	name = "a"
//	kind = "input"
//
//	[[nodes]]
//	name = "sum"
//	kind = "output"
//	domain = 1
//
//	[[edges]]
//	from = "a"
//	to = "sum"
//
// Node kinds use the canonical names from [timing.NodeKind]: input, output,
// combinational, sequential_source, sequential_sink, clock_source. The
// domain field carries an opaque clock-domain identifier (default 0); the
// loader passes it through without interpretation.
//
// The loader owns the name↔identifier symbol table. The graph core deals
// only in dense identifiers, so anything that holds names must remap when a
// layout optimization pass renumbers the graph; see [Netlist.RemapNodes].
package netlist

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/tigra-dev/tigra/pkg/errors"
	"github.com/tigra-dev/tigra/pkg/timing"
)

// Netlist is a timing graph together with the symbol table that maps
// netlist names to graph identifiers.
type Netlist struct {
	// Name is the circuit name from the netlist header, if any.
	Name string

	graph *timing.Graph
	ids   map[string]timing.NodeID
	names []string // indexed by NodeID
}

type file struct {
	Name  string     `toml:"name"`
	Nodes []nodeDecl `toml:"nodes"`
	Edges []edgeDecl `toml:"edges"`
}

type nodeDecl struct {
	Name        string `toml:"name"`
	Kind        string `toml:"kind"`
	Domain      int    `toml:"domain"`
	ClockSource bool   `toml:"clock_source"`
}

type edgeDecl struct {
	From string `toml:"from"`
	To   string `toml:"to"`
}

// Load reads and parses the netlist file at path.
func Load(path string) (*Netlist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "netlist %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidNetlist, err, "read %s", path)
	}
	return Parse(data)
}

// Decode parses a netlist from r.
func Decode(r io.Reader) (*Netlist, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidNetlist, err, "read netlist")
	}
	return Parse(data)
}

// Parse parses a TOML netlist document and builds the timing graph.
//
// Parse returns a structured error (see pkg/errors) when the document is
// malformed: ErrCodeInvalidKind for an unrecognized node kind,
// ErrCodeDuplicateNode for a name declared twice, ErrCodeUnknownNode for an
// edge endpoint that names no declared node, and ErrCodeInvalidNetlist for
// anything else.
func Parse(data []byte) (*Netlist, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidNetlist, err, "decode netlist")
	}

	nl := &Netlist{
		Name:  f.Name,
		graph: timing.New(),
		ids:   make(map[string]timing.NodeID, len(f.Nodes)),
		names: make([]string, 0, len(f.Nodes)),
	}

	for i, n := range f.Nodes {
		if n.Name == "" {
			return nil, errors.New(errors.ErrCodeInvalidNetlist, "node %d: missing name", i)
		}
		kind, ok := timing.ParseNodeKind(n.Kind)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidKind, "node %q: unknown kind %q", n.Name, n.Kind)
		}
		if _, exists := nl.ids[n.Name]; exists {
			return nil, errors.New(errors.ErrCodeDuplicateNode, "node %q declared twice", n.Name)
		}
		id := nl.graph.AddNode(kind, timing.DomainID(n.Domain), n.ClockSource)
		nl.ids[n.Name] = id
		nl.names = append(nl.names, n.Name)
	}

	for _, e := range f.Edges {
		src, ok := nl.ids[e.From]
		if !ok {
			return nil, errors.New(errors.ErrCodeUnknownNode, "edge %s→%s: node %q not declared", e.From, e.To, e.From)
		}
		sink, ok := nl.ids[e.To]
		if !ok {
			return nil, errors.New(errors.ErrCodeUnknownNode, "edge %s→%s: node %q not declared", e.From, e.To, e.To)
		}
		if _, err := nl.graph.AddEdge(src, sink); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidNodeRef, err, "edge %s→%s", e.From, e.To)
		}
	}

	return nl, nil
}

// Graph returns the timing graph built from the netlist. The netlist
// retains the symbol table for it; structural mutations made directly on
// the graph are not reflected in the table.
func (nl *Netlist) Graph() *timing.Graph { return nl.graph }

// Lookup returns the identifier of the named node.
func (nl *Netlist) Lookup(name string) (timing.NodeID, bool) {
	id, ok := nl.ids[name]
	return id, ok
}

// NodeName returns the netlist name of the node, or a synthesized
// placeholder for identifiers outside the symbol table.
func (nl *Netlist) NodeName(id timing.NodeID) string {
	if id >= 0 && int(id) < len(nl.names) {
		return nl.names[id]
	}
	return fmt.Sprintf("n%d", int(id))
}

// Names returns all node names indexed by [timing.NodeID]. The returned
// slice is a read-only view.
func (nl *Netlist) Names() []string { return nl.names }

// RemapNodes migrates the symbol table through a node layout optimization
// translation table, as returned by [timing.Graph.OptimizeNodeLayout].
// Every holder of node identifiers must apply the table after an
// optimization pass; the netlist's name table is one such holder.
func (nl *Netlist) RemapNodes(oldToNew []timing.NodeID) error {
	if len(oldToNew) != len(nl.names) {
		return errors.New(errors.ErrCodeInternal,
			"translation table has %d entries, symbol table has %d", len(oldToNew), len(nl.names))
	}
	names := make([]string, len(nl.names))
	for old, name := range nl.names {
		names[oldToNew[old]] = name
	}
	nl.names = names
	for name, id := range nl.ids {
		nl.ids[name] = oldToNew[id]
	}
	return nil
}
