package graphio

import (
	"github.com/tigra-dev/tigra/pkg/errors"
	"github.com/tigra-dev/tigra/pkg/timing"
)

// Document is the canonical serialization format for timing graphs.
// Nodes are listed in identifier order, so array position doubles as the
// [timing.NodeID]; edges reference nodes by that position. The format is
// human-readable and designed for round-trip fidelity: export → re-import
// reproduces an identical graph.
type Document struct {
	Name  string `json:"name,omitempty"`
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`

	// Levels holds the node indices of each level when the graph was
	// levelized at export time. It is informative: importers rebuild level
	// data by re-running levelization rather than trusting the document.
	Levels [][]int `json:"levels,omitempty"`
}

// Node is one timing point in a serialized graph.
type Node struct {
	Name        string `json:"name,omitempty"`
	Kind        string `json:"kind"`
	Domain      int    `json:"domain,omitempty"`
	ClockSource bool   `json:"clock_source,omitempty"`
}

// Edge is one timing arc in a serialized graph, referencing nodes by their
// position in the document's node list.
type Edge struct {
	Src  int `json:"src"`
	Sink int `json:"sink"`
}

// FromGraph converts a timing graph to its serialized document form. names
// supplies a symbol per node (indexed by [timing.NodeID]) and may be nil.
// Level lists are included when the graph is levelized.
func FromGraph(g *timing.Graph, names []string) Document {
	doc := Document{
		Nodes: make([]Node, 0, g.NumNodes()),
		Edges: make([]Edge, 0, g.NumEdges()),
	}

	for _, id := range g.Nodes() {
		kind, _ := g.NodeType(id)
		domain, _ := g.NodeClockDomain(id)
		clkSrc, _ := g.NodeIsClockSource(id)
		n := Node{
			Kind:        kind.String(),
			Domain:      int(domain),
			ClockSource: clkSrc,
		}
		if int(id) < len(names) {
			n.Name = names[id]
		}
		doc.Nodes = append(doc.Nodes, n)
	}

	for _, id := range g.Edges() {
		src, _ := g.EdgeSrcNode(id)
		sink, _ := g.EdgeSinkNode(id)
		doc.Edges = append(doc.Edges, Edge{Src: int(src), Sink: int(sink)})
	}

	if g.Levelized() {
		doc.Levels = make([][]int, 0, g.NumLevels())
		for _, l := range g.Levels() {
			nodes, _ := g.LevelNodes(l)
			level := make([]int, len(nodes))
			for i, n := range nodes {
				level[i] = int(n)
			}
			doc.Levels = append(doc.Levels, level)
		}
	}

	return doc
}

// ToGraph rebuilds a timing graph from a serialized document. The returned
// graph is not levelized; callers run [timing.Graph.Levelize] themselves so
// that level data always reflects the rebuilt structure.
//
// ToGraph returns ErrCodeInvalidFormat for an unknown node kind and
// ErrCodeUnknownNode for an edge referencing a node index outside the node
// list.
func ToGraph(doc Document) (*timing.Graph, error) {
	g := timing.New()
	for i, n := range doc.Nodes {
		kind, ok := timing.ParseNodeKind(n.Kind)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "node %d: unknown kind %q", i, n.Kind)
		}
		g.AddNode(kind, timing.DomainID(n.Domain), n.ClockSource)
	}
	for i, e := range doc.Edges {
		if e.Src < 0 || e.Src >= len(doc.Nodes) || e.Sink < 0 || e.Sink >= len(doc.Nodes) {
			return nil, errors.New(errors.ErrCodeUnknownNode, "edge %d: endpoint out of range", i)
		}
		if _, err := g.AddEdge(timing.NodeID(e.Src), timing.NodeID(e.Sink)); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidNodeRef, err, "edge %d", i)
		}
	}
	return g, nil
}

// NodeNames extracts the name column from a document, indexed by node
// position, for use as a symbol table alongside the rebuilt graph.
func NodeNames(doc Document) []string {
	names := make([]string, len(doc.Nodes))
	for i, n := range doc.Nodes {
		names[i] = n.Name
	}
	return names
}
