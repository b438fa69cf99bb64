package graphio

import (
	"bytes"
	"encoding/json"
	"slices"
	"testing"

	"github.com/tigra-dev/tigra/pkg/errors"
	"github.com/tigra-dev/tigra/pkg/timing"
)

func buildCone(t *testing.T) (*timing.Graph, []string) {
	t.Helper()
	g := timing.New()
	a := g.AddNode(timing.KindInput, 0, false)
	b := g.AddNode(timing.KindInput, 1, false)
	c := g.AddNode(timing.KindCombinational, 0, false)
	d := g.AddNode(timing.KindOutput, 0, false)
	for _, pair := range [][2]timing.NodeID{{a, c}, {b, c}, {c, d}} {
		if _, err := g.AddEdge(pair[0], pair[1]); err != nil {
			t.Fatalf("AddEdge(%v, %v) error: %v", pair[0], pair[1], err)
		}
	}
	return g, []string{"a", "b", "c", "d"}
}

func TestFromGraph(t *testing.T) {
	g, names := buildCone(t)

	doc := FromGraph(g, names)
	if len(doc.Nodes) != 4 {
		t.Fatalf("len(Nodes) = %d, want 4", len(doc.Nodes))
	}
	if len(doc.Edges) != 3 {
		t.Fatalf("len(Edges) = %d, want 3", len(doc.Edges))
	}
	if doc.Levels != nil {
		t.Errorf("Levels = %v for unlevelized graph, want nil", doc.Levels)
	}
	if doc.Nodes[2].Kind != "combinational" || doc.Nodes[2].Name != "c" {
		t.Errorf("Nodes[2] = %+v, want combinational node named c", doc.Nodes[2])
	}
	if doc.Nodes[1].Domain != 1 {
		t.Errorf("Nodes[1].Domain = %d, want 1", doc.Nodes[1].Domain)
	}
	if doc.Edges[2] != (Edge{Src: 2, Sink: 3}) {
		t.Errorf("Edges[2] = %+v, want {2 3}", doc.Edges[2])
	}
}

func TestFromGraph_IncludesLevels(t *testing.T) {
	g, names := buildCone(t)
	if err := g.Levelize(); err != nil {
		t.Fatalf("Levelize() error: %v", err)
	}

	doc := FromGraph(g, names)
	want := [][]int{{0, 1}, {2}, {3}}
	if len(doc.Levels) != len(want) {
		t.Fatalf("len(Levels) = %d, want %d", len(doc.Levels), len(want))
	}
	for i := range want {
		if !slices.Equal(doc.Levels[i], want[i]) {
			t.Errorf("Levels[%d] = %v, want %v", i, doc.Levels[i], want[i])
		}
	}
}

func TestRoundTrip(t *testing.T) {
	g, names := buildCone(t)
	if err := g.Levelize(); err != nil {
		t.Fatalf("Levelize() error: %v", err)
	}

	data, err := Marshal(g, names)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	g2, names2, err := Read(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if !slices.Equal(names2, names) {
		t.Errorf("names = %v, want %v", names2, names)
	}
	if g2.NumNodes() != g.NumNodes() || g2.NumEdges() != g.NumEdges() {
		t.Errorf("rebuilt graph has %d nodes / %d edges, want %d / %d",
			g2.NumNodes(), g2.NumEdges(), g.NumNodes(), g.NumEdges())
	}
	if g2.Levelized() {
		t.Error("rebuilt graph is levelized, want explicit re-levelization")
	}

	// Structure survives: same endpoints edge by edge.
	if err := g2.Levelize(); err != nil {
		t.Fatalf("re-Levelize() error: %v", err)
	}
	for _, e := range g.Edges() {
		src, _ := g.EdgeSrcNode(e)
		sink, _ := g.EdgeSinkNode(e)
		src2, _ := g2.EdgeSrcNode(e)
		sink2, _ := g2.EdgeSinkNode(e)
		if src != src2 || sink != sink2 {
			t.Errorf("edge %v = %v→%v after round trip, want %v→%v", e, src2, sink2, src, sink)
		}
	}
}

func TestToGraph_Errors(t *testing.T) {
	tests := []struct {
		name     string
		doc      Document
		wantCode errors.Code
	}{
		{
			name:     "UnknownKind",
			doc:      Document{Nodes: []Node{{Kind: "mystery"}}},
			wantCode: errors.ErrCodeInvalidFormat,
		},
		{
			name: "EdgeOutOfRange",
			doc: Document{
				Nodes: []Node{{Kind: "input"}},
				Edges: []Edge{{Src: 0, Sink: 9}},
			},
			wantCode: errors.ErrCodeUnknownNode,
		},
		{
			name: "NegativeEndpoint",
			doc: Document{
				Nodes: []Node{{Kind: "input"}},
				Edges: []Edge{{Src: -1, Sink: 0}},
			},
			wantCode: errors.ErrCodeUnknownNode,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToGraph(tt.doc)
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("ToGraph() error code = %q, want %q (err: %v)", errors.GetCode(err), tt.wantCode, err)
			}
		})
	}
}

func TestRead_MalformedJSON(t *testing.T) {
	if _, _, err := Read(bytes.NewReader([]byte("{nodes"))); err == nil {
		t.Error("Read() error = nil for malformed JSON, want error")
	}
}

func TestMarshal_StableShape(t *testing.T) {
	g := timing.New()
	g.AddNode(timing.KindInput, 0, false)

	data, err := Marshal(g, []string{"a"})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if _, ok := doc["nodes"]; !ok {
		t.Error(`output missing "nodes" key`)
	}
	if _, ok := doc["edges"]; !ok {
		t.Error(`output missing "edges" key`)
	}
}
