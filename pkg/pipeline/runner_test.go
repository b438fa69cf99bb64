package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tigra-dev/tigra/pkg/errors"
)

const coneNetlist = `
name = "cone"

[[nodes]]
name = "out"
kind = "output"

[[nodes]]
name = "mid"
kind = "combinational"

[[nodes]]
name = "a"
kind = "input"

[[nodes]]
name = "b"
kind = "input"

[[edges]]
from = "a"
to = "mid"

[[edges]]
from = "b"
to = "mid"

[[edges]]
from = "mid"
to = "out"
`

const cyclicNetlist = `
name = "ring"

[[nodes]]
name = "x"
kind = "combinational"

[[nodes]]
name = "y"
kind = "combinational"

[[edges]]
from = "x"
to = "y"

[[edges]]
from = "y"
to = "x"
`

func writeNetlist(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "circuit.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write netlist: %v", err)
	}
	return path
}

func TestExecute_AnalysisOnly(t *testing.T) {
	r := NewRunner(nil)
	result, err := r.Execute(context.Background(), Options{Netlist: writeNetlist(t, coneNetlist)})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if result.Stats.NodeCount != 4 || result.Stats.EdgeCount != 3 {
		t.Errorf("Stats = %d nodes / %d edges, want 4 / 3", result.Stats.NodeCount, result.Stats.EdgeCount)
	}
	if result.Stats.LevelCount != 3 {
		t.Errorf("LevelCount = %d, want 3", result.Stats.LevelCount)
	}
	if !result.Graph.Levelized() {
		t.Error("graph not levelized after Execute")
	}
	if result.NodeTable != nil || result.EdgeTable != nil {
		t.Error("translation tables set without Optimize")
	}
	if len(result.Artifacts) != 0 {
		t.Errorf("Artifacts = %v, want none", result.Artifacts)
	}
}

func TestExecute_WithOptimize(t *testing.T) {
	r := NewRunner(nil)
	result, err := r.Execute(context.Background(), Options{
		Netlist:  writeNetlist(t, coneNetlist),
		Optimize: true,
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if len(result.NodeTable) != 4 {
		t.Fatalf("len(NodeTable) = %d, want 4", len(result.NodeTable))
	}
	if len(result.EdgeTable) != 3 {
		t.Fatalf("len(EdgeTable) = %d, want 3", len(result.EdgeTable))
	}

	// Symbol table was remapped along with the graph: the inputs now own
	// the first identifiers.
	a, ok := result.Netlist.Lookup("a")
	if !ok {
		t.Fatal("Lookup(a) failed after optimization")
	}
	if lvl, err := result.Graph.LevelOf(a); err != nil || lvl != 0 {
		t.Errorf("LevelOf(a) = %v, %v, want 0", lvl, err)
	}
}

func TestExecute_Artifacts(t *testing.T) {
	r := NewRunner(nil)
	result, err := r.Execute(context.Background(), Options{
		Netlist: writeNetlist(t, coneNetlist),
		Formats: []string{FormatJSON, FormatDOT},
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	jsonArt := string(result.Artifacts[FormatJSON])
	if !strings.Contains(jsonArt, `"kind": "combinational"`) {
		t.Errorf("json artifact missing node kind:\n%s", jsonArt)
	}
	dotArt := string(result.Artifacts[FormatDOT])
	if !strings.Contains(dotArt, `"mid" -> "out";`) {
		t.Errorf("dot artifact missing edge:\n%s", dotArt)
	}
}

func TestExecute_CyclicNetlist(t *testing.T) {
	r := NewRunner(nil)
	_, err := r.Execute(context.Background(), Options{Netlist: writeNetlist(t, cyclicNetlist)})
	if !errors.Is(err, errors.ErrCodeCyclicGraph) {
		t.Errorf("Execute() error code = %q, want CYCLIC_GRAPH (err: %v)", errors.GetCode(err), err)
	}
}

func TestExecute_InvalidOptions(t *testing.T) {
	r := NewRunner(nil)

	if _, err := r.Execute(context.Background(), Options{}); err == nil {
		t.Error("Execute() error = nil for missing netlist, want error")
	}

	_, err := r.Execute(context.Background(), Options{
		Netlist: writeNetlist(t, coneNetlist),
		Formats: []string{"png"},
	})
	if err == nil || !strings.Contains(err.Error(), "invalid format") {
		t.Errorf("Execute() error = %v, want invalid format", err)
	}
}

func TestExecute_MissingFile(t *testing.T) {
	r := NewRunner(nil)
	_, err := r.Execute(context.Background(), Options{Netlist: "no/such/file.toml"})
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Execute() error code = %q, want FILE_NOT_FOUND", errors.GetCode(err))
	}
}
