package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/charmbracelet/log"
)

const testNetlist = `
name = "cone"

[[nodes]]
name = "a"
kind = "input"

[[nodes]]
name = "b"
kind = "input"

[[nodes]]
name = "mid"
kind = "combinational"

[[nodes]]
name = "out"
kind = "output"

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

func writeTestNetlist(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cone.toml")
	if err := os.WriteFile(path, []byte(testNetlist), 0o644); err != nil {
		t.Fatalf("write netlist: %v", err)
	}
	return path
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to json", "", []string{"json"}},
		{"single", "dot", []string{"dot"}},
		{"multiple", "json,dot,svg", []string{"json", "dot", "svg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	c := New(&bytes.Buffer{}, log.InfoLevel)
	root := c.RootCommand()

	want := map[string]bool{
		"levelize":   false,
		"export":     false,
		"stats":      false,
		"completion": false,
	}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestLevelizeCommand(t *testing.T) {
	path := writeTestNetlist(t)

	c := New(&bytes.Buffer{}, log.FatalLevel)
	root := c.RootCommand()
	root.SetArgs([]string{"levelize", path})

	if err := root.Execute(); err != nil {
		t.Fatalf("levelize failed: %v", err)
	}
}

func TestExportCommand_WritesArtifacts(t *testing.T) {
	path := writeTestNetlist(t)
	base := filepath.Join(t.TempDir(), "cone")

	c := New(&bytes.Buffer{}, log.FatalLevel)
	root := c.RootCommand()
	root.SetArgs([]string{"export", path, "--format", "json,dot", "-o", base})

	if err := root.Execute(); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	for _, ext := range []string{".json", ".dot"} {
		if _, err := os.Stat(base + ext); err != nil {
			t.Errorf("expected artifact %s: %v", base+ext, err)
		}
	}
}

func TestStatsCommand(t *testing.T) {
	path := writeTestNetlist(t)

	c := New(&bytes.Buffer{}, log.FatalLevel)
	root := c.RootCommand()
	root.SetArgs([]string{"stats", path})

	if err := root.Execute(); err != nil {
		t.Fatalf("stats failed: %v", err)
	}
}

func TestLevelizeCommand_MissingFile(t *testing.T) {
	c := New(&bytes.Buffer{}, log.FatalLevel)
	root := c.RootCommand()
	root.SetArgs([]string{"levelize", filepath.Join(t.TempDir(), "nope.toml")})

	if err := root.Execute(); err == nil {
		t.Fatal("expected error for missing netlist")
	}
}
