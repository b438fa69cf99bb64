// Package graphio serializes timing graphs to and from JSON documents.
//
// The JSON format (see [Document]) lists nodes in identifier order with
// their kind, clock domain, and symbolic name, and edges as node-index
// pairs. It is the interchange format between the CLI, external analyzers,
// and anything else that needs a graph snapshot on disk.
package graphio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tigra-dev/tigra/pkg/timing"
)

// Marshal converts a graph to indented JSON bytes. names may be nil.
func Marshal(g *timing.Graph, names []string) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(g, names, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write encodes a graph as JSON to w.
func Write(g *timing.Graph, names []string, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromGraph(g, names)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteFile writes a graph to a JSON file at path.
// The file is created with 0644 permissions.
func WriteFile(g *timing.Graph, names []string, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(g, names, f)
}

// Read decodes a JSON graph document from r and rebuilds the graph.
// The second return value is the symbol table (node names by identifier).
// The returned graph is not levelized.
func Read(r io.Reader) (*timing.Graph, []string, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("decode: %w", err)
	}
	g, err := ToGraph(doc)
	if err != nil {
		return nil, nil, err
	}
	return g, NodeNames(doc), nil
}

// ReadFile reads a JSON graph file and rebuilds the graph.
func ReadFile(path string) (*timing.Graph, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}
