package timing

import "fmt"

// NodeID identifies a node (timing point) in a [Graph]. It is a dense index
// in [0, NumNodes) and carries no ownership. The zero value is a valid
// identifier; use [InvalidNodeID] for "no node".
type NodeID int

// EdgeID identifies a directed timing arc in a [Graph]. It is a dense index
// in [0, NumEdges).
type EdgeID int

// LevelID identifies a level produced by [Graph.Levelize]. It is a dense
// index in [0, NumLevels) and is only meaningful while the graph is
// levelized.
type LevelID int

// DomainID identifies a clock domain. Domain identifiers are owned by an
// external clock-domain registry; the graph stores them per node but never
// interprets or validates them.
type DomainID int

// Sentinel values for unset identifiers.
const (
	InvalidNodeID   NodeID   = -1
	InvalidEdgeID   EdgeID   = -1
	InvalidLevelID  LevelID  = -1
	InvalidDomainID DomainID = -1
)

// NodeKind describes the role a node plays in the circuit. It is set at
// creation time via [Graph.AddNode] and never changes.
type NodeKind int

const (
	// KindInput is a primary input pad.
	KindInput NodeKind = iota
	// KindOutput is a primary output pad.
	KindOutput
	// KindCombinational is a combinational logic pin.
	KindCombinational
	// KindSequentialSource is a sequential element's launch point (e.g. a
	// flip-flop Q pin). It starts new timing paths.
	KindSequentialSource
	// KindSequentialSink is a sequential element's capture point (e.g. a
	// flip-flop D pin). It terminates timing paths.
	KindSequentialSink
	// KindClockSource is a clock generation point.
	KindClockSource
)

var kindNames = map[NodeKind]string{
	KindInput:            "input",
	KindOutput:           "output",
	KindCombinational:    "combinational",
	KindSequentialSource: "sequential_source",
	KindSequentialSink:   "sequential_sink",
	KindClockSource:      "clock_source",
}

// String returns the canonical lower-case name of the kind, as used in
// netlist files and JSON documents.
func (k NodeKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("NodeKind(%d)", int(k))
}

// ParseNodeKind converts a canonical kind name back into a [NodeKind].
// It reports false for unknown names.
func ParseNodeKind(s string) (NodeKind, bool) {
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	return 0, false
}
