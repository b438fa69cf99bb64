package timing

import "errors"

var (
	// ErrInvalidHandle is returned by accessors given an identifier outside
	// the currently valid range. This includes stale identifiers held across
	// a layout optimization pass and unset sentinel values such as
	// [InvalidNodeID].
	ErrInvalidHandle = errors.New("handle out of range")

	// ErrInvalidNodeRef is returned by [Graph.AddEdge] when the source or
	// sink node has not been added to the graph. The edge is not added.
	ErrInvalidNodeRef = errors.New("edge endpoint references unknown node")

	// ErrNotLevelized is returned by level-dependent accessors and by the
	// layout optimization passes when the graph has not been levelized since
	// the last structural change. Call [Graph.Levelize] first; levelization
	// is never performed implicitly.
	ErrNotLevelized = errors.New("graph has not been levelized")

	// ErrCyclicGraph is matched (via errors.Is) by the [*CycleError]
	// returned when [Graph.Levelize] cannot assign a level to every node.
	ErrCyclicGraph = errors.New("graph contains a cycle")
)

// Graph is a directed timing graph stored in a struct-of-arrays layout.
// Nodes are timing points, edges are timing arcs, and all attributes live in
// parallel slices indexed by [NodeID] and [EdgeID].
//
// The zero value is an empty, usable graph. Graph is not safe for concurrent
// mutation; see the package documentation for the read-only phase contract.
type Graph struct {
	// Node data, indexed by NodeID.
	nodeKinds   []NodeKind
	nodeDomains []DomainID
	nodeClkSrc  []bool
	nodeOut     [][]EdgeID
	nodeIn      [][]EdgeID

	// Edge data, indexed by EdgeID.
	edgeSrc  []NodeID
	edgeSink []NodeID

	// Level data, indexed by LevelID. Rebuilt by Levelize and cleared by
	// any structural mutation.
	levelNodes     [][]NodeID
	primaryOutputs []NodeID
	levelized      bool
}

// New creates an empty timing graph.
func New() *Graph {
	return &Graph{}
}

// AddNode appends a new node with empty adjacency lists and returns its
// fresh, previously unused identifier. AddNode always succeeds and runs in
// amortized O(1).
//
// The graph will need to be re-levelized after modification.
func (g *Graph) AddNode(kind NodeKind, domain DomainID, isClockSource bool) NodeID {
	id := NodeID(len(g.nodeKinds))
	g.nodeKinds = append(g.nodeKinds, kind)
	g.nodeDomains = append(g.nodeDomains, domain)
	g.nodeClkSrc = append(g.nodeClkSrc, isClockSource)
	g.nodeOut = append(g.nodeOut, nil)
	g.nodeIn = append(g.nodeIn, nil)
	g.invalidateLevels()
	return id
}

// AddEdge appends a directed edge from src to sink and records it in both
// adjacency lists. Both endpoints must already exist in the graph; otherwise
// AddEdge returns [ErrInvalidNodeRef] and the graph is unchanged.
//
// The graph will need to be re-levelized after modification.
func (g *Graph) AddEdge(src, sink NodeID) (EdgeID, error) {
	if !g.validNode(src) || !g.validNode(sink) {
		return InvalidEdgeID, ErrInvalidNodeRef
	}
	id := EdgeID(len(g.edgeSrc))
	g.edgeSrc = append(g.edgeSrc, src)
	g.edgeSink = append(g.edgeSink, sink)
	g.nodeOut[src] = append(g.nodeOut[src], id)
	g.nodeIn[sink] = append(g.nodeIn[sink], id)
	g.invalidateLevels()
	return id, nil
}

// NodeType returns the kind of the node.
func (g *Graph) NodeType(id NodeID) (NodeKind, error) {
	if !g.validNode(id) {
		return 0, ErrInvalidHandle
	}
	return g.nodeKinds[id], nil
}

// NodeClockDomain returns the opaque clock domain identifier stored for the
// node. The graph never interprets domain identifiers.
func (g *Graph) NodeClockDomain(id NodeID) (DomainID, error) {
	if !g.validNode(id) {
		return InvalidDomainID, ErrInvalidHandle
	}
	return g.nodeDomains[id], nil
}

// NodeIsClockSource reports whether the node is the source of a clock.
func (g *Graph) NodeIsClockSource(id NodeID) (bool, error) {
	if !g.validNode(id) {
		return false, ErrInvalidHandle
	}
	return g.nodeClkSrc[id], nil
}

// NodeOutEdges returns the edges driven by the node, in insertion order.
// The returned slice is a read-only view into the graph; callers must not
// modify it.
func (g *Graph) NodeOutEdges(id NodeID) ([]EdgeID, error) {
	if !g.validNode(id) {
		return nil, ErrInvalidHandle
	}
	return g.nodeOut[id], nil
}

// NodeInEdges returns the edges feeding the node, in insertion order.
// The returned slice is a read-only view into the graph; callers must not
// modify it.
func (g *Graph) NodeInEdges(id NodeID) ([]EdgeID, error) {
	if !g.validNode(id) {
		return nil, ErrInvalidHandle
	}
	return g.nodeIn[id], nil
}

// EdgeSrcNode returns the edge's driving node.
func (g *Graph) EdgeSrcNode(id EdgeID) (NodeID, error) {
	if !g.validEdge(id) {
		return InvalidNodeID, ErrInvalidHandle
	}
	return g.edgeSrc[id], nil
}

// EdgeSinkNode returns the edge's sink node.
func (g *Graph) EdgeSinkNode(id EdgeID) (NodeID, error) {
	if !g.validEdge(id) {
		return InvalidNodeID, ErrInvalidHandle
	}
	return g.edgeSink[id], nil
}

// LevelNodes returns the nodes assigned to the level, in deterministic
// within-level order. The graph must be levelized. The returned slice is a
// read-only view into the graph.
func (g *Graph) LevelNodes(id LevelID) ([]NodeID, error) {
	if !g.levelized {
		return nil, ErrNotLevelized
	}
	if !g.validLevel(id) {
		return nil, ErrInvalidHandle
	}
	return g.levelNodes[id], nil
}

// PrimaryInputs returns the nodes with no incoming edges. After
// levelization these are exactly the nodes on level 0.
func (g *Graph) PrimaryInputs() ([]NodeID, error) {
	if !g.levelized {
		return nil, ErrNotLevelized
	}
	if len(g.levelNodes) == 0 {
		return nil, nil
	}
	return g.levelNodes[0], nil
}

// PrimaryOutputs returns the nodes with no outgoing edges. Unlike primary
// inputs, primary outputs can be scattered across multiple levels, so they
// are tracked as a separate list.
func (g *Graph) PrimaryOutputs() ([]NodeID, error) {
	if !g.levelized {
		return nil, ErrNotLevelized
	}
	return g.primaryOutputs, nil
}

// Nodes returns the identifiers of all nodes in the graph, in creation
// order.
func (g *Graph) Nodes() []NodeID {
	ids := make([]NodeID, len(g.nodeKinds))
	for i := range ids {
		ids[i] = NodeID(i)
	}
	return ids
}

// Edges returns the identifiers of all edges in the graph, in creation
// order.
func (g *Graph) Edges() []EdgeID {
	ids := make([]EdgeID, len(g.edgeSrc))
	for i := range ids {
		ids[i] = EdgeID(i)
	}
	return ids
}

// Levels returns all level identifiers in traversal (forward) order.
// Returns nil if the graph is not levelized.
func (g *Graph) Levels() []LevelID {
	if !g.levelized {
		return nil
	}
	ids := make([]LevelID, len(g.levelNodes))
	for i := range ids {
		ids[i] = LevelID(i)
	}
	return ids
}

// ReversedLevels returns all level identifiers in reverse order, as walked
// by backward analysis passes. Returns nil if the graph is not levelized.
func (g *Graph) ReversedLevels() []LevelID {
	if !g.levelized {
		return nil
	}
	ids := make([]LevelID, len(g.levelNodes))
	for i := range ids {
		ids[i] = LevelID(len(ids) - 1 - i)
	}
	return ids
}

// NumNodes returns the number of nodes in the graph.
func (g *Graph) NumNodes() int { return len(g.nodeKinds) }

// NumEdges returns the number of edges in the graph.
func (g *Graph) NumEdges() int { return len(g.edgeSrc) }

// NumLevels returns the number of levels, or 0 if the graph is not
// levelized.
func (g *Graph) NumLevels() int { return len(g.levelNodes) }

// Levelized reports whether the graph has been levelized since the last
// structural change.
func (g *Graph) Levelized() bool { return g.levelized }

func (g *Graph) validNode(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodeKinds)
}

func (g *Graph) validEdge(id EdgeID) bool {
	return id >= 0 && int(id) < len(g.edgeSrc)
}

func (g *Graph) validLevel(id LevelID) bool {
	return id >= 0 && int(id) < len(g.levelNodes)
}

func (g *Graph) invalidateLevels() {
	g.levelized = false
	g.levelNodes = nil
	g.primaryOutputs = nil
}
