package timing

import "fmt"

// CycleError is returned by [Graph.Levelize] when some nodes can never be
// released into a traversal frontier, i.e. the graph contains a directed
// cycle reachable from non-source nodes. Unresolved lists every node that
// did not receive a level, in creation order. errors.Is matches
// [ErrCyclicGraph].
type CycleError struct {
	Unresolved []NodeID
}

// Error implements the error interface.
func (e *CycleError) Error() string {
	if len(e.Unresolved) == 1 {
		return fmt.Sprintf("graph contains a cycle: node %d unresolved", e.Unresolved[0])
	}
	return fmt.Sprintf("graph contains a cycle: %d nodes unresolved (first: node %d)",
		len(e.Unresolved), e.Unresolved[0])
}

// Is reports whether target is [ErrCyclicGraph], so callers can use
// errors.Is without inspecting the node list.
func (e *CycleError) Is(target error) bool { return target == ErrCyclicGraph }

// Levelize computes a topological tiering of the graph and identifies the
// primary outputs.
//
// The algorithm is a breadth-first topological sort (longest-path layering,
// Kahn's algorithm): nodes with zero in-degree seed level 0 in creation
// order; each remaining node is released once all of its predecessors have
// been processed and is fixed at one plus the maximum level among them.
// Within a level, nodes appear in the order their last predecessor released
// them, with creation order breaking ties. The result is fully
// deterministic: re-running Levelize on an unchanged graph reproduces
// identical level and primary-output assignments.
//
// If some nodes are never released the graph contains a cycle; Levelize
// returns a [*CycleError] naming the unresolved nodes and publishes no
// partial level data (the graph stays not-levelized).
//
// Postconditions on success: every node has exactly one level; for every
// edge, level(source) < level(sink); level 0 is exactly the set of primary
// inputs.
func (g *Graph) Levelize() error {
	n := g.NumNodes()

	pending := make([]int, n)
	level := make([]int, n)
	frontier := make([]NodeID, 0, n)

	for i := 0; i < n; i++ {
		pending[i] = len(g.nodeIn[i])
		if pending[i] == 0 {
			frontier = append(frontier, NodeID(i))
		}
	}

	var levels [][]NodeID
	released := 0
	for head := 0; head < len(frontier); head++ {
		id := frontier[head]
		released++

		l := level[id]
		for len(levels) <= l {
			levels = append(levels, nil)
		}
		levels[l] = append(levels[l], id)

		for _, e := range g.nodeOut[id] {
			sink := g.edgeSink[e]
			if l+1 > level[sink] {
				level[sink] = l + 1
			}
			pending[sink]--
			if pending[sink] == 0 {
				frontier = append(frontier, sink)
			}
		}
	}

	if released < n {
		unresolved := make([]NodeID, 0, n-released)
		for i := 0; i < n; i++ {
			if pending[i] > 0 {
				unresolved = append(unresolved, NodeID(i))
			}
		}
		g.invalidateLevels()
		return &CycleError{Unresolved: unresolved}
	}

	outputs := make([]NodeID, 0)
	for i := 0; i < n; i++ {
		if len(g.nodeOut[i]) == 0 {
			outputs = append(outputs, NodeID(i))
		}
	}

	g.levelNodes = levels
	g.primaryOutputs = outputs
	g.levelized = true
	return nil
}

// LevelOf returns the level the node was assigned by the last successful
// [Graph.Levelize]. It is a convenience for analyzers and exporters that
// need a node→level lookup; the lookup scans level lists, so callers doing
// bulk work should build their own index from [Graph.LevelNodes].
func (g *Graph) LevelOf(id NodeID) (LevelID, error) {
	if !g.levelized {
		return InvalidLevelID, ErrNotLevelized
	}
	if !g.validNode(id) {
		return InvalidLevelID, ErrInvalidHandle
	}
	for l, nodes := range g.levelNodes {
		for _, n := range nodes {
			if n == id {
				return LevelID(l), nil
			}
		}
	}
	return InvalidLevelID, ErrInvalidHandle
}
