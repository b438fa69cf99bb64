// Package timing provides the in-memory timing graph at the heart of tigra.
//
// # Overview
//
// A timing graph connects primary inputs (nodes with no fan-in, e.g. circuit
// input pads or flip-flop Q pins) to primary outputs (nodes with no fan-out,
// e.g. output pads or flip-flop D pins) through intermediate combinational
// nodes. Analyzer passes walk the graph level by level, forward from inputs
// or backward from outputs, so the graph stores every edge bidirectionally:
// each edge appears once in its source's out-edge list and once in its
// sink's in-edge list. The duplication trades memory for O(1) access to both
// fan-in and fan-out.
//
// Only static connectivity and node attributes live here. Dynamic data (edge
// delays, arrival and required times) belongs in parallel stores keyed by
// the same identifiers, which keeps analyzers read-only with respect to the
// graph itself.
//
// # Identifiers
//
// The graph uses a struct-of-arrays layout: each attribute is a contiguous
// slice indexed by a dense identifier ([NodeID], [EdgeID], [LevelID]). There
// are no node or edge objects and no pointers to chase. Identifiers are
// distinct integer types, so a NodeID cannot be passed where an EdgeID is
// expected. Accessors validate identifiers against the current range and
// return [ErrInvalidHandle] for anything stale or out of bounds.
//
// Identifiers issued by [Graph.AddNode] and [Graph.AddEdge] remain stable
// through [Graph.Levelize], which only annotates the graph. The layout
// optimization passes renumber identifiers and invalidate all previously
// issued ones; see below.
//
// # Levelization
//
// [Graph.Levelize] assigns every node to a level such that for every edge,
// level(source) < level(sink). Level 0 is exactly the set of primary inputs.
// Primary outputs are tracked separately because they can sit on any level.
// Levelization is deterministic: nodes within a level appear in the order
// they were released by their predecessors, with creation order breaking
// ties, so re-running on an unchanged graph reproduces identical results.
// A graph with a directed cycle fails with a [*CycleError] and publishes no
// partial level data.
//
// # Layout Optimization
//
// A serial analyzer visits nodes level by level, start to end within each
// level. [Graph.OptimizeNodeLayout] and [Graph.OptimizeEdgeLayout] physically
// reorder the underlying arrays to match that traversal order, which improves
// spatial and temporal cache locality. Both passes return the old→new
// identifier translation table; callers holding identifiers in external
// stores (delay tables, name maps) must remap through it, because every
// previously issued identifier of that kind becomes stale.
//
// # Concurrency
//
// A Graph is not safe for concurrent mutation. Construction, levelization,
// and layout optimization form an exclusive-writer phase that callers must
// serialize. Once those are complete the graph is logically immutable and
// safe for unsynchronized concurrent reads, so independent analyzer passes
// can share one graph across goroutines.
package timing
