package timing

// OptimizeNodeLayout renumbers all node identifiers to match the order a
// serial level-by-level traversal visits them: level 0's nodes first (in
// their existing within-level order), then level 1's, and so on. All
// node-indexed storage, every edge's endpoint references, and the level
// lists are migrated to the new numbering before the call returns.
//
// The graph must be levelized; otherwise OptimizeNodeLayout returns
// [ErrNotLevelized] and the graph is unchanged.
//
// The returned slice is the full bijective old→new translation table,
// indexed by old [NodeID]. Every node identifier issued before the call is
// stale afterwards: external stores keyed by NodeID (delay tables, name
// maps) must remap through the table, and subsequent accessor calls accept
// only new identifiers.
func (g *Graph) OptimizeNodeLayout() ([]NodeID, error) {
	if !g.levelized {
		return nil, ErrNotLevelized
	}

	n := g.NumNodes()
	oldToNew := make([]NodeID, n)
	next := NodeID(0)
	for _, nodes := range g.levelNodes {
		for _, old := range nodes {
			oldToNew[old] = next
			next++
		}
	}

	// Permute node-indexed arrays. Adjacency lists store EdgeIDs, which are
	// untouched by this pass, so the slices move as-is.
	kinds := make([]NodeKind, n)
	domains := make([]DomainID, n)
	clkSrc := make([]bool, n)
	out := make([][]EdgeID, n)
	in := make([][]EdgeID, n)
	for old := 0; old < n; old++ {
		nw := oldToNew[old]
		kinds[nw] = g.nodeKinds[old]
		domains[nw] = g.nodeDomains[old]
		clkSrc[nw] = g.nodeClkSrc[old]
		out[nw] = g.nodeOut[old]
		in[nw] = g.nodeIn[old]
	}
	g.nodeKinds = kinds
	g.nodeDomains = domains
	g.nodeClkSrc = clkSrc
	g.nodeOut = out
	g.nodeIn = in

	// Rewrite edge endpoint references.
	for e := range g.edgeSrc {
		g.edgeSrc[e] = oldToNew[g.edgeSrc[e]]
		g.edgeSink[e] = oldToNew[g.edgeSink[e]]
	}

	// Rewrite level lists and the primary-output list. Within-level order
	// is preserved, so after this pass level lists hold consecutive runs of
	// new identifiers.
	for _, nodes := range g.levelNodes {
		for i, old := range nodes {
			nodes[i] = oldToNew[old]
		}
	}
	for i, old := range g.primaryOutputs {
		g.primaryOutputs[i] = oldToNew[old]
	}

	return oldToNew, nil
}

// OptimizeEdgeLayout renumbers all edge identifiers to match traversal
// order: levels are walked in order, nodes within each level in their
// (possibly node-optimized) order, and each node's out-edge list in its
// existing order, assigning the next sequential identifier to each edge.
// Edge-indexed storage and every node's adjacency lists are migrated before
// the call returns.
//
// The graph must be levelized; otherwise OptimizeEdgeLayout returns
// [ErrNotLevelized] and the graph is unchanged.
//
// The returned slice is the full bijective old→new translation table,
// indexed by old [EdgeID]. Every edge identifier issued before the call is
// stale afterwards and must be remapped by external holders.
func (g *Graph) OptimizeEdgeLayout() ([]EdgeID, error) {
	if !g.levelized {
		return nil, ErrNotLevelized
	}

	m := g.NumEdges()
	oldToNew := make([]EdgeID, m)
	next := EdgeID(0)
	for _, nodes := range g.levelNodes {
		for _, node := range nodes {
			for _, e := range g.nodeOut[node] {
				oldToNew[e] = next
				next++
			}
		}
	}

	// Permute edge-indexed arrays.
	src := make([]NodeID, m)
	sink := make([]NodeID, m)
	for old := 0; old < m; old++ {
		nw := oldToNew[old]
		src[nw] = g.edgeSrc[old]
		sink[nw] = g.edgeSink[old]
	}
	g.edgeSrc = src
	g.edgeSink = sink

	// Rewrite adjacency lists in place.
	for _, edges := range g.nodeOut {
		for i, old := range edges {
			edges[i] = oldToNew[old]
		}
	}
	for _, edges := range g.nodeIn {
		for i, old := range edges {
			edges[i] = oldToNew[old]
		}
	}

	return oldToNew, nil
}
