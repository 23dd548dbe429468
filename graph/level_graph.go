package graph

import . "github.com/chway/ch-router/container"

// LevelGraph is the mutable weighted directed graph the preprocessor
// contracts in place and the query package answers routes against. It owns:
//
//   - a growable edge-attribute table (distance/flags/originalEdges/
//     skippedNode), shared by original edges and shortcuts alike;
//   - dynamic adjacency lists per node, grown as shortcuts are added;
//   - a per-node contraction level, 0 meaning "not yet contracted".
//
// It is built once in memory (see BuildGraph) from plain node/edge lists —
// no disk I/O, no geographic index; those are external collaborators per
// the module's scope.
type LevelGraph struct {
	nodeCount int32
	edges     []edgeAttrs
	adjOut    []List[int32]
	adjIn     []List[int32]
	levels    Array[int16]
}

// NodeCount returns the number of nodes in the graph.
func (self *LevelGraph) NodeCount() int32 {
	return self.nodeCount
}

// EdgeCount returns the number of edges (original plus shortcuts) currently
// stored in the graph.
func (self *LevelGraph) EdgeCount() int32 {
	return int32(len(self.edges))
}

// GetLevel returns node's contraction level; 0 means not yet contracted.
func (self *LevelGraph) GetLevel(node int32) int16 {
	return self.levels[node]
}

// SetLevel assigns node's contraction level. Per spec, levels are assigned
// in strictly increasing order as nodes are contracted, never revisited.
func (self *LevelGraph) SetLevel(node int32, level int16) {
	self.levels[node] = level
}

// GetGraphExplorer returns a fresh, stateless IExplorer over this graph.
func (self *LevelGraph) GetGraphExplorer() IExplorer {
	return explorer{g: self}
}

// EdgeHandle returns a mutable handle for an existing edge id, original or
// shortcut.
func (self *LevelGraph) EdgeHandle(edgeID int32) EdgeHandle {
	return EdgeHandle{g: self, edgeID: edgeID}
}

// ForAdjacentEdges is a thin convenience wrapper so callers that only have a
// *LevelGraph (not an explorer) in hand — e.g. the Contractor's
// overwriteExisting and CHQuery's frontier steps — don't need to allocate one.
func (self *LevelGraph) ForAdjacentEdges(node int32, dir Direction, adj Adjacency, callback func(EdgeRef) bool) {
	explorer{g: self}.ForAdjacentEdges(node, dir, adj, callback)
}

// GetEdges returns every edge id incident to node in dir, original and
// shortcut alike. Convenience over ForAdjacentEdges for callers (such as
// the tests) that just want a materialised list.
func (self *LevelGraph) GetEdges(node int32, dir Direction) List[EdgeRef] {
	out := NewList[EdgeRef](4)
	self.ForAdjacentEdges(node, dir, ADJACENT_ALL, func(ref EdgeRef) bool {
		out.Add(ref)
		return true
	})
	return out
}

// GetOutgoing is GetEdges(node, FORWARD).
func (self *LevelGraph) GetOutgoing(node int32) List[EdgeRef] {
	return self.GetEdges(node, FORWARD)
}

// GetIncoming is GetEdges(node, BACKWARD).
func (self *LevelGraph) GetIncoming(node int32) List[EdgeRef] {
	return self.GetEdges(node, BACKWARD)
}

// IncidentEdges returns every edge incident to node regardless of direction,
// each edge id appearing exactly once even if node is a both-direction
// endpoint reachable via both its outgoing and incoming adjacency lists.
// Used for the "undirected" edge counts the priority heuristic needs.
func (self *LevelGraph) IncidentEdges(node int32) List[EdgeRef] {
	out := NewList[EdgeRef](4)
	seen := make(map[int32]bool, 4)
	appendUnseen := func(edgeID int32) {
		if seen[edgeID] {
			return
		}
		seen[edgeID] = true
		out.Add(EdgeRef{EdgeID: edgeID, OtherID: otherEndpoint(&self.edges[edgeID], node)})
	}
	for _, edgeID := range self.adjOut[node] {
		appendUnseen(edgeID)
	}
	for _, edgeID := range self.adjIn[node] {
		appendUnseen(edgeID)
	}
	return out
}

// ForEachEdge visits every edge id currently in the graph exactly once,
// original edges and shortcuts alike, in creation order. prepareEdges uses
// this (not ForAdjacentEdges) to rewrite every original edge's stored
// distance to its overlay weight exactly once, regardless of how many
// adjacency lists reference it.
func (self *LevelGraph) ForEachEdge(callback func(edgeID int32)) {
	for edgeID := range self.edges {
		callback(int32(edgeID))
	}
}

// Shortcut adds a new shortcut edge from->to with the given overlay weight,
// direction flags, skipped node and original-edge count, wiring it into both
// endpoints' adjacency lists. It returns a handle to the freshly created
// edge; preproc.addShortcuts does not use it.
func (self *LevelGraph) Shortcut(from, to int32, distance int32, flags uint8, skippedNode int32, originalEdges int32) EdgeHandle {
	edgeID := int32(len(self.edges))
	self.edges = append(self.edges, edgeAttrs{
		NodeA:         from,
		NodeB:         to,
		Distance:      distance,
		Flags:         flags,
		OriginalEdges: originalEdges,
		SkippedNode:   skippedNode,
	})
	self.wireAdjacency(edgeID, from, to, flags)
	return EdgeHandle{g: self, edgeID: edgeID}
}

// wireAdjacency registers edgeID (endpoints from/to) into both nodes'
// adjacency lists according to flags' direction bits, independently: a
// from->to edge is only discoverable from from's outgoing / to's incoming
// side, a to->from edge only from the reverse side, and a both-direction
// edge from all four.
func (self *LevelGraph) wireAdjacency(edgeID, from, to int32, flags uint8) {
	if flags&FlagForward != 0 {
		self.adjOut[from].Add(edgeID)
		self.adjIn[to].Add(edgeID)
	}
	if flags&FlagBackward != 0 {
		self.adjOut[to].Add(edgeID)
		self.adjIn[from].Add(edgeID)
	}
}
