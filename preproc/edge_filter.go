package preproc

import "github.com/chway/ch-router/graph"

// EdgeLevelFilter wraps ForAdjacentEdges with the "other endpoint is still
// uncontracted" predicate every contraction step needs, optionally pinning
// one extra node (the contraction candidate itself) to reject. Kept as a
// small struct rather than an iterator subclass — filtering happens at the
// callback boundary, so it composes with any explorer/graph without needing
// interior mutability of the iteration state.
type EdgeLevelFilter struct {
	g        *graph.LevelGraph
	skipNode int32
}

// NewEdgeLevelFilter returns the plain filter: only the level predicate.
func NewEdgeLevelFilter(g *graph.LevelGraph) EdgeLevelFilter {
	return EdgeLevelFilter{g: g, skipNode: -1}
}

// NewEdgeLevelFilterSkipping returns the CH-skip variant used by
// WitnessSearch to refuse to route through the node currently being
// contracted.
func NewEdgeLevelFilterSkipping(g *graph.LevelGraph, skipNode int32) EdgeLevelFilter {
	return EdgeLevelFilter{g: g, skipNode: skipNode}
}

// ForUncontracted visits every edge incident to node in dir whose other
// endpoint has level 0 and is not the pinned skip node.
func (self EdgeLevelFilter) ForUncontracted(node int32, dir graph.Direction, callback func(graph.EdgeRef) bool) {
	self.g.ForAdjacentEdges(node, dir, graph.ADJACENT_ALL, func(ref graph.EdgeRef) bool {
		if ref.OtherID == self.skipNode {
			return true
		}
		if self.g.GetLevel(ref.OtherID) != 0 {
			return true
		}
		return callback(ref)
	})
}
